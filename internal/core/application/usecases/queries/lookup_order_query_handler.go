package queries

import (
	"context"

	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// LookupOrderQueryHandler resolves a confirmation number to its order.
type LookupOrderQueryHandler struct {
	db *gorm.DB
}

// NewLookupOrderQueryHandler creates a handler for customer order lookup.
func NewLookupOrderQueryHandler(db *gorm.DB) LookupOrderQueryHandler {
	return LookupOrderQueryHandler{db: db}
}

// Handle returns the order recorded under the confirmation number, or an
// ObjectNotFoundError when no order carries it.
func (h LookupOrderQueryHandler) Handle(
	ctx context.Context,
	query LookupOrderQuery,
) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE order_confirmation_number = ?
	`, query.ConfirmationNumber().String()).Rows()
	if err != nil {
		return OrderView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderView{}, err
		}
		return OrderView{}, errs.NewObjectNotFoundError(
			"orderConfirmationNumber", query.ConfirmationNumber().String())
	}

	return scanOrderView(rows)
}
