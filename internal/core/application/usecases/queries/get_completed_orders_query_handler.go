package queries

import (
	"context"

	"marketplace/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetCompletedOrdersQueryHandler reads one driver's delivered orders.
type GetCompletedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCompletedOrdersQueryHandler creates a handler for driver delivery history.
func NewGetCompletedOrdersQueryHandler(db *gorm.DB) GetCompletedOrdersQueryHandler {
	return GetCompletedOrdersQueryHandler{db: db}
}

// Handle returns the driver's delivered orders, most recent delivery first.
func (h GetCompletedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCompletedOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE status = ? AND selected_by_driver = ?
		ORDER BY delivered_at DESC
	`, order.Delivered.String(), query.DriverID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrderViews(rows)
}
