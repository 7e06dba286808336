package queries

import (
	"context"

	"marketplace/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler reads the staff board of undelivered orders.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for the staff order board.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle returns every order not yet delivered, newest first. When the query
// carries a customer name the list is narrowed to that customer,
// case-insensitively.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT ` + orderViewColumns + `
		FROM orders
		WHERE status != ?`
	args := []any{order.Delivered.String()}

	if query.CustomerName() != "" {
		sql += ` AND LOWER(customer_name) = LOWER(?)`
		args = append(args, query.CustomerName())
	}

	sql += `
		ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrderViews(rows)
}
