package queries

import (
	"context"

	"marketplace/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetAvailableOrdersQueryHandler reads the pool of claimable orders. Every
// driver sees the same list; claim arbitration happens at write time, not here.
type GetAvailableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableOrdersQueryHandler creates a handler for the driver board.
func NewGetAvailableOrdersQueryHandler(db *gorm.DB) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{db: db}
}

// Handle returns orders in ReadyForDelivery status, oldest first so drivers
// see the longest-waiting orders on top.
func (h GetAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE status = ? AND selected_by_driver IS NULL
		ORDER BY created_at
	`, order.ReadyForDelivery.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrderViews(rows)
}
