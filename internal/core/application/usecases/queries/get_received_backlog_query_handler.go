package queries

import (
	"context"

	"marketplace/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetReceivedBacklogQueryHandler reads stale unreleased orders.
type GetReceivedBacklogQueryHandler struct {
	db *gorm.DB
}

// NewGetReceivedBacklogQueryHandler creates a handler for the kitchen backlog check.
func NewGetReceivedBacklogQueryHandler(db *gorm.DB) GetReceivedBacklogQueryHandler {
	return GetReceivedBacklogQueryHandler{db: db}
}

// Handle returns orders still in Received that were placed before the cutoff,
// oldest first.
func (h GetReceivedBacklogQueryHandler) Handle(
	ctx context.Context,
	query GetReceivedBacklogQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE status = ? AND created_at < ?
		ORDER BY created_at
	`, order.Received.String(), query.OlderThan()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrderViews(rows)
}
