package queries

import (
	"errors"
	"time"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetReceivedBacklogQueryIsNotConstructed = errors.New(
	"GetReceivedBacklogQuery must be created via NewGetReceivedBacklogQuery constructor",
)

// GetReceivedBacklogQuery finds orders still sitting in Received past a
// threshold. The backlog monitor job uses it to surface kitchens falling
// behind.
type GetReceivedBacklogQuery struct {
	olderThan time.Time

	guard guard.ConstructorGuard
}

// NewGetReceivedBacklogQuery creates a backlog query for orders placed before
// olderThan and never released.
func NewGetReceivedBacklogQuery(olderThan time.Time) (GetReceivedBacklogQuery, error) {
	if olderThan.IsZero() {
		return GetReceivedBacklogQuery{}, errs.NewValueIsRequiredError("olderThan")
	}

	return GetReceivedBacklogQuery{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetReceivedBacklogQuery) Validate() error {
	return q.guard.Validate(ErrGetReceivedBacklogQueryIsNotConstructed)
}

// OlderThan returns the cutoff: orders created before it count as stale.
func (q GetReceivedBacklogQuery) OlderThan() time.Time {
	return q.olderThan
}
