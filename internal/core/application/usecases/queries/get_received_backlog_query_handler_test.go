package queries_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/suite"
)

type GetReceivedBacklogQueryHandlerTestSuite struct {
	queryHandlerSuite
	handler queries.GetReceivedBacklogQueryHandler
}

func (s *GetReceivedBacklogQueryHandlerTestSuite) SetupSuite() {
	s.queryHandlerSuite.SetupSuite()
	s.handler = queries.NewGetReceivedBacklogQueryHandler(s.db)
}

func (s *GetReceivedBacklogQueryHandlerTestSuite) TestHandle_ReturnsOnlyStaleReceivedOrders() {
	now := time.Now()

	stale := s.seedOrder("Maria Garcia", now.Add(-30*time.Minute))
	s.seedOrder("Dave Porter", now.Add(-time.Minute))
	s.seedReadyOrder("Rita Flores", now.Add(-30*time.Minute))

	query, err := queries.NewGetReceivedBacklogQuery(now.Add(-10 * time.Minute))
	s.Require().NoError(err)

	result, err := s.handler.Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.Equal(stale.ID(), result[0].ID)
}

func (s *GetReceivedBacklogQueryHandlerTestSuite) TestHandle_NoStaleOrders_ReturnsEmptySlice() {
	now := time.Now()
	s.seedOrder("Maria Garcia", now)

	query, err := queries.NewGetReceivedBacklogQuery(now.Add(-10 * time.Minute))
	s.Require().NoError(err)

	result, err := s.handler.Handle(context.Background(), query)

	s.Require().NoError(err)
	s.NotNil(result)
	s.Empty(result)
}

func (s *GetReceivedBacklogQueryHandlerTestSuite) TestHandle_SortedOldestFirst() {
	now := time.Now()
	newer := s.seedOrder("Maria Garcia", now.Add(-20*time.Minute))
	older := s.seedOrder("Dave Porter", now.Add(-40*time.Minute))

	query, err := queries.NewGetReceivedBacklogQuery(now.Add(-10 * time.Minute))
	s.Require().NoError(err)

	result, err := s.handler.Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Require().Len(result, 2)
	s.Equal(older.ID(), result[0].ID)
	s.Equal(newer.ID(), result[1].ID)
}

func (s *GetReceivedBacklogQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := s.handler.Handle(context.Background(), queries.GetReceivedBacklogQuery{})

	s.Require().Error(err)
	s.Nil(result)
	s.Contains(err.Error(), "must be created via NewGetReceivedBacklogQuery constructor")
}

func TestGetReceivedBacklogQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetReceivedBacklogQueryHandlerTestSuite))
}
