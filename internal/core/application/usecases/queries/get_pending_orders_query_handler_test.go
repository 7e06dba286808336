package queries_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
)

type GetPendingOrdersQueryHandlerTestSuite struct {
	queryHandlerSuite
	handler queries.GetPendingOrdersQueryHandler
}

func (s *GetPendingOrdersQueryHandlerTestSuite) SetupSuite() {
	s.queryHandlerSuite.SetupSuite()
	s.handler = queries.NewGetPendingOrdersQueryHandler(s.db)
}

func (s *GetPendingOrdersQueryHandlerTestSuite) TestHandle_NoClaimedOrders_ReturnsEmptySlice() {
	d := s.seedDriver("dave42", "$2a$10$examplehash")
	s.seedReadyOrder("Ready Customer", time.Now())

	query, err := queries.NewGetPendingOrdersQuery(d.ID())
	s.Require().NoError(err)

	result, err := s.handler.Handle(context.Background(), query)

	s.Require().NoError(err)
	s.NotNil(result)
	s.Empty(result)
}

func (s *GetPendingOrdersQueryHandlerTestSuite) TestHandle_ReturnsOnlyOwnInTransitOrders() {
	now := time.Now()
	dave := s.seedDriver("dave42", "$2a$10$examplehash")
	rita := s.seedDriver("rita7", "$2a$10$examplehash")

	mine := s.seedClaimedOrder(dave, now)
	s.seedClaimedOrder(rita, now.Add(time.Second))
	s.seedDeliveredOrder(dave, now.Add(2*time.Second), now.Add(time.Hour))

	query, err := queries.NewGetPendingOrdersQuery(dave.ID())
	s.Require().NoError(err)

	result, err := s.handler.Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.Equal(mine.ID(), result[0].ID)
	s.Equal(order.InTransit.String(), result[0].Status)
	s.Require().NotNil(result[0].SelectedByDriver)
	s.Equal(dave.ID(), *result[0].SelectedByDriver)
	s.Equal(dave.Vehicle().LicensePlate(), result[0].DriverLicensePlate)
}

func (s *GetPendingOrdersQueryHandlerTestSuite) TestHandle_SortedOldestFirst() {
	now := time.Now()
	d := s.seedDriver("dave42", "$2a$10$examplehash")

	second := s.seedClaimedOrder(d, now.Add(time.Minute))
	first := s.seedClaimedOrder(d, now)

	query, err := queries.NewGetPendingOrdersQuery(d.ID())
	s.Require().NoError(err)

	result, err := s.handler.Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Require().Len(result, 2)
	s.Equal(first.ID(), result[0].ID)
	s.Equal(second.ID(), result[1].ID)
}

func (s *GetPendingOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := s.handler.Handle(context.Background(), queries.GetPendingOrdersQuery{})

	s.Require().Error(err)
	s.Nil(result)
	s.Contains(err.Error(), "must be created via NewGetPendingOrdersQuery constructor")
}

func TestGetPendingOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetPendingOrdersQueryHandlerTestSuite))
}
