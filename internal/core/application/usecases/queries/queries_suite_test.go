package queries_test

import (
	"context"
	"database/sql"
	"time"

	"marketplace/internal/adapters/out/postgres/driverrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repositories' tracker dependency for seeding.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// queryHandlerSuite is the shared fixture for query handler tests: a
// PostgreSQL container, migrated schema, and repositories for seeding orders
// and drivers into the states each read model projects.
type queryHandlerSuite struct {
	suite.Suite
	container  *tcpostgres.PostgresContainer
	db         *gorm.DB
	orderRepo  *orderrepo.GormOrderRepository
	driverRepo *driverrepo.GormDriverRepository
}

func (s *queryHandlerSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	sqlDB, err := sql.Open("postgres", dsn)
	s.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: sqlDB}), &gorm.Config{})
	s.Require().NoError(err)
	s.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &driverrepo.DriverDTO{})
	s.Require().NoError(err)

	s.orderRepo = orderrepo.NewGormOrderRepository(db, noopTracker{})
	s.driverRepo = driverrepo.NewGormDriverRepository(db, noopTracker{})
}

func (s *queryHandlerSuite) TearDownSuite() {
	if s.container != nil {
		err := s.container.Terminate(context.Background())
		s.Require().NoError(err)
	}
}

func (s *queryHandlerSuite) SetupTest() {
	err := s.db.Exec("TRUNCATE TABLE orders, drivers CASCADE").Error
	s.Require().NoError(err)
}

// seedOrder persists a freshly placed order created at the given time so
// ordering assertions have distinct timestamps.
func (s *queryHandlerSuite) seedOrder(customerName string, createdAt time.Time) *order.Order {
	item, err := order.NewItem("Pad Thai", 1, 12.50)
	s.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.GenerateConfirmationNumber(),
		customerName,
		"12 Mulberry Street",
		[]order.Item{item},
		createdAt,
	)
	s.Require().NoError(err)

	err = s.orderRepo.Add(context.Background(), o)
	s.Require().NoError(err)

	return o
}

// seedReadyOrder persists an order already published to the driver pool.
func (s *queryHandlerSuite) seedReadyOrder(customerName string, createdAt time.Time) *order.Order {
	o := s.buildOrder(customerName, createdAt)
	s.Require().NoError(o.Release())

	err := s.orderRepo.Add(context.Background(), o)
	s.Require().NoError(err)

	return o
}

// seedClaimedOrder persists an order in transit with the given driver.
func (s *queryHandlerSuite) seedClaimedOrder(d *driver.Driver, createdAt time.Time) *order.Order {
	o := s.buildOrder("Maria Garcia", createdAt)
	s.Require().NoError(o.Release())
	s.Require().NoError(o.Claim(d.ID(), d.Vehicle().LicensePlate()))

	err := s.orderRepo.Add(context.Background(), o)
	s.Require().NoError(err)

	return o
}

// seedDeliveredOrder persists a completed order with delivery evidence.
func (s *queryHandlerSuite) seedDeliveredOrder(d *driver.Driver, createdAt, deliveredAt time.Time) *order.Order {
	o := s.buildOrder("Maria Garcia", createdAt)
	s.Require().NoError(o.Release())
	s.Require().NoError(o.Claim(d.ID(), d.Vehicle().LicensePlate()))
	s.Require().NoError(o.Complete(d.ID(), "proof.jpg", deliveredAt))

	err := s.orderRepo.Add(context.Background(), o)
	s.Require().NoError(err)

	return o
}

func (s *queryHandlerSuite) buildOrder(customerName string, createdAt time.Time) *order.Order {
	item, err := order.NewItem("Spring Rolls", 2, 5.50)
	s.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.GenerateConfirmationNumber(),
		customerName,
		"12 Mulberry Street",
		[]order.Item{item},
		createdAt,
	)
	s.Require().NoError(err)

	return o
}

// seedDriver persists a driver with the given username and password hash.
func (s *queryHandlerSuite) seedDriver(username, passwordHash string) *driver.Driver {
	vehicle, err := driver.NewVehicle("Honda Civic", "Blue", "ABC-1234")
	s.Require().NoError(err)

	d, err := driver.NewDriver(kernel.NewUUID(), username, passwordHash, "Dave Porter", vehicle)
	s.Require().NoError(err)

	err = s.driverRepo.Add(context.Background(), d)
	s.Require().NoError(err)

	return d
}
