package driverrepo_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/driverrepo"
	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// DriverRepositoryIntegrationTestSuite verifies driver persistence against a
// real PostgreSQL instance.
type DriverRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *driverrepo.GormDriverRepository
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	sqlDB, err := sql.Open("postgres", connStr)
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: sqlDB}), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&driverrepo.DriverDTO{}))
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE drivers").Error)
	suite.repository = driverrepo.NewGormDriverRepository(suite.db, noopTracker{})
}

func (suite *DriverRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DriverRepositoryIntegrationTestSuite) newDriver(username string) *driver.Driver {
	vehicle, err := driver.NewVehicle("Honda Civic", "Blue", "ABC-1234")
	suite.Require().NoError(err)
	d, err := driver.NewDriver(kernel.NewUUID(), username, "$2a$10$examplehash", "Dave Porter", vehicle)
	suite.Require().NoError(err)
	return d
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAdd_And_Get_RoundTrip() {
	ctx := context.Background()
	d := suite.newDriver("dave42")

	suite.Require().NoError(suite.repository.Add(ctx, d))

	loaded, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(d.ID()))
	suite.Equal("dave42", loaded.Username())
	suite.Equal("$2a$10$examplehash", loaded.PasswordHash())
	suite.Equal("Dave Porter", loaded.FullName())
	suite.Equal("Honda Civic", loaded.Vehicle().Model())
	suite.Equal("Blue", loaded.Vehicle().Color())
	suite.Equal("ABC-1234", loaded.Vehicle().LicensePlate())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAdd_DuplicateUsername_ReturnsInvalidValue() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newDriver("dave42")))

	err := suite.repository.Add(ctx, suite.newDriver("dave42"))
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGetByUsername() {
	ctx := context.Background()
	d := suite.newDriver("dave42")
	suite.Require().NoError(suite.repository.Add(ctx, d))

	loaded, err := suite.repository.GetByUsername(ctx, "dave42")
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(d.ID()))

	_, err = suite.repository.GetByUsername(ctx, "nobody")
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGet_NonExistent_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestDriverRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DriverRepositoryIntegrationTestSuite))
}
