package userrepo_test

import (
	"context"
	"testing"
	"time"

	"ecommerce/internal/adapters/out/postgres/userrepo"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/user"
	"ecommerce/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const testHash = "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA"

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// UserRepositoryIntegrationTestSuite provides integration tests for
// UserRepository, in particular the database-enforced email uniqueness.
type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *userrepo.GormUserRepository
	tracker    *MockAggregateTracker
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
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

	// TranslateError surfaces unique violations as gorm.ErrDuplicatedKey,
	// which the repository maps to a conflict error.
	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&userrepo.UserDTO{}))
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = userrepo.NewGormUserRepository(suite.db, suite.tracker)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) createTestUser(email string) *user.User {
	account, err := user.NewUser(kernel.NewUUID(), "Ada", "Lovelace", email, testHash, "+123", user.Buyer)
	suite.Require().NoError(err)
	return account
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_RoundTrip_PreservesAccount() {
	ctx := context.Background()
	account := suite.createTestUser("ada@example.com")
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, account))

	loaded, err := suite.repository.Get(ctx, account.ID())
	suite.Require().NoError(err)
	suite.Equal("Ada", loaded.FirstName())
	suite.Equal("ada@example.com", loaded.Email())
	suite.Equal(testHash, loaded.PasswordHash())
	suite.Equal(user.Buyer, loaded.Role())
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail_ReturnsConflict() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestUser("ada@example.com")))

	err := suite.repository.Add(ctx, suite.createTestUser("ada@example.com"))
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetByEmail_UnknownEmail_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.GetByEmail(ctx, "nobody@example.com")

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestUpdate_ProfileChange_Persists() {
	ctx := context.Background()
	account := suite.createTestUser("ada@example.com")
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, account))

	suite.Require().NoError(account.ChangeName("Grace", "Hopper"))
	account.ChangePhone("+456")
	suite.Require().NoError(suite.repository.Update(ctx, account))

	loaded, err := suite.repository.GetByEmail(ctx, "ada@example.com")
	suite.Require().NoError(err)
	suite.Equal("Grace", loaded.FirstName())
	suite.Equal("Hopper", loaded.LastName())
	suite.Equal("+456", loaded.Phone())
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
