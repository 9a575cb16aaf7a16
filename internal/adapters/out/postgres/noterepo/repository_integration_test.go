package noterepo_test

import (
	"context"
	"testing"
	"time"

	"cargopool/internal/adapters/out/postgres/noterepo"
	"cargopool/internal/core/domain/model/auth"
	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/core/domain/model/note"
	"cargopool/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// NoteRepositoryIntegrationTestSuite verifies note persistence against a
// real PostgreSQL instance, including reply thread reconciliation.
type NoteRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *noterepo.GormNoteRepository
	tracker    *MockAggregateTracker
}

func (suite *NoteRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&noterepo.NoteDTO{}, &noterepo.ReplyDTO{}))
}

func (suite *NoteRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE notes, note_replies").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = noterepo.NewGormNoteRepository(suite.db, suite.tracker)
}

func (suite *NoteRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *NoteRepositoryIntegrationTestSuite) customer() auth.Actor {
	actor, err := auth.NewCustomerActor(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)
	return actor
}

func (suite *NoteRepositoryIntegrationTestSuite) seedNote(author auth.Actor) *note.Note {
	aggregate, err := note.NewNote(kernel.NewUUID(), kernel.NewUUID(), author,
		"customs hold", "missing invoice copy")
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *NoteRepositoryIntegrationTestSuite) TestAdd_And_Get_RoundTrip() {
	ctx := context.Background()
	author := suite.customer()
	seeded := suite.seedNote(author)

	retrieved, err := suite.repository.Get(ctx, seeded.ID())
	suite.Require().NoError(err)

	suite.True(seeded.ID().IsEqual(retrieved.ID()))
	suite.True(seeded.OrderID().IsEqual(retrieved.OrderID()))
	suite.Equal("customs hold", retrieved.Title())
	suite.Equal("missing invoice copy", retrieved.Body())
	suite.True(author.ID().IsEqual(retrieved.AuthorID()))
	suite.Equal(auth.RoleCustomer, retrieved.AuthorRole())
	suite.Empty(retrieved.Replies())
}

func (suite *NoteRepositoryIntegrationTestSuite) TestUpdate_AppendsReplies_InPostingOrder() {
	ctx := context.Background()
	author := suite.customer()
	seeded := suite.seedNote(author)

	first, err := note.NewReply(kernel.NewUUID(), author, "any update?")
	suite.Require().NoError(err)
	seeded.AddReply(first)
	suite.Require().NoError(suite.repository.Update(ctx, seeded))

	second, err := note.NewReply(kernel.NewUUID(), author, "invoice resent")
	suite.Require().NoError(err)
	seeded.AddReply(second)
	suite.Require().NoError(suite.repository.Update(ctx, seeded))

	retrieved, err := suite.repository.Get(ctx, seeded.ID())
	suite.Require().NoError(err)
	suite.Require().Len(retrieved.Replies(), 2)
	suite.Equal("any update?", retrieved.Replies()[0].Body())
	suite.Equal("invoice resent", retrieved.Replies()[1].Body())
}

func (suite *NoteRepositoryIntegrationTestSuite) TestUpdate_PrunesRemovedReplies() {
	ctx := context.Background()
	author := suite.customer()
	seeded := suite.seedNote(author)

	reply, err := note.NewReply(kernel.NewUUID(), author, "checking")
	suite.Require().NoError(err)
	seeded.AddReply(reply)
	suite.Require().NoError(suite.repository.Update(ctx, seeded))

	suite.Require().NoError(seeded.RemoveReply(reply.ID()))
	suite.Require().NoError(suite.repository.Update(ctx, seeded))

	retrieved, err := suite.repository.Get(ctx, seeded.ID())
	suite.Require().NoError(err)
	suite.Empty(retrieved.Replies())

	var orphaned int64
	suite.Require().NoError(
		suite.db.Model(&noterepo.ReplyDTO{}).Count(&orphaned).Error)
	suite.Equal(int64(0), orphaned)
}

func (suite *NoteRepositoryIntegrationTestSuite) TestDelete_RemovesNoteAndThread() {
	ctx := context.Background()
	author := suite.customer()
	seeded := suite.seedNote(author)

	reply, err := note.NewReply(kernel.NewUUID(), author, "checking")
	suite.Require().NoError(err)
	seeded.AddReply(reply)
	suite.Require().NoError(suite.repository.Update(ctx, seeded))

	suite.Require().NoError(suite.repository.Delete(ctx, seeded.ID()))

	_, err = suite.repository.Get(ctx, seeded.ID())
	suite.Require().ErrorIs(err, errs.ErrNotFound)

	var orphaned int64
	suite.Require().NoError(
		suite.db.Model(&noterepo.ReplyDTO{}).Count(&orphaned).Error)
	suite.Equal(int64(0), orphaned)
}

func (suite *NoteRepositoryIntegrationTestSuite) TestDelete_NonExistent_NotFound() {
	err := suite.repository.Delete(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrNotFound)
}

func TestNoteRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(NoteRepositoryIntegrationTestSuite))
}
