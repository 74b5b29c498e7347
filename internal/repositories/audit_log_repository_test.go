package repositories

import (
	"context"
	"testing"
	"time"

	"fleet-dashboard/internal/database"
	"fleet-dashboard/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestAuditLogRepository(t *testing.T) {
	suite.Run(t, new(AuditLogRepositorySuite))
}

type AuditLogRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo AuditLogRepositoryInterface
	ctx  context.Context
}

func (s *AuditLogRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAuditLogRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *AuditLogRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *AuditLogRepositorySuite) create(userID, action, resource string, createdAt time.Time) {
	log := &models.AuditLog{
		UserID:    userID,
		Action:    action,
		Resource:  resource,
		IPAddress: "192.168.1.1",
		UserAgent: "Mozilla/5.0",
		CreatedAt: createdAt,
	}
	s.Require().NoError(s.repo.Create(s.ctx, log))
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_Create() {
	log := &models.AuditLog{
		UserID:    "user-1",
		UserRole:  models.RoleViewer,
		Action:    models.AuditActionSummaryViewed,
		Resource:  models.SectionAttendance,
		TraceID:   uuid.NewString(),
		IPAddress: "192.168.1.1",
	}
	log.SetMetadata("notices", 0)

	err := s.repo.Create(s.ctx, log)
	s.NoError(err)
	s.NotEqual(uuid.Nil, log.ID)
	s.NotZero(log.CreatedAt)
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_CreateNil() {
	s.ErrorIs(s.repo.Create(s.ctx, nil), ErrAuditLogNil)
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_ListFilters() {
	now := time.Now().UTC()
	s.create("user-1", models.AuditActionSummaryViewed, models.SectionSales, now.Add(-3*time.Hour))
	s.create("user-1", models.AuditActionSummaryExported, models.SectionSales, now.Add(-2*time.Hour))
	s.create("user-2", models.AuditActionSummaryViewed, models.SectionBank, now.Add(-1*time.Hour))

	logs, total, err := s.repo.List(s.ctx, models.AuditLogFilter{}, 0, 10)
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Require().Len(logs, 3)
	s.Equal("user-2", logs[0].UserID)

	logs, total, err = s.repo.List(s.ctx, models.AuditLogFilter{UserID: "user-1"}, 0, 10)
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Len(logs, 2)

	logs, total, err = s.repo.List(s.ctx, models.AuditLogFilter{Action: models.AuditActionSummaryExported}, 0, 10)
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Equal(models.SectionSales, logs[0].Resource)

	logs, _, err = s.repo.List(s.ctx, models.AuditLogFilter{Resource: models.SectionBank}, 0, 10)
	s.Require().NoError(err)
	s.Len(logs, 1)

	start := now.Add(-150 * time.Minute)
	logs, total, err = s.repo.List(s.ctx, models.AuditLogFilter{StartDate: &start}, 0, 10)
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Len(logs, 2)
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_ListPagination() {
	now := time.Now().UTC()
	for i := 0; i < 5; i++ {
		s.create("user-1", models.AuditActionSummaryViewed, models.SectionDrivers, now.Add(time.Duration(-i)*time.Minute))
	}

	logs, total, err := s.repo.List(s.ctx, models.AuditLogFilter{}, 2, 2)
	s.Require().NoError(err)
	s.Equal(int64(5), total)
	s.Len(logs, 2)

	logs, _, err = s.repo.List(s.ctx, models.AuditLogFilter{}, -1, 0)
	s.Require().NoError(err)
	s.Len(logs, 5)
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_DeleteBefore() {
	now := time.Now().UTC()
	s.create("user-1", models.AuditActionSummaryViewed, models.SectionSales, now.Add(-48*time.Hour))
	s.create("user-1", models.AuditActionSummaryViewed, models.SectionBank, now.Add(-25*time.Hour))
	s.create("user-2", models.AuditActionSummaryViewed, models.SectionBank, now.Add(-time.Hour))

	deleted, err := s.repo.DeleteBefore(s.ctx, now.Add(-24*time.Hour))
	s.Require().NoError(err)
	s.Equal(int64(2), deleted)

	logs, total, err := s.repo.List(s.ctx, models.AuditLogFilter{}, 0, 10)
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Equal("user-2", logs[0].UserID)

	deleted, err = s.repo.DeleteBefore(s.ctx, now.Add(-24*time.Hour))
	s.NoError(err)
	s.Zero(deleted)
}
