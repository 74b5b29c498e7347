package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"fleet-dashboard/internal/models"
	"fleet-dashboard/internal/repositories/repository_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type FleetServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *repository_mocks.MockFleetRepositoryInterface
	metrics *recordingMetrics
	service *fleetService
}

func TestFleetServiceSuite(t *testing.T) {
	suite.Run(t, new(FleetServiceTestSuite))
}

func (s *FleetServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = repository_mocks.NewMockFleetRepositoryInterface(s.ctrl)
	s.metrics = newRecordingMetrics()
	s.service = NewFleetService(s.repo, s.metrics).(*fleetService)
	s.service.now = fixedClock
}

func (s *FleetServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *FleetServiceTestSuite) TestGetDriverSummary() {
	drivers := []models.Driver{
		{
			ID:            "1",
			DriverName:    models.Text(gofakeit.Name()),
			Gender:        models.GenderMale,
			DateOfBirth:   models.NewDate(1990, time.June, 15),
			IqamaExpiry:   models.NewDate(2025, time.July, 15),
			LicenseExpiry: models.NewDate(2027, time.January, 1),
			CreatedAt:     models.NewDate(2025, time.June, 2),
			Vehicle:       &models.Ref{ID: "10"},
		},
		{
			ID:            "2",
			DriverName:    models.Text(gofakeit.Name()),
			Gender:        models.GenderFemale,
			DateOfBirth:   models.NewDate(2000, time.June, 16),
			LicenseExpiry: models.NewDate(2025, time.July, 16),
			CreatedAt:     models.NewDate(2025, time.May, 31),
		},
		{
			ID:         "3",
			DriverName: models.Text(gofakeit.Name()),
		},
	}
	s.repo.EXPECT().ListDrivers(gomock.Any()).Return(drivers, nil)

	summary, err := s.service.GetDriverSummary(context.Background())

	s.Require().NoError(err)
	s.Empty(summary.Notices)
	stats := summary.Stats
	s.Equal(3, stats.TotalDrivers)
	s.Equal(1, stats.ExpiringDocuments)
	s.Equal(1, stats.NewThisMonth)
	s.Equal(2, stats.DriversWithAge)
	s.InDelta(29.5, stats.AverageAge, 0.001)
	s.Equal(1, stats.Male)
	s.Equal(1, stats.Female)
	s.Equal(1, stats.OtherGender)
	s.Equal(1, stats.WithVehicle)
	s.Equal(2, stats.WithoutVehicle)
}

func (s *FleetServiceTestSuite) TestGetDriverSummary_FetchFailure() {
	s.repo.EXPECT().ListDrivers(gomock.Any()).Return(nil, errors.New("404"))

	summary, err := s.service.GetDriverSummary(context.Background())

	s.Require().NoError(err)
	s.Len(summary.Notices, 1)
	s.Zero(summary.Stats.TotalDrivers)
	s.Zero(summary.Stats.AverageAge)
}

func (s *FleetServiceTestSuite) TestGetVehicleSummary() {
	vehicles := []models.Vehicle{
		{ID: "10", PlateNumber: models.Text(gofakeit.LetterN(7)), VehicleType: "sedan", Status: "active",
			InsuranceExpiry: models.NewDate(2025, time.June, 1), Driver: &models.Ref{ID: "1"}},
		{ID: "11", PlateNumber: models.Text(gofakeit.LetterN(7)), VehicleType: "van", Status: "maintenance",
			ServiceDue: models.NewDate(2025, time.September, 1), CreatedAt: models.NewDate(2025, time.June, 10)},
		{ID: "12", PlateNumber: models.Text(gofakeit.LetterN(7)), VehicleType: "sedan"},
	}
	s.repo.EXPECT().ListVehicles(gomock.Any()).Return(vehicles, nil)

	summary, err := s.service.GetVehicleSummary(context.Background())

	s.Require().NoError(err)
	stats := summary.Stats
	s.Equal(3, stats.TotalVehicles)
	s.Equal(1, stats.ExpiringDocuments)
	s.Equal(1, stats.NewThisMonth)
	s.Equal(1, stats.WithDriver)
	s.Equal(2, stats.WithoutDriver)
	s.Equal(map[string]int{"active": 1, "maintenance": 1, "unknown": 1}, stats.ByStatus)
	s.Equal(map[string]int{"sedan": 2, "van": 1}, stats.ByType)
}

func (s *FleetServiceTestSuite) TestGetVehicleSummary_Cancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.repo.EXPECT().ListVehicles(gomock.Any()).Return(nil, context.Canceled)

	summary, err := s.service.GetVehicleSummary(ctx)

	s.ErrorIs(err, context.Canceled)
	s.Nil(summary)
}
