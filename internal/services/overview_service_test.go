package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"fleet-dashboard/internal/aggregates"
	"fleet-dashboard/internal/models"
	"fleet-dashboard/internal/repositories/repository_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type OverviewServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	attendance *repository_mocks.MockAttendanceRepositoryInterface
	budgets    *repository_mocks.MockBudgetRepositoryInterface
	bank       *repository_mocks.MockBankRepositoryInterface
	trips      *repository_mocks.MockTripRepositoryInterface
	fleet      *repository_mocks.MockFleetRepositoryInterface
	metrics    *recordingMetrics
	service    *overviewService
}

func TestOverviewServiceSuite(t *testing.T) {
	suite.Run(t, new(OverviewServiceTestSuite))
}

func (s *OverviewServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.attendance = repository_mocks.NewMockAttendanceRepositoryInterface(s.ctrl)
	s.budgets = repository_mocks.NewMockBudgetRepositoryInterface(s.ctrl)
	s.bank = repository_mocks.NewMockBankRepositoryInterface(s.ctrl)
	s.trips = repository_mocks.NewMockTripRepositoryInterface(s.ctrl)
	s.fleet = repository_mocks.NewMockFleetRepositoryInterface(s.ctrl)
	s.metrics = newRecordingMetrics()

	s.service = NewOverviewService(
		NewAttendanceService(s.attendance, s.metrics),
		NewBudgetService(s.budgets, s.metrics),
		NewBankService(s.bank, s.metrics),
		NewSalesService(s.trips, s.metrics),
		NewFleetService(s.fleet, s.metrics),
	).(*overviewService)
	s.service.now = fixedClock
}

func (s *OverviewServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OverviewServiceTestSuite) expectFleet() {
	s.fleet.EXPECT().ListDrivers(gomock.Any()).Return([]models.Driver{{ID: "1", DriverName: models.Text(gofakeit.Name())}}, nil)
	s.fleet.EXPECT().ListVehicles(gomock.Any()).Return([]models.Vehicle{{ID: "10", PlateNumber: models.Text(gofakeit.LetterN(7))}}, nil)
}

func (s *OverviewServiceTestSuite) TestGetOverview_AllViews() {
	name := gofakeit.Name()
	s.attendance.EXPECT().List(gomock.Any(), models.AttendanceFilter{}).Return([]models.AttendanceRecord{
		attendanceRecord("1", name, models.AttendanceStatusAbsent, "50"),
		attendanceRecord("1", name, models.AttendanceStatusPresent, "0"),
	}, nil)
	s.budgets.EXPECT().ListBudgets(gomock.Any()).Return([]models.Budget{{ID: "1", Status: models.BudgetStatusActive}}, nil)
	s.budgets.EXPECT().ListPerformance(gomock.Any()).Return(nil, nil)
	s.budgets.EXPECT().ListAlerts(gomock.Any()).Return(nil, nil)
	s.bank.EXPECT().ListAccounts(gomock.Any()).Return([]models.BankAccount{{ID: "1", CurrentBalance: models.NewAmount(10), IsActive: true}}, nil)
	s.bank.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).Return(nil, nil)
	s.trips.EXPECT().List(gomock.Any(), models.TripFilter{}).Return([]models.Trip{
		trip("1", name, models.PaymentMethodCash, "25"),
	}, nil)
	s.expectFleet()

	overview, err := s.service.GetOverview(context.Background())

	s.Require().NoError(err)
	s.Empty(overview.Notices())
	s.Equal(fixedNow, overview.GeneratedAt)
	s.Equal(2, overview.Attendance.Stats.TotalRecords)
	s.Len(overview.Attendance.AtRiskDrivers, 1)
	s.Equal(1, overview.Budgets.Stats.ActiveBudgets)
	s.Equal("10", overview.Bank.Stats.TotalBalance.String())
	s.Equal(1, overview.Sales.Stats.TotalTrips)
	s.Equal(1, overview.Drivers.Stats.TotalDrivers)
	s.Equal(1, overview.Vehicles.Stats.TotalVehicles)
}

func (s *OverviewServiceTestSuite) TestGetOverview_FailureBecomesNotice() {
	s.attendance.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("backend returned 500"))
	s.budgets.EXPECT().ListBudgets(gomock.Any()).Return(nil, nil)
	s.budgets.EXPECT().ListPerformance(gomock.Any()).Return(nil, nil)
	s.budgets.EXPECT().ListAlerts(gomock.Any()).Return(nil, nil)
	s.bank.EXPECT().ListAccounts(gomock.Any()).Return(nil, nil)
	s.bank.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).Return(nil, nil)
	s.trips.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)
	s.expectFleet()

	overview, err := s.service.GetOverview(context.Background())

	s.Require().NoError(err)
	notices := overview.Notices()
	s.Require().Len(notices, 1)
	s.Equal("attendance records", notices[0].Source)
	s.Zero(overview.Attendance.Stats.TotalRecords)
	s.Equal(1, overview.Drivers.Stats.TotalDrivers)
}

func (s *OverviewServiceTestSuite) TestGetOverview_SalesListIsCapped() {
	trips := make([]models.Trip, 0, aggregates.DefaultDriverSalesLimit+5)
	for i := 0; i < aggregates.DefaultDriverSalesLimit+5; i++ {
		trips = append(trips, trip(gofakeit.UUID(), gofakeit.Name(), models.PaymentMethodCard, "10"))
	}
	s.attendance.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)
	s.budgets.EXPECT().ListBudgets(gomock.Any()).Return(nil, nil)
	s.budgets.EXPECT().ListPerformance(gomock.Any()).Return(nil, nil)
	s.budgets.EXPECT().ListAlerts(gomock.Any()).Return(nil, nil)
	s.bank.EXPECT().ListAccounts(gomock.Any()).Return(nil, nil)
	s.bank.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).Return(nil, nil)
	s.trips.EXPECT().List(gomock.Any(), gomock.Any()).Return(trips, nil)
	s.expectFleet()

	overview, err := s.service.GetOverview(context.Background())

	s.Require().NoError(err)
	s.Len(overview.Sales.Drivers, aggregates.DefaultDriverSalesLimit)
	s.Equal(aggregates.DefaultDriverSalesLimit+5, overview.Sales.TotalDrivers)
}

func (s *OverviewServiceTestSuite) TestGetOverview_Cancelled() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	s.attendance.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, ctx.Err()).AnyTimes()
	s.budgets.EXPECT().ListBudgets(gomock.Any()).Return(nil, ctx.Err()).AnyTimes()
	s.budgets.EXPECT().ListPerformance(gomock.Any()).Return(nil, ctx.Err()).AnyTimes()
	s.budgets.EXPECT().ListAlerts(gomock.Any()).Return(nil, ctx.Err()).AnyTimes()
	s.bank.EXPECT().ListAccounts(gomock.Any()).Return(nil, ctx.Err()).AnyTimes()
	s.bank.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).Return(nil, ctx.Err()).AnyTimes()
	s.trips.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, ctx.Err()).AnyTimes()
	s.fleet.EXPECT().ListDrivers(gomock.Any()).Return(nil, ctx.Err()).AnyTimes()
	s.fleet.EXPECT().ListVehicles(gomock.Any()).Return(nil, ctx.Err()).AnyTimes()

	overview, err := s.service.GetOverview(ctx)

	s.ErrorIs(err, context.DeadlineExceeded)
	s.Nil(overview)
}
