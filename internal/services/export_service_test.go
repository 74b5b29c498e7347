package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"fleet-dashboard/internal/models"
	"fleet-dashboard/internal/repositories/repository_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
)

type ExportServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	attendance *repository_mocks.MockAttendanceRepositoryInterface
	trips      *repository_mocks.MockTripRepositoryInterface
	metrics    *recordingMetrics
	service    ExportServiceInterface
}

func TestExportServiceSuite(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}

func (s *ExportServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.attendance = repository_mocks.NewMockAttendanceRepositoryInterface(s.ctrl)
	s.trips = repository_mocks.NewMockTripRepositoryInterface(s.ctrl)
	s.metrics = newRecordingMetrics()
	s.service = NewExportService(
		NewAttendanceService(s.attendance, s.metrics),
		NewSalesService(s.trips, s.metrics),
		s.metrics,
	)
}

func (s *ExportServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ExportServiceTestSuite) open(data []byte) *excelize.File {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = f.Close() })
	return f
}

func (s *ExportServiceTestSuite) cell(f *excelize.File, sheet, axis string) string {
	value, err := f.GetCellValue(sheet, axis)
	s.Require().NoError(err)
	return value
}

func (s *ExportServiceTestSuite) TestExportAtRiskDrivers() {
	absentee, steady := gofakeit.Name(), gofakeit.Name()
	s.attendance.EXPECT().List(gomock.Any(), gomock.Any()).Return([]models.AttendanceRecord{
		attendanceRecord("7", absentee, models.AttendanceStatusAbsent, "100"),
		attendanceRecord("7", absentee, models.AttendanceStatusLate, "25"),
		attendanceRecord("8", steady, models.AttendanceStatusPresent, "0"),
	}, nil)

	data, err := s.service.ExportAtRiskDrivers(context.Background(), models.AttendanceFilter{})

	s.Require().NoError(err)
	f := s.open(data)
	s.Equal([]string{atRiskSheet}, f.GetSheetList())
	s.Equal("Driver ID", s.cell(f, atRiskSheet, "A1"))
	s.Equal("Critical", s.cell(f, atRiskSheet, "I1"))
	s.Equal("7", s.cell(f, atRiskSheet, "A2"))
	s.Equal(absentee, s.cell(f, atRiskSheet, "B2"))
	s.Equal("2", s.cell(f, atRiskSheet, "C2"))
	s.Equal("125", s.cell(f, atRiskSheet, "G2"))
	s.Equal("100.0", s.cell(f, atRiskSheet, "H2"))
	s.Equal("Yes", s.cell(f, atRiskSheet, "I2"))
	s.Empty(s.cell(f, atRiskSheet, "A3"))
	s.Equal(1, s.metrics.counter(MetricExportGenerated, map[string]string{"export": exportAtRisk, "status": "success"}))
}

func (s *ExportServiceTestSuite) TestExportAtRiskDrivers_Empty() {
	s.attendance.EXPECT().List(gomock.Any(), gomock.Any()).Return([]models.AttendanceRecord{
		attendanceRecord("8", gofakeit.Name(), models.AttendanceStatusPresent, "0"),
	}, nil)

	data, err := s.service.ExportAtRiskDrivers(context.Background(), models.AttendanceFilter{})

	s.ErrorIs(err, ErrExportEmpty)
	s.Nil(data)
	s.Equal(1, s.metrics.counter(MetricExportGenerated, map[string]string{"export": exportAtRisk, "status": "empty"}))
}

func (s *ExportServiceTestSuite) TestExportAtRiskDrivers_Degraded() {
	s.attendance.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

	data, err := s.service.ExportAtRiskDrivers(context.Background(), models.AttendanceFilter{})

	s.ErrorIs(err, ErrExportUnavailable)
	s.Nil(data)
	s.Equal(1, s.metrics.counter(MetricExportGenerated, map[string]string{"export": exportAtRisk, "status": "failed"}))
}

func (s *ExportServiceTestSuite) TestExportSales() {
	ali, sara := gofakeit.Name(), gofakeit.Name()
	filter := models.TripFilter{DriverID: ""}
	s.trips.EXPECT().List(gomock.Any(), filter).Return([]models.Trip{
		trip("1", ali, models.PaymentMethodCash, "40"),
		trip("1", ali, models.PaymentMethodCard, "60"),
		trip("2", sara, models.PaymentMethodWallet, "150"),
	}, nil)

	data, err := s.service.ExportSales(context.Background(), filter)

	s.Require().NoError(err)
	f := s.open(data)
	s.Equal([]string{salesSummarySheet, salesDriversSheet}, f.GetSheetList())

	s.Equal("Total Trips", s.cell(f, salesSummarySheet, "A2"))
	s.Equal("3", s.cell(f, salesSummarySheet, "B2"))
	s.Equal("250", s.cell(f, salesSummarySheet, "B8"))
	s.Equal("16", s.cell(f, salesSummarySheet, "B10"))

	s.Equal("2", s.cell(f, salesDriversSheet, "A2"))
	s.Equal(sara, s.cell(f, salesDriversSheet, "B2"))
	s.Equal("150", s.cell(f, salesDriversSheet, "F2"))
	s.Equal("1", s.cell(f, salesDriversSheet, "A3"))
	s.Equal("TOTAL", s.cell(f, salesDriversSheet, "A4"))

	formula, err := f.GetCellFormula(salesDriversSheet, "F4")
	s.Require().NoError(err)
	s.Equal("SUM(F2:F3)", formula)
}

func (s *ExportServiceTestSuite) TestExportSales_NoTrips() {
	s.trips.EXPECT().List(gomock.Any(), gomock.Any()).Return([]models.Trip{}, nil)

	_, err := s.service.ExportSales(context.Background(), models.TripFilter{})

	s.ErrorIs(err, ErrExportEmpty)
}

func (s *ExportServiceTestSuite) TestExportSales_Cancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.trips.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, context.Canceled)

	_, err := s.service.ExportSales(ctx, models.TripFilter{})

	s.ErrorIs(err, context.Canceled)
}
