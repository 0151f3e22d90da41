package http

import (
	"net/http"

	"github.com/emsuite/ems-backend-go/internal/domain/analytics"
	"github.com/emsuite/ems-backend-go/internal/handler/http/response"
	"github.com/emsuite/ems-backend-go/internal/service/report"
)

type AnalyticsHandler interface {
	Attendance(w http.ResponseWriter, r *http.Request)
	Employees(w http.ResponseWriter, r *http.Request)
	Dashboard(w http.ResponseWriter, r *http.Request)

	ExportAttendanceXLSX(w http.ResponseWriter, r *http.Request)
	ExportAttendancePDF(w http.ResponseWriter, r *http.Request)
	ExportEmployeesXLSX(w http.ResponseWriter, r *http.Request)
}

type AnalyticsHandlerImpl struct {
	analyticsService analytics.AnalyticsService
	reportService    report.ReportService
}

func NewAnalyticsHandler(
	analyticsService analytics.AnalyticsService,
	reportService report.ReportService,
) AnalyticsHandler {
	return &AnalyticsHandlerImpl{
		analyticsService: analyticsService,
		reportService:    reportService,
	}
}

func (h *AnalyticsHandlerImpl) Attendance(w http.ResponseWriter, r *http.Request) {
	report, err := h.analyticsService.AttendanceAnalytics(r.Context(), queryInt(r, "month"), queryInt(r, "year"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

func (h *AnalyticsHandlerImpl) Employees(w http.ResponseWriter, r *http.Request) {
	report, err := h.analyticsService.EmployeeAnalytics(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

func (h *AnalyticsHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.analyticsService.Dashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, dashboard)
}

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

func (h *AnalyticsHandlerImpl) ExportAttendanceXLSX(w http.ResponseWriter, r *http.Request) {
	buf, filename, err := h.reportService.AttendanceReportXLSX(r.Context(), queryInt(r, "month"), queryInt(r, "year"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Download(w, buf, filename, contentTypeXLSX)
}

func (h *AnalyticsHandlerImpl) ExportAttendancePDF(w http.ResponseWriter, r *http.Request) {
	buf, filename, err := h.reportService.AttendanceReportPDF(r.Context(), queryInt(r, "month"), queryInt(r, "year"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Download(w, buf, filename, contentTypePDF)
}

func (h *AnalyticsHandlerImpl) ExportEmployeesXLSX(w http.ResponseWriter, r *http.Request) {
	buf, filename, err := h.reportService.EmployeeDirectoryXLSX(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Download(w, buf, filename, contentTypeXLSX)
}
