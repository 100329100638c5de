package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medicall/telehealth-api/internal/api/metrics"
	"github.com/medicall/telehealth-api/internal/core/ports"
)

// DashboardHandler renders the role dashboard for the authenticated session.
type DashboardHandler struct {
	dashboards ports.DashboardService
}

func NewDashboardHandler(dashboards ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards}
}

// Render returns the dashboard view for the session's user type.
//
// @Summary      Role dashboard
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        patients       query  string  false  "Filter hospital patients by name or patient id"
// @Param        doctors        query  string  false  "Filter hospital doctors by name or license"
// @Param        appointments   query  string  false  "Filter hospital appointments"
// @Param        prescriptions  query  string  false  "Filter hospital prescriptions"
// @Param        performance    query  string  false  "Filter doctor performance rows"
// @Param        members        query  string  false  "Filter insurance members by name or policy"
// @Param        hospitals      query  string  false  "Filter insurance hospital usage"
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Render(c echo.Context) error {
	session, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	var q dashboardQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	result, err := h.dashboards.Render(c.Request().Context(), session, ports.DashboardQuery{
		Patients:      q.Patients,
		Doctors:       q.Doctors,
		Appointments:  q.Appointments,
		Prescriptions: q.Prescriptions,
		Performance:   q.Performance,
		Members:       q.Members,
		Hospitals:     q.Hospitals,
	})
	if err != nil {
		return err
	}

	source := "record"
	if result.Fallback {
		source = "fallback"
	}
	view := string(result.View)
	if view == "" {
		view = "none"
	}
	metrics.DashboardRendersTotal.WithLabelValues(view, source).Inc()

	resp := dashboardResponse{View: string(result.View), Fallback: result.Fallback}
	if result.Data != nil {
		resp.Data = presentDashboard(result.Data)
	}
	return c.JSON(http.StatusOK, resp)
}
