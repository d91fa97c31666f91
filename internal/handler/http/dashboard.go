package http

import (
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/domain/dashboard"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// Get implements DashboardHandler.
func (h *dashboardHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.dashboardService.GetDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
