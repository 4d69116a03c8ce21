package controllers

import (
	"medora-portal/internal/pkg/constvars"
	"medora-portal/internal/pkg/utils"
	"net/http"
)

// PortalCounter reports how many portals are live.
type PortalCounter interface {
	Len() int
}

type HealthController struct {
	Portals PortalCounter
}

func NewHealthController(portals PortalCounter) *HealthController {
	return &HealthController{Portals: portals}
}

func (ctrl *HealthController) Liveness(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, map[string]int{
		"portals": ctrl.Portals.Len(),
	})
}
