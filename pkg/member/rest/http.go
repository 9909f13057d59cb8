package rest

import (
	"encoding/json"
	"net/http"

	apisv1alpha1 "github.com/bindstor/bindstor/pkg/apis/bindstor/v1alpha1"
	"github.com/bindstor/bindstor/pkg/common"
)

func (rs *restServer) buildRoutes() []common.Route {

	routes := common.RestRequestRoutes{}

	routes.AddToRoutes(rs.basicRoutes())

	routes.AddToRoutes(rs.statusRoutes())

	return routes.Routes()
}

func (rs *restServer) basicRoutes() []common.Route {
	return []common.Route{
		{
			Name:        "HealthCheck",
			Method:      "GET",
			Pattern:     "/healthz",
			HandlerFunc: rs.handleHealthCheck,
		},
	}
}

func (rs *restServer) statusRoutes() []common.Route {
	return []common.Route{
		{
			Name:        "Status",
			Method:      "GET",
			Pattern:     "/status",
			HandlerFunc: rs.handleStatus,
		},
		{
			Name:        "Events",
			Method:      "GET",
			Pattern:     "/events",
			HandlerFunc: rs.handleEvents,
		},
	}
}

func (rs *restServer) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// memberStatus is the summary reported by /status. PendingClaims makes the
// waiting-for-capacity condition queryable at any time
type memberStatus struct {
	Name    string `json:"name"`
	Version string `json:"version"`

	VolumeCount  int `json:"volumeCount"`
	ClaimCount   int `json:"claimCount"`
	BindingCount int `json:"bindingCount"`
	MountCount   int `json:"mountCount"`

	PendingClaims []string `json:"pendingClaims"`
	LostClaims    []string `json:"lostClaims"`
}

func (rs *restServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	status := memberStatus{
		Name:          rs.member.Name(),
		Version:       rs.member.Version(),
		VolumeCount:   len(rs.member.ListVolumes()),
		BindingCount:  len(rs.member.ListBindings()),
		MountCount:    len(rs.member.ListMounts()),
		PendingClaims: []string{},
		LostClaims:    []string{},
	}
	claims := rs.member.ListClaims()
	status.ClaimCount = len(claims)
	for _, claim := range claims {
		switch claim.Status.State {
		case apisv1alpha1.ClaimStatePending:
			status.PendingClaims = append(status.PendingClaims, claim.Name)
		case apisv1alpha1.ClaimStateLost:
			status.LostClaims = append(status.LostClaims, claim.Name)
		}
	}

	rs.writeJSON(w, status)
}

func (rs *restServer) handleEvents(w http.ResponseWriter, r *http.Request) {
	rs.writeJSON(w, rs.member.Events())
}

func (rs *restServer) writeJSON(w http.ResponseWriter, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		rs.logger.WithError(err).Error("Failed to encode the response body")
	}
}
