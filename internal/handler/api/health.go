package api

import "net/http"

type healthResponse struct {
	Status string `json:"status"`
}

// HealthHandler is the liveness probe: 200 means healthy, anything else
// (including no response at all) means unhealthy.
func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		RespondJSON(w, http.StatusOK, healthResponse{Status: "ok"})
	}
}
