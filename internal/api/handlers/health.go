package handlers

import (
	"net/http"
)

// Health is the liveness probe. It says nothing about upstream ORS
// availability; a process that can serve this endpoint is alive.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "route-optimizer",
	})
}
