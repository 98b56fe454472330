package handler

import (
	"encoding/json"
	"net/http"
)

// HandleHealthz reports process liveness with a 200 OK and a small
// JSON body.
func HandleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
