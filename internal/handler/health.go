package handler

import "net/http"

// HandleHealthz reports liveness. It deliberately skips auth and the
// database so probes stay cheap.
func HandleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
