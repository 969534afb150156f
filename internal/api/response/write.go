package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes data as a JSON body. Session payloads mirror live terminal
// state, so every response is marked uncacheable.
func JSON(w http.ResponseWriter, status int, data any) {
	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}
