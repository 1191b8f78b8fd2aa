package httputil

import (
	"encoding/json"
	"net/http"
)

// Envelope is the standard response shape: {"success": bool, "result": ...}.
// Paginated listings additionally echo the normalized offset/limit.
type Envelope struct {
	Success bool        `json:"success"`
	Result  interface{} `json:"result,omitempty"`
	Offset  *int        `json:"offset,omitempty"`
	Limit   *int        `json:"limit,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			// Headers already sent, nothing left to do.
			return
		}
	}
}

// WriteSuccess writes {"success": true, "result": result}.
func WriteSuccess(w http.ResponseWriter, status int, result interface{}) {
	writeJSON(w, status, Envelope{Success: true, Result: result})
}

// WritePaginated writes a success envelope echoing the pagination window.
func WritePaginated(w http.ResponseWriter, status int, result interface{}, offset, limit int) {
	writeJSON(w, status, Envelope{Success: true, Result: result, Offset: &offset, Limit: &limit})
}

// WriteFailure writes {"success": false} with the given status.
func WriteFailure(w http.ResponseWriter, status int) {
	writeJSON(w, status, Envelope{Success: false})
}

// Common failure helpers.

func WriteBadRequest(w http.ResponseWriter) {
	WriteFailure(w, http.StatusBadRequest)
}

func WriteUnauthorized(w http.ResponseWriter) {
	WriteFailure(w, http.StatusUnauthorized)
}

func WriteNotFound(w http.ResponseWriter) {
	WriteFailure(w, http.StatusNotFound)
}

func WriteInternalError(w http.ResponseWriter) {
	WriteFailure(w, http.StatusInternalServerError)
}

func WriteTooManyRequests(w http.ResponseWriter) {
	WriteFailure(w, http.StatusTooManyRequests)
}
