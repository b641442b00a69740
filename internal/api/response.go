package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Response is the envelope around every API reply.
type Response struct {
	Success   bool      `json:"success"`
	Data      any       `json:"data,omitempty"`
	Error     *APIError `json:"error,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
}

// APIError describes a failed request. Code is stable for clients to match on.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var errorCodes = map[int]string{
	http.StatusBadRequest:          "BAD_REQUEST",
	http.StatusNotFound:            "NOT_FOUND",
	http.StatusMethodNotAllowed:    "METHOD_NOT_ALLOWED",
	http.StatusUnprocessableEntity: "OUT_OF_RANGE",
	http.StatusInternalServerError: "INTERNAL_ERROR",
}

// respond writes data with status 200.
func respond(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, Response{Success: true, Data: data})
}

// fail writes an error reply. The code is derived from status.
func fail(w http.ResponseWriter, status int, format string, args ...any) {
	code, ok := errorCodes[status]
	if !ok {
		code = "ERROR"
	}
	writeJSON(w, status, Response{
		Error: &APIError{Code: code, Message: fmt.Sprintf(format, args...)},
	})
}

// writeJSON echoes the request ID set by the RequestID middleware into the
// body. Encoding errors are dropped: the status line is already sent.
func writeJSON(w http.ResponseWriter, status int, resp Response) {
	resp.RequestID = w.Header().Get(RequestIDHeader)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
