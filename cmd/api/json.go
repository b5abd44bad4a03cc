package main

import (
	"encoding/json"
	"net/http"

	"github.com/dcastellanos/financial-management/internal/response"
)

func writeJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(data)
}

func writeJSONError(w http.ResponseWriter, r *http.Request, status int, message string) error {
	return writeJSON(w, status, &response.ErrorResponse{
		Status:   "error",
		Endpoint: r.URL.RequestURI(),
		Method:   r.Method,
		Message:  message,
	})
}

func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1_048_576 // 1 MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	return dec.Decode(data)
}
