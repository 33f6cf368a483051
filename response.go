package main

import (
	"encoding/json"
	"net/http"
)

// APIResponse handles consistent header setting and JSON responses
type APIResponse struct {
	w        http.ResponseWriter
	r        *http.Request
	provider string
}

// errorBody is the shape of every non-2xx response
type errorBody struct {
	Detail string `json:"detail"`
}

// Respond creates a response helper from request context
func Respond(w http.ResponseWriter, r *http.Request) *APIResponse {
	return &APIResponse{w: w, r: r}
}

// SetProvider sets the X-Provider header value
func (a *APIResponse) SetProvider(provider string) *APIResponse {
	a.provider = provider
	return a
}

func (a *APIResponse) writeHeaders() {
	a.w.Header().Set("Content-Type", "application/json")
	if a.provider != "" {
		a.w.Header().Set("X-Provider", a.provider)
	}
}

// JSON writes headers and encodes data as JSON (200 OK)
func (a *APIResponse) JSON(data interface{}) error {
	a.writeHeaders()
	return json.NewEncoder(a.w).Encode(data)
}

// Raw writes an already-encoded JSON body as-is (200 OK)
func (a *APIResponse) Raw(body []byte) error {
	a.writeHeaders()
	_, err := a.w.Write(body)
	return err
}

// Error writes headers, sets status code, and encodes {"detail": detail}
func (a *APIResponse) Error(statusCode int, detail string) error {
	a.writeHeaders()
	a.w.WriteHeader(statusCode)
	return json.NewEncoder(a.w).Encode(errorBody{Detail: detail})
}
