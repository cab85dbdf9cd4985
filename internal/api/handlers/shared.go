package handlers

import (
	"encoding/json"
	"net/http"
)

// parseJSON decodes a request body into the given request type.
// Unknown fields are rejected so typos surface as 400s instead of silently
// dropped values.
func parseJSON[T any](r *http.Request) (T, error) {
	var req T

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	err := decoder.Decode(&req)

	return req, err
}
