package dto

import "encoding/json"

// Envelope is the response wrapper shared by every JSON endpoint on the
// gateway. Code 200 is the sole success discriminant; Data is decoded by the
// caller only after the code check.
type Envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Page is the gateway's generic pagination wrapper.
type Page[T any] struct {
	Total   int64 `json:"total"`
	Records []T   `json:"records"`
}
