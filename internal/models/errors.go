package models

import "errors"

var ErrNotFound = errors.New("requested resource not found")
var ErrValidation = errors.New("request is malformed or missing required fields")
var ErrNetwork = errors.New("upstream call failed or timed out")
var ErrBadPayload = errors.New("upstream response is malformed")

// ErrVendorUnavailable indicates a moving vendor declined or cannot take
// the delivery request. The vendor exists; it just said no.
var ErrVendorUnavailable = errors.New("vendor cannot accept the request")

// ErrOrderTerminal indicates a transition was attempted on an order that
// already reached delivered or cancelled.
var ErrOrderTerminal = errors.New("order already reached a terminal state")

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
}
