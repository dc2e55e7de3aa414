package dto

import "time"

// ErrorResponse is the JSON body returned for every failed request.
//
// Fields:
//   - Message: Human readable summary of what went wrong.
//   - ErrorDetails: Underlying error text, omitted when there is none.
//   - Timestamp: When the response was built (UTC).
type ErrorResponse struct {
	Message      string    `json:"message" example:"stock data not found"`
	ErrorDetails string    `json:"error,omitempty" example:"provider returned 404"`
	Timestamp    time.Time `json:"timestamp" example:"2025-09-01T12:00:00Z"`
}

// Error implements the error interface so an ErrorResponse can travel through c.Error.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse stamped with the current time.
//
// Parameters:
//   - message (string): Summary shown to the client.
//   - err (error): Optional cause; its text becomes ErrorDetails.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
