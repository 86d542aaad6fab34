package errors

// ErrorInfo contains detailed error information carried in error responses.
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g. "WEIGHT_ENTRY_NOT_FOUND"
	Details string `json:"details,omitempty"` // Detailed error description (optional)
}

// Response is the wire shape the error middleware emits for failed requests.
// It mirrors the success envelope used by the response package.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
