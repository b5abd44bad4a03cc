package response

type APIResponse[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
}

// ErrorResponse is the body every failing endpoint returns. Endpoint and
// Method identify the call that failed so the UI can show them verbatim.
type ErrorResponse struct {
	Status   string `json:"status"`
	Endpoint string `json:"endpoint,omitempty"`
	Method   string `json:"method,omitempty"`
	Message  string `json:"message"`
}
