package dto

// Response is the uniform envelope every endpoint returns, success or
// failure. Data carries the operation result, or a field-error map on
// validation failures, or null.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message" example:"El curso Java101 se ha guardado correctamente"`
	Data    interface{} `json:"data"`
}

// NewResponse creates a success envelope
func NewResponse(message string, data interface{}) *Response {
	return &Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse creates a failure envelope
func NewErrorResponse(message string, data interface{}) *Response {
	return &Response{
		Success: false,
		Message: message,
		Data:    data,
	}
}

// PaginationInfo represents pagination metadata
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
}
