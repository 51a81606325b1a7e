package serverutils

// Every endpoint answers with the same envelope:
// {success, data, error?: {code, message, details?, correlationId?}}

type ApiError struct {
	Code          string      `json:"code"`
	Message       string      `json:"message"`
	Details       interface{} `json:"details,omitempty"`
	CorrelationId string      `json:"correlationId,omitempty"`
}

type ApiResponse[T any] struct {
	Success bool      `json:"success"`
	Data    T         `json:"data"`
	Error   *ApiError `json:"error,omitempty"`
}

const (
	CodeBadRequest   = "BAD_REQUEST"
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeNotFound     = "NOT_FOUND"
	CodeInternal     = "INTERNAL_ERROR"
)

func SuccessResponse[T any](data T) ApiResponse[T] {
	return ApiResponse[T]{Success: true, Data: data}
}

func ErrorResponse(code, message string) ApiResponse[any] {
	return ApiResponse[any]{
		Success: false,
		Error:   &ApiError{Code: code, Message: message},
	}
}

func ErrorResponseWithDetails(code, message string, details interface{}, correlationId string) ApiResponse[any] {
	return ApiResponse[any]{
		Success: false,
		Error: &ApiError{
			Code:          code,
			Message:       message,
			Details:       details,
			CorrelationId: correlationId,
		},
	}
}
