package models

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

const (
	ErrorCodeValidation = "validation_error"
	ErrorCodeProcessing = "processing_error"
)
