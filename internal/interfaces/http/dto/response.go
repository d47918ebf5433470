package dto

// DataResponse wraps list payloads the storefront reads from `data`
type DataResponse struct {
	Data any `json:"data"`
}

// MessageResponse carries a human-readable outcome message
type MessageResponse struct {
	Message string `json:"message"`
}

// CartResponse is the guest cart payload
type CartResponse struct {
	CartItems any `json:"cart_items"`
}

// OrderPlacedResponse confirms a successfully placed order
type OrderPlacedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID uint   `json:"order_id"`
}

// ValidationErrorResponse carries per-field validation messages keyed by
// the JSON field name, each holding one or more messages.
type ValidationErrorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// NewDataResponse wraps data in the list envelope
func NewDataResponse(data any) DataResponse {
	return DataResponse{Data: data}
}

// NewMessageResponse creates a message response
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}

// NewValidationErrorResponse creates a validation error response
func NewValidationErrorResponse(message string, errors map[string][]string) ValidationErrorResponse {
	return ValidationErrorResponse{Message: message, Errors: errors}
}
