package helper

// ServiceError carries a business-rule failure out of the core so the
// handler can map it onto the response envelope.
type ServiceError struct {
	Status  int
	Message string
	Extra   map[string]any
}

func (e *ServiceError) Error() string {
	return e.Message
}

func NewServiceError(status int, message string) *ServiceError {
	return &ServiceError{Status: status, Message: message}
}
