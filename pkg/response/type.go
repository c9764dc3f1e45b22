package response

import "fmt"

// HTTPError is the uniform error body sent to clients. Nothing else about an
// internal failure (stack, cause chain, implementation detail) ever reaches
// the transport.
type HTTPError struct {
	HTTPCode int    `json:"httpCode"`
	Code     int    `json:"code"`
	Message  string `json:"message"`
}

func (e HTTPError) Error() string {
	return fmt.Sprintf("http %d (code %d): %s", e.HTTPCode, e.Code, e.Message)
}

// Default class messages, used when a specific message is not supplied.
const (
	msgBadRequest          = "Could not understand the request, please modify."
	msgUnauthorized        = "You dont have access to this resource."
	msgNotFound            = "Resource could not be found."
	msgConflict            = "Resources conflicted."
	msgInternalServerError = "Something broke, errors has been logged and will be investigated."
)

// NewBadRequest returns a 400 error with an application code.
func NewBadRequest(message string, code int) HTTPError {
	if message == "" {
		message = msgBadRequest
	}
	return HTTPError{HTTPCode: 400, Code: code, Message: message}
}

// NewUnauthorized returns a 401 error with an application code.
func NewUnauthorized(message string, code int) HTTPError {
	if message == "" {
		message = msgUnauthorized
	}
	return HTTPError{HTTPCode: 401, Code: code, Message: message}
}

// NewNotFound returns a 404 error with an application code.
func NewNotFound(message string, code int) HTTPError {
	if message == "" {
		message = msgNotFound
	}
	return HTTPError{HTTPCode: 404, Code: code, Message: message}
}

// NewConflict returns a 409 error with an application code.
func NewConflict(message string, code int) HTTPError {
	if message == "" {
		message = msgConflict
	}
	return HTTPError{HTTPCode: 409, Code: code, Message: message}
}

// NewInternalServerError returns a 500 error with an application code.
func NewInternalServerError(message string, code int) HTTPError {
	if message == "" {
		message = msgInternalServerError
	}
	return HTTPError{HTTPCode: 500, Code: code, Message: message}
}
