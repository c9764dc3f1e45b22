package response

import "taskdesk/pkg/apperror"

// Application code ranges: platform 1000-1999, user/auth 2000-2999,
// task 3000-3999.

type mapping struct {
	build   func(message string, code int) HTTPError
	code    int
	message string
}

// errorTable maps every name in the taxonomy to exactly one HTTP error. A
// lookup miss never fails the mapper; it falls back to the generic 500/1007.
var errorTable = map[string]mapping{
	apperror.TaskNotYours:      {NewUnauthorized, 3001, "Task is not yours"},
	apperror.TaskNotFound:      {NewNotFound, 3002, "Task not found"},
	apperror.TaskSchemaInvalid: {NewBadRequest, 3004, "Schema invalid"},

	apperror.UserProfileIncomplete: {NewConflict, 2007, ""},
	apperror.UserNotFound:          {NewNotFound, 2009, "User not found"},

	apperror.AuthFailed:                 {NewUnauthorized, 2001, "Auth Failed"},
	apperror.AuthMissingHeaders:         {NewUnauthorized, 2003, "Missing headers"},
	apperror.AuthMissingAuthorization:   {NewUnauthorized, 2004, "Missing header authorization"},
	apperror.AuthAuthorizationIsArray:   {NewUnauthorized, 2005, "Header authorization is an array"},
	apperror.AuthAuthorizationNotBearer: {NewUnauthorized, 2006, "Header authorization is not starting with Bearer"},
	apperror.AuthUserNotFound:           {NewUnauthorized, 2010, "Auth failed: user not found"},

	apperror.Unknown:   {NewInternalServerError, 1007, ""},
	apperror.WrongType: {NewInternalServerError, 1007, ""},
}

// MapToHTTPError translates an internal error into the client-facing HTTP
// error. Pure: it does not log or write anything. Inputs that are nil, not
// named errors, or carry a name outside the taxonomy map to the generic
// InternalServerError.
func MapToHTTPError(err error) HTTPError {
	if err == nil {
		return InternalServerError()
	}
	name := apperror.NameOf(err)
	if name == "" {
		return InternalServerError()
	}
	m, ok := errorTable[name]
	if !ok {
		return InternalServerError()
	}
	return m.build(m.message, m.code)
}
