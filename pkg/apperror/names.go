package apperror

// Namespaced error names. This set is closed: every business failure in the
// service carries exactly one of these names, and HTTP mapping dispatches on
// the name string alone — never on message text or cause inspection.

// Task errors.
const (
	TaskSchemaInvalid = "task/schema_invalid"
	TaskNotFound      = "task/could_not_find_task_on_id"
	TaskNotYours      = "task/task_not_yours"
)

// User errors.
const (
	UserNotFound          = "user/user_not_found"
	UserProfileIncomplete = "user/profile_incomplete"
)

// Auth errors. Ordering of the checks that raise them is significant, see
// internal/auth.
const (
	AuthFailed                 = "auth/auth_failed"
	AuthMissingHeaders         = "auth/auth_missing_headers"
	AuthMissingAuthorization   = "auth/auth_missing_authorization"
	AuthAuthorizationIsArray   = "auth/auth_authorization_is_array"
	AuthAuthorizationNotBearer = "auth/auth_authorization_not_starting_with_bearer"
	AuthUserNotFound           = "auth/auth_failed_user_not_found"
)

// Generic errors.
const (
	Unknown   = "error/unknown"
	WrongType = "error/wrong_type"
)
