package response

import "fmt"

// Platform-level request errors, application code range 1000-1999. These are
// constructed directly by delivery code for request-shape failures; they never
// travel through the named-error taxonomy.

// MissingParameters — 1000.
func MissingParameters() HTTPError {
	return NewBadRequest("Missing Parameters", 1000)
}

// MissingParameter — 1001.
func MissingParameter(name string) HTTPError {
	return NewBadRequest(fmt.Sprintf("Missing parameter: %s", name), 1001)
}

// MissingRequest — 1002.
func MissingRequest() HTTPError {
	return NewInternalServerError("Missing Request", 1002)
}

// MissingBody — 1003.
func MissingBody() HTTPError {
	return NewBadRequest("Missing Body", 1003)
}

// MissingBodyKey — 1004.
func MissingBodyKey(key string) HTTPError {
	return NewBadRequest(fmt.Sprintf("Missing body property: %s", key), 1004)
}

// BodyKeyWrongType — 1005.
func BodyKeyWrongType(key, datatype string) HTTPError {
	return NewBadRequest(fmt.Sprintf("Expected: %s to be a %s", key, datatype), 1005)
}

// MissingDecodedToken — 1006.
func MissingDecodedToken() HTTPError {
	return NewInternalServerError("", 1006)
}

// InternalServerError — 1007, the catch-all.
func InternalServerError() HTTPError {
	return NewInternalServerError("", 1007)
}

// DataNotJSON — 1008.
func DataNotJSON() HTTPError {
	return NewBadRequest("Data is not json", 1008)
}

// BodyKeyInvalid — 1009.
func BodyKeyInvalid(key, reason string) HTTPError {
	return NewBadRequest(fmt.Sprintf("Property: %s is invalid because: %s", key, reason), 1009)
}

// MissingQueryParameter — 1010.
func MissingQueryParameter(name string) HTTPError {
	return NewBadRequest(fmt.Sprintf("Missing query parameter: %s", name), 1010)
}
