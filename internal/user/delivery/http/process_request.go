package http

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"taskdesk/pkg/response"
)

type setupUserReq struct {
	FirstName string
	LastName  string
}

// processSetupBody decodes and shape-checks the setup body. An empty string
// counts as missing (1004); a present non-string key is 1005.
func processSetupBody(c *gin.Context) (setupUserReq, *response.HTTPError) {
	var raw map[string]any
	if err := json.NewDecoder(c.Request.Body).Decode(&raw); err != nil || raw == nil {
		httpErr := response.MissingBody()
		return setupUserReq{}, &httpErr
	}

	firstName, httpErr := requireNameKey(raw, "firstName")
	if httpErr != nil {
		return setupUserReq{}, httpErr
	}
	lastName, httpErr := requireNameKey(raw, "lastName")
	if httpErr != nil {
		return setupUserReq{}, httpErr
	}

	return setupUserReq{FirstName: firstName, LastName: lastName}, nil
}

func requireNameKey(raw map[string]any, key string) (string, *response.HTTPError) {
	value, ok := raw[key]
	if !ok || value == nil {
		httpErr := response.MissingBodyKey(key)
		return "", &httpErr
	}
	s, ok := value.(string)
	if !ok {
		httpErr := response.BodyKeyWrongType(key, "string")
		return "", &httpErr
	}
	if s == "" {
		httpErr := response.MissingBodyKey(key)
		return "", &httpErr
	}
	return s, nil
}
