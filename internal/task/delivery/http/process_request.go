package http

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"taskdesk/pkg/response"
)

// taskBodyReq is the body shape shared by create and update.
type taskBodyReq struct {
	Name        string
	Description string
}

// processTaskBody decodes and shape-checks the request body: each required
// key must be present (1004) and a string (1005). The JSON-body middleware
// has already guaranteed the body parses.
func processTaskBody(c *gin.Context) (taskBodyReq, *response.HTTPError) {
	var raw map[string]any
	if err := json.NewDecoder(c.Request.Body).Decode(&raw); err != nil || raw == nil {
		httpErr := response.MissingBody()
		return taskBodyReq{}, &httpErr
	}

	name, httpErr := requireStringKey(raw, "name")
	if httpErr != nil {
		return taskBodyReq{}, httpErr
	}
	description, httpErr := requireStringKey(raw, "description")
	if httpErr != nil {
		return taskBodyReq{}, httpErr
	}

	return taskBodyReq{Name: name, Description: description}, nil
}

// requireStringKey distinguishes a missing key from a present key of the
// wrong type.
func requireStringKey(raw map[string]any, key string) (string, *response.HTTPError) {
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
	return s, nil
}

// processTaskID extracts the taskId route parameter (1001 when empty).
func processTaskID(c *gin.Context) (string, *response.HTTPError) {
	taskID := c.Param("taskId")
	if taskID == "" {
		httpErr := response.MissingParameter("taskId")
		return "", &httpErr
	}
	return taskID, nil
}
