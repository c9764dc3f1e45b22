package http

import (
	"github.com/gin-gonic/gin"

	"taskdesk/internal/auth"
	"taskdesk/internal/task"
	"taskdesk/pkg/response"
)

// callerIdentity returns the identity the auth middleware attached. Its
// absence means the middleware chain is miswired, which is a 500, not an
// auth failure.
func (h *handler) callerIdentity(c *gin.Context) (auth.Identity, bool) {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		response.Error(c, response.MissingDecodedToken())
		return auth.Identity{}, false
	}
	return identity, true
}

// List godoc
// @Summary     List tasks
// @Description Returns all tasks owned by the caller, newest first.
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array}  taskResp
// @Failure     401 {object} response.HTTPError
// @Failure     500 {object} response.HTTPError
// @Router      /tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	identity, ok := h.callerIdentity(c)
	if !ok {
		return
	}

	output, err := h.uc.List(ctx, task.ListTasksInput{OwnerID: identity.UserID})
	if err != nil {
		response.MappedError(c, err)
		return
	}

	response.OK(c, newTaskListResp(output.Tasks))
}

// Detail godoc
// @Summary     Retrieve a task
// @Description Returns a single task by id. The task must be owned by the caller.
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       taskId path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     401 {object} response.HTTPError "Not yours (3001)"
// @Failure     404 {object} response.HTTPError "Not found (3002)"
// @Failure     500 {object} response.HTTPError
// @Router      /tasks/{taskId} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	identity, ok := h.callerIdentity(c)
	if !ok {
		return
	}
	taskID, httpErr := processTaskID(c)
	if httpErr != nil {
		response.Error(c, *httpErr)
		return
	}

	output, err := h.uc.Detail(ctx, task.DetailTaskInput{CallerID: identity.UserID, TaskID: taskID})
	if err != nil {
		response.MappedError(c, err)
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// Create godoc
// @Summary     Create a task
// @Description Creates a new task owned by the caller. The store assigns id and creation time.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body object{name=string,description=string} true "Task data"
// @Success     201 {object} taskResp
// @Failure     400 {object} response.HTTPError "Shape (1003-1005) or schema (3004)"
// @Failure     401 {object} response.HTTPError
// @Failure     500 {object} response.HTTPError
// @Router      /tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	identity, ok := h.callerIdentity(c)
	if !ok {
		return
	}
	body, httpErr := processTaskBody(c)
	if httpErr != nil {
		response.Error(c, *httpErr)
		return
	}

	output, err := h.uc.Create(ctx, task.CreateTaskInput{
		OwnerID:     identity.UserID,
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		response.MappedError(c, err)
		return
	}

	response.Created(c, newTaskResp(output.Task))
}

// Update godoc
// @Summary     Update a task
// @Description Replaces the name and description of an owned task.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       taskId path string true "Task ID"
// @Param       body body object{name=string,description=string} true "Fields to update"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.HTTPError
// @Failure     401 {object} response.HTTPError
// @Failure     404 {object} response.HTTPError
// @Failure     500 {object} response.HTTPError
// @Router      /tasks/{taskId} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	identity, ok := h.callerIdentity(c)
	if !ok {
		return
	}
	taskID, httpErr := processTaskID(c)
	if httpErr != nil {
		response.Error(c, *httpErr)
		return
	}
	body, httpErr := processTaskBody(c)
	if httpErr != nil {
		response.Error(c, *httpErr)
		return
	}

	output, err := h.uc.Update(ctx, task.UpdateTaskInput{
		CallerID:    identity.UserID,
		TaskID:      taskID,
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		response.MappedError(c, err)
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes an owned task by id.
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       taskId path string true "Task ID"
// @Success     204 "No Content"
// @Failure     401 {object} response.HTTPError
// @Failure     404 {object} response.HTTPError
// @Failure     500 {object} response.HTTPError
// @Router      /tasks/{taskId} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	identity, ok := h.callerIdentity(c)
	if !ok {
		return
	}
	taskID, httpErr := processTaskID(c)
	if httpErr != nil {
		response.Error(c, *httpErr)
		return
	}

	if err := h.uc.Delete(ctx, task.DeleteTaskInput{CallerID: identity.UserID, TaskID: taskID}); err != nil {
		response.MappedError(c, err)
		return
	}

	response.NoContent(c)
}
