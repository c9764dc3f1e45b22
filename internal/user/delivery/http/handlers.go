package http

import (
	"github.com/gin-gonic/gin"

	"taskdesk/internal/auth"
	"taskdesk/internal/user"
	"taskdesk/pkg/response"
)

func (h *handler) callerIdentity(c *gin.Context) (auth.Identity, bool) {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		response.Error(c, response.MissingDecodedToken())
		return auth.Identity{}, false
	}
	return identity, true
}

// Setup godoc
// @Summary     Set up the caller's profile
// @Description Creates the caller's profile from the token subject and the verified provider email.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body object{firstName=string,lastName=string} true "Profile names"
// @Success     204 "No Content"
// @Failure     400 {object} response.HTTPError
// @Failure     401 {object} response.HTTPError
// @Failure     409 {object} response.HTTPError "Profile incomplete (2007)"
// @Failure     500 {object} response.HTTPError
// @Router      /users [POST]
func (h *handler) Setup(c *gin.Context) {
	ctx := c.Request.Context()

	identity, ok := h.callerIdentity(c)
	if !ok {
		return
	}
	body, httpErr := processSetupBody(c)
	if httpErr != nil {
		response.Error(c, *httpErr)
		return
	}

	if err := h.uc.Setup(ctx, user.SetupUserInput{
		UserID:    identity.UserID,
		FirstName: body.FirstName,
		LastName:  body.LastName,
	}); err != nil {
		response.MappedError(c, err)
		return
	}

	response.NoContent(c)
}

// Detail godoc
// @Summary     Retrieve the caller's profile
// @Description Returns the profile of the authenticated caller.
// @Tags        Users
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} userResp
// @Failure     401 {object} response.HTTPError
// @Failure     404 {object} response.HTTPError "No profile (2009)"
// @Failure     500 {object} response.HTTPError
// @Router      /users [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	identity, ok := h.callerIdentity(c)
	if !ok {
		return
	}

	output, err := h.uc.Detail(ctx, user.DetailUserInput{UserID: identity.UserID})
	if err != nil {
		response.MappedError(c, err)
		return
	}

	response.OK(c, newUserResp(output.User))
}
