package http

import (
	"github.com/gin-gonic/gin"

	"taskdesk/internal/user"
	"taskdesk/pkg/log"
)

type Handler interface {
	Setup(c *gin.Context)
	Detail(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc user.UseCase
}

func New(l log.Logger, uc user.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
