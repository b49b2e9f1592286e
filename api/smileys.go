package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stefanreuther/c2ng-sub017/inline"
)

func (service *Service) listSmileys(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, inline.Smileys())
}
