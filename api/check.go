package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stefanreuther/c2ng-sub017/bbcode"
	"github.com/stefanreuther/c2ng-sub017/linkresolver"
	"github.com/stefanreuther/c2ng-sub017/render"
)

type CheckRequest struct {
	Text  string `json:"text" binding:"required"`
	Flags string `json:"flags" binding:"omitempty,alpha,max=8"`
}

type CheckResponse struct {
	Warnings []bbcode.SerializableWarning `json:"warnings"`
}

// checkText parses forum markup and reports what is wrong with it,
// including links which do not resolve for the acting user.
func (service *Service) checkText(ctx *gin.Context) {
	var req CheckRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	resolver := linkresolver.New(ctx, service.store, extractUserIDFromCtx(ctx), service.config.MessageIDDomain)

	var warns bbcode.Warnings
	render.ParseWithLinks("forum"+req.Flags, req.Text, resolver, &warns)

	ctx.JSON(http.StatusOK, CheckResponse{Warnings: warns.Serialize()})
}
