package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stefanreuther/c2ng-sub017/token"
)

const (
	authorizationHeaderKey  = "authorization"
	authorizationTypeBearer = "bearer"
	authorizationPayloadKey = "authorization_payload"
)

// optionalAuthMiddleware identifies the acting user from a bearer token.
// Requests without an Authorization header pass as anonymous;
// a header that is present but invalid is rejected.
func optionalAuthMiddleware(tokenMaker token.Maker) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authorizationHeader := ctx.GetHeader(authorizationHeaderKey)
		if len(authorizationHeader) == 0 {
			ctx.Next()
			return
		}

		fields := strings.Fields(authorizationHeader)
		if len(fields) != 2 {
			err := errors.New("invalid authorization header format")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, NewErrorResponse(ErrUnauthorized,
				ErrorField{FieldName: authorizationHeaderKey, ErrorMessage: err.Error()}))
			return
		}

		authorizationType := strings.ToLower(fields[0])
		if authorizationType != authorizationTypeBearer {
			err := fmt.Errorf("unsupported authorization type %s", authorizationType)
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, NewErrorResponse(ErrUnauthorized,
				ErrorField{FieldName: authorizationHeaderKey, ErrorMessage: err.Error()}))
			return
		}

		payload, err := tokenMaker.VerifyToken(fields[1])
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, NewErrorResponse(ErrUnauthorized,
				ErrorField{FieldName: authorizationHeaderKey, ErrorMessage: err.Error()}))
			return
		}

		ctx.Set(authorizationPayloadKey, payload)
		ctx.Next()
	}
}

// extractUserIDFromCtx returns the acting user, 0 for anonymous requests.
func extractUserIDFromCtx(ctx *gin.Context) int64 {
	value, exists := ctx.Get(authorizationPayloadKey)
	if !exists {
		return 0
	}
	payload, ok := value.(*token.Payload)
	if !ok || payload == nil {
		return 0
	}
	return payload.UserID
}
