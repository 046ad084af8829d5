package v1

import (
	"fmt"
	"net/http"

	"github.com/cybervault/crypto-engine/internal/domain/crypto"
	"github.com/cybervault/crypto-engine/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// writeError maps err onto a status: unknown key ids are 404, other engine errors 400,
// anything else 500 with the detail only logged.
func writeError(ctx *gin.Context, log logger.Logger, err error) {
	code := crypto.ErrorCode(err)

	switch {
	case crypto.IsKeyNotFound(err):
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error(), Code: code})
	case crypto.IsClientError(err):
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error(), Code: code})
	default:
		log.Error(fmt.Sprintf("%s %s failed: %v", ctx.Request.Method, ctx.FullPath(), err))
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal server error", Code: code})
	}
}

// bindRequest decodes and validates the JSON body, writing a 400 on failure
func bindRequest(ctx *gin.Context, request interface{ Validate() error }) bool {
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request body: %v", err)})
		return false
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return false
	}
	return true
}
