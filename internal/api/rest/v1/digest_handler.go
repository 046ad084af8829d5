package v1

import (
	"net/http"

	"github.com/cybervault/crypto-engine/internal/domain/crypto"
	"github.com/cybervault/crypto-engine/internal/domain/keys"
	"github.com/cybervault/crypto-engine/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// DigestHandler defines the interface for hash and HMAC routes
type DigestHandler interface {
	GenerateHash(ctx *gin.Context)
	VerifyHash(ctx *gin.Context)
	GenerateHMAC(ctx *gin.Context)
	VerifyHMAC(ctx *gin.Context)
}

type digestHandler struct {
	digestService keys.DigestService
	logger        logger.Logger
}

// NewDigestHandler creates a new DigestHandler
func NewDigestHandler(digestService keys.DigestService, logger logger.Logger) DigestHandler {
	return &digestHandler{
		digestService: digestService,
		logger:        logger,
	}
}

// GenerateHash handles the POST request to digest data
// @Summary Hash
// @Tags Digest
// @Accept json
// @Produce json
// @Param requestBody body HashRequest true "Data and algorithm (SHA-256, SHA-512, MD5)"
// @Success 200 {object} HashResponse
// @Failure 400 {object} ErrorResponse
// @Router /generate-hash [post]
func (handler *digestHandler) GenerateHash(ctx *gin.Context) {
	var request HashRequest
	if !bindRequest(ctx, &request) {
		return
	}

	algorithm, err := crypto.ParseHashAlgorithm(request.Algorithm)
	if err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	result, err := handler.digestService.Hash(ctx, request.Data, algorithm)
	if err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, HashResponse{HashValue: result.HashValue, Algorithm: string(result.Algorithm)})
}

// VerifyHash handles the POST request to compare data against a digest
// @Summary Verify a hash
// @Tags Digest
// @Accept json
// @Produce json
// @Param requestBody body VerifyHashRequest true "Data, base64 digest and algorithm"
// @Success 200 {object} VerifyResponse
// @Failure 400 {object} ErrorResponse
// @Router /verify-hash [post]
func (handler *digestHandler) VerifyHash(ctx *gin.Context) {
	var request VerifyHashRequest
	if !bindRequest(ctx, &request) {
		return
	}

	algorithm, err := crypto.ParseHashAlgorithm(request.Algorithm)
	if err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	result, err := handler.digestService.VerifyHash(ctx, request.Data, request.HashValue, algorithm)
	if err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, VerifyResponse{IsValid: result.IsValid, Message: result.Message})
}

// GenerateHMAC handles the POST request to compute an HMAC with a stored symmetric key
// @Summary HMAC
// @Tags Digest
// @Accept json
// @Produce json
// @Param requestBody body HMACRequest true "Key id, data and algorithm (SHA-256, SHA-512)"
// @Success 200 {object} HMACResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /generate-hmac [post]
func (handler *digestHandler) GenerateHMAC(ctx *gin.Context) {
	var request HMACRequest
	if !bindRequest(ctx, &request) {
		return
	}

	algorithm, err := crypto.ParseHashAlgorithm(request.Algorithm)
	if err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	result, err := handler.digestService.HMAC(ctx, request.KeyID, request.Data, algorithm)
	if err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, HMACResponse{MAC: result.MAC, Algorithm: string(result.Algorithm)})
}

// VerifyHMAC handles the POST request to compare data against an HMAC
// @Summary Verify an HMAC
// @Tags Digest
// @Accept json
// @Produce json
// @Param requestBody body VerifyHMACRequest true "Key id, data, base64 MAC and algorithm"
// @Success 200 {object} VerifyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /verify-hmac [post]
func (handler *digestHandler) VerifyHMAC(ctx *gin.Context) {
	var request VerifyHMACRequest
	if !bindRequest(ctx, &request) {
		return
	}

	algorithm, err := crypto.ParseHashAlgorithm(request.Algorithm)
	if err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	result, err := handler.digestService.VerifyHMAC(ctx, request.KeyID, request.Data, request.MAC, algorithm)
	if err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, VerifyResponse{IsValid: result.IsValid, Message: result.Message})
}
