package v1

import (
	"net/http"

	"github.com/cybervault/crypto-engine/internal/domain/crypto"
	"github.com/cybervault/crypto-engine/internal/domain/keys"
	"github.com/cybervault/crypto-engine/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// KeyHandler defines the interface for handling key generation and key lookup
type KeyHandler interface {
	GenerateKey(ctx *gin.Context)
	DescribeKey(ctx *gin.Context)
}

type keyHandler struct {
	keyService keys.KeyGenerationService
	logger     logger.Logger
}

// NewKeyHandler creates a new KeyHandler
func NewKeyHandler(keyService keys.KeyGenerationService, logger logger.Logger) KeyHandler {
	return &keyHandler{
		keyService: keyService,
		logger:     logger,
	}
}

// GenerateKey handles the POST request to generate a symmetric key or an RSA key pair
// @Summary Generate a key
// @Description Generate an AES key (128/192/256) or an RSA key pair (1024/2048/4096) and store it.
// @Tags Key
// @Accept json
// @Produce json
// @Param requestBody body GenerateKeyRequest true "Key type and size"
// @Success 201 {object} GenerateKeyResponse
// @Failure 400 {object} ErrorResponse
// @Router /generate-key [post]
func (handler *keyHandler) GenerateKey(ctx *gin.Context) {
	var request GenerateKeyRequest
	if !bindRequest(ctx, &request) {
		return
	}

	keyType, err := crypto.ParseKeyType(request.KeyType)
	if err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	result, err := handler.keyService.GenerateKey(ctx, keyType, request.KeySize)
	if err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	var response GenerateKeyResponse
	if result.Symmetric != nil {
		response.KeyID = result.Symmetric.ID
		response.KeyValue = result.Symmetric.Material
	}
	if result.Private != nil {
		response.PrivateKeyID = result.Private.ID
		response.PrivateKeyValue = result.Private.Material
	}
	if result.Public != nil {
		response.PublicKeyID = result.Public.ID
		response.PublicKeyValue = result.Public.Material
	}

	ctx.JSON(http.StatusCreated, response)
}

// DescribeKey handles the GET request to retrieve key metadata by ID
// @Summary Describe a key
// @Description Fetch the kind, size and creation time of a stored key. Material is never returned.
// @Tags Key
// @Produce json
// @Param id path string true "Key ID"
// @Success 200 {object} KeyDescriptorResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [get]
func (handler *keyHandler) DescribeKey(ctx *gin.Context) {
	descriptor, err := handler.keyService.DescribeKey(ctx, ctx.Param("id"))
	if err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, KeyDescriptorResponse{
		ID:              descriptor.ID,
		Kind:            string(descriptor.Kind),
		SizeBits:        descriptor.SizeBits,
		DateTimeCreated: descriptor.DateTimeCreated,
	})
}
