package v1

import (
	"net/http"

	"github.com/cybervault/crypto-engine/internal/domain/crypto"
	"github.com/cybervault/crypto-engine/internal/domain/keys"
	"github.com/cybervault/crypto-engine/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// CipherHandler defines the interface for encryption and decryption routes
type CipherHandler interface {
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
}

type cipherHandler struct {
	cipherService keys.CipherService
	logger        logger.Logger
}

// NewCipherHandler creates a new CipherHandler
func NewCipherHandler(cipherService keys.CipherService, logger logger.Logger) CipherHandler {
	return &cipherHandler{
		cipherService: cipherService,
		logger:        logger,
	}
}

// Encrypt handles the POST request to encrypt plaintext with a stored key
// @Summary Encrypt
// @Description AES uses a symmetric key and returns base64(nonce || tag || ciphertext); RSA uses a public key.
// @Tags Cipher
// @Accept json
// @Produce json
// @Param requestBody body EncryptRequest true "Key id, plaintext and algorithm"
// @Success 200 {object} EncryptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /encrypt [post]
func (handler *cipherHandler) Encrypt(ctx *gin.Context) {
	var request EncryptRequest
	if !bindRequest(ctx, &request) {
		return
	}

	algorithm, err := crypto.ParseAlgorithm(request.Algorithm)
	if err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	ciphertext, err := handler.cipherService.Encrypt(ctx, request.KeyID, request.Plaintext, algorithm)
	if err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, EncryptResponse{Ciphertext: ciphertext})
}

// Decrypt handles the POST request to decrypt base64 ciphertext with a stored key
// @Summary Decrypt
// @Description AES uses a symmetric key; RSA uses a private key. Plaintext must be UTF-8.
// @Tags Cipher
// @Accept json
// @Produce json
// @Param requestBody body DecryptRequest true "Key id, ciphertext and algorithm"
// @Success 200 {object} DecryptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /decrypt [post]
func (handler *cipherHandler) Decrypt(ctx *gin.Context) {
	var request DecryptRequest
	if !bindRequest(ctx, &request) {
		return
	}

	algorithm, err := crypto.ParseAlgorithm(request.Algorithm)
	if err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	plaintext, err := handler.cipherService.Decrypt(ctx, request.KeyID, request.Ciphertext, algorithm)
	if err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, DecryptResponse{Plaintext: plaintext})
}
