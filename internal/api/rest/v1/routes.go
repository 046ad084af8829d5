package v1

import (
	"net/http"

	"github.com/cybervault/crypto-engine/internal/domain/keys"
	"github.com/cybervault/crypto-engine/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the engine routes at the root of r.
func SetupRoutes(r *gin.Engine,
	keyService keys.KeyGenerationService,
	cipherService keys.CipherService,
	digestService keys.DigestService,
	logger logger.Logger) {

	keyHandler := NewKeyHandler(keyService, logger)
	r.POST("/generate-key", keyHandler.GenerateKey)
	r.GET("/keys/:id", keyHandler.DescribeKey)

	cipherHandler := NewCipherHandler(cipherService, logger)
	r.POST("/encrypt", cipherHandler.Encrypt)
	r.POST("/decrypt", cipherHandler.Decrypt)

	digestHandler := NewDigestHandler(digestService, logger)
	r.POST("/generate-hash", digestHandler.GenerateHash)
	r.POST("/verify-hash", digestHandler.VerifyHash)
	r.POST("/generate-hmac", digestHandler.GenerateHMAC)
	r.POST("/verify-hmac", digestHandler.VerifyHMAC)

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, HealthResponse{Status: "ok"})
	})
}
