// Package v1 exposes the cryptographic engine over JSON HTTP routes using gin.
package v1
