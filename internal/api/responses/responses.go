// Package responses provides standardized HTTP response helpers for the gateway.
package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/radichu/radichu-serve/internal/apperrors"
)

// manifestContentType is the media type for HLS playlist manifests.
const manifestContentType = "application/vnd.apple.mpegurl"

// JSON relays an already-encoded JSON body with a 200 OK status.
func JSON(c *gin.Context, body []byte) {
	c.Data(http.StatusOK, "application/json", body)
}

// Manifest responds with a playlist manifest body and a 200 OK status.
func Manifest(c *gin.Context, body string) {
	c.Data(http.StatusOK, manifestContentType, []byte(body))
}

// Text responds with a plain-text body and the given status.
func Text(c *gin.Context, status int, body string) {
	c.String(status, body)
}

// Error responds with the plain-text message of err and the status code
// its taxonomy entry maps to.
func Error(c *gin.Context, err error) {
	c.String(apperrors.Status(err), err.Error())
}
