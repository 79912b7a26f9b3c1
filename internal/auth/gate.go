// Package auth provides the shared-secret gate protecting playlist routes.
package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Gate validates requests against a single shared secret. The secret is
// fixed at construction time and compared in constant time for every
// credential transport.
type Gate struct {
	secret []byte
	// basic is the expected Basic credential after base64 decoding:
	// the secret as username with an empty password.
	basic []byte
}

// NewGate creates a gate for the given shared secret.
func NewGate(secret string) *Gate {
	return &Gate{
		secret: []byte(secret),
		basic:  []byte(secret + ":"),
	}
}

// Middleware returns a Gin middleware enforcing the shared secret.
//
// Accepted transports, checked in order with short-circuit on first match:
// a `token` query parameter, a Basic credential with the secret as username
// and empty password, or a Bearer token. Requests carrying no credentials at
// all get 401 with a WWW-Authenticate challenge; requests with malformed or
// wrong credentials get 403.
func (g *Gate) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if g.match(g.secret, c.Query("token")) {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if header == "" {
			c.Header("WWW-Authenticate", `Basic realm="Restricted Area"`)
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		scheme, credentials, ok := splitAuthorization(header)
		if !ok {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		switch scheme {
		case "Basic":
			decoded, err := base64.StdEncoding.DecodeString(credentials)
			if err == nil && subtle.ConstantTimeCompare(g.basic, decoded) == 1 {
				c.Next()
				return
			}
		case "Bearer":
			if g.match(g.secret, credentials) {
				c.Next()
				return
			}
		}

		c.AbortWithStatus(http.StatusForbidden)
	}
}

// match compares a candidate credential against want in constant time.
func (g *Gate) match(want []byte, candidate string) bool {
	return subtle.ConstantTimeCompare(want, []byte(candidate)) == 1
}

// splitAuthorization parses an Authorization header of the shape
// "<scheme> <credentials>" with a single space separator. Both parts
// must be non-empty; credentials may themselves contain spaces.
func splitAuthorization(header string) (scheme, credentials string, ok bool) {
	scheme, credentials, found := strings.Cut(header, " ")
	if !found || scheme == "" || credentials == "" {
		return "", "", false
	}
	return scheme, credentials, true
}
