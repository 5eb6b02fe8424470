package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"grafica_xpto/internal/domain/entities"
	"grafica_xpto/pkg"

	"github.com/gin-gonic/gin"
)

const (
	HeaderUserID    = "X-User-Id"
	HeaderUserEmail = "X-User-Email"
	HeaderUserRole  = "X-User-Role"

	principalContextKey = "principal"
)

var errMissingPrincipal = pkg.NewDomainErrorSimple(
	"MISSING_PRINCIPAL",
	"Missing or invalid identity headers",
	http.StatusUnauthorized,
)

// Principal extracts the authenticated actor from the identity headers set by
// the upstream gateway. Token validation happened there; this service trusts
// the headers and only checks their shape.
func Principal() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(strings.TrimSpace(c.GetHeader(HeaderUserID)), 10, 64)
		if err != nil || id <= 0 {
			abortUnauthorized(c)
			return
		}

		email := strings.TrimSpace(c.GetHeader(HeaderUserEmail))
		if email == "" {
			abortUnauthorized(c)
			return
		}

		role := entities.Role(strings.ToUpper(strings.TrimSpace(c.GetHeader(HeaderUserRole))))
		if !role.Valid() {
			abortUnauthorized(c)
			return
		}

		c.Set(principalContextKey, entities.Principal{ID: id, Email: email, Role: role})
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(errMissingPrincipal.HTTPStatus, errMissingPrincipal.ToHTTPError())
}

// PrincipalFrom returns the principal stored by the Principal middleware.
func PrincipalFrom(c *gin.Context) (entities.Principal, bool) {
	v, ok := c.Get(principalContextKey)
	if !ok {
		return entities.Principal{}, false
	}
	p, ok := v.(entities.Principal)
	return p, ok
}
