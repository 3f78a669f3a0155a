package auth

import (
	"net/http"
	"strconv"

	"freshcart/internal/models"

	"github.com/gin-gonic/gin"
)

const principalKey = "auth.principal"

// Principal is the authenticated actor attached to every request. Token
// verification happens at the identity gateway upstream; this service trusts
// the headers the gateway injects and checks them against every resource it
// mutates.
type Principal struct {
	ID   uint
	Role models.UserRole
}

func (p Principal) IsAdmin() bool {
	return p.Role == models.RoleAdmin
}

// RequirePrincipal rejects requests that arrive without a gateway-injected
// identity.
func RequirePrincipal() gin.HandlerFunc {
	return func(c *gin.Context) {
		idHeader := c.GetHeader("X-User-ID")
		roleHeader := c.GetHeader("X-User-Role")

		id, err := strconv.ParseUint(idHeader, 10, 32)
		if err != nil || id == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid principal"})
			return
		}

		role := models.UserRole(roleHeader)
		switch role {
		case models.RoleCustomer, models.RoleRider, models.RoleAdmin:
		default:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid role"})
			return
		}

		c.Set(principalKey, Principal{ID: uint(id), Role: role})
		c.Next()
	}
}

// RequireRole gates a route group to a single role.
func RequireRole(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := FromContext(c)
		if !ok || p.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}
		c.Next()
	}
}

func FromContext(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}
