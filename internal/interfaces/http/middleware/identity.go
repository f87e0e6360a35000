package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	identityapp "github.com/shopworks/backend/internal/application/identity"
	"github.com/shopworks/backend/internal/infrastructure/auth"
	"github.com/shopworks/backend/internal/interfaces/http/dto"
)

// ExternalUIDResolver maps an identity-provider UID onto a shop member.
// *identityapp.UserService satisfies it.
type ExternalUIDResolver interface {
	ResolveExternalUID(ctx context.Context, shopID uuid.UUID, externalUID string) (*identityapp.UserResponse, error)
}

// Identity context keys
const (
	ClaimsKey   = "jwt_claims"
	ShopIDKey   = "shop_id"
	UserIDKey   = "user_id"
	UserRoleKey = "user_role"

	authHeader   = "Authorization"
	bearerPrefix = "Bearer "
)

// Identity resolves the caller's shop, user and role for downstream
// handlers. A valid Bearer token is authoritative; without one the
// middleware falls back to the X-Shop-ID and X-User-ID headers and the
// user_id query parameter. A user identifier that is not a UUID is treated
// as an identity-provider UID and resolved through the users resolver; an
// identifier that resolves to nothing is rejected, never silently dropped.
// Requests without any identity pass through and handlers decide what they
// require. A token that is present but invalid is rejected with 401.
func Identity(jwtService *auth.JWTService, users ExternalUIDResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authHeader)
		if header != "" && strings.HasPrefix(header, bearerPrefix) {
			tokenString := strings.TrimPrefix(header, bearerPrefix)
			claims, err := jwtService.ValidateToken(tokenString)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized,
					dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Invalid or expired token"))
				return
			}
			c.Set(ClaimsKey, claims)
			c.Set(ShopIDKey, claims.ShopID)
			c.Set(UserIDKey, claims.UserID)
			c.Set(UserRoleKey, claims.Role)
			c.Next()
			return
		}

		shopRaw := c.GetHeader("X-Shop-ID")
		if shopRaw != "" {
			c.Set(ShopIDKey, shopRaw)
		}

		userRaw := c.GetHeader("X-User-ID")
		if userRaw == "" {
			userRaw = c.Query("user_id")
		}
		if userRaw == "" {
			c.Next()
			return
		}

		if _, err := uuid.Parse(userRaw); err == nil {
			c.Set(UserIDKey, userRaw)
			c.Next()
			return
		}

		// Not a UUID: an identity-provider UID. Resolving it needs the
		// shop, because UID membership is checked per shop.
		shopID, err := uuid.Parse(shopRaw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "External user ID requires a shop"))
			return
		}

		user, err := users.ResolveExternalUID(c.Request.Context(), shopID, userRaw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Unknown user identifier"))
			return
		}
		c.Set(UserIDKey, user.ID.String())
		c.Set(UserRoleKey, user.Role)

		c.Next()
	}
}

// GetClaims returns the validated JWT claims, if any
func GetClaims(c *gin.Context) (*auth.Claims, bool) {
	value, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok
}

// GetShopID returns the resolved shop ID
func GetShopID(c *gin.Context) (uuid.UUID, bool) {
	return getUUID(c, ShopIDKey)
}

// GetUserID returns the resolved user ID
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	return getUUID(c, UserIDKey)
}

// GetUserRole returns the caller's role claim, empty without a token
func GetUserRole(c *gin.Context) string {
	return c.GetString(UserRoleKey)
}

func getUUID(c *gin.Context, key string) (uuid.UUID, bool) {
	raw := c.GetString(key)
	if raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
