package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"myblog/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const IdentityKey = "identity"

// Identity is the authenticated caller as carried in the token claims.
// No database round trip happens per request; the token is the source.
type Identity struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type authClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 token for user, valid for expiration.
func IssueToken(user *models.User, secret string, expiration time.Duration) (string, error) {
	claims := authClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies an HS256 token and returns the embedded identity.
func ParseToken(tokenString, secret string) (*Identity, error) {
	claims := &authClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	return &Identity{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}

// AuthRequired rejects requests without a valid bearer token and stores
// the caller's identity in the gin context.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := ""
		if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			token = strings.TrimSpace(parts[1])
		}

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is missing!"})
			return
		}

		identity, err := ParseToken(token, secret)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token has expired!"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is invalid!"})
			return
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// RoleRequired gates a route to the given roles. Must run after AuthRequired.
func RoleRequired(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := CurrentIdentity(c)
		if identity == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Role information not available!"})
			return
		}
		for _, role := range roles {
			if identity.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Permission denied: Insufficient role!"})
	}
}

// CurrentIdentity returns the caller set by AuthRequired, or nil.
func CurrentIdentity(c *gin.Context) *Identity {
	v, exists := c.Get(IdentityKey)
	if !exists {
		return nil
	}
	identity, ok := v.(*Identity)
	if !ok {
		return nil
	}
	return identity
}

// CanModify is the ownership predicate: the resource owner or the site
// author may mutate a resource. Evaluated before the core operation runs,
// never inside it.
func CanModify(identity *Identity, ownerID uint) bool {
	if identity == nil {
		return false
	}
	return identity.UserID == ownerID || identity.Role == models.RoleAuthor
}
