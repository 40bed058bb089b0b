package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/java-saeng/jwp-shopping-order/internal/domain/member"
	"github.com/java-saeng/jwp-shopping-order/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxMemberKey   = "member"
	ctxMemberIDKey = "member_id"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth resolves the bearer token to a Member and stores it on the context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Access token required"},
			})
			c.Abort()
			return
		}

		mem, err := m.tokenValidator.ValidateToken(c.Request.Context(), token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid or expired token"},
			})
			c.Abort()
			return
		}

		SetMember(c, mem)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func SetMember(c *gin.Context, mem *member.Member) {
	c.Set(ctxMemberKey, mem)
	c.Set(ctxMemberIDKey, strconv.FormatInt(mem.ID(), 10))
}

func GetMember(c *gin.Context) (*member.Member, bool) {
	v, exists := c.Get(ctxMemberKey)
	if !exists {
		return nil, false
	}

	mem, ok := v.(*member.Member)
	return mem, ok && mem != nil
}
