//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"github.com/java-saeng/jwp-shopping-order/internal/handler/middleware"
	"github.com/java-saeng/jwp-shopping-order/internal/pkg/jwt"
	"github.com/java-saeng/jwp-shopping-order/tests/common/builder"
	"github.com/java-saeng/jwp-shopping-order/tests/common/httptest"
	usecasemock "github.com/java-saeng/jwp-shopping-order/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockValidator *usecasemock.MockTokenValidator
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	auth := middleware.NewAuthMiddleware(s.mockValidator)

	s.router.GET("/me", auth.RequireAuth(), func(c *gin.Context) {
		m, ok := middleware.GetMember(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": m.ID(), "memberId": c.GetString("member_id")})
	})
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("success: member is placed on the context", func() {
		s.mockValidator.EXPECT().ValidateToken(gomock.Any(), "good-token").
			Return(builder.NewMemberBuilder().WithID(2).BuildDomain(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "good-token")

		var body struct {
			ID       int64  `json:"id"`
			MemberID string `json:"memberId"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(2), body.ID)
		s.Equal("2", body.MemberID)
	})

	s.Run("error: 401 without a bearer token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 401 when the token is rejected", func() {
		s.mockValidator.EXPECT().ValidateToken(gomock.Any(), "bad-token").
			Return(nil, jwt.ErrInvalidToken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "bad-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}
