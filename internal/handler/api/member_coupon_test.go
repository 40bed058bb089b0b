//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/java-saeng/jwp-shopping-order/internal/domain/membercoupon"
	"github.com/java-saeng/jwp-shopping-order/internal/handler/api"
	resdto "github.com/java-saeng/jwp-shopping-order/internal/handler/dto/response"
	"github.com/java-saeng/jwp-shopping-order/internal/handler/middleware"
	"github.com/java-saeng/jwp-shopping-order/internal/pkg/errs"
	"github.com/java-saeng/jwp-shopping-order/internal/pkg/ptr"
	"github.com/java-saeng/jwp-shopping-order/internal/usecase/queries"
	"github.com/java-saeng/jwp-shopping-order/tests/common/builder"
	"github.com/java-saeng/jwp-shopping-order/tests/common/httptest"
	queriesmock "github.com/java-saeng/jwp-shopping-order/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MemberCouponHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockMemberCouponQueries
}

func (s *MemberCouponHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockMemberCouponQueries(s.mockCtrl)
	h := api.NewMemberCouponHandler(s.mockQueries)

	s.router.GET("/api/member-coupons", func(c *gin.Context) {
		middleware.SetMember(c, builder.NewMemberBuilder().BuildDomain())
		c.Next()
	}, h.List)
}

func (s *MemberCouponHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMemberCouponHandlerSuite(t *testing.T) {
	suite.Run(t, new(MemberCouponHandlerTestSuite))
}

func (s *MemberCouponHandlerTestSuite) TestList() {
	views := []*queries.MemberCouponView{
		{CouponID: 1, Name: "welcome 5000", DiscountAmount: ptr.Of(decimal.NewFromInt(5000)), UsedStatus: "UNUSED"},
		{CouponID: 2, Name: "ten percent", DiscountPercent: ptr.Of(int32(10)), UsedStatus: "USED"},
	}

	s.Run("success: lists every coupon without a filter", func() {
		s.mockQueries.EXPECT().ListByMember(gomock.Any(), gomock.Any(), gomock.Nil()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/member-coupons", nil, "")

		var body []resdto.MemberCouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Require().NotNil(body[0].DiscountAmount)
		s.Equal("5000", *body[0].DiscountAmount)
		s.Nil(body[0].DiscountPercent)
		s.Require().NotNil(body[1].DiscountPercent)
		s.Equal(int32(10), *body[1].DiscountPercent)
		s.Equal("USED", body[1].Status)
	})

	s.Run("success: status filter is parsed", func() {
		s.mockQueries.EXPECT().ListByMember(gomock.Any(), gomock.Any(), gomock.Cond(func(x any) bool {
			st, ok := x.(*membercoupon.UsedStatus)
			return ok && st != nil && *st == membercoupon.Unused
		})).Return(views[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/member-coupons?status=unused", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 401 Unauthorized when the coupon holder no longer exists", func() {
		s.mockQueries.EXPECT().ListByMember(gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(nil, errs.Wrapf(errs.ErrNotFoundMember, "member %d", 1)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/member-coupons", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Member not found")
	})

	s.Run("error: 400 Bad Request on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/member-coupons?status=expired", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid status")
	})
}
