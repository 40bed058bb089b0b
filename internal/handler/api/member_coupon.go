package api

import (
	"net/http"

	"github.com/java-saeng/jwp-shopping-order/internal/domain/membercoupon"
	resdto "github.com/java-saeng/jwp-shopping-order/internal/handler/dto/response"
	"github.com/java-saeng/jwp-shopping-order/internal/handler/httperr"
	"github.com/java-saeng/jwp-shopping-order/internal/handler/middleware"
	"github.com/java-saeng/jwp-shopping-order/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MemberCouponHandler struct {
	q queries.MemberCouponQueries
}

func NewMemberCouponHandler(q queries.MemberCouponQueries) *MemberCouponHandler {
	return &MemberCouponHandler{q: q}
}

// @Summary List member coupons
// @Description List the coupons the member holds, optionally filtered by usage
// @Tags member-coupons
// @Produce json
// @Security BearerAuth
// @Param status query string false "unused or used"
// @Success 200 {array} resdto.MemberCouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/member-coupons [get]
func (h *MemberCouponHandler) List(c *gin.Context) {
	m, ok := middleware.GetMember(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	var status *membercoupon.UsedStatus
	if v := c.Query("status"); v != "" {
		parsed, err := membercoupon.ParseUsedStatus(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status", nil)
			return
		}
		status = &parsed
	}

	views, err := h.q.ListByMember(c.Request.Context(), m, status)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMemberCouponViews(views))
}
