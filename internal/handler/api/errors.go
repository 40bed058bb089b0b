package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/java-saeng/jwp-shopping-order/internal/handler/httperr"
	"github.com/java-saeng/jwp-shopping-order/internal/handler/middleware"
	"github.com/java-saeng/jwp-shopping-order/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errUnauthenticated = errors.New("no authenticated member on context")

// checkoutErrors maps use case sentinels to HTTP statuses; anything else is a 500.
var checkoutErrors = []struct {
	target error
	status int
	msg    string
}{
	{errs.ErrCanNotOrderNotInCart, http.StatusBadRequest, "Cart items not in member's cart"},
	{errs.ErrNotSameTotalPrice, http.StatusBadRequest, "Total price does not match"},
	{errs.ErrDomainValidation, http.StatusBadRequest, "Invalid order"},
	{errs.ErrNotFoundCoupon, http.StatusNotFound, "Coupon not found"},
	{errs.ErrNotFoundOrder, http.StatusNotFound, "Order not found"},
	{errs.ErrCanNotDeleteNotMyOrder, http.StatusForbidden, "Order belongs to another member"},
	{errs.ErrNotFoundMember, http.StatusUnauthorized, "Member not found"},
}

func abortWithUseCaseError(c *gin.Context, err error) {
	for _, e := range checkoutErrors {
		if errors.Is(err, e.target) {
			httperr.AbortWithError(c, e.status, err, e.msg, nil)
			return
		}
	}

	slog.Error("unexpected use case error",
		"request_id", middleware.GetRequestID(c),
		"error", err.Error(),
		"stack", errs.ExtractStackLines(err, 8))
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
