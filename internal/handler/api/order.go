package api

import (
	"net/http"
	"strconv"

	reqdto "github.com/java-saeng/jwp-shopping-order/internal/handler/dto/request"
	resdto "github.com/java-saeng/jwp-shopping-order/internal/handler/dto/response"
	"github.com/java-saeng/jwp-shopping-order/internal/handler/httperr"
	"github.com/java-saeng/jwp-shopping-order/internal/handler/middleware"
	"github.com/java-saeng/jwp-shopping-order/internal/usecase/commands"
	"github.com/java-saeng/jwp-shopping-order/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Register order
// @Description Turn cart items into an order, optionally consuming a coupon
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterOrderRequest true "Register order request"
// @Success 201 {object} resdto.RegisterOrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/orders [post]
func (h *OrderHandler) Register(c *gin.Context) {
	m, ok := middleware.GetMember(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.RegisterOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	orderID, err := h.cmds.RegisterOrder(c.Request.Context(), m, req.ToInput())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.Header("Location", "/api/orders/"+strconv.FormatInt(orderID, 10))
	c.JSON(http.StatusCreated, resdto.RegisterOrderResponse{OrderID: orderID})
}

// @Summary Delete order
// @Description Delete one of the member's orders together with its items
// @Tags orders
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	m, ok := middleware.GetMember(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	if err := h.cmds.DeleteOrder(c.Request.Context(), m, id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List orders
// @Description List the member's orders, newest first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OrderResponse
// @Failure 401 {object} httperr.Response
// @Router /api/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	m, ok := middleware.GetMember(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	views, err := h.q.ListByMember(c.Request.Context(), m)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderViews(views))
}

// @Summary Get order
// @Description Get one of the member's orders with its items
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	m, ok := middleware.GetMember(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), m, id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

func parseIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}
