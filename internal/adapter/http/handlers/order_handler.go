package handlers

import (
	"log"
	"net/http"

	request "grafica_xpto/internal/adapter/http/dto/request"
	response "grafica_xpto/internal/adapter/http/dto/response"
	"grafica_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles HTTP requests for pedidos.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder creates a direct (non-derived) pedido. Derived pedidos only
// exist through the budget conversion route.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}

	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateDirect(c.Request.Context(), payload.ToCommand(), p)
	if err != nil {
		log.Printf("[pedido][handler] create failed err=%v", err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[pedido][handler] create success id=%d type=%s", created.ID, created.OrderType)

	c.JSON(http.StatusCreated, response.FromOrder(created, p.Role))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	o, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(o, p.Role))
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var payload request.UpdateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateContent(c.Request.Context(), id, payload.ToCommand(), p)
	if err != nil {
		log.Printf("[pedido][handler] update failed id=%d err=%v", id, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(updated, p.Role))
}

func (h *OrderHandler) ChangeOrderStatus(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var payload request.StatusChangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	updated, receipt, err := h.usecase.Transition(c.Request.Context(), id, payload.Status, p, payload.Reason)
	if err != nil {
		log.Printf("[pedido][handler] transition failed id=%d target=%s err=%v", id, payload.Status, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[pedido][handler] transition success id=%d from=%s to=%s", id, receipt.From, receipt.To)

	c.JSON(http.StatusOK, response.FromOrderTransition(updated, receipt, p.Role))
}

func (h *OrderHandler) GetOrderTransitions(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	options, err := h.usecase.AvailableTransitions(c.Request.Context(), id, p)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, options)
}
