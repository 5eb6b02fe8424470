package handlers

import (
	"log"
	"net/http"

	request "grafica_xpto/internal/adapter/http/dto/request"
	response "grafica_xpto/internal/adapter/http/dto/response"
	"grafica_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// BudgetHandler handles HTTP requests for orcamentos, including the
// conversion route that derives a pedido.

type BudgetHandler struct {
	usecase    usecase.IBudgetUseCase
	conversion usecase.IConversionUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase, conv usecase.IConversionUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc, conversion: conv}
}

func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}

	var payload request.CreateBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToCommand(), p)
	if err != nil {
		log.Printf("[orcamento][handler] create failed err=%v", err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[orcamento][handler] create success id=%d", created.ID)

	c.JSON(http.StatusCreated, response.FromBudget(created, p.Role))
}

func (h *BudgetHandler) GetBudget(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	b, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(b, p.Role))
}

// UpdateBudget edits budget content. The use case only accepts edits while
// the budget is DRAFT or REJECTED.
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var payload request.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateContent(c.Request.Context(), id, payload.ToCommand(), p)
	if err != nil {
		log.Printf("[orcamento][handler] update failed id=%d err=%v", id, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(updated, p.Role))
}

// ChangeBudgetStatus runs a guarded transition and returns the updated budget
// together with the status-change receipt.
func (h *BudgetHandler) ChangeBudgetStatus(c *gin.Context) {
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
		log.Printf("[orcamento][handler] transition failed id=%d target=%s err=%v", id, payload.Status, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[orcamento][handler] transition success id=%d from=%s to=%s", id, receipt.From, receipt.To)

	c.JSON(http.StatusOK, response.FromBudgetTransition(updated, receipt, p.Role))
}

func (h *BudgetHandler) GetBudgetTransitions(c *gin.Context) {
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

// ConvertBudget turns an APPROVED budget into a PENDING pedido atomically.
func (h *BudgetHandler) ConvertBudget(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	budget, order, err := h.conversion.Convert(c.Request.Context(), id, p)
	if err != nil {
		log.Printf("[orcamento][handler] convert failed id=%d err=%v", id, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[orcamento][handler] convert success orcamento_id=%d pedido_id=%d", budget.ID, order.ID)

	c.JSON(http.StatusCreated, response.FromConversion(budget, order, p.Role))
}
