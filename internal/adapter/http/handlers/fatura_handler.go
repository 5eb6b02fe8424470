package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	response "grafica_xpto/internal/adapter/http/dto/response"
	"grafica_xpto/internal/usecase"
	"grafica_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// FaturaHandler handles HTTP requests for faturas (charges against finished
// pedidos).

type FaturaHandler struct {
	usecase usecase.IFaturaUseCase
}

func NewFaturaHandler(uc usecase.IFaturaUseCase) *FaturaHandler {
	return &FaturaHandler{usecase: uc}
}

// CreateFatura charges the pedido in the path through the payment provider.
func (h *FaturaHandler) CreateFatura(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	pedidoID, ok := idParam(c, "pedido_id")
	if !ok {
		return
	}
	log.Printf("[fatura][handler] create start pedido_id=%d", pedidoID)

	mpPayload, err := readMPPayload(c)
	if err != nil {
		log.Printf("[fatura][handler] invalid payload pedido_id=%d err=%v", pedidoID, err)
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateForOrder(c.Request.Context(), pedidoID, mpPayload, p)
	if err != nil {
		log.Printf("[fatura][handler] create failed pedido_id=%d err=%v", pedidoID, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[fatura][handler] create success pedido_id=%d fatura_id=%s status=%s", pedidoID, created.ID, created.Status)

	c.JSON(http.StatusCreated, response.FromFatura(created))
}

// GetLatestFatura returns the most recent charge raised against the pedido.
func (h *FaturaHandler) GetLatestFatura(c *gin.Context) {
	if _, ok := principalOrAbort(c); !ok {
		return
	}
	pedidoID, ok := idParam(c, "pedido_id")
	if !ok {
		return
	}

	faturas, err := h.usecase.ListByPedidoID(c.Request.Context(), pedidoID)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(faturas) == 0 {
		appErr := pkg.NewDomainErrorSimple("FATURA_NOT_FOUND", "Fatura not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := faturas[0]
	for _, f := range faturas[1:] {
		if f.Date.After(latest.Date) {
			latest = f
		}
	}

	c.JSON(http.StatusOK, response.FromFatura(latest))
}

// readMPPayload accepts either a raw Mercado Pago body or the
// {"mp_payload": ...} envelope and returns the inner payload.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}
