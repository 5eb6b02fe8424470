package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"grafica_xpto/internal/adapter/http/handlers/mocks"
	"grafica_xpto/internal/adapter/http/middleware"
	"grafica_xpto/internal/domain/entities"
	"grafica_xpto/internal/domain/workflow"
	"grafica_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func budgetRouter(t *testing.T) (*gin.Engine, *mocks.MockIBudgetUseCase, *mocks.MockIConversionUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIBudgetUseCase(ctrl)
	conv := mocks.NewMockIConversionUseCase(ctrl)
	h := NewBudgetHandler(uc, conv)

	r := gin.New()
	r.Use(middleware.Principal())
	g := r.Group("/v1/orcamentos")
	g.POST("", h.CreateBudget)
	g.GET("/:id", h.GetBudget)
	g.PUT("/:id", h.UpdateBudget)
	g.PATCH("/:id/status", h.ChangeBudgetStatus)
	g.GET("/:id/transicoes", h.GetBudgetTransitions)
	g.POST("/:id/converter", h.ConvertBudget)
	return r, uc, conv
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string, role entities.Role) *httptest.ResponseRecorder {
	t.Helper()
	var buf *bytes.Buffer
	if body == "" {
		buf = bytes.NewBuffer(nil)
	} else {
		buf = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.HeaderUserID, "42")
	req.Header.Set(middleware.HeaderUserEmail, "mod@grafica.com")
	req.Header.Set(middleware.HeaderUserRole, string(role))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body not json: %v (%s)", err, w.Body.String())
	}
	return body
}

func TestBudgetHandler_CreateBudget(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		r, _, _ := budgetRouter(t)
		w := doJSON(t, r, http.MethodPost, "/v1/orcamentos", "{", entities.RoleUser)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing identity headers", func(t *testing.T) {
		r, _, _ := budgetRouter(t)
		req := httptest.NewRequest(http.MethodPost, "/v1/orcamentos", bytes.NewBufferString(`{}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("created with sanitized body", func(t *testing.T) {
		r, uc, _ := budgetRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Budget{
			ID:            9,
			Status:        entities.BudgetStatusDraft,
			PrecoUnitario: 5.50,
			PrecoTotal:    5500.00,
		}, nil)

		body := `{"cliente":{"id":7,"nome":"Editora Aurora"},"centro":{"id":1,"nome":"Centro SP"},` +
			`"titulo":"Catalogo","tiragem":1000,"formato":"A4","preco_unitario":5.5,` +
			`"prazo_producao":"2024-06-01T00:00:00Z"}`
		w := doJSON(t, r, http.MethodPost, "/v1/orcamentos", body, entities.RoleUser)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("body not json: %v", err)
		}
		if _, ok := resp["preco_total"]; ok {
			t.Fatalf("preco_total leaked to USER: %s", w.Body.String())
		}
	})
}

func TestBudgetHandler_ChangeBudgetStatus_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantDetail string
	}{
		{
			name:       "not found",
			err:        usecase.ErrBudgetNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "ORCAMENTO_NOT_FOUND",
		},
		{
			name:       "same state",
			err:        &workflow.SameStateError{Status: "SUBMITTED"},
			wantStatus: http.StatusConflict,
			wantCode:   "SAME_STATE",
			wantDetail: "status",
		},
		{
			name:       "invalid transition carries allowed set",
			err:        &workflow.InvalidTransitionError{From: "DRAFT", To: "APPROVED", Allowed: []string{"SUBMITTED"}},
			wantStatus: http.StatusConflict,
			wantCode:   "INVALID_TRANSITION",
			wantDetail: "allowed_transitions",
		},
		{
			name:       "permission carries required roles",
			err:        &workflow.PermissionError{Role: entities.RoleUser, Target: "APPROVED", Required: []entities.Role{entities.RoleModerator, entities.RoleAdmin}},
			wantStatus: http.StatusForbidden,
			wantCode:   "PERMISSION_DENIED",
			wantDetail: "required_roles",
		},
		{
			name:       "lost race",
			err:        &workflow.ConflictError{Expected: "SUBMITTED"},
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
			wantDetail: "expected_status",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc, _ := budgetRouter(t)
			uc.EXPECT().Transition(gomock.Any(), int64(9), "APPROVED", gomock.Any(), gomock.Any()).
				Return(entities.Budget{}, workflow.Receipt{}, tc.err)

			w := doJSON(t, r, http.MethodPatch, "/v1/orcamentos/9/status", `{"status":"APPROVED"}`, entities.RoleModerator)
			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d body=%s", tc.wantStatus, w.Code, w.Body.String())
			}
			body := decodeError(t, w)
			if body["code"] != tc.wantCode {
				t.Fatalf("expected code %s, got %v", tc.wantCode, body["code"])
			}
			if tc.wantDetail != "" {
				details, ok := body["details"].(map[string]any)
				if !ok {
					t.Fatalf("details missing: %s", w.Body.String())
				}
				if _, ok := details[tc.wantDetail]; !ok {
					t.Fatalf("detail %q missing: %v", tc.wantDetail, details)
				}
			}
		})
	}
}

func TestBudgetHandler_ChangeBudgetStatus_Success(t *testing.T) {
	r, uc, _ := budgetRouter(t)
	changedAt := time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)
	uc.EXPECT().Transition(gomock.Any(), int64(9), "SUBMITTED", gomock.Any(), gomock.Any()).
		Return(
			entities.Budget{ID: 9, Status: entities.BudgetStatusSubmitted},
			workflow.Receipt{From: "DRAFT", To: "SUBMITTED", ChangedBy: "mod@grafica.com", ChangedAt: changedAt},
			nil,
		)

	w := doJSON(t, r, http.MethodPatch, "/v1/orcamentos/9/status", `{"status":"SUBMITTED"}`, entities.RoleModerator)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Orcamento struct {
			Status string `json:"status"`
		} `json:"orcamento"`
		StatusChange struct {
			From      string `json:"from"`
			To        string `json:"to"`
			ChangedBy string `json:"changed_by"`
		} `json:"status_change"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("body not json: %v", err)
	}
	if resp.Orcamento.Status != "SUBMITTED" {
		t.Fatalf("unexpected status: %+v", resp)
	}
	if resp.StatusChange.From != "DRAFT" || resp.StatusChange.To != "SUBMITTED" || resp.StatusChange.ChangedBy != "mod@grafica.com" {
		t.Fatalf("unexpected receipt: %+v", resp.StatusChange)
	}
}

func TestBudgetHandler_GetBudgetTransitions(t *testing.T) {
	r, uc, _ := budgetRouter(t)
	uc.EXPECT().AvailableTransitions(gomock.Any(), int64(9), gomock.Any()).
		Return(usecase.TransitionOptions{
			CurrentStatus:        "SUBMITTED",
			AllowedTransitions:   []string{"APPROVED", "REJECTED"},
			AvailableTransitions: []string{},
		}, nil)

	w := doJSON(t, r, http.MethodGet, "/v1/orcamentos/9/transicoes", "", entities.RoleUser)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp usecase.TransitionOptions
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("body not json: %v", err)
	}
	if resp.CurrentStatus != "SUBMITTED" || len(resp.AllowedTransitions) != 2 || len(resp.AvailableTransitions) != 0 {
		t.Fatalf("unexpected options: %+v", resp)
	}
}

func TestBudgetHandler_ConvertBudget(t *testing.T) {
	t.Run("precondition failure maps to 409", func(t *testing.T) {
		r, _, conv := budgetRouter(t)
		conv.EXPECT().Convert(gomock.Any(), int64(9), gomock.Any()).
			Return(entities.Budget{}, entities.Order{}, &workflow.InvalidStateError{Operation: "convert", Expected: "APPROVED", Actual: "DRAFT"})

		w := doJSON(t, r, http.MethodPost, "/v1/orcamentos/9/converter", "", entities.RoleModerator)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if decodeError(t, w)["code"] != "INVALID_STATE" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success returns both sides", func(t *testing.T) {
		r, _, conv := budgetRouter(t)
		pedidoID := int64(70)
		orcID := int64(9)
		conv.EXPECT().Convert(gomock.Any(), int64(9), gomock.Any()).
			Return(
				entities.Budget{ID: 9, Status: entities.BudgetStatusConverted, PedidoID: &pedidoID},
				entities.Order{ID: 70, Status: entities.OrderStatusPending, OrderType: entities.OrderTypeBudgetDerived, OrcamentoID: &orcID},
				nil,
			)

		w := doJSON(t, r, http.MethodPost, "/v1/orcamentos/9/converter", "", entities.RoleModerator)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}

		var resp struct {
			Orcamento struct {
				Status   string `json:"status"`
				PedidoID *int64 `json:"pedido_id"`
			} `json:"orcamento"`
			Pedido struct {
				Status      string `json:"status"`
				OrderType   string `json:"order_type"`
				OrcamentoID *int64 `json:"orcamento_id"`
			} `json:"pedido"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("body not json: %v", err)
		}
		if resp.Orcamento.Status != "CONVERTED" || resp.Orcamento.PedidoID == nil || *resp.Orcamento.PedidoID != 70 {
			t.Fatalf("unexpected orcamento side: %+v", resp.Orcamento)
		}
		if resp.Pedido.Status != "PENDING" || resp.Pedido.OrderType != "BUDGET_DERIVED" || *resp.Pedido.OrcamentoID != 9 {
			t.Fatalf("unexpected pedido side: %+v", resp.Pedido)
		}
	})
}

func TestBudgetHandler_InvalidIDParam(t *testing.T) {
	r, _, _ := budgetRouter(t)
	w := doJSON(t, r, http.MethodGet, "/v1/orcamentos/abc", "", entities.RoleUser)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
