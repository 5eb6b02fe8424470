package response

import (
	"time"

	"grafica_xpto/internal/domain/entities"
	"grafica_xpto/internal/domain/workflow"
)

// ClienteResumo is the role-filtered client projection. USER sees the bare
// identity, MODERATOR adds the contact email, ADMIN sees everything.

type ClienteResumo struct {
	ID        int64  `json:"id"`
	Nome      string `json:"nome"`
	Email     string `json:"email,omitempty"`
	Telefone  string `json:"telefone,omitempty"`
	Documento string `json:"documento,omitempty"`
}

type CentroResumo struct {
	ID     int64  `json:"id"`
	Nome   string `json:"nome"`
	Cidade string `json:"cidade,omitempty"`
	UF     string `json:"uf,omitempty"`
}

// BudgetResponse is the wire shape of an orcamento. Monetary fields are
// pointers so that for USER callers the keys are absent from the JSON body,
// not rendered as zero.

type BudgetResponse struct {
	ID            int64         `json:"id"`
	Status        string        `json:"status"`
	Cliente       ClienteResumo `json:"cliente"`
	Centro        CentroResumo  `json:"centro"`
	Titulo        string        `json:"titulo"`
	Tiragem       int           `json:"tiragem"`
	Formato       string        `json:"formato"`
	TotalPgs      int           `json:"total_pgs"`
	PgsColors     int           `json:"pgs_colors"`
	PrecoUnitario *float64      `json:"preco_unitario,omitempty"`
	PrecoTotal    *float64      `json:"preco_total,omitempty"`
	PrazoProducao time.Time     `json:"prazo_producao"`
	Notas         string        `json:"notas"`
	PedidoID      *int64        `json:"pedido_id,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// FromBudget projects a budget for the given caller role.
func FromBudget(b entities.Budget, role entities.Role) BudgetResponse {
	resp := BudgetResponse{
		ID:            b.ID,
		Status:        string(b.Status),
		Cliente:       clienteResumo(b.Cliente, role),
		Centro:        centroResumo(b.Centro, role),
		Titulo:        b.Titulo,
		Tiragem:       b.Tiragem,
		Formato:       b.Formato,
		TotalPgs:      b.TotalPgs,
		PgsColors:     b.PgsColors,
		PrazoProducao: b.PrazoProducao,
		Notas:         b.Notas,
		PedidoID:      b.PedidoID,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
	if role.AtLeast(entities.RoleModerator) {
		pu, pt := b.PrecoUnitario, b.PrecoTotal
		resp.PrecoUnitario = &pu
		resp.PrecoTotal = &pt
	}
	return resp
}

// BudgetTransitionResponse pairs the updated budget with the receipt of the
// status change that produced it.

type BudgetTransitionResponse struct {
	Orcamento    BudgetResponse   `json:"orcamento"`
	StatusChange workflow.Receipt `json:"status_change"`
}

func FromBudgetTransition(b entities.Budget, receipt workflow.Receipt, role entities.Role) BudgetTransitionResponse {
	return BudgetTransitionResponse{
		Orcamento:    FromBudget(b, role),
		StatusChange: receipt,
	}
}

func clienteResumo(c entities.Cliente, role entities.Role) ClienteResumo {
	out := ClienteResumo{ID: c.ID, Nome: c.Nome}
	if role.AtLeast(entities.RoleModerator) {
		out.Email = c.Email
	}
	if role == entities.RoleAdmin {
		out.Telefone = c.Telefone
		out.Documento = c.Documento
	}
	return out
}

func centroResumo(c entities.CentroProducao, role entities.Role) CentroResumo {
	out := CentroResumo{ID: c.ID, Nome: c.Nome}
	if role.AtLeast(entities.RoleModerator) {
		out.Cidade = c.Cidade
	}
	if role == entities.RoleAdmin {
		out.UF = c.UF
	}
	return out
}
