package request

import (
	"time"

	"grafica_xpto/internal/domain/entities"
	"grafica_xpto/internal/usecase"
)

type ClienteRequest struct {
	ID        int64  `json:"id" binding:"required"`
	Nome      string `json:"nome" binding:"required"`
	Email     string `json:"email"`
	Telefone  string `json:"telefone"`
	Documento string `json:"documento"`
}

type CentroRequest struct {
	ID     int64  `json:"id" binding:"required"`
	Nome   string `json:"nome" binding:"required"`
	Cidade string `json:"cidade"`
	UF     string `json:"uf"`
}

// CreateBudgetRequest is the payload for "cria orcamento". `preco_total` is
// optional; when present the server checks it against tiragem * preco_unitario.

type CreateBudgetRequest struct {
	Cliente       ClienteRequest `json:"cliente" binding:"required"`
	Centro        CentroRequest  `json:"centro" binding:"required"`
	Titulo        string         `json:"titulo" binding:"required"`
	Tiragem       int            `json:"tiragem" binding:"required"`
	Formato       string         `json:"formato" binding:"required"`
	TotalPgs      int            `json:"total_pgs"`
	PgsColors     int            `json:"pgs_colors"`
	PrecoUnitario float64        `json:"preco_unitario" binding:"required"`
	PrecoTotal    *float64       `json:"preco_total"`
	PrazoProducao time.Time      `json:"prazo_producao" binding:"required"`
	Notas         string         `json:"notas"`
}

func (r CreateBudgetRequest) ToCommand() usecase.CreateBudgetCommand {
	return usecase.CreateBudgetCommand{
		Cliente:       entities.Cliente(r.Cliente),
		Centro:        entities.CentroProducao(r.Centro),
		Titulo:        r.Titulo,
		Tiragem:       r.Tiragem,
		Formato:       r.Formato,
		TotalPgs:      r.TotalPgs,
		PgsColors:     r.PgsColors,
		PrecoUnitario: r.PrecoUnitario,
		PrecoTotal:    r.PrecoTotal,
		PrazoProducao: r.PrazoProducao,
		Notas:         r.Notas,
	}
}

// UpdateBudgetRequest is the payload for "edita orcamento". Every field is a
// pointer so absent keys are distinguishable from zero values. `status` is
// accepted only so the use case can reject the attempt explicitly.

type UpdateBudgetRequest struct {
	Titulo        *string    `json:"titulo"`
	Tiragem       *int       `json:"tiragem"`
	Formato       *string    `json:"formato"`
	TotalPgs      *int       `json:"total_pgs"`
	PgsColors     *int       `json:"pgs_colors"`
	PrecoUnitario *float64   `json:"preco_unitario"`
	PrecoTotal    *float64   `json:"preco_total"`
	PrazoProducao *time.Time `json:"prazo_producao"`
	Status        *string    `json:"status"`
}

func (r UpdateBudgetRequest) ToCommand() usecase.UpdateBudgetCommand {
	return usecase.UpdateBudgetCommand{
		Titulo:        r.Titulo,
		Tiragem:       r.Tiragem,
		Formato:       r.Formato,
		TotalPgs:      r.TotalPgs,
		PgsColors:     r.PgsColors,
		PrecoUnitario: r.PrecoUnitario,
		PrecoTotal:    r.PrecoTotal,
		PrazoProducao: r.PrazoProducao,
		Status:        r.Status,
	}
}

// StatusChangeRequest is the payload for the status PATCH routes.

type StatusChangeRequest struct {
	Status string  `json:"status" binding:"required"`
	Reason *string `json:"motivo"`
}
