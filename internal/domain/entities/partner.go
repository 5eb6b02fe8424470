package entities

// Cliente is the denormalized client snapshot carried by budgets and orders.
// Client CRUD is owned by another service; we only store what the print-shop
// documents need to render and route.
type Cliente struct {
	ID       int64  `json:"id"`
	Nome     string `json:"nome"`
	Email    string `json:"email,omitempty"`
	Telefone string `json:"telefone,omitempty"`
	Documento string `json:"documento,omitempty"`
}

// CentroProducao is the denormalized production-center snapshot.
type CentroProducao struct {
	ID     int64  `json:"id"`
	Nome   string `json:"nome"`
	Cidade string `json:"cidade,omitempty"`
	UF     string `json:"uf,omitempty"`
}
