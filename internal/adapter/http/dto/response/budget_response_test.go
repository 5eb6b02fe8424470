package response

import (
	"encoding/json"
	"testing"
	"time"

	"grafica_xpto/internal/domain/entities"
)

func sampleBudget() entities.Budget {
	pedidoID := int64(70)
	return entities.Budget{
		ID:     9,
		Status: entities.BudgetStatusConverted,
		Cliente: entities.Cliente{
			ID: 7, Nome: "Editora Aurora", Email: "contato@aurora.com",
			Telefone: "+55 11 99999-0000", Documento: "12.345.678/0001-90",
		},
		Centro:        entities.CentroProducao{ID: 1, Nome: "Centro SP", Cidade: "Sao Paulo", UF: "SP"},
		Titulo:        "Catalogo primavera",
		Tiragem:       1000,
		Formato:       "A4",
		TotalPgs:      48,
		PgsColors:     16,
		PrecoUnitario: 5.50,
		PrecoTotal:    5500.00,
		PrazoProducao: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Notas:         "historico",
		PedidoID:      &pedidoID,
	}
}

func marshalKeys(t *testing.T, v any) map[string]json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(b, &keys); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	return keys
}

func TestFromBudget_UserSeesNoMonetaryKeys(t *testing.T) {
	keys := marshalKeys(t, FromBudget(sampleBudget(), entities.RoleUser))

	for _, k := range []string{"preco_unitario", "preco_total"} {
		if _, ok := keys[k]; ok {
			t.Fatalf("key %q must be absent for USER, body keys: %v", k, keys)
		}
	}
	if _, ok := keys["status"]; !ok {
		t.Fatalf("status must survive sanitization")
	}
	if _, ok := keys["notas"]; !ok {
		t.Fatalf("notas must survive sanitization")
	}
}

func TestFromBudget_ModeratorAndAdminSeePrices(t *testing.T) {
	for _, role := range []entities.Role{entities.RoleModerator, entities.RoleAdmin} {
		resp := FromBudget(sampleBudget(), role)
		if resp.PrecoUnitario == nil || *resp.PrecoUnitario != 5.50 {
			t.Fatalf("role %s: preco_unitario missing", role)
		}
		if resp.PrecoTotal == nil || *resp.PrecoTotal != 5500.00 {
			t.Fatalf("role %s: preco_total missing", role)
		}
	}
}

func TestFromBudget_NestedProjectionsByRole(t *testing.T) {
	user := FromBudget(sampleBudget(), entities.RoleUser)
	if user.Cliente.Email != "" || user.Cliente.Telefone != "" || user.Cliente.Documento != "" {
		t.Fatalf("USER cliente projection leaked: %+v", user.Cliente)
	}
	if user.Centro.Cidade != "" || user.Centro.UF != "" {
		t.Fatalf("USER centro projection leaked: %+v", user.Centro)
	}
	if user.Cliente.Nome != "Editora Aurora" || user.Centro.Nome != "Centro SP" {
		t.Fatalf("identity fields must survive: %+v", user)
	}

	mod := FromBudget(sampleBudget(), entities.RoleModerator)
	if mod.Cliente.Email != "contato@aurora.com" || mod.Centro.Cidade != "Sao Paulo" {
		t.Fatalf("MODERATOR projection too narrow: %+v %+v", mod.Cliente, mod.Centro)
	}
	if mod.Cliente.Documento != "" {
		t.Fatalf("MODERATOR must not see documento: %+v", mod.Cliente)
	}

	admin := FromBudget(sampleBudget(), entities.RoleAdmin)
	if admin.Cliente.Documento != "12.345.678/0001-90" || admin.Centro.UF != "SP" {
		t.Fatalf("ADMIN projection incomplete: %+v %+v", admin.Cliente, admin.Centro)
	}
}
