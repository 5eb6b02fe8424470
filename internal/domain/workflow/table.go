package workflow

import (
	"sort"

	"grafica_xpto/internal/domain/entities"
)

// TransitionTable holds, for one entity kind, the state graph adjacency and
// the per-target-state role allow-list. Tables are built by constructors and
// never mutated afterwards; callers get defensive copies.
type TransitionTable struct {
	allowed map[string]map[string]struct{}
	roles   map[string]map[entities.Role]struct{}
}

func newTransitionTable(allowed map[string][]string, roles map[string][]entities.Role) *TransitionTable {
	t := &TransitionTable{
		allowed: make(map[string]map[string]struct{}, len(allowed)),
		roles:   make(map[string]map[entities.Role]struct{}, len(roles)),
	}
	for from, tos := range allowed {
		set := make(map[string]struct{}, len(tos))
		for _, to := range tos {
			set[to] = struct{}{}
		}
		t.allowed[from] = set
	}
	for target, rs := range roles {
		set := make(map[entities.Role]struct{}, len(rs))
		for _, r := range rs {
			set[r] = struct{}{}
		}
		t.roles[target] = set
	}
	return t
}

// KnownStatus reports whether s appears in the graph at all.
func (t *TransitionTable) KnownStatus(s string) bool {
	if _, ok := t.allowed[s]; ok {
		return true
	}
	_, ok := t.roles[s]
	return ok
}

// AllowedFrom returns the sorted valid targets reachable from the given
// status. Terminal states return an empty slice.
func (t *TransitionTable) AllowedFrom(from string) []string {
	set := t.allowed[from]
	out := make([]string, 0, len(set))
	for to := range set {
		out = append(out, to)
	}
	sort.Strings(out)
	return out
}

// CanTransition reports whether the edge from -> to exists.
func (t *TransitionTable) CanTransition(from, to string) bool {
	_, ok := t.allowed[from][to]
	return ok
}

// RolesFor returns the sorted roles allowed to set the given target status.
func (t *TransitionTable) RolesFor(target string) []entities.Role {
	set := t.roles[target]
	out := make([]entities.Role, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// RoleAllowed reports whether role may set the given target status.
func (t *TransitionTable) RoleAllowed(target string, role entities.Role) bool {
	_, ok := t.roles[target][role]
	return ok
}

// NewBudgetTransitionTable builds the budget state graph.
//
// CONVERTED appears as a graph edge so availability listings show it, but the
// generic transition operation refuses it: only the conversion workflow may
// set it. CANCELLED is kept in the role table with no inbound edge.
func NewBudgetTransitionTable() *TransitionTable {
	return newTransitionTable(
		map[string][]string{
			string(entities.BudgetStatusDraft):     {string(entities.BudgetStatusSubmitted)},
			string(entities.BudgetStatusSubmitted): {string(entities.BudgetStatusApproved), string(entities.BudgetStatusRejected)},
			string(entities.BudgetStatusApproved):  {string(entities.BudgetStatusConverted)},
			string(entities.BudgetStatusRejected):  {string(entities.BudgetStatusSubmitted)},
			string(entities.BudgetStatusConverted): {},
			string(entities.BudgetStatusCancelled): {},
		},
		map[string][]entities.Role{
			string(entities.BudgetStatusSubmitted): {entities.RoleUser, entities.RoleModerator, entities.RoleAdmin},
			string(entities.BudgetStatusApproved):  {entities.RoleModerator, entities.RoleAdmin},
			string(entities.BudgetStatusRejected):  {entities.RoleModerator, entities.RoleAdmin},
			string(entities.BudgetStatusConverted): {entities.RoleModerator, entities.RoleAdmin},
			string(entities.BudgetStatusCancelled): {entities.RoleModerator, entities.RoleAdmin},
		},
	)
}

// NewOrderTransitionTable builds the order production state graph.
func NewOrderTransitionTable() *TransitionTable {
	return newTransitionTable(
		map[string][]string{
			string(entities.OrderStatusPending):      {string(entities.OrderStatusInProduction), string(entities.OrderStatusOnHold), string(entities.OrderStatusCancelled)},
			string(entities.OrderStatusInProduction): {string(entities.OrderStatusCompleted), string(entities.OrderStatusOnHold), string(entities.OrderStatusCancelled)},
			string(entities.OrderStatusOnHold):       {string(entities.OrderStatusPending), string(entities.OrderStatusInProduction), string(entities.OrderStatusCancelled)},
			string(entities.OrderStatusCompleted):    {string(entities.OrderStatusDelivered), string(entities.OrderStatusCancelled)},
			string(entities.OrderStatusDelivered):    {},
			string(entities.OrderStatusCancelled):    {},
		},
		map[string][]entities.Role{
			string(entities.OrderStatusPending):      {entities.RoleUser, entities.RoleModerator, entities.RoleAdmin},
			string(entities.OrderStatusInProduction): {entities.RoleModerator, entities.RoleAdmin},
			string(entities.OrderStatusCompleted):    {entities.RoleModerator, entities.RoleAdmin},
			string(entities.OrderStatusDelivered):    {entities.RoleModerator, entities.RoleAdmin},
			string(entities.OrderStatusOnHold):       {entities.RoleUser, entities.RoleModerator, entities.RoleAdmin},
			string(entities.OrderStatusCancelled):    {entities.RoleModerator, entities.RoleAdmin},
		},
	)
}
