package workflow

import "grafica_xpto/internal/domain/entities"

// Guard validates a single requested transition against a TransitionTable.
// It is entity-agnostic: budgets and orders differ only by the injected
// table.
type Guard struct {
	table *TransitionTable
}

func NewGuard(table *TransitionTable) *Guard {
	return &Guard{table: table}
}

func (g *Guard) Table() *TransitionTable {
	return g.table
}

// Check validates current -> requested for the given role.
//
// The check order is fixed: no-op, then graph validity, then permission.
// It yields the most specific rejection first.
func (g *Guard) Check(current, requested string, role entities.Role) error {
	if requested == current {
		return &SameStateError{Status: current}
	}
	if !g.table.CanTransition(current, requested) {
		return &InvalidTransitionError{
			From:    current,
			To:      requested,
			Allowed: g.table.AllowedFrom(current),
		}
	}
	if !g.table.RoleAllowed(requested, role) {
		return &PermissionError{
			Role:     role,
			Target:   requested,
			Required: g.table.RolesFor(requested),
		}
	}
	return nil
}

// Available returns the graph-valid targets from current, and the subset the
// given role is allowed to set. It grants nothing; it only drives caller-side
// affordances.
func (g *Guard) Available(current string, role entities.Role) (all, filtered []string) {
	all = g.table.AllowedFrom(current)
	filtered = make([]string, 0, len(all))
	for _, target := range all {
		if g.table.RoleAllowed(target, role) {
			filtered = append(filtered, target)
		}
	}
	return all, filtered
}
