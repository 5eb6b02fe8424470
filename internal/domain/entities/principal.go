package entities

// Role is the privilege level carried by an authenticated principal.
//
// Ordering (USER < MODERATOR < ADMIN) is only used for coarse "at least"
// checks; transition permission is a per-target-state allow-list owned by the
// workflow tables.

type Role string

const (
	RoleUser      Role = "USER"
	RoleModerator Role = "MODERATOR"
	RoleAdmin     Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// rank implements the privilege ordering.
func (r Role) rank() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleModerator:
		return 2
	case RoleUser:
		return 1
	}
	return 0
}

// AtLeast reports whether r carries at least the privilege of min.
func (r Role) AtLeast(min Role) bool {
	return r.rank() >= min.rank()
}

// Principal is the already-authenticated actor performing an operation.
// Token validation happens upstream; this service only consumes the result.
type Principal struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
