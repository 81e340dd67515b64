package user

// Permission is one row of the permissions view. Display only; nothing
// enforces it.
type Permission struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
	Allowed  bool   `json:"allowed"`
}

type grant struct {
	resource string
	action   string
	roles    []Role // nil means every role
}

var grants = []grant{
	{"products", "view", nil},
	{"products", "create", nil},
	{"products", "edit", nil},
	{"products", "delete", []Role{RoleAdmin}},
	{"users", "view", nil},
	{"users", "create", []Role{RoleAdmin, RoleManager}},
	{"users", "edit", []Role{RoleAdmin, RoleManager}},
	{"users", "delete", []Role{RoleAdmin}},
}

// Permissions returns the permission matrix shown for a role.
func Permissions(role Role) []Permission {
	out := make([]Permission, len(grants))
	for i, g := range grants {
		out[i] = Permission{Resource: g.resource, Action: g.action, Allowed: g.allows(role)}
	}
	return out
}

func (g grant) allows(role Role) bool {
	if g.roles == nil {
		return true
	}
	for _, r := range g.roles {
		if r == role {
			return true
		}
	}
	return false
}
