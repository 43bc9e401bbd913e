package authorization

// Scope restricts which rows a query may return. The scope is applied by
// repositories at query time, never as a post-filter: it is a security
// boundary, with the database row policy as the second layer of defense.
type Scope struct {
	// ClientID, when set, limits results to rows of that client.
	ClientID *uint
	// empty marks the scope of a client-scoped profile with no
	// affiliation. It matches no rows at all.
	empty bool
}

// Unrestricted reports whether the scope imposes no row filter.
func (s Scope) Unrestricted() bool {
	return !s.empty && s.ClientID == nil
}

// IsEmpty reports whether the scope matches no rows. True only for
// client-scoped profiles that have not been affiliated with a client yet.
func (s Scope) IsEmpty() bool {
	return s.empty
}

// EmptyScope returns the scope that matches nothing.
func EmptyScope() Scope {
	return Scope{empty: true}
}

// ScopeFor builds the row scope for a role and its affiliated client.
// Admin and technician see everything; client-scoped roles only see rows
// belonging to their affiliated client, and nothing at all until an admin
// affiliates them.
func ScopeFor(role Role, affiliatedClientID *uint) Scope {
	if role.IsClientScoped() {
		if affiliatedClientID == nil {
			return EmptyScope()
		}
		return Scope{ClientID: affiliatedClientID}
	}
	return Scope{}
}
