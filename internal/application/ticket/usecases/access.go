package usecases

import (
	"fieldesk/internal/application/session"
	"fieldesk/internal/domain/ticket"
	"fieldesk/internal/shared/authorization"
	"fieldesk/internal/shared/errors"
)

// requireMutation rejects simulated sessions and roles outside the mutation
// policy. The HTTP middleware enforces the same rules; this is the second
// layer for callers that bypass the router.
func requireMutation(s session.Session, action authorization.Action) error {
	if s.Simulated() {
		return errors.NewForbiddenError("demo sessions are read-only")
	}
	if !authorization.MutationAllowed(s.Role, action) {
		return errors.NewForbiddenError("role is not permitted to " + string(action))
	}
	return nil
}

// requireVisible enforces the row scope: a client-scoped caller may only
// touch tickets of its affiliated client. The repository applies the same
// scope to listings; this covers direct lookups by ID.
func requireVisible(s session.Session, t *ticket.Ticket) error {
	scope := s.Scope()
	if scope.Unrestricted() {
		return nil
	}
	if scope.IsEmpty() || *scope.ClientID != t.ClientID() {
		return errors.NewNotFoundError("ticket not found")
	}
	return nil
}
