// Package session resolves bearer tokens into the caller identity the rest
// of the application works with.
package session

import (
	"fieldesk/internal/domain/identity"
	"fieldesk/internal/shared/authorization"
)

// Kind tags the session variant. There are exactly two: a real session
// backed by a stored profile, and a simulated one issued by the demo
// endpoint that exists only inside its token.
type Kind string

const (
	KindReal      Kind = "real"
	KindSimulated Kind = "simulated"
)

// Session is the resolved caller identity. ProfileID is zero for simulated
// sessions, which have no stored profile at all.
type Session struct {
	Kind      Kind
	SessionID string
	ProfileID uint
	FullName  string
	Email     string
	Role      authorization.Role
	ClientID  *uint
}

// NewRealSession builds the session for a stored profile.
func NewRealSession(sessionID string, p *identity.Profile) Session {
	return Session{
		Kind:      KindReal,
		SessionID: sessionID,
		ProfileID: p.ID(),
		FullName:  p.FullName(),
		Email:     p.Email(),
		Role:      p.Role(),
		ClientID:  p.ClientID(),
	}
}

// NewSimulatedSession builds a demonstration session. The synthetic name
// and email make the simulated identity obvious in any UI or log line.
func NewSimulatedSession(sessionID string, role authorization.Role, clientID *uint) Session {
	return Session{
		Kind:      KindSimulated,
		SessionID: sessionID,
		FullName:  "Demo User (" + role.String() + ")",
		Email:     role.String() + "@demo.fieldesk.local",
		Role:      role,
		ClientID:  clientID,
	}
}

// Simulated reports whether the session is a demonstration session.
// Mutating operations refuse these centrally.
func (s Session) Simulated() bool {
	return s.Kind == KindSimulated
}

// Scope returns the row scope the session's queries run under.
func (s Session) Scope() authorization.Scope {
	return authorization.ScopeFor(s.Role, s.ClientID)
}
