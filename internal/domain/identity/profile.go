package identity

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"fieldesk/internal/shared/authorization"
)

// Profile is a user's identity and authorization record. Only client-scoped
// roles (client_user, auditor) may carry an affiliated client.
type Profile struct {
	id        uint
	email     string
	fullName  string
	role      authorization.Role
	clientID  *uint
	createdAt time.Time
}

func NewProfile(email, fullName string, role authorization.Role, clientID *uint) (*Profile, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email address: %s", email)
	}
	if len(fullName) == 0 {
		return nil, fmt.Errorf("full name is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if err := validateAffiliation(role, clientID); err != nil {
		return nil, err
	}

	return &Profile{
		email:     email,
		fullName:  fullName,
		role:      role,
		clientID:  clientID,
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructProfile(
	id uint,
	email string,
	fullName string,
	role authorization.Role,
	clientID *uint,
	createdAt time.Time,
) (*Profile, error) {
	if id == 0 {
		return nil, fmt.Errorf("profile ID cannot be zero")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if err := validateAffiliation(role, clientID); err != nil {
		return nil, err
	}

	return &Profile{
		id:        id,
		email:     email,
		fullName:  fullName,
		role:      role,
		clientID:  clientID,
		createdAt: createdAt,
	}, nil
}

// Client-scoped roles may exist without an affiliation; until an admin
// assigns one their scope matches no rows. Staff roles must never carry one.
func validateAffiliation(role authorization.Role, clientID *uint) error {
	if !role.IsClientScoped() && clientID != nil {
		return fmt.Errorf("role %s cannot carry a client affiliation", role)
	}
	return nil
}

func (p *Profile) ID() uint {
	return p.id
}

func (p *Profile) Email() string {
	return p.email
}

func (p *Profile) FullName() string {
	return p.fullName
}

func (p *Profile) Role() authorization.Role {
	return p.role
}

func (p *Profile) ClientID() *uint {
	return p.clientID
}

func (p *Profile) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Profile) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("profile ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("profile ID cannot be zero")
	}
	p.id = id
	return nil
}

// Scope returns the row scope this profile's queries run under.
func (p *Profile) Scope() authorization.Scope {
	return authorization.ScopeFor(p.role, p.clientID)
}

// ChangeRole updates the role and affiliation together so the affiliation
// invariant can never be violated halfway.
func (p *Profile) ChangeRole(role authorization.Role, clientID *uint) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	if !role.IsClientScoped() {
		clientID = nil
	}
	if err := validateAffiliation(role, clientID); err != nil {
		return err
	}

	p.role = role
	p.clientID = clientID
	return nil
}
