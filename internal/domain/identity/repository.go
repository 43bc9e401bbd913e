package identity

import "context"

type Repository interface {
	Save(ctx context.Context, profile *Profile) error
	Update(ctx context.Context, profile *Profile) error
	GetByID(ctx context.Context, id uint) (*Profile, error)
	GetByEmail(ctx context.Context, email string) (*Profile, error)
	List(ctx context.Context) ([]*Profile, error)
}

// CredentialStore owns the password hashes backing real sessions. It is kept
// apart from the Profile aggregate: demonstration profiles have no credential
// row at all.
type CredentialStore interface {
	SaveCredential(ctx context.Context, profileID uint, passwordHash string) error
	GetCredential(ctx context.Context, profileID uint) (string, error)
}
