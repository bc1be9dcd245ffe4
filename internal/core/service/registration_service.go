package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/veridianlabs/identity-api/internal/core/domain"
	"github.com/veridianlabs/identity-api/internal/core/ports"
)

// RegistrationService performs first-time self-service user creation.
// The registration.enabled gate runs in middleware before this service
// is ever reached.
type RegistrationService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewRegistrationService(users ports.UserRepository, log zerolog.Logger) *RegistrationService {
	return &RegistrationService{users: users, log: log}
}

// Register creates a user keyed by mailto:<email> plus a password
// credential. The identity pre-check gives the common case a friendly
// conflict; the store's unique identity index is what actually closes
// the race between two concurrent registrations of the same address.
func (s *RegistrationService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	identity := domain.EmailIdentity(in.EmailAddress)

	_, err := s.users.FindByIdentity(ctx, identity)
	switch {
	case err == nil:
		return nil, domain.ErrUserExists
	case errors.Is(err, domain.ErrUserNotFound):
		// free to proceed
	default:
		// Any other store failure must surface unchanged, not be read
		// as "identity available".
		return nil, err
	}

	user := &domain.User{
		Identity:  identity,
		Nickname:  in.Nickname,
		Type:      domain.UserTypeUser,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if err := s.users.CreatePassword(ctx, created.ID, string(hash)); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("user_id", created.ID).
		Str("nickname", created.Nickname).
		Msg("user registered")

	return created, nil
}
