package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/Swamy718/Expense-Tracker-backend/db"
	"github.com/Swamy718/Expense-Tracker-backend/models"
)

// UserStore is the part of the repository registration and login need.
type UserStore interface {
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, user *models.User) error
	FindByUsernameOrEmail(ctx context.Context, identifier string) (*models.User, error)
}

type Service struct {
	users    UserStore
	hasher   *Hasher
	tokens   *TokenService
	validate *validator.Validate
	log      *slog.Logger
}

func NewService(users UserStore, hasher *Hasher, tokens *TokenService, logger *slog.Logger) *Service {
	v := validator.New(validator.WithRequiredStructEnabled())
	// share the tags gin binds with
	v.SetTagName("binding")
	return &Service{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		validate: v,
		log:      logger.With("component", "auth"),
	}
}

// Register creates an account with empty ledgers. The existence checks give
// the precise conflict; the storage unique indexes settle concurrent
// registrations of the same name.
func (s *Service) Register(ctx context.Context, req models.CreateUser) error {
	if err := s.validate.Struct(req); err != nil {
		return err
	}

	taken, err := s.users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return fmt.Errorf("check username: %w", err)
	}
	if taken {
		return ErrUsernameTaken
	}
	taken, err = s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if taken {
		return ErrEmailTaken
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return err
	}
	err = s.users.CreateUser(ctx, models.NewUser(req.Username, req.Email, hash))
	switch {
	case errors.Is(err, db.ErrDuplicateUsername):
		return ErrUsernameTaken
	case errors.Is(err, db.ErrDuplicateEmail):
		return ErrEmailTaken
	case err != nil:
		return fmt.Errorf("create user: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", "username", req.Username)
	return nil
}

// Login accepts a username or an email as identifier. Unknown users and
// wrong passwords fail the same way.
func (s *Service) Login(ctx context.Context, identifier, password string) (string, error) {
	user, err := s.users.FindByUsernameOrEmail(ctx, identifier)
	if err != nil {
		return "", fmt.Errorf("find user: %w", err)
	}
	if user == nil || !s.hasher.Verify(password, user.HashedPassword) {
		s.log.WarnContext(ctx, "login rejected", "identifier", identifier)
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(user.Username)
}

// Authenticate resolves a bearer token to its username.
func (s *Service) Authenticate(token string) (string, error) {
	return s.tokens.Verify(token)
}
