package auth

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/attribute"

	apperrors "github.com/kbukum/authkit/errors"
	"github.com/kbukum/authkit/logger"
	"github.com/kbukum/authkit/observability"
	"github.com/kbukum/authkit/password"
	"github.com/kbukum/authkit/token"
	"github.com/kbukum/authkit/user"
)

// Client-facing messages. Unknown email and wrong password share one
// message so login failures reveal nothing about account existence.
const (
	msgInvalidCredentials = "Invalid email or password."
	msgEmailTaken         = "A user with this email already exists."
	msgRegisterFailed     = "Registration failed. Please try again."
	msgLoginFailed        = "Login failed. Please try again."
)

// RegisterInput is the payload for Register.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Credentials is the payload for Login.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult carries the signed token and the sanitized account record.
type LoginResult struct {
	Token string          `json:"token"`
	User  *user.Sanitized `json:"user"`
}

// Service implements registration and login on top of the password hasher,
// the token codec and the user repository.
type Service struct {
	hasher   *password.Hasher
	codec    *token.Codec
	repo     user.Repository
	log      *logger.Logger
	validate *validator.Validate
}

// NewService creates the auth service.
func NewService(hasher *password.Hasher, codec *token.Codec, repo user.Repository, log *logger.Logger) *Service {
	return &Service{
		hasher:   hasher,
		codec:    codec,
		repo:     repo,
		log:      log.WithComponent("auth"),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Register creates an account. The password is strength-checked before any
// persistence is touched; a weak password reports every violated rule at
// once. Email comparison is case-insensitive: the address is lowercased
// before the duplicate check and before storage.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*user.Sanitized, error) {
	ctx, span := observability.StartSpan(ctx, "auth.register")
	defer span.End()

	in.Email = normalizeEmail(in.Email)

	if err := s.validate.Struct(in); err != nil {
		return nil, apperrors.InvalidInput("email", "a valid email address is required")
	}

	if result := s.hasher.ValidateStrength(in.Password); !result.Valid {
		return nil, apperrors.Validation(result.Errors)
	}

	existing, err := s.repo.FindByEmail(ctx, in.Email)
	if err != nil {
		observability.SetSpanError(ctx, err)
		s.log.WithError(err).Error("register: lookup failed", logger.Fields(logger.FieldEmail, in.Email))
		return nil, apperrors.Internal(msgRegisterFailed, err)
	}
	if existing != nil {
		return nil, apperrors.Conflict(msgEmailTaken)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		observability.SetSpanError(ctx, err)
		s.log.WithError(err).Error("register: hash failed")
		return nil, apperrors.Internal(msgRegisterFailed, err)
	}

	created, err := s.repo.Create(ctx, &user.User{Email: in.Email, PasswordHash: hash})
	if err != nil {
		// A concurrent register can still lose the race past the duplicate
		// check; the repository reports that as CONFLICT.
		if appErr, ok := apperrors.AsAppError(err); ok {
			return nil, appErr
		}
		observability.SetSpanError(ctx, err)
		s.log.WithError(err).Error("register: create failed", logger.Fields(logger.FieldEmail, in.Email))
		return nil, apperrors.Internal(msgRegisterFailed, err)
	}

	span.SetAttributes(attribute.String(observability.AttrUserID, created.ID.String()))
	s.log.Info("user registered", logger.Fields(logger.FieldUserID, created.ID.String()))
	return created.Sanitize(), nil
}

// Login verifies the credentials and issues a signed token. Failures for
// unknown email and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	ctx, span := observability.StartSpan(ctx, "auth.login")
	defer span.End()

	creds.Email = normalizeEmail(creds.Email)

	if err := s.validate.Struct(creds); err != nil {
		return nil, apperrors.Unauthorized(msgInvalidCredentials)
	}

	u, err := s.repo.FindByEmail(ctx, creds.Email)
	if err != nil {
		observability.SetSpanError(ctx, err)
		s.log.WithError(err).Error("login: lookup failed", logger.Fields(logger.FieldEmail, creds.Email))
		return nil, apperrors.Internal(msgLoginFailed, err)
	}
	if u == nil {
		return nil, apperrors.Unauthorized(msgInvalidCredentials)
	}

	if !s.hasher.Verify(creds.Password, u.PasswordHash) {
		return nil, apperrors.Unauthorized(msgInvalidCredentials)
	}

	signed, err := s.codec.Sign(token.Payload{UserID: u.ID.String(), Email: u.Email})
	if err != nil {
		observability.SetSpanError(ctx, err)
		s.log.WithError(err).Error("login: sign failed", logger.Fields(logger.FieldUserID, u.ID.String()))
		return nil, apperrors.Internal(msgLoginFailed, err)
	}

	span.SetAttributes(attribute.String(observability.AttrUserID, u.ID.String()))
	s.log.Info("user logged in", logger.Fields(logger.FieldUserID, u.ID.String()))
	return &LoginResult{Token: signed, User: u.Sanitize()}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
