package services

import (
	"context"
	"strings"

	"github.com/rafabene/yamdb-backend/internal/domain/entities"
	"github.com/rafabene/yamdb-backend/internal/domain/errors"
	"github.com/rafabene/yamdb-backend/internal/domain/ports"
	"github.com/rafabene/yamdb-backend/internal/domain/repositories"
	"github.com/rafabene/yamdb-backend/internal/domain/valueobjects"
)

// AuthService implementa o cadastro com código de confirmação e a emissão de tokens
type AuthService struct {
	userRepo repositories.UserRepository
	uow      ports.UnitOfWork
	mailer   ports.Mailer
	tokens   ports.TokenManager
	codes    ports.ConfirmationCodes
	logger   ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	mailer ports.Mailer,
	tokens ports.TokenManager,
	codes ports.ConfirmationCodes,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		uow:      uow,
		mailer:   mailer,
		tokens:   tokens,
		codes:    codes,
		logger:   logger,
	}
}

// SignupInput representa os dados de cadastro
type SignupInput struct {
	Username string
	Email    string
}

// TokenInput representa a troca do código de confirmação por um token
type TokenInput struct {
	Username         string
	ConfirmationCode string
}

// Signup cria o usuário (ou reaproveita o par username/email existente),
// grava o digest do novo código e envia o código por email.
// Falha no envio não falha o cadastro.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*entities.User, error) {
	v := &errors.ValidationError{}
	checkUsername(v, input.Username)
	email := checkEmail(v, input.Email)
	if err := v.Err(); err != nil {
		return nil, err
	}

	code := s.codes.Derive(input.Username, email.String())
	digest, err := s.codes.Hash(code)
	if err != nil {
		return nil, err
	}

	user, err := s.upsertPending(ctx, input.Username, email, digest)
	if errors.IsUniqueViolation(err) {
		// o mesmo par pode ter sido criado por um cadastro concorrente
		existing, findErr := s.userRepo.FindByUsernameAndEmail(ctx, input.Username, email.String())
		if findErr != nil {
			return nil, findErr
		}
		if existing == nil {
			return nil, identityConflicts(ctx, s.userRepo, input.Username, email.String())
		}
		user, err = s.upsertPending(ctx, input.Username, email, digest)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("user signed up", "username", user.Username)

	if err := s.mailer.SendConfirmationCode(ctx, user.Email.String(), code); err != nil {
		s.logger.Warn("failed to send confirmation code", "username", user.Username, "error", err)
	}

	return user, nil
}

func (s *AuthService) upsertPending(ctx context.Context, username string, email valueobjects.Email, digest string) (*entities.User, error) {
	var user *entities.User

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.userRepo.FindByUsernameAndEmail(txCtx, username, email.String())
		if err != nil {
			return err
		}

		if existing != nil {
			existing.ConfirmationCode = digest
			user = existing
			return s.userRepo.Update(txCtx, existing)
		}

		user = &entities.User{
			Username:         username,
			Email:            email,
			Role:             entities.RoleUser,
			ConfirmationCode: digest,
		}
		return s.userRepo.Create(txCtx, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// IssueToken confere o código de confirmação e emite um token de acesso
func (s *AuthService) IssueToken(ctx context.Context, input TokenInput) (string, error) {
	v := &errors.ValidationError{}
	if strings.TrimSpace(input.Username) == "" {
		v.Add(fieldUsername, errors.MsgRequired)
	}
	if strings.TrimSpace(input.ConfirmationCode) == "" {
		v.Add(fieldConfirmationCode, errors.MsgRequired)
	}
	if err := v.Err(); err != nil {
		return "", err
	}

	user, err := s.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", errors.ErrUserNotFound
	}

	if !s.codes.Matches(user.ConfirmationCode, input.ConfirmationCode) {
		s.logger.Info("invalid confirmation code", "username", user.Username)
		return "", errors.NewValidationError(errors.NonFieldErrors, errors.MsgInvalidCode)
	}

	return s.tokens.Issue(user)
}
