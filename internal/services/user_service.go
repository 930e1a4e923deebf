package services

import (
	"context"

	"github.com/rafabene/yamdb-backend/internal/domain/entities"
	"github.com/rafabene/yamdb-backend/internal/domain/errors"
	"github.com/rafabene/yamdb-backend/internal/domain/ports"
	"github.com/rafabene/yamdb-backend/internal/domain/repositories"
)

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo repositories.UserRepository
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// CreateUserInput representa os dados para um admin criar um usuário
type CreateUserInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Bio       string
	Role      string
	// Superuser só é usado pelo comando de linha de comando
	Superuser bool
}

// UpdateUserInput representa uma edição parcial; campos nil ficam inalterados
type UpdateUserInput struct {
	Username  *string
	Email     *string
	FirstName *string
	LastName  *string
	Bio       *string
	Role      *string
}

// CreateUser cria um usuário sem código de confirmação;
// ele obtém o código quando fizer signup com o mesmo par username/email
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*entities.User, error) {
	v := &errors.ValidationError{}
	checkUsername(v, input.Username)
	email := checkEmail(v, input.Email)
	checkLength(v, fieldFirstName, input.FirstName, personNameMaxLength)
	checkLength(v, fieldLastName, input.LastName, personNameMaxLength)

	role := entities.RoleUser
	if input.Role != "" {
		parsed, ok := entities.ParseRole(input.Role)
		if !ok {
			v.Add(fieldRole, errors.MsgInvalidRole)
		}
		role = parsed
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	user := &entities.User{
		Username:    input.Username,
		Email:       email,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Bio:         input.Bio,
		Role:        role,
		IsSuperuser: input.Superuser,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.IsUniqueViolation(err) {
			return nil, identityConflicts(ctx, s.userRepo, input.Username, email.String())
		}
		return nil, err
	}

	s.logger.Info("user created", "username", user.Username, "role", user.Role)
	return user, nil
}

// GetUser busca um usuário pelo username
func (s *UserService) GetUser(ctx context.Context, username string) (*entities.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// GetUserByID busca um usuário por ID (usado na autenticação)
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// ListUsers lista usuários com filtros
func (s *UserService) ListUsers(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, int64, error) {
	return s.userRepo.List(ctx, filters)
}

// UpdateUser aplica a edição de um admin sobre o usuário informado
func (s *UserService) UpdateUser(ctx context.Context, username string, input UpdateUserInput) (*entities.User, error) {
	user, err := s.GetUser(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.applyUpdate(ctx, user, input, true)
}

// UpdateMe aplica a edição do próprio perfil; o papel é somente leitura
func (s *UserService) UpdateMe(ctx context.Context, caller *entities.User, input UpdateUserInput) (*entities.User, error) {
	if caller == nil {
		return nil, errors.ErrUnauthorized
	}
	user, err := s.GetUserByID(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	return s.applyUpdate(ctx, user, input, false)
}

// DeleteUser remove o usuário e o conteúdo que ele publicou
func (s *UserService) DeleteUser(ctx context.Context, username string) error {
	user, err := s.GetUser(ctx, username)
	if err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, user.ID); err != nil {
		return err
	}

	s.logger.Info("user deleted", "username", user.Username)
	return nil
}

func (s *UserService) applyUpdate(ctx context.Context, user *entities.User, input UpdateUserInput, allowRole bool) (*entities.User, error) {
	v := &errors.ValidationError{}
	var newUsername, newEmail string

	if input.Username != nil && *input.Username != user.Username {
		checkUsername(v, *input.Username)
		newUsername = *input.Username
		user.Username = newUsername
	}
	if input.Email != nil {
		email := checkEmail(v, *input.Email)
		if !v.Has(fieldEmail) && email != user.Email {
			newEmail = email.String()
			user.Email = email
		}
	}
	if input.FirstName != nil {
		checkLength(v, fieldFirstName, *input.FirstName, personNameMaxLength)
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		checkLength(v, fieldLastName, *input.LastName, personNameMaxLength)
		user.LastName = *input.LastName
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if allowRole && input.Role != nil {
		role, ok := entities.ParseRole(*input.Role)
		if !ok {
			v.Add(fieldRole, errors.MsgInvalidRole)
		}
		user.Role = role
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.IsUniqueViolation(err) {
			return nil, identityConflicts(ctx, s.userRepo, newUsername, newEmail)
		}
		return nil, err
	}

	s.logger.Info("user updated", "username", user.Username)
	return user, nil
}
