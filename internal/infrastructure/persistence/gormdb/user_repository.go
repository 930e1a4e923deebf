package gormdb

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/yamdb-backend/internal/domain/entities"
	"github.com/rafabene/yamdb-backend/internal/domain/repositories"
	"github.com/rafabene/yamdb-backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err)
	}

	user.ID = model.ID
	user.CreatedAt = time.Unix(model.CreatedAt, 0)
	user.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*entities.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	return r.findOne(ctx, "username = ?", username)
}

func (r *UserRepository) FindByUsernameAndEmail(ctx context.Context, username, email string) (*entities.User, error) {
	return r.findOne(ctx, "username = ? AND email = ?", username, email)
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username = ?", username)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email = ?", email)
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return translateError(err)
	}

	user.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

// Delete remove o usuário junto com suas reviews e comentários
func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	return inTransaction(ctx, r.db, func(tx *gorm.DB) error {
		ownReviews := tx.Model(&ReviewModel{}).Select("id").Where("author_id = ?", id)

		if err := tx.Where("author_id = ? OR review_id IN (?)", id, ownReviews).Delete(&CommentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", id).Delete(&ReviewModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&UserModel{}, id).Error
	})
}

func (r *UserRepository) List(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, int64, error) {
	var models []*UserModel

	query := getDB(ctx, r.db).Model(&UserModel{})

	if search := strings.TrimSpace(filters.Search); search != "" {
		query = query.Where("LOWER(username) LIKE LOWER(?)", likePattern(search))
	}

	// sessão reutilizável para contar e paginar a mesma consulta
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filters.Page.Normalize()
	if err := query.Order("username ASC").Limit(page.Limit).Offset(page.Offset).Find(&models).Error; err != nil {
		return nil, 0, err
	}

	users, err := r.toEntities(models)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepository) findOne(ctx context.Context, query string, args ...interface{}) (*entities.User, error) {
	var model UserModel

	if err := getDB(ctx, r.db).Where(query, args...).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserRepository) exists(ctx context.Context, query string, args ...interface{}) (bool, error) {
	var count int64
	if err := getDB(ctx, r.db).Model(&UserModel{}).Where(query, args...).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Conversores
func (r *UserRepository) toModel(user *entities.User) *UserModel {
	model := &UserModel{
		ID:               user.ID,
		Username:         user.Username,
		Email:            user.Email.String(),
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		Bio:              user.Bio,
		Role:             string(user.Role),
		ConfirmationCode: user.ConfirmationCode,
		IsSuperuser:      user.IsSuperuser,
	}
	if !user.CreatedAt.IsZero() {
		model.CreatedAt = user.CreatedAt.Unix()
	}
	return model
}

func (r *UserRepository) toEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	return &entities.User{
		ID:               model.ID,
		Username:         model.Username,
		Email:            email,
		FirstName:        model.FirstName,
		LastName:         model.LastName,
		Bio:              model.Bio,
		Role:             entities.Role(model.Role),
		ConfirmationCode: model.ConfirmationCode,
		IsSuperuser:      model.IsSuperuser,
		CreatedAt:        time.Unix(model.CreatedAt, 0),
		UpdatedAt:        time.Unix(model.UpdatedAt, 0),
	}, nil
}

func (r *UserRepository) toEntities(models []*UserModel) ([]*entities.User, error) {
	users := make([]*entities.User, 0, len(models))

	for _, model := range models {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		users = append(users, entity)
	}

	return users, nil
}
