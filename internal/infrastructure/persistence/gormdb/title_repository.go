package gormdb

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/rafabene/yamdb-backend/internal/domain/entities"
	"github.com/rafabene/yamdb-backend/internal/domain/repositories"
)

// TitleRepository implementa repositories.TitleRepository
type TitleRepository struct {
	db *gorm.DB
}

// NewTitleRepository cria um novo TitleRepository
func NewTitleRepository(db *gorm.DB) repositories.TitleRepository {
	return &TitleRepository{db: db}
}

const (
	genreSlugExists = "EXISTS (SELECT 1 FROM title_genres JOIN genres ON genres.id = title_genres.genre_id " +
		"WHERE title_genres.title_id = titles.id AND %s)"
	categorySlugExists = "EXISTS (SELECT 1 FROM categories WHERE categories.id = titles.category_id AND %s)"
)

var titleOrderColumns = map[string]string{
	repositories.TitleOrderName:     "titles.name",
	repositories.TitleOrderYear:     "titles.year",
	repositories.TitleOrderCategory: "categories.slug",
	// menor slug entre os gêneros da obra
	repositories.TitleOrderGenre: "(SELECT MIN(genres.slug) FROM title_genres JOIN genres ON genres.id = title_genres.genre_id " +
		"WHERE title_genres.title_id = titles.id)",
}

func (r *TitleRepository) Create(ctx context.Context, title *entities.Title) error {
	model := r.toModel(title)

	// os gêneros já existem; só as linhas de title_genres são gravadas
	if err := getDB(ctx, r.db).Omit("Category", "Genres.*").Create(model).Error; err != nil {
		return translateError(err)
	}

	title.ID = model.ID
	return nil
}

func (r *TitleRepository) FindByID(ctx context.Context, id uint) (*entities.Title, error) {
	var model TitleModel

	err := r.withRelations(getDB(ctx, r.db)).Where("titles.id = ?", id).First(&model).Error
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	ratings, err := r.ratings(ctx, []uint{model.ID})
	if err != nil {
		return nil, err
	}

	return r.toEntity(&model, ratings[model.ID]), nil
}

func (r *TitleRepository) Update(ctx context.Context, title *entities.Title) error {
	model := r.toModel(title)

	return inTransaction(ctx, r.db, func(tx *gorm.DB) error {
		err := tx.Model(&TitleModel{ID: model.ID}).Updates(map[string]interface{}{
			"name":        model.Name,
			"year":        model.Year,
			"description": model.Description,
			"category_id": model.CategoryID,
		}).Error
		if err != nil {
			return translateError(err)
		}

		return tx.Model(&TitleModel{ID: model.ID}).Association("Genres").Replace(model.Genres)
	})
}

// Delete remove a obra, suas reviews, os comentários dessas reviews e os vínculos com gêneros
func (r *TitleRepository) Delete(ctx context.Context, id uint) error {
	return inTransaction(ctx, r.db, func(tx *gorm.DB) error {
		reviews := tx.Model(&ReviewModel{}).Select("id").Where("title_id = ?", id)

		if err := tx.Where("review_id IN (?)", reviews).Delete(&CommentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("title_id = ?", id).Delete(&ReviewModel{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM title_genres WHERE title_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&TitleModel{}, id).Error
	})
}

func (r *TitleRepository) List(ctx context.Context, filters repositories.TitleFilters) ([]*entities.Title, int64, error) {
	query := getDB(ctx, r.db).Model(&TitleModel{}).
		Joins("LEFT JOIN categories ON categories.id = titles.category_id")

	if filters.Genre != "" {
		query = query.Where(sqlf(genreSlugExists, "genres.slug = ?"), filters.Genre)
	}
	if filters.Category != "" {
		query = query.Where(sqlf(categorySlugExists, "categories.slug = ?"), filters.Category)
	}
	if filters.Year != nil {
		query = query.Where("titles.year = ?", *filters.Year)
	}
	if filters.Name != "" {
		query = query.Where("titles.name = ?", filters.Name)
	}
	if search := strings.TrimSpace(filters.Search); search != "" {
		pattern := likePattern(strings.ToLower(search))
		query = query.Where(
			"LOWER(titles.name) LIKE ? OR CAST(titles.year AS TEXT) LIKE ? OR LOWER(categories.slug) LIKE ? OR "+
				sqlf(genreSlugExists, "LOWER(genres.slug) LIKE ?"),
			pattern, pattern, pattern, pattern,
		)
	}

	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	for _, o := range filters.Ordering {
		column, ok := titleOrderColumns[o.Field]
		if !ok {
			continue
		}
		if o.Descending {
			column += " DESC"
		}
		query = query.Order(column)
	}

	var models []TitleModel
	page := filters.Page.Normalize()
	err := r.withRelations(query).Order("titles.id ASC").Limit(page.Limit).Offset(page.Offset).Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	ids := make([]uint, len(models))
	for i := range models {
		ids[i] = models[i].ID
	}
	ratings, err := r.ratings(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	titles := make([]*entities.Title, len(models))
	for i := range models {
		titles[i] = r.toEntity(&models[i], ratings[models[i].ID])
	}
	return titles, total, nil
}

func (r *TitleRepository) withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Category").Preload("Genres", func(db *gorm.DB) *gorm.DB {
		return db.Order("genres.name ASC")
	})
}

// ratings calcula a nota média de cada obra a partir das notas atuais
func (r *TitleRepository) ratings(ctx context.Context, ids []uint) (map[uint]*float64, error) {
	result := make(map[uint]*float64, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var rows []struct {
		TitleID uint
		Score   int
	}
	err := getDB(ctx, r.db).Model(&ReviewModel{}).Select("title_id", "score").Where("title_id IN ?", ids).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	scores := make(map[uint][]int, len(ids))
	for _, row := range rows {
		scores[row.TitleID] = append(scores[row.TitleID], row.Score)
	}
	for id, s := range scores {
		result[id] = entities.AverageScore(s)
	}
	return result, nil
}

// Conversores
func (r *TitleRepository) toModel(title *entities.Title) *TitleModel {
	model := &TitleModel{
		ID:          title.ID,
		Name:        title.Name,
		Year:        title.Year,
		Description: title.Description,
	}
	if title.Category != nil {
		categoryID := title.Category.ID
		model.CategoryID = &categoryID
	}
	model.Genres = make([]GenreModel, len(title.Genres))
	for i, g := range title.Genres {
		model.Genres[i] = GenreModel{ID: g.ID, Name: g.Name, Slug: g.Slug}
	}
	return model
}

func (r *TitleRepository) toEntity(model *TitleModel, rating *float64) *entities.Title {
	title := &entities.Title{
		ID:          model.ID,
		Name:        model.Name,
		Year:        model.Year,
		Description: model.Description,
		Genres:      toGenreEntities(model.Genres),
		Rating:      rating,
	}
	if model.Category != nil {
		title.Category = toCategoryEntity(model.Category)
	}
	return title
}
