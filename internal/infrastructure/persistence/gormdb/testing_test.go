package gormdb

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rafabene/yamdb-backend/internal/domain/entities"
	"github.com/rafabene/yamdb-backend/internal/domain/valueobjects"
	"github.com/rafabene/yamdb-backend/internal/infrastructure/config"
	"github.com/rafabene/yamdb-backend/internal/infrastructure/logging"
)

// newTestDB abre um sqlite em memória isolado por teste, já migrado
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.DatabaseConfig{
		Driver:   "sqlite",
		Path:     fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString()),
		MaxConns: 1,
		MinConns: 1,
		LogLevel: "silent",
	}

	db, err := NewDatabaseConnection(cfg, logging.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *entities.User {
	t.Helper()

	user := &entities.User{
		Username: username,
		Email:    valueobjects.MustEmail(username + "@example.com"),
		Role:     entities.RoleUser,
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

func seedCategory(t *testing.T, db *gorm.DB, name, slug string) *entities.Category {
	t.Helper()

	category := &entities.Category{Name: name, Slug: slug}
	require.NoError(t, NewCategoryRepository(db).Create(context.Background(), category))
	return category
}

func seedGenre(t *testing.T, db *gorm.DB, name, slug string) entities.Genre {
	t.Helper()

	genre := &entities.Genre{Name: name, Slug: slug}
	require.NoError(t, NewGenreRepository(db).Create(context.Background(), genre))
	return *genre
}

func seedTitle(t *testing.T, db *gorm.DB, name string, year int, category *entities.Category, genres ...entities.Genre) *entities.Title {
	t.Helper()

	title := &entities.Title{Name: name, Year: year, Category: category, Genres: genres}
	require.NoError(t, NewTitleRepository(db).Create(context.Background(), title))
	return title
}

func seedReview(t *testing.T, db *gorm.DB, title *entities.Title, author *entities.User, score int, pubDate time.Time) *entities.Review {
	t.Helper()

	review := &entities.Review{TitleID: title.ID, AuthorID: author.ID, Text: "texto", Score: score, PubDate: pubDate}
	require.NoError(t, NewReviewRepository(db).Create(context.Background(), review))
	return review
}
