package gormdb

import "time"

// UserModel é o model GORM para usuários
type UserModel struct {
	ID               uint   `gorm:"primaryKey"`
	Username         string `gorm:"type:varchar(150);uniqueIndex;not null"`
	Email            string `gorm:"type:varchar(254);uniqueIndex;not null"`
	FirstName        string `gorm:"type:varchar(150)"`
	LastName         string `gorm:"type:varchar(150)"`
	Bio              string `gorm:"type:text"`
	Role             string `gorm:"type:varchar(16);not null;default:user;index"`
	ConfirmationCode string `gorm:"type:varchar(255)"`
	IsSuperuser      bool   `gorm:"not null;default:false"`
	CreatedAt        int64  `gorm:"autoCreateTime;index"`
	UpdatedAt        int64  `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

// CategoryModel é o model GORM para categorias
type CategoryModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(256);not null;index"`
	Slug string `gorm:"type:varchar(50);uniqueIndex;not null"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

// GenreModel é o model GORM para gêneros
type GenreModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(256);not null;index"`
	Slug string `gorm:"type:varchar(50);uniqueIndex;not null"`
}

func (GenreModel) TableName() string {
	return "genres"
}

// TitleModel é o model GORM para obras
type TitleModel struct {
	ID          uint           `gorm:"primaryKey"`
	Name        string         `gorm:"type:varchar(256);not null"`
	Year        int            `gorm:"not null;index"`
	Description string         `gorm:"type:text"`
	CategoryID  *uint          `gorm:"index"`
	Category    *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Genres      []GenreModel   `gorm:"many2many:title_genres;joinForeignKey:TitleID;joinReferences:GenreID"`
}

func (TitleModel) TableName() string {
	return "titles"
}

// ReviewModel é o model GORM para reviews.
// O índice único (title_id, author_id) garante uma review por autor e obra.
type ReviewModel struct {
	ID       uint      `gorm:"primaryKey"`
	TitleID  uint      `gorm:"not null;uniqueIndex:idx_reviews_title_author"`
	AuthorID uint      `gorm:"not null;uniqueIndex:idx_reviews_title_author;index"`
	Author   UserModel `gorm:"foreignKey:AuthorID"`
	Text     string    `gorm:"type:text;not null"`
	Score    int       `gorm:"not null"`
	PubDate  time.Time `gorm:"not null;index"`
}

func (ReviewModel) TableName() string {
	return "reviews"
}

// CommentModel é o model GORM para comentários
type CommentModel struct {
	ID       uint      `gorm:"primaryKey"`
	ReviewID uint      `gorm:"not null;index"`
	AuthorID uint      `gorm:"not null;index"`
	Author   UserModel `gorm:"foreignKey:AuthorID"`
	Text     string    `gorm:"type:text;not null"`
	PubDate  time.Time `gorm:"not null;index"`
}

func (CommentModel) TableName() string {
	return "comments"
}

// allModels lista os models na ordem de criação das tabelas
func allModels() []interface{} {
	return []interface{}{
		&UserModel{},
		&CategoryModel{},
		&GenreModel{},
		&TitleModel{},
		&ReviewModel{},
		&CommentModel{},
	}
}
