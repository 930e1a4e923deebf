package dto

import (
	"github.com/rafabene/yamdb-backend/internal/domain/entities"
	"github.com/rafabene/yamdb-backend/internal/services"
)

// CatalogRequest cria uma categoria ou um gênero
type CatalogRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required"`
}

func (r CatalogRequest) ToInput() services.CatalogInput {
	return services.CatalogInput{Name: r.Name, Slug: r.Slug}
}

// CatalogResponse é a forma pública de categorias e gêneros
type CatalogResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func ToCategoryResponse(category *entities.Category) CatalogResponse {
	return CatalogResponse{Name: category.Name, Slug: category.Slug}
}

func ToCategoryResponses(categories []*entities.Category) []CatalogResponse {
	responses := make([]CatalogResponse, len(categories))
	for i, category := range categories {
		responses[i] = ToCategoryResponse(category)
	}
	return responses
}

func ToGenreResponse(genre *entities.Genre) CatalogResponse {
	return CatalogResponse{Name: genre.Name, Slug: genre.Slug}
}

func ToGenreResponses(genres []*entities.Genre) []CatalogResponse {
	responses := make([]CatalogResponse, len(genres))
	for i, genre := range genres {
		responses[i] = ToGenreResponse(genre)
	}
	return responses
}
