package dto

import (
	"github.com/rafabene/yamdb-backend/internal/domain/entities"
	"github.com/rafabene/yamdb-backend/internal/services"
)

// TitleRequest escreve uma obra referenciando categoria e gêneros por slug
type TitleRequest struct {
	Name        *string   `json:"name"`
	Year        *int      `json:"year"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Genre       *[]string `json:"genre"`
}

func (r TitleRequest) ToInput() services.TitleInput {
	return services.TitleInput{
		Name:        r.Name,
		Year:        r.Year,
		Description: r.Description,
		Category:    r.Category,
		Genres:      r.Genre,
	}
}

// TitleResponse é a forma de leitura de uma obra, com nota agregada
type TitleResponse struct {
	ID          uint              `json:"id"`
	Name        string            `json:"name"`
	Year        int               `json:"year"`
	Rating      *float64          `json:"rating"`
	Description string            `json:"description"`
	Category    *CatalogResponse  `json:"category"`
	Genre       []CatalogResponse `json:"genre"`
}

func ToTitleResponse(title *entities.Title) TitleResponse {
	response := TitleResponse{
		ID:          title.ID,
		Name:        title.Name,
		Year:        title.Year,
		Rating:      title.Rating,
		Description: title.Description,
		Genre:       make([]CatalogResponse, len(title.Genres)),
	}
	if title.Category != nil {
		category := ToCategoryResponse(title.Category)
		response.Category = &category
	}
	for i := range title.Genres {
		response.Genre[i] = ToGenreResponse(&title.Genres[i])
	}
	return response
}

func ToTitleResponses(titles []*entities.Title) []TitleResponse {
	responses := make([]TitleResponse, len(titles))
	for i, title := range titles {
		responses[i] = ToTitleResponse(title)
	}
	return responses
}
