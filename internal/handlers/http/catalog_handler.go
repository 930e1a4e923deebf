package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/yamdb-backend/internal/domain/ports"
	"github.com/rafabene/yamdb-backend/internal/domain/repositories"
	"github.com/rafabene/yamdb-backend/internal/handlers/dto"
	"github.com/rafabene/yamdb-backend/internal/services"
)

// CatalogHandler atende categorias e gêneros
type CatalogHandler struct {
	catalogService *services.CatalogService
	logger         ports.Logger
}

// NewCatalogHandler cria um novo CatalogHandler
func NewCatalogHandler(catalogService *services.CatalogService, logger ports.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

func catalogFilters(c *gin.Context) repositories.CatalogFilters {
	return repositories.CatalogFilters{
		Search: c.Query("search"),
		Page:   dto.ParseLimitOffset(c),
	}
}

// ListCategories lista categorias por nome
//
//	@Summary	Lista de categorias
//	@Tags		categories
//	@Produce	json
//	@Param		search	query		string	false	"trecho do nome"
//	@Param		limit	query		int		false	"limite"
//	@Param		offset	query		int		false	"deslocamento"
//	@Success	200		{object}	dto.PageResponse[dto.CatalogResponse]
//	@Router		/categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	filters := catalogFilters(c)

	categories, total, err := h.catalogService.ListCategories(c.Request.Context(), filters)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewLimitOffsetPage(c, filters.Page, total, dto.ToCategoryResponses(categories)))
}

// CreateCategory cria uma categoria (admin)
//
//	@Summary	Criação de categoria
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		dto.CatalogRequest	true	"categoria"
//	@Success	201		{object}	dto.CatalogResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/categories [post]
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req dto.CatalogRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	category, err := h.catalogService.CreateCategory(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// DeleteCategory remove a categoria; as obras ficam sem categoria (admin)
//
//	@Summary	Remoção de categoria
//	@Tags		categories
//	@Security	BearerAuth
//	@Param		slug	path	string	true	"slug"
//	@Success	204
//	@Router		/categories/{slug} [delete]
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	if err := h.catalogService.DeleteCategory(c.Request.Context(), c.Param("slug")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListGenres lista gêneros por nome
//
//	@Summary	Lista de gêneros
//	@Tags		genres
//	@Produce	json
//	@Param		search	query		string	false	"trecho do nome"
//	@Param		limit	query		int		false	"limite"
//	@Param		offset	query		int		false	"deslocamento"
//	@Success	200		{object}	dto.PageResponse[dto.CatalogResponse]
//	@Router		/genres [get]
func (h *CatalogHandler) ListGenres(c *gin.Context) {
	filters := catalogFilters(c)

	genres, total, err := h.catalogService.ListGenres(c.Request.Context(), filters)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewLimitOffsetPage(c, filters.Page, total, dto.ToGenreResponses(genres)))
}

// CreateGenre cria um gênero (admin)
//
//	@Summary	Criação de gênero
//	@Tags		genres
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		dto.CatalogRequest	true	"gênero"
//	@Success	201		{object}	dto.CatalogResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/genres [post]
func (h *CatalogHandler) CreateGenre(c *gin.Context) {
	var req dto.CatalogRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	genre, err := h.catalogService.CreateGenre(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToGenreResponse(genre))
}

// DeleteGenre remove o gênero e o retira das obras (admin)
//
//	@Summary	Remoção de gênero
//	@Tags		genres
//	@Security	BearerAuth
//	@Param		slug	path	string	true	"slug"
//	@Success	204
//	@Router		/genres/{slug} [delete]
func (h *CatalogHandler) DeleteGenre(c *gin.Context) {
	if err := h.catalogService.DeleteGenre(c.Request.Context(), c.Param("slug")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
