package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/rafabene/yamdb-backend/internal/domain/errors"
	"github.com/rafabene/yamdb-backend/internal/domain/ports"
	"github.com/rafabene/yamdb-backend/internal/domain/repositories"
	"github.com/rafabene/yamdb-backend/internal/handlers/dto"
	"github.com/rafabene/yamdb-backend/internal/services"
)

// TitleHandler atende as obras
type TitleHandler struct {
	titleService *services.TitleService
	logger       ports.Logger
}

// NewTitleHandler cria um novo TitleHandler
func NewTitleHandler(titleService *services.TitleService, logger ports.Logger) *TitleHandler {
	return &TitleHandler{
		titleService: titleService,
		logger:       logger,
	}
}

// parseTitleFilters lê os filtros da query; campos de ordering desconhecidos são ignorados
func parseTitleFilters(c *gin.Context) (repositories.TitleFilters, error) {
	filters := repositories.TitleFilters{
		Genre:    c.Query("genre"),
		Category: c.Query("category"),
		Name:     c.Query("name"),
		Search:   c.Query("search"),
		Page:     dto.ParsePageNumber(c),
	}

	if raw := c.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return filters, domainerrors.NewValidationError("year", domainerrors.MsgInvalidValue)
		}
		filters.Year = &year
	}

	for _, field := range strings.Split(c.Query("ordering"), ",") {
		field = strings.TrimSpace(field)
		ordering := repositories.TitleOrdering{Field: strings.TrimPrefix(field, "-")}
		ordering.Descending = ordering.Field != field

		switch ordering.Field {
		case repositories.TitleOrderName, repositories.TitleOrderYear, repositories.TitleOrderCategory, repositories.TitleOrderGenre:
			filters.Ordering = append(filters.Ordering, ordering)
		}
	}

	return filters, nil
}

// ListTitles lista obras com filtros, busca e ordenação
//
//	@Summary	Lista de obras
//	@Tags		titles
//	@Produce	json
//	@Param		genre		query		string	false	"slug do gênero"
//	@Param		category	query		string	false	"slug da categoria"
//	@Param		year		query		int		false	"ano"
//	@Param		name		query		string	false	"nome"
//	@Param		search		query		string	false	"busca por nome, ano, categoria ou gênero"
//	@Param		ordering	query		string	false	"name, year, category, genre (prefixo - para decrescente)"
//	@Param		page		query		int		false	"página"
//	@Success	200			{object}	dto.PageResponse[dto.TitleResponse]
//	@Router		/titles [get]
func (h *TitleHandler) ListTitles(c *gin.Context) {
	filters, err := parseTitleFilters(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	titles, total, err := h.titleService.ListTitles(c.Request.Context(), filters)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPageNumberPage(c, filters.Page, total, dto.ToTitleResponses(titles)))
}

// GetTitle retorna a obra com categoria, gêneros e nota
//
//	@Summary	Detalhe de obra
//	@Tags		titles
//	@Produce	json
//	@Param		title_id	path		int	true	"ID da obra"
//	@Success	200			{object}	dto.TitleResponse
//	@Failure	404			{object}	dto.ErrorResponse
//	@Router		/titles/{title_id} [get]
func (h *TitleHandler) GetTitle(c *gin.Context) {
	id, ok := pathID(c, "title_id", domainerrors.ErrTitleNotFound)
	if !ok {
		return
	}

	title, err := h.titleService.GetTitle(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTitleResponse(title))
}

// CreateTitle cria uma obra (admin)
//
//	@Summary	Criação de obra
//	@Tags		titles
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		dto.TitleRequest	true	"obra com slugs de categoria e gêneros"
//	@Success	201		{object}	dto.TitleResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/titles [post]
func (h *TitleHandler) CreateTitle(c *gin.Context) {
	var req dto.TitleRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	title, err := h.titleService.CreateTitle(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTitleResponse(title))
}

// UpdateTitle edita parcialmente uma obra (admin)
//
//	@Summary	Edição de obra
//	@Tags		titles
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		title_id	path		int					true	"ID da obra"
//	@Param		body		body		dto.TitleRequest	true	"campos alterados"
//	@Success	200			{object}	dto.TitleResponse
//	@Router		/titles/{title_id} [patch]
func (h *TitleHandler) UpdateTitle(c *gin.Context) {
	id, ok := pathID(c, "title_id", domainerrors.ErrTitleNotFound)
	if !ok {
		return
	}

	var req dto.TitleRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	title, err := h.titleService.UpdateTitle(c.Request.Context(), id, req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTitleResponse(title))
}

// DeleteTitle remove a obra com suas reviews e comentários (admin)
//
//	@Summary	Remoção de obra
//	@Tags		titles
//	@Security	BearerAuth
//	@Param		title_id	path	int	true	"ID da obra"
//	@Success	204
//	@Router		/titles/{title_id} [delete]
func (h *TitleHandler) DeleteTitle(c *gin.Context) {
	id, ok := pathID(c, "title_id", domainerrors.ErrTitleNotFound)
	if !ok {
		return
	}

	if err := h.titleService.DeleteTitle(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
