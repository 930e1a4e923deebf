package dto

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/yamdb-backend/internal/domain/repositories"
)

// PageResponse é o envelope das listagens paginadas
type PageResponse[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// ParseLimitOffset lê ?limit= e ?offset= (categorias e gêneros)
func ParseLimitOffset(c *gin.Context) repositories.Page {
	page := repositories.Page{
		Limit:  queryInt(c, "limit", 0),
		Offset: queryInt(c, "offset", 0),
	}.Normalize()
	// offset+limit precisa caber em int para o link next
	page.Offset = min(page.Offset, math.MaxInt-page.Limit)
	return page
}

// ParsePageNumber lê ?page= e ?page_size= (demais listagens)
func ParsePageNumber(c *gin.Context) repositories.Page {
	size := repositories.Page{Limit: queryInt(c, "page_size", 0)}.Normalize().Limit
	page := queryInt(c, "page", 1)
	if page < 1 {
		page = 1
	}
	page = min(page, math.MaxInt/size)
	return repositories.Page{Limit: size, Offset: (page - 1) * size}
}

// NewLimitOffsetPage monta o envelope com links por limit/offset
func NewLimitOffsetPage[T any](c *gin.Context, page repositories.Page, total int64, results []T) PageResponse[T] {
	response := newPageResponse(total, results)

	if int64(page.Offset+page.Limit) < total {
		response.Next = pageLink(c, map[string]int{"limit": page.Limit, "offset": page.Offset + page.Limit})
	}
	if page.Offset > 0 {
		prev := page.Offset - page.Limit
		if prev <= 0 {
			response.Previous = pageLink(c, map[string]int{"limit": page.Limit, "offset": -1})
		} else {
			response.Previous = pageLink(c, map[string]int{"limit": page.Limit, "offset": prev})
		}
	}
	return response
}

// NewPageNumberPage monta o envelope com links por número de página
func NewPageNumberPage[T any](c *gin.Context, page repositories.Page, total int64, results []T) PageResponse[T] {
	response := newPageResponse(total, results)
	current := page.Offset/page.Limit + 1

	if int64(current*page.Limit) < total {
		response.Next = pageLink(c, map[string]int{"page": current + 1})
	}
	switch {
	case current == 2:
		response.Previous = pageLink(c, map[string]int{"page": -1})
	case current > 2:
		response.Previous = pageLink(c, map[string]int{"page": current - 1})
	}
	return response
}

func newPageResponse[T any](total int64, results []T) PageResponse[T] {
	if results == nil {
		results = []T{}
	}
	return PageResponse[T]{Count: total, Results: results}
}

// pageLink reescreve a query atual; valor negativo remove o parâmetro
func pageLink(c *gin.Context, params map[string]int) *string {
	query := c.Request.URL.Query()
	for key, value := range params {
		if value < 0 {
			query.Del(key)
			continue
		}
		query.Set(key, strconv.Itoa(value))
	}

	link := BaseURL(c) + c.Request.URL.Path
	if encoded := query.Encode(); encoded != "" {
		link += "?" + encoded
	}
	return &link
}

func queryInt(c *gin.Context, key string, fallback int) int {
	value, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return fallback
	}
	return value
}
