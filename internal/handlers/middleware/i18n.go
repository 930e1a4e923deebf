package middleware

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/yamdb-backend/internal/handlers/dto"
	"github.com/rafabene/yamdb-backend/internal/infrastructure/i18n"
)

// Language escolhe o idioma das mensagens: ?lang= válido, depois Accept-Language
// ponderado por q, depois o idioma padrão do catálogo.
// O idioma escolhido volta no header Content-Language.
func Language(catalog *i18n.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := matchLanguage(catalog, c.Query("lang"))
		if lang == "" {
			lang = negotiateLanguage(catalog, c.GetHeader("Accept-Language"))
		}
		if lang == "" {
			lang = catalog.GetDefaultLanguage()
		}

		c.Set(dto.LanguageContextKey, lang)
		c.Set(dto.I18nServiceContextKey, catalog)
		c.Header("Content-Language", lang)

		c.Next()
	}
}

type languageRange struct {
	tag     string
	quality float64
}

// negotiateLanguage devolve o primeiro idioma suportado em ordem de q decrescente.
// "ru-RU,ru;q=0.9,en;q=0.8" -> "ru"
func negotiateLanguage(catalog *i18n.Service, header string) string {
	var ranges []languageRange
	for _, part := range strings.Split(header, ",") {
		tag, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if tag == "" || tag == "*" {
			continue
		}

		quality := 1.0
		if value, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			q, err := strconv.ParseFloat(value, 64)
			if err != nil {
				continue
			}
			quality = q
		}
		if quality <= 0 {
			continue
		}
		ranges = append(ranges, languageRange{tag: tag, quality: quality})
	}

	sort.SliceStable(ranges, func(i, j int) bool {
		return ranges[i].quality > ranges[j].quality
	})

	for _, r := range ranges {
		if lang := matchLanguage(catalog, r.tag); lang != "" {
			return lang
		}
	}
	return ""
}

// matchLanguage casa a tag com um catálogo, ignorando caixa:
// primeiro exata, depois o idioma base (ru-RU -> ru), depois uma variante regional (pt -> pt-BR).
func matchLanguage(catalog *i18n.Service, tag string) string {
	if tag == "" {
		return ""
	}

	supported := catalog.GetSupportedLanguages()
	sort.Strings(supported)

	base, _, _ := strings.Cut(tag, "-")
	for _, lang := range supported {
		if strings.EqualFold(lang, tag) {
			return lang
		}
	}
	for _, lang := range supported {
		if strings.EqualFold(lang, base) {
			return lang
		}
	}
	for _, lang := range supported {
		if prefix, _, ok := strings.Cut(lang, "-"); ok && strings.EqualFold(prefix, base) {
			return lang
		}
	}
	return ""
}
