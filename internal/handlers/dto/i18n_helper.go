package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/yamdb-backend/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey é a chave usada para armazenar o idioma no contexto do Gin
	LanguageContextKey = "language"
	// I18nServiceContextKey é a chave usada para armazenar o serviço i18n no contexto
	I18nServiceContextKey = "i18n_service"
)

// T é um helper para traduzir mensagens no contexto do Gin
// Uso: dto.T(c, "validation.too_long", map[string]interface{}{"Max": 150})
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	service := i18nService(c)
	if service == nil {
		// Fallback: retornar a chave se serviço não estiver disponível
		return key
	}

	return service.T(GetLanguage(c), key, params...)
}

// GetLanguage retorna o idioma configurado no contexto da requisição,
// ou o idioma padrão do serviço i18n
func GetLanguage(c *gin.Context) string {
	if lang, ok := c.Get(LanguageContextKey); ok {
		if langStr, ok := lang.(string); ok && langStr != "" {
			return langStr
		}
	}

	if service := i18nService(c); service != nil {
		return service.GetDefaultLanguage()
	}
	return ""
}

func i18nService(c *gin.Context) *i18n.Service {
	value, exists := c.Get(I18nServiceContextKey)
	if !exists {
		return nil
	}
	service, _ := value.(*i18n.Service)
	return service
}
