package dto

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	domainerrors "github.com/rafabene/yamdb-backend/internal/domain/errors"
)

// RegisterJSONTagNames faz o validator reportar campos pelo nome do JSON
func RegisterJSONTagNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
}

// BindJSON decodifica e valida o corpo. Em caso de erro já escreve a resposta
// RFC 7807 e retorna false. Corpo vazio é tratado como objeto vazio.
func BindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if errors.Is(err, io.EOF) {
		err = binding.Validator.ValidateStruct(req)
	}
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.As(err, &verrs):
		AbortWithProblem(c, FieldErrorsResponseI18n(c, translateValidation(verrs)))
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = domainerrors.NonFieldErrors
		}
		AbortWithProblem(c, FieldErrorsResponseI18n(c, domainerrors.NewValidationError(field, domainerrors.MsgInvalidValue)))
	default:
		AbortWithProblem(c, BadRequestErrorResponseI18n(c))
	}
	return false
}

func translateValidation(verrs validator.ValidationErrors) *domainerrors.ValidationError {
	out := &domainerrors.ValidationError{}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			out.Add(fe.Field(), domainerrors.MsgRequired)
		case "max":
			max, _ := strconv.Atoi(fe.Param())
			out.Add(fe.Field(), domainerrors.MsgTooLong, map[string]interface{}{"Max": max})
		default:
			out.Add(fe.Field(), domainerrors.MsgInvalidValue)
		}
	}
	return out
}
