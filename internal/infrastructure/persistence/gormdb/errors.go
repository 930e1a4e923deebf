package gormdb

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	domainerrors "github.com/rafabene/yamdb-backend/internal/domain/errors"
)

// translateError converte erros do GORM em erros de domínio
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerrors.ErrUniqueViolation
	}
	return err
}

// isNotFound verifica se o erro é de registro inexistente
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// likePattern monta o padrão de busca case-insensitive
func likePattern(term string) string {
	return "%" + term + "%"
}

// sqlf preenche um fragmento SQL com a condição informada
func sqlf(format, condition string) string {
	return fmt.Sprintf(format, condition)
}
