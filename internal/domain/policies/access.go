// Package policies contém as regras de controle de acesso da API.
//
// Cada política responde a duas perguntas: se o chamador pode tentar a ação
// sobre a coleção (HasPermission) e, quando existe uma instância, se pode
// agir sobre aquela instância específica (HasObjectPermission). Um chamador
// nil representa uma requisição anônima.
package policies

import (
	"net/http"

	"github.com/rafabene/yamdb-backend/internal/domain/entities"
)

// Action representa a intenção da requisição sobre um recurso
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// IsSafe indica ações somente-leitura
func (a Action) IsSafe() bool {
	return a == ActionRead
}

// ActionFromMethod mapeia um verbo HTTP para uma Action
func ActionFromMethod(method string) Action {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return ActionRead
	case http.MethodPost:
		return ActionCreate
	case http.MethodPut, http.MethodPatch:
		return ActionUpdate
	case http.MethodDelete:
		return ActionDelete
	default:
		return ActionUpdate
	}
}

// Policy decide se um chamador pode executar uma ação
type Policy interface {
	HasPermission(caller *entities.User, action Action) bool
	HasObjectPermission(caller *entities.User, action Action, obj entities.Authored) bool
}

type adminOnly struct{}

type readOpenWriteAuthor struct{}

type readOpenWriteAdmin struct{}

var (
	// AdminOnly permite apenas administradores autenticados
	AdminOnly Policy = adminOnly{}
	// ReadOpenWriteAuthor libera leitura; escrita exige autenticação e,
	// sobre uma instância, ser autor, moderador ou admin
	ReadOpenWriteAuthor Policy = readOpenWriteAuthor{}
	// ReadOpenWriteAdmin libera leitura; escrita exige AdminOnly
	ReadOpenWriteAdmin Policy = readOpenWriteAdmin{}
)

func isAuthenticatedAdmin(caller *entities.User) bool {
	return caller != nil && caller.IsAdmin()
}

func (adminOnly) HasPermission(caller *entities.User, _ Action) bool {
	return isAuthenticatedAdmin(caller)
}

func (adminOnly) HasObjectPermission(caller *entities.User, _ Action, _ entities.Authored) bool {
	return isAuthenticatedAdmin(caller)
}

func (readOpenWriteAuthor) HasPermission(caller *entities.User, action Action) bool {
	return action.IsSafe() || caller != nil
}

func (readOpenWriteAuthor) HasObjectPermission(caller *entities.User, action Action, obj entities.Authored) bool {
	if action.IsSafe() {
		return true
	}
	if caller == nil {
		return false
	}
	return obj.OwnerID() == caller.ID || caller.IsModerator() || caller.IsAdmin()
}

func (readOpenWriteAdmin) HasPermission(caller *entities.User, action Action) bool {
	return action.IsSafe() || AdminOnly.HasPermission(caller, action)
}

func (readOpenWriteAdmin) HasObjectPermission(caller *entities.User, action Action, obj entities.Authored) bool {
	return action.IsSafe() || AdminOnly.HasObjectPermission(caller, action, obj)
}
