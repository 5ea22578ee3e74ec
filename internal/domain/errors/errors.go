package errors

import "fmt"

// Kind classifica um erro de domínio para que a camada HTTP decida o
// status sem comparar strings de mensagem.
type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindValidation   Kind = "validation"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindInternal     Kind = "internal"
)

// DomainError representa um erro de domínio com classificação e contexto
type DomainError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// KindOf devolve o kind de um erro; erros não classificados são internos
func KindOf(err error) Kind {
	if de, ok := err.(*DomainError); ok {
		return de.Kind
	}
	return KindInternal
}

// NotFound cria um erro de entidade não encontrada (ou já deletada)
func NotFound(entidade string) *DomainError {
	return &DomainError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s não encontrado", entidade),
	}
}

// Conflict cria um erro de violação de unicidade
func Conflict(message string) *DomainError {
	return &DomainError{Kind: KindConflict, Message: message}
}

// Validation cria um erro de dados inválidos
func Validation(message string) *DomainError {
	return &DomainError{Kind: KindValidation, Message: message}
}

// Unauthorized cria um erro de credenciais ausentes ou inválidas
func Unauthorized(message string) *DomainError {
	return &DomainError{Kind: KindUnauthorized, Message: message}
}

// Forbidden cria um erro de permissão insuficiente
func Forbidden(message string) *DomainError {
	return &DomainError{Kind: KindForbidden, Message: message}
}

// Internal embrulha um erro inesperado
func Internal(message string, err error) *DomainError {
	return &DomainError{Kind: KindInternal, Message: message, Err: err}
}
