package entities

import (
	"errors"
	"time"
)

// StatusUsuario representa o estado de um usuário final do agente
type StatusUsuario string

const (
	StatusUsuarioAtivo    StatusUsuario = "active"
	StatusUsuarioInativo  StatusUsuario = "inactive"
	StatusUsuarioDeletado StatusUsuario = "deleted"
)

// Valido verifica se o status é conhecido
func (s StatusUsuario) Valido() bool {
	return s == StatusUsuarioAtivo || s == StatusUsuarioInativo || s == StatusUsuarioDeletado
}

// Usuario representa um usuário final do agente de mensageria cuja vida
// financeira é acompanhada pela plataforma
type Usuario struct {
	ID           uint
	ChatID       string
	AgentID      int64
	Nome         string
	Telefone     string
	GrupoID      *uint
	Status       StatusUsuario
	CriadoEm     time.Time
	AtualizadoEm time.Time
	DeletadoEm   *time.Time // Soft delete
}

// IsDeleted verifica se o usuário foi deletado (soft delete)
func (u *Usuario) IsDeleted() bool {
	return u.DeletadoEm != nil
}

// SoftDelete marca o usuário como deletado
func (u *Usuario) SoftDelete() {
	now := time.Now()
	u.DeletadoEm = &now
	u.Status = StatusUsuarioDeletado
}

// Validate valida regras de negócio da entidade Usuario
func (u *Usuario) Validate() error {
	if u.Nome == "" {
		return errors.New("nome é obrigatório")
	}

	if u.Telefone == "" {
		return errors.New("telefone é obrigatório")
	}

	if u.AgentID <= 0 {
		return errors.New("agent_id deve ser positivo")
	}

	if !u.Status.Valido() {
		return errors.New("status inválido")
	}

	return nil
}
