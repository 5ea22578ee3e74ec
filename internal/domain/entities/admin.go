package entities

import (
	"errors"
	"time"

	"github.com/produtivi/financeiro-backend/internal/domain/valueobjects"
)

// Admin representa um administrador do painel
type Admin struct {
	ID           uint
	Nome         string
	Email        valueobjects.Email
	SenhaHash    string
	Papel        Papel
	Ativo        bool
	CriadoEm     time.Time
	AtualizadoEm time.Time
	DeletadoEm   *time.Time // Soft delete
}

// IsMaster verifica se o admin tem o papel master
func (a *Admin) IsMaster() bool {
	return a.Papel == PapelMaster
}

// IsDeleted verifica se o admin foi deletado (soft delete)
func (a *Admin) IsDeleted() bool {
	return a.DeletadoEm != nil
}

// SoftDelete marca o admin como deletado
func (a *Admin) SoftDelete() {
	now := time.Now()
	a.DeletadoEm = &now
}

// PodeAutenticar verifica se o admin pode abrir sessão
func (a *Admin) PodeAutenticar() bool {
	return a.Ativo && !a.IsDeleted()
}

// Validate valida regras de negócio da entidade Admin
func (a *Admin) Validate() error {
	if a.Email.String() == "" {
		return errors.New("email é obrigatório")
	}

	if a.Nome == "" {
		return errors.New("nome é obrigatório")
	}

	if len(a.Nome) < 2 {
		return errors.New("nome deve ter pelo menos 2 caracteres")
	}

	if !a.Papel.Valido() {
		return errors.New("papel inválido")
	}

	return nil
}
