package entities

import (
	"errors"
	"time"
)

// Grupo agrupa usuários para fins de acompanhamento coletivo
type Grupo struct {
	ID           uint
	Nome         string
	Descricao    string
	Ativo        bool
	CriadoEm     time.Time
	AtualizadoEm time.Time
	DeletadoEm   *time.Time // Soft delete
}

// IsDeleted verifica se o grupo foi deletado (soft delete)
func (g *Grupo) IsDeleted() bool {
	return g.DeletadoEm != nil
}

// SoftDelete marca o grupo como deletado
func (g *Grupo) SoftDelete() {
	now := time.Now()
	g.DeletadoEm = &now
}

// Validate valida regras de negócio da entidade Grupo
func (g *Grupo) Validate() error {
	if g.Nome == "" {
		return errors.New("nome é obrigatório")
	}

	return nil
}
