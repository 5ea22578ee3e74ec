package entities

import (
	"errors"
	"time"
)

// TipoCategoria indica se a categoria classifica receitas ou despesas
type TipoCategoria string

const (
	TipoCategoriaReceita TipoCategoria = "receita"
	TipoCategoriaDespesa TipoCategoria = "despesa"
)

// Valido verifica se o tipo é conhecido
func (t TipoCategoria) Valido() bool {
	return t == TipoCategoriaReceita || t == TipoCategoriaDespesa
}

// Categoria representa uma categoria de transação
type Categoria struct {
	ID           uint
	Nome         string
	Tipo         TipoCategoria
	Ativo        bool
	CriadoEm     time.Time
	AtualizadoEm time.Time
	DeletadoEm   *time.Time // Soft delete
}

// IsDeleted verifica se a categoria foi deletada (soft delete)
func (c *Categoria) IsDeleted() bool {
	return c.DeletadoEm != nil
}

// SoftDelete marca a categoria como deletada
func (c *Categoria) SoftDelete() {
	now := time.Now()
	c.DeletadoEm = &now
}

// Validate valida regras de negócio da entidade Categoria
func (c *Categoria) Validate() error {
	if c.Nome == "" {
		return errors.New("nome é obrigatório")
	}

	if !c.Tipo.Valido() {
		return errors.New("tipo deve ser receita ou despesa")
	}

	return nil
}
