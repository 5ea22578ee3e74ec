package dto

import (
	"time"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
)

// CreateCategoriaRequest é o corpo de criação de categoria
type CreateCategoriaRequest struct {
	Nome  string `json:"nome" binding:"required"`
	Tipo  string `json:"tipo" binding:"required,oneof=receita despesa"`
	Ativo *bool  `json:"ativo"`
}

// UpdateCategoriaRequest é o corpo de atualização parcial de categoria
type UpdateCategoriaRequest struct {
	Nome  *string `json:"nome"`
	Tipo  *string `json:"tipo" binding:"omitempty,oneof=receita despesa"`
	Ativo *bool   `json:"ativo"`
}

// CategoriaResponse é a visão pública de uma categoria
type CategoriaResponse struct {
	ID           uint      `json:"id"`
	Nome         string    `json:"nome"`
	Tipo         string    `json:"tipo"`
	Ativo        bool      `json:"ativo"`
	CriadoEm     time.Time `json:"criado_em"`
	AtualizadoEm time.Time `json:"atualizado_em"`
}

// ToCategoriaResponse converte a entidade para a visão pública
func ToCategoriaResponse(categoria *entities.Categoria) CategoriaResponse {
	return CategoriaResponse{
		ID:           categoria.ID,
		Nome:         categoria.Nome,
		Tipo:         string(categoria.Tipo),
		Ativo:        categoria.Ativo,
		CriadoEm:     categoria.CriadoEm,
		AtualizadoEm: categoria.AtualizadoEm,
	}
}

// ToCategoriaResponses converte uma lista de categorias
func ToCategoriaResponses(categorias []*entities.Categoria) []CategoriaResponse {
	saida := make([]CategoriaResponse, 0, len(categorias))
	for _, c := range categorias {
		saida = append(saida, ToCategoriaResponse(c))
	}
	return saida
}
