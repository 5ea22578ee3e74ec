package repositories

import (
	"context"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
)

// UsuarioRepository define a interface para persistência de usuários finais
type UsuarioRepository interface {
	Create(ctx context.Context, usuario *entities.Usuario) error
	FindByID(ctx context.Context, id uint) (*entities.Usuario, error)
	// FindByTelefoneEAgente localiza o usuário pela chave natural usada
	// na importação em lote
	FindByTelefoneEAgente(ctx context.Context, telefone string, agentID int64) (*entities.Usuario, error)
	Update(ctx context.Context, usuario *entities.Usuario) error
	Delete(ctx context.Context, id uint) error
	// List ordena por criado_em decrescente
	List(ctx context.Context, filters UsuarioFilters) ([]*entities.Usuario, error)
}

// UsuarioFilters contém filtros para listagem de usuários.
// AgentIDs nil significa sem filtro (visibilidade master); lista vazia
// significa nenhum agente visível e deve produzir resultado vazio.
type UsuarioFilters struct {
	AgentIDs []int64
	GrupoID  *uint
	Status   *entities.StatusUsuario
}
