package repositories

import (
	"context"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
)

// GrupoRepository define a interface para persistência de grupos
type GrupoRepository interface {
	Create(ctx context.Context, grupo *entities.Grupo) error
	FindByID(ctx context.Context, id uint) (*entities.Grupo, error)
	Update(ctx context.Context, grupo *entities.Grupo) error
	Delete(ctx context.Context, id uint) error
	// List ordena por nome
	List(ctx context.Context) ([]*entities.Grupo, error)
}
