package repositories

import (
	"context"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
)

// CategoriaRepository define a interface para persistência de categorias
type CategoriaRepository interface {
	Create(ctx context.Context, categoria *entities.Categoria) error
	FindByID(ctx context.Context, id uint) (*entities.Categoria, error)
	Update(ctx context.Context, categoria *entities.Categoria) error
	Delete(ctx context.Context, id uint) error
	// List ordena por nome
	List(ctx context.Context, filters CategoriaFilters) ([]*entities.Categoria, error)
}

// CategoriaFilters contém filtros para listagem de categorias
type CategoriaFilters struct {
	Tipo  *entities.TipoCategoria
	Ativo *bool
}
