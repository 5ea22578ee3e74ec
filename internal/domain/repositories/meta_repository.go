package repositories

import (
	"context"
	"time"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
)

// MetaRepository define a interface para persistência de metas semanais
type MetaRepository interface {
	Create(ctx context.Context, meta *entities.Meta) error
	FindByID(ctx context.Context, id uint) (*entities.Meta, error)
	Update(ctx context.Context, meta *entities.Meta) error
	Delete(ctx context.Context, id uint) error
	// List ordena por data_inicio decrescente
	List(ctx context.Context, filters MetaFilters) ([]*entities.Meta, error)
}

// MetaFilters contém filtros para listagem de metas
type MetaFilters struct {
	AgentIDs   []int64
	UsuarioID  *uint
	Pendentes  bool
	DataInicio *time.Time
	DataFim    *time.Time
}
