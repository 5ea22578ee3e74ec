package repositories

import (
	"context"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
)

// AdminRepository define a interface para persistência de admins
type AdminRepository interface {
	Create(ctx context.Context, admin *entities.Admin) error
	FindByID(ctx context.Context, id uint) (*entities.Admin, error)
	// FindByEmail ignora registros soft-deletados; a unicidade de email
	// vale apenas entre admins vivos
	FindByEmail(ctx context.Context, email string) (*entities.Admin, error)
	Update(ctx context.Context, admin *entities.Admin) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filters AdminFilters) ([]*entities.Admin, error)
}

// AdminFilters contém filtros para listagem de admins
type AdminFilters struct {
	Papel *entities.Papel
	Ativo *bool
}
