package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/domain/repositories"
)

// CategoriaRepository implementa repositories.CategoriaRepository
type CategoriaRepository struct {
	db *gorm.DB
}

// NewCategoriaRepository cria um novo CategoriaRepository
func NewCategoriaRepository(db *gorm.DB) repositories.CategoriaRepository {
	return &CategoriaRepository{db: db}
}

func (r *CategoriaRepository) Create(ctx context.Context, categoria *entities.Categoria) error {
	model := r.toModel(categoria)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	categoria.ID = model.ID
	return nil
}

func (r *CategoriaRepository) FindByID(ctx context.Context, id uint) (*entities.Categoria, error) {
	var model CategoriaModel

	db := r.getDB(ctx)
	// Soft delete: ignorar registros deletados
	if err := db.Where("id = ? AND deleted_at IS NULL", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *CategoriaRepository) Update(ctx context.Context, categoria *entities.Categoria) error {
	model := r.toModel(categoria)

	db := r.getDB(ctx)
	return db.Save(model).Error
}

func (r *CategoriaRepository) Delete(ctx context.Context, id uint) error {
	db := r.getDB(ctx)
	// Soft delete: atualizar deleted_at ao invés de deletar
	now := time.Now().Unix()
	return db.Model(&CategoriaModel{}).Where("id = ? AND deleted_at IS NULL", id).Update("deleted_at", now).Error
}

func (r *CategoriaRepository) List(ctx context.Context, filters repositories.CategoriaFilters) ([]*entities.Categoria, error) {
	var models []*CategoriaModel

	db := r.getDB(ctx)
	query := db.Model(&CategoriaModel{})

	// Soft delete: ignorar registros deletados
	query = query.Where("deleted_at IS NULL")

	if filters.Tipo != nil {
		query = query.Where("tipo = ?", string(*filters.Tipo))
	}
	if filters.Ativo != nil {
		query = query.Where("ativo = ?", *filters.Ativo)
	}

	query = query.Order("nome ASC")

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *CategoriaRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *CategoriaRepository) toModel(categoria *entities.Categoria) *CategoriaModel {
	var deletedAt *int64
	if categoria.DeletadoEm != nil {
		ts := categoria.DeletadoEm.Unix()
		deletedAt = &ts
	}

	return &CategoriaModel{
		ID:        categoria.ID,
		Nome:      categoria.Nome,
		Tipo:      string(categoria.Tipo),
		Ativo:     categoria.Ativo,
		CreatedAt: categoria.CriadoEm.Unix(),
		UpdatedAt: categoria.AtualizadoEm.Unix(),
		DeletedAt: deletedAt,
	}
}

func (r *CategoriaRepository) toEntity(model *CategoriaModel) *entities.Categoria {
	var deletadoEm *time.Time
	if model.DeletedAt != nil {
		ts := time.Unix(*model.DeletedAt, 0)
		deletadoEm = &ts
	}

	return &entities.Categoria{
		ID:           model.ID,
		Nome:         model.Nome,
		Tipo:         entities.TipoCategoria(model.Tipo),
		Ativo:        model.Ativo,
		CriadoEm:     time.Unix(model.CreatedAt, 0),
		AtualizadoEm: time.Unix(model.UpdatedAt, 0),
		DeletadoEm:   deletadoEm,
	}
}

func (r *CategoriaRepository) toEntities(models []*CategoriaModel) []*entities.Categoria {
	result := make([]*entities.Categoria, 0, len(models))
	for _, model := range models {
		result = append(result, r.toEntity(model))
	}
	return result
}
