package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/domain/repositories"
)

// GrupoRepository implementa repositories.GrupoRepository
type GrupoRepository struct {
	db *gorm.DB
}

// NewGrupoRepository cria um novo GrupoRepository
func NewGrupoRepository(db *gorm.DB) repositories.GrupoRepository {
	return &GrupoRepository{db: db}
}

func (r *GrupoRepository) Create(ctx context.Context, grupo *entities.Grupo) error {
	model := r.toModel(grupo)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	grupo.ID = model.ID
	return nil
}

func (r *GrupoRepository) FindByID(ctx context.Context, id uint) (*entities.Grupo, error) {
	var model GrupoModel

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

func (r *GrupoRepository) Update(ctx context.Context, grupo *entities.Grupo) error {
	model := r.toModel(grupo)

	db := r.getDB(ctx)
	return db.Save(model).Error
}

func (r *GrupoRepository) Delete(ctx context.Context, id uint) error {
	db := r.getDB(ctx)
	// Soft delete: atualizar deleted_at ao invés de deletar
	now := time.Now().Unix()
	return db.Model(&GrupoModel{}).Where("id = ? AND deleted_at IS NULL", id).Update("deleted_at", now).Error
}

func (r *GrupoRepository) List(ctx context.Context) ([]*entities.Grupo, error) {
	var models []*GrupoModel

	db := r.getDB(ctx)
	// Soft delete: ignorar registros deletados
	if err := db.Where("deleted_at IS NULL").Order("nome ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *GrupoRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *GrupoRepository) toModel(grupo *entities.Grupo) *GrupoModel {
	var deletedAt *int64
	if grupo.DeletadoEm != nil {
		ts := grupo.DeletadoEm.Unix()
		deletedAt = &ts
	}

	return &GrupoModel{
		ID:        grupo.ID,
		Nome:      grupo.Nome,
		Descricao: grupo.Descricao,
		Ativo:     grupo.Ativo,
		CreatedAt: grupo.CriadoEm.Unix(),
		UpdatedAt: grupo.AtualizadoEm.Unix(),
		DeletedAt: deletedAt,
	}
}

func (r *GrupoRepository) toEntity(model *GrupoModel) *entities.Grupo {
	var deletadoEm *time.Time
	if model.DeletedAt != nil {
		ts := time.Unix(*model.DeletedAt, 0)
		deletadoEm = &ts
	}

	return &entities.Grupo{
		ID:           model.ID,
		Nome:         model.Nome,
		Descricao:    model.Descricao,
		Ativo:        model.Ativo,
		CriadoEm:     time.Unix(model.CreatedAt, 0),
		AtualizadoEm: time.Unix(model.UpdatedAt, 0),
		DeletadoEm:   deletadoEm,
	}
}

func (r *GrupoRepository) toEntities(models []*GrupoModel) []*entities.Grupo {
	result := make([]*entities.Grupo, 0, len(models))
	for _, model := range models {
		result = append(result, r.toEntity(model))
	}
	return result
}
