package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/domain/repositories"
)

// MetaRepository implementa repositories.MetaRepository
type MetaRepository struct {
	db *gorm.DB
}

// NewMetaRepository cria um novo MetaRepository
func NewMetaRepository(db *gorm.DB) repositories.MetaRepository {
	return &MetaRepository{db: db}
}

func (r *MetaRepository) Create(ctx context.Context, meta *entities.Meta) error {
	model := r.toModel(meta)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	meta.ID = model.ID
	return nil
}

func (r *MetaRepository) FindByID(ctx context.Context, id uint) (*entities.Meta, error) {
	var model MetaModel

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

func (r *MetaRepository) Update(ctx context.Context, meta *entities.Meta) error {
	model := r.toModel(meta)

	db := r.getDB(ctx)
	// Save não persiste ponteiros nil; Updates com map garante que
	// cumprida=false e respondido_em sejam gravados
	return db.Model(&MetaModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
		"descricao":     model.Descricao,
		"tipo_meta":     model.TipoMeta,
		"data_inicio":   model.DataInicio,
		"data_fim":      model.DataFim,
		"cumprida":      model.Cumprida,
		"respondido_em": model.RespondidoEm,
	}).Error
}

func (r *MetaRepository) Delete(ctx context.Context, id uint) error {
	db := r.getDB(ctx)
	// Soft delete: atualizar deleted_at ao invés de deletar
	now := time.Now().Unix()
	return db.Model(&MetaModel{}).Where("id = ? AND deleted_at IS NULL", id).Update("deleted_at", now).Error
}

func (r *MetaRepository) List(ctx context.Context, filters repositories.MetaFilters) ([]*entities.Meta, error) {
	// Escopo vazio: nenhum resultado
	if filters.AgentIDs != nil && len(filters.AgentIDs) == 0 {
		return []*entities.Meta{}, nil
	}

	var models []*MetaModel

	db := r.getDB(ctx)
	query := db.Model(&MetaModel{})

	// Soft delete: ignorar registros deletados
	query = query.Where("metas.deleted_at IS NULL")

	if filters.AgentIDs != nil {
		query = query.
			Joins("JOIN usuarios ON usuarios.id = metas.usuario_id").
			Where("usuarios.agent_id IN ?", filters.AgentIDs)
	}

	if filters.UsuarioID != nil {
		query = query.Where("metas.usuario_id = ?", *filters.UsuarioID)
	}
	if filters.Pendentes {
		query = query.Where("metas.cumprida IS NULL")
	}
	if filters.DataInicio != nil {
		query = query.Where("metas.data_inicio >= ?", *filters.DataInicio)
	}
	if filters.DataFim != nil {
		query = query.Where("metas.data_fim <= ?", *filters.DataFim)
	}

	query = query.Order("metas.data_inicio DESC")

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *MetaRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *MetaRepository) toModel(meta *entities.Meta) *MetaModel {
	var deletedAt *int64
	if meta.DeletadoEm != nil {
		ts := meta.DeletadoEm.Unix()
		deletedAt = &ts
	}

	return &MetaModel{
		ID:           meta.ID,
		UsuarioID:    meta.UsuarioID,
		Descricao:    meta.Descricao,
		TipoMeta:     string(meta.TipoMeta),
		DataInicio:   meta.DataInicio,
		DataFim:      meta.DataFim,
		Cumprida:     meta.Cumprida,
		RespondidoEm: meta.RespondidoEm,
		CreatedAt:    meta.CriadoEm.Unix(),
		UpdatedAt:    meta.AtualizadoEm.Unix(),
		DeletedAt:    deletedAt,
	}
}

func (r *MetaRepository) toEntity(model *MetaModel) *entities.Meta {
	var deletadoEm *time.Time
	if model.DeletedAt != nil {
		ts := time.Unix(*model.DeletedAt, 0)
		deletadoEm = &ts
	}

	return &entities.Meta{
		ID:           model.ID,
		UsuarioID:    model.UsuarioID,
		Descricao:    model.Descricao,
		TipoMeta:     entities.TipoMeta(model.TipoMeta),
		DataInicio:   model.DataInicio,
		DataFim:      model.DataFim,
		Cumprida:     model.Cumprida,
		RespondidoEm: model.RespondidoEm,
		CriadoEm:     time.Unix(model.CreatedAt, 0),
		AtualizadoEm: time.Unix(model.UpdatedAt, 0),
		DeletadoEm:   deletadoEm,
	}
}

func (r *MetaRepository) toEntities(models []*MetaModel) []*entities.Meta {
	result := make([]*entities.Meta, 0, len(models))
	for _, model := range models {
		result = append(result, r.toEntity(model))
	}
	return result
}
