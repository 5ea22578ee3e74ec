package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/domain/repositories"
)

// UsuarioRepository implementa repositories.UsuarioRepository
type UsuarioRepository struct {
	db *gorm.DB
}

// NewUsuarioRepository cria um novo UsuarioRepository
func NewUsuarioRepository(db *gorm.DB) repositories.UsuarioRepository {
	return &UsuarioRepository{db: db}
}

func (r *UsuarioRepository) Create(ctx context.Context, usuario *entities.Usuario) error {
	model := r.toModel(usuario)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	usuario.ID = model.ID
	return nil
}

func (r *UsuarioRepository) FindByID(ctx context.Context, id uint) (*entities.Usuario, error) {
	var model UsuarioModel

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

func (r *UsuarioRepository) FindByTelefoneEAgente(ctx context.Context, telefone string, agentID int64) (*entities.Usuario, error) {
	var model UsuarioModel

	db := r.getDB(ctx)
	// Soft delete: ignorar registros deletados
	if err := db.Where("telefone = ? AND agent_id = ? AND deleted_at IS NULL", telefone, agentID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *UsuarioRepository) Update(ctx context.Context, usuario *entities.Usuario) error {
	model := r.toModel(usuario)

	db := r.getDB(ctx)
	return db.Save(model).Error
}

func (r *UsuarioRepository) Delete(ctx context.Context, id uint) error {
	db := r.getDB(ctx)
	// Soft delete: atualizar deleted_at e status ao invés de deletar
	now := time.Now().Unix()
	return db.Model(&UsuarioModel{}).Where("id = ? AND deleted_at IS NULL", id).Updates(map[string]interface{}{
		"deleted_at": now,
		"status":     string(entities.StatusUsuarioDeletado),
	}).Error
}

func (r *UsuarioRepository) List(ctx context.Context, filters repositories.UsuarioFilters) ([]*entities.Usuario, error) {
	// Escopo vazio (não-master sem agentes vinculados): nenhum resultado
	if filters.AgentIDs != nil && len(filters.AgentIDs) == 0 {
		return []*entities.Usuario{}, nil
	}

	var models []*UsuarioModel

	db := r.getDB(ctx)
	query := db.Model(&UsuarioModel{})

	// Soft delete: ignorar registros deletados
	query = query.Where("deleted_at IS NULL")

	if filters.AgentIDs != nil {
		query = query.Where("agent_id IN ?", filters.AgentIDs)
	}
	if filters.GrupoID != nil {
		query = query.Where("grupo_id = ?", *filters.GrupoID)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", string(*filters.Status))
	}

	query = query.Order("created_at DESC")

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *UsuarioRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *UsuarioRepository) toModel(usuario *entities.Usuario) *UsuarioModel {
	var deletedAt *int64
	if usuario.DeletadoEm != nil {
		ts := usuario.DeletadoEm.Unix()
		deletedAt = &ts
	}

	return &UsuarioModel{
		ID:        usuario.ID,
		ChatID:    usuario.ChatID,
		AgentID:   usuario.AgentID,
		Nome:      usuario.Nome,
		Telefone:  usuario.Telefone,
		GrupoID:   usuario.GrupoID,
		Status:    string(usuario.Status),
		CreatedAt: usuario.CriadoEm.Unix(),
		UpdatedAt: usuario.AtualizadoEm.Unix(),
		DeletedAt: deletedAt,
	}
}

func (r *UsuarioRepository) toEntity(model *UsuarioModel) *entities.Usuario {
	var deletadoEm *time.Time
	if model.DeletedAt != nil {
		ts := time.Unix(*model.DeletedAt, 0)
		deletadoEm = &ts
	}

	return &entities.Usuario{
		ID:           model.ID,
		ChatID:       model.ChatID,
		AgentID:      model.AgentID,
		Nome:         model.Nome,
		Telefone:     model.Telefone,
		GrupoID:      model.GrupoID,
		Status:       entities.StatusUsuario(model.Status),
		CriadoEm:     time.Unix(model.CreatedAt, 0),
		AtualizadoEm: time.Unix(model.UpdatedAt, 0),
		DeletadoEm:   deletadoEm,
	}
}

func (r *UsuarioRepository) toEntities(models []*UsuarioModel) []*entities.Usuario {
	result := make([]*entities.Usuario, 0, len(models))
	for _, model := range models {
		result = append(result, r.toEntity(model))
	}
	return result
}
