package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/domain/repositories"
)

// LatenciaRepository implementa repositories.LatenciaRepository
type LatenciaRepository struct {
	db *gorm.DB
}

// NewLatenciaRepository cria um novo LatenciaRepository
func NewLatenciaRepository(db *gorm.DB) repositories.LatenciaRepository {
	return &LatenciaRepository{db: db}
}

func (r *LatenciaRepository) Create(ctx context.Context, latencia *entities.Latencia) error {
	model := r.toModel(latencia)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	latencia.ID = model.ID
	return nil
}

func (r *LatenciaRepository) FindByID(ctx context.Context, id uint) (*entities.Latencia, error) {
	var model LatenciaModel

	db := r.getDB(ctx)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *LatenciaRepository) List(ctx context.Context, filters repositories.LatenciaFilters) ([]*entities.Latencia, error) {
	// Escopo vazio: nenhum resultado
	if filters.AgentIDs != nil && len(filters.AgentIDs) == 0 {
		return []*entities.Latencia{}, nil
	}

	var models []*LatenciaModel

	db := r.getDB(ctx)
	query := db.Model(&LatenciaModel{})

	if filters.AgentIDs != nil {
		query = query.Where("latencias.agent_id IN ?", filters.AgentIDs)
	}
	if filters.UsuarioID != nil {
		query = query.Where("latencias.usuario_id = ?", *filters.UsuarioID)
	}
	if filters.AgentID != nil {
		query = query.Where("latencias.agent_id = ?", *filters.AgentID)
	}
	if filters.DataInicio != nil {
		query = query.Where("latencias.momento_lembrete >= ?", *filters.DataInicio)
	}
	if filters.DataFim != nil {
		query = query.Where("latencias.momento_lembrete <= ?", *filters.DataFim)
	}

	query = query.Order("latencias.created_at DESC")

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *LatenciaRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *LatenciaRepository) toModel(latencia *entities.Latencia) *LatenciaModel {
	return &LatenciaModel{
		ID:               latencia.ID,
		UsuarioID:        latencia.UsuarioID,
		AgentID:          latencia.AgentID,
		MomentoLembrete:  latencia.MomentoLembrete,
		MomentoResposta:  latencia.MomentoResposta,
		LatenciaSegundos: latencia.LatenciaSegundos,
		TipoLembrete:     latencia.TipoLembrete,
		Respondeu:        latencia.Respondeu,
		CreatedAt:        latencia.CriadoEm.Unix(),
	}
}

func (r *LatenciaRepository) toEntity(model *LatenciaModel) *entities.Latencia {
	return &entities.Latencia{
		ID:               model.ID,
		UsuarioID:        model.UsuarioID,
		AgentID:          model.AgentID,
		MomentoLembrete:  model.MomentoLembrete,
		MomentoResposta:  model.MomentoResposta,
		LatenciaSegundos: model.LatenciaSegundos,
		TipoLembrete:     model.TipoLembrete,
		Respondeu:        model.Respondeu,
		CriadoEm:         time.Unix(model.CreatedAt, 0),
	}
}

func (r *LatenciaRepository) toEntities(models []*LatenciaModel) []*entities.Latencia {
	result := make([]*entities.Latencia, 0, len(models))
	for _, model := range models {
		result = append(result, r.toEntity(model))
	}
	return result
}
