package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/domain/repositories"
)

// RelatorioRepository implementa repositories.RelatorioRepository
type RelatorioRepository struct {
	db *gorm.DB
}

// NewRelatorioRepository cria um novo RelatorioRepository
func NewRelatorioRepository(db *gorm.DB) repositories.RelatorioRepository {
	return &RelatorioRepository{db: db}
}

func (r *RelatorioRepository) Create(ctx context.Context, relatorio *entities.Relatorio) error {
	model := r.toModel(relatorio)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	relatorio.ID = model.ID
	return nil
}

func (r *RelatorioRepository) ListByUsuario(ctx context.Context, usuarioID uint) ([]*entities.Relatorio, error) {
	var models []*RelatorioModel

	db := r.getDB(ctx)
	if err := db.Where("usuario_id = ?", usuarioID).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	result := make([]*entities.Relatorio, 0, len(models))
	for _, model := range models {
		result = append(result, r.toEntity(model))
	}
	return result, nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *RelatorioRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *RelatorioRepository) toModel(relatorio *entities.Relatorio) *RelatorioModel {
	return &RelatorioModel{
		ID:                relatorio.ID,
		UsuarioID:         relatorio.UsuarioID,
		TipoRelatorio:     string(relatorio.TipoRelatorio),
		DataInicio:        relatorio.DataInicio,
		DataFim:           relatorio.DataFim,
		FiltroTipo:        relatorio.FiltroTipo,
		FiltroCategoriaID: relatorio.FiltroCategoriaID,
		URLImagem:         relatorio.URLImagem,
		Formato:           string(relatorio.Formato),
		CreatedAt:         relatorio.CriadoEm.Unix(),
	}
}

func (r *RelatorioRepository) toEntity(model *RelatorioModel) *entities.Relatorio {
	return &entities.Relatorio{
		ID:                model.ID,
		UsuarioID:         model.UsuarioID,
		TipoRelatorio:     entities.TipoRelatorio(model.TipoRelatorio),
		DataInicio:        model.DataInicio,
		DataFim:           model.DataFim,
		FiltroTipo:        model.FiltroTipo,
		FiltroCategoriaID: model.FiltroCategoriaID,
		URLImagem:         model.URLImagem,
		Formato:           entities.FormatoImagem(model.Formato),
		CriadoEm:          time.Unix(model.CreatedAt, 0),
	}
}
