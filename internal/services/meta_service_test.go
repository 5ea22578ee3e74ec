package services

import (
	"context"
	"testing"
	"time"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/domain/errors"
	"github.com/produtivi/financeiro-backend/internal/infrastructure/persistence/postgres"
)

func novoMetaService(t *testing.T) (*MetaService, *UsuarioService) {
	t.Helper()
	db := setupDB(t)
	usuarioRepo := postgres.NewUsuarioRepository(db)
	grupoRepo := postgres.NewGrupoRepository(db)
	metaRepo := postgres.NewMetaRepository(db)
	uow := postgres.NewUnitOfWork(db)
	usuarios := NewUsuarioService(usuarioRepo, grupoRepo, uow, testLogger)
	return NewMetaService(metaRepo, usuarioRepo, testLogger), usuarios
}

func criarMeta(t *testing.T, service *MetaService, usuarioID uint) *entities.Meta {
	t.Helper()
	inicio := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	meta, err := service.Create(context.Background(), nil, CreateMetaInput{
		UsuarioID:  usuarioID,
		Descricao:  "vender 10 marmitas",
		TipoMeta:   entities.TipoMetaVendas,
		DataInicio: inicio,
		DataFim:    inicio.AddDate(0, 0, 7),
	})
	if err != nil {
		t.Fatalf("erro ao criar meta: %v", err)
	}
	return meta
}

func TestMetaService_MarcarCumprida(t *testing.T) {
	ctx := context.Background()
	service, usuarios := novoMetaService(t)

	usuario, err := usuarios.Create(ctx, CreateUsuarioInput{
		AgentID:  1,
		Nome:     "Maria",
		Telefone: "1101",
	})
	if err != nil {
		t.Fatalf("erro ao criar usuário: %v", err)
	}

	t.Run("meta nasce pendente", func(t *testing.T) {
		meta := criarMeta(t, service, usuario.ID)
		if !meta.Pendente() {
			t.Error("meta recém-criada deveria estar pendente")
		}
	})

	t.Run("resposta repetida sobrescreve a anterior", func(t *testing.T) {
		meta := criarMeta(t, service, usuario.ID)

		primeira, err := service.MarcarCumprida(ctx, meta.ID, nil, true)
		if err != nil {
			t.Fatalf("erro ao marcar cumprida: %v", err)
		}
		if primeira.Cumprida == nil || !*primeira.Cumprida {
			t.Fatal("primeira resposta deveria ser cumprida=true")
		}
		if primeira.RespondidoEm == nil {
			t.Fatal("respondido_em deveria ter sido preenchido")
		}

		segunda, err := service.MarcarCumprida(ctx, meta.ID, nil, false)
		if err != nil {
			t.Fatalf("erro ao remarcar: %v", err)
		}
		if segunda.Cumprida == nil || *segunda.Cumprida {
			t.Error("segunda resposta deveria prevalecer com cumprida=false")
		}
		if segunda.RespondidoEm == nil || segunda.RespondidoEm.Before(*primeira.RespondidoEm) {
			t.Error("respondido_em deveria ter sido atualizado na segunda resposta")
		}
	})

	t.Run("meta fora do escopo recebe not_found", func(t *testing.T) {
		meta := criarMeta(t, service, usuario.ID)
		if _, err := service.MarcarCumprida(ctx, meta.ID, []int64{99}, true); errors.KindOf(err) != errors.KindNotFound {
			t.Errorf("esperado not_found, veio %v", err)
		}
	})
}

func TestMetaService_Validacao(t *testing.T) {
	ctx := context.Background()
	service, usuarios := novoMetaService(t)

	usuario, err := usuarios.Create(ctx, CreateUsuarioInput{
		AgentID:  1,
		Nome:     "João",
		Telefone: "1102",
	})
	if err != nil {
		t.Fatalf("erro ao criar usuário: %v", err)
	}

	t.Run("data_fim anterior a data_inicio é rejeitada", func(t *testing.T) {
		inicio := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
		_, err := service.Create(ctx, nil, CreateMetaInput{
			UsuarioID:  usuario.ID,
			Descricao:  "meta invertida",
			TipoMeta:   entities.TipoMetaEconomia,
			DataInicio: inicio,
			DataFim:    inicio.AddDate(0, 0, -1),
		})
		if errors.KindOf(err) != errors.KindValidation {
			t.Errorf("esperado erro de validação, veio %v", err)
		}
	})

	t.Run("usuário inexistente é rejeitado", func(t *testing.T) {
		_, err := service.Create(ctx, nil, CreateMetaInput{
			UsuarioID:  9999,
			Descricao:  "meta órfã",
			TipoMeta:   entities.TipoMetaVendas,
			DataInicio: time.Now(),
			DataFim:    time.Now().AddDate(0, 0, 7),
		})
		if errors.KindOf(err) != errors.KindNotFound {
			t.Errorf("esperado not_found, veio %v", err)
		}
	})
}
