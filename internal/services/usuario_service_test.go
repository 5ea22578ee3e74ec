package services

import (
	"context"
	"testing"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/domain/errors"
	"github.com/produtivi/financeiro-backend/internal/domain/repositories"
	"github.com/produtivi/financeiro-backend/internal/infrastructure/persistence/postgres"
)

func novoUsuarioService(t *testing.T) (*UsuarioService, repositories.UsuarioRepository) {
	t.Helper()
	db := setupDB(t)
	usuarioRepo := postgres.NewUsuarioRepository(db)
	grupoRepo := postgres.NewGrupoRepository(db)
	uow := postgres.NewUnitOfWork(db)
	return NewUsuarioService(usuarioRepo, grupoRepo, uow, testLogger), usuarioRepo
}

func TestUsuarioService_CRUD(t *testing.T) {
	ctx := context.Background()
	service, _ := novoUsuarioService(t)

	t.Run("cria usuário com status ativo por padrão", func(t *testing.T) {
		usuario, err := service.Create(ctx, CreateUsuarioInput{
			ChatID:   "chat-1",
			AgentID:  10,
			Nome:     "Maria",
			Telefone: "11999990001",
		})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if usuario.Status != entities.StatusUsuarioAtivo {
			t.Errorf("status esperado active, veio %s", usuario.Status)
		}
	})

	t.Run("usuário deletado some das listagens", func(t *testing.T) {
		usuario, err := service.Create(ctx, CreateUsuarioInput{
			AgentID:  10,
			Nome:     "João",
			Telefone: "11999990002",
		})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		if err := service.Delete(ctx, usuario.ID, nil); err != nil {
			t.Fatalf("erro ao deletar: %v", err)
		}

		if _, err := service.Get(ctx, usuario.ID, nil); errors.KindOf(err) != errors.KindNotFound {
			t.Errorf("esperado not_found após soft delete, veio %v", err)
		}

		usuarios, err := service.List(ctx, repositories.UsuarioFilters{})
		if err != nil {
			t.Fatalf("erro ao listar: %v", err)
		}
		for _, u := range usuarios {
			if u.ID == usuario.ID {
				t.Error("usuário deletado apareceu na listagem")
			}
		}
	})

	t.Run("escopo de agentes restringe leitura", func(t *testing.T) {
		usuario, err := service.Create(ctx, CreateUsuarioInput{
			AgentID:  20,
			Nome:     "Ana",
			Telefone: "11999990003",
		})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		if _, err := service.Get(ctx, usuario.ID, []int64{20}); err != nil {
			t.Errorf("agente no escopo deveria enxergar: %v", err)
		}
		if _, err := service.Get(ctx, usuario.ID, []int64{99}); errors.KindOf(err) != errors.KindNotFound {
			t.Errorf("agente fora do escopo deveria receber not_found, veio %v", err)
		}
		if _, err := service.Get(ctx, usuario.ID, []int64{}); errors.KindOf(err) != errors.KindNotFound {
			t.Errorf("escopo vazio deveria receber not_found, veio %v", err)
		}
	})
}

func TestUsuarioService_ImportarEmLote(t *testing.T) {
	ctx := context.Background()

	t.Run("linhas inválidas não abortam o lote", func(t *testing.T) {
		service, _ := novoUsuarioService(t)

		linhas := []LinhaImportacao{
			{Linha: 2, Nome: "A", Telefone: "1101", AgentID: 1},
			{Linha: 3, Nome: "B", Telefone: "1102", AgentID: 1},
			{Linha: 4, Nome: "", Telefone: "1103", AgentID: 1}, // sem nome
			{Linha: 5, Nome: "C", Telefone: "1104", AgentID: 1},
			{Linha: 6, Nome: "D", Telefone: "", AgentID: 1}, // sem telefone
			{Linha: 7, Nome: "E", Telefone: "1105", AgentID: 1},
			{Linha: 8, Nome: "F", Telefone: "1106", AgentID: 1},
		}

		resultado := service.ImportarEmLote(ctx, linhas)

		if resultado.Criados+resultado.Atualizados != 5 {
			t.Errorf("esperado 5 linhas processadas, veio criados=%d atualizados=%d",
				resultado.Criados, resultado.Atualizados)
		}
		if len(resultado.Erros) != 2 {
			t.Fatalf("esperado 2 erros, veio %d", len(resultado.Erros))
		}
		if resultado.Erros[0].Linha != 4 || resultado.Erros[1].Linha != 6 {
			t.Errorf("linhas dos erros erradas: %+v", resultado.Erros)
		}
	})

	t.Run("telefone e agente existentes atualizam em vez de duplicar", func(t *testing.T) {
		service, usuarioRepo := novoUsuarioService(t)

		if _, err := service.Create(ctx, CreateUsuarioInput{
			AgentID:  1,
			Nome:     "Original",
			Telefone: "1199",
		}); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		resultado := service.ImportarEmLote(ctx, []LinhaImportacao{
			{Linha: 2, Nome: "Atualizado", Telefone: "1199", AgentID: 1},
			{Linha: 3, Nome: "Novo", Telefone: "1188", AgentID: 1},
		})

		if resultado.Criados != 1 || resultado.Atualizados != 1 {
			t.Errorf("esperado 1 criado e 1 atualizado, veio %d/%d",
				resultado.Criados, resultado.Atualizados)
		}

		existente, err := usuarioRepo.FindByTelefoneEAgente(ctx, "1199", 1)
		if err != nil || existente == nil {
			t.Fatalf("usuário atualizado não encontrado: %v", err)
		}
		if existente.Nome != "Atualizado" {
			t.Errorf("nome não foi atualizado: %s", existente.Nome)
		}
	})
}
