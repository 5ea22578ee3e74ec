package services

import (
	"context"
	"testing"
	"time"

	"github.com/produtivi/financeiro-backend/internal/domain/errors"
	"github.com/produtivi/financeiro-backend/internal/infrastructure/persistence/postgres"
)

func novoLatenciaService(t *testing.T) (*LatenciaService, *UsuarioService) {
	t.Helper()
	db := setupDB(t)
	usuarioRepo := postgres.NewUsuarioRepository(db)
	grupoRepo := postgres.NewGrupoRepository(db)
	latenciaRepo := postgres.NewLatenciaRepository(db)
	uow := postgres.NewUnitOfWork(db)
	usuarios := NewUsuarioService(usuarioRepo, grupoRepo, uow, testLogger)
	return NewLatenciaService(latenciaRepo, usuarioRepo, testLogger), usuarios
}

func TestLatenciaService_Registrar(t *testing.T) {
	ctx := context.Background()
	service, usuarios := novoLatenciaService(t)

	usuario, err := usuarios.Create(ctx, CreateUsuarioInput{
		AgentID:  7,
		Nome:     "Maria",
		Telefone: "1101",
	})
	if err != nil {
		t.Fatalf("erro ao criar usuário: %v", err)
	}

	lembrete := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	t.Run("segundos são derivados dos momentos", func(t *testing.T) {
		latencia, err := service.Registrar(ctx, nil, RegistrarLatenciaInput{
			UsuarioID:       usuario.ID,
			MomentoLembrete: lembrete,
			MomentoResposta: lembrete.Add(125*time.Second + 900*time.Millisecond),
			TipoLembrete:    "meta_semanal",
			Respondeu:       true,
		})
		if err != nil {
			t.Fatalf("erro ao registrar: %v", err)
		}
		if latencia.LatenciaSegundos != 125 {
			t.Errorf("esperado 125 segundos (truncado), veio %d", latencia.LatenciaSegundos)
		}
	})

	t.Run("agent_id é copiado do usuário dono", func(t *testing.T) {
		latencia, err := service.Registrar(ctx, nil, RegistrarLatenciaInput{
			UsuarioID:       usuario.ID,
			MomentoLembrete: lembrete,
			MomentoResposta: lembrete.Add(time.Minute),
			TipoLembrete:    "registro_diario",
			Respondeu:       true,
		})
		if err != nil {
			t.Fatalf("erro ao registrar: %v", err)
		}
		if latencia.AgentID != usuario.AgentID {
			t.Errorf("agent_id esperado %d, veio %d", usuario.AgentID, latencia.AgentID)
		}
	})

	t.Run("resposta anterior ao lembrete é rejeitada", func(t *testing.T) {
		_, err := service.Registrar(ctx, nil, RegistrarLatenciaInput{
			UsuarioID:       usuario.ID,
			MomentoLembrete: lembrete,
			MomentoResposta: lembrete.Add(-time.Second),
			TipoLembrete:    "meta_semanal",
			Respondeu:       true,
		})
		if errors.KindOf(err) != errors.KindValidation {
			t.Errorf("esperado erro de validação, veio %v", err)
		}
	})

	t.Run("usuário fora do escopo recebe not_found", func(t *testing.T) {
		_, err := service.Registrar(ctx, []int64{99}, RegistrarLatenciaInput{
			UsuarioID:       usuario.ID,
			MomentoLembrete: lembrete,
			MomentoResposta: lembrete.Add(time.Second),
			TipoLembrete:    "meta_semanal",
			Respondeu:       true,
		})
		if errors.KindOf(err) != errors.KindNotFound {
			t.Errorf("esperado not_found, veio %v", err)
		}
	})
}
