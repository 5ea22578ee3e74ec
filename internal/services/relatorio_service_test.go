package services

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/domain/errors"
	"github.com/produtivi/financeiro-backend/internal/infrastructure/persistence/postgres"
)

type renderStub struct {
	falhar bool
	config json.RawMessage
}

func (r *renderStub) Render(ctx context.Context, chartConfig json.RawMessage, formato string, width, height int) ([]byte, error) {
	if r.falhar {
		return nil, stderrors.New("serviço de render fora do ar")
	}
	r.config = chartConfig
	return []byte("imagem"), nil
}

type uploaderStub struct {
	chave       string
	contentType string
}

func (u *uploaderStub) Upload(key string, body io.ReadSeeker, contentType string) (string, error) {
	u.chave = key
	u.contentType = contentType
	return "https://cdn.exemplo.com/" + key, nil
}

func novoRelatorioService(t *testing.T, render *renderStub, uploader *uploaderStub) (*RelatorioService, *UsuarioService) {
	t.Helper()
	db := setupDB(t)
	usuarioRepo := postgres.NewUsuarioRepository(db)
	grupoRepo := postgres.NewGrupoRepository(db)
	uow := postgres.NewUnitOfWork(db)
	service := NewRelatorioService(
		postgres.NewRelatorioRepository(db),
		postgres.NewTransacaoRepository(db),
		postgres.NewCategoriaRepository(db),
		usuarioRepo,
		render, uploader, testLogger,
	)
	return service, NewUsuarioService(usuarioRepo, grupoRepo, uow, testLogger)
}

func TestRelatorioService_Gerar(t *testing.T) {
	ctx := context.Background()
	inicio := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("publica a imagem com chave e content-type corretos", func(t *testing.T) {
		render := &renderStub{}
		uploader := &uploaderStub{}
		service, usuarios := novoRelatorioService(t, render, uploader)

		usuario, err := usuarios.Create(ctx, CreateUsuarioInput{
			AgentID:  1,
			Nome:     "Maria",
			Telefone: "1101",
		})
		if err != nil {
			t.Fatalf("erro ao criar usuário: %v", err)
		}

		relatorio, err := service.Gerar(ctx, nil, GerarRelatorioInput{
			UsuarioID:     usuario.ID,
			TipoRelatorio: entities.TipoRelatorioPizzaDespesas,
			DataInicio:    inicio,
			DataFim:       inicio.AddDate(0, 1, 0),
		})
		if err != nil {
			t.Fatalf("erro ao gerar relatório: %v", err)
		}

		if !strings.HasPrefix(uploader.chave, "relatorios/") || !strings.HasSuffix(uploader.chave, ".png") {
			t.Errorf("chave fora do padrão relatorios/<uuid>.png: %s", uploader.chave)
		}
		if uploader.contentType != "image/png" {
			t.Errorf("content-type errado: %s", uploader.contentType)
		}
		if relatorio.URLImagem != "https://cdn.exemplo.com/"+uploader.chave {
			t.Errorf("url não veio do uploader: %s", relatorio.URLImagem)
		}

		historico, err := service.Historico(ctx, usuario.ID, nil)
		if err != nil || len(historico) != 1 {
			t.Fatalf("histórico deveria ter 1 relatório: %v", err)
		}
	})

	t.Run("falha de render propaga como erro interno", func(t *testing.T) {
		service, usuarios := novoRelatorioService(t, &renderStub{falhar: true}, &uploaderStub{})

		usuario, err := usuarios.Create(ctx, CreateUsuarioInput{
			AgentID:  1,
			Nome:     "João",
			Telefone: "1102",
		})
		if err != nil {
			t.Fatalf("erro ao criar usuário: %v", err)
		}

		_, err = service.Gerar(ctx, nil, GerarRelatorioInput{
			UsuarioID:     usuario.ID,
			TipoRelatorio: entities.TipoRelatorioComparativo,
			DataInicio:    inicio,
			DataFim:       inicio.AddDate(0, 1, 0),
		})
		if errors.KindOf(err) != errors.KindInternal {
			t.Errorf("esperado erro interno, veio %v", err)
		}
	})

	t.Run("tipo de relatório desconhecido é rejeitado antes do render", func(t *testing.T) {
		render := &renderStub{}
		service, usuarios := novoRelatorioService(t, render, &uploaderStub{})

		usuario, err := usuarios.Create(ctx, CreateUsuarioInput{
			AgentID:  1,
			Nome:     "Ana",
			Telefone: "1103",
		})
		if err != nil {
			t.Fatalf("erro ao criar usuário: %v", err)
		}

		_, err = service.Gerar(ctx, nil, GerarRelatorioInput{
			UsuarioID:     usuario.ID,
			TipoRelatorio: "grafico_3d",
			DataInicio:    inicio,
			DataFim:       inicio.AddDate(0, 1, 0),
		})
		if errors.KindOf(err) != errors.KindValidation {
			t.Errorf("esperado erro de validação, veio %v", err)
		}
		if render.config != nil {
			t.Error("render não deveria ter sido chamado")
		}
	})
}
