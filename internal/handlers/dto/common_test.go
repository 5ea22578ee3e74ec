package dto

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/produtivi/financeiro-backend/internal/domain/errors"
)

func TestFailDomain(t *testing.T) {
	gin.SetMode(gin.TestMode)

	casos := []struct {
		nome   string
		err    error
		status int
	}{
		{"not_found vira 404", errors.NotFound("categoria"), http.StatusNotFound},
		{"conflict vira 409", errors.Conflict("email já cadastrado"), http.StatusConflict},
		{"validation vira 400", errors.Validation("valor inválido"), http.StatusBadRequest},
		{"unauthorized vira 401", errors.Unauthorized("credenciais inválidas"), http.StatusUnauthorized},
		{"forbidden vira 403", errors.Forbidden("papel sem permissão"), http.StatusForbidden},
		{"internal vira 500", errors.Internal("falha no banco", nil), http.StatusInternalServerError},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			FailDomain(c, caso.err)

			if w.Code != caso.status {
				t.Errorf("esperado %d, veio %d", caso.status, w.Code)
			}
			var envelope Envelope
			if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
				t.Fatalf("resposta não é JSON: %v", err)
			}
			if envelope.Success {
				t.Error("envelope de erro não pode ter success=true")
			}
		})
	}
}

func TestBindJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)

	type corpo struct {
		Nome  string `json:"nome" binding:"required"`
		Email string `json:"email" binding:"required,email"`
	}

	t.Run("corpo válido passa", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nome":"Maria","email":"maria@exemplo.com"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		var destino corpo
		if !BindJSON(c, &destino) {
			t.Fatalf("binding deveria passar: %s", w.Body.String())
		}
		if destino.Nome != "Maria" {
			t.Errorf("campo não populado: %+v", destino)
		}
	})

	t.Run("violação de validação responde 400 com os campos", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"não-é-email"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		var destino corpo
		if BindJSON(c, &destino) {
			t.Fatal("binding deveria falhar")
		}
		if w.Code != http.StatusBadRequest {
			t.Fatalf("esperado 400, veio %d", w.Code)
		}

		var envelope Envelope
		if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("resposta não é JSON: %v", err)
		}
		if len(envelope.Errors) != 2 {
			t.Errorf("esperados 2 erros de campo (nome e email), veio %+v", envelope.Errors)
		}
	})
}
