package dto

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/produtivi/financeiro-backend/internal/domain/errors"
)

// Envelope é o formato uniforme de toda resposta JSON da API
type Envelope struct {
	Success bool              `json:"success"`
	Data    interface{}       `json:"data,omitempty"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// OK escreve uma resposta de sucesso
func OK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Envelope{Success: true, Data: data, Message: message})
}

// Fail escreve uma resposta de erro simples
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Success: false, Message: message})
}

// FailValidation escreve um 400 com a lista de campos inválidos
func FailValidation(c *gin.Context, message string, errs []ValidationError) {
	c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: message, Errors: errs})
}

// FailDomain mapeia o kind do erro de domínio para o status HTTP
func FailDomain(c *gin.Context, err error) {
	Fail(c, statusDoKind(errors.KindOf(err)), err.Error())
}

func statusDoKind(kind errors.Kind) int {
	switch kind {
	case errors.KindNotFound:
		return http.StatusNotFound
	case errors.KindConflict:
		return http.StatusConflict
	case errors.KindValidation:
		return http.StatusBadRequest
	case errors.KindUnauthorized:
		return http.StatusUnauthorized
	case errors.KindForbidden:
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

// BindJSON faz o binding do corpo e, em caso de falha de validação,
// já escreve a resposta 400 com a lista de campos. Devolve false quando
// a requisição foi rejeitada.
func BindJSON(c *gin.Context, out interface{}) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		FailValidation(c, "corpo da requisição inválido", extrairErros(err))
		return false
	}
	return true
}

func extrairErros(err error) []ValidationError {
	var validationErrs validator.ValidationErrors
	if !stderrors.As(err, &validationErrs) {
		return nil
	}

	erros := make([]ValidationError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		erros = append(erros, ValidationError{
			Field:   fe.Field(),
			Message: mensagemDaTag(fe),
		})
	}
	return erros
}

func mensagemDaTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "email":
		return "email inválido"
	case "min":
		return "valor abaixo do mínimo " + fe.Param()
	case "max":
		return "valor acima do máximo " + fe.Param()
	case "oneof":
		return "deve ser um de: " + fe.Param()
	case "gt":
		return "deve ser maior que " + fe.Param()
	case "datetime":
		return "data em formato inválido"
	}
	return "valor inválido para a regra " + fe.Tag()
}
