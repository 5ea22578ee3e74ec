// Package docs descreve o subconjunto Categoria/Usuario/Transacao da
// API para a interface Swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/categorias": {
            "get": {
                "tags": ["categorias"],
                "summary": "Listar categorias",
                "parameters": [
                    {"name": "tipo", "in": "query", "type": "string", "enum": ["receita", "despesa"]},
                    {"name": "ativo", "in": "query", "type": "boolean"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}
            },
            "post": {
                "tags": ["categorias"],
                "summary": "Criar categoria",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCategoria"}}
                ],
                "responses": {
                    "201": {"description": "Criada", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Dados inválidos", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/api/v1/categorias/{id}": {
            "get": {
                "tags": ["categorias"],
                "summary": "Buscar categoria",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Não encontrada", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "put": {
                "tags": ["categorias"],
                "summary": "Atualizar categoria",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCategoria"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}
            },
            "delete": {
                "tags": ["categorias"],
                "summary": "Deletar categoria (soft delete)",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}
            }
        },
        "/api/v1/usuarios": {
            "get": {
                "tags": ["usuarios"],
                "summary": "Listar usuários do escopo",
                "parameters": [
                    {"name": "grupo_id", "in": "query", "type": "integer"},
                    {"name": "status", "in": "query", "type": "string", "enum": ["active", "inactive", "deleted"]}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}
            },
            "post": {
                "tags": ["usuarios"],
                "summary": "Criar usuário",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateUsuario"}}
                ],
                "responses": {"201": {"description": "Criado", "schema": {"$ref": "#/definitions/Envelope"}}}
            }
        },
        "/api/v1/usuarios/{id}": {
            "get": {
                "tags": ["usuarios"],
                "summary": "Buscar usuário do escopo",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Não encontrado", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/api/v1/usuarios/importar": {
            "post": {
                "tags": ["usuarios"],
                "summary": "Importar usuários em lote (XLSX ou CSV)",
                "consumes": ["multipart/form-data"],
                "parameters": [{"name": "arquivo", "in": "formData", "required": true, "type": "file"}],
                "responses": {"200": {"description": "Resultado da importação", "schema": {"$ref": "#/definitions/Envelope"}}}
            }
        },
        "/api/v1/transacoes": {
            "get": {
                "tags": ["transacoes"],
                "summary": "Listar transações do escopo",
                "parameters": [
                    {"name": "usuario_id", "in": "query", "type": "integer"},
                    {"name": "tipo", "in": "query", "type": "string", "enum": ["receita", "despesa"]},
                    {"name": "tipo_caixa", "in": "query", "type": "string", "enum": ["pessoal", "negocio"]},
                    {"name": "data_inicio", "in": "query", "type": "string", "format": "date"},
                    {"name": "data_fim", "in": "query", "type": "string", "format": "date"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}
            },
            "post": {
                "tags": ["transacoes"],
                "summary": "Criar transação",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateTransacao"}}
                ],
                "responses": {"201": {"description": "Criada", "schema": {"$ref": "#/definitions/Envelope"}}}
            }
        },
        "/api/v1/transacoes/exportar": {
            "get": {
                "tags": ["transacoes"],
                "summary": "Exportar transações do escopo em CSV",
                "produces": ["text/csv"],
                "responses": {"200": {"description": "Arquivo CSV"}}
            }
        }
    },
    "definitions": {
        "Envelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"type": "object"},
                "message": {"type": "string"},
                "errors": {"type": "array", "items": {"type": "object"}}
            }
        },
        "CreateCategoria": {
            "type": "object",
            "required": ["nome", "tipo"],
            "properties": {
                "nome": {"type": "string"},
                "tipo": {"type": "string", "enum": ["receita", "despesa"]},
                "ativo": {"type": "boolean"}
            }
        },
        "CreateUsuario": {
            "type": "object",
            "required": ["nome", "telefone", "agent_id"],
            "properties": {
                "chat_id": {"type": "string"},
                "agent_id": {"type": "integer"},
                "nome": {"type": "string"},
                "telefone": {"type": "string"},
                "grupo_id": {"type": "integer"},
                "status": {"type": "string", "enum": ["active", "inactive", "deleted"]}
            }
        },
        "CreateTransacao": {
            "type": "object",
            "required": ["usuario_id", "tipo", "tipo_caixa", "valor", "data_transacao"],
            "properties": {
                "usuario_id": {"type": "integer"},
                "tipo": {"type": "string", "enum": ["receita", "despesa"]},
                "tipo_caixa": {"type": "string", "enum": ["pessoal", "negocio"]},
                "valor": {"type": "number"},
                "categoria_id": {"type": "integer"},
                "descricao": {"type": "string"},
                "data_transacao": {"type": "string", "format": "date-time"},
                "tipo_entrada": {"type": "string", "enum": ["texto", "audio", "foto", "manual"]}
            }
        }
    }
}`

// SwaggerInfo mantém os metadados exibidos na interface
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Financeiro Backend",
	Description:      "API administrativa da plataforma de acompanhamento financeiro",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
