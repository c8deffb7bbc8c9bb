// Package docs registers the generated swagger specification.
// Code generated by swag; regenerate with: swag init -g cmd/api/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/usuarios/registro": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {"description": "User registration details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.registerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.registerResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/api/usuarios/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/api/usuarios/admin/usuarios": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List all users",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.User"}}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/api/usuarios/admin/usuarios/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Change a user's role",
                "parameters": [
                    {"type": "integer", "description": "User id", "name": "id", "in": "path", "required": true},
                    {"description": "Target role id", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.changeRoleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Delete a user",
                "parameters": [
                    {"type": "integer", "description": "User id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/api/usuarios/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get a user profile",
                "parameters": [
                    {"type": "integer", "description": "User id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Update a user profile",
                "parameters": [
                    {"type": "integer", "description": "User id", "name": "id", "in": "path", "required": true},
                    {"description": "Profile fields", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateProfileRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/api/equipos": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["equipment"],
                "summary": "Register new equipment",
                "parameters": [
                    {"description": "Equipment details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createEquipmentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.createEquipmentResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/api/equipos/cliente/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["equipment"],
                "summary": "List a client's equipment",
                "parameters": [
                    {"type": "integer", "description": "Client id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Equipment"}}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/api/equipos/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["equipment"],
                "summary": "Update equipment description",
                "parameters": [
                    {"type": "integer", "description": "Equipment id", "name": "id", "in": "path", "required": true},
                    {"description": "New description", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateDescriptionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/api/equipos/admin": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["equipment"],
                "summary": "List all equipment",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Equipment"}}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/api/equipos/admin/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["equipment"],
                "summary": "Update equipment status",
                "parameters": [
                    {"type": "integer", "description": "Equipment id", "name": "id", "in": "path", "required": true},
                    {"description": "New status", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["equipment"],
                "summary": "Delete equipment",
                "parameters": [
                    {"type": "integer", "description": "Equipment id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "id_usuario": {"type": "integer"},
                "nombre": {"type": "string"},
                "apellido": {"type": "string"},
                "email": {"type": "string"},
                "telefono": {"type": "string"},
                "id_rol": {"type": "integer"},
                "nombre_rol": {"type": "string"},
                "rut_empresa": {"type": "string"},
                "nombre_empresa": {"type": "string"},
                "direccion_empresa": {"type": "string"}
            }
        },
        "domain.Equipment": {
            "type": "object",
            "properties": {
                "id_equipo": {"type": "integer"},
                "nombre_equipo": {"type": "string"},
                "descripcion": {"type": "string"},
                "estado_equipo": {"type": "string"},
                "id_cliente": {"type": "integer"},
                "numero_serie": {"type": "string"},
                "ubicacion": {"type": "string"},
                "anio_fabricacion": {"type": "integer"},
                "nombre_cliente": {"type": "string"},
                "apellido_cliente": {"type": "string"},
                "email_cliente": {"type": "string"}
            }
        },
        "handler.registerRequest": {
            "type": "object",
            "required": ["nombre", "apellido", "email", "password", "telefono", "rol"],
            "properties": {
                "nombre": {"type": "string"},
                "apellido": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6},
                "telefono": {"type": "string"},
                "rol": {"type": "string"},
                "rut_empresa": {"type": "string"},
                "nombre_empresa": {"type": "string"},
                "direccion_empresa": {"type": "string"}
            }
        },
        "handler.registerResponse": {
            "type": "object",
            "properties": {"id": {"type": "integer"}}
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.loginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "usuario": {"type": "object"}
            }
        },
        "handler.updateProfileRequest": {
            "type": "object",
            "required": ["nombre", "apellido", "telefono"],
            "properties": {
                "nombre": {"type": "string"},
                "apellido": {"type": "string"},
                "telefono": {"type": "string"},
                "rut_empresa": {"type": "string"},
                "nombre_empresa": {"type": "string"},
                "direccion_empresa": {"type": "string"}
            }
        },
        "handler.changeRoleRequest": {
            "type": "object",
            "required": ["id_rol"],
            "properties": {"id_rol": {"type": "integer"}}
        },
        "handler.createEquipmentRequest": {
            "type": "object",
            "required": ["nombre_equipo", "numero_serie", "ubicacion"],
            "properties": {
                "nombre_equipo": {"type": "string"},
                "descripcion": {"type": "string"},
                "numero_serie": {"type": "string"},
                "ubicacion": {"type": "string"},
                "anio_fabricacion": {"type": "integer"}
            }
        },
        "handler.createEquipmentResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "mensaje": {"type": "string"}
            }
        },
        "handler.updateDescriptionRequest": {
            "type": "object",
            "required": ["descripcion"],
            "properties": {"descripcion": {"type": "string"}}
        },
        "handler.updateStatusRequest": {
            "type": "object",
            "required": ["estado_equipo"],
            "properties": {"estado_equipo": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "Equipment Registry API",
	Description:      "Multi-tenant equipment registration backend with role-based access control.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
