// Package docs registers the OpenAPI description served at /swagger/*any.
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
        "/": {
            "get": {
                "produces": ["text/html"],
                "tags": ["pages"],
                "summary": "Home page",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/activity": {
            "get": {
                "produces": ["application/json"],
                "tags": ["activity"],
                "summary": "List own activity",
                "parameters": [
                    {"type": "string", "description": "Start of range (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD')", "name": "from", "in": "query"},
                    {"type": "string", "description": "End of range; date-only is end of day", "name": "to", "in": "query"},
                    {"type": "string", "description": "Activity type", "name": "type", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "count, events", "schema": {"type": "object", "additionalProperties": true}},
                    "302": {"description": "no session, redirected to /login"},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}}
            }
        },
        "/login": {
            "get": {
                "produces": ["text/html"],
                "tags": ["auth"],
                "summary": "Login page",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["text/html"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [{"description": "credentials", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.Credentials"}}],
                "responses": {
                    "302": {"description": "session set, redirected to /"},
                    "400": {"description": "missing username or password"},
                    "429": {"description": "too many attempts"}
                }
            }
        },
        "/loginin": {
            "get": {
                "produces": ["application/json"],
                "tags": ["diary"],
                "summary": "Read diary",
                "responses": {
                    "200": {"description": "status, blockchainInfo, diaryInfo, refresh", "schema": {"type": "object", "additionalProperties": true}},
                    "302": {"description": "no session, redirected to /login"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["diary"],
                "summary": "Write diary entry",
                "parameters": [{"description": "entry", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.DiaryEntry"}}],
                "responses": {
                    "200": {"description": "status, blockchainInfo, diaryInfo, refresh", "schema": {"type": "object", "additionalProperties": true}},
                    "302": {"description": "no session, redirected to /login"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.Envelope"}}
                }
            }
        },
        "/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "Log out",
                "responses": {"302": {"description": "session cleared, redirected to /"}}
            }
        },
        "/register": {
            "get": {
                "produces": ["text/html"],
                "tags": ["auth"],
                "summary": "Registration page",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["text/html"],
                "tags": ["auth"],
                "summary": "Register",
                "parameters": [{"description": "credentials", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.Credentials"}}],
                "responses": {
                    "302": {"description": "session set, redirected to /"},
                    "400": {"description": "missing username or password"},
                    "429": {"description": "too many attempts"}
                }
            }
        },
        "/validate": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ledger"],
                "summary": "Validate blockchain",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Envelope"}}}
            }
        },
        "/ws/validate": {
            "get": {
                "tags": ["ledger"],
                "summary": "Integrity stream",
                "parameters": [
                    {"type": "string", "description": "Go duration, e.g. 5s", "name": "interval", "in": "query"},
                    {"type": "integer", "description": "Interval in milliseconds", "name": "interval_ms", "in": "query"}
                ],
                "responses": {"101": {"description": "Switching Protocols"}}
            }
        }
    },
    "definitions": {
        "models.Credentials": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "models.DiaryEntry": {
            "type": "object",
            "properties": {"content": {"type": "string"}}
        },
        "models.Envelope": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "status": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Diary Gateway",
	Description:      "Presentation gateway in front of the blockchain diary backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
