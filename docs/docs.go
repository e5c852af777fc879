// Package docs registers the Swagger spec served at /swagger/*any.
// Regenerate with `swag init -g cmd/api/main.go`.
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
        "/api/v1/worklogs": {
            "post": {
                "description": "Files a Jira worklog. Without a start time the entry starts at noon of the given date.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Worklogs"],
                "summary": "Log work on a ticket",
                "parameters": [
                    {"type": "string", "description": "Caller user id", "name": "X-User-ID", "in": "header", "required": true},
                    {"description": "Worklog", "name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/worklogs/parse": {
            "post": {
                "description": "Extracts time range, project and description from a Portuguese utterance and ranks ticket candidates.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Worklogs"],
                "summary": "Parse a voice utterance",
                "parameters": [
                    {"type": "string", "description": "Caller user id", "name": "X-User-ID", "in": "header", "required": true},
                    {"description": "Utterance", "name": "body", "in": "body", "required": true, "schema": {"type": "object", "properties": {"text": {"type": "string"}}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/worklogs/tickets/search": {
            "post": {
                "description": "Lists open tickets of a configured project ranked by keyword matches (top 10).",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Worklogs"],
                "summary": "Search tickets of a project",
                "parameters": [
                    {"type": "string", "description": "Caller user id", "name": "X-User-ID", "in": "header", "required": true},
                    {"description": "Search", "name": "body", "in": "body", "required": true, "schema": {"type": "object", "properties": {"project": {"type": "string"}, "keywords": {"type": "string"}}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Project not configured", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/worklogs/{ticket_key}/{worklog_id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["Worklogs"],
                "summary": "Delete a worklog",
                "parameters": [
                    {"type": "string", "description": "Caller user id", "name": "X-User-ID", "in": "header", "required": true},
                    {"type": "string", "description": "Ticket key", "name": "ticket_key", "in": "path", "required": true},
                    {"type": "string", "description": "Worklog id", "name": "worklog_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {"get": {"tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "API is healthy"}}}},
        "/ready": {"get": {"tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "API is ready"}, "503": {"description": "Database unreachable"}}}},
        "/live": {"get": {"tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "API is alive"}}}}
    },
    "definitions": {
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "errors": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Voice Worklog API",
	Description:      "Turns spoken Brazilian Portuguese work reports into Jira worklogs.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
