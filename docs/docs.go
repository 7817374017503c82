// Package docs registers the OpenAPI description served on /swagger.
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
        "/health": {
            "get": {"tags": ["health"], "summary": "Liveness probe", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/health/ready": {
            "get": {"tags": ["health"], "summary": "Readiness probe", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}
        },
        "/api/auth/register": {
            "post": {"tags": ["auth"], "summary": "Register a new user", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.registerRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}}}
        },
        "/api/auth/login": {
            "post": {"tags": ["auth"], "summary": "Login", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}}}
        },
        "/api/current-user": {
            "get": {"tags": ["auth"], "summary": "Current user", "security": [{"BearerAuth": []}], "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}}}
        },
        "/api/user-preferences": {
            "get": {"tags": ["preferences"], "summary": "Get the user's preferences", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.UserPreferences"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}}},
            "post": {"tags": ["preferences"], "summary": "Create or update the user's preferences", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/domain.UserPreferences"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.UserPreferences"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}}}
        },
        "/api/calendar": {
            "get": {"tags": ["calendar"], "summary": "List calendar events", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.CalendarEvent"}}}}},
            "post": {"tags": ["calendar"], "summary": "Create a calendar event", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/domain.CalendarEvent"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.CalendarEvent"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}}}
        },
        "/api/calendar/{id}": {
            "get": {"tags": ["calendar"], "summary": "Get a calendar event", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.CalendarEvent"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}}},
            "put": {"tags": ["calendar"], "summary": "Update a calendar event", "consumes": ["application/json"], "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/domain.CalendarEvent"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.CalendarEvent"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}}},
            "delete": {"tags": ["calendar"], "summary": "Delete a calendar event", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}}}
        },
        "/api/calendar/analyze": {
            "post": {"tags": ["calendar"], "summary": "Detect calendar conflicts", "produces": ["application/json"], "responses": {"200": {"description": "ConflictAnalysis"}, "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}}}
        },
        "/api/coworking": {
            "get": {"tags": ["coworking"], "summary": "List saved coworking spaces", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.CoworkingSpace"}}}}},
            "post": {"tags": ["coworking"], "summary": "Save a coworking space", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/domain.CoworkingSpace"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.CoworkingSpace"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}}}
        },
        "/api/coworking/{id}": {
            "get": {"tags": ["coworking"], "summary": "Get a coworking space", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.CoworkingSpace"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}}}
        },
        "/api/coworking/recommend": {
            "post": {"tags": ["coworking"], "summary": "Recommend coworking spaces", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "CoworkingRecommendations"}}}
        },
        "/api/timezone/recommend": {
            "post": {"tags": ["timezone"], "summary": "Recommend meeting windows across time zones", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "TimeZoneRecommendation"}}}
        },
        "/api/budget": {
            "get": {"tags": ["budget"], "summary": "List budget entries", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.BudgetEntry"}}}}},
            "post": {"tags": ["budget"], "summary": "Record a budget entry", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/domain.BudgetEntry"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.BudgetEntry"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}}}
        },
        "/api/budget/{id}": {
            "get": {"tags": ["budget"], "summary": "Get a budget entry", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.BudgetEntry"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}}},
            "put": {"tags": ["budget"], "summary": "Update a budget entry", "consumes": ["application/json"], "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/domain.BudgetEntry"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.BudgetEntry"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}}}
        },
        "/api/budget/analyze": {
            "post": {"tags": ["budget"], "summary": "Analyze spending", "produces": ["application/json"], "responses": {"200": {"description": "BudgetAnalysis"}}}
        },
        "/api/community/recommend": {
            "post": {"tags": ["community"], "summary": "Recommend communities and events", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "CommunityRecommendations"}}}
        },
        "/api/legal/resources": {
            "post": {"tags": ["legal"], "summary": "Visa, tax and legal guidance", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "LegalResource"}}}
        },
        "/api/assistant": {
            "post": {"tags": ["assistant"], "summary": "Ask the assistant", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"type": "object", "properties": {"query": {"type": "string"}}}}],
                "responses": {"200": {"description": "AssistantResponse"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}}}
        },
        "/api/conversations": {
            "get": {"tags": ["assistant"], "summary": "AI conversation history", "parameters": [{"type": "string", "name": "module", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.AiConversation"}}}}}
        }
    },
    "definitions": {
        "handler.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}, "fields": {"type": "array", "items": {"type": "object", "properties": {"field": {"type": "string"}, "message": {"type": "string"}}}}}},
        "handler.registerRequest": {"type": "object", "required": ["username", "password", "fullName"], "properties": {"username": {"type": "string"}, "password": {"type": "string", "minLength": 6}, "fullName": {"type": "string"}, "currentLocation": {"type": "string"}, "profileImage": {"type": "string"}}},
        "handler.loginRequest": {"type": "object", "required": ["username", "password"], "properties": {"username": {"type": "string"}, "password": {"type": "string"}}},
        "domain.User": {"type": "object", "properties": {"id": {"type": "integer"}, "username": {"type": "string"}, "fullName": {"type": "string"}, "currentLocation": {"type": "string"}, "profileImage": {"type": "string"}}},
        "domain.CalendarEvent": {"type": "object", "properties": {"id": {"type": "integer"}, "userId": {"type": "integer"}, "title": {"type": "string"}, "description": {"type": "string"}, "startTime": {"type": "string", "format": "date-time"}, "endTime": {"type": "string", "format": "date-time"}, "location": {"type": "string"}, "eventType": {"type": "string", "enum": ["work", "travel", "personal"]}, "isConflict": {"type": "boolean"}}},
        "domain.CoworkingSpace": {"type": "object", "properties": {"id": {"type": "integer"}, "userId": {"type": "integer"}, "name": {"type": "string"}, "location": {"type": "string"}, "price": {"type": "string"}, "rating": {"type": "string"}, "amenities": {"type": "array", "items": {"type": "string"}}, "internetSpeed": {"type": "string"}}},
        "domain.BudgetEntry": {"type": "object", "properties": {"id": {"type": "integer"}, "userId": {"type": "integer"}, "amount": {"type": "integer"}, "category": {"type": "string"}, "description": {"type": "string"}, "date": {"type": "string", "format": "date-time"}, "isWorkRelated": {"type": "boolean"}}},
        "domain.UserPreferences": {"type": "object", "properties": {"id": {"type": "integer"}, "userId": {"type": "integer"}, "timeZone": {"type": "string"}, "budgetLimit": {"type": "integer"}, "preferredWorkHours": {"type": "object", "additionalProperties": {"type": "object", "properties": {"start": {"type": "string"}, "end": {"type": "string"}}}}, "nextDestination": {"type": "string"}, "nextDestinationDates": {"type": "object", "properties": {"start": {"type": "string"}, "end": {"type": "string"}}}}},
        "domain.AiConversation": {"type": "object", "properties": {"id": {"type": "integer"}, "userId": {"type": "integer"}, "module": {"type": "string"}, "createdAt": {"type": "string", "format": "date-time"}, "messages": {"type": "array", "items": {"type": "object", "properties": {"role": {"type": "string"}, "content": {"type": "string"}, "createdAt": {"type": "string", "format": "date-time"}}}}}}
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Nomad Planner API",
	Description:      "Calendar, coworking, budget and AI planning endpoints for digital nomads.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
