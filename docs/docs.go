// Package docs holds the Swagger document served at /swagger/index.html.
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
        "/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a devotee account",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/auth.RegisterRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Email already registered"}}
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in and receive an access token",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Invalid credentials"}}
            }
        },
        "/sevas": {
            "get": {
                "tags": ["sevas"],
                "summary": "List active sevas",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/seva.Seva"}}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["sevas"],
                "summary": "Create a seva (admin)",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}}
            }
        },
        "/sevas/{id}": {
            "get": {
                "tags": ["sevas"],
                "summary": "Get a seva",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Seva not found"}}
            }
        },
        "/bookings": {
            "post": {
                "tags": ["bookings"],
                "summary": "Book a seva as a guest or signed-in devotee",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/booking.CreateBookingRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/booking.Booking"}}, "400": {"description": "Bad Request"}, "404": {"description": "Seva not found"}}
            },
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["bookings"],
                "summary": "List all bookings (admin)",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/bookings/track/{phone}": {
            "get": {
                "tags": ["bookings"],
                "summary": "Find bookings by guest phone, newest first",
                "parameters": [{"type": "string", "name": "phone", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/bookings/{id}/receipt": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/pdf"],
                "tags": ["reports"],
                "summary": "Download a booking receipt (admin)",
                "responses": {"200": {"description": "PDF"}, "404": {"description": "Booking not found"}}
            }
        },
        "/reports/bookings": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["reports"],
                "summary": "Sankalpa list as JSON or pdf/excel/csv (admin)",
                "parameters": [
                    {"type": "string", "name": "format", "in": "query", "enum": ["pdf", "excel", "csv"]},
                    {"type": "string", "name": "date_range", "in": "query", "enum": ["today", "tomorrow", "week", "month", "custom"]}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/translate": {
            "get": {
                "tags": ["translate"],
                "summary": "Translate text (default en to kn)",
                "parameters": [{"type": "string", "name": "text", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Text is required"}, "500": {"description": "Translation failed"}}
            }
        }
    },
    "definitions": {
        "auth.RegisterRequest": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {
                "name": {"type": "string", "example": "Ramesh Kumar"},
                "email": {"type": "string", "example": "ramesh@example.com"},
                "password": {"type": "string", "example": "secret123"},
                "phone": {"type": "string", "example": "+919876543210"}
            }
        },
        "seva.Seva": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "titleEn": {"type": "string"},
                "titleKn": {"type": "string"},
                "price": {"type": "number"},
                "category": {"type": "string"},
                "image": {"type": "string"},
                "isActive": {"type": "boolean"}
            }
        },
        "booking.CreateBookingRequest": {
            "type": "object",
            "properties": {
                "sevaId": {"type": "integer"},
                "devoteeName": {"type": "string"},
                "gothram": {"type": "string"},
                "rashi": {"type": "string"},
                "nakshatra": {"type": "string"},
                "bookingDate": {"type": "string"},
                "bookingType": {"type": "string", "enum": ["individual", "family"]},
                "count": {"type": "integer"},
                "totalAmount": {"type": "number"},
                "guestName": {"type": "string"},
                "guestEmail": {"type": "string"},
                "guestPhone": {"type": "string"}
            }
        },
        "booking.Booking": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "reference": {"type": "string"},
                "sevaId": {"type": "integer"},
                "devoteeName": {"type": "string"},
                "guestPhone": {"type": "string"},
                "count": {"type": "integer"},
                "totalAmount": {"type": "number"},
                "isPaid": {"type": "boolean"},
                "status": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Temple Seva Booking API",
	Description:      "Seva catalog, bookings and temple administration.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
