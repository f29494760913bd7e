// Package docs registers the OpenAPI description served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {"summary": "Liveness message", "responses": {"200": {"description": "OK"}}}
        },
        "/test": {
            "get": {"summary": "Data Store diagnostics", "responses": {"200": {"description": "OK"}}}
        },
        "/eta": {
            "get": {
                "summary": "Estimate delivery time from a hub to a city",
                "parameters": [
                    {"name": "city", "in": "query", "required": true, "type": "string"},
                    {"name": "hub", "in": "query", "type": "string", "default": "Lagos"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Unsupported city or hub"}}
            }
        },
        "/hubs": {
            "get": {"summary": "List dispatch hubs", "responses": {"200": {"description": "OK"}}}
        },
        "/orders": {
            "post": {
                "summary": "Create an order",
                "parameters": [{"name": "order", "in": "body", "required": true, "schema": {"$ref": "#/definitions/OrderCreate"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Validation failed"}, "500": {"description": "Database not configured"}}
            }
        },
        "/orders/{id}": {
            "get": {
                "summary": "Fetch a stored order",
                "security": [{"ApiKeyAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "404": {"description": "Order not found"}}
            }
        },
        "/orders/{id}/status": {
            "patch": {
                "summary": "Update an order status",
                "security": [{"ApiKeyAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Unknown status"}, "404": {"description": "Order not found"}}
            }
        },
        "/payments/init": {
            "post": {
                "summary": "Start a payment for an order",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PaymentInitRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "order_id required"}, "404": {"description": "Order not found"}, "502": {"description": "Paystack error"}}
            }
        },
        "/payments/verify": {
            "get": {
                "summary": "Verify a payment reference",
                "parameters": [{"name": "reference", "in": "query", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/track": {
            "get": {
                "summary": "Websocket stream of order status",
                "parameters": [{"name": "order_id", "in": "query", "required": true, "type": "string"}],
                "responses": {"101": {"description": "Switching Protocols"}, "426": {"description": "Upgrade Required"}}
            }
        }
    },
    "definitions": {
        "OrderItem": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "unit_price": {"type": "number"},
                "quantity": {"type": "integer"}
            }
        },
        "CustomerInfo": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "address": {"type": "string"},
                "city": {"type": "string"}
            }
        },
        "OrderCreate": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/OrderItem"}},
                "customer": {"$ref": "#/definitions/CustomerInfo"},
                "subtotal": {"type": "number"},
                "delivery_fee": {"type": "number"},
                "total": {"type": "number"}
            }
        },
        "PaymentInitRequest": {
            "type": "object",
            "properties": {
                "order_id": {"type": "string"},
                "payment_method": {"type": "string", "enum": ["card", "bank_transfer"]}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "in": "header", "name": "Authorization"}
    }
}`

// @title Horion Farms API
// @version 1.0
// @description Order intake, delivery estimates and payments for Horion Farms
// @BasePath /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Horion Farms API",
	Description:      "Order intake, delivery estimates and payments for Horion Farms",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
