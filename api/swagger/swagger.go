package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Islamic Hub API",
        "description": "Content and storefront backend: Quran, Hadith, news, videos, products and orders",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Registration and sessions"},
        {"name": "Quran", "description": "Surahs with ayah translations"},
        {"name": "Hadith", "description": "Hadith collections"},
        {"name": "News", "description": "News articles"},
        {"name": "Products", "description": "Store catalog"},
        {"name": "Videos", "description": "Video library"},
        {"name": "Navbar", "description": "Site navigation"},
        {"name": "Orders", "description": "Storefront orders"},
        {"name": "Bookmarks", "description": "Per-user pinned content"},
        {"name": "Users", "description": "Account administration"}
    ],
    "paths": {
        "/auth/register": {
            "post": {
                "tags": ["Auth"],
                "summary": "Register a new account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error or email already registered"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate and start a session",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "End the current session",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Auth"],
                "summary": "Current account profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/quran": {
            "get": {
                "tags": ["Quran"],
                "summary": "List surahs",
                "parameters": [
                    {"name": "surah", "in": "query", "type": "integer"},
                    {"name": "revelationPlace", "in": "query", "type": "string"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Quran"],
                "summary": "Create surah (admin)",
                "responses": {
                    "201": {"description": "Created"},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/quran/{id}": {
            "get": {
                "tags": ["Quran"],
                "summary": "Get surah",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            },
            "put": {
                "tags": ["Quran"],
                "summary": "Update surah (admin)",
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["Quran"],
                "summary": "Delete surah (admin)",
                "responses": {"204": {"description": "Deleted"}}
            }
        },
        "/hadith": {
            "get": {
                "tags": ["Hadith"],
                "summary": "List hadiths",
                "parameters": [
                    {"name": "collection", "in": "query", "type": "string"},
                    {"name": "book", "in": "query", "type": "string"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Hadith"],
                "summary": "Create hadith (admin)",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/news": {
            "get": {
                "tags": ["News"],
                "summary": "List news articles",
                "parameters": [
                    {"name": "category", "in": "query", "type": "string"},
                    {"name": "featured", "in": "query", "type": "boolean"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["News"],
                "summary": "Create article (admin)",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/news/{id}/views": {
            "post": {
                "tags": ["News"],
                "summary": "Record one view",
                "responses": {"202": {"description": "Accepted"}}
            }
        },
        "/products": {
            "get": {
                "tags": ["Products"],
                "summary": "List catalog products",
                "parameters": [
                    {"name": "category", "in": "query", "type": "string"},
                    {"name": "featured", "in": "query", "type": "boolean"},
                    {"name": "active", "in": "query", "type": "boolean"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Products"],
                "summary": "Create product (admin)",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/products/export": {
            "get": {
                "tags": ["Products"],
                "summary": "Export the catalog as CSV (admin)",
                "produces": ["text/csv"],
                "responses": {"200": {"description": "CSV payload"}}
            }
        },
        "/videos": {
            "get": {
                "tags": ["Videos"],
                "summary": "List videos",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Videos"],
                "summary": "Create video (admin)",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/videos/{id}/views": {
            "post": {
                "tags": ["Videos"],
                "summary": "Record one view",
                "responses": {"202": {"description": "Accepted"}}
            }
        },
        "/navbar": {
            "get": {
                "tags": ["Navbar"],
                "summary": "List navigation links",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Navbar"],
                "summary": "Create navigation link (admin)",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/orders": {
            "get": {
                "tags": ["Orders"],
                "summary": "List orders (own orders; admins see all)",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Orders"],
                "summary": "Place an order",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/OrderRequest"}}
                ],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/orders/{id}/status": {
            "put": {
                "tags": ["Orders"],
                "summary": "Update order status (admin)",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/orders/{id}/invoice": {
            "get": {
                "tags": ["Orders"],
                "summary": "Download the invoice as PDF",
                "produces": ["application/pdf"],
                "responses": {"200": {"description": "PDF payload"}}
            }
        },
        "/bookmarks": {
            "get": {
                "tags": ["Bookmarks"],
                "summary": "List the caller's bookmarks",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Bookmarks"],
                "summary": "Pin a content record",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/users": {
            "get": {
                "tags": ["Users"],
                "summary": "List accounts (admin)",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "RegisterRequest": {
            "type": "object",
            "required": ["name", "email", "password"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "OrderRequest": {
            "type": "object",
            "required": ["customer_name", "customer_email", "phone", "shipping_address", "items"],
            "properties": {
                "customer_name": {"type": "string"},
                "customer_email": {"type": "string"},
                "phone": {"type": "string"},
                "shipping_address": {"type": "string"},
                "items": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/OrderItemRequest"}
                }
            }
        },
        "OrderItemRequest": {
            "type": "object",
            "required": ["product_id", "quantity"],
            "properties": {
                "product_id": {"type": "string"},
                "quantity": {"type": "integer", "minimum": 1}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "limit": {"type": "integer"},
                "total": {"type": "integer"},
                "pages": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
