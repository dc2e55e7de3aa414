// Package docs holds the Swagger document served at /swagger/*any.
// Regenerate with: swag init -g cmd/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "https://github.com/guttosm/stockpulse",
        "contact": {
            "name": "API Support",
            "url": "https://github.com/guttosm/stockpulse",
            "email": "support@example.com"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/stocks": {
            "get": {
                "description": "Returns the stock directory, optionally filtered by a comma separated list of exchanges",
                "produces": ["application/json"],
                "tags": ["stocks"],
                "summary": "List known stocks",
                "parameters": [
                    {"type": "string", "example": "XNAS,XNYS", "description": "Exchanges", "name": "exchange", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Stock"}}},
                    "500": {"description": "Internal Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/v1/stocks/{id}": {
            "get": {
                "description": "Returns the valuation, operating performance and trailing returns reports merged into one document",
                "produces": ["application/json"],
                "tags": ["stocks"],
                "summary": "Get stock data",
                "parameters": [
                    {"type": "string", "example": "0P000000GY", "description": "Performance ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StockData"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "504": {"description": "Timeout", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/v1/stocks/{id}/valuation": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stocks"],
                "summary": "Get valuation report",
                "parameters": [
                    {"type": "string", "example": "0P000000GY", "description": "Performance ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ReportData"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/v1/stocks/{id}/operating-performance": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stocks"],
                "summary": "Get operating performance report",
                "parameters": [
                    {"type": "string", "example": "0P000000GY", "description": "Performance ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ReportData"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/v1/stocks/{id}/trailing-returns": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stocks"],
                "summary": "Get trailing total returns",
                "parameters": [
                    {"type": "string", "example": "0P000000GY", "description": "Performance ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.TrailingTotalReturnsListData"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/v1/stocks/{id}/extract": {
            "post": {
                "description": "Resolves each dotted path (e.g. valuationData.Collapsed.rows[0].label) against the merged stock data. Unresolved paths map to null.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["stocks"],
                "summary": "Extract fields from stock data",
                "parameters": [
                    {"type": "string", "example": "0P000000GY", "description": "Performance ID", "name": "id", "in": "path", "required": true},
                    {"description": "Dotted field paths", "name": "fields", "in": "body", "required": true, "schema": {"type": "array", "items": {"type": "string"}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/v1/stocks/{id}/performance-id": {
            "get": {
                "description": "Maps EXCHANGE:TICKER to the provider performance ID. Disabled unless FEATURE_GET_STOCK_PERFORMANCE_ID is set.",
                "produces": ["application/json"],
                "tags": ["stocks"],
                "summary": "Look up a performance ID",
                "parameters": [
                    {"type": "string", "example": "XNAS:AAPL", "description": "Listing as EXCHANGE:TICKER", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PerformanceIDResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "description": "Always returns OK if the service is running",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/readyz": {
            "get": {
                "description": "Returns ready if the stock directory database is reachable",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "provider returned 404"},
                "message": {"type": "string", "example": "stock data not found"},
                "timestamp": {"type": "string", "example": "2025-09-01T12:00:00Z"}
            }
        },
        "dto.PerformanceIDResponse": {
            "type": "object",
            "properties": {
                "exchange": {"type": "string", "example": "XNAS"},
                "performanceId": {"type": "string", "example": "0P000000GY"},
                "ticker": {"type": "string", "example": "AAPL"}
            }
        },
        "models.RowData": {
            "type": "object",
            "properties": {
                "datum": {"type": "array", "items": {"type": "number"}},
                "label": {"type": "string"},
                "percentage": {"type": "boolean"},
                "salDataId": {"type": "string"},
                "subLevel": {"type": "string"}
            }
        },
        "models.TableData": {
            "type": "object",
            "properties": {
                "columnDefs": {"type": "array", "items": {"type": "string"}},
                "columnDefs_labels": {"type": "array", "items": {"type": "string"}},
                "rows": {"type": "array", "items": {"$ref": "#/definitions/models.RowData"}}
            }
        },
        "models.ReportData": {
            "type": "object",
            "properties": {
                "Collapsed": {"$ref": "#/definitions/models.TableData"},
                "Expanded": {"$ref": "#/definitions/models.TableData"},
                "columnDefs": {"type": "array", "items": {"type": "string"}},
                "columnDefs_labels": {"type": "array", "items": {"type": "string"}},
                "reportType": {"type": "string"},
                "reportType_label": {"type": "string"}
            }
        },
        "models.TrailingTotalReturnsListData": {
            "type": "object",
            "properties": {
                "trailingTotalReturnsList": {"type": "array", "items": {"type": "object", "additionalProperties": true}}
            }
        },
        "models.StockData": {
            "type": "object",
            "properties": {
                "operatingPerformanceData": {"$ref": "#/definitions/models.ReportData"},
                "trailingTotalReturnsListData": {"$ref": "#/definitions/models.TrailingTotalReturnsListData"},
                "valuationData": {"$ref": "#/definitions/models.ReportData"}
            }
        },
        "models.Stock": {
            "type": "object",
            "properties": {
                "companyName": {"type": "string", "example": "Apple Inc"},
                "exchange": {"type": "string", "example": "XNAS"},
                "performanceId": {"type": "string", "example": "0P000000GY"},
                "ticker": {"type": "string", "example": "AAPL"},
                "updatedAt": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "stockpulse API",
	Description:      "Morningstar stock reports with dot-notation field extraction.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
