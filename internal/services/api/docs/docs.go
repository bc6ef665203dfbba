// Package docs registers the OpenAPI document of the wordtrends API with swag
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
  "openapi": "3.0.3",
  "info": {
    "title": "{{.Title}}",
    "description": "Word usage over time across subreddits",
    "version": "{{.Version}}"
  },
  "paths": {
    "/meta/health": {
      "get": {
        "tags": ["Meta"],
        "summary": "Liveness probe",
        "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Envelope"}}}}}
      }
    },
    "/meta/ready": {
      "get": {
        "tags": ["Meta"],
        "summary": "Readiness probe, ok once the dataset is loaded",
        "responses": {
          "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Envelope"}}}},
          "503": {"description": "dataset not loaded", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
        }
      }
    },
    "/meta/version": {
      "get": {
        "tags": ["Meta"],
        "summary": "Build information",
        "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Envelope"}}}}}
      }
    },
    "/meta/service": {
      "get": {
        "tags": ["Meta"],
        "summary": "Service name and uptime",
        "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Envelope"}}}}}
      }
    },
    "/meta/dataset": {
      "get": {
        "tags": ["Meta"],
        "summary": "Loaded tables and categories",
        "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Envelope"}}}}}
      }
    },
    "/trends/options": {
      "get": {
        "tags": ["Trends"],
        "summary": "Selectable categories, metrics and granularities",
        "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Envelope"}}}}}
      }
    },
    "/trends/series": {
      "post": {
        "tags": ["Trends"],
        "summary": "Figure for a word and category selection",
        "requestBody": {
          "required": true,
          "content": {"application/json": {"schema": {"$ref": "#/components/schemas/SeriesInput"}}}
        },
        "responses": {
          "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Envelope"}}}},
          "404": {"description": "granularity not loaded", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}},
          "422": {"description": "unknown granularity, metric or category", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
        }
      }
    },
    "/trends/chart": {
      "get": {
        "tags": ["Trends"],
        "summary": "Rendered chart image",
        "parameters": [
          {"name": "granularity", "in": "query", "schema": {"type": "string", "enum": ["monthly", "yearly"], "default": "monthly"}},
          {"name": "metric", "in": "query", "schema": {"type": "string", "enum": ["freq", "prop", "rank"], "default": "freq"}},
          {"name": "words", "in": "query", "schema": {"type": "string"}, "example": "cat,dog"},
          {"name": "categories", "in": "query", "schema": {"type": "string"}, "example": "Conservative,politics"},
          {"name": "format", "in": "query", "schema": {"type": "string", "enum": ["svg", "png"], "default": "svg"}},
          {"name": "width", "in": "query", "schema": {"type": "integer", "default": 1024}},
          {"name": "height", "in": "query", "schema": {"type": "integer", "default": 576}},
          {"name": "If-None-Match", "in": "header", "schema": {"type": "string"}}
        ],
        "responses": {
          "200": {
            "description": "image",
            "headers": {"ETag": {"schema": {"type": "string"}}},
            "content": {
              "image/svg+xml": {"schema": {"type": "string"}},
              "image/png": {"schema": {"type": "string", "format": "binary"}}
            }
          },
          "304": {"description": "not modified"},
          "422": {"description": "unknown granularity, metric, category or format", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
        }
      }
    }
  },
  "components": {
    "schemas": {
      "Envelope": {
        "type": "object",
        "properties": {
          "status_code": {"type": "integer"},
          "status": {"type": "string"},
          "request_id": {"type": "string"},
          "data": {}
        }
      },
      "SeriesInput": {
        "type": "object",
        "properties": {
          "granularity": {"type": "string", "enum": ["monthly", "yearly"], "example": "monthly"},
          "metric": {"type": "string", "enum": ["freq", "prop", "rank"], "example": "freq"},
          "words": {"type": "string", "example": "cat,dog"},
          "categories": {
            "oneOf": [{"type": "string"}, {"type": "array", "items": {"type": "string"}}],
            "example": ["Conservative", "politics"]
          }
        }
      }
    }
  }
}`

// SwaggerInfo holds the exported document metadata
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/api/v1",
	Title:            "wordtrends API",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
