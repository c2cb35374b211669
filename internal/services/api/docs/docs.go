// Package docs registers the OpenAPI document for the launchdeck api with swag
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "openapi": "3.0.3",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "paths": {
        "/launches": {
            "get": {
                "tags": ["Launches"],
                "summary": "List launches newest first",
                "operationId": "launchesList",
                "parameters": [
                    {"name": "year", "in": "query", "schema": {"type": "integer", "minimum": 1900, "maximum": 3000}},
                    {"name": "filter", "in": "query", "schema": {"$ref": "#/components/schemas/Outcome"}}
                ],
                "responses": {"200": {"description": "OK", "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/LaunchCard"}}}}}}
            }
        },
        "/launches/stats": {
            "get": {
                "tags": ["Launches"],
                "summary": "Per-year launch counts and success rates",
                "operationId": "launchesStats",
                "responses": {"200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/StatsResponse"}}}}}
            }
        },
        "/launches/status": {
            "get": {
                "tags": ["Launches"],
                "summary": "Catalog load status",
                "operationId": "launchesStatus",
                "responses": {"200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/LoadStatus"}}}}}
            }
        },
        "/launches/{id}": {
            "get": {
                "tags": ["Launches"],
                "summary": "Launch detail",
                "operationId": "launchesDetail",
                "parameters": [{"$ref": "#/components/parameters/LaunchID"}],
                "responses": {"200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/LaunchDetail"}}}}}
            }
        },
        "/launches/{id}/crew": {
            "get": {
                "tags": ["Launches"],
                "summary": "Enriched crew roster for a launch",
                "operationId": "launchesCrew",
                "parameters": [{"$ref": "#/components/parameters/LaunchID"}],
                "responses": {"200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/CrewResponse"}}}}}
            }
        },
        "/dashboard/sessions": {
            "post": {
                "tags": ["Dashboard"],
                "summary": "Start a dashboard session, optionally restoring a filter",
                "operationId": "dashboardCreate",
                "parameters": [
                    {"name": "year", "in": "query", "schema": {"type": "integer"}},
                    {"name": "filter", "in": "query", "schema": {"$ref": "#/components/schemas/Outcome"}}
                ],
                "responses": {"201": {"description": "Created", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/State"}}}}}
            }
        },
        "/dashboard/sessions/{sid}": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Current session state",
                "operationId": "dashboardGet",
                "parameters": [{"$ref": "#/components/parameters/SessionID"}],
                "responses": {"200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/State"}}}}}
            },
            "delete": {
                "tags": ["Dashboard"],
                "summary": "End a session",
                "operationId": "dashboardDelete",
                "parameters": [{"$ref": "#/components/parameters/SessionID"}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/dashboard/sessions/{sid}/year": {
            "post": {
                "tags": ["Dashboard"],
                "summary": "Set or clear the year filter",
                "operationId": "dashboardSetYear",
                "parameters": [
                    {"$ref": "#/components/parameters/SessionID"},
                    {"name": "year", "in": "query", "schema": {"type": "integer"}}
                ],
                "responses": {"200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/State"}}}}}
            }
        },
        "/dashboard/sessions/{sid}/filter": {
            "post": {
                "tags": ["Dashboard"],
                "summary": "Set the outcome filter",
                "operationId": "dashboardSetFilter",
                "parameters": [
                    {"$ref": "#/components/parameters/SessionID"},
                    {"name": "filter", "in": "query", "required": true, "schema": {"$ref": "#/components/schemas/Outcome"}}
                ],
                "responses": {"200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/State"}}}}}
            }
        },
        "/dashboard/sessions/{sid}/grid": {
            "post": {
                "tags": ["Dashboard"],
                "summary": "Minimize or expand the launch grid",
                "operationId": "dashboardSetGrid",
                "parameters": [
                    {"$ref": "#/components/parameters/SessionID"},
                    {"name": "minimized", "in": "query", "schema": {"type": "boolean"}}
                ],
                "responses": {"200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/State"}}}}}
            }
        },
        "/dashboard/sessions/{sid}/select/{id}": {
            "post": {
                "tags": ["Dashboard"],
                "summary": "Select a launch",
                "operationId": "dashboardSelect",
                "parameters": [
                    {"$ref": "#/components/parameters/SessionID"},
                    {"$ref": "#/components/parameters/LaunchID"}
                ],
                "responses": {"200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/State"}}}}}
            }
        },
        "/dashboard/sessions/{sid}/crew": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Crew enrichment for the session detail launch",
                "operationId": "dashboardCrew",
                "parameters": [{"$ref": "#/components/parameters/SessionID"}],
                "responses": {"200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Enrichment"}}}}}
            }
        },
        "/meta/health": {
            "get": {"tags": ["Meta"], "summary": "Liveness probe", "operationId": "metaHealth", "responses": {"200": {"description": "OK"}}}
        },
        "/meta/ready": {
            "get": {"tags": ["Meta"], "summary": "Readiness probe", "operationId": "metaReady", "responses": {"200": {"description": "OK"}}}
        },
        "/meta/version": {
            "get": {"tags": ["Meta"], "summary": "Build information", "operationId": "metaVersion", "responses": {"200": {"description": "OK"}}}
        },
        "/meta/service": {
            "get": {"tags": ["Meta"], "summary": "Service identity and uptime", "operationId": "metaService", "responses": {"200": {"description": "OK"}}}
        }
    },
    "components": {
        "parameters": {
            "LaunchID": {"name": "id", "in": "path", "required": true, "schema": {"type": "string"}, "example": "5eb87d46ffd86e000604b388"},
            "SessionID": {"name": "sid", "in": "path", "required": true, "schema": {"type": "string", "format": "uuid"}}
        },
        "schemas": {
            "Outcome": {"type": "string", "enum": ["all", "success", "crewed"], "default": "all"},
            "LaunchCard": {
                "type": "object",
                "properties": {
                    "id": {"type": "string"},
                    "name": {"type": "string", "example": "Crew-2"},
                    "date_utc": {"type": "string", "example": "2021-04-23T09:49:00.000Z"},
                    "year": {"type": "integer", "nullable": true, "example": 2021},
                    "flight_number": {"type": "integer"},
                    "success": {"type": "boolean", "nullable": true},
                    "outcome_label": {"type": "string", "enum": ["Success", "Failed", "Unknown"]},
                    "crewed": {"type": "boolean"},
                    "crew_count": {"type": "integer"},
                    "thumbnail": {"type": "string"},
                    "upcoming": {"type": "boolean"}
                }
            },
            "LaunchDetail": {
                "allOf": [
                    {"$ref": "#/components/schemas/LaunchCard"},
                    {
                        "type": "object",
                        "properties": {
                            "details": {"type": "string"},
                            "rocket": {"type": "string"},
                            "launchpad": {"type": "string"},
                            "coordinates": {"type": "object", "properties": {"lat": {"type": "number"}, "lng": {"type": "number"}}},
                            "links": {"type": "object"},
                            "embed_url": {"type": "string"},
                            "crew": {"type": "array", "items": {"type": "object", "properties": {"crew": {"type": "string"}, "role": {"type": "string"}}}},
                            "payloads": {"type": "array", "items": {"type": "object", "properties": {"id": {"type": "string"}, "type": {"type": "string"}, "orbit": {"type": "string"}}}},
                            "payload_summary": {"type": "string"},
                            "orbit": {"type": "string"}
                        }
                    }
                ]
            },
            "YearBucket": {
                "type": "object",
                "properties": {
                    "year": {"type": "integer"},
                    "launches": {"type": "integer"},
                    "successes": {"type": "integer"},
                    "success_rate": {"type": "number", "minimum": 0, "maximum": 1}
                }
            },
            "StatsResponse": {
                "type": "object",
                "properties": {
                    "years": {"type": "array", "items": {"type": "integer"}},
                    "year_launch_counts": {"type": "object", "additionalProperties": {"type": "integer"}},
                    "year_success_rates": {"type": "object", "additionalProperties": {"type": "number"}},
                    "buckets": {"type": "array", "items": {"$ref": "#/components/schemas/YearBucket"}},
                    "total": {"type": "integer"}
                }
            },
            "LoadStatus": {
                "type": "object",
                "properties": {
                    "status": {"type": "string", "enum": ["pending", "ok", "empty", "failed"]},
                    "count": {"type": "integer"},
                    "loaded_at": {"type": "string", "format": "date-time"},
                    "error": {"type": "string"}
                }
            },
            "CrewMember": {
                "type": "object",
                "properties": {
                    "id": {"type": "string"},
                    "name": {"type": "string"},
                    "role": {"type": "string"},
                    "role_label": {"type": "string"},
                    "status": {"type": "string"},
                    "status_label": {"type": "string"},
                    "image": {"type": "string"},
                    "agency": {"type": "string"},
                    "wikipedia": {"type": "string"},
                    "nasa_data": {
                        "type": "object",
                        "nullable": true,
                        "properties": {
                            "title": {"type": "string"},
                            "explanation": {"type": "string"},
                            "url": {"type": "string"},
                            "date": {"type": "string"}
                        }
                    }
                }
            },
            "CrewResponse": {
                "type": "object",
                "properties": {
                    "launch_id": {"type": "string"},
                    "crew": {"type": "array", "items": {"$ref": "#/components/schemas/CrewMember"}}
                }
            },
            "Enrichment": {
                "type": "object",
                "properties": {
                    "launch_id": {"type": "string"},
                    "generation": {"type": "integer"},
                    "ready": {"type": "boolean"},
                    "crew": {"type": "array", "items": {"$ref": "#/components/schemas/CrewMember"}}
                }
            },
            "State": {
                "type": "object",
                "properties": {
                    "session_id": {"type": "string", "format": "uuid"},
                    "filter": {"type": "object", "properties": {"year": {"type": "integer", "nullable": true}, "filter": {"$ref": "#/components/schemas/Outcome"}}},
                    "query": {"type": "string", "example": "filter=crewed&year=2021"},
                    "years": {"type": "array", "items": {"type": "integer"}},
                    "year_stats": {"$ref": "#/components/schemas/YearBucket"},
                    "view": {"type": "array", "items": {"$ref": "#/components/schemas/LaunchCard"}},
                    "count": {"type": "integer"},
                    "selection_id": {"type": "string"},
                    "in_view": {"type": "boolean"},
                    "detail": {"$ref": "#/components/schemas/LaunchDetail"},
                    "grid_minimized": {"type": "boolean"},
                    "catalog_status": {"$ref": "#/components/schemas/LoadStatus"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Launchdeck API",
	Description:      "Rocket launch dashboard: launch catalog, per-year stats, filter and selection sessions, crew enrichment.",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
