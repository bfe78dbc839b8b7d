// Package docs is generated by swaggo/swag from the handler annotations.
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
        "/api/v1/reference": {
            "get": {
                "description": "Returns keyword, severity and phrase rule counts",
                "produces": ["application/json"],
                "tags": ["Reference"],
                "summary": "Describe the loaded reference set",
                "responses": {
                    "200": {
                        "description": "Reference summary",
                        "schema": {"$ref": "#/definitions/reference.Summary"}
                    }
                }
            }
        },
        "/api/v1/scans": {
            "post": {
                "description": "Scores every title and returns the results in input order",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Scans"],
                "summary": "Scan a batch of titles",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Bearer token, when auth is enabled",
                        "name": "Authorization",
                        "in": "header"
                    },
                    {
                        "description": "Titles to scan",
                        "name": "scan",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/request.CreateScanRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Scan results",
                        "schema": {"$ref": "#/definitions/response.ScanResponse"}
                    },
                    "400": {
                        "description": "Invalid request data",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/api/v1/score": {
            "post": {
                "description": "Returns the safety and confidence scores for one title",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Scans"],
                "summary": "Score a single title",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Bearer token, when auth is enabled",
                        "name": "Authorization",
                        "in": "header"
                    },
                    {
                        "description": "Title to score",
                        "name": "title",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/request.ScoreTitleRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Scan result",
                        "schema": {"$ref": "#/definitions/types.ScanResult"}
                    },
                    "400": {
                        "description": "Invalid request data",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/version": {
            "get": {
                "description": "Returns build and engine version information",
                "produces": ["application/json"],
                "tags": ["Version"],
                "summary": "Get scanner version",
                "responses": {
                    "200": {
                        "description": "Version information",
                        "schema": {"$ref": "#/definitions/version.Info"}
                    }
                }
            }
        }
    },
    "definitions": {
        "reference.Summary": {
            "type": "object",
            "properties": {
                "keywords": {"type": "integer"},
                "phrase_labels": {"type": "array", "items": {"type": "string"}},
                "phrase_rules": {"type": "integer"},
                "severities": {"type": "integer"},
                "source": {"type": "string"}
            }
        },
        "request.CreateScanRequest": {
            "type": "object",
            "properties": {
                "titles": {"type": "array", "items": {"type": "string"}}
            }
        },
        "request.ScoreTitleRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"}
            }
        },
        "response.ScanResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "results": {"type": "array", "items": {"$ref": "#/definitions/types.ScanResult"}},
                "scan_id": {"type": "string"}
            }
        },
        "types.ScanResult": {
            "type": "object",
            "properties": {
                "alternative_suggestions": {"type": "array", "items": {"type": "string"}},
                "categories": {"type": "array", "items": {"type": "string"}},
                "confidence_score": {"type": "integer"},
                "context_reasons": {"type": "array", "items": {"type": "string"}},
                "flagged_words": {"type": "array", "items": {"type": "string"}},
                "less_harsh_suggestions": {"type": "array", "items": {"type": "string"}},
                "opposite_suggestions": {"type": "array", "items": {"type": "string"}},
                "safety_score": {"type": "integer"},
                "title": {"type": "string"}
            }
        },
        "version.Info": {
            "type": "object",
            "properties": {
                "app_name": {"type": "string"},
                "build_date": {"type": "string"},
                "go_version": {"type": "string"},
                "platform": {"type": "string"},
                "rules_version": {"type": "string"},
                "version": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "2.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "YouTube Title Scanner API",
	Description:      "Scores video titles for advertiser-unfriendly content.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
