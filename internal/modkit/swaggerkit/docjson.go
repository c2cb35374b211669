package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"launchdeck/internal/platform/config"
	perr "launchdeck/internal/platform/errors"

	docs "launchdeck/internal/services/api/docs"
)

// SpecMutator lets modules tweak the parsed openapi document before it is served
type SpecMutator func(map[string]any)

var mutators []SpecMutator

// docReader is swapped in tests
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

// Register adds a spec mutator
func Register(m SpecMutator) {
	if m != nil {
		mutators = append(mutators, m)
	}
}

// sampleError is one documented error envelope injected into every operation
type sampleError struct {
	code perr.ErrorCode
	msg  string
	fld  string
}

var sampleErrors = []sampleError{
	{perr.ErrorCodeValidation, "filter must be one of [all success crewed]", "filter"},
	{perr.ErrorCodeNotFound, "launch 5eb87d46ffd86e000604b388 not found", ""},
	{perr.ErrorCodePanic, "panic recovered", ""},
	{perr.ErrorCodeUnavailable, "crew resolution interrupted", ""},
}

func serveDocJSON() http.HandlerFunc {
	suffix := config.New().Prefix("CORE_API_").MayString("DOCS_TITLE_SUFFIX", "")
	return func(w http.ResponseWriter, r *http.Request) {
		var doc map[string]any
		if err := json.Unmarshal([]byte(docReader()), &doc); err != nil {
			http.Error(w, "openapi document is not valid json", http.StatusInternalServerError)
			return
		}

		ensureServers(doc, "/api/v1")
		if suffix != "" {
			if info, ok := doc["info"].(map[string]any); ok {
				if title, ok := info["title"].(string); ok {
					info["title"] = title + " " + suffix
				}
			}
		}

		schemas := child(child(doc, "components"), "schemas")
		if _, ok := schemas["ErrorResponse"]; !ok {
			schemas["ErrorResponse"] = errorSchema()
		}
		for _, s := range sampleErrors {
			addDefaultResponse(doc, s)
		}

		for _, m := range mutators {
			m(doc)
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(doc)
	}
}

// ensureServers pins the document to OAS 3.0.3 with a servers entry; the swagger ui cannot render 3.1
func ensureServers(doc map[string]any, url string) {
	delete(doc, "swagger")
	if v, ok := doc["openapi"].(string); !ok || !strings.HasPrefix(v, "3.0") {
		doc["openapi"] = "3.0.3"
	}
	if _, ok := doc["servers"]; !ok {
		doc["servers"] = []any{map[string]any{"url": url}}
	}
}

func child(m map[string]any, key string) map[string]any {
	c, ok := m[key].(map[string]any)
	if !ok {
		c = map[string]any{}
		m[key] = c
	}
	return c
}

func errorSchema() map[string]any {
	prop := func(typ string) map[string]any { return map[string]any{"type": typ} }
	return map[string]any{
		"type":        "object",
		"description": "Error envelope",
		"properties": map[string]any{
			"status_code": prop("integer"),
			"status":      prop("string"),
			"code":        prop("integer"),
			"error":       prop("string"),
			"field":       prop("string"),
			"request_id":  prop("string"),
		},
		"required": []any{"status_code", "status", "code", "error"},
	}
}

// addDefaultResponse documents s under its mapped status on every operation that does not already describe it
func addDefaultResponse(doc map[string]any, s sampleError) {
	paths, ok := doc["paths"].(map[string]any)
	if !ok {
		return
	}
	status := perr.HTTPStatusCode(s.code)
	desc := http.StatusText(status)
	example := map[string]any{
		"status_code": status,
		"status":      desc,
		"code":        int(s.code),
		"error":       s.msg,
		"request_id":  "launchdeck/abc-000001",
	}
	if s.fld != "" {
		example["field"] = s.fld
	}
	resp := map[string]any{
		"description": desc,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": example,
			},
		},
	}
	key := strconv.Itoa(status)
	for _, item := range paths {
		ops, ok := item.(map[string]any)
		if !ok {
			continue
		}
		for _, raw := range ops {
			op, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			responses := child(op, "responses")
			if _, exists := responses[key]; !exists {
				responses[key] = resp
			}
		}
	}
}
