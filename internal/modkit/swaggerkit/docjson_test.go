package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "launchdeck/internal/platform/errors"
	phttp "launchdeck/internal/platform/net/http"
	"launchdeck/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fetchSpec(t *testing.T) (int, map[string]any) {
	t.Helper()
	rr := httptest.NewRecorder()
	serveDocJSON()(rr, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rr.Code != http.StatusOK {
		return rr.Code, nil
	}
	var spec map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &spec))
	return rr.Code, spec
}

func TestServeDocJSON_Generated(t *testing.T) {
	testkit.Serial(t)
	code, spec := fetchSpec(t)
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, "3.0.3", spec["openapi"])
	paths, ok := spec["paths"].(map[string]any)
	require.True(t, ok)
	for _, p := range []string{"/launches", "/launches/{id}/crew", "/dashboard/sessions/{sid}/crew", "/meta/ready"} {
		assert.Contains(t, paths, p)
	}

	schemas := spec["components"].(map[string]any)["schemas"].(map[string]any)
	assert.Contains(t, schemas, "ErrorResponse")
	assert.Contains(t, schemas, "LaunchCard")

	op := paths["/launches"].(map[string]any)["get"].(map[string]any)
	responses := op["responses"].(map[string]any)
	for _, s := range []string{"200", "400", "404", "500", "503"} {
		assert.Contains(t, responses, s)
	}

	bad := responses["400"].(map[string]any)["content"].(map[string]any)["application/json"].(map[string]any)["example"].(map[string]any)
	assert.Equal(t, "filter", bad["field"])
	assert.EqualValues(t, perr.ErrorCodeValidation, bad["code"])
}

func TestServeDocJSON_TitleSuffixAndMutators(t *testing.T) {
	testkit.Serial(t)
	t.Setenv("CORE_API_DOCS_TITLE_SUFFIX", "(staging)")
	testkit.Swap(t, &mutators, nil)
	Register(func(spec map[string]any) { spec["x-mutated"] = true })
	Register(nil)

	_, spec := fetchSpec(t)
	assert.Equal(t, "Launchdeck API (staging)", spec["info"].(map[string]any)["title"])
	assert.Equal(t, true, spec["x-mutated"])
}

func TestServeDocJSON_InvalidDocIs500(t *testing.T) {
	testkit.Serial(t)
	testkit.Swap(t, &docReader, func() string { return "{" })

	code, _ := fetchSpec(t)
	assert.Equal(t, http.StatusInternalServerError, code)
}

func TestEnsureServers_Downgrades(t *testing.T) {
	spec := map[string]any{"swagger": "2.0"}
	ensureServers(spec, "/api/v1")
	assert.Equal(t, "3.0.3", spec["openapi"])
	assert.NotContains(t, spec, "swagger")
	assert.Equal(t, []any{map[string]any{"url": "/api/v1"}}, spec["servers"])

	spec = map[string]any{"openapi": "3.1.0", "servers": []any{"keep"}}
	ensureServers(spec, "/x")
	assert.Equal(t, "3.0.3", spec["openapi"])
	assert.Equal(t, []any{"keep"}, spec["servers"])
}

func TestAddDefaultResponse_KeepsExisting(t *testing.T) {
	spec := map[string]any{"paths": map[string]any{
		"/a": map[string]any{"get": map[string]any{"responses": map[string]any{"404": "mine"}}},
		"/b": map[string]any{"post": map[string]any{}},
	}}
	addDefaultResponse(spec, sampleError{code: perr.ErrorCodeNotFound, msg: "x"})

	a := spec["paths"].(map[string]any)["/a"].(map[string]any)["get"].(map[string]any)["responses"].(map[string]any)
	assert.Equal(t, "mine", a["404"])
	b := spec["paths"].(map[string]any)["/b"].(map[string]any)["post"].(map[string]any)["responses"].(map[string]any)
	assert.Contains(t, b, "404")
}

func TestMount_DisabledAndEnabled(t *testing.T) {
	m := chi.NewRouter()
	Mount(phttp.AdaptChi(m), false)
	rr := httptest.NewRecorder()
	m.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/docs", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	m = chi.NewRouter()
	Mount(phttp.AdaptChi(m), true)
	rr = httptest.NewRecorder()
	m.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/docs", nil))
	assert.Equal(t, http.StatusPermanentRedirect, rr.Code)
	assert.Equal(t, "/api/docs/", rr.Header().Get("Location"))
}
