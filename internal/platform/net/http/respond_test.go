package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "launchdeck/internal/platform/errors"
	pnet "launchdeck/internal/platform/net"
	phttp "launchdeck/internal/platform/net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// helper to build a request with a request_id in context
func reqWithReqID(method, path, rid string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	return req.WithContext(pnet.WithRequest(req.Context(), rid, ""))
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) phttp.Envelope {
	t.Helper()
	var env phttp.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestJSON_SetsStatusAndContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.JSON(rec, http.StatusTeapot, map[string]any{"k": "v"})
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}

func TestRespondError_WritesEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.RespondError(rec, reqWithReqID("GET", "/x", "rid-e"), perr.NotFoundf("launch x not found"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, perr.ErrorCodeNotFound, env.Code)
	assert.Equal(t, "rid-e", env.RequestID)
	assert.Equal(t, "launch x not found", env.Error)
}

func TestHandle_OKCreatedNoContent(t *testing.T) {
	req := reqWithReqID("GET", "/x", "rid-1")

	rec := httptest.NewRecorder()
	phttp.Handle(func(*http.Request) phttp.Response { return phttp.OK([]int{1, 2}) })(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, 200, env.StatusCode)
	assert.Equal(t, "rid-1", env.RequestID)
	assert.NotNil(t, env.Data)

	rec = httptest.NewRecorder()
	phttp.Handle(func(*http.Request) phttp.Response { return phttp.Created(map[string]string{"id": "s1"}) })(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Created", decode(t, rec).Status)

	rec = httptest.NewRecorder()
	phttp.Handle(func(*http.Request) phttp.Response { return phttp.NoContent() })(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestHandle_ErrorAndHeaders(t *testing.T) {
	req := reqWithReqID("GET", "/x", "rid-2")

	rec := httptest.NewRecorder()
	phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.Error(perr.WithField(perr.Newf(perr.ErrorCodeValidation, "filter must be one of [all success crewed]"), "filter"))
	})(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, perr.ErrorCodeValidation, env.Code)

	rec = httptest.NewRecorder()
	phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.Error(errors.New("boom"))
	})(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "boom", decode(t, rec).Error)

	rec = httptest.NewRecorder()
	phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.Response{Body: "x", Header: http.Header{"X-Extra": []string{"1"}}}
	})(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-Extra"))
}
