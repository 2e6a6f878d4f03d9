package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mvp_launchpad/internal/ai"
	handlers "mvp_launchpad/internal/api"
	"mvp_launchpad/internal/history"
	"mvp_launchpad/internal/storage"
	"mvp_launchpad/internal/types"
	"mvp_launchpad/internal/usage"
	"mvp_launchpad/internal/workflow"
)

type stubGenerator struct {
	planErr error
}

func (s *stubGenerator) GeneratePlan(_ context.Context, idea string) (types.MVPPlan, error) {
	if s.planErr != nil {
		return types.MVPPlan{}, &ai.GenerationError{Stage: ai.StagePlan, Err: s.planErr}
	}
	return types.MVPPlan{ProjectName: "BeanBox", Summary: idea}, nil
}

func (s *stubGenerator) GenerateLandingPage(_ context.Context, _ string, plan types.MVPPlan) (types.LandingPageContent, error) {
	return types.LandingPageContent{
		Headline: "Fresh beans",
		Features: []types.LandingPageFeature{{Title: "Mystery", Icon: "rocket"}},
	}, nil
}

type testServer struct {
	router  *gin.Engine
	history *history.Store
	gen     *stubGenerator
}

func newTestServer(t *testing.T, limit int) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx := context.Background()
	kv := storage.NewMemoryStore()
	hist := history.NewStore(ctx, kv)
	tracker := usage.NewTracker(kv, limit)
	gen := &stubGenerator{}
	orchestrator := workflow.NewOrchestrator(gen, hist, tracker)

	h := handlers.NewAPIHandler(orchestrator, hist, tracker)
	return &testServer{router: NewRouter(h, []string{"http://localhost:3000"}), history: hist, gen: gen}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func TestGenerate_Created(t *testing.T) {
	s := newTestServer(t, 5)

	w := s.do(t, http.MethodPost, "/mvp/generate", map[string]string{"idea": "coffee boxes"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var entry types.HistoryEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "coffee boxes", entry.MVPPlan.Summary)

	w = s.do(t, http.MethodGet, "/usage", nil)
	assert.JSONEq(t, `{"count":1,"limit":5,"limitReached":false}`, w.Body.String())

	w = s.do(t, http.MethodGet, "/history/latest", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), entry.ID)

	w = s.do(t, http.MethodGet, "/history/"+entry.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/history", nil)
	var list []types.HistoryEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
}

func TestGenerate_BadRequest(t *testing.T) {
	s := newTestServer(t, 5)

	w := s.do(t, http.MethodPost, "/mvp/generate", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/mvp/generate", map[string]string{"idea": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, s.history.Entries())
}

func TestGenerate_UpstreamFailure(t *testing.T) {
	s := newTestServer(t, 5)
	s.gen.planErr = errors.New("invalid api key sk-secret")

	w := s.do(t, http.MethodPost, "/mvp/generate", map[string]string{"idea": "coffee"})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), workflow.UserFacingError)
	assert.NotContains(t, w.Body.String(), "sk-secret", "the cause is logged, not shown")

	w = s.do(t, http.MethodGet, "/mvp/status", nil)
	var view workflow.View
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "error", view.Status)
	assert.Equal(t, 0, view.UsageCount)
	assert.Nil(t, view.Latest)
}

func TestGenerate_LimitReached(t *testing.T) {
	s := newTestServer(t, 1)

	w := s.do(t, http.MethodPost, "/mvp/generate", map[string]string{"idea": "one"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.do(t, http.MethodPost, "/mvp/generate", map[string]string{"idea": "two"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Len(t, s.history.Entries(), 1)

	w = s.do(t, http.MethodGet, "/mvp/status", nil)
	assert.Contains(t, w.Body.String(), `"status":"limit-reached"`)
}

func TestHistory_ClearAndNotFound(t *testing.T) {
	s := newTestServer(t, 5)
	s.do(t, http.MethodPost, "/mvp/generate", map[string]string{"idea": "coffee"})

	w := s.do(t, http.MethodDelete, "/history", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(t, http.MethodGet, "/history", nil)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = s.do(t, http.MethodGet, "/history/latest", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodGet, "/history/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHistory_Exports(t *testing.T) {
	s := newTestServer(t, 5)
	w := s.do(t, http.MethodPost, "/mvp/generate", map[string]string{"idea": "coffee"})
	var entry types.HistoryEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))

	w = s.do(t, http.MethodGet, "/history/"+entry.ID+"/markdown", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/markdown")
	assert.Contains(t, w.Body.String(), "# BeanBox")
	assert.Contains(t, w.Body.String(), "⭐ **Mystery**", "unknown icon falls back")

	w = s.do(t, http.MethodGet, "/history/"+entry.ID+"/preview", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "<h1>BeanBox</h1>")
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, 5)
	w := s.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
