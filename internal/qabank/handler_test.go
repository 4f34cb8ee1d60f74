package qabank_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"applyai-backend/internal/llm"
	"applyai-backend/internal/qabank"
	"applyai-backend/internal/resumes"
	"applyai-backend/internal/shared/config"
	"applyai-backend/internal/shared/server"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:3000"},
		Env:             "dev",
	}

	resumeSvc := &resumes.Service{LLM: &llm.PlaceholderClient{}, Repo: resumes.NewMemoryRepo()}
	qaSvc := &qabank.Service{Repo: qabank.NewMemoryRepo()}

	return server.NewRouter(server.RouterDeps{
		Config:        cfg,
		ResumeHandler: resumes.NewHandler(resumeSvc),
		QAHandler:     qabank.NewHandler(qaSvc),
	})
}

func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v\nbody: %s", err, resp.Body.String())
	}
	return out
}

func createEntry(t *testing.T, router *gin.Engine, question, answer, category string, tags []string) string {
	t.Helper()

	req := jsonRequest(t, http.MethodPost, "/qa-bank", map[string]any{
		"question": question,
		"answer":   answer,
		"category": category,
		"tags":     tags,
	})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	body := decodeBody(t, resp)
	entry, ok := body["entry"].(map[string]any)
	if !ok {
		t.Fatalf("expected entry in response, got %v", body)
	}
	id, _ := entry["id"].(string)
	if id == "" {
		t.Fatalf("expected entry id, got %v", entry)
	}
	return id
}

func TestCreateAndFetchEntry(t *testing.T) {
	router := newTestRouter()

	id := createEntry(t, router, "What is a channel?", "A typed conduit.", "technical", []string{"go"})

	req := httptest.NewRequest(http.MethodGet, "/qa-bank/"+id, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	body := decodeBody(t, resp)
	entry := body["entry"].(map[string]any)
	if entry["question"] != "What is a channel?" || entry["category"] != "technical" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	tags, ok := entry["tags"].([]any)
	if !ok || len(tags) != 1 || tags[0] != "go" {
		t.Fatalf("unexpected tags: %v", entry["tags"])
	}
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	router := newTestRouter()

	req := jsonRequest(t, http.MethodPost, "/qa-bank", map[string]any{
		"question": "q",
		"answer":   "a",
		"category": "trivia",
	})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
	body := decodeBody(t, resp)
	errObj := body["error"].(map[string]any)
	if errObj["code"] != "validation_error" {
		t.Fatalf("expected validation_error code, got %v", errObj)
	}
	msg, _ := errObj["message"].(string)
	for _, want := range []string{"behavioral", "technical", "hr", "situational"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("error message should name %q, got %q", want, msg)
		}
	}
}

func TestCreateRejectsEmptyQuestion(t *testing.T) {
	router := newTestRouter()

	req := jsonRequest(t, http.MethodPost, "/qa-bank", map[string]any{
		"question": "   ",
		"answer":   "a",
		"category": "hr",
	})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestListFiltersByCategory(t *testing.T) {
	router := newTestRouter()

	createEntry(t, router, "q1", "a1", "behavioral", nil)
	createEntry(t, router, "q2", "a2", "technical", nil)
	createEntry(t, router, "q3", "a3", "behavioral", nil)

	req := httptest.NewRequest(http.MethodGet, "/qa-bank?category=behavioral", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	body := decodeBody(t, resp)
	entries := body["entries"].([]any)
	if len(entries) != 2 {
		t.Fatalf("expected 2 behavioral entries, got %d", len(entries))
	}

	req = httptest.NewRequest(http.MethodGet, "/qa-bank?category=trivia", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown category filter, got %d", resp.Code)
	}
}

func TestUpdateEntryPartial(t *testing.T) {
	router := newTestRouter()

	id := createEntry(t, router, "q", "a", "hr", []string{"intro"})

	req := jsonRequest(t, http.MethodPut, "/qa-bank/"+id, map[string]any{
		"answer": "A better answer.",
	})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	body := decodeBody(t, resp)
	entry := body["entry"].(map[string]any)
	if entry["answer"] != "A better answer." {
		t.Fatalf("expected updated answer, got %v", entry["answer"])
	}
	if entry["question"] != "q" || entry["category"] != "hr" {
		t.Fatalf("unsupplied fields must be unchanged: %v", entry)
	}
}

func TestUpdateUnknownEntryReturns404(t *testing.T) {
	router := newTestRouter()

	req := jsonRequest(t, http.MethodPut, "/qa-bank/no-such-id", map[string]any{
		"answer": "anything",
	})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestDeleteEntryThenFetch(t *testing.T) {
	router := newTestRouter()

	id := createEntry(t, router, "q", "a", "situational", nil)

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/qa-bank/%s", id), nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/qa-bank/"+id, nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/qa-bank/"+id, nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 deleting missing entry, got %d", resp.Code)
	}
}
