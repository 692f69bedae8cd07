package suggestions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newSuggestionsRouter(repo Repo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	NewHandler(&Service{Repo: repo}).RegisterRoutes(api)
	return r
}

func TestCreateSuggestion(t *testing.T) {
	router := newSuggestionsRouter(NewMemoryRepo())

	body := `{"userId":"u1","category":"UI","title":"Add dark mode","description":"for night owls"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/suggestions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var created Suggestion
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == "" || created.Status != StatusPending {
		t.Fatalf("unexpected created suggestion: %+v", created)
	}
}

func TestCreateSuggestionValidation(t *testing.T) {
	router := newSuggestionsRouter(NewMemoryRepo())

	body := `{"userId":"u1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/suggestions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestListSuggestionsDefaultsToPending(t *testing.T) {
	repo := NewMemoryRepo()
	router := newSuggestionsRouter(repo)

	seed := []Suggestion{
		{ID: "a", UserID: "u1", Title: "one", Status: StatusPending},
		{ID: "b", UserID: "u2", Title: "two", Status: StatusApproved},
	}
	for _, s := range seed {
		if err := repo.Create(context.Background(), s); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/suggestions", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var out []Suggestion
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 1 || out[0].ID != "a" {
		t.Fatalf("expected only pending suggestion, got %+v", out)
	}
}
