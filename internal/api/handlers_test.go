package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r)
	return r
}

func postCard(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/card", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := testRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "ok") {
		t.Errorf("health: %d %s", w.Code, w.Body.String())
	}
}

func TestThemesEndpoint(t *testing.T) {
	r := testRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/themes", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("themes: %d", w.Code)
	}
	var resp struct {
		Default string `json:"default"`
		Themes  []struct {
			ID    string `json:"id"`
			Label string `json:"label"`
		} `json:"themes"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Default != "ocean" || len(resp.Themes) != 6 {
		t.Errorf("got default=%q themes=%d", resp.Default, len(resp.Themes))
	}
}

func TestCardEndpointRendersPNG(t *testing.T) {
	w := postCard(t, testRouter(), map[string]string{
		"first": "Ada",
		"last":  "Lovelace",
		"phone": "+919876543210",
		"email": "ada@example.com",
		"theme": "gold",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("render: %d %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type %q", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")) {
		t.Error("body is not a PNG")
	}
}

func TestCardEndpointRejectsMissingFields(t *testing.T) {
	w := postCard(t, testRouter(), map[string]string{"first": "Ada"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing fields: %d, want 400", w.Code)
	}
}

func TestCardEndpointRejectsBadLogoBase64(t *testing.T) {
	w := postCard(t, testRouter(), map[string]string{
		"first": "Ada", "last": "Lovelace",
		"phone": "+919876543210", "email": "ada@example.com",
		"logo_base64": "!!!not-base64!!!",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad logo: %d, want 400", w.Code)
	}
}

func TestCardEndpointUndecodableLogoStillRenders(t *testing.T) {
	// Valid base64 of bytes that are not an image: the renderer degrades
	// to no logo instead of failing.
	w := postCard(t, testRouter(), map[string]string{
		"first": "Ada", "last": "Lovelace",
		"phone": "+919876543210", "email": "ada@example.com",
		"logo_base64": "bm90IGFuIGltYWdl",
	})
	if w.Code != http.StatusOK {
		t.Errorf("undecodable logo: %d, want 200", w.Code)
	}
}
