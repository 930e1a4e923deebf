package dto

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"
)

func bind(t *testing.T, body string, req interface{}) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	RegisterJSONTagNames()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/v1/auth/signup", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	return w, BindJSON(c, req)
}

func decodeProblem(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("resposta não é JSON: %v", err)
	}
	return body
}

func TestBindJSON(t *testing.T) {
	t.Run("aceita corpo válido", func(t *testing.T) {
		var req SignupRequest
		_, ok := bind(t, `{"username":"alice","email":"alice@example.com"}`, &req)
		if !ok {
			t.Fatal("esperava sucesso")
		}
		if req.Username != "alice" {
			t.Errorf("username inesperado: %s", req.Username)
		}
	})

	t.Run("campos obrigatórios usam o nome do JSON", func(t *testing.T) {
		var req TokenRequest
		w, ok := bind(t, `{"username":"alice"}`, &req)
		if ok {
			t.Fatal("esperava falha")
		}
		if w.Code != http.StatusBadRequest {
			t.Errorf("esperava 400, obteve %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, problems.ProblemMediaType) {
			t.Errorf("content-type inesperado: %s", ct)
		}

		errs := decodeProblem(t, w)["errors"].([]interface{})
		if len(errs) != 1 || errs[0].(map[string]interface{})["field"] != "confirmation_code" {
			t.Errorf("erros inesperados: %v", errs)
		}
	})

	t.Run("corpo vazio é tratado como objeto vazio", func(t *testing.T) {
		var req SignupRequest
		w, ok := bind(t, ``, &req)
		if ok {
			t.Fatal("esperava falha")
		}
		errs := decodeProblem(t, w)["errors"].([]interface{})
		if len(errs) != 2 {
			t.Errorf("esperava 2 erros, obteve %v", errs)
		}
	})

	t.Run("tipo errado vira erro de campo", func(t *testing.T) {
		var req ReviewRequest
		w, ok := bind(t, `{"text":"ok","score":"dez"}`, &req)
		if ok {
			t.Fatal("esperava falha")
		}
		errs := decodeProblem(t, w)["errors"].([]interface{})
		if errs[0].(map[string]interface{})["field"] != "score" {
			t.Errorf("erros inesperados: %v", errs)
		}
	})

	t.Run("JSON malformado é bad request sem campos", func(t *testing.T) {
		var req SignupRequest
		w, ok := bind(t, `{"username":`, &req)
		if ok {
			t.Fatal("esperava falha")
		}
		body := decodeProblem(t, w)
		if body["status"].(float64) != http.StatusBadRequest {
			t.Errorf("status inesperado: %v", body["status"])
		}
		if _, has := body["errors"]; has {
			t.Errorf("não deveria haver erros de campo: %v", body["errors"])
		}
	})
}
