package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/rafabene/yamdb-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/yamdb-backend/internal/domain/errors"
	"github.com/rafabene/yamdb-backend/internal/domain/policies"
	"github.com/rafabene/yamdb-backend/internal/infrastructure/logging"
)

type fakeTokens struct {
	valid map[string]uint
}

func (f *fakeTokens) Issue(user *entities.User) (string, error) {
	return "token", nil
}

func (f *fakeTokens) Parse(token string) (uint, error) {
	if id, ok := f.valid[token]; ok {
		return id, nil
	}
	return 0, domainerrors.ErrInvalidToken
}

type fakeUsers map[uint]*entities.User

func (f fakeUsers) GetUserByID(_ context.Context, id uint) (*entities.User, error) {
	if user, ok := f[id]; ok {
		return user, nil
	}
	return nil, domainerrors.ErrUserNotFound
}

type fakeCounter struct {
	hits map[string]int64
	err  error
}

func (f *fakeCounter) Hit(_ context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	if f.err != nil {
		return 0, 0, f.err
	}
	f.hits[key]++
	return f.hits[key], window / 2, nil
}

var (
	admin  = &entities.User{ID: 1, Username: "root", Role: entities.RoleAdmin}
	member = &entities.User{ID: 2, Username: "alice", Role: entities.RoleUser}
)

func newAuthRouter(policy policies.Policy) *gin.Engine {
	gin.SetMode(gin.TestMode)
	auth := NewAuthenticator(
		&fakeTokens{valid: map[string]uint{"admin-token": 1, "member-token": 2, "ghost-token": 99}},
		fakeUsers{1: admin, 2: member},
		logging.NewNopLogger(),
	)

	router := gin.New()
	router.Use(auth.Authenticate())
	handler := func(c *gin.Context) {
		username := "anonymous"
		if user := CurrentUser(c); user != nil {
			username = user.Username
		}
		c.String(http.StatusOK, username)
	}
	router.GET("/resource", Permit(policy), handler)
	router.POST("/resource", Permit(policy), handler)
	router.GET("/me", RequireUser(), handler)
	return router
}

func do(router http.Handler, method, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestAuthenticator(t *testing.T) {
	router := newAuthRouter(policies.ReadOpenWriteAuthor)

	t.Run("requisição sem header segue anônima", func(t *testing.T) {
		w := do(router, "GET", "/resource", "")
		if w.Code != http.StatusOK || w.Body.String() != "anonymous" {
			t.Errorf("obteve %d %q", w.Code, w.Body.String())
		}
	})

	t.Run("token válido identifica o usuário", func(t *testing.T) {
		w := do(router, "GET", "/resource", "member-token")
		if w.Body.String() != "alice" {
			t.Errorf("esperava alice, obteve %q", w.Body.String())
		}
	})

	t.Run("token inválido responde 401", func(t *testing.T) {
		w := do(router, "GET", "/resource", "forged")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("esperava 401, obteve %d", w.Code)
		}
	})

	t.Run("token de usuário removido responde 401", func(t *testing.T) {
		w := do(router, "GET", "/resource", "ghost-token")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("esperava 401, obteve %d", w.Code)
		}
	})

	t.Run("esquema diferente de Bearer responde 401", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/resource", nil)
		req.Header.Set("Authorization", "Basic Zm9vOmJhcg==")
		router.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("esperava 401, obteve %d", w.Code)
		}
	})

	t.Run("RequireUser barra anônimos", func(t *testing.T) {
		if w := do(router, "GET", "/me", ""); w.Code != http.StatusUnauthorized {
			t.Errorf("esperava 401, obteve %d", w.Code)
		}
		if w := do(router, "GET", "/me", "member-token"); w.Code != http.StatusOK {
			t.Errorf("esperava 200, obteve %d", w.Code)
		}
	})
}

func TestPermit(t *testing.T) {
	tests := []struct {
		name   string
		policy policies.Policy
		method string
		token  string
		status int
	}{
		{"leitura aberta para anônimo", policies.ReadOpenWriteAdmin, "GET", "", http.StatusOK},
		{"escrita de admin exige autenticação", policies.ReadOpenWriteAdmin, "POST", "", http.StatusUnauthorized},
		{"escrita de admin nega usuário comum", policies.ReadOpenWriteAdmin, "POST", "member-token", http.StatusForbidden},
		{"escrita de admin libera admin", policies.ReadOpenWriteAdmin, "POST", "admin-token", http.StatusOK},
		{"escrita de autor libera autenticado", policies.ReadOpenWriteAuthor, "POST", "member-token", http.StatusOK},
		{"AdminOnly fecha até a leitura", policies.AdminOnly, "GET", "member-token", http.StatusForbidden},
		{"AdminOnly anônimo recebe 401", policies.AdminOnly, "GET", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(newAuthRouter(tt.policy), tt.method, "/resource", tt.token)
			if w.Code != tt.status {
				t.Errorf("esperava %d, obteve %d", tt.status, w.Code)
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(counter Counter) *gin.Engine {
		router := gin.New()
		router.POST("/auth/signup", RateLimit(counter, 2, time.Minute, logging.NewNopLogger()), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return router
	}

	t.Run("bloqueia acima do limite com Retry-After", func(t *testing.T) {
		router := newRouter(&fakeCounter{hits: map[string]int64{}})

		for i := 0; i < 2; i++ {
			if w := do(router, "POST", "/auth/signup", ""); w.Code != http.StatusOK {
				t.Fatalf("requisição %d: esperava 200, obteve %d", i+1, w.Code)
			}
		}

		w := do(router, "POST", "/auth/signup", "")
		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("esperava 429, obteve %d", w.Code)
		}
		if w.Header().Get("Retry-After") != "30" {
			t.Errorf("Retry-After inesperado: %q", w.Header().Get("Retry-After"))
		}
	})

	t.Run("contador nil não limita", func(t *testing.T) {
		router := newRouter(nil)
		for i := 0; i < 5; i++ {
			if w := do(router, "POST", "/auth/signup", ""); w.Code != http.StatusOK {
				t.Fatalf("esperava 200, obteve %d", w.Code)
			}
		}
	})

	t.Run("falha do contador deixa a requisição passar", func(t *testing.T) {
		router := newRouter(&fakeCounter{err: errors.New("connection refused")})
		if w := do(router, "POST", "/auth/signup", ""); w.Code != http.StatusOK {
			t.Errorf("esperava 200, obteve %d", w.Code)
		}
	})

	t.Run("redis inacessível deixa a requisição passar", func(t *testing.T) {
		client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
		defer client.Close()

		router := newRouter(NewRedisCounter(client))
		if w := do(router, "POST", "/auth/signup", ""); w.Code != http.StatusOK {
			t.Errorf("esperava 200, obteve %d", w.Code)
		}
	})

	t.Run("cliente nil desabilita o contador", func(t *testing.T) {
		if NewRedisCounter(nil) != nil {
			t.Error("esperava contador nil")
		}
	})
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestLogger(logging.NewNopLogger()))
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("gera um request id", func(t *testing.T) {
		w := do(router, "GET", "/health", "")
		if len(w.Header().Get(RequestIDHeader)) != 36 {
			t.Errorf("request id inesperado: %q", w.Header().Get(RequestIDHeader))
		}
	})

	t.Run("propaga o request id recebido", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/health", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		router.ServeHTTP(w, req)
		if w.Header().Get(RequestIDHeader) != "abc-123" {
			t.Errorf("esperava abc-123, obteve %q", w.Header().Get(RequestIDHeader))
		}
	})
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	preflight := func(allowed, origin string) *httptest.ResponseRecorder {
		router := gin.New()
		router.Use(CORS(allowed))
		router.GET("/api/v1/titles", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		req := httptest.NewRequest("OPTIONS", "/api/v1/titles", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", "GET")
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("origem listada é aceita", func(t *testing.T) {
		w := preflight("https://a.example, https://b.example", "https://b.example")
		if w.Header().Get("Access-Control-Allow-Origin") != "https://b.example" {
			t.Errorf("origem não liberada: %v", w.Header())
		}
	})

	t.Run("curinga aceita qualquer origem", func(t *testing.T) {
		w := preflight("*", "https://any.example")
		if !strings.Contains(w.Header().Get("Access-Control-Allow-Origin"), "any.example") {
			t.Errorf("origem não liberada: %v", w.Header())
		}
	})

	t.Run("origem fora da lista é recusada", func(t *testing.T) {
		w := preflight("https://a.example", "https://evil.example")
		if w.Header().Get("Access-Control-Allow-Origin") != "" {
			t.Errorf("origem não deveria ser liberada: %v", w.Header())
		}
	})
}
