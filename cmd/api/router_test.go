package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fotoscavet-backend/internal/config"
	cardHandler "fotoscavet-backend/internal/domains/card/handler"
	cardRepo "fotoscavet-backend/internal/domains/card/repository"
	cardService "fotoscavet-backend/internal/domains/card/service"
	userHandler "fotoscavet-backend/internal/domains/user/handler"
	"fotoscavet-backend/internal/domains/user/model"
	userRepo "fotoscavet-backend/internal/domains/user/repository"
	userService "fotoscavet-backend/internal/domains/user/service"
	"fotoscavet-backend/internal/shared/middleware"
	"fotoscavet-backend/pkg/container"
)

func newTestContainer() *container.Container {
	cards := cardRepo.NewMemoryRepository()
	users := userRepo.NewMemoryRepositoryWith([]model.User{
		{Name: "Alice", Username: "alice", Password: "a"},
		{Name: "Bob", Username: "bob", Password: "b"},
	})

	c := &container.Container{
		Config: &config.Config{
			App:   config.AppConfig{Environment: "development", Port: "8080", Version: "test"},
			Store: config.StoreConfig{Driver: config.DriverMemory},
			CORS:  config.CORSConfig{AllowedOrigin: "*"},
		},
		CardRepo:    cards,
		UserRepo:    users,
		CardService: cardService.NewCardService(cards, users),
		UserService: userService.NewUserService(users),
	}
	c.CardHandler = cardHandler.NewCardHandler(c.CardService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	return c
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return SetupRouter(newTestContainer())
}

func call(t *testing.T, r http.Handler, method, path string, params url.Values, body string) map[string]any {
	t.Helper()

	target := path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestReadinessMessage(t *testing.T) {
	r := newTestRouter(t)

	for _, target := range []string{"/exec", "/", "/exec?action=unknown"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, ReadyMessage, w.Body.String())
	}
}

func TestActionsBeforeSetup(t *testing.T) {
	r := newTestRouter(t)

	out := call(t, r, http.MethodGet, "/exec", url.Values{"action": {"getCards"}}, "")
	assert.Equal(t, map[string]any{"status": "error", "message": "Cards sheet not found"}, out)

	out = call(t, r, http.MethodPost, "/exec", nil, `{"id":"01FC05","cardAuthor":"Alice"}`)
	assert.Equal(t, "Cards sheet not found. Please run setupCardsSheet first.", out["message"])
}

func TestAdoptionFlowOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	out := call(t, r, http.MethodGet, "/exec", url.Values{"action": {"setupCardsSheet"}}, "")
	require.Equal(t, "success", out["status"])

	out = call(t, r, http.MethodGet, "/exec", url.Values{"action": {"login"}, "username": {"alice"}, "password": {"a"}}, "")
	require.Equal(t, "success", out["status"])
	user := out["user"].(map[string]any)
	assert.Equal(t, "", user["adoptedCard"])

	out = call(t, r, http.MethodPost, "/exec", nil,
		`{"id":"01FC05","commonName":"Robin","cardAuthor":"Alice","username":"alice"}`)
	assert.Equal(t, "success", out["status"])
	assert.Equal(t, true, out["adopted"])

	out = call(t, r, http.MethodPost, "/", nil, `{"id":"01FC05","cardAuthor":"Bob","username":"bob"}`)
	assert.Equal(t, map[string]any{
		"status":  "error",
		"message": "Aquesta fitxa ja ha estat adoptada per Alice",
	}, out)

	out = call(t, r, http.MethodGet, "/exec", url.Values{"action": {"getCard"}, "cardId": {"01FC05"}}, "")
	card := out["card"].(map[string]any)
	assert.Equal(t, "Robin", card["commonName"])
	assert.Equal(t, "Alice", card["cardAuthor"])

	out = call(t, r, http.MethodGet, "/exec", url.Values{"action": {"login"}, "username": {"alice"}, "password": {"a"}}, "")
	assert.Equal(t, "01FC05", out["user"].(map[string]any)["adoptedCard"])

	out = call(t, r, http.MethodGet, "/exec", url.Values{"action": {"saveCard"}, "cardId": {"02FC08"}, "cardAuthor": {"Alice"}, "username": {"alice"}}, "")
	assert.Equal(t, "Ja tens una fitxa adoptada: 01FC05. Allibera-la primer.", out["message"])

	out = call(t, r, http.MethodGet, "/exec", url.Values{"action": {"unadoptCard"}, "cardId": {"01FC05"}, "username": {"alice"}}, "")
	assert.Equal(t, "Fitxa alliberada correctament", out["message"])

	out = call(t, r, http.MethodGet, "/exec", url.Values{"action": {"getCards"}}, "")
	assert.EqualValues(t, 15, out["count"])
}

func TestTestUsersAction(t *testing.T) {
	r := newTestRouter(t)

	out := call(t, r, http.MethodGet, "/exec", url.Values{"action": {"testUsers"}}, "")
	assert.Equal(t, "success", out["status"])
	assert.EqualValues(t, 2, out["userCount"])
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "ok", out["status"])
	assert.Equal(t, "test", out["version"])
}

func TestMiddlewareHeaders(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/exec", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/exec", nil))
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestContainerCleanupWithoutStore(t *testing.T) {
	c := newTestContainer()
	c.Cleanup()
	assert.Equal(t, map[string]string{"driver": "memory", "store": "ok"}, c.HealthCheck(context.Background()))
}
