package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"talentscout_backend/internal/app"
	"talentscout_backend/internal/config"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// TestServer bundles a running HTTP server, its database and the fake AI
// upstream it talks to. Each test gets its own SQLite file, so tests are
// free to run in parallel.
type TestServer struct {
	Server     *httptest.Server
	DB         *gorm.DB
	AIUpstream *httptest.Server
}

// DefaultAIReply is what the fake AI upstream answers unless a test installs
// its own handler.
const DefaultAIReply = "分数：88\n分析：候选人与职位匹配度较高。"

// NewTestServer starts a fully wired server over a throwaway database, with
// the AI provider stubbed to return DefaultAIReply.
func NewTestServer(t *testing.T) *TestServer {
	return NewTestServerWithAI(t, func(w http.ResponseWriter, r *http.Request) {
		WriteCompletionReply(w, DefaultAIReply)
	})
}

// NewTestServerWithAI is NewTestServer with a custom fake AI upstream.
func NewTestServerWithAI(t *testing.T, aiHandler http.HandlerFunc) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database (%s): %v", dsn, err)
	}

	if err := app.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	aiUpstream := httptest.NewServer(aiHandler)

	cfg := &config.Config{}
	cfg.Server.Env = "development"
	cfg.JWT.Secret = "integration-test-secret"
	cfg.JWT.TTL = 30
	cfg.AI.APIKey = "sk-test-provider-key"
	cfg.AI.BaseURL = aiUpstream.URL
	cfg.AI.Model = "deepseek-chat"

	router := app.SetupRouter(cfg, db)
	server := httptest.NewServer(router)

	t.Cleanup(func() {
		server.Close()
		aiUpstream.Close()
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return &TestServer{
		Server:     server,
		DB:         db,
		AIUpstream: aiUpstream,
	}
}

// WriteCompletionReply writes a minimal OpenAI-style chat completion response
// carrying the given content.
func WriteCompletionReply(w http.ResponseWriter, content string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"id":     "chatcmpl-test",
		"object": "chat.completion",
		"model":  "deepseek-chat",
		"choices": []map[string]interface{}{
			{
				"index": 0,
				"message": map[string]interface{}{
					"role":    "assistant",
					"content": content,
				},
				"finish_reason": "stop",
			},
		},
	})
}

// SendRequest performs a JSON request against the test server and returns the
// response together with its body read out as a string.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return ts.do(t, req)
}

// SendForm performs a form-encoded POST, the shape the login endpoint expects.
func (ts *TestServer) SendForm(t *testing.T, path string, form url.Values) (*http.Response, string) {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+path, strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("failed to build form request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return ts.do(t, req)
}

func (ts *TestServer) do(t *testing.T, req *http.Request) (*http.Response, string) {
	t.Helper()

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("failed to send request: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}

	return res, string(resBody)
}
