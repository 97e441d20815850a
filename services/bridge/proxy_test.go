package bridge

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// memSessionStore is an in-memory SessionStore for forwarder tests.
type memSessionStore struct {
	sessions map[string]Session
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]Session)}
}

func (s *memSessionStore) Get(ctx context.Context, conversationKey string) (*Session, error) {
	sess, ok := s.sessions[conversationKey]
	if !ok {
		return nil, nil
	}
	return &sess, nil
}

func (s *memSessionStore) Put(ctx context.Context, conversationKey string, sess Session) error {
	s.sessions[conversationKey] = sess
	return nil
}

func newBridgeRouter(t *testing.T, agentURL string, store SessionStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	forwarder, err := NewForwarder(agentURL, store)
	if err != nil {
		t.Fatalf("NewForwarder: %v", err)
	}
	r := gin.New()
	r.Any("/agent/*path", forwarder.Handler())
	return r
}

func TestForwarderRelaysVerbatim(t *testing.T) {
	var got struct {
		method    string
		path      string
		query     string
		body      string
		custom    string
		userID    string
		sessionID string
	}
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got.method = r.Method
		got.path = r.URL.Path
		got.query = r.URL.RawQuery
		got.body = string(body)
		got.custom = r.Header.Get("X-Custom")
		got.userID = r.Header.Get("X-User-Id")
		got.sessionID = r.Header.Get("X-Session-Id")

		w.Header().Set("X-Upstream", "yes")
		w.WriteHeader(http.StatusTeapot)
		io.WriteString(w, "teapot")
	}))
	defer upstream.Close()

	router := newBridgeRouter(t, upstream.URL, newMemSessionStore())

	req := httptest.NewRequest(http.MethodPost, "/agent/run?stream=true", strings.NewReader(`{"message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Custom", "custom-value")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got.method != http.MethodPost {
		t.Fatalf("upstream method = %s, want POST", got.method)
	}
	if got.path != "/run" {
		t.Fatalf("upstream path = %s, want /run", got.path)
	}
	if got.query != "stream=true" {
		t.Fatalf("upstream query = %s, want stream=true", got.query)
	}
	if got.body != `{"message":"hi"}` {
		t.Fatalf("upstream body = %s", got.body)
	}
	if got.custom != "custom-value" {
		t.Fatal("custom header not forwarded")
	}
	if got.userID == "" || got.sessionID == "" {
		t.Fatal("session identifiers not injected")
	}

	// Upstream status, headers and body pass through unchanged.
	if w.Code != http.StatusTeapot {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusTeapot)
	}
	if w.Header().Get("X-Upstream") != "yes" {
		t.Fatal("upstream header not passed through")
	}
	if w.Body.String() != "teapot" {
		t.Fatalf("body = %s, want teapot", w.Body.String())
	}
}

func TestForwarderStableSessionPerConversation(t *testing.T) {
	var userIDs []string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDs = append(userIDs, r.Header.Get("X-User-Id"))
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	store := newMemSessionStore()
	router := newBridgeRouter(t, upstream.URL, store)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/agent/run", nil)
		req.Header.Set(ConversationHeader, "conv-1")
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	if len(userIDs) != 2 {
		t.Fatalf("upstream saw %d requests, want 2", len(userIDs))
	}
	if userIDs[0] == "" || userIDs[0] != userIDs[1] {
		t.Fatalf("same conversation got different user ids: %q vs %q", userIDs[0], userIDs[1])
	}
	if _, ok := store.sessions["conv-1"]; !ok {
		t.Fatal("session pair not cached under the conversation key")
	}

	// A different conversation gets its own pair.
	req := httptest.NewRequest(http.MethodGet, "/agent/run", nil)
	req.Header.Set(ConversationHeader, "conv-2")
	router.ServeHTTP(httptest.NewRecorder(), req)
	if userIDs[2] == userIDs[0] {
		t.Fatal("distinct conversations shared a user id")
	}
}

func TestForwarderTransportFailure(t *testing.T) {
	// Point at a server that is already closed.
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	router := newBridgeRouter(t, upstream.URL, newMemSessionStore())

	req := httptest.NewRequest(http.MethodPost, "/agent/run", strings.NewReader("{}"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body is not JSON: %v", err)
	}
	if body["error"] == "" {
		t.Fatal("error body missing error field")
	}
}

func TestMintSessionUnique(t *testing.T) {
	a, b := MintSession(), MintSession()
	if a.UserID == "" || a.SessionID == "" {
		t.Fatal("minted session has empty identifiers")
	}
	if a.UserID == b.UserID || a.SessionID == b.SessionID {
		t.Fatal("minted sessions are not unique")
	}
}

func TestJoinPath(t *testing.T) {
	cases := []struct {
		base  string
		extra string
		want  string
	}{
		{"", "/run", "/run"},
		{"/", "/run", "/run"},
		{"/agent", "run", "/agent/run"},
		{"/agent/", "/run", "/agent/run"},
	}
	for _, tc := range cases {
		if got := joinPath(tc.base, tc.extra); got != tc.want {
			t.Fatalf("joinPath(%q, %q) = %q, want %q", tc.base, tc.extra, got, tc.want)
		}
	}
}
