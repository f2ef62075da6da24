package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// echoServer accepts one websocket connection, sends greeting and forwards every
// frame it receives to got.
func echoServer(t *testing.T, greeting string, got chan<- string) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		_ = conn.WriteMessage(websocket.TextMessage, []byte(greeting))
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			got <- string(msg)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestShowdownClient_RoundTrip(t *testing.T) {
	got := make(chan string, 8)
	srv := echoServer(t, "|challstr|4|abc", got)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sc, err := NewShowdownClient(ctx, wsURL(srv), zap.NewNop())
	require.NoError(t, err)
	defer sc.Close()

	msg, err := sc.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "|challstr|4|abc", msg)

	require.NoError(t, sc.JoinRoom("overused"))
	require.NoError(t, sc.Say("overused", "hello\nworld"))
	require.NoError(t, sc.PM("someone", "hi"))
	require.NoError(t, sc.Rename("calcbot", "ASSERT"))

	for _, want := range []string{
		"|/join overused",
		"overused|hello world",
		"|/pm someone, hi",
		"|/trn calcbot,0,ASSERT",
	} {
		select {
		case m := <-got:
			assert.Equal(t, want, m)
		case <-ctx.Done():
			t.Fatalf("timed out waiting for %q", want)
		}
	}
}

func TestNewShowdownClient_BadURL(t *testing.T) {
	_, err := NewShowdownClient(context.Background(), "ws://127.0.0.1:1/nothing", zap.NewNop())
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("a", maxMessageLength+50)
	out := truncate(long)
	assert.Len(t, []rune(out), maxMessageLength)
	assert.True(t, strings.HasSuffix(out, "..."))
	assert.Equal(t, "short", truncate("short"))
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "4|abc", r.PostForm.Get("challstr"))
		if r.PostForm.Get("pass") != "secret" {
			_, _ = w.Write([]byte(`]{"assertion":";;Wrong password."}`))
			return
		}
		_, _ = w.Write([]byte(`]{"curuser":{"loggedin":true,"username":"calcbot"},"assertion":"SIGNED"}`))
	}))
	defer srv.Close()

	ctx := context.Background()
	assertion, err := Login(ctx, srv.Client(), srv.URL, "calcbot", "secret", "4|abc")
	require.NoError(t, err)
	assert.Equal(t, "SIGNED", assertion)

	_, err = Login(ctx, srv.Client(), srv.URL, "calcbot", "nope", "4|abc")
	assert.ErrorIs(t, err, ErrLoginRejected)
	assert.ErrorContains(t, err, "Wrong password.")
}

func TestLogin_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := Login(context.Background(), srv.Client(), srv.URL, "u", "p", "c")
	assert.ErrorIs(t, err, ErrLoginRejected)
}
