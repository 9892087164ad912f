package slack

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSigningSecret = "8f742231b10e8888abcd99yyyzzz85a5"

func signedHeader(t *testing.T, body []byte) http.Header {
	t.Helper()
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	mac := hmac.New(sha256.New, []byte(testSigningSecret))
	_, err := mac.Write([]byte("v0:" + ts + ":" + string(body)))
	require.NoError(t, err)

	header := http.Header{}
	header.Set("X-Slack-Request-Timestamp", ts)
	header.Set("X-Slack-Signature", "v0="+hex.EncodeToString(mac.Sum(nil)))
	return header
}

func TestClient_AuthCodeURL(t *testing.T) {
	client := NewClient(Config{ClientID: "123.456", RedirectURL: "https://api.acme.io/api/slack/oauth/callback"})

	raw := client.AuthCodeURL("signed-state")
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "slack.com", parsed.Host)
	assert.Equal(t, "/oauth/v2/authorize", parsed.Path)
	q := parsed.Query()
	assert.Equal(t, "123.456", q.Get("client_id"))
	assert.Equal(t, "signed-state", q.Get("state"))
	assert.Equal(t, strings.Join(Scopes, ","), q.Get("scope"))
}

func TestClient_Verify(t *testing.T) {
	client := NewClient(Config{SigningSecret: testSigningSecret})
	body := []byte(`{"type":"url_verification","challenge":"abc"}`)

	t.Run("valid signature", func(t *testing.T) {
		assert.NoError(t, client.Verify(signedHeader(t, body), body))
	})

	t.Run("tampered body", func(t *testing.T) {
		header := signedHeader(t, body)
		assert.Error(t, client.Verify(header, []byte(`{"type":"url_verification","challenge":"xyz"}`)))
	})

	t.Run("missing headers", func(t *testing.T) {
		assert.Error(t, client.Verify(http.Header{}, body))
	})
}

func TestClient_ParseEvent(t *testing.T) {
	client := NewClient(Config{})

	t.Run("url verification", func(t *testing.T) {
		event, err := client.ParseEvent([]byte(`{"token":"t","challenge":"3eZbrw1aB","type":"url_verification"}`))
		require.NoError(t, err)
		assert.Equal(t, EventURLVerification, event.Kind)
		assert.Equal(t, "3eZbrw1aB", event.Challenge)
	})

	t.Run("app uninstalled", func(t *testing.T) {
		body := `{"token":"t","team_id":"T061EG9R6","api_app_id":"A0","type":"event_callback",` +
			`"event":{"type":"app_uninstalled"},"event_id":"Ev1","event_time":1700000000}`
		event, err := client.ParseEvent([]byte(body))
		require.NoError(t, err)
		assert.Equal(t, EventAppUninstalled, event.Kind)
		assert.Equal(t, "T061EG9R6", event.WorkspaceID)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := client.ParseEvent([]byte(`{`))
		assert.Error(t, err)
	})
}

func TestClient_ParseCommand(t *testing.T) {
	client := NewClient(Config{})
	form := url.Values{}
	form.Set("command", "/skillwatch")
	form.Set("text", " goals ")
	form.Set("user_id", "U2147483697")
	form.Set("team_id", "T0001")

	cmd, err := client.ParseCommand([]byte(form.Encode()))
	require.NoError(t, err)
	assert.Equal(t, "/skillwatch", cmd.Command)
	assert.Equal(t, "goals", cmd.Text)
	assert.Equal(t, "U2147483697", cmd.UserID)
	assert.Equal(t, "T0001", cmd.WorkspaceID)
}

func TestClient_Messages(t *testing.T) {
	var posted []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/chat.postMessage":
			posted = append(posted, r.Form.Get("channel")+":"+r.Form.Get("text"))
			fmt.Fprint(w, `{"ok":true,"channel":"C1","ts":"1700000000.000100"}`)
		case "/users.lookupByEmail":
			fmt.Fprint(w, `{"ok":true,"user":{"id":"U42","profile":{"email":"jane@acme.io"}}}`)
		case "/users.info":
			fmt.Fprint(w, `{"ok":true,"user":{"id":"U42","profile":{"email":"jane@acme.io"}}}`)
		default:
			fmt.Fprint(w, `{"ok":false,"error":"unknown_method"}`)
		}
	}))
	defer server.Close()

	client := NewClient(Config{APIURL: server.URL + "/"})
	ctx := context.Background()

	require.NoError(t, client.PostMessage(ctx, "xoxb-token", "C1", "Review cycle published"))
	require.NoError(t, client.DirectMessage(ctx, "xoxb-token", "jane@acme.io", "New goal"))

	email, err := client.UserEmail(ctx, "xoxb-token", "U42")
	require.NoError(t, err)
	assert.Equal(t, "jane@acme.io", email)

	assert.Equal(t, []string{"C1:Review cycle published", "U42:New goal"}, posted)
}
