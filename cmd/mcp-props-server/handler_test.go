package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestHandlePostMessage(t *testing.T) {
	t.Setenv("SLACK_BOT_USER_OAUTH_ACCESS_TOKEN", "xoxb-test")
	t.Setenv("PROPS_BOT_CHANNEL_ID", "C1234567")

	var gotChannel, gotText string
	original := postMessage
	postMessage = func(ctx context.Context, token, channel, text string) error {
		gotChannel = channel
		gotText = text
		return nil
	}
	t.Cleanup(func() { postMessage = original })

	result, _, err := HandlePostMessage(context.Background(), &mcp.CallToolRequest{}, PostMessageParams{
		Text: "alice:coffee => 3",
	})
	if err != nil {
		t.Fatalf("HandlePostMessage returned error: %v", err)
	}
	if result.IsError {
		t.Fatalf("result marked as error: %+v", result)
	}
	if gotChannel != "C1234567" {
		t.Fatalf("channel = %q, want C1234567", gotChannel)
	}
	if gotText != "alice:coffee => 3" {
		t.Fatalf("text = %q", gotText)
	}
}

func TestHandlePostMessage_EmptyText(t *testing.T) {
	if _, _, err := HandlePostMessage(context.Background(), &mcp.CallToolRequest{}, PostMessageParams{}); err == nil {
		t.Fatal("HandlePostMessage should reject empty text")
	}
}

func TestHandlePostMessage_SlackFailure(t *testing.T) {
	t.Setenv("SLACK_BOT_USER_OAUTH_ACCESS_TOKEN", "xoxb-test")
	t.Setenv("PROPS_BOT_CHANNEL_ID", "C1234567")

	original := postMessage
	postMessage = func(ctx context.Context, token, channel, text string) error {
		return errors.New("channel_not_found")
	}
	t.Cleanup(func() { postMessage = original })

	result, _, err := HandlePostMessage(context.Background(), &mcp.CallToolRequest{}, PostMessageParams{
		Text: "hello",
	})
	if err != nil {
		t.Fatalf("HandlePostMessage returned error: %v", err)
	}
	if !result.IsError {
		t.Fatal("result should be marked as error on Slack failure")
	}
}

func TestHandleQueryProps(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/props/alice" {
			t.Errorf("path = %q, want /api/props/alice", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"target":"alice","props":{"coffee":3},"total":3}`))
	}))
	defer server.Close()
	t.Setenv("PROPS_API_URL", server.URL)

	result, _, err := HandleQueryProps(context.Background(), &mcp.CallToolRequest{}, QueryPropsParams{
		Target: "alice",
	})
	if err != nil {
		t.Fatalf("HandleQueryProps returned error: %v", err)
	}
	if result.IsError {
		t.Fatalf("result marked as error: %+v", result)
	}

	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("content type = %T, want *mcp.TextContent", result.Content[0])
	}
	if !strings.Contains(text.Text, `"total":3`) {
		t.Fatalf("content = %q, want props payload", text.Text)
	}
}

func TestHandleQueryProps_EmptyTarget(t *testing.T) {
	if _, _, err := HandleQueryProps(context.Background(), &mcp.CallToolRequest{}, QueryPropsParams{}); err == nil {
		t.Fatal("HandleQueryProps should reject empty target")
	}
}

func TestHandleQueryProps_APIUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()
	t.Setenv("PROPS_API_URL", server.URL)

	result, _, err := HandleQueryProps(context.Background(), &mcp.CallToolRequest{}, QueryPropsParams{
		Target: "alice",
	})
	if err != nil {
		t.Fatalf("HandleQueryProps returned error: %v", err)
	}
	if !result.IsError {
		t.Fatal("result should be marked as error on API failure")
	}
}
