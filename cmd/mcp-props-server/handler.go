package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	slackclient "github.com/propsbot/props/internal/slack"
)

// postMessage posts to Slack; a variable so tests can inject a fake.
var postMessage = func(ctx context.Context, token, channel, text string) error {
	return slackclient.NewAPI(token).PostMessage(ctx, channel, text)
}

var httpClient = &http.Client{Timeout: 10 * time.Second}

// PostMessageParams defines the input parameters for post_props_message
type PostMessageParams struct {
	Text string `json:"text" jsonschema:"The message text to post to the props channel"`
}

// HandlePostMessage handles the post_props_message tool call
func HandlePostMessage(
	ctx context.Context,
	req *mcp.CallToolRequest,
	params PostMessageParams,
) (*mcp.CallToolResult, any, error) {
	log.Printf("[MCP Props Server] Received post_props_message request")

	if params.Text == "" {
		return nil, nil, fmt.Errorf("text parameter is required")
	}

	token := os.Getenv("SLACK_BOT_USER_OAUTH_ACCESS_TOKEN")
	channel := os.Getenv("PROPS_BOT_CHANNEL_ID")

	if err := postMessage(ctx, token, channel, params.Text); err != nil {
		log.Printf("[MCP Props Server] Failed to post message: %v", err)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{
					Text: fmt.Sprintf("Error: %v", err),
				},
			},
			IsError: true,
		}, nil, nil
	}

	resultText := fmt.Sprintf(`{
  "success": true,
  "channel": "%s",
  "text_length": %d
}`, channel, len(params.Text))

	log.Printf("[MCP Props Server] Posted %d characters to %s", len(params.Text), channel)

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: resultText},
		},
	}, nil, nil
}

// QueryPropsParams defines the input parameters for query_props
type QueryPropsParams struct {
	Target string `json:"target" jsonschema:"The target name whose props to look up"`
}

// HandleQueryProps handles the query_props tool call by asking the
// running props bot for the target's current values.
func HandleQueryProps(
	ctx context.Context,
	req *mcp.CallToolRequest,
	params QueryPropsParams,
) (*mcp.CallToolResult, any, error) {
	log.Printf("[MCP Props Server] Received query_props request for %q", params.Target)

	if params.Target == "" {
		return nil, nil, fmt.Errorf("target parameter is required")
	}

	base := os.Getenv("PROPS_API_URL")
	if base == "" {
		base = "http://localhost:5000"
	}

	url := fmt.Sprintf("%s/api/props/%s", base, params.Target)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("build props request: %w", err)
	}

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		log.Printf("[MCP Props Server] Props API request failed: %v", err)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("Error: %v", err)},
			},
			IsError: true,
		}, nil, nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read props response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("Error: props API returned %d", resp.StatusCode)},
			},
			IsError: true,
		}, nil, nil
	}
	if !json.Valid(body) {
		return nil, nil, fmt.Errorf("props API returned invalid JSON")
	}

	log.Printf("[MCP Props Server] Resolved props for %q", params.Target)

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(body)},
		},
	}, nil, nil
}
