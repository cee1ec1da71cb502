package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	// 1. Validate required environment variables
	requiredEnv := []string{"SLACK_BOT_USER_OAUTH_ACCESS_TOKEN", "PROPS_BOT_CHANNEL_ID"}
	for _, env := range requiredEnv {
		if os.Getenv(env) == "" {
			log.Fatalf("[MCP Props Server] Missing required environment variable: %s", env)
		}
	}

	log.Println("[MCP Props Server] Starting Props MCP Server v1.0.0")
	log.Printf("[MCP Props Server] Props channel: %s", os.Getenv("PROPS_BOT_CHANNEL_ID"))

	// 2. Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "props-server",
		Version: "v1.0.0",
	}, nil)

	// 3. Register tools
	postTool := &mcp.Tool{
		Name:        "post_props_message",
		Description: "Post a message to the props channel",
	}
	mcp.AddTool(server, postTool, HandlePostMessage)
	log.Println("[MCP Props Server] Registered tool: post_props_message")

	queryTool := &mcp.Tool{
		Name:        "query_props",
		Description: "Look up the current props values for a target via the props bot API",
	}
	mcp.AddTool(server, queryTool, HandleQueryProps)
	log.Println("[MCP Props Server] Registered tool: query_props")

	// 4. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("[MCP Props Server] Received shutdown signal")
		cancel()
	}()

	// 5. Start server with stdio transport
	log.Println("[MCP Props Server] Starting on stdio transport...")
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("[MCP Props Server] Server error: %v", err)
	}
	log.Println("[MCP Props Server] Server stopped gracefully")
}
