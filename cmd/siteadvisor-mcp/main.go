package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// analyzeRequest mirrors the siteadvisor API request model.
type analyzeRequest struct {
	URL string `json:"url"`
}

// analyzeResponse mirrors the siteadvisor API response model.
type analyzeResponse struct {
	URL          string `json:"url"`
	Improvements []struct {
		Category string `json:"category"`
		Icon     string `json:"icon"`
		Priority string `json:"priority"`
		Items    []struct {
			Text   string `json:"text"`
			Source string `json:"source"`
		} `json:"items"`
	} `json:"improvements"`
	Error string `json:"error"`
}

func main() {
	apiURL := os.Getenv("SITEADVISOR_API_URL")
	if apiURL == "" {
		apiURL = "http://127.0.0.1:8080"
	}

	s := server.NewMCPServer(
		"siteadvisor",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	analyzeTool := mcp.NewTool("analyze_site",
		mcp.WithDescription("Analyze a web page and return categorized improvement suggestions (SEO, performance, accessibility, UX, WordPress, content)."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("The URL of the web page to analyze"),
		),
	)

	s.AddTool(analyzeTool, handleAnalyzeSite(apiURL))

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func handleAnalyzeSite(apiURL string) server.ToolHandlerFunc {
	client := &http.Client{Timeout: 30 * time.Second}

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		url, err := request.RequireString("url")
		if err != nil {
			return mcp.NewToolResultError("url is required"), nil
		}

		body, err := json.Marshal(analyzeRequest{URL: url})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal request: %v", err)), nil
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL+"/api/v1/analyze", bytes.NewReader(body))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to create request: %v", err)), nil
		}
		httpReq.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(httpReq)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("API request failed: %v", err)), nil
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to read response: %v", err)), nil
		}

		var analyzeResp analyzeResponse
		if err := json.Unmarshal(respBody, &analyzeResp); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to parse response: %v", err)), nil
		}

		if analyzeResp.Error != "" {
			return mcp.NewToolResultError(analyzeResp.Error), nil
		}

		// Format groups as readable text.
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("Improvement suggestions for %s:\n\n", analyzeResp.URL))
		for _, group := range analyzeResp.Improvements {
			sb.WriteString(fmt.Sprintf("%s %s (%s priority)\n", group.Icon, group.Category, group.Priority))
			for _, item := range group.Items {
				sb.WriteString(fmt.Sprintf("  - %s (%s)\n", item.Text, item.Source))
			}
			sb.WriteString("\n")
		}

		return mcp.NewToolResultText(sb.String()), nil
	}
}
