package commands

import (
	"fmt"
	"time"

	"github.com/haivivi/pinecone-go/pkg/cli"
	"github.com/haivivi/pinecone-go/pkg/pinecone"
)

// loadRequest loads a request from a YAML or JSON file; "-" reads stdin
func loadRequest(path string, v any) error {
	if path == "-" {
		return cli.LoadRequestFromStdin(v)
	}
	return cli.LoadRequest(path, v)
}

// printSuccess prints a success message
func printSuccess(format string, args ...any) {
	cli.PrintSuccess(format, args...)
}

// printInfo prints an info message
func printInfo(format string, args ...any) {
	cli.PrintInfo(format, args...)
}

// requireInputFile checks if input file is provided
func requireInputFile() error {
	if getInputFile() == "" {
		return fmt.Errorf("input file is required, use -f flag")
	}
	return nil
}

// formatDuration formats milliseconds to human readable string
func formatDuration(ms int) string {
	return cli.FormatDuration(ms)
}

// createClient creates a Pinecone API client from context configuration
func createClient(ctx *cli.Context) (*pinecone.Client, error) {
	var opts []pinecone.Option

	// Use custom base URL if configured
	if ctx.BaseURL != "" {
		opts = append(opts, pinecone.WithBaseURL(ctx.BaseURL))
	}

	// Use custom timeout if configured
	if ctx.Timeout > 0 {
		opts = append(opts, pinecone.WithTimeout(time.Duration(ctx.Timeout)*time.Second))
	}

	// Use custom rerank model if configured
	if ctx.RerankModel != "" {
		opts = append(opts, pinecone.WithRerankModel(ctx.RerankModel))
	}

	return pinecone.NewClient(ctx.APIKey, opts...)
}
