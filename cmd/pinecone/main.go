// Package main provides the Pinecone CLI tool.
//
// Usage:
//
//	pinecone [flags] <service> <command> [args]
//
// Services:
//
//	index    - Index lifecycle management
//	vector   - Vector upsert, query, fetch, delete
//	rerank   - Document reranking
//	config   - Configuration management
//
// Configuration:
//
//	The CLI stores configuration in ~/.pinecone/
//	Use 'pinecone config' commands to manage contexts.
package main

import (
	"fmt"
	"os"

	"github.com/haivivi/pinecone-go/cmd/pinecone/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
