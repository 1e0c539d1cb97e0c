// Package cli provides common utilities for the pinecone command-line tool.
//
// This package includes:
//   - Configuration management (named contexts)
//   - Output formatting (YAML, JSON, raw)
//   - Request file loading (YAML/JSON)
//
// Configuration is stored in ~/.pinecone/config.yaml, supporting multiple
// contexts similar to kubectl.
//
// Example usage:
//
//	cfg, err := cli.LoadConfig()
//
//	ctx, err := cfg.ResolveContext("")
//
//	cli.Output(result, cli.OutputOptions{
//	    Format: cli.FormatJSON,
//	    File:   outputPath,
//	})
package cli
