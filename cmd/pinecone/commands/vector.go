package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/haivivi/pinecone-go/pkg/cli"
	"github.com/haivivi/pinecone-go/pkg/pinecone"
)

var vectorCmd = &cobra.Command{
	Use:   "vector",
	Short: "Vector operations",
	Long: `Vector operations on an index.

Upsert, query, fetch, and delete vectors through the data plane.
All commands require --index; --namespace scopes the operation.`,
}

// vector command flags
var (
	vectorIndexName string
	vectorNamespace string
)

// openIndex resolves the data-plane handle for the --index flag. The
// namespace falls back to the context's default_namespace setting.
func openIndex(reqCtx context.Context, ctx *cli.Context) (*pinecone.Client, *pinecone.Index, error) {
	if vectorIndexName == "" {
		return nil, nil, fmt.Errorf("--index is required")
	}

	namespace := vectorNamespace
	if namespace == "" {
		namespace = ctx.GetExtra("default_namespace")
	}

	client, err := createClient(ctx)
	if err != nil {
		return nil, nil, err
	}

	idx, err := client.Index(reqCtx, pinecone.IndexConfig{
		Name:      vectorIndexName,
		Namespace: namespace,
	})
	if err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("resolve index %q failed: %w", vectorIndexName, err)
	}

	return client, idx, nil
}

// upsertFile is the request file shape for vector upsert.
type upsertFile struct {
	Vectors []pinecone.Vector `json:"vectors" yaml:"vectors"`
}

var vectorUpsertCmd = &cobra.Command{
	Use:   "upsert",
	Short: "Upsert vectors",
	Long: `Upsert vectors from a request file.

Large sets are written in concurrent batches; tune with --batch-size and
--concurrency. Use --auto-id to assign a UUID to vectors without an id.

Example request file (vectors.yaml):
  vectors:
    - id: v1
      values: [0.1, 0.2, 0.3]
      metadata:
        genre: drama
    - id: v2
      values: [0.4, 0.5, 0.6]

Examples:
  pinecone -c myctx vector upsert --index docs -f vectors.yaml
  pinecone -c myctx vector upsert --index docs -f vectors.yaml --batch-size 100 --concurrency 4`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireInputFile(); err != nil {
			return err
		}

		ctx, err := getContext()
		if err != nil {
			return err
		}

		var file upsertFile
		if err := loadRequest(getInputFile(), &file); err != nil {
			return err
		}
		if len(file.Vectors) == 0 {
			return fmt.Errorf("request file contains no vectors")
		}

		autoID, err := cmd.Flags().GetBool("auto-id")
		if err != nil {
			return fmt.Errorf("failed to read 'auto-id' flag: %w", err)
		}
		batchSize, err := cmd.Flags().GetInt("batch-size")
		if err != nil {
			return fmt.Errorf("failed to read 'batch-size' flag: %w", err)
		}
		concurrency, err := cmd.Flags().GetInt("concurrency")
		if err != nil {
			return fmt.Errorf("failed to read 'concurrency' flag: %w", err)
		}

		if autoID {
			for i := range file.Vectors {
				if file.Vectors[i].ID == "" {
					file.Vectors[i].ID = uuid.NewString()
				}
			}
		}

		printVerbose("Using context: %s", ctx.Name)
		printVerbose("Upserting %d vectors", len(file.Vectors))

		reqCtx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		client, idx, err := openIndex(reqCtx, ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		var opts []pinecone.BatchOption
		if batchSize > 0 {
			opts = append(opts, pinecone.WithBatchSize(batchSize))
		}
		if concurrency > 0 {
			opts = append(opts, pinecone.WithMaxConcurrency(concurrency))
		}

		start := time.Now()
		if err := idx.UpsertBatch(reqCtx, file.Vectors, opts...); err != nil {
			return fmt.Errorf("upsert failed: %w", err)
		}
		elapsed := int(time.Since(start).Milliseconds())

		printSuccess("Upserted %s vectors in %s", cli.FormatCount(len(file.Vectors)), formatDuration(elapsed))
		return nil
	},
}

var vectorQueryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query similar vectors",
	Long: `Query the index for similar vectors.

Example request file (query.yaml):
  vector: [0.1, 0.2, 0.3]
  top_k: 5
  include_metadata: true
  filter:
    genre: drama

Examples:
  pinecone -c myctx vector query --index docs -f query.yaml
  pinecone -c myctx vector query --index docs -f query.yaml --json | jq '.matches'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireInputFile(); err != nil {
			return err
		}

		ctx, err := getContext()
		if err != nil {
			return err
		}

		var req pinecone.QueryRequest
		if err := loadRequest(getInputFile(), &req); err != nil {
			return err
		}

		printVerbose("Using context: %s", ctx.Name)

		reqCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		client, idx, err := openIndex(reqCtx, ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		resp, err := idx.Query(reqCtx, &req)
		if err != nil {
			return fmt.Errorf("query failed: %w", err)
		}

		return outputResult(resp, getOutputFile(), isJSONOutput())
	},
}

var vectorFetchCmd = &cobra.Command{
	Use:   "fetch <id>...",
	Short: "Fetch vectors by id",
	Long: `Fetch vectors by id. Ids that do not exist are absent from the result.

Examples:
  pinecone -c myctx vector fetch --index docs v1 v2 v3`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := getContext()
		if err != nil {
			return err
		}

		reqCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		client, idx, err := openIndex(reqCtx, ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		vectors, err := idx.Fetch(reqCtx, args)
		if err != nil {
			return fmt.Errorf("fetch failed: %w", err)
		}

		return outputResult(vectors, getOutputFile(), isJSONOutput())
	},
}

var vectorDeleteCmd = &cobra.Command{
	Use:   "delete [id]...",
	Short: "Delete vectors",
	Long: `Delete vectors by id, by metadata filter, or all at once.

A filter file holds the metadata filter directly:
  genre: drama
  year: 2020

Examples:
  pinecone -c myctx vector delete --index docs v1 v2
  pinecone -c myctx vector delete --index docs -f filter.yaml
  pinecone -c myctx vector delete --index docs --all`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := getContext()
		if err != nil {
			return err
		}

		deleteAll, err := cmd.Flags().GetBool("all")
		if err != nil {
			return fmt.Errorf("failed to read 'all' flag: %w", err)
		}

		req := pinecone.DeleteRequest{
			IDs:       args,
			DeleteAll: deleteAll,
		}

		if getInputFile() != "" {
			var filter map[string]any
			if err := loadRequest(getInputFile(), &filter); err != nil {
				return err
			}
			req.Filter = filter
		}

		if len(req.IDs) == 0 && req.Filter == nil && !req.DeleteAll {
			return fmt.Errorf("nothing to delete: pass ids, a filter file, or --all")
		}
		if req.DeleteAll {
			cli.PrintWarning("Deleting every vector in index %q", vectorIndexName)
		}

		printVerbose("Using context: %s", ctx.Name)

		reqCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		client, idx, err := openIndex(reqCtx, ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		if err := idx.Delete(reqCtx, &req); err != nil {
			return fmt.Errorf("delete failed: %w", err)
		}

		printSuccess("Delete completed")
		return nil
	},
}

func init() {
	vectorCmd.PersistentFlags().StringVar(&vectorIndexName, "index", "", "index name (required)")
	vectorCmd.PersistentFlags().StringVarP(&vectorNamespace, "namespace", "n", "", "vector namespace")

	vectorUpsertCmd.Flags().Bool("auto-id", false, "assign a UUID to vectors without an id")
	vectorUpsertCmd.Flags().Int("batch-size", 0, "vectors per upsert batch (default 200)")
	vectorUpsertCmd.Flags().Int("concurrency", 0, "maximum concurrent batch uploads (default 10)")

	vectorDeleteCmd.Flags().Bool("all", false, "delete every vector in the namespace")

	vectorCmd.AddCommand(vectorUpsertCmd)
	vectorCmd.AddCommand(vectorQueryCmd)
	vectorCmd.AddCommand(vectorFetchCmd)
	vectorCmd.AddCommand(vectorDeleteCmd)
}
