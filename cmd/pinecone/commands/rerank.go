package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/haivivi/pinecone-go/pkg/pinecone"
)

var rerankCmd = &cobra.Command{
	Use:   "rerank",
	Short: "Rerank documents against a query",
	Long: `Rerank documents against a query.

Example request file (rerank.yaml):
  query: what is a vector database
  documents:
    - id: d1
      text: A vector database stores embeddings for similarity search.
    - id: d2
      text: Relational databases store rows and columns.
  top_n: 2

Examples:
  pinecone -c myctx rerank -f rerank.yaml
  pinecone -c myctx rerank -f rerank.yaml --model bge-reranker-v2-m3 --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireInputFile(); err != nil {
			return err
		}

		ctx, err := getContext()
		if err != nil {
			return err
		}

		var req pinecone.RerankRequest
		if err := loadRequest(getInputFile(), &req); err != nil {
			return err
		}

		model, err := cmd.Flags().GetString("model")
		if err != nil {
			return fmt.Errorf("failed to read 'model' flag: %w", err)
		}
		if model != "" {
			req.Model = model
		}

		printVerbose("Using context: %s", ctx.Name)
		printVerbose("Documents: %d", len(req.Documents))

		client, err := createClient(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		reqCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		resp, err := client.Inference.Rerank(reqCtx, &req)
		if err != nil {
			return fmt.Errorf("rerank failed: %w", err)
		}

		printVerbose("Rerank units billed: %d", resp.Usage.RerankUnits)
		return outputResult(resp, getOutputFile(), isJSONOutput())
	},
}

var rerankModelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List known rerank models",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, m := range pinecone.SupportedRerankModels() {
			fmt.Println(m)
		}
		return nil
	},
}

func init() {
	rerankCmd.Flags().String("model", "", "rerank model (overrides request file and context default)")

	rerankCmd.AddCommand(rerankModelsCmd)
}
