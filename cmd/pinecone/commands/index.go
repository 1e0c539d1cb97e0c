package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/haivivi/pinecone-go/pkg/pinecone"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Index lifecycle management",
	Long: `Index lifecycle management.

List, describe, create, and ensure indexes on the control plane.`,
}

var indexListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all indexes",
	Long: `List all indexes in the project.

Examples:
  pinecone -c myctx index list
  pinecone -c myctx index list --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := getContext()
		if err != nil {
			return err
		}

		printVerbose("Using context: %s", ctx.Name)

		client, err := createClient(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		reqCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		indexes, err := client.Indexes.List(reqCtx)
		if err != nil {
			return fmt.Errorf("list indexes failed: %w", err)
		}

		if isJSONOutput() || getOutputFile() != "" {
			return outputResult(indexes, getOutputFile(), isJSONOutput())
		}

		if len(indexes) == 0 {
			printInfo("No indexes found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tDIMENSION\tMETRIC\tHOST\tREADY")
		for _, idx := range indexes {
			ready := ""
			if idx.Status != nil {
				ready = fmt.Sprintf("%t", idx.Status.Ready)
			}
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", idx.Name, idx.Dimension, idx.Metric, idx.Host, ready)
		}
		w.Flush()
		return nil
	},
}

var indexDescribeCmd = &cobra.Command{
	Use:   "describe <name>",
	Short: "Describe an index",
	Long: `Describe an index, including its data-plane host.

Examples:
  pinecone -c myctx index describe docs
  pinecone -c myctx index describe docs --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := getContext()
		if err != nil {
			return err
		}

		client, err := createClient(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		reqCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		desc, err := client.Indexes.Describe(reqCtx, args[0])
		if err != nil {
			return fmt.Errorf("describe index failed: %w", err)
		}

		return outputResult(desc, getOutputFile(), isJSONOutput())
	},
}

var indexCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new index",
	Long: `Create a new index from a request file.

Example request file (index.yaml):
  name: docs
  dimension: 1536
  metric: cosine
  spec:
    serverless:
      cloud: aws
      region: us-east-1

Examples:
  pinecone -c myctx index create -f index.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireInputFile(); err != nil {
			return err
		}

		ctx, err := getContext()
		if err != nil {
			return err
		}

		var req pinecone.CreateIndexRequest
		if err := loadRequest(getInputFile(), &req); err != nil {
			return err
		}

		printVerbose("Using context: %s", ctx.Name)
		printVerbose("Index name: %s", req.Name)

		client, err := createClient(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		reqCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		desc, err := client.Indexes.Create(reqCtx, &req)
		if err != nil {
			return fmt.Errorf("create index failed: %w", err)
		}

		printSuccess("Index %q created (host: %s)", desc.Name, desc.Host)
		return outputResult(desc, getOutputFile(), isJSONOutput())
	},
}

var indexEnsureCmd = &cobra.Command{
	Use:   "ensure <name>",
	Short: "Ensure an index exists",
	Long: `Ensure an index exists, creating it with the given dimension, metric
and serverless placement if missing.

Examples:
  pinecone -c myctx index ensure docs --dimension 1536
  pinecone -c myctx index ensure docs --dimension 768 --metric dotproduct --cloud aws --region us-west-2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := getContext()
		if err != nil {
			return err
		}

		dimension, err := cmd.Flags().GetInt("dimension")
		if err != nil {
			return fmt.Errorf("failed to read 'dimension' flag: %w", err)
		}
		metric, err := cmd.Flags().GetString("metric")
		if err != nil {
			return fmt.Errorf("failed to read 'metric' flag: %w", err)
		}
		cloud, err := cmd.Flags().GetString("cloud")
		if err != nil {
			return fmt.Errorf("failed to read 'cloud' flag: %w", err)
		}
		region, err := cmd.Flags().GetString("region")
		if err != nil {
			return fmt.Errorf("failed to read 'region' flag: %w", err)
		}

		client, err := createClient(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		reqCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		idx, err := client.Index(reqCtx, pinecone.IndexConfig{
			Name:      args[0],
			Dimension: dimension,
			Metric:    pinecone.Metric(metric),
			Cloud:     cloud,
			Region:    region,
		})
		if err != nil {
			return fmt.Errorf("ensure index failed: %w", err)
		}

		printSuccess("Index %q ready (host: %s)", idx.Name(), idx.Host())
		return nil
	},
}

func init() {
	indexEnsureCmd.Flags().Int("dimension", 0, "Vector dimension (used when creating)")
	indexEnsureCmd.Flags().String("metric", "cosine", "Similarity metric (cosine, euclidean, dotproduct)")
	indexEnsureCmd.Flags().String("cloud", "aws", "Serverless cloud provider")
	indexEnsureCmd.Flags().String("region", "us-east-1", "Serverless region")

	indexCmd.AddCommand(indexListCmd)
	indexCmd.AddCommand(indexDescribeCmd)
	indexCmd.AddCommand(indexCreateCmd)
	indexCmd.AddCommand(indexEnsureCmd)
}
