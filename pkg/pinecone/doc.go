// Package pinecone provides a Go client for the Pinecone vector database API.
//
// The client covers the control plane (index lifecycle), the data plane
// (vector upsert, query, fetch, delete against a per-index host), and the
// rerank inference endpoint.
//
// # Basic Usage
//
//	client, err := pinecone.NewClient("your-api-key")
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	// Control plane: create an index
//	desc, err := client.Indexes.Create(ctx, &pinecone.CreateIndexRequest{
//	    Name:      "products",
//	    Dimension: 1536,
//	    Metric:    pinecone.MetricCosine,
//	    Spec: pinecone.IndexSpec{
//	        Serverless: &pinecone.ServerlessSpec{Cloud: "aws", Region: "us-east-1"},
//	    },
//	})
//
// # Data Plane
//
// Data-plane operations go through an index handle. The handle resolves the
// index host once at construction: the index is described, and created if it
// does not exist yet.
//
//	idx, err := client.Index(ctx, pinecone.IndexConfig{
//	    Name:      "products",
//	    Dimension: 1536,
//	    Metric:    pinecone.MetricCosine,
//	    Region:    "us-east-1",
//	})
//	if err != nil {
//	    return err
//	}
//
//	count, err := idx.Upsert(ctx, vectors)
//
//	res, err := idx.Query(ctx, &pinecone.QueryRequest{
//	    Vector:          embedding,
//	    TopK:            10,
//	    IncludeMetadata: true,
//	})
//
// Large vector sets go through UpsertBatch, which chunks the input and bounds
// the number of uploads in flight:
//
//	err := idx.UpsertBatch(ctx, vectors,
//	    pinecone.WithBatchSize(200),
//	    pinecone.WithMaxConcurrency(10),
//	)
//
// # Reranking
//
//	res, err := client.Inference.Rerank(ctx, &pinecone.RerankRequest{
//	    Query: "what is a vector database?",
//	    Documents: []pinecone.Document{
//	        {ID: "1", Text: "Pinecone is a vector database."},
//	        {ID: "2", Text: "Go is a programming language."},
//	    },
//	})
//
// # Error Handling
//
// Every failure is one of a small set of typed errors: *ArgumentError for
// caller mistakes caught before any request is sent, *IndexNotFoundError for
// a 404 on a named index, *APIError for any other non-2xx response,
// *DecodeError for a 2xx body that does not match the expected shape, and
// *BatchError for aggregated UpsertBatch failures.
//
//	if apiErr, ok := pinecone.AsAPIError(err); ok && apiErr.IsRateLimit() {
//	    // back off and retry at the call site; the client never retries
//	}
package pinecone
