package pinecone_test

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/haivivi/pinecone-go/pkg/pinecone"
)

func TestIndexSpec_MarshalServerless(t *testing.T) {
	spec := pinecone.IndexSpec{
		Serverless: &pinecone.ServerlessSpec{Cloud: "aws", Region: "us-east-1"},
	}

	data, err := json.Marshal(spec)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if _, ok := m["serverless"]; !ok {
		t.Errorf("missing serverless tag: %s", data)
	}
	if _, ok := m["pod"]; ok {
		t.Errorf("unexpected pod tag: %s", data)
	}
}

func TestIndexSpec_MarshalPod(t *testing.T) {
	spec := pinecone.IndexSpec{
		Pod: &pinecone.PodSpec{Environment: "us-east1-gcp", Replicas: 2, PodType: "p1.x1"},
	}

	data, err := json.Marshal(spec)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"pod":{"environment":"us-east1-gcp","replicas":2,"pod_type":"p1.x1"}}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}

func TestVector_RoundTrip(t *testing.T) {
	in := pinecone.Vector{
		ID:     "test1",
		Values: []float32{0.1, 0.2, 0.3, 0.4},
		SparseValues: &pinecone.SparseValues{
			Indices: []uint32{1, 3},
			Values:  []float32{0.5, 0.7},
		},
		Metadata: pinecone.Metadata{"content": "test content"},
	}

	data, err := json.Marshal(pinecone.UpsertRequest{Vectors: []pinecone.Vector{in}, Namespace: "ns"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	// A service echoing the same shape back parses field-for-field.
	var echo pinecone.UpsertRequest
	if err := json.Unmarshal(data, &echo); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(echo.Vectors) != 1 {
		t.Fatalf("len(vectors) = %d, want 1", len(echo.Vectors))
	}
	out := echo.Vectors[0]
	if out.ID != in.ID {
		t.Errorf("id = %q, want %q", out.ID, in.ID)
	}
	if !reflect.DeepEqual(out.Values, in.Values) {
		t.Errorf("values = %v, want %v", out.Values, in.Values)
	}
	if !reflect.DeepEqual(out.SparseValues, in.SparseValues) {
		t.Errorf("sparse_values = %+v, want %+v", out.SparseValues, in.SparseValues)
	}
	if out.Metadata["content"] != "test content" {
		t.Errorf("metadata = %v", out.Metadata)
	}
}

func TestVector_WireFieldNames(t *testing.T) {
	data, err := json.Marshal(pinecone.Vector{
		ID:           "a",
		Values:       []float32{1},
		SparseValues: &pinecone.SparseValues{Indices: []uint32{0}, Values: []float32{1}},
	})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var m map[string]json.RawMessage
	json.Unmarshal(data, &m)
	for _, field := range []string{"id", "values", "sparse_values"} {
		if _, ok := m[field]; !ok {
			t.Errorf("missing wire field %q in %s", field, data)
		}
	}
}

func TestQueryRequest_WireFieldNames(t *testing.T) {
	data, err := json.Marshal(pinecone.QueryRequest{
		Vector:          []float32{0.1},
		TopK:            3,
		IncludeValues:   true,
		IncludeMetadata: true,
		Filter:          map[string]any{"genre": "drama"},
	})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var m map[string]json.RawMessage
	json.Unmarshal(data, &m)
	for _, field := range []string{"vector", "top_k", "include_values", "include_metadata", "filter"} {
		if _, ok := m[field]; !ok {
			t.Errorf("missing wire field %q in %s", field, data)
		}
	}
}

func TestDeleteRequest_FilterStaysLocal(t *testing.T) {
	data, err := json.Marshal(pinecone.DeleteRequest{
		IDs:       []string{"a"},
		DeleteAll: true,
		Filter:    map[string]any{"genre": "drama"},
	})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var m map[string]json.RawMessage
	json.Unmarshal(data, &m)
	if _, ok := m["filter"]; ok {
		t.Errorf("filter must not travel on the delete body: %s", data)
	}
	if _, ok := m["delete_all"]; !ok {
		t.Errorf("missing delete_all field: %s", data)
	}
}

func TestDocument_FlattenRoundTrip(t *testing.T) {
	in := pinecone.Document{
		ID:   "1",
		Text: "Python is a programming language",
		Extra: map[string]any{
			"title": "Languages",
		},
	}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	// Extra fields are flattened alongside id and text.
	var m map[string]any
	json.Unmarshal(data, &m)
	if m["id"] != "1" || m["text"] != in.Text || m["title"] != "Languages" {
		t.Errorf("flattened document = %v", m)
	}

	var out pinecone.Document
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out.ID != in.ID || out.Text != in.Text {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
	if out.Extra["title"] != "Languages" {
		t.Errorf("extra = %v", out.Extra)
	}
}

func TestBatchError_Message(t *testing.T) {
	err := &pinecone.BatchError{
		Failures: []pinecone.BatchFailure{
			{Batch: 2, Start: 400, End: 600, Err: &pinecone.APIError{StatusCode: 429, Body: "slow down"}},
			{Batch: 5, Start: 1000, End: 1100, Err: &pinecone.APIError{StatusCode: 500, Body: "oops"}},
		},
	}

	msg := err.Error()
	for _, want := range []string{"2 batch(es) failed", "batch 2", "400-600", "batch 5", "status=429"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}
