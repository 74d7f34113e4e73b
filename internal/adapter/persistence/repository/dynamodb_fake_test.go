package repository

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// fakeDynamo answers DynamoDB JSON-protocol calls with canned bodies, one per
// call in order, and records every request body.
type fakeDynamo struct {
	mu        sync.Mutex
	responses []string
	calls     []fakeCall
}

type fakeCall struct {
	Operation string
	Body      map[string]any
}

func (f *fakeDynamo) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)
	op := strings.TrimPrefix(r.Header.Get("X-Amz-Target"), "DynamoDB_20120810.")

	f.mu.Lock()
	f.calls = append(f.calls, fakeCall{Operation: op, Body: body})
	resp := "{}"
	if len(f.responses) > 0 {
		resp, f.responses = f.responses[0], f.responses[1:]
	}
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/x-amz-json-1.0")
	_, _ = w.Write([]byte(resp))
}

func newFakeDynamo(t *testing.T, responses ...string) (*dynamodb.Client, *fakeDynamo) {
	t.Helper()
	fake := &fakeDynamo{responses: responses}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client := dynamodb.New(dynamodb.Options{
		Region:           "us-east-1",
		BaseEndpoint:     aws.String(srv.URL),
		Credentials:      credentials.NewStaticCredentialsProvider("local", "local", ""),
		RetryMaxAttempts: 1,
	})
	return client, fake
}
