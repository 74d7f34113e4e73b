package repository

import (
	"context"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	technicianIDIndex = "technician_id-index"
	tenantIDIndex     = "tenant_id-index"
)

func tableOrDefault(name, def string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return def
}

// queryItems follows LastEvaluatedKey until the query is exhausted.
func queryItems[I any](ctx context.Context, ddb dynamodb.QueryAPIClient, in *dynamodb.QueryInput) ([]I, error) {
	p := dynamodb.NewQueryPaginator(ddb, in)
	var out []I
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it I
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, it)
		}
	}
	return out, nil
}

func stringValue(v string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: v}
}

// parseTimestamp accepts RFC3339 (with or without fraction) and plain dates.
func parseTimestamp(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
