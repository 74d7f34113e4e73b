package repository

import (
	"context"
	"sort"

	"mecanica_gateway/internal/domain/entities"
	"mecanica_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultClientsTableName = "clients"

type clientItem struct {
	ID        string `dynamodbav:"id"`
	TenantID  string `dynamodbav:"tenant_id"`
	Name      string `dynamodbav:"name"`
	Phone     string `dynamodbav:"phone,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// ClientDynamoRepository reads the shop client base.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tenant_id-index (PK: tenant_id)
type ClientDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb *dynamodb.Client, tableName string) *ClientDynamoRepository {
	return &ClientDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultClientsTableName),
	}
}

func (r *ClientDynamoRepository) tenantQuery(tenantID string) *dynamodb.QueryInput {
	return &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(tenantIDIndex),
		KeyConditionExpression: aws.String("tenant_id = :tenant"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tenant": stringValue(tenantID),
		},
	}
}

func (r *ClientDynamoRepository) CountByTenant(ctx context.Context, tenantID string) (int, error) {
	if tenantID == "" {
		return 0, nil
	}
	in := r.tenantQuery(tenantID)
	in.Select = types.SelectCount

	p := dynamodb.NewQueryPaginator(r.ddb, in)
	total := 0
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		total += int(page.Count)
	}
	return total, nil
}

// ListRecentByTenant returns the newest clients first. The GSI has no sort
// key, so ordering happens here.
func (r *ClientDynamoRepository) ListRecentByTenant(ctx context.Context, tenantID string, limit int) ([]entities.ClientRecord, error) {
	if tenantID == "" || limit <= 0 {
		return nil, nil
	}
	items, err := queryItems[clientItem](ctx, r.ddb, r.tenantQuery(tenantID))
	if err != nil {
		return nil, err
	}

	out := make([]entities.ClientRecord, 0, len(items))
	for _, it := range items {
		out = append(out, entities.ClientRecord{
			ID:        it.ID,
			TenantID:  it.TenantID,
			Name:      it.Name,
			Phone:     it.Phone,
			CreatedAt: parseTimestamp(it.CreatedAt),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
