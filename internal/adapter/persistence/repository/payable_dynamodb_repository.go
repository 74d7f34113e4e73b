package repository

import (
	"context"

	"mecanica_gateway/internal/domain/entities"
	"mecanica_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPayablesTableName = "payables"

type payableItem struct {
	ID          string  `dynamodbav:"id"`
	TenantID    string  `dynamodbav:"tenant_id"`
	Description string  `dynamodbav:"description"`
	Supplier    string  `dynamodbav:"supplier,omitempty"`
	Amount      float64 `dynamodbav:"amount"`
	DueDate     string  `dynamodbav:"due_date"`
	Paid        bool    `dynamodbav:"paid"`
}

// PayableDynamoRepository reads accounts payable for the finance context.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tenant_id-index (PK: tenant_id)
type PayableDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPayableRepository = (*PayableDynamoRepository)(nil)

func NewPayableDynamoRepository(ddb *dynamodb.Client, tableName string) *PayableDynamoRepository {
	return &PayableDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultPayablesTableName),
	}
}

func (r *PayableDynamoRepository) ListPendingByTenant(ctx context.Context, tenantID string) ([]entities.Payable, error) {
	if tenantID == "" {
		return nil, nil
	}
	items, err := queryItems[payableItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(tenantIDIndex),
		KeyConditionExpression: aws.String("tenant_id = :tenant"),
		FilterExpression:       aws.String("#paid = :false"),
		ExpressionAttributeNames: map[string]string{
			"#paid": "paid",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tenant": stringValue(tenantID),
			":false":  &types.AttributeValueMemberBOOL{Value: false},
		},
	})
	if err != nil {
		return nil, err
	}

	out := make([]entities.Payable, 0, len(items))
	for _, it := range items {
		out = append(out, entities.Payable{
			ID:          it.ID,
			TenantID:    it.TenantID,
			Description: it.Description,
			Supplier:    it.Supplier,
			Amount:      it.Amount,
			DueDate:     parseTimestamp(it.DueDate),
			Paid:        it.Paid,
		})
	}
	return out, nil
}
