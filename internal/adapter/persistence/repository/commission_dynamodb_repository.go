package repository

import (
	"context"

	"mecanica_gateway/internal/domain/entities"
	"mecanica_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCommissionsTableName = "commissions"

type commissionItem struct {
	ID           string  `dynamodbav:"id"`
	TenantID     string  `dynamodbav:"tenant_id"`
	TechnicianID string  `dynamodbav:"technician_id"`
	OrderNumber  string  `dynamodbav:"order_number,omitempty"`
	Amount       float64 `dynamodbav:"amount"`
	Paid         bool    `dynamodbav:"paid"`
	PaidAt       string  `dynamodbav:"paid_at,omitempty"`
}

// CommissionDynamoRepository reads technician commissions.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: technician_id-index (PK: technician_id)
//   - GSI: tenant_id-index (PK: tenant_id)
type CommissionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICommissionRepository = (*CommissionDynamoRepository)(nil)

func NewCommissionDynamoRepository(ddb *dynamodb.Client, tableName string) *CommissionDynamoRepository {
	return &CommissionDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultCommissionsTableName),
	}
}

func (r *CommissionDynamoRepository) ListByTechnician(ctx context.Context, tenantID, technicianID string) ([]entities.CommissionRecord, error) {
	if technicianID == "" {
		return nil, nil
	}
	items, err := queryItems[commissionItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(technicianIDIndex),
		KeyConditionExpression: aws.String("technician_id = :tid"),
		FilterExpression:       aws.String("tenant_id = :tenant"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid":    stringValue(technicianID),
			":tenant": stringValue(tenantID),
		},
	})
	if err != nil {
		return nil, err
	}
	return fromCommissionItems(items), nil
}

func (r *CommissionDynamoRepository) ListPendingByTenant(ctx context.Context, tenantID string) ([]entities.CommissionRecord, error) {
	if tenantID == "" {
		return nil, nil
	}
	items, err := queryItems[commissionItem](ctx, r.ddb, &dynamodb.QueryInput{
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
	return fromCommissionItems(items), nil
}

func fromCommissionItems(items []commissionItem) []entities.CommissionRecord {
	out := make([]entities.CommissionRecord, 0, len(items))
	for _, it := range items {
		rec := entities.CommissionRecord{
			ID:           it.ID,
			TenantID:     it.TenantID,
			TechnicianID: it.TechnicianID,
			OrderNumber:  it.OrderNumber,
			Amount:       it.Amount,
			Paid:         it.Paid,
		}
		if paidAt := parseTimestamp(it.PaidAt); !paidAt.IsZero() {
			rec.PaidAt = &paidAt
		}
		out = append(out, rec)
	}
	return out
}
