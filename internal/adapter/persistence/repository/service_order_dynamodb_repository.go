package repository

import (
	"context"

	"mecanica_gateway/internal/domain/entities"
	"mecanica_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultServiceOrdersTableName = "service_orders"

type serviceOrderItem struct {
	TenantID       string `dynamodbav:"tenant_id"`
	OrderNumber    string `dynamodbav:"order_number"`
	TechnicianID   string `dynamodbav:"technician_id,omitempty"`
	AccessPassword string `dynamodbav:"access_password,omitempty"`
	Status         string `dynamodbav:"status"`
	Device         string `dynamodbav:"device,omitempty"`
	ClientName     string `dynamodbav:"client_name,omitempty"`
	UpdatedAt      string `dynamodbav:"updated_at,omitempty"`
}

// ServiceOrderDynamoRepository reads service orders from DynamoDB.
//
// Table requirements:
//   - PK: tenant_id (string), SK: order_number (string)
//   - GSI: technician_id-index (PK: technician_id)
type ServiceOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client, tableName string) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultServiceOrdersTableName),
	}
}

func (r *ServiceOrderDynamoRepository) GetByNumber(ctx context.Context, tenantID, orderNumber string) (entities.ServiceOrderSummary, error) {
	// Key attributes cannot be empty strings.
	if tenantID == "" || orderNumber == "" {
		return entities.ServiceOrderSummary{}, nil
	}
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"tenant_id":    stringValue(tenantID),
			"order_number": stringValue(orderNumber),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrderSummary{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrderSummary{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrderSummary{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) ListOpenByTechnician(ctx context.Context, tenantID, technicianID string) ([]entities.ServiceOrderSummary, error) {
	if technicianID == "" {
		return nil, nil
	}
	items, err := queryItems[serviceOrderItem](ctx, r.ddb, &dynamodb.QueryInput{
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
	return openOrders(items), nil
}

func (r *ServiceOrderDynamoRepository) ListOpenByTenant(ctx context.Context, tenantID string) ([]entities.ServiceOrderSummary, error) {
	if tenantID == "" {
		return nil, nil
	}
	items, err := queryItems[serviceOrderItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("tenant_id = :tenant"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tenant": stringValue(tenantID),
		},
	})
	if err != nil {
		return nil, err
	}
	return openOrders(items), nil
}

func openOrders(items []serviceOrderItem) []entities.ServiceOrderSummary {
	out := make([]entities.ServiceOrderSummary, 0, len(items))
	for _, it := range items {
		if o := fromServiceOrderItem(it); o.IsOpen() {
			out = append(out, o)
		}
	}
	return out
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrderSummary {
	return entities.ServiceOrderSummary{
		OrderNumber:          it.OrderNumber,
		TenantID:             it.TenantID,
		AssignedTechnicianID: it.TechnicianID,
		AccessPassword:       it.AccessPassword,
		Status:               entities.ServiceOrderStatus(it.Status),
		Device:               it.Device,
		ClientName:           it.ClientName,
		UpdatedAt:            parseTimestamp(it.UpdatedAt),
	}
}
