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

const defaultProfilesTableName = "profiles"

type principalItem struct {
	Phone        string `dynamodbav:"phone"`
	ID           string `dynamodbav:"id"`
	DisplayName  string `dynamodbav:"display_name"`
	Role         string `dynamodbav:"role"`
	TenantID     string `dynamodbav:"tenant_id"`
	TechnicianID string `dynamodbav:"technician_id,omitempty"`
	Active       *bool  `dynamodbav:"active,omitempty"`
}

// PrincipalDynamoRepository is the identity directory backed by DynamoDB.
//
// Table requirements:
//   - PK: phone (string, digits only)
//
// Profiles with active=false are treated as not found.
type PrincipalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IIdentityDirectory = (*PrincipalDynamoRepository)(nil)

func NewPrincipalDynamoRepository(ddb *dynamodb.Client, tableName string) *PrincipalDynamoRepository {
	return &PrincipalDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultProfilesTableName),
	}
}

func (r *PrincipalDynamoRepository) FindByPhone(ctx context.Context, phone string) (entities.Principal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"phone": stringValue(phone),
		},
	})
	if err != nil {
		return entities.Principal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Principal{}, nil
	}

	var it principalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Principal{}, err
	}
	if it.Active != nil && !*it.Active {
		return entities.Principal{}, nil
	}
	return fromPrincipalItem(it), nil
}

func fromPrincipalItem(it principalItem) entities.Principal {
	return entities.Principal{
		ID:           it.ID,
		DisplayName:  it.DisplayName,
		Phone:        it.Phone,
		Role:         entities.ParseRole(it.Role),
		TenantID:     it.TenantID,
		TechnicianID: it.TechnicianID,
	}
}
