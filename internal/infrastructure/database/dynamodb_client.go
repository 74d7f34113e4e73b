package database

import (
	"context"
	"log"

	appconfig "mecanica_gateway/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client for the directory and OS tables.
//
// Relevant settings (local-friendly defaults):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
func ConnectDynamoDB(ctx context.Context, storage appconfig.StorageConfig) (*dynamodb.Client, error) {
	cfg, err := NewDynamoDBConfig(ctx, storage)
	if err != nil {
		log.Printf("[storage][dynamodb] failed to create config err=%v", err)
		return nil, err
	}
	log.Printf("[storage][dynamodb] client initialized region=%s local_endpoint=%t", cfg.Region, storage.DynamoDBEndpoint != "")
	return dynamodb.NewFromConfig(cfg), nil
}

func NewDynamoDBConfig(ctx context.Context, storage appconfig.StorageConfig) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(storage.AWSAccessKeyID, storage.AWSSecretAccessKey, "")

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(storage.AWSRegion),
		config.WithCredentialsProvider(creds),
	}

	if endpoint := storage.DynamoDBEndpoint; endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}
