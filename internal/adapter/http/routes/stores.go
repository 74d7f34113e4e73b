package routes

import (
	"context"
	"fmt"
	"log"

	"mecanica_gateway/internal/adapter/persistence/postgres"
	"mecanica_gateway/internal/adapter/persistence/repository"
	"mecanica_gateway/internal/config"
	"mecanica_gateway/internal/infrastructure/database"
	"mecanica_gateway/internal/usecase/interfaces"
)

// stores bundles the read ports for the configured backend.
type stores struct {
	directory   interfaces.IIdentityDirectory
	orders      interfaces.IServiceOrderRepository
	commissions interfaces.ICommissionRepository
	payables    interfaces.IPayableRepository
	clients     interfaces.IClientRepository
	close       func()
}

func buildStores(ctx context.Context, storage config.StorageConfig) (*stores, error) {
	switch storage.Backend {
	case config.BackendPostgres:
		pool, err := database.NewPostgresPool(ctx, storage.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		tables := postgres.Tables{
			Profiles:      storage.ProfilesTable,
			ServiceOrders: storage.OrdersTable,
			Commissions:   storage.CommissionsTable,
			Payables:      storage.PayablesTable,
			Clients:       storage.ClientsTable,
		}
		log.Printf("[routes] directory backend=postgres")
		return &stores{
			directory:   postgres.NewPrincipalRepository(pool, tables),
			orders:      postgres.NewServiceOrderRepository(pool, tables),
			commissions: postgres.NewCommissionRepository(pool, tables),
			payables:    postgres.NewPayableRepository(pool, tables),
			clients:     postgres.NewClientRepository(pool, tables),
			close:       pool.Close,
		}, nil
	default:
		ddb, err := database.ConnectDynamoDB(ctx, storage)
		if err != nil {
			return nil, fmt.Errorf("connecting to dynamodb: %w", err)
		}
		log.Printf("[routes] directory backend=dynamodb endpoint=%q", storage.DynamoDBEndpoint)
		return &stores{
			directory:   repository.NewPrincipalDynamoRepository(ddb, storage.ProfilesTable),
			orders:      repository.NewServiceOrderDynamoRepository(ddb, storage.OrdersTable),
			commissions: repository.NewCommissionDynamoRepository(ddb, storage.CommissionsTable),
			payables:    repository.NewPayableDynamoRepository(ddb, storage.PayablesTable),
			clients:     repository.NewClientDynamoRepository(ddb, storage.ClientsTable),
			close:       func() {},
		}, nil
	}
}
