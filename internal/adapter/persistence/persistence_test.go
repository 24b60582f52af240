package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vehicle_quotation/internal/adapter/persistence/memory"
	"vehicle_quotation/internal/adapter/persistence/repository"
	"vehicle_quotation/internal/infrastructure/config"
)

func TestOpen(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		repos, err := Open(context.Background(), config.Config{StorageDriver: config.StorageMemory})
		require.NoError(t, err)
		assert.IsType(t, &memory.CatalogRepository{}, repos.Catalog)
		assert.IsType(t, &memory.CustomerRepository{}, repos.Customers)
		assert.IsType(t, &memory.QuotationRepository{}, repos.Quotations)
	})

	t.Run("dynamodb", func(t *testing.T) {
		repos, err := Open(context.Background(), config.Config{
			StorageDriver: config.StorageDynamoDB,
			AWS:           config.AWSConfig{Region: "us-east-1", AccessKeyID: "local", SecretAccessKey: "local", DynamoDBEndpoint: "http://localhost:8000"},
			Tables:        config.TablesConfig{Vehicles: "vehicles", Variations: "vehicle_variations", Options: "optionals", Customers: "customers", Quotations: "quotations"},
		})
		require.NoError(t, err)
		assert.IsType(t, &repository.QuotationDynamoRepository{}, repos.Quotations)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := Open(context.Background(), config.Config{StorageDriver: "sqlite"})
		assert.ErrorContains(t, err, "unknown storage driver")
	})
}
