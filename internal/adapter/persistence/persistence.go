// Package persistence selects the storage driver configured for the process.
package persistence

import (
	"context"
	"fmt"

	"vehicle_quotation/internal/adapter/persistence/memory"
	"vehicle_quotation/internal/adapter/persistence/repository"
	"vehicle_quotation/internal/infrastructure/config"
	"vehicle_quotation/internal/infrastructure/database"
	"vehicle_quotation/internal/usecase/interfaces"
)

// Repositories groups the three repositories a driver provides.
type Repositories struct {
	Catalog    interfaces.ICatalogRepository
	Customers  interfaces.ICustomerRepository
	Quotations interfaces.IQuotationRepository
}

// Open builds the repositories for cfg.StorageDriver. The memory driver starts empty
// and lives as long as the process.
func Open(ctx context.Context, cfg config.Config) (Repositories, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		catalog, customers, quotations := memory.NewStore().Repositories()
		return Repositories{Catalog: catalog, Customers: customers, Quotations: quotations}, nil
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
		if err != nil {
			return Repositories{}, err
		}
		return DynamoRepositories(ddb, cfg.Tables), nil
	default:
		return Repositories{}, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// DynamoRepositories wires the DynamoDB repositories onto an existing client.
func DynamoRepositories(ddb repository.DynamoAPI, t config.TablesConfig) Repositories {
	return Repositories{
		Catalog: repository.NewCatalogDynamoRepository(ddb, repository.CatalogTables{
			Vehicles:   t.Vehicles,
			Variations: t.Variations,
			Options:    t.Options,
		}),
		Customers:  repository.NewCustomerDynamoRepository(ddb, t.Customers),
		Quotations: repository.NewQuotationDynamoRepository(ddb, t.Quotations, t.Customers),
	}
}
