package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"vehicle_quotation/internal/adapter/persistence/repository"
	"vehicle_quotation/internal/infrastructure/config"
)

const tableActiveTimeout = 2 * time.Minute

// TableAPI is the subset of *dynamodb.Client used to bootstrap tables.
type TableAPI interface {
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// TableSpec describes one table: a string hash key "id" and optional string-keyed GSIs.
type TableSpec struct {
	Name    string
	Indexes map[string]string // index name -> hash key attribute
}

// Specs lists every table the service needs.
func Specs(t config.TablesConfig) []TableSpec {
	return []TableSpec{
		{Name: t.Vehicles},
		{Name: t.Variations, Indexes: map[string]string{repository.VariationsByVehicleIndex: "vehicle_id"}},
		{Name: t.Options},
		{Name: t.Customers, Indexes: map[string]string{repository.CustomersByEmailIndex: "email"}},
		{Name: t.Quotations, Indexes: map[string]string{repository.QuotationsByCustomerEmailIndex: "customer_email"}},
	}
}

// EnsureTables creates missing tables and waits for them to become active. Existing
// tables are left as they are. It returns the names of the tables it created.
func EnsureTables(ctx context.Context, ddb TableAPI, specs []TableSpec) ([]string, error) {
	var created []string
	for _, spec := range specs {
		_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(spec.Name)})
		if err == nil {
			continue
		}
		var notFound *types.ResourceNotFoundException
		if !errors.As(err, &notFound) {
			return created, fmt.Errorf("describe table %s: %w", spec.Name, err)
		}

		if _, err := ddb.CreateTable(ctx, createTableInput(spec)); err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				continue
			}
			return created, fmt.Errorf("create table %s: %w", spec.Name, err)
		}

		waiter := dynamodb.NewTableExistsWaiter(ddb)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(spec.Name)}, tableActiveTimeout); err != nil {
			return created, fmt.Errorf("wait for table %s: %w", spec.Name, err)
		}
		created = append(created, spec.Name)
	}
	return created, nil
}

func createTableInput(spec TableSpec) *dynamodb.CreateTableInput {
	attrs := []types.AttributeDefinition{
		{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
	}
	var gsis []types.GlobalSecondaryIndex
	for name, key := range spec.Indexes {
		attrs = append(attrs, types.AttributeDefinition{AttributeName: aws.String(key), AttributeType: types.ScalarAttributeTypeS})
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName: aws.String(name),
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(key), KeyType: types.KeyTypeHash},
			},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	return &dynamodb.CreateTableInput{
		TableName:              aws.String(spec.Name),
		AttributeDefinitions:   attrs,
		KeySchema:              []types.KeySchemaElement{{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash}},
		GlobalSecondaryIndexes: gsis,
		BillingMode:            types.BillingModePayPerRequest,
	}
}
