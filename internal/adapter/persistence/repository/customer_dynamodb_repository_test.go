package repository

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"vehicle_quotation/internal/domain/entities"
)

func TestCustomerDynamoRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	candidate := entities.Customer{ID: "c-new", Name: "Mario", Email: "mario@example.com", FirstQuotation: true, CreatedAt: now, UpdatedAt: now}

	t.Run("reserves the email with a guard item", func(t *testing.T) {
		repo := NewCustomerDynamoRepository(&fakeDynamo{
			transact: func(in *dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				if len(in.TransactItems) != 2 {
					t.Fatalf("expected 2 items, got %d", len(in.TransactItems))
				}
				guard := in.TransactItems[1].Put.Item
				if id := guard["id"].(*types.AttributeValueMemberS); id.Value != "email#mario@example.com" {
					t.Fatalf("unexpected guard id %q", id.Value)
				}
				if _, ok := guard["email"]; ok {
					t.Fatalf("guard item must stay out of the email index")
				}
				return &dynamodb.TransactWriteItemsOutput{}, nil
			},
		}, "customers")

		got, err := repo.Create(ctx, candidate)
		if err != nil || got.ID != "c-new" {
			t.Fatalf("unexpected result %+v %v", got, err)
		}
	})

	t.Run("taken email returns the existing customer", func(t *testing.T) {
		guard, _ := attributevalue.MarshalMap(emailGuardItem{ID: "email#mario@example.com", CustomerID: "c-old"})
		existing, _ := attributevalue.MarshalMap(toCustomerItem(entities.Customer{ID: "c-old", Email: "mario@example.com"}))
		var reads []string
		repo := NewCustomerDynamoRepository(&fakeDynamo{
			transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				return nil, cancelled("None", "ConditionalCheckFailed")
			},
			// The email index has not caught up with the winning write yet.
			query: func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
				return &dynamodb.QueryOutput{}, nil
			},
			getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
				if !aws.ToBool(in.ConsistentRead) {
					t.Fatalf("expected a consistent read")
				}
				id := in.Key["id"].(*types.AttributeValueMemberS).Value
				reads = append(reads, id)
				switch id {
				case "email#mario@example.com":
					return &dynamodb.GetItemOutput{Item: guard}, nil
				case "c-old":
					return &dynamodb.GetItemOutput{Item: existing}, nil
				}
				return &dynamodb.GetItemOutput{}, nil
			},
		}, "customers")

		got, err := repo.Create(ctx, candidate)
		if err != nil || got.ID != "c-old" {
			t.Fatalf("expected existing customer, got %+v %v", got, err)
		}
		if len(reads) != 2 || reads[0] != "email#mario@example.com" || reads[1] != "c-old" {
			t.Fatalf("unexpected reads %v", reads)
		}
	})

	t.Run("guard without its customer is an error", func(t *testing.T) {
		guard, _ := attributevalue.MarshalMap(emailGuardItem{ID: "email#mario@example.com", CustomerID: "c-gone"})
		repo := NewCustomerDynamoRepository(&fakeDynamo{
			transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				return nil, cancelled("None", "ConditionalCheckFailed")
			},
			getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
				if in.Key["id"].(*types.AttributeValueMemberS).Value == "email#mario@example.com" {
					return &dynamodb.GetItemOutput{Item: guard}, nil
				}
				return &dynamodb.GetItemOutput{}, nil
			},
		}, "customers")

		got, err := repo.Create(ctx, candidate)
		if err == nil || got.ID != "" {
			t.Fatalf("expected an error, got %+v %v", got, err)
		}
	})
}

func TestCustomerDynamoRepository_GetByID(t *testing.T) {
	created := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	item, _ := attributevalue.MarshalMap(toCustomerItem(entities.Customer{
		ID: "c-1", Name: "Anna", Surname: "Bianchi", Email: "anna@example.com", FirstQuotation: true, CreatedAt: created,
	}))
	repo := NewCustomerDynamoRepository(&fakeDynamo{
		getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: item}, nil
		},
	}, "customers")

	got, err := repo.GetByID(context.Background(), "c-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FullName() != "Anna Bianchi" || !got.FirstQuotation || !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected customer %+v", got)
	}
}
