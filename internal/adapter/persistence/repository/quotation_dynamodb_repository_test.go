package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"vehicle_quotation/internal/domain/entities"
	"vehicle_quotation/internal/domain/money"
	"vehicle_quotation/internal/usecase/interfaces"
)

func sampleRecord() entities.QuotationRecord {
	created := time.Date(2026, 10, 15, 9, 30, 0, 123, time.UTC)
	return entities.QuotationRecord{
		ID:             "q-1",
		FinalPrice:     money.MustParse("23538.22016"),
		VehicleID:      "v-1",
		VariationID:    "var-1",
		OptionIDs:      []string{"o-1", "o-2"},
		CustomerID:     "c-1",
		CustomerEmail:  "mario@example.com",
		WelcomeApplied: true,
		Version:        3,
		CreatedAt:      created,
		UpdatedAt:      created.Add(time.Minute),
	}
}

func cancelled(codes ...string) error {
	reasons := make([]types.CancellationReason, 0, len(codes))
	for _, c := range codes {
		reasons = append(reasons, types.CancellationReason{Code: aws.String(c)})
	}
	return &types.TransactionCanceledException{CancellationReasons: reasons}
}

func TestQuotationDynamoRepository_GetByID(t *testing.T) {
	rec := sampleRecord()
	item, err := attributevalue.MarshalMap(toQuotationItem(rec))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	t.Run("found", func(t *testing.T) {
		repo := NewQuotationDynamoRepository(&fakeDynamo{
			getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
				if aws.ToString(in.TableName) != "quotations" || !aws.ToBool(in.ConsistentRead) {
					t.Fatalf("unexpected input %+v", in)
				}
				return &dynamodb.GetItemOutput{Item: item}, nil
			},
		}, "quotations", "customers")

		got, err := repo.GetByID(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != rec.ID || !got.FinalPrice.Equal(rec.FinalPrice) || got.Version != 3 || !got.WelcomeApplied {
			t.Fatalf("unexpected record %+v", got)
		}
		if !got.CreatedAt.Equal(rec.CreatedAt) || len(got.OptionIDs) != 2 || got.CustomerEmail != rec.CustomerEmail {
			t.Fatalf("unexpected record %+v", got)
		}
	})

	t.Run("missing is a zero value", func(t *testing.T) {
		repo := NewQuotationDynamoRepository(&fakeDynamo{
			getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
				return &dynamodb.GetItemOutput{}, nil
			},
		}, "quotations", "customers")

		got, err := repo.GetByID(context.Background(), "q-404")
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero value, got %+v %v", got, err)
		}
	})
}

func TestQuotationDynamoRepository_ItemOmitsEmptyIndexKey(t *testing.T) {
	item, err := attributevalue.MarshalMap(toQuotationItem(entities.QuotationRecord{ID: "q-1", Version: 1}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{"customer_email", "vehicle_id", "option_ids"} {
		if _, ok := item[key]; ok {
			t.Fatalf("expected %s to be omitted", key)
		}
	}
	if _, ok := item["final_price"].(*types.AttributeValueMemberS); !ok {
		t.Fatalf("expected final_price stored as a decimal string")
	}
}

func TestQuotationDynamoRepository_CreateClaimingWelcome(t *testing.T) {
	ctx := context.Background()

	t.Run("writes quotation and conditional customer update", func(t *testing.T) {
		repo := NewQuotationDynamoRepository(&fakeDynamo{
			transact: func(in *dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				if len(in.TransactItems) != 2 {
					t.Fatalf("expected 2 items, got %d", len(in.TransactItems))
				}
				put, upd := in.TransactItems[0].Put, in.TransactItems[1].Update
				if put == nil || aws.ToString(put.TableName) != "quotations" {
					t.Fatalf("unexpected put %+v", put)
				}
				if upd == nil || aws.ToString(upd.TableName) != "customers" || aws.ToString(upd.ConditionExpression) != "#first_quotation = :true" {
					t.Fatalf("unexpected update %+v", upd)
				}
				if key := upd.Key["id"].(*types.AttributeValueMemberS); key.Value != "c-1" {
					t.Fatalf("unexpected customer key %q", key.Value)
				}
				return &dynamodb.TransactWriteItemsOutput{}, nil
			},
		}, "quotations", "customers")

		if _, err := repo.CreateClaimingWelcome(ctx, sampleRecord(), "c-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "flag already cleared", err: cancelled("None", "ConditionalCheckFailed"), want: interfaces.ErrWelcomeAlreadyClaimed},
		{name: "duplicate quotation id", err: cancelled("ConditionalCheckFailed", "None"), want: interfaces.ErrStaleQuotation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := NewQuotationDynamoRepository(&fakeDynamo{
				transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
					return nil, tc.err
				},
			}, "quotations", "customers")

			if _, err := repo.CreateClaimingWelcome(ctx, sampleRecord(), "c-1"); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("other failures pass through", func(t *testing.T) {
		boom := errors.New("throttled")
		repo := NewQuotationDynamoRepository(&fakeDynamo{
			transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				return nil, boom
			},
		}, "quotations", "customers")

		if _, err := repo.CreateClaimingWelcome(ctx, sampleRecord(), "c-1"); !errors.Is(err, boom) {
			t.Fatalf("expected passthrough, got %v", err)
		}
	})
}

func TestQuotationDynamoRepository_Update(t *testing.T) {
	ctx := context.Background()
	rec := sampleRecord()

	t.Run("conditional on expected version", func(t *testing.T) {
		repo := NewQuotationDynamoRepository(&fakeDynamo{
			putItem: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
				if aws.ToString(in.ConditionExpression) != "attribute_exists(#id) AND #version = :expected" {
					t.Fatalf("unexpected condition %q", aws.ToString(in.ConditionExpression))
				}
				if v := in.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberN); v.Value != "2" {
					t.Fatalf("unexpected expected version %q", v.Value)
				}
				return &dynamodb.PutItemOutput{}, nil
			},
		}, "quotations", "customers")

		got, err := repo.Update(ctx, rec, 2)
		if err != nil || got.ID != rec.ID {
			t.Fatalf("unexpected result %+v %v", got, err)
		}
	})

	t.Run("stale version", func(t *testing.T) {
		repo := NewQuotationDynamoRepository(&fakeDynamo{
			putItem: func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
				return nil, &types.ConditionalCheckFailedException{Item: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: "q-1"},
				}}
			},
		}, "quotations", "customers")

		if _, err := repo.Update(ctx, rec, 2); !errors.Is(err, interfaces.ErrStaleQuotation) {
			t.Fatalf("expected stale, got %v", err)
		}
	})

	t.Run("missing record", func(t *testing.T) {
		repo := NewQuotationDynamoRepository(&fakeDynamo{
			putItem: func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
				return nil, &types.ConditionalCheckFailedException{}
			},
		}, "quotations", "customers")

		got, err := repo.Update(ctx, rec, 2)
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero value, got %+v %v", got, err)
		}
	})
}

func TestQuotationDynamoRepository_ListByCustomerEmail_Paginates(t *testing.T) {
	older := sampleRecord()
	older.ID = "q-old"
	older.CreatedAt = older.CreatedAt.Add(-time.Hour)
	newer := sampleRecord()

	page := func(r entities.QuotationRecord) map[string]types.AttributeValue {
		item, err := attributevalue.MarshalMap(toQuotationItem(r))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		return item
	}

	calls := 0
	repo := NewQuotationDynamoRepository(&fakeDynamo{
		query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			calls++
			if aws.ToString(in.IndexName) != QuotationsByCustomerEmailIndex {
				t.Fatalf("unexpected index %q", aws.ToString(in.IndexName))
			}
			if calls == 1 {
				return &dynamodb.QueryOutput{
					Items:            []map[string]types.AttributeValue{page(newer)},
					LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: newer.ID}},
				}, nil
			}
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{page(older)}}, nil
		},
	}, "quotations", "customers")

	got, err := repo.ListByCustomerEmail(context.Background(), "mario@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 || len(got) != 2 || got[0].ID != "q-old" || got[1].ID != "q-1" {
		t.Fatalf("unexpected result after %d calls: %+v", calls, got)
	}
}
