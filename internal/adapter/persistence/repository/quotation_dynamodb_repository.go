package repository

import (
	"context"
	"errors"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"vehicle_quotation/internal/domain/entities"
	"vehicle_quotation/internal/usecase/interfaces"
)

const QuotationsByCustomerEmailIndex = "customer_email-index"

type quotationItem struct {
	ID             string   `dynamodbav:"id"`
	FinalPrice     string   `dynamodbav:"final_price"`
	VehicleID      string   `dynamodbav:"vehicle_id,omitempty"`
	VariationID    string   `dynamodbav:"variation_id,omitempty"`
	OptionIDs      []string `dynamodbav:"option_ids,omitempty"`
	CustomerID     string   `dynamodbav:"customer_id,omitempty"`
	CustomerEmail  string   `dynamodbav:"customer_email,omitempty"`
	WelcomeApplied bool     `dynamodbav:"welcome_applied"`
	Version        int64    `dynamodbav:"version"`
	CreatedAt      string   `dynamodbav:"created_at"`
	UpdatedAt      string   `dynamodbav:"updated_at"`
}

// QuotationDynamoRepository persists quotation records.
//
// Table requirements:
//   - PK: id (string)
//   - GSI customer_email-index: customer_email
//
// Records without a customer omit customer_email and stay out of the index.
// Updates are conditional on the stored version.

type QuotationDynamoRepository struct {
	ddb            DynamoAPI
	tableName      string
	customersTable string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb DynamoAPI, tableName, customersTable string) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{ddb: ddb, tableName: tableName, customersTable: customersTable}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.QuotationRecord) (entities.QuotationRecord, error) {
	av, err := attributevalue.MarshalMap(toQuotationItem(q))
	if err != nil {
		return entities.QuotationRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.QuotationRecord{}, interfaces.ErrStaleQuotation
		}
		return entities.QuotationRecord{}, err
	}
	return q, nil
}

// CreateClaimingWelcome writes the quotation and clears the customer's
// first_quotation flag in one transaction. The customer update is conditional on
// the flag still being true.
func (r *QuotationDynamoRepository) CreateClaimingWelcome(ctx context.Context, q entities.QuotationRecord, customerID string) (entities.QuotationRecord, error) {
	av, err := attributevalue.MarshalMap(toQuotationItem(q))
	if err != nil {
		return entities.QuotationRecord{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                av,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			}},
			{Update: &types.Update{
				TableName:           aws.String(r.customersTable),
				Key:                 idKey(customerID),
				UpdateExpression:    aws.String("SET #first_quotation = :false, #updated_at = :updated_at"),
				ConditionExpression: aws.String("#first_quotation = :true"),
				ExpressionAttributeNames: map[string]string{
					"#first_quotation": "first_quotation",
					"#updated_at":      "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":true":       &types.AttributeValueMemberBOOL{Value: true},
					":false":      &types.AttributeValueMemberBOOL{Value: false},
					":updated_at": &types.AttributeValueMemberS{Value: formatTime(q.CreatedAt)},
				},
			}},
		},
	})
	switch {
	case err == nil:
		return q, nil
	case cancellationFailedAt(err, 1):
		return entities.QuotationRecord{}, interfaces.ErrWelcomeAlreadyClaimed
	case cancellationFailedAt(err, 0):
		return entities.QuotationRecord{}, interfaces.ErrStaleQuotation
	default:
		return entities.QuotationRecord{}, err
	}
}

// Update overwrites the record when the stored version equals expectedVersion.
// A missing record yields a zero value.
func (r *QuotationDynamoRepository) Update(ctx context.Context, q entities.QuotationRecord, expectedVersion int64) (entities.QuotationRecord, error) {
	av, err := attributevalue.MarshalMap(toQuotationItem(q))
	if err != nil {
		return entities.QuotationRecord{}, err
	}
	expected, err := attributevalue.Marshal(expectedVersion)
	if err != nil {
		return entities.QuotationRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": expected,
		},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) == 0 {
				return entities.QuotationRecord{}, nil
			}
			return entities.QuotationRecord{}, interfaces.ErrStaleQuotation
		}
		return entities.QuotationRecord{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.QuotationRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuotationRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.QuotationRecord{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QuotationRecord{}, err
	}
	return fromQuotationItem(it), nil
}

func (r *QuotationDynamoRepository) List(ctx context.Context) ([]entities.QuotationRecord, error) {
	var items []quotationItem
	if err := scanAll(ctx, r.ddb, r.tableName, &items); err != nil {
		return nil, err
	}
	return sortedRecords(items), nil
}

func (r *QuotationDynamoRepository) ListByCustomerEmail(ctx context.Context, email string) ([]entities.QuotationRecord, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(QuotationsByCustomerEmailIndex),
		KeyConditionExpression: aws.String("#customer_email = :customer_email"),
		ExpressionAttributeNames: map[string]string{
			"#customer_email": "customer_email",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":customer_email": &types.AttributeValueMemberS{Value: email},
		},
	})

	var items []quotationItem
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var pageItems []quotationItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &pageItems); err != nil {
			return nil, err
		}
		items = append(items, pageItems...)
	}
	return sortedRecords(items), nil
}

// sortedRecords returns records oldest first.
func sortedRecords(items []quotationItem) []entities.QuotationRecord {
	out := make([]entities.QuotationRecord, 0, len(items))
	for _, it := range items {
		out = append(out, fromQuotationItem(it))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func toQuotationItem(q entities.QuotationRecord) quotationItem {
	return quotationItem{
		ID:             q.ID,
		FinalPrice:     moneyToString(q.FinalPrice),
		VehicleID:      q.VehicleID,
		VariationID:    q.VariationID,
		OptionIDs:      q.OptionIDs,
		CustomerID:     q.CustomerID,
		CustomerEmail:  q.CustomerEmail,
		WelcomeApplied: q.WelcomeApplied,
		Version:        q.Version,
		CreatedAt:      formatTime(q.CreatedAt),
		UpdatedAt:      formatTime(q.UpdatedAt),
	}
}

func fromQuotationItem(it quotationItem) entities.QuotationRecord {
	return entities.QuotationRecord{
		ID:             it.ID,
		FinalPrice:     moneyFromString(it.FinalPrice),
		VehicleID:      it.VehicleID,
		VariationID:    it.VariationID,
		OptionIDs:      it.OptionIDs,
		CustomerID:     it.CustomerID,
		CustomerEmail:  it.CustomerEmail,
		WelcomeApplied: it.WelcomeApplied,
		Version:        it.Version,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
