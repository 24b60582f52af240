package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"vehicle_quotation/internal/domain/entities"
	"vehicle_quotation/internal/usecase/interfaces"
)

const (
	CustomersByEmailIndex = "email-index"

	// emailGuardPrefix marks the item that reserves an email. Guard items carry no
	// email attribute, so they never show up in the email index.
	emailGuardPrefix = "email#"
)

type customerItem struct {
	ID             string `dynamodbav:"id"`
	Name           string `dynamodbav:"name"`
	Surname        string `dynamodbav:"surname"`
	Email          string `dynamodbav:"email"`
	Phone          string `dynamodbav:"phone,omitempty"`
	FirstQuotation bool   `dynamodbav:"first_quotation"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

type emailGuardItem struct {
	ID         string `dynamodbav:"id"`
	CustomerID string `dynamodbav:"customer_id"`
}

// CustomerDynamoRepository persists customers.
//
// Table requirements:
//   - PK: id (string)
//   - GSI email-index: email
//
// Email uniqueness is enforced with a guard item written in the same transaction
// as the customer.

type CustomerDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb DynamoAPI, tableName string) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{ddb: ddb, tableName: tableName}
}

// Create stores c. When another customer already holds the email, that customer is
// returned instead.
func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	av, err := attributevalue.MarshalMap(toCustomerItem(c))
	if err != nil {
		return entities.Customer{}, err
	}
	guard, err := attributevalue.MarshalMap(emailGuardItem{ID: emailGuardPrefix + c.Email, CustomerID: c.ID})
	if err != nil {
		return entities.Customer{}, err
	}

	notExists := aws.String("attribute_not_exists(#id)")
	names := map[string]string{"#id": "id"}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      notExists,
				ExpressionAttributeNames: names,
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     guard,
				ConditionExpression:      notExists,
				ExpressionAttributeNames: names,
			}},
		},
	})
	if err == nil {
		return c, nil
	}
	if cancellationFailedAt(err, 1) {
		return r.emailOwner(ctx, c.Email)
	}
	return entities.Customer{}, err
}

// emailOwner follows the guard item to the customer holding email. Both reads are
// strongly consistent, unlike the email index which may lag a concurrent create.
func (r *CustomerDynamoRepository) emailOwner(ctx context.Context, email string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(emailGuardPrefix + email),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, fmt.Errorf("email %q reserved but guard item is missing", email)
	}

	var guard emailGuardItem
	if err := attributevalue.UnmarshalMap(out.Item, &guard); err != nil {
		return entities.Customer{}, err
	}
	owner, err := r.GetByID(ctx, guard.CustomerID)
	if err != nil {
		return entities.Customer{}, err
	}
	if owner.ID == "" {
		return entities.Customer{}, fmt.Errorf("email %q reserved by missing customer %q", email, guard.CustomerID)
	}
	return owner, nil
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func (r *CustomerDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Customer, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(CustomersByEmailIndex),
		KeyConditionExpression: aws.String("#email = :email"),
		ExpressionAttributeNames: map[string]string{
			"#email": "email",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Items) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func toCustomerItem(c entities.Customer) customerItem {
	return customerItem{
		ID:             c.ID,
		Name:           c.Name,
		Surname:        c.Surname,
		Email:          c.Email,
		Phone:          c.Phone,
		FirstQuotation: c.FirstQuotation,
		CreatedAt:      formatTime(c.CreatedAt),
		UpdatedAt:      formatTime(c.UpdatedAt),
	}
}

func fromCustomerItem(it customerItem) entities.Customer {
	return entities.Customer{
		ID:             it.ID,
		Name:           it.Name,
		Surname:        it.Surname,
		Email:          it.Email,
		Phone:          it.Phone,
		FirstQuotation: it.FirstQuotation,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
