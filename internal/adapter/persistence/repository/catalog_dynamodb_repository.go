package repository

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"vehicle_quotation/internal/domain/entities"
	"vehicle_quotation/internal/usecase/interfaces"
)

const VariationsByVehicleIndex = "vehicle_id-index"

type vehicleItem struct {
	ID        string `dynamodbav:"id"`
	Brand     string `dynamodbav:"brand"`
	Model     string `dynamodbav:"model"`
	BasePrice string `dynamodbav:"base_price"`
}

type variationItem struct {
	ID                   string `dynamodbav:"id"`
	VehicleID            string `dynamodbav:"vehicle_id"`
	EngineDisplacementCC int    `dynamodbav:"engine_displacement_cc"`
	RegistrationMonth    int    `dynamodbav:"registration_month"`
	RegistrationYear     int    `dynamodbav:"registration_year"`
	FuelSystemIt         string `dynamodbav:"fuel_system_it"`
	FuelSystemEn         string `dynamodbav:"fuel_system_en"`
}

type optionItem struct {
	ID            string  `dynamodbav:"id"`
	NameIt        string  `dynamodbav:"name_it"`
	NameEn        string  `dynamodbav:"name_en"`
	VehicleTypeIt string  `dynamodbav:"vehicle_type_it"`
	VehicleTypeEn string  `dynamodbav:"vehicle_type_en"`
	Price         *string `dynamodbav:"price,omitempty"`
}

// CatalogTables names the three catalog tables.
type CatalogTables struct {
	Vehicles   string
	Variations string
	Options    string
}

// CatalogDynamoRepository reads and writes the vehicle catalog.
//
// Table requirements:
//   - vehicles:   PK id
//   - variations: PK id, GSI vehicle_id-index (vehicle_id)
//   - optionals:  PK id

type CatalogDynamoRepository struct {
	ddb    DynamoAPI
	tables CatalogTables
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb DynamoAPI, tables CatalogTables) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{ddb: ddb, tables: tables}
}

func (r *CatalogDynamoRepository) GetVehicle(ctx context.Context, id string) (entities.Vehicle, error) {
	var it vehicleItem
	found, err := r.get(ctx, r.tables.Vehicles, id, &it)
	if err != nil || !found {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it), nil
}

func (r *CatalogDynamoRepository) GetVariation(ctx context.Context, id string) (entities.VehicleVariation, error) {
	var it variationItem
	found, err := r.get(ctx, r.tables.Variations, id, &it)
	if err != nil || !found {
		return entities.VehicleVariation{}, err
	}
	return fromVariationItem(it), nil
}

func (r *CatalogDynamoRepository) GetOption(ctx context.Context, id string) (entities.Option, error) {
	var it optionItem
	found, err := r.get(ctx, r.tables.Options, id, &it)
	if err != nil || !found {
		return entities.Option{}, err
	}
	return fromOptionItem(it), nil
}

func (r *CatalogDynamoRepository) ListVehicles(ctx context.Context) ([]entities.Vehicle, error) {
	var items []vehicleItem
	if err := scanAll(ctx, r.ddb, r.tables.Vehicles, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Vehicle, 0, len(items))
	for _, it := range items {
		out = append(out, fromVehicleItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CatalogDynamoRepository) ListVariationsByVehicle(ctx context.Context, vehicleID string) ([]entities.VehicleVariation, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tables.Variations),
		IndexName:              aws.String(VariationsByVehicleIndex),
		KeyConditionExpression: aws.String("#vehicle_id = :vehicle_id"),
		ExpressionAttributeNames: map[string]string{
			"#vehicle_id": "vehicle_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":vehicle_id": &types.AttributeValueMemberS{Value: vehicleID},
		},
	})

	out := []entities.VehicleVariation{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []variationItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromVariationItem(it))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CatalogDynamoRepository) ListOptions(ctx context.Context) ([]entities.Option, error) {
	var items []optionItem
	if err := scanAll(ctx, r.ddb, r.tables.Options, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Option, 0, len(items))
	for _, it := range items {
		out = append(out, fromOptionItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CatalogDynamoRepository) PutVehicle(ctx context.Context, v entities.Vehicle) error {
	return r.put(ctx, r.tables.Vehicles, toVehicleItem(v))
}

func (r *CatalogDynamoRepository) PutVariation(ctx context.Context, v entities.VehicleVariation) error {
	return r.put(ctx, r.tables.Variations, toVariationItem(v))
}

func (r *CatalogDynamoRepository) PutOption(ctx context.Context, o entities.Option) error {
	return r.put(ctx, r.tables.Options, toOptionItem(o))
}

func (r *CatalogDynamoRepository) get(ctx context.Context, table, id string, dst any) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key:       idKey(id),
	})
	if err != nil {
		return false, err
	}
	if len(out.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(out.Item, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (r *CatalogDynamoRepository) put(ctx context.Context, table string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      av,
	})
	return err
}

// scanAll reads every page of a table into dst, a pointer to a slice of items.
func scanAll(ctx context.Context, ddb DynamoAPI, table string, dst any) error {
	p := dynamodb.NewScanPaginator(ddb, &dynamodb.ScanInput{TableName: aws.String(table)})
	var all []map[string]types.AttributeValue
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return err
		}
		all = append(all, page.Items...)
	}
	return attributevalue.UnmarshalListOfMaps(all, dst)
}

func toVehicleItem(v entities.Vehicle) vehicleItem {
	return vehicleItem{ID: v.ID, Brand: v.Brand, Model: v.Model, BasePrice: moneyToString(v.BasePrice)}
}

func fromVehicleItem(it vehicleItem) entities.Vehicle {
	return entities.Vehicle{ID: it.ID, Brand: it.Brand, Model: it.Model, BasePrice: moneyFromString(it.BasePrice)}
}

func toVariationItem(v entities.VehicleVariation) variationItem {
	return variationItem(v)
}

func fromVariationItem(it variationItem) entities.VehicleVariation {
	return entities.VehicleVariation(it)
}

func toOptionItem(o entities.Option) optionItem {
	it := optionItem{
		ID:            o.ID,
		NameIt:        o.NameIt,
		NameEn:        o.NameEn,
		VehicleTypeIt: o.VehicleTypeIt,
		VehicleTypeEn: o.VehicleTypeEn,
	}
	if o.Price != nil {
		s := moneyToString(*o.Price)
		it.Price = &s
	}
	return it
}

func fromOptionItem(it optionItem) entities.Option {
	o := entities.Option{
		ID:            it.ID,
		NameIt:        it.NameIt,
		NameEn:        it.NameEn,
		VehicleTypeIt: it.VehicleTypeIt,
		VehicleTypeEn: it.VehicleTypeEn,
	}
	if it.Price != nil {
		p := moneyFromString(*it.Price)
		o.Price = &p
	}
	return o
}
