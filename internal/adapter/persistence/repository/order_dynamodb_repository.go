package repository

import (
	"context"
	"os"
	"strconv"
	"time"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

type billingAddressItem struct {
	Street1   string `dynamodbav:"street_1"`
	Street2   string `dynamodbav:"street_2,omitempty"`
	Street3   string `dynamodbav:"street_3,omitempty"`
	Street4   string `dynamodbav:"street_4,omitempty"`
	City      string `dynamodbav:"city"`
	Region    string `dynamodbav:"region"`
	Postcode  string `dynamodbav:"postcode"`
	Country   string `dynamodbav:"country"`
	Telephone string `dynamodbav:"telephone"`
}

type orderItem struct {
	ID             string              `dynamodbav:"id"`
	GrandTotal     string              `dynamodbav:"grand_total"`
	CustomerName   string              `dynamodbav:"customer_name"`
	CustomerEmail  string              `dynamodbav:"customer_email"`
	CustomerTaxvat string              `dynamodbav:"customer_taxvat,omitempty"`
	CustomerDob    string              `dynamodbav:"customer_dob,omitempty"`
	CustomerGender string              `dynamodbav:"customer_gender,omitempty"`
	BillingAddress *billingAddressItem `dynamodbav:"billing_address,omitempty"`
	Status         string              `dynamodbav:"status"`
	CreatedAt      string              `dynamodbav:"created_at"`
	UpdatedAt      string              `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The payment pipeline reads orders through GetByID only; writes come
// from the storefront intake endpoint.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	it := toOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:             o.ID,
		GrandTotal:     floatToString(o.GrandTotal),
		CustomerName:   o.CustomerName,
		CustomerEmail:  o.CustomerEmail,
		CustomerTaxvat: o.CustomerTaxvat,
		CustomerDob:    o.CustomerDob,
		CustomerGender: o.CustomerGender,
		Status:         string(o.Status),
		CreatedAt:      o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if o.BillingAddress != nil {
		it.BillingAddress = &billingAddressItem{
			Street1:   o.BillingAddress.Street1,
			Street2:   o.BillingAddress.Street2,
			Street3:   o.BillingAddress.Street3,
			Street4:   o.BillingAddress.Street4,
			City:      o.BillingAddress.City,
			Region:    o.BillingAddress.Region,
			Postcode:  o.BillingAddress.Postcode,
			Country:   o.BillingAddress.Country,
			Telephone: o.BillingAddress.Telephone,
		}
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	total, _ := strconv.ParseFloat(it.GrandTotal, 64)

	o := entities.Order{
		ID:             it.ID,
		GrandTotal:     total,
		CustomerName:   it.CustomerName,
		CustomerEmail:  it.CustomerEmail,
		CustomerTaxvat: it.CustomerTaxvat,
		CustomerDob:    it.CustomerDob,
		CustomerGender: it.CustomerGender,
		Status:         entities.OrderStatus(it.Status),
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
	if it.BillingAddress != nil {
		o.BillingAddress = &entities.BillingAddress{
			Street1:   it.BillingAddress.Street1,
			Street2:   it.BillingAddress.Street2,
			Street3:   it.BillingAddress.Street3,
			Street4:   it.BillingAddress.Street4,
			City:      it.BillingAddress.City,
			Region:    it.BillingAddress.Region,
			Postcode:  it.BillingAddress.Postcode,
			Country:   it.BillingAddress.Country,
			Telephone: it.BillingAddress.Telephone,
		}
	}
	return o
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
