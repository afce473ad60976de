package repository

import (
	"context"
	"errors"
	"time"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTransactionsTableName = "transactions"
	transactionsOrderIDIndex     = "order_id-index"
)

type transactionItem struct {
	ID                string `dynamodbav:"id"`
	OrderID           string `dynamodbav:"order_id"`
	Amount            int64  `dynamodbav:"amount"`
	Installments      int    `dynamodbav:"installments"`
	Status            string `dynamodbav:"status"`
	Date              string `dynamodbav:"date"`
	GatewayPayloadRaw string `dynamodbav:"gateway_payload_raw,omitempty"`
}

// TransactionDynamoRepository persists Transaction entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string, the gateway transaction id)
//   - GSI: order_id-index (PK: order_id)

type TransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	it := toTransactionItem(t)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Transaction{}, err
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
		return entities.Transaction{}, err
	}
	return t, nil
}

func (r *TransactionDynamoRepository) GetByOrderID(ctx context.Context, orderID string) ([]entities.Transaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transactionsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Transaction, 0, len(out.Items))
	for _, raw := range out.Items {
		var it transactionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromTransactionItem(it))
	}
	return items, nil
}

func (r *TransactionDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.TransactionStatus) (entities.Transaction, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #date = :date"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
			":date":   &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
			"#date":   "date",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Transaction{}, nil
		}
		return entities.Transaction{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func toTransactionItem(t entities.Transaction) transactionItem {
	return transactionItem{
		ID:                t.ID,
		OrderID:           t.OrderID,
		Amount:            t.Amount,
		Installments:      t.Installments,
		Status:            string(t.Status),
		Date:              t.Date.UTC().Format(time.RFC3339Nano),
		GatewayPayloadRaw: string(t.GatewayPayloadRaw),
	}
}

func fromTransactionItem(it transactionItem) entities.Transaction {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.Transaction{
		ID:                it.ID,
		OrderID:           it.OrderID,
		Amount:            it.Amount,
		Installments:      it.Installments,
		Status:            entities.TransactionStatus(it.Status),
		Date:              dt,
		GatewayPayloadRaw: []byte(it.GatewayPayloadRaw),
	}
}
