package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"grafica_xpto/internal/domain/entities"
	"grafica_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ConversionDynamoRepository commits the budget-to-order conversion with a
// single TransactWriteItems call. The budget leg carries a condition on the
// stored status, so a concurrent status change cancels the whole transaction
// and neither table is touched.

type ConversionDynamoRepository struct {
	ddb          *dynamodb.Client
	budgetsTable string
	ordersTable  string
}

var _ interfaces.IConversionRepository = (*ConversionDynamoRepository)(nil)

func NewConversionDynamoRepository(ddb *dynamodb.Client) *ConversionDynamoRepository {
	return &ConversionDynamoRepository{
		ddb:          ddb,
		budgetsTable: getenvDefault("BUDGETS_TABLE", defaultBudgetsTableName),
		ordersTable:  getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *ConversionDynamoRepository) Convert(ctx context.Context, budgetID int64, expected entities.BudgetStatus, notas string, order entities.Order) (entities.Budget, entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	orderAV, err := attributevalue.MarshalMap(toOrderItem(order))
	if err != nil {
		return entities.Budget{}, entities.Order{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.budgetsTable),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberN{Value: intToString(budgetID)},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
					UpdateExpression:    aws.String("SET #status = :status, #notas = :notas, #pedido_id = :pedido_id, #updated_at = :updated_at"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":expected":   &types.AttributeValueMemberS{Value: string(expected)},
						":status":     &types.AttributeValueMemberS{Value: string(entities.BudgetStatusConverted)},
						":notas":      &types.AttributeValueMemberS{Value: notas},
						":pedido_id":  &types.AttributeValueMemberN{Value: intToString(order.ID)},
						":updated_at": &types.AttributeValueMemberS{Value: now},
					},
					ExpressionAttributeNames: map[string]string{
						"#id":         "id",
						"#status":     "status",
						"#notas":      "notas",
						"#pedido_id":  "pedido_id",
						"#updated_at": "updated_at",
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.ordersTable),
					Item:                orderAV,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
		},
	})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			for _, reason := range canceled.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return entities.Budget{}, entities.Order{}, interfaces.ErrStatusConflict
				}
			}
		}
		return entities.Budget{}, entities.Order{}, err
	}

	budget, err := r.getBudget(ctx, budgetID)
	if err != nil {
		return entities.Budget{}, entities.Order{}, fmt.Errorf("reading budget after conversion commit: %w", err)
	}
	return budget, order, nil
}

func (r *ConversionDynamoRepository) getBudget(ctx context.Context, id int64) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.budgetsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: intToString(id)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}
