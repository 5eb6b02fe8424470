package repository

import (
	"context"
	"encoding/json"
	"time"

	"grafica_xpto/internal/domain/entities"
	"grafica_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultFaturasTableName = "faturas"
	faturasByPedidoIndex    = "pedido_id-index"
)

type faturaItem struct {
	ID           string `dynamodbav:"id"`
	PedidoID     int64  `dynamodbav:"pedido_id"`
	Date         string `dynamodbav:"date"`
	Status       string `dynamodbav:"status"`
	MPPayloadRaw string `dynamodbav:"mp_payload_raw,omitempty"`
}

// FaturaDynamoRepository persists Fatura entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string, provider payment id)
//   - GSI pedido_id-index: pedido_id (number)

type FaturaDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFaturaRepository = (*FaturaDynamoRepository)(nil)

func NewFaturaDynamoRepository(ddb *dynamodb.Client) *FaturaDynamoRepository {
	return &FaturaDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FATURAS_TABLE", defaultFaturasTableName),
	}
}

func (r *FaturaDynamoRepository) Create(ctx context.Context, f entities.Fatura) (entities.Fatura, error) {
	av, err := attributevalue.MarshalMap(toFaturaItem(f))
	if err != nil {
		return entities.Fatura{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Fatura{}, err
	}
	return f, nil
}

func (r *FaturaDynamoRepository) GetByID(ctx context.Context, id string) (entities.Fatura, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Fatura{}, err
	}
	if len(out.Item) == 0 {
		return entities.Fatura{}, nil
	}

	var it faturaItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Fatura{}, err
	}
	return fromFaturaItem(it), nil
}

func (r *FaturaDynamoRepository) ListByPedidoID(ctx context.Context, pedidoID int64) ([]entities.Fatura, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(faturasByPedidoIndex),
		KeyConditionExpression: aws.String("#pedido_id = :pedido_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pedido_id": &types.AttributeValueMemberN{Value: intToString(pedidoID)},
		},
		ExpressionAttributeNames: map[string]string{
			"#pedido_id": "pedido_id",
		},
	})
	if err != nil {
		return nil, err
	}

	faturas := make([]entities.Fatura, 0, len(out.Items))
	for _, item := range out.Items {
		var it faturaItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		faturas = append(faturas, fromFaturaItem(it))
	}
	return faturas, nil
}

func toFaturaItem(f entities.Fatura) faturaItem {
	return faturaItem{
		ID:           f.ID,
		PedidoID:     f.PedidoID,
		Date:         f.Date.UTC().Format(time.RFC3339Nano),
		Status:       string(f.Status),
		MPPayloadRaw: string(f.MPPayloadRaw),
	}
}

func fromFaturaItem(it faturaItem) entities.Fatura {
	date, _ := time.Parse(time.RFC3339Nano, it.Date)
	f := entities.Fatura{
		ID:       it.ID,
		PedidoID: it.PedidoID,
		Date:     date,
		Status:   entities.FaturaStatus(it.Status),
	}
	if it.MPPayloadRaw != "" {
		f.MPPayloadRaw = json.RawMessage(it.MPPayloadRaw)
		_ = json.Unmarshal(f.MPPayloadRaw, &f.MPPayload)
	}
	return f
}
