package repository

import (
	"context"
	"errors"
	"time"

	"grafica_xpto/internal/domain/entities"
	"grafica_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "pedidos"

type orderItem struct {
	ID            int64       `dynamodbav:"id"`
	Status        string      `dynamodbav:"status"`
	OrderType     string      `dynamodbav:"order_type"`
	OrcamentoID   *int64      `dynamodbav:"orcamento_id,omitempty"`
	Cliente       clienteItem `dynamodbav:"cliente"`
	Centro        centroItem  `dynamodbav:"centro"`
	Titulo        string      `dynamodbav:"titulo"`
	Tiragem       int         `dynamodbav:"tiragem"`
	Formato       string      `dynamodbav:"formato"`
	TotalPgs      int         `dynamodbav:"total_pgs"`
	PgsColors     int         `dynamodbav:"pgs_colors"`
	ValorUnitario float64     `dynamodbav:"valor_unitario"`
	ValorTotal    float64     `dynamodbav:"valor_total"`
	PrazoEntrega  string      `dynamodbav:"prazo_entrega"`
	NotasProducao string      `dynamodbav:"notas_producao"`
	CreatedAt     string      `dynamodbav:"created_at"`
	UpdatedAt     string      `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number)

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
	av, err := attributevalue.MarshalMap(toOrderItem(o))
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

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: intToString(id)},
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

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id int64, expected, next entities.OrderStatus, notas string) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: intToString(id)},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:    aws.String("SET #status = :status, #notas_producao = :notas_producao, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected":       &types.AttributeValueMemberS{Value: string(expected)},
			":status":         &types.AttributeValueMemberS{Value: string(next)},
			":notas_producao": &types.AttributeValueMemberS{Value: notas},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#status":         "status",
			"#notas_producao": "notas_producao",
			"#updated_at":     "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, interfaces.ErrStatusConflict
		}
		return entities.Order{}, err
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) UpdateContent(ctx context.Context, o entities.Order, expected entities.OrderStatus) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: intToString(o.ID)},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression: aws.String("SET #titulo = :titulo, #tiragem = :tiragem, #formato = :formato, " +
			"#total_pgs = :total_pgs, #pgs_colors = :pgs_colors, #valor_unitario = :valor_unitario, " +
			"#valor_total = :valor_total, #prazo_entrega = :prazo_entrega, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected":       &types.AttributeValueMemberS{Value: string(expected)},
			":titulo":         &types.AttributeValueMemberS{Value: o.Titulo},
			":tiragem":        &types.AttributeValueMemberN{Value: intToString(int64(o.Tiragem))},
			":formato":        &types.AttributeValueMemberS{Value: o.Formato},
			":total_pgs":      &types.AttributeValueMemberN{Value: intToString(int64(o.TotalPgs))},
			":pgs_colors":     &types.AttributeValueMemberN{Value: intToString(int64(o.PgsColors))},
			":valor_unitario": &types.AttributeValueMemberN{Value: floatToString(o.ValorUnitario)},
			":valor_total":    &types.AttributeValueMemberN{Value: floatToString(o.ValorTotal)},
			":prazo_entrega":  &types.AttributeValueMemberS{Value: o.PrazoEntrega.UTC().Format(time.RFC3339Nano)},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#status":         "status",
			"#titulo":         "titulo",
			"#tiragem":        "tiragem",
			"#formato":        "formato",
			"#total_pgs":      "total_pgs",
			"#pgs_colors":     "pgs_colors",
			"#valor_unitario": "valor_unitario",
			"#valor_total":    "valor_total",
			"#prazo_entrega":  "prazo_entrega",
			"#updated_at":     "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, interfaces.ErrStatusConflict
		}
		return entities.Order{}, err
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:            o.ID,
		Status:        string(o.Status),
		OrderType:     string(o.OrderType),
		OrcamentoID:   o.OrcamentoID,
		Cliente:       clienteItem(o.Cliente),
		Centro:        centroItem(o.Centro),
		Titulo:        o.Titulo,
		Tiragem:       o.Tiragem,
		Formato:       o.Formato,
		TotalPgs:      o.TotalPgs,
		PgsColors:     o.PgsColors,
		ValorUnitario: o.ValorUnitario,
		ValorTotal:    o.ValorTotal,
		PrazoEntrega:  o.PrazoEntrega.UTC().Format(time.RFC3339Nano),
		NotasProducao: o.NotasProducao,
		CreatedAt:     o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	prazo, _ := time.Parse(time.RFC3339Nano, it.PrazoEntrega)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Order{
		ID:            it.ID,
		Status:        entities.OrderStatus(it.Status),
		OrderType:     entities.OrderType(it.OrderType),
		OrcamentoID:   it.OrcamentoID,
		Cliente:       entities.Cliente(it.Cliente),
		Centro:        entities.CentroProducao(it.Centro),
		Titulo:        it.Titulo,
		Tiragem:       it.Tiragem,
		Formato:       it.Formato,
		TotalPgs:      it.TotalPgs,
		PgsColors:     it.PgsColors,
		ValorUnitario: it.ValorUnitario,
		ValorTotal:    it.ValorTotal,
		PrazoEntrega:  prazo,
		NotasProducao: it.NotasProducao,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
