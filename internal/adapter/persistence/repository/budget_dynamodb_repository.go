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

const defaultBudgetsTableName = "orcamentos"

type clienteItem struct {
	ID        int64  `dynamodbav:"id"`
	Nome      string `dynamodbav:"nome"`
	Email     string `dynamodbav:"email,omitempty"`
	Telefone  string `dynamodbav:"telefone,omitempty"`
	Documento string `dynamodbav:"documento,omitempty"`
}

type centroItem struct {
	ID     int64  `dynamodbav:"id"`
	Nome   string `dynamodbav:"nome"`
	Cidade string `dynamodbav:"cidade,omitempty"`
	UF     string `dynamodbav:"uf,omitempty"`
}

type budgetItem struct {
	ID            int64       `dynamodbav:"id"`
	Status        string      `dynamodbav:"status"`
	Cliente       clienteItem `dynamodbav:"cliente"`
	Centro        centroItem  `dynamodbav:"centro"`
	Titulo        string      `dynamodbav:"titulo"`
	Tiragem       int         `dynamodbav:"tiragem"`
	Formato       string      `dynamodbav:"formato"`
	TotalPgs      int         `dynamodbav:"total_pgs"`
	PgsColors     int         `dynamodbav:"pgs_colors"`
	PrecoUnitario float64     `dynamodbav:"preco_unitario"`
	PrecoTotal    float64     `dynamodbav:"preco_total"`
	PrazoProducao string      `dynamodbav:"prazo_producao"`
	Notas         string      `dynamodbav:"notas"`
	PedidoID      *int64      `dynamodbav:"pedido_id,omitempty"`
	CreatedAt     string      `dynamodbav:"created_at"`
	UpdatedAt     string      `dynamodbav:"updated_at"`
}

// BudgetDynamoRepository persists Budget entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//
// Status writes carry a condition on the stored status so a stale transition
// loses the race instead of overwriting a concurrent one.

type BudgetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb *dynamodb.Client) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUDGETS_TABLE", defaultBudgetsTableName),
	}
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	av, err := attributevalue.MarshalMap(toBudgetItem(b))
	if err != nil {
		return entities.Budget{}, err
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
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: intToString(id)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Item) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func (r *BudgetDynamoRepository) UpdateStatus(ctx context.Context, id int64, expected, next entities.BudgetStatus, notas string) (entities.Budget, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: intToString(id)},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:    aws.String("SET #status = :status, #notas = :notas, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected":   &types.AttributeValueMemberS{Value: string(expected)},
			":status":     &types.AttributeValueMemberS{Value: string(next)},
			":notas":      &types.AttributeValueMemberS{Value: notas},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#notas":      "notas",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Budget{}, interfaces.ErrStatusConflict
		}
		return entities.Budget{}, err
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func (r *BudgetDynamoRepository) UpdateContent(ctx context.Context, b entities.Budget, expected entities.BudgetStatus) (entities.Budget, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: intToString(b.ID)},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression: aws.String("SET #titulo = :titulo, #tiragem = :tiragem, #formato = :formato, " +
			"#total_pgs = :total_pgs, #pgs_colors = :pgs_colors, #preco_unitario = :preco_unitario, " +
			"#preco_total = :preco_total, #prazo_producao = :prazo_producao, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected":       &types.AttributeValueMemberS{Value: string(expected)},
			":titulo":         &types.AttributeValueMemberS{Value: b.Titulo},
			":tiragem":        &types.AttributeValueMemberN{Value: intToString(int64(b.Tiragem))},
			":formato":        &types.AttributeValueMemberS{Value: b.Formato},
			":total_pgs":      &types.AttributeValueMemberN{Value: intToString(int64(b.TotalPgs))},
			":pgs_colors":     &types.AttributeValueMemberN{Value: intToString(int64(b.PgsColors))},
			":preco_unitario": &types.AttributeValueMemberN{Value: floatToString(b.PrecoUnitario)},
			":preco_total":    &types.AttributeValueMemberN{Value: floatToString(b.PrecoTotal)},
			":prazo_producao": &types.AttributeValueMemberS{Value: b.PrazoProducao.UTC().Format(time.RFC3339Nano)},
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
			"#preco_unitario": "preco_unitario",
			"#preco_total":    "preco_total",
			"#prazo_producao": "prazo_producao",
			"#updated_at":     "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Budget{}, interfaces.ErrStatusConflict
		}
		return entities.Budget{}, err
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func toBudgetItem(b entities.Budget) budgetItem {
	return budgetItem{
		ID:            b.ID,
		Status:        string(b.Status),
		Cliente:       clienteItem(b.Cliente),
		Centro:        centroItem(b.Centro),
		Titulo:        b.Titulo,
		Tiragem:       b.Tiragem,
		Formato:       b.Formato,
		TotalPgs:      b.TotalPgs,
		PgsColors:     b.PgsColors,
		PrecoUnitario: b.PrecoUnitario,
		PrecoTotal:    b.PrecoTotal,
		PrazoProducao: b.PrazoProducao.UTC().Format(time.RFC3339Nano),
		Notas:         b.Notas,
		PedidoID:      b.PedidoID,
		CreatedAt:     b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBudgetItem(it budgetItem) entities.Budget {
	prazo, _ := time.Parse(time.RFC3339Nano, it.PrazoProducao)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Budget{
		ID:            it.ID,
		Status:        entities.BudgetStatus(it.Status),
		Cliente:       entities.Cliente(it.Cliente),
		Centro:        entities.CentroProducao(it.Centro),
		Titulo:        it.Titulo,
		Tiragem:       it.Tiragem,
		Formato:       it.Formato,
		TotalPgs:      it.TotalPgs,
		PgsColors:     it.PgsColors,
		PrecoUnitario: it.PrecoUnitario,
		PrecoTotal:    it.PrecoTotal,
		PrazoProducao: prazo,
		Notas:         it.Notas,
		PedidoID:      it.PedidoID,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
