package repository

import (
	"context"
	"errors"
	"time"

	"gcpanel_ledger/internal/domain/entities"
	"gcpanel_ledger/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultSOVLinesTableName = "sov_lines"
	sovLinesProjectIDIndex   = "project_id-index"
)

type sovLineItem struct {
	ID             string `dynamodbav:"id"`
	ProjectID      string `dynamodbav:"project_id"`
	Description    string `dynamodbav:"description"`
	Category       string `dynamodbav:"category"`
	OriginalAmount string `dynamodbav:"original_amount"`
	Active         bool   `dynamodbav:"active"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// SOVLineDynamoRepository persists ScheduleOfValuesLine entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
//
// There is no delete path and no amount update path; the original amount is
// written once. Closeout flips `active` and nothing else.
type SOVLineDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISOVLineRepository = (*SOVLineDynamoRepository)(nil)

func NewSOVLineDynamoRepository(ddb *dynamodb.Client) *SOVLineDynamoRepository {
	return &SOVLineDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SOV_LINES_TABLE", defaultSOVLinesTableName),
	}
}

func (r *SOVLineDynamoRepository) Create(ctx context.Context, line entities.ScheduleOfValuesLine) (entities.ScheduleOfValuesLine, error) {
	av, err := attributevalue.MarshalMap(toSOVLineItem(line))
	if err != nil {
		return entities.ScheduleOfValuesLine{}, err
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
		return entities.ScheduleOfValuesLine{}, err
	}
	return line, nil
}

func (r *SOVLineDynamoRepository) GetByID(ctx context.Context, projectID, lineID string) (entities.ScheduleOfValuesLine, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: lineID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ScheduleOfValuesLine{}, err
	}
	if len(out.Item) == 0 {
		return entities.ScheduleOfValuesLine{}, nil
	}

	var it sovLineItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ScheduleOfValuesLine{}, err
	}
	if it.ProjectID != projectID {
		return entities.ScheduleOfValuesLine{}, nil
	}
	return fromSOVLineItem(it), nil
}

func (r *SOVLineDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.ScheduleOfValuesLine, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(sovLinesProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}

	lines := make([]entities.ScheduleOfValuesLine, 0, len(out.Items))
	for _, raw := range out.Items {
		var it sovLineItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		lines = append(lines, fromSOVLineItem(it))
	}
	return lines, nil
}

func (r *SOVLineDynamoRepository) Deactivate(ctx context.Context, projectID, lineID string) (entities.ScheduleOfValuesLine, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: lineID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #project_id = :pid"),
		UpdateExpression:    aws.String("SET #active = :inactive"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#project_id": "project_id",
			"#active":     "active",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid":      &types.AttributeValueMemberS{Value: projectID},
			":inactive": &types.AttributeValueMemberBOOL{Value: false},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ScheduleOfValuesLine{}, nil
		}
		return entities.ScheduleOfValuesLine{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ScheduleOfValuesLine{}, nil
	}

	var it sovLineItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ScheduleOfValuesLine{}, err
	}
	return fromSOVLineItem(it), nil
}

func toSOVLineItem(line entities.ScheduleOfValuesLine) sovLineItem {
	return sovLineItem{
		ID:             line.ID,
		ProjectID:      line.ProjectID,
		Description:    line.Description,
		Category:       line.Category,
		OriginalAmount: line.OriginalAmount.String(),
		Active:         line.Active,
		CreatedAt:      line.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSOVLineItem(it sovLineItem) entities.ScheduleOfValuesLine {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	amount, _ := decimal.NewFromString(it.OriginalAmount)
	return entities.ScheduleOfValuesLine{
		ID:             it.ID,
		ProjectID:      it.ProjectID,
		Description:    it.Description,
		Category:       it.Category,
		OriginalAmount: amount,
		Active:         it.Active,
		CreatedAt:      createdAt,
	}
}
