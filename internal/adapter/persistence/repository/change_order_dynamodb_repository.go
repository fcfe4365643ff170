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
	defaultChangeOrdersTableName = "change_orders"
	changeOrdersLineIDIndex      = "line_id-index"
	changeOrdersProjectIDIndex   = "project_id-index"
)

type changeOrderItem struct {
	ID            string `dynamodbav:"id"`
	ProjectID     string `dynamodbav:"project_id"`
	LineID        string `dynamodbav:"line_id"`
	Delta         string `dynamodbav:"delta"`
	Justification string `dynamodbav:"justification,omitempty"`
	Status        string `dynamodbav:"status"`
	SubmittedBy   string `dynamodbav:"submitted_by"`
	ApprovedBy    string `dynamodbav:"approved_by,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	SubmittedAt   string `dynamodbav:"submitted_at,omitempty"`
	DecidedAt     string `dynamodbav:"decided_at,omitempty"`
	ApprovedAt    string `dynamodbav:"approved_at,omitempty"`
}

// ChangeOrderDynamoRepository persists ChangeOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: line_id-index (PK: line_id)
//   - GSI: project_id-index (PK: project_id)
//
// UpdateStatus is a conditional flip on the stored status. The condition is
// the whole serialization story for transitions: two approvals racing on one
// change order cannot both pass `status = submitted`, and the delta itself
// is never touched after creation.
type ChangeOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IChangeOrderRepository = (*ChangeOrderDynamoRepository)(nil)

func NewChangeOrderDynamoRepository(ddb *dynamodb.Client) *ChangeOrderDynamoRepository {
	return &ChangeOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHANGE_ORDERS_TABLE", defaultChangeOrdersTableName),
	}
}

func (r *ChangeOrderDynamoRepository) Create(ctx context.Context, co entities.ChangeOrder) (entities.ChangeOrder, error) {
	av, err := attributevalue.MarshalMap(toChangeOrderItem(co))
	if err != nil {
		return entities.ChangeOrder{}, err
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
		return entities.ChangeOrder{}, err
	}
	return co, nil
}

func (r *ChangeOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ChangeOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ChangeOrder{}, nil
	}

	var it changeOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ChangeOrder{}, err
	}
	return fromChangeOrderItem(it), nil
}

func (r *ChangeOrderDynamoRepository) ListByLineID(ctx context.Context, lineID string) ([]entities.ChangeOrder, error) {
	return r.query(ctx, changeOrdersLineIDIndex, "line_id = :v", lineID)
}

func (r *ChangeOrderDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.ChangeOrder, error) {
	return r.query(ctx, changeOrdersProjectIDIndex, "project_id = :v", projectID)
}

func (r *ChangeOrderDynamoRepository) query(ctx context.Context, index, keyCond, value string) ([]entities.ChangeOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyCond),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	orders := make([]entities.ChangeOrder, 0, len(out.Items))
	for _, raw := range out.Items {
		var it changeOrderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromChangeOrderItem(it))
	}
	return orders, nil
}

func (r *ChangeOrderDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.ChangeOrderStatus, actorID string, at time.Time) (entities.ChangeOrder, error) {
	ts := at.UTC().Format(time.RFC3339Nano)

	expr := "SET #status = :to"
	vals := map[string]types.AttributeValue{
		":to":   &types.AttributeValueMemberS{Value: string(to)},
		":from": &types.AttributeValueMemberS{Value: string(from)},
	}
	names := map[string]string{
		"#id":     "id",
		"#status": "status",
	}
	switch to {
	case entities.ChangeOrderStatusSubmitted:
		expr += ", #submitted_at = :ts"
		names["#submitted_at"] = "submitted_at"
		vals[":ts"] = &types.AttributeValueMemberS{Value: ts}
	case entities.ChangeOrderStatusApproved:
		expr += ", #approved_by = :actor, #decided_at = :ts, #approved_at = :ts"
		names["#approved_by"] = "approved_by"
		names["#decided_at"] = "decided_at"
		names["#approved_at"] = "approved_at"
		vals[":actor"] = &types.AttributeValueMemberS{Value: actorID}
		vals[":ts"] = &types.AttributeValueMemberS{Value: ts}
	case entities.ChangeOrderStatusRejected:
		expr += ", #approved_by = :actor, #decided_at = :ts"
		names["#approved_by"] = "approved_by"
		names["#decided_at"] = "decided_at"
		vals[":actor"] = &types.AttributeValueMemberS{Value: actorID}
		vals[":ts"] = &types.AttributeValueMemberS{Value: ts}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: vals,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ChangeOrder{}, nil
		}
		return entities.ChangeOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ChangeOrder{}, nil
	}

	var it changeOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ChangeOrder{}, err
	}
	return fromChangeOrderItem(it), nil
}

func toChangeOrderItem(co entities.ChangeOrder) changeOrderItem {
	return changeOrderItem{
		ID:            co.ID,
		ProjectID:     co.ProjectID,
		LineID:        co.LineID,
		Delta:         co.Delta.String(),
		Justification: co.Justification,
		Status:        string(co.Status),
		SubmittedBy:   co.SubmittedBy,
		ApprovedBy:    co.ApprovedBy,
		CreatedAt:     co.CreatedAt.UTC().Format(time.RFC3339Nano),
		SubmittedAt:   formatOptionalTime(co.SubmittedAt),
		DecidedAt:     formatOptionalTime(co.DecidedAt),
		ApprovedAt:    formatOptionalTime(co.ApprovedAt),
	}
}

func fromChangeOrderItem(it changeOrderItem) entities.ChangeOrder {
	delta, _ := decimal.NewFromString(it.Delta)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.ChangeOrder{
		ID:            it.ID,
		ProjectID:     it.ProjectID,
		LineID:        it.LineID,
		Delta:         delta,
		Justification: it.Justification,
		Status:        entities.ChangeOrderStatus(it.Status),
		SubmittedBy:   it.SubmittedBy,
		ApprovedBy:    it.ApprovedBy,
		CreatedAt:     createdAt,
		SubmittedAt:   parseOptionalTime(it.SubmittedAt),
		DecidedAt:     parseOptionalTime(it.DecidedAt),
		ApprovedAt:    parseOptionalTime(it.ApprovedAt),
	}
}
