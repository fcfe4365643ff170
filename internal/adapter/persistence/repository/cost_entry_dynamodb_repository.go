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
	defaultCostEntriesTableName = "cost_entries"
	costEntriesEntryIDIndex     = "id-index"
	costEntriesLineIDIndex      = "line_id-index"
	costEntriesProjectIDIndex   = "project_id-index"
)

type costEntryItem struct {
	SourceID       string `dynamodbav:"source_id"`
	ID             string `dynamodbav:"id"`
	ProjectID      string `dynamodbav:"project_id"`
	LineID         string `dynamodbav:"line_id"`
	Amount         string `dynamodbav:"amount"`
	SourceKind     string `dynamodbav:"source_kind"`
	SourceRef      string `dynamodbav:"source_ref"`
	EffectiveDate  string `dynamodbav:"effective_date"`
	OffsetsEntryID string `dynamodbav:"offsets_entry_id,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// CostEntryDynamoRepository persists CostActualEntry entities in DynamoDB.
//
// Table requirements:
//   - PK: source_id (string, "<source_kind>#<source_ref>")
//   - GSI: id-index (PK: id)
//   - GSI: line_id-index (PK: line_id)
//   - GSI: project_id-index (PK: project_id)
//
// The source identity as partition key makes re-delivery of the same
// external event a conditional-put collision instead of a second row, which
// is the whole idempotency mechanism. There is no update or delete path.
type CostEntryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICostEntryRepository = (*CostEntryDynamoRepository)(nil)

func NewCostEntryDynamoRepository(ddb *dynamodb.Client) *CostEntryDynamoRepository {
	return &CostEntryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COST_ENTRIES_TABLE", defaultCostEntriesTableName),
	}
}

func (r *CostEntryDynamoRepository) Put(ctx context.Context, e entities.CostActualEntry) (entities.CostActualEntry, bool, error) {
	av, err := attributevalue.MarshalMap(toCostEntryItem(e))
	if err != nil {
		return entities.CostActualEntry{}, false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#source_id)"),
		ExpressionAttributeNames: map[string]string{
			"#source_id": "source_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			existing, gerr := r.getBySourceID(ctx, e.SourceID())
			if gerr != nil {
				return entities.CostActualEntry{}, false, gerr
			}
			return existing, false, nil
		}
		return entities.CostActualEntry{}, false, err
	}
	return e, true, nil
}

func (r *CostEntryDynamoRepository) getBySourceID(ctx context.Context, sourceID string) (entities.CostActualEntry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"source_id": &types.AttributeValueMemberS{Value: sourceID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CostActualEntry{}, err
	}
	if len(out.Item) == 0 {
		return entities.CostActualEntry{}, nil
	}

	var it costEntryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CostActualEntry{}, err
	}
	return fromCostEntryItem(it), nil
}

func (r *CostEntryDynamoRepository) GetByEntryID(ctx context.Context, entryID string) (entities.CostActualEntry, error) {
	entries, err := r.query(ctx, costEntriesEntryIDIndex, "id = :v", entryID)
	if err != nil {
		return entities.CostActualEntry{}, err
	}
	if len(entries) == 0 {
		return entities.CostActualEntry{}, nil
	}
	return entries[0], nil
}

func (r *CostEntryDynamoRepository) ListByLineID(ctx context.Context, lineID string) ([]entities.CostActualEntry, error) {
	return r.query(ctx, costEntriesLineIDIndex, "line_id = :v", lineID)
}

func (r *CostEntryDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.CostActualEntry, error) {
	return r.query(ctx, costEntriesProjectIDIndex, "project_id = :v", projectID)
}

func (r *CostEntryDynamoRepository) query(ctx context.Context, index, keyCond, value string) ([]entities.CostActualEntry, error) {
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

	entries := make([]entities.CostActualEntry, 0, len(out.Items))
	for _, raw := range out.Items {
		var it costEntryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		entries = append(entries, fromCostEntryItem(it))
	}
	return entries, nil
}

func toCostEntryItem(e entities.CostActualEntry) costEntryItem {
	return costEntryItem{
		SourceID:       e.SourceID(),
		ID:             e.ID,
		ProjectID:      e.ProjectID,
		LineID:         e.LineID,
		Amount:         e.Amount.String(),
		SourceKind:     string(e.SourceKind),
		SourceRef:      e.SourceRef,
		EffectiveDate:  e.EffectiveDate.UTC().Format(time.RFC3339Nano),
		OffsetsEntryID: e.OffsetsEntryID,
		CreatedAt:      e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCostEntryItem(it costEntryItem) entities.CostActualEntry {
	amount, _ := decimal.NewFromString(it.Amount)
	effectiveDate, _ := time.Parse(time.RFC3339Nano, it.EffectiveDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.CostActualEntry{
		ID:             it.ID,
		ProjectID:      it.ProjectID,
		LineID:         it.LineID,
		Amount:         amount,
		SourceKind:     entities.CostSourceKind(it.SourceKind),
		SourceRef:      it.SourceRef,
		EffectiveDate:  effectiveDate,
		OffsetsEntryID: it.OffsetsEntryID,
		CreatedAt:      createdAt,
	}
}
