package repository

import (
	"context"
	"errors"
	"strconv"
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
	defaultSnapshotsTableName = "billing_snapshots"
	snapshotsProjectIDIndex   = "project_id-index"
	latestPointerSuffix       = "latest"
)

type snapshotLineItem struct {
	LineID           string `dynamodbav:"line_id"`
	Description      string `dynamodbav:"description"`
	Category         string `dynamodbav:"category"`
	EffectiveBudget  string `dynamodbav:"effective_budget"`
	CumulativeActual string `dynamodbav:"cumulative_actual"`
	PercentComplete  string `dynamodbav:"percent_complete"`
	BilledThisPeriod string `dynamodbav:"billed_this_period"`
	BalanceToFinish  string `dynamodbav:"balance_to_finish"`
	BudgetAnomaly    bool   `dynamodbav:"budget_anomaly,omitempty"`
}

type billingSnapshotItem struct {
	ID        string             `dynamodbav:"id"`
	ProjectID string             `dynamodbav:"project_id"`
	PeriodID  string             `dynamodbav:"period_id"`
	Sequence  int                `dynamodbav:"sequence"`
	AsOf      string             `dynamodbav:"as_of"`
	CreatedAt string             `dynamodbav:"created_at"`
	Lines     []snapshotLineItem `dynamodbav:"lines"`

	TotalEffectiveBudget string `dynamodbav:"total_effective_budget"`
	TotalActual          string `dynamodbav:"total_actual"`
	TotalBilled          string `dynamodbav:"total_billed"`
	RetainagePct         string `dynamodbav:"retainage_pct"`
	RetainageAmount      string `dynamodbav:"retainage_amount"`
	PaymentDue           string `dynamodbav:"payment_due"`
}

type latestPointerItem struct {
	ID        string `dynamodbav:"id"`
	ProjectID string `dynamodbav:"project_id"`
	PeriodID  string `dynamodbav:"period_id"`
	Sequence  int    `dynamodbav:"sequence"`
	AsOf      string `dynamodbav:"as_of"`
}

// BillingSnapshotDynamoRepository persists BillingSnapshot entities plus the
// per-project "latest" pointer in one DynamoDB table.
//
// Table requirements:
//   - PK: id (string, "<project_id>#<period_id>" or "<project_id>#latest")
//   - GSI: project_id-index (PK: project_id)
//
// The snapshot item and the pointer are written in a single transaction: the
// snapshot put is create-only and the pointer put is conditional on the
// current sequence. The pointer condition is what serializes createSnapshot
// per project; a collision means another snapshot committed in between, and
// the transaction leaves nothing behind, so a retry sees clean state.
type BillingSnapshotDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBillingSnapshotRepository = (*BillingSnapshotDynamoRepository)(nil)

func NewBillingSnapshotDynamoRepository(ddb *dynamodb.Client) *BillingSnapshotDynamoRepository {
	return &BillingSnapshotDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BILLING_SNAPSHOTS_TABLE", defaultSnapshotsTableName),
	}
}

func (r *BillingSnapshotDynamoRepository) Create(ctx context.Context, snap entities.BillingSnapshot, expectedSequence int) (entities.BillingSnapshot, error) {
	snapAV, err := attributevalue.MarshalMap(toBillingSnapshotItem(snap))
	if err != nil {
		return entities.BillingSnapshot{}, err
	}
	ptrAV, err := attributevalue.MarshalMap(latestPointerItem{
		ID:        entities.SnapshotID(snap.ProjectID, latestPointerSuffix),
		ProjectID: snap.ProjectID,
		PeriodID:  snap.PeriodID,
		Sequence:  snap.Sequence,
		AsOf:      snap.AsOf.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.BillingSnapshot{}, err
	}

	snapPut := &types.Put{
		TableName:                aws.String(r.tableName),
		Item:                     snapAV,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}
	ptrPut := &types.Put{
		TableName: aws.String(r.tableName),
		Item:      ptrAV,
	}
	if expectedSequence == 0 {
		ptrPut.ConditionExpression = aws.String("attribute_not_exists(#id)")
		ptrPut.ExpressionAttributeNames = map[string]string{"#id": "id"}
	} else {
		ptrPut.ConditionExpression = aws.String("#sequence = :expected")
		ptrPut.ExpressionAttributeNames = map[string]string{"#sequence": "sequence"}
		ptrPut.ExpressionAttributeValues = map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.Itoa(expectedSequence)},
		}
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: snapPut},
			{Put: ptrPut},
		},
	})
	if err != nil {
		return entities.BillingSnapshot{}, snapshotTransactError(err)
	}
	return snap, nil
}

// snapshotTransactError translates a canceled snapshot transaction into the
// repository sentinels. Item 0 is the snapshot put, item 1 the pointer put:
// a failed snapshot condition means the period is already frozen, a failed
// pointer condition means another snapshot advanced the sequence first.
func snapshotTransactError(err error) error {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return err
	}
	for i, reason := range tce.CancellationReasons {
		if reason.Code == nil || *reason.Code != "ConditionalCheckFailed" {
			continue
		}
		if i == 0 {
			return interfaces.ErrPeriodAlreadyExists
		}
		return interfaces.ErrSequenceConflict
	}
	return err
}

func (r *BillingSnapshotDynamoRepository) GetByPeriod(ctx context.Context, projectID, periodID string) (entities.BillingSnapshot, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: entities.SnapshotID(projectID, periodID)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BillingSnapshot{}, err
	}
	if len(out.Item) == 0 {
		return entities.BillingSnapshot{}, nil
	}

	var it billingSnapshotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BillingSnapshot{}, err
	}
	return fromBillingSnapshotItem(it), nil
}

func (r *BillingSnapshotDynamoRepository) GetLatest(ctx context.Context, projectID string) (entities.SnapshotPointer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: entities.SnapshotID(projectID, latestPointerSuffix)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SnapshotPointer{}, err
	}
	if len(out.Item) == 0 {
		return entities.SnapshotPointer{}, nil
	}

	var it latestPointerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SnapshotPointer{}, err
	}
	asOf, _ := time.Parse(time.RFC3339Nano, it.AsOf)
	return entities.SnapshotPointer{
		ProjectID: it.ProjectID,
		PeriodID:  it.PeriodID,
		Sequence:  it.Sequence,
		AsOf:      asOf,
	}, nil
}

func (r *BillingSnapshotDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.BillingSnapshot, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(snapshotsProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}

	snaps := make([]entities.BillingSnapshot, 0, len(out.Items))
	for _, raw := range out.Items {
		var it billingSnapshotItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		if it.PeriodID == "" || it.ID == entities.SnapshotID(projectID, latestPointerSuffix) {
			// Skip the pointer item; it shares the project index.
			continue
		}
		snaps = append(snaps, fromBillingSnapshotItem(it))
	}
	return snaps, nil
}

func toBillingSnapshotItem(snap entities.BillingSnapshot) billingSnapshotItem {
	lines := make([]snapshotLineItem, 0, len(snap.Lines))
	for _, ln := range snap.Lines {
		lines = append(lines, snapshotLineItem{
			LineID:           ln.LineID,
			Description:      ln.Description,
			Category:         ln.Category,
			EffectiveBudget:  ln.EffectiveBudget.String(),
			CumulativeActual: ln.CumulativeActual.String(),
			PercentComplete:  ln.PercentComplete.String(),
			BilledThisPeriod: ln.BilledThisPeriod.String(),
			BalanceToFinish:  ln.BalanceToFinish.String(),
			BudgetAnomaly:    ln.BudgetAnomaly,
		})
	}
	return billingSnapshotItem{
		ID:                   snap.ID,
		ProjectID:            snap.ProjectID,
		PeriodID:             snap.PeriodID,
		Sequence:             snap.Sequence,
		AsOf:                 snap.AsOf.UTC().Format(time.RFC3339Nano),
		CreatedAt:            snap.CreatedAt.UTC().Format(time.RFC3339Nano),
		Lines:                lines,
		TotalEffectiveBudget: snap.TotalEffectiveBudget.String(),
		TotalActual:          snap.TotalActual.String(),
		TotalBilled:          snap.TotalBilled.String(),
		RetainagePct:         snap.RetainagePct.String(),
		RetainageAmount:      snap.RetainageAmount.String(),
		PaymentDue:           snap.PaymentDue.String(),
	}
}

func fromBillingSnapshotItem(it billingSnapshotItem) entities.BillingSnapshot {
	asOf, _ := time.Parse(time.RFC3339Nano, it.AsOf)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)

	lines := make([]entities.SnapshotLine, 0, len(it.Lines))
	for _, ln := range it.Lines {
		budget, _ := decimal.NewFromString(ln.EffectiveBudget)
		cumulative, _ := decimal.NewFromString(ln.CumulativeActual)
		pct, _ := decimal.NewFromString(ln.PercentComplete)
		billed, _ := decimal.NewFromString(ln.BilledThisPeriod)
		balance, _ := decimal.NewFromString(ln.BalanceToFinish)
		lines = append(lines, entities.SnapshotLine{
			LineID:           ln.LineID,
			Description:      ln.Description,
			Category:         ln.Category,
			EffectiveBudget:  budget,
			CumulativeActual: cumulative,
			PercentComplete:  pct,
			BilledThisPeriod: billed,
			BalanceToFinish:  balance,
			BudgetAnomaly:    ln.BudgetAnomaly,
		})
	}

	totalBudget, _ := decimal.NewFromString(it.TotalEffectiveBudget)
	totalActual, _ := decimal.NewFromString(it.TotalActual)
	totalBilled, _ := decimal.NewFromString(it.TotalBilled)
	retainagePct, _ := decimal.NewFromString(it.RetainagePct)
	retainageAmount, _ := decimal.NewFromString(it.RetainageAmount)
	paymentDue, _ := decimal.NewFromString(it.PaymentDue)

	return entities.BillingSnapshot{
		ID:                   it.ID,
		ProjectID:            it.ProjectID,
		PeriodID:             it.PeriodID,
		Sequence:             it.Sequence,
		AsOf:                 asOf,
		CreatedAt:            createdAt,
		Lines:                lines,
		TotalEffectiveBudget: totalBudget,
		TotalActual:          totalActual,
		TotalBilled:          totalBilled,
		RetainagePct:         retainagePct,
		RetainageAmount:      retainageAmount,
		PaymentDue:           paymentDue,
	}
}
