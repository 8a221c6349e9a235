package repository

import (
	"context"
	"errors"

	"costwatch/internal/domain/entities"
	"costwatch/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultActualCostsTableName = "actual_costs"

type actualCostItem struct {
	ID                 string `dynamodbav:"id"`
	ItemID             string `dynamodbav:"item_id"`
	ActualUnitPrice    string `dynamodbav:"actual_unit_price"`
	ActualQuantity     string `dynamodbav:"actual_quantity"`
	TotalActual        string `dynamodbav:"total_actual"`
	VarianceAmount     string `dynamodbav:"variance_amount"`
	VariancePercentage string `dynamodbav:"variance_percentage"`
	RecordedAt         string `dynamodbav:"recorded_at"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// ActualCostDynamoRepository persists ActualCost entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (item_id-index): item_id
//
// Upsert runs as a TransactWriteItems with a ConditionCheck on the parent
// estimate item: the write lands with its derived fields already populated,
// and fails as a unit if the item was deleted in between.
type ActualCostDynamoRepository struct {
	ddb        *dynamodb.Client
	tableName  string
	itemsTable string
}

var _ interfaces.IActualCostRepository = (*ActualCostDynamoRepository)(nil)

func NewActualCostDynamoRepository(ddb *dynamodb.Client) *ActualCostDynamoRepository {
	return &ActualCostDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("ACTUAL_COSTS_TABLE", defaultActualCostsTableName),
		itemsTable: getenvDefault("ESTIMATE_ITEMS_TABLE", defaultEstimateItemsTableName),
	}
}

func (r *ActualCostDynamoRepository) Upsert(ctx context.Context, ac entities.ActualCost) (entities.ActualCost, error) {
	av, err := attributevalue.MarshalMap(toActualCostItem(ac))
	if err != nil {
		return entities.ActualCost{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				ConditionCheck: &types.ConditionCheck{
					TableName: aws.String(r.itemsTable),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: ac.ItemID},
					},
					ConditionExpression: aws.String("attribute_exists(id)"),
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(r.tableName),
					Item:      av,
				},
			},
		},
	})
	if err != nil {
		if isTransactionConditionFailure(err) {
			return entities.ActualCost{}, nil
		}
		return entities.ActualCost{}, err
	}
	return ac, nil
}

func (r *ActualCostDynamoRepository) GetByID(ctx context.Context, id string) (entities.ActualCost, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ActualCost{}, err
	}
	if len(out.Item) == 0 {
		return entities.ActualCost{}, nil
	}

	var it actualCostItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ActualCost{}, err
	}
	return fromActualCostItem(it), nil
}

func (r *ActualCostDynamoRepository) ListByItemID(ctx context.Context, itemID string) ([]entities.ActualCost, error) {
	var actuals []entities.ActualCost
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String("item_id-index"),
			KeyConditionExpression: aws.String("#item_id = :item_id"),
			ExpressionAttributeNames: map[string]string{
				"#item_id": "item_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":item_id": &types.AttributeValueMemberS{Value: itemID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it actualCostItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			actuals = append(actuals, fromActualCostItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return actuals, nil
}

// isTransactionConditionFailure reports whether a TransactWriteItems call was
// cancelled because one of its condition checks failed.
func isTransactionConditionFailure(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

func toActualCostItem(ac entities.ActualCost) actualCostItem {
	return actualCostItem{
		ID:                 ac.ID,
		ItemID:             ac.ItemID,
		ActualUnitPrice:    floatToString(ac.ActualUnitPrice),
		ActualQuantity:     optFloatToString(ac.ActualQuantity),
		TotalActual:        floatToString(ac.TotalActual),
		VarianceAmount:     floatToString(ac.VarianceAmount),
		VariancePercentage: floatToString(ac.VariancePercentage),
		RecordedAt:         timeToString(ac.RecordedAt),
		CreatedAt:          timeToString(ac.CreatedAt),
		UpdatedAt:          timeToString(ac.UpdatedAt),
	}
}

func fromActualCostItem(it actualCostItem) entities.ActualCost {
	return entities.ActualCost{
		ID:                 it.ID,
		ItemID:             it.ItemID,
		ActualUnitPrice:    stringToFloat(it.ActualUnitPrice),
		ActualQuantity:     stringToOptFloat(it.ActualQuantity),
		TotalActual:        stringToFloat(it.TotalActual),
		VarianceAmount:     stringToFloat(it.VarianceAmount),
		VariancePercentage: stringToFloat(it.VariancePercentage),
		RecordedAt:         stringToTime(it.RecordedAt),
		CreatedAt:          stringToTime(it.CreatedAt),
		UpdatedAt:          stringToTime(it.UpdatedAt),
	}
}
