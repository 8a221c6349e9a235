package repository

import (
	"context"

	"costwatch/internal/domain/entities"
	"costwatch/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEstimateItemsTableName = "estimate_items"

type estimateLineItem struct {
	ID             string `dynamodbav:"id"`
	EstimateID     string `dynamodbav:"estimate_id"`
	CategoryID     string `dynamodbav:"category_id"`
	Description    string `dynamodbav:"description"`
	Quantity       string `dynamodbav:"quantity"`
	Unit           string `dynamodbav:"unit"`
	UnitPrice      string `dynamodbav:"unit_price"`
	TotalEstimated string `dynamodbav:"total_estimated"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// EstimateItemDynamoRepository persists EstimateItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (estimate_id-index): estimate_id
//
// UpdateWithActuals rewrites the item and every recomputed actual-cost record
// through TransactWriteItems: an item edit retroactively re-derives attached
// variances, and readers must never see the two halves out of step.
type EstimateItemDynamoRepository struct {
	ddb          *dynamodb.Client
	tableName    string
	actualsTable string
}

var _ interfaces.IEstimateItemRepository = (*EstimateItemDynamoRepository)(nil)

func NewEstimateItemDynamoRepository(ddb *dynamodb.Client) *EstimateItemDynamoRepository {
	return &EstimateItemDynamoRepository{
		ddb:          ddb,
		tableName:    getenvDefault("ESTIMATE_ITEMS_TABLE", defaultEstimateItemsTableName),
		actualsTable: getenvDefault("ACTUAL_COSTS_TABLE", defaultActualCostsTableName),
	}
}

func (r *EstimateItemDynamoRepository) Create(ctx context.Context, it entities.EstimateItem) (entities.EstimateItem, error) {
	av, err := attributevalue.MarshalMap(toEstimateLineItem(it))
	if err != nil {
		return entities.EstimateItem{}, err
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
		return entities.EstimateItem{}, err
	}
	return it, nil
}

func (r *EstimateItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.EstimateItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EstimateItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.EstimateItem{}, nil
	}

	var it estimateLineItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EstimateItem{}, err
	}
	return fromEstimateLineItem(it), nil
}

func (r *EstimateItemDynamoRepository) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.EstimateItem, error) {
	var items []entities.EstimateItem
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String("estimate_id-index"),
			KeyConditionExpression: aws.String("#estimate_id = :estimate_id"),
			ExpressionAttributeNames: map[string]string{
				"#estimate_id": "estimate_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":estimate_id": &types.AttributeValueMemberS{Value: estimateID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it estimateLineItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromEstimateLineItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

func (r *EstimateItemDynamoRepository) UpdateWithActuals(ctx context.Context, it entities.EstimateItem, actuals []entities.ActualCost) (entities.EstimateItem, error) {
	itemAV, err := attributevalue.MarshalMap(toEstimateLineItem(it))
	if err != nil {
		return entities.EstimateItem{}, err
	}

	writes := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                itemAV,
				ConditionExpression: aws.String("attribute_exists(id)"),
			},
		},
	}
	for _, ac := range actuals {
		acAV, err := attributevalue.MarshalMap(toActualCostItem(ac))
		if err != nil {
			return entities.EstimateItem{}, err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.actualsTable),
				Item:      acAV,
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	})
	if err != nil {
		if isTransactionConditionFailure(err) {
			return entities.EstimateItem{}, nil
		}
		return entities.EstimateItem{}, err
	}
	return it, nil
}

func toEstimateLineItem(it entities.EstimateItem) estimateLineItem {
	return estimateLineItem{
		ID:             it.ID,
		EstimateID:     it.EstimateID,
		CategoryID:     it.CategoryID,
		Description:    it.Description,
		Quantity:       floatToString(it.Quantity),
		Unit:           it.Unit,
		UnitPrice:      floatToString(it.UnitPrice),
		TotalEstimated: floatToString(it.TotalEstimated),
		CreatedAt:      timeToString(it.CreatedAt),
		UpdatedAt:      timeToString(it.UpdatedAt),
	}
}

func fromEstimateLineItem(it estimateLineItem) entities.EstimateItem {
	return entities.EstimateItem{
		ID:             it.ID,
		EstimateID:     it.EstimateID,
		CategoryID:     it.CategoryID,
		Description:    it.Description,
		Quantity:       stringToFloat(it.Quantity),
		Unit:           it.Unit,
		UnitPrice:      stringToFloat(it.UnitPrice),
		TotalEstimated: stringToFloat(it.TotalEstimated),
		CreatedAt:      stringToTime(it.CreatedAt),
		UpdatedAt:      stringToTime(it.UpdatedAt),
	}
}
