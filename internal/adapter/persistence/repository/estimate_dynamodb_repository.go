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

const defaultEstimatesTableName = "estimates"

type estimateItem struct {
	ID             string `dynamodbav:"id"`
	SiteID         string `dynamodbav:"site_id"`
	Title          string `dynamodbav:"title"`
	Version        int    `dynamodbav:"version"`
	Status         string `dynamodbav:"status"`
	TotalEstimated string `dynamodbav:"total_estimated"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (site_id-index): site_id
//
// CreateWithItems writes the estimate and its item copies through
// TransactWriteItems so duplication is all-or-nothing: a partial item set
// would leave total_estimated inconsistent with the visible items.
type EstimateDynamoRepository struct {
	ddb        *dynamodb.Client
	tableName  string
	itemsTable string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
		itemsTable: getenvDefault("ESTIMATE_ITEMS_TABLE", defaultEstimateItemsTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
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
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) CreateWithItems(ctx context.Context, e entities.Estimate, items []entities.EstimateItem) (entities.Estimate, error) {
	estimateAV, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
	}

	writes := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                estimateAV,
				ConditionExpression: aws.String("attribute_not_exists(id)"),
			},
		},
	}
	for _, it := range items {
		itemAV, err := attributevalue.MarshalMap(toEstimateLineItem(it))
		if err != nil {
			return entities.Estimate{}, err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.itemsTable),
				Item:      itemAV,
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) ListBySiteID(ctx context.Context, siteID string) ([]entities.Estimate, error) {
	var estimates []entities.Estimate
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String("site_id-index"),
			KeyConditionExpression: aws.String("#site_id = :site_id"),
			ExpressionAttributeNames: map[string]string{
				"#site_id": "site_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":site_id": &types.AttributeValueMemberS{Value: siteID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it estimateItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			estimates = append(estimates, fromEstimateItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return estimates, nil
}

func (r *EstimateDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.EstimateStatus) (entities.Estimate, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: timeToString(nowUTC())},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Estimate{}, nil
	}
	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	return estimateItem{
		ID:             e.ID,
		SiteID:         e.SiteID,
		Title:          e.Title,
		Version:        e.Version,
		Status:         string(e.Status),
		TotalEstimated: floatToString(e.TotalEstimated),
		CreatedAt:      timeToString(e.CreatedAt),
		UpdatedAt:      timeToString(e.UpdatedAt),
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	return entities.Estimate{
		ID:             it.ID,
		SiteID:         it.SiteID,
		Title:          it.Title,
		Version:        it.Version,
		Status:         entities.EstimateStatus(it.Status),
		TotalEstimated: stringToFloat(it.TotalEstimated),
		CreatedAt:      stringToTime(it.CreatedAt),
		UpdatedAt:      stringToTime(it.UpdatedAt),
	}
}
