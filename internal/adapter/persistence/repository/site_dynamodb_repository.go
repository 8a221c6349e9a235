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

const defaultSitesTableName = "sites"

type siteItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Status      string `dynamodbav:"status"`
	BudgetLimit string `dynamodbav:"budget_limit"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// SiteDynamoRepository persists Site entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type SiteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISiteRepository = (*SiteDynamoRepository)(nil)

func NewSiteDynamoRepository(ddb *dynamodb.Client) *SiteDynamoRepository {
	return &SiteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SITES_TABLE", defaultSitesTableName),
	}
}

func (r *SiteDynamoRepository) Create(ctx context.Context, s entities.Site) (entities.Site, error) {
	av, err := attributevalue.MarshalMap(toSiteItem(s))
	if err != nil {
		return entities.Site{}, err
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
		return entities.Site{}, err
	}
	return s, nil
}

func (r *SiteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Site, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Site{}, err
	}
	if len(out.Item) == 0 {
		return entities.Site{}, nil
	}

	var it siteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Site{}, err
	}
	return fromSiteItem(it), nil
}

func (r *SiteDynamoRepository) List(ctx context.Context) ([]entities.Site, error) {
	var sites []entities.Site
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it siteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			sites = append(sites, fromSiteItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return sites, nil
}

func (r *SiteDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.SiteStatus) (entities.Site, error) {
	return r.update(ctx, id, "SET #status = :status, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		map[string]string{"#status": "status"},
	)
}

func (r *SiteDynamoRepository) UpdateBudgetLimit(ctx context.Context, id string, limit *float64) (entities.Site, error) {
	return r.update(ctx, id, "SET #budget_limit = :budget_limit, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":budget_limit": &types.AttributeValueMemberS{Value: optFloatToString(limit)},
		},
		map[string]string{"#budget_limit": "budget_limit"},
	)
}

func (r *SiteDynamoRepository) update(ctx context.Context, id, expr string, values map[string]types.AttributeValue, names map[string]string) (entities.Site, error) {
	values[":updated_at"] = &types.AttributeValueMemberS{Value: timeToString(nowUTC())}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#updated_at": "updated_at"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Site{}, nil
		}
		return entities.Site{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Site{}, nil
	}
	var it siteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Site{}, err
	}
	return fromSiteItem(it), nil
}

func toSiteItem(s entities.Site) siteItem {
	return siteItem{
		ID:          s.ID,
		Name:        s.Name,
		Status:      string(s.Status),
		BudgetLimit: optFloatToString(s.BudgetLimit),
		CreatedAt:   timeToString(s.CreatedAt),
		UpdatedAt:   timeToString(s.UpdatedAt),
	}
}

func fromSiteItem(it siteItem) entities.Site {
	return entities.Site{
		ID:          it.ID,
		Name:        it.Name,
		Status:      entities.SiteStatus(it.Status),
		BudgetLimit: stringToOptFloat(it.BudgetLimit),
		CreatedAt:   stringToTime(it.CreatedAt),
		UpdatedAt:   stringToTime(it.UpdatedAt),
	}
}
