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

const defaultCategoriesTableName = "categories"

type categoryItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	SortOrder int    `dynamodbav:"sort_order"`
}

// CategoryDynamoRepository persists the flat category lookup in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type CategoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICategoryRepository = (*CategoryDynamoRepository)(nil)

func NewCategoryDynamoRepository(ddb *dynamodb.Client) *CategoryDynamoRepository {
	return &CategoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CATEGORIES_TABLE", defaultCategoriesTableName),
	}
}

func (r *CategoryDynamoRepository) Create(ctx context.Context, c entities.Category) (entities.Category, error) {
	av, err := attributevalue.MarshalMap(categoryItem{ID: c.ID, Name: c.Name, SortOrder: c.SortOrder})
	if err != nil {
		return entities.Category{}, err
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
		return entities.Category{}, err
	}
	return c, nil
}

func (r *CategoryDynamoRepository) GetByID(ctx context.Context, id string) (entities.Category, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Category{}, err
	}
	if len(out.Item) == 0 {
		return entities.Category{}, nil
	}

	var it categoryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Category{}, err
	}
	return entities.Category{ID: it.ID, Name: it.Name, SortOrder: it.SortOrder}, nil
}

func (r *CategoryDynamoRepository) List(ctx context.Context) ([]entities.Category, error) {
	var cats []entities.Category
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
			var it categoryItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			cats = append(cats, entities.Category{ID: it.ID, Name: it.Name, SortOrder: it.SortOrder})
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return cats, nil
}
