// Package ddb implements the memory repository on DynamoDB. Each memory group
// is a single item; the item sequence lives in a list attribute and is edited
// with the store's atomic list primitives rather than read-modify-write.
package ddb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/omercangizik/AniKutusu1/internal/domain"
	"github.com/omercangizik/AniKutusu1/internal/repository"
	appErrors "github.com/omercangizik/AniKutusu1/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// MemoryRepository implements repository.MemoryRepository using DynamoDB.
type MemoryRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewMemoryRepository creates a new DynamoDB-backed repository.
func NewMemoryRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) repository.MemoryRepository {
	return &MemoryRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// groupItem is the DynamoDB item structure for a memory group document.
type groupItem struct {
	PK        string          `dynamodbav:"PK"`
	SK        string          `dynamodbav:"SK"`
	GroupID   string          `dynamodbav:"GroupID"`
	Items     []domain.Memory `dynamodbav:"Items"`
	Version   int             `dynamodbav:"Version"`
	CreatedAt string          `dynamodbav:"CreatedAt"`
	UpdatedAt string          `dynamodbav:"UpdatedAt"`
}

func groupKey(groupID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: "GROUP#" + groupID},
		"SK": &types.AttributeValueMemberS{Value: "METADATA"},
	}
}

// FindGroup loads a group document by id.
func (r *MemoryRepository) FindGroup(ctx context.Context, groupID string) (*domain.MemoryGroup, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       groupKey(groupID),
	})
	if err != nil {
		return nil, appErrors.NewInternal("failed to load memory group", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var item groupItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, appErrors.NewInternal("failed to unmarshal memory group", err)
	}
	return toDomain(item), nil
}

// EnsureGroup lazily creates an empty group document. A document that already
// exists is left untouched.
func (r *MemoryRepository) EnsureGroup(ctx context.Context, groupID string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	item := groupItem{
		PK:        "GROUP#" + groupID,
		SK:        "METADATA",
		GroupID:   groupID,
		Items:     []domain.Memory{},
		Version:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return appErrors.NewInternal("failed to marshal memory group", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return nil
		}
		return appErrors.NewInternal("failed to create memory group", err)
	}

	r.logger.Info("Created empty memory group", zap.String("groupID", groupID))
	return nil
}

// AppendMemory appends one memory to the group's item sequence with a single
// list_append update, creating the document when absent.
func (r *MemoryRepository) AppendMemory(ctx context.Context, groupID string, m domain.Memory) error {
	now := time.Now().UTC().Format(time.RFC3339)

	update := expression.
		Set(expression.Name("GroupID"), expression.Value(groupID)).
		Set(expression.Name("Items"), expression.ListAppend(
			expression.IfNotExists(expression.Name("Items"), expression.Value([]domain.Memory{})),
			expression.Value([]domain.Memory{m}),
		)).
		Set(expression.Name("CreatedAt"), expression.IfNotExists(expression.Name("CreatedAt"), expression.Value(now))).
		Set(expression.Name("UpdatedAt"), expression.Value(now)).
		Add(expression.Name("Version"), expression.Value(1))

	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return appErrors.NewInternal("failed to build append expression", err)
	}

	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       groupKey(groupID),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		r.logger.Error("Failed to append memory",
			zap.String("groupID", groupID),
			zap.String("memoryID", m.MemoryID),
			zap.Error(err),
		)
		return appErrors.NewInternal("failed to append memory", err)
	}
	return nil
}

// ReplaceItems overwrites the item sequence under a version check. A failed
// condition means another writer got there first.
func (r *MemoryRepository) ReplaceItems(ctx context.Context, groupID string, items []domain.Memory, expectedVersion int) error {
	if items == nil {
		items = []domain.Memory{}
	}
	now := time.Now().UTC().Format(time.RFC3339)

	update := expression.
		Set(expression.Name("Items"), expression.Value(items)).
		Set(expression.Name("UpdatedAt"), expression.Value(now)).
		Add(expression.Name("Version"), expression.Value(1))
	cond := expression.Name("Version").Equal(expression.Value(expectedVersion))

	expr, err := expression.NewBuilder().WithUpdate(update).WithCondition(cond).Build()
	if err != nil {
		return appErrors.NewInternal("failed to build replace expression", err)
	}

	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       groupKey(groupID),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return appErrors.NewInternal(
				fmt.Sprintf("memory group %s was modified concurrently", groupID), err)
		}
		return appErrors.NewInternal("failed to replace memory items", err)
	}
	return nil
}

func toDomain(item groupItem) *domain.MemoryGroup {
	items := item.Items
	if items == nil {
		items = []domain.Memory{}
	}
	return &domain.MemoryGroup{
		GroupID: item.GroupID,
		Items:   items,
		Version: item.Version,
	}
}
