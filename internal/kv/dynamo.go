package kv

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/smithy-go"
)

// Dynamo implements Table against one DynamoDB table.
type Dynamo struct {
	client *dynamodb.Client
	table  string
}

// NewDynamo wraps a DynamoDB client and table name.
func NewDynamo(client *dynamodb.Client, table string) *Dynamo {
	return &Dynamo{client: client, table: table}
}

// Name returns the underlying table name.
func (d *Dynamo) Name() string { return d.table }

func (d *Dynamo) Get(ctx context.Context, key Item) (Item, error) {
	out, err := d.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.table),
		Key:       key,
	})
	if err != nil {
		return nil, d.wrap("get", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	return out.Item, nil
}

func (d *Dynamo) Put(ctx context.Context, item Item) error {
	_, err := d.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.table),
		Item:      item,
	})
	if err != nil {
		return d.wrap("put", err)
	}
	return nil
}

func (d *Dynamo) Delete(ctx context.Context, key Item) error {
	_, err := d.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(d.table),
		Key:       key,
	})
	if err != nil {
		return d.wrap("delete", err)
	}
	return nil
}

// Scan retrieves every item, following pagination until the table is
// exhausted.
func (d *Dynamo) Scan(ctx context.Context) ([]Item, error) {
	var items []Item

	input := &dynamodb.ScanInput{TableName: aws.String(d.table)}
	for {
		out, err := d.client.Scan(ctx, input)
		if err != nil {
			return nil, d.wrap("scan", err)
		}
		for _, it := range out.Items {
			items = append(items, Item(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return items, nil
}

func (d *Dynamo) wrap(op string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return &Error{Op: op, Table: d.table, Code: apiErr.ErrorCode(), Message: apiErr.ErrorMessage()}
	}
	return &Error{Op: op, Table: d.table, Code: "InternalError", Message: err.Error()}
}
