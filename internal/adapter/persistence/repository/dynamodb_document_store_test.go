package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeDynamo struct {
	items       map[string]map[string]types.AttributeValue
	tableExists bool
	created     int
	describeErr error
	createErr   error
	getErr      error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if f.describeErr != nil {
		return nil, f.describeErr
	}
	if !f.tableExists {
		return nil, &types.ResourceNotFoundException{Message: aws.String("table not found")}
	}
	return &dynamodb.DescribeTableOutput{Table: &types.TableDescription{TableName: in.TableName}}, nil
}

func (f *fakeDynamo) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created++
	f.tableExists = true
	return &dynamodb.CreateTableOutput{TableDescription: &types.TableDescription{TableName: in.TableName}}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	key := in.Key["key"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[key]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	key := in.Item["key"].(*types.AttributeValueMemberS).Value
	f.items[key] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func TestDynamoDocumentStore(t *testing.T) {
	ctx := context.Background()

	t.Run("empty item is not found", func(t *testing.T) {
		store := NewDynamoDocumentStore(newFakeDynamo(), "mixto_documents")
		got, found, err := store.Get(ctx, "mixto_v1_budgets")
		if err != nil || found || got != nil {
			t.Fatalf("expected not found, got %s found=%v err=%v", got, found, err)
		}
	})

	t.Run("put then get", func(t *testing.T) {
		ddb := newFakeDynamo()
		store := NewDynamoDocumentStore(ddb, "mixto_documents")
		if err := store.Put(ctx, "k", []byte(`{"a":1}`)); err != nil {
			t.Fatalf("put: %v", err)
		}
		if _, ok := ddb.items["k"]["updated_at"]; !ok {
			t.Fatalf("expected updated_at attribute, got %+v", ddb.items["k"])
		}
		got, found, err := store.Get(ctx, "k")
		if err != nil || !found || string(got) != `{"a":1}` {
			t.Fatalf("unexpected get: %s %v %v", got, found, err)
		}
	})

	t.Run("get error surfaces", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.getErr = errors.New("throttled")
		if _, _, err := NewDynamoDocumentStore(ddb, "t").Get(ctx, "k"); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("ensure table creates once", func(t *testing.T) {
		ddb := newFakeDynamo()
		store := NewDynamoDocumentStore(ddb, "mixto_documents")
		for i := 0; i < 2; i++ {
			if err := store.EnsureTable(ctx); err != nil {
				t.Fatalf("ensure table: %v", err)
			}
		}
		if ddb.created != 1 {
			t.Fatalf("expected 1 create, got %d", ddb.created)
		}
	})

	t.Run("ensure table tolerates a concurrent create", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.createErr = &types.ResourceInUseException{Message: aws.String("in use")}
		if err := NewDynamoDocumentStore(ddb, "t").EnsureTable(ctx); err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
	})

	t.Run("ensure table surfaces other errors", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.describeErr = errors.New("access denied")
		if err := NewDynamoDocumentStore(ddb, "t").EnsureTable(ctx); err == nil {
			t.Fatal("expected error")
		}
	})
}
