package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/GeorgePerakathu/To-Do-Reminder-App/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TodoRepository persists todos
type TodoRepository struct {
	db *DB
}

// NewTodoRepository creates a new todo repository
func NewTodoRepository(db *DB) *TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) collection() *mongo.Collection {
	return r.db.db.Collection(todoCollection)
}

// Create inserts a todo and fills in its generated ID
func (r *TodoRepository) Create(ctx context.Context, todo *domain.Todo) error {
	res, err := r.collection().InsertOne(ctx, todo)
	if err != nil {
		return fmt.Errorf("failed to insert todo: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		todo.ID = oid
	}

	return nil
}

// ListByWorkspace returns all todos bound to the given workspace name, in
// store-native order. Never returns nil: an empty result is an empty slice.
func (r *TodoRepository) ListByWorkspace(ctx context.Context, workspace string) ([]domain.Todo, error) {
	cursor, err := r.collection().Find(ctx, bson.M{"workspace": workspace})
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer cursor.Close(ctx)

	todos := []domain.Todo{}
	if err := cursor.All(ctx, &todos); err != nil {
		return nil, fmt.Errorf("failed to decode todos: %w", err)
	}

	return todos, nil
}

// Update applies the given field changes and returns the updated document.
// Not-found keys on document existence, not on whether any field actually
// changed, so a no-op update of an existing todo still succeeds.
func (r *TodoRepository) Update(ctx context.Context, id string, fields map[string]any) (*domain.Todo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTodoNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var todo domain.Todo
	err = r.collection().
		FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": fields}, opts).
		Decode(&todo)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrTodoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	return &todo, nil
}

// Delete removes one todo by ID
func (r *TodoRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTodoNotFound
	}

	res, err := r.collection().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTodoNotFound
	}

	return nil
}

// DeleteAll removes every todo across all workspaces
func (r *TodoRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.collection().DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to delete todos: %w", err)
	}
	return nil
}
