package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/GeorgePerakathu/To-Do-Reminder-App/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WorkspaceRepository persists workspaces
type WorkspaceRepository struct {
	db *DB
}

// NewWorkspaceRepository creates a new workspace repository
func NewWorkspaceRepository(db *DB) *WorkspaceRepository {
	return &WorkspaceRepository{db: db}
}

func (r *WorkspaceRepository) collection() *mongo.Collection {
	return r.db.db.Collection(workspaceCollection)
}

// Create inserts a workspace and fills in its generated ID. A duplicate name
// (unique index violation) maps to domain.ErrWorkspaceExists so a racing
// insert fails the same way a detected duplicate does.
func (r *WorkspaceRepository) Create(ctx context.Context, workspace *domain.Workspace) error {
	res, err := r.collection().InsertOne(ctx, workspace)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrWorkspaceExists
		}
		return fmt.Errorf("failed to insert workspace: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		workspace.ID = oid
	}

	return nil
}

// GetByName returns the workspace with the given name, or nil if absent
func (r *WorkspaceRepository) GetByName(ctx context.Context, name string) (*domain.Workspace, error) {
	var workspace domain.Workspace
	err := r.collection().FindOne(ctx, bson.M{"name": name}).Decode(&workspace)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find workspace: %w", err)
	}
	return &workspace, nil
}
