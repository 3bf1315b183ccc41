package service

import (
	"context"

	"github.com/GeorgePerakathu/To-Do-Reminder-App/internal/domain"
)

// WorkspaceRepository is the persistence contract for workspaces.
// GetByName returns (nil, nil) when no workspace has the given name.
type WorkspaceRepository interface {
	Create(ctx context.Context, workspace *domain.Workspace) error
	GetByName(ctx context.Context, name string) (*domain.Workspace, error)
}

// TodoRepository is the persistence contract for todos
type TodoRepository interface {
	Create(ctx context.Context, todo *domain.Todo) error
	ListByWorkspace(ctx context.Context, workspace string) ([]domain.Todo, error)
	Update(ctx context.Context, id string, fields map[string]any) (*domain.Todo, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}
