package service

import (
	"context"
	"fmt"
	"time"

	"github.com/GeorgePerakathu/To-Do-Reminder-App/internal/domain"
)

// TodoService handles todo operations
type TodoService struct {
	todoRepo      TodoRepository
	workspaceRepo WorkspaceRepository
}

// NewTodoService creates a new todo service
func NewTodoService(todoRepo TodoRepository, workspaceRepo WorkspaceRepository) *TodoService {
	return &TodoService{
		todoRepo:      todoRepo,
		workspaceRepo: workspaceRepo,
	}
}

// Create persists a new todo after confirming its workspace exists. The
// existence check runs before any write so a todo bound to an unknown
// workspace never reaches the store.
func (s *TodoService) Create(ctx context.Context, input domain.TodoCreate) (*domain.Todo, error) {
	workspace, err := s.workspaceRepo.GetByName(ctx, input.Workspace)
	if err != nil {
		return nil, fmt.Errorf("failed to check workspace: %w", err)
	}
	if workspace == nil {
		return nil, domain.ErrWorkspaceMissing
	}

	todo := &domain.Todo{
		Title:       input.Title,
		Description: input.Description,
		Completed:   false,
		CreatedAt:   time.Now().UTC(),
		DueDate:     input.DueDate,
		Priority:    domain.PriorityDefault,
		Workspace:   input.Workspace,
	}
	if input.Completed != nil {
		todo.Completed = *input.Completed
	}
	if input.CreatedAt != nil {
		todo.CreatedAt = *input.CreatedAt
	}
	if input.Priority != nil {
		todo.Priority = *input.Priority
	}

	if err := s.todoRepo.Create(ctx, todo); err != nil {
		return nil, err
	}

	return todo, nil
}

// ListByWorkspace returns all todos in a workspace; empty is not an error
func (s *TodoService) ListByWorkspace(ctx context.Context, workspace string) ([]domain.Todo, error) {
	return s.todoRepo.ListByWorkspace(ctx, workspace)
}

// Update applies a partial update. Fields left nil in the input are not
// touched; if nothing effective was supplied the store is never called.
func (s *TodoService) Update(ctx context.Context, id string, input domain.TodoUpdate) (*domain.Todo, error) {
	fields := input.Fields()
	if len(fields) == 0 {
		return nil, domain.ErrNoUpdateFields
	}

	return s.todoRepo.Update(ctx, id, fields)
}

// Delete removes one todo by ID
func (s *TodoService) Delete(ctx context.Context, id string) error {
	return s.todoRepo.Delete(ctx, id)
}

// DeleteAll clears every todo, across all workspaces
func (s *TodoService) DeleteAll(ctx context.Context) error {
	return s.todoRepo.DeleteAll(ctx)
}
