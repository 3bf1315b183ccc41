package service

import (
	"context"
	"fmt"

	"github.com/GeorgePerakathu/To-Do-Reminder-App/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// WorkspaceService handles workspace creation and credential verification
type WorkspaceService struct {
	workspaceRepo WorkspaceRepository
}

// NewWorkspaceService creates a new workspace service
func NewWorkspaceService(workspaceRepo WorkspaceRepository) *WorkspaceService {
	return &WorkspaceService{workspaceRepo: workspaceRepo}
}

// Create registers a new workspace with a bcrypt-hashed password. The name
// must be unused; the repository's unique index backs this check under
// concurrent creates.
func (s *WorkspaceService) Create(ctx context.Context, input domain.WorkspaceCredentials) (*domain.Workspace, error) {
	existing, err := s.workspaceRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check workspace name: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrWorkspaceExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.PasswordValue()), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	workspace := &domain.Workspace{
		Name:         input.Name,
		PasswordHash: hash,
	}

	if err := s.workspaceRepo.Create(ctx, workspace); err != nil {
		return nil, err
	}

	return workspace, nil
}

// Login verifies workspace credentials. An unknown name and a wrong password
// both return domain.ErrInvalidCredentials so the response never reveals
// which workspaces exist.
func (s *WorkspaceService) Login(ctx context.Context, input domain.WorkspaceCredentials) (*domain.Workspace, error) {
	workspace, err := s.workspaceRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}
	if workspace == nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(workspace.PasswordHash, []byte(input.PasswordValue())); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return workspace, nil
}

// GetByName returns the workspace with the given name, or nil if absent
func (s *WorkspaceService) GetByName(ctx context.Context, name string) (*domain.Workspace, error) {
	return s.workspaceRepo.GetByName(ctx, name)
}
