package handler

import (
	"errors"
	"net/http"

	"github.com/GeorgePerakathu/To-Do-Reminder-App/internal/api/response"
	"github.com/GeorgePerakathu/To-Do-Reminder-App/internal/domain"
	"github.com/GeorgePerakathu/To-Do-Reminder-App/internal/service"
	"github.com/go-playground/validator/v10"
)

// WorkspaceHandler handles workspace endpoints
type WorkspaceHandler struct {
	workspaceService *service.WorkspaceService
}

// NewWorkspaceHandler creates a new workspace handler
func NewWorkspaceHandler(workspaceService *service.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceService: workspaceService}
}

// Create handles workspace creation
func (h *WorkspaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}

	workspace, err := h.workspaceService.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrWorkspaceExists) {
			response.BadRequest(w, "Workspace already exists")
			return
		}
		response.InternalError(w, "failed to create workspace")
		return
	}

	response.OK(w, workspace.Public())
}

// Login verifies workspace credentials. The failure message is deliberately
// identical whether the name is unknown or the password is wrong.
func (h *WorkspaceHandler) Login(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}

	workspace, err := h.workspaceService.Login(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			response.BadRequest(w, "Invalid workspace name or password")
			return
		}
		response.InternalError(w, "failed to verify credentials")
		return
	}

	response.OK(w, workspace.Public())
}

// decodeCredentials decodes and shape-validates the shared credentials body,
// writing the error response itself when validation fails. A too-short
// password gets its dedicated 400 message instead of the generic 422 list.
func (h *WorkspaceHandler) decodeCredentials(w http.ResponseWriter, r *http.Request) (domain.WorkspaceCredentials, bool) {
	var input domain.WorkspaceCredentials
	if fieldErrs := decodeBody(r, &input); fieldErrs != nil {
		response.UnprocessableEntity(w, fieldErrs)
		return input, false
	}

	if err := validate.Struct(input); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			for _, e := range validationErrs {
				if e.Field() == "password" && e.Tag() == "min" {
					response.BadRequest(w, "Password must be at least 5 characters long")
					return input, false
				}
			}
			response.UnprocessableEntity(w, shapeErrors(validationErrs))
			return input, false
		}
		response.BadRequest(w, "invalid request body")
		return input, false
	}

	return input, true
}
