package handlers

import (
	"errors"

	"jobcost-backend/domain"
	"jobcost-backend/internal/api/presenters"
	"jobcost-backend/pkg/project"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ProjectHandler interface {
		CreateProject(c *fiber.Ctx) error
		GetProjects(c *fiber.Ctx) error
		GetProjectDetails(c *fiber.Ctx) error
		UpdateProject(c *fiber.Ctx) error
		DeleteProject(c *fiber.Ctx) error
	}

	projectHandler struct {
		projectService project.ProjectService
		validator      *validator.Validate
	}
)

func NewProjectHandler(projectService project.ProjectService, validator *validator.Validate) ProjectHandler {
	return &projectHandler{
		projectService: projectService,
		validator:      validator,
	}
}

func (h *projectHandler) CreateProject(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateProjectRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateProject, err)
	}

	res, err := h.projectService.CreateProject(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateProject, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateProject)
}

func (h *projectHandler) GetProjects(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	projects, err := h.projectService.GetProjects(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProjects, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"projects": projects,
	}, fiber.StatusOK, domain.MessageSuccessGetProjects)
}

func (h *projectHandler) GetProjectDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	projectID := c.Params("id")

	res, err := h.projectService.GetProjectByID(c.Context(), projectID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetProject, err)
		}
		if errors.Is(err, domain.ErrUnauthorizedProjectAccess) {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedGetProject, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProject, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProject)
}

func (h *projectHandler) UpdateProject(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	projectID := c.Params("id")
	req := new(domain.UpdateProjectRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProject, err)
	}

	if err := h.projectService.UpdateProject(c.Context(), projectID, *req, userID); err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateProject, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProject, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateProject)
}

func (h *projectHandler) DeleteProject(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	projectID := c.Params("id")

	if err := h.projectService.DeleteProject(c.Context(), projectID, userID); err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteProject, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteProject, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteProject)
}
