package handlers

import (
	"foodkeeper-backend/domain"
	"foodkeeper-backend/internal/api/presenters"
	"foodkeeper-backend/pkg/group"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	GroupHandler interface {
		AddFoodGroup(c *fiber.Ctx) error
		UpdateFoodGroup(c *fiber.Ctx) error
		DeleteFoodGroup(c *fiber.Ctx) error
		GetFoodGroups(c *fiber.Ctx) error
	}

	groupHandler struct {
		groupService group.GroupService
		validator    *validator.Validate
	}
)

func NewGroupHandler(groupService group.GroupService, validator *validator.Validate) GroupHandler {
	return &groupHandler{
		groupService: groupService,
		validator:    validator,
	}
}

func (h *groupHandler) AddFoodGroup(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddFoodGroupRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodGroup, err)
	}

	res, err := h.groupService.AddFoodGroup(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodGroup, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFoodGroup)
}

func (h *groupHandler) UpdateFoodGroup(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	groupID := c.Params("id")
	req := new(domain.UpdateFoodGroupRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFoodGroup, err)
	}

	if err := h.groupService.UpdateFoodGroup(c.Context(), groupID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFoodGroup, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateFoodGroup)
}

func (h *groupHandler) DeleteFoodGroup(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	groupID := c.Params("id")

	if err := h.groupService.DeleteFoodGroup(c.Context(), groupID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFoodGroup, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFoodGroup)
}

func (h *groupHandler) GetFoodGroups(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	groups, err := h.groupService.GetFoodGroups(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodGroups, err)
	}

	return presenters.SuccessResponse(c, groups, fiber.StatusOK, domain.MessageSuccessGetFoodGroups)
}
