package handlers

import (
	"foodkeeper-backend/domain"
	"foodkeeper-backend/internal/api/presenters"
	"foodkeeper-backend/pkg/notification"

	"github.com/gofiber/fiber/v2"
)

type (
	NotificationHandler interface {
		GetSchedule(c *fiber.Ctx) error
	}

	notificationHandler struct {
		queryService notification.QueryService
	}
)

func NewNotificationHandler(queryService notification.QueryService) NotificationHandler {
	return &notificationHandler{queryService: queryService}
}

func (h *notificationHandler) GetSchedule(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	foodID := c.Params("id")

	schedule, err := h.queryService.GetSchedule(c.Context(), foodID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetNotification, err)
	}

	return presenters.SuccessResponse(c, schedule, fiber.StatusOK, domain.MessageSuccessGetNotification)
}
