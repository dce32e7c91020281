package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/UdayPS-4o/tradewithus/internal/middleware"
	"github.com/UdayPS-4o/tradewithus/internal/models"
	"github.com/UdayPS-4o/tradewithus/internal/services"
	"github.com/UdayPS-4o/tradewithus/internal/utils"
)

type ProfileHandler struct {
	svc *services.ProfileService
	log *zap.Logger
}

func NewProfileHandler(svc *services.ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger}
}

func (h *ProfileHandler) GetByID(c *fiber.Ctx) error {
	profile, err := h.svc.GetByID(c.Context(), c.Params("profileId"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.JSONError(c, fiber.StatusNotFound, "Profile not found")
		}
		h.log.Error("get profile failed", zap.Error(err))
		return utils.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return utils.JSONSuccess(c, fiber.StatusOK, profile)
}

func (h *ProfileHandler) GetAll(c *fiber.Ctx) error {
	profiles, err := h.svc.GetAll(c.Context())
	if err != nil {
		h.log.Error("get all profiles failed", zap.Error(err))
		return utils.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return utils.JSONSuccess(c, fiber.StatusOK, profiles)
}

func (h *ProfileHandler) Create(c *fiber.Ctx) error {
	body := c.Locals(middleware.LocalProfileBody).(*models.Profile)

	profile, err := h.svc.Create(c.Context(), body)
	if err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			return utils.JSONError(c, fiber.StatusConflict, "Profile already exists")
		}
		h.log.Error("create profile failed", zap.Error(err))
		return utils.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return utils.JSONSuccess(c, fiber.StatusCreated, profile)
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	body := c.Locals(middleware.LocalProfileBody).(*models.Profile)

	profile, err := h.svc.Update(c.Context(), c.Params("profileId"), body)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.JSONError(c, fiber.StatusNotFound, "Profile not found")
		}
		h.log.Error("update profile failed", zap.Error(err))
		return utils.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return utils.JSONSuccess(c, fiber.StatusOK, profile)
}

func (h *ProfileHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.svc.Delete(c.Context(), c.Params("profileId"))
	if err != nil {
		h.log.Error("delete profile failed", zap.Error(err))
		return utils.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if !deleted {
		return utils.JSONError(c, fiber.StatusNotFound, "Profile not found")
	}
	return c.JSON(fiber.Map{"success": true, "message": "Profile deleted successfully"})
}
