package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/UdayPS-4o/tradewithus/internal/services"
	"github.com/UdayPS-4o/tradewithus/internal/utils"
)

type FeedHandler struct {
	svc *services.FeedService
	log *zap.Logger
}

func NewFeedHandler(svc *services.FeedService, logger *zap.Logger) *FeedHandler {
	return &FeedHandler{svc: svc, log: logger}
}

// GetHomeFeed returns every product with its seller attached. Individual
// seller lookup failures are absorbed by the service, so the only error here
// is the product listing itself.
func (h *FeedHandler) GetHomeFeed(c *fiber.Ctx) error {
	items, err := h.svc.GetHomeFeed(c.Context())
	if err != nil {
		h.log.Error("home feed failed", zap.Error(err))
		return utils.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return utils.JSONSuccess(c, fiber.StatusOK, items)
}
