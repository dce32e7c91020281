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

type ProductHandler struct {
	svc *services.ProductService
	log *zap.Logger
}

func NewProductHandler(svc *services.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{svc: svc, log: logger}
}

func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	product, err := h.svc.GetByID(c.Context(), c.Params("productId"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.JSONError(c, fiber.StatusNotFound, "Product not found")
		}
		h.log.Error("get product failed", zap.Error(err))
		return utils.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return utils.JSONSuccess(c, fiber.StatusOK, product)
}

func (h *ProductHandler) GetAll(c *fiber.Ctx) error {
	products, err := h.svc.GetAll(c.Context())
	if err != nil {
		h.log.Error("get all products failed", zap.Error(err))
		return utils.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return utils.JSONSuccess(c, fiber.StatusOK, products)
}

func (h *ProductHandler) GetBySeller(c *fiber.Ctx) error {
	products, err := h.svc.GetBySellerID(c.Context(), c.Params("sellerId"))
	if err != nil {
		h.log.Error("get products by seller failed", zap.Error(err))
		return utils.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return utils.JSONSuccess(c, fiber.StatusOK, products)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	body := c.Locals(middleware.LocalProductBody).(*models.Product)

	product, err := h.svc.Create(c.Context(), body)
	if err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			return utils.JSONError(c, fiber.StatusConflict, "Product already exists")
		}
		h.log.Error("create product failed", zap.Error(err))
		return utils.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return utils.JSONSuccess(c, fiber.StatusCreated, product)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	body := c.Locals(middleware.LocalProductBody).(*models.Product)

	product, err := h.svc.Update(c.Context(), c.Params("productId"), body)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.JSONError(c, fiber.StatusNotFound, "Product not found")
		}
		h.log.Error("update product failed", zap.Error(err))
		return utils.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return utils.JSONSuccess(c, fiber.StatusOK, product)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.svc.Delete(c.Context(), c.Params("productId"))
	if err != nil {
		h.log.Error("delete product failed", zap.Error(err))
		return utils.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if !deleted {
		return utils.JSONError(c, fiber.StatusNotFound, "Product not found")
	}
	return c.JSON(fiber.Map{"success": true, "message": "Product deleted successfully"})
}
