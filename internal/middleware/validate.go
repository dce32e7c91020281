package middleware

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/UdayPS-4o/tradewithus/internal/models"
	"github.com/UdayPS-4o/tradewithus/internal/utils"
)

// Locals keys holding the parsed, validated request bodies.
const (
	LocalProfileBody = "profile_body"
	LocalProductBody = "product_body"
)

var validate = validator.New()

// ValidateProfile checks the flat required-field list for profiles and stores
// the parsed document for the handler.
func ValidateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p models.Profile
		if err := c.BodyParser(&p); err != nil {
			return utils.JSONError(c, fiber.StatusBadRequest, "Missing required profile fields")
		}
		if err := validate.Struct(&p); err != nil {
			return utils.JSONError(c, fiber.StatusBadRequest, "Missing required profile fields")
		}
		c.Locals(LocalProfileBody, &p)
		return c.Next()
	}
}

// ValidateProduct checks product payloads category by category: core fields,
// then price, then details, then shipping, reporting the first category with
// a missing field.
func ValidateProduct() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p models.Product
		if err := c.BodyParser(&p); err != nil {
			return utils.JSONError(c, fiber.StatusBadRequest, "Missing required product fields")
		}
		if err := validate.Struct(&p); err != nil {
			return utils.JSONError(c, fiber.StatusBadRequest, productValidationMessage(err))
		}
		c.Locals(LocalProductBody, &p)
		return c.Next()
	}
}

func productValidationMessage(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return "Missing required product fields"
	}

	var price, details, shipping bool
	for _, fe := range ve {
		ns := fe.Namespace()
		switch {
		case strings.Contains(ns, ".Price."):
			price = true
		case strings.Contains(ns, ".Details."):
			details = true
		case strings.Contains(ns, ".Shipping."):
			shipping = true
		default:
			// A missing core field wins regardless of what else failed.
			return "Missing required product fields"
		}
	}
	switch {
	case price:
		return "Invalid price data"
	case details:
		return "Invalid product details"
	case shipping:
		return "Invalid shipping details"
	}
	return "Missing required product fields"
}
