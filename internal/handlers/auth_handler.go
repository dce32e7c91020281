package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/UdayPS-4o/tradewithus/internal/middleware"
	"github.com/UdayPS-4o/tradewithus/internal/models"
	"github.com/UdayPS-4o/tradewithus/internal/services"
	"github.com/UdayPS-4o/tradewithus/internal/utils"
)

type AuthHandler struct {
	users    *services.UserService
	jwt      *utils.JWTManager
	log      *zap.Logger
	validate *validator.Validate
}

func NewAuthHandler(users *services.UserService, jwt *utils.JWTManager, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, jwt: jwt, log: logger, validate: validator.New()}
}

// Signup creates a new account. Responds with the first validation message,
// mirroring the field order name -> email -> password.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req models.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Name is required"})
	}
	if msg := h.signupValidationMessage(&req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
	}

	user, err := h.users.Create(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "User already exists with this email"})
		}
		h.log.Error("signup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"user":    user.Public(),
	})
}

// Login verifies credentials and issues a 24h bearer token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Please enter a valid email"})
	}
	if msg := h.loginValidationMessage(&req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
	}

	user, err := h.users.Authenticate(c.Context(), req.Email, req.Password)
	if err != nil {
		h.log.Error("login failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid credentials"})
	}

	token, err := h.jwt.Generate(user.ID.Hex(), user.Email, user.Name)
	if err != nil {
		h.log.Error("token generation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user":    user.Public(),
	})
}

// Me answers from the token payload alone; no store round trip.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.LocalUserID).(string)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "User not found in token"})
	}
	return c.JSON(fiber.Map{
		"user": models.PublicUser{
			ID:    userID,
			Name:  c.Locals(middleware.LocalName).(string),
			Email: c.Locals(middleware.LocalEmail).(string),
		},
	})
}

// DeleteUser removes the caller's own account; deleting anyone else is 403.
func (h *AuthHandler) DeleteUser(c *fiber.Ctx) error {
	targetID := c.Params("userId")

	if _, err := h.users.FindByID(c.Context(), targetID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.JSONError(c, fiber.StatusNotFound, "User not found")
		}
		h.log.Error("user lookup failed", zap.Error(err))
		return utils.JSONError(c, fiber.StatusInternalServerError, "Server error")
	}

	callerID, _ := c.Locals(middleware.LocalUserID).(string)
	if callerID != targetID {
		return utils.JSONError(c, fiber.StatusForbidden, "Not authorized to delete this user")
	}

	deleted, err := h.users.Delete(c.Context(), targetID)
	if err != nil {
		h.log.Error("user delete failed", zap.Error(err))
		return utils.JSONError(c, fiber.StatusInternalServerError, "Server error")
	}
	if !deleted {
		return utils.JSONError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	return c.JSON(fiber.Map{"success": true, "message": "User deleted successfully"})
}

func (h *AuthHandler) signupValidationMessage(req *models.SignupRequest) string {
	err := h.validate.Struct(req)
	if err == nil {
		return ""
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return "Server error"
	}
	switch ve[0].Field() {
	case "Name":
		return "Name is required"
	case "Email":
		return "Please enter a valid email"
	default:
		return "Password must be at least 6 characters long"
	}
}

func (h *AuthHandler) loginValidationMessage(req *models.LoginRequest) string {
	err := h.validate.Struct(req)
	if err == nil {
		return ""
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return "Server error"
	}
	if ve[0].Field() == "Email" {
		return "Please enter a valid email"
	}
	return "Password is required"
}
