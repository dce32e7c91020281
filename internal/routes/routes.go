package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/UdayPS-4o/tradewithus/internal/handlers"
	"github.com/UdayPS-4o/tradewithus/internal/middleware"
)

type Handlers struct {
	Auth    *handlers.AuthHandler
	Profile *handlers.ProfileHandler
	Product *handlers.ProductHandler
	Feed    *handlers.FeedHandler
}

// Register wires the full route table. All mutating entity routes carry the
// JWT guard; authLimiter is nil when redis is not configured.
func Register(app *fiber.App, h Handlers, jwtAuth fiber.Handler, authLimiter *middleware.RateLimiter) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "message": "Server is running"})
	})

	auth := app.Group("/auth")
	if authLimiter != nil {
		auth.Post("/signup", authLimiter.ByIP(), h.Auth.Signup)
		auth.Post("/login", authLimiter.ByIP(), h.Auth.Login)
	} else {
		auth.Post("/signup", h.Auth.Signup)
		auth.Post("/login", h.Auth.Login)
	}
	auth.Get("/me", jwtAuth, h.Auth.Me)
	auth.Delete("/user/:userId", jwtAuth, h.Auth.DeleteUser)

	profile := app.Group("/profile")
	profile.Get("/all", h.Profile.GetAll)
	profile.Get("/:profileId", h.Profile.GetByID)
	profile.Post("/", jwtAuth, middleware.ValidateProfile(), h.Profile.Create)
	profile.Put("/:profileId", jwtAuth, middleware.ValidateProfile(), h.Profile.Update)
	profile.Delete("/:profileId", jwtAuth, h.Profile.Delete)

	product := app.Group("/product")
	product.Get("/all", h.Product.GetAll)
	product.Get("/seller/:sellerId", h.Product.GetBySeller)
	product.Get("/:productId", h.Product.GetByID)
	product.Post("/", jwtAuth, middleware.ValidateProduct(), h.Product.Create)
	product.Put("/:productId", jwtAuth, middleware.ValidateProduct(), h.Product.Update)
	product.Delete("/:productId", jwtAuth, h.Product.Delete)

	app.Get("/feed", h.Feed.GetHomeFeed)
}
