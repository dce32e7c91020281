package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/UdayPS-4o/tradewithus/internal/handlers"
	"github.com/UdayPS-4o/tradewithus/internal/middleware"
	"github.com/UdayPS-4o/tradewithus/internal/repository"
	"github.com/UdayPS-4o/tradewithus/internal/routes"
	"github.com/UdayPS-4o/tradewithus/internal/services"
	"github.com/UdayPS-4o/tradewithus/internal/utils"
)

type testAPI struct {
	app      *fiber.App
	users    *repository.MemoryUserRepo
	profiles *repository.MemoryProfileRepo
	products *repository.MemoryProductRepo
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	logger := zap.NewNop()

	users := repository.NewMemoryUserRepo()
	profiles := repository.NewMemoryProfileRepo()
	products := repository.NewMemoryProductRepo()

	jwtManager := utils.NewJWTManager("test-secret", 24*time.Hour)

	userSvc := services.NewUserService(users, logger, 4)
	profileSvc := services.NewProfileService(profiles)
	productSvc := services.NewProductService(products)
	feedSvc := services.NewFeedService(products, profiles, logger)

	app := fiber.New()
	routes.Register(app, routes.Handlers{
		Auth:    handlers.NewAuthHandler(userSvc, jwtManager, logger),
		Profile: handlers.NewProfileHandler(profileSvc, logger),
		Product: handlers.NewProductHandler(productSvc, logger),
		Feed:    handlers.NewFeedHandler(feedSvc, logger),
	}, middleware.JWTAuth(jwtManager, logger), nil)

	return &testAPI{app: app, users: users, profiles: profiles, products: products}
}

func (a *testAPI) request(t *testing.T, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]interface{}{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp, out
}

// signupAndLogin creates an account and returns its token and user id.
func (a *testAPI) signupAndLogin(t *testing.T, name, email, password string) (string, string) {
	t.Helper()
	resp, _ := a.request(t, http.MethodPost, "/auth/signup", "", map[string]string{
		"name": name, "email": email, "password": password,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := a.request(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token := body["token"].(string)
	user := body["user"].(map[string]interface{})
	return token, user["id"].(string)
}

func profilePayload(id, businessName string) map[string]interface{} {
	return map[string]interface{}{
		"profileId":        id,
		"businessName":     businessName,
		"logo":             "https://cdn.example.com/logo.png",
		"businessOverview": "Bulk spice exporter",
		"businessType":     "Exporter",
		"established":      2005,
		"address":          "12 Spice Road",
		"owner":            "Jane Doe",
	}
}

func productPayload(id, sellerID string) map[string]interface{} {
	return map[string]interface{}{
		"productId":   id,
		"productName": "Black Pepper",
		"images":      []string{"https://cdn.example.com/pepper.jpg"},
		"sellerId":    sellerID,
		"price": map[string]interface{}{
			"current": 4.5,
			"range":   map[string]interface{}{"min": 4.0, "max": 5.0},
		},
		"details": map[string]interface{}{
			"name":               "Black Pepper",
			"product":            "Pepper",
			"origin":             "Kerala",
			"productionCapacity": "500 MT/year",
			"exportVolume":       "200 MT/year",
			"formAndCut":         "Whole",
			"color":              "Black",
			"cultivationType":    "Conventional",
		},
		"shipping": map[string]interface{}{
			"hsCode":        "090411",
			"minQuantity":   "1 MT",
			"packaging":     "25kg bags",
			"transportMode": "Sea",
			"incoterms":     "FOB",
			"shelfLife":     "24 months",
		},
	}
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)
	resp, body := api.request(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestProfileLifecycle(t *testing.T) {
	api := newTestAPI(t)
	token, _ := api.signupAndLogin(t, "Alice", "alice@example.com", "secret123")

	resp, body := api.request(t, http.MethodPost, "/profile/", token, profilePayload("acme", "Acme"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	resp, body = api.request(t, http.MethodGet, "/profile/acme", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Acme", data["businessName"])

	resp, _ = api.request(t, http.MethodPut, "/profile/acme", token, profilePayload("acme", "Acme Co"))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = api.request(t, http.MethodGet, "/profile/acme", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data = body["data"].(map[string]interface{})
	assert.Equal(t, "Acme Co", data["businessName"])

	resp, _ = api.request(t, http.MethodDelete, "/profile/acme", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = api.request(t, http.MethodGet, "/profile/acme", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Profile not found", body["message"])
}

func TestProfileDuplicateCreate(t *testing.T) {
	api := newTestAPI(t)
	token, _ := api.signupAndLogin(t, "Alice", "alice@example.com", "secret123")

	resp, _ := api.request(t, http.MethodPost, "/profile/", token, profilePayload("acme", "Acme"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = api.request(t, http.MethodPost, "/profile/", token, profilePayload("acme", "Acme Impostor"))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// The first document is unchanged.
	resp, body := api.request(t, http.MethodGet, "/profile/acme", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Acme", data["businessName"])
}

func TestProfileWriteRequiresToken(t *testing.T) {
	api := newTestAPI(t)

	resp, _ := api.request(t, http.MethodPost, "/profile/", "", profilePayload("acme", "Acme"))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = api.request(t, http.MethodDelete, "/profile/acme", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProductLifecycle(t *testing.T) {
	api := newTestAPI(t)
	token, _ := api.signupAndLogin(t, "Alice", "alice@example.com", "secret123")

	resp, _ := api.request(t, http.MethodPost, "/product/", token, productPayload("pepper-1", "acme"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := api.request(t, http.MethodGet, "/product/pepper-1", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Black Pepper", data["productName"])
	price := data["price"].(map[string]interface{})
	assert.Equal(t, 4.5, price["current"])

	resp, _ = api.request(t, http.MethodDelete, "/product/pepper-1", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = api.request(t, http.MethodGet, "/product/pepper-1", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = api.request(t, http.MethodDelete, "/product/pepper-1", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProductsBySeller(t *testing.T) {
	api := newTestAPI(t)
	token, _ := api.signupAndLogin(t, "Alice", "alice@example.com", "secret123")

	resp, _ := api.request(t, http.MethodPost, "/product/", token, productPayload("pepper-1", "acme"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = api.request(t, http.MethodPost, "/product/", token, productPayload("cardamom-1", "spiceco"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := api.request(t, http.MethodGet, "/product/seller/acme", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].([]interface{})
	assert.Len(t, data, 1)
}

func TestAuthFlow(t *testing.T) {
	api := newTestAPI(t)

	resp, body := api.request(t, http.MethodPost, "/auth/signup", "", map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "User created successfully", body["message"])

	// Duplicate signup.
	resp, body = api.request(t, http.MethodPost, "/auth/signup", "", map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "User already exists with this email", body["message"])

	// Wrong password and unknown email return identical responses.
	resp, wrongPass := api.request(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "alice@example.com", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp, unknown := api.request(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "nobody@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, wrongPass, unknown)

	resp, body = api.request(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "alice@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token := body["token"].(string)
	loginUser := body["user"].(map[string]interface{})

	// /auth/me answers from the token payload.
	resp, body = api.request(t, http.MethodGet, "/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	meUser := body["user"].(map[string]interface{})
	assert.Equal(t, loginUser["id"], meUser["id"])
	assert.Equal(t, "Alice", meUser["name"])
	assert.Equal(t, "alice@example.com", meUser["email"])
}

func TestAuthSignupValidationMessages(t *testing.T) {
	api := newTestAPI(t)

	resp, body := api.request(t, http.MethodPost, "/auth/signup", "", map[string]string{
		"email": "alice@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Name is required", body["message"])

	resp, body = api.request(t, http.MethodPost, "/auth/signup", "", map[string]string{
		"name": "Alice", "email": "not-an-email", "password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Please enter a valid email", body["message"])

	resp, body = api.request(t, http.MethodPost, "/auth/signup", "", map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Password must be at least 6 characters long", body["message"])
}

func TestMeRejectsBadTokens(t *testing.T) {
	api := newTestAPI(t)

	resp, _ := api.request(t, http.MethodGet, "/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = api.request(t, http.MethodGet, "/auth/me", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	expired := utils.NewJWTManager("test-secret", -time.Minute)
	tok, err := expired.Generate("id", "a@b.c", "A")
	require.NoError(t, err)
	resp, _ = api.request(t, http.MethodGet, "/auth/me", tok, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDeleteUserSelfOnly(t *testing.T) {
	api := newTestAPI(t)
	aliceToken, aliceID := api.signupAndLogin(t, "Alice", "alice@example.com", "secret123")
	_, bobID := api.signupAndLogin(t, "Bob", "bob@example.com", "secret456")

	// Alice cannot delete Bob.
	resp, body := api.request(t, http.MethodDelete, "/auth/user/"+bobID, aliceToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Not authorized to delete this user", body["message"])

	// Bob is intact.
	resp, body = api.request(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "bob@example.com", "password": "secret456",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Alice deletes herself.
	resp, body = api.request(t, http.MethodDelete, "/auth/user/"+aliceID, aliceToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	resp, _ = api.request(t, http.MethodDelete, "/auth/user/"+aliceID, aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFeedAttachesSellersAndDegrades(t *testing.T) {
	api := newTestAPI(t)
	token, _ := api.signupAndLogin(t, "Alice", "alice@example.com", "secret123")

	resp, _ := api.request(t, http.MethodPost, "/profile/", token, profilePayload("acme", "Acme"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = api.request(t, http.MethodPost, "/product/", token, productPayload("pepper-1", "acme"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = api.request(t, http.MethodPost, "/product/", token, productPayload("orphan-1", "deleted-seller"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := api.request(t, http.MethodGet, "/feed", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items := body["data"].([]interface{})
	require.Len(t, items, 2)

	sellers := map[string]string{}
	for _, raw := range items {
		item := raw.(map[string]interface{})
		seller := item["seller"].(map[string]interface{})
		sellers[item["productId"].(string)] = seller["businessName"].(string)
	}
	assert.Equal(t, "Acme", sellers["pepper-1"])
	assert.Equal(t, services.UnknownSellerName, sellers["orphan-1"])
}
