package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"renewkart/internal/handlers"
	"renewkart/internal/middleware"
	"renewkart/internal/models"
	"renewkart/internal/repositories"
	"renewkart/internal/seed"
	"renewkart/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupApp assembles a Fiber app over in-memory repositories with the fixed
// catalog seeded, mirroring the production wiring.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	productRepo := repositories.NewMemoryProductRepository()
	for _, product := range seed.Products() {
		p := product
		require.NoError(t, productRepo.Create(&p))
	}
	userRepo := repositories.NewMemoryUserRepository()
	orderRepo := repositories.NewMemoryOrderRepository()
	cartStore := repositories.NewMemoryCartStore()

	catalogService := services.NewCatalogService(productRepo)
	authService := services.NewAuthService(userRepo, "test_jwt_secret")
	orderService := services.NewOrderService(orderRepo, productRepo, nil)
	cartService := services.NewCartService(cartStore, productRepo)

	app := fiber.New()
	api := app.Group("/api")

	handlers.NewProductHandler(catalogService).RegisterRoutes(api)
	handlers.NewAuthHandler(authService).RegisterRoutes(api)

	protected := api.Group("", middleware.AuthRequired(authService))
	handlers.NewOrderHandler(orderService).RegisterRoutes(protected)
	handlers.NewCartHandler(cartService).RegisterRoutes(protected)

	return app
}

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// registerAndLogin creates a user and returns their id and token.
func registerAndLogin(t *testing.T, app *fiber.App, phone string) (int, string) {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", map[string]string{
		"phone":    phone,
		"password": "password123",
		"name":     "Test User",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"phone":    phone,
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var loginResp struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	decode(t, resp, &loginResp)
	require.NotEmpty(t, loginResp.Token)
	return loginResp.User.ID, loginResp.Token
}

func TestListProducts(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/products", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var products []models.Product
	decode(t, resp, &products)
	assert.Len(t, products, 6)

	resp = doJSON(t, app, http.MethodGet, "/api/products?category=Phones", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &products)
	require.Len(t, products, 3)
	for _, p := range products {
		assert.Equal(t, "Phones", p.Category)
	}

	resp = doJSON(t, app, http.MethodGet, "/api/products?maxPrice=30000", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &products)
	require.Len(t, products, 2)
	for _, p := range products {
		assert.LessOrEqual(t, p.Price, 30000)
	}

	resp = doJSON(t, app, http.MethodGet, "/api/products?search=sony&condition=Excellent", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &products)
	require.Len(t, products, 1)
	assert.Equal(t, "Sony WH-1000XM4", products[0].Name)
}

func TestListProductsInvalidQuery(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/products?maxPrice=cheap", nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "Invalid query parameters", body["message"])
}

func TestGetProduct(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/products/3", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var product models.Product
	decode(t, resp, &product)
	assert.Equal(t, "MacBook Air M1", product.Name)

	resp = doJSON(t, app, http.MethodGet, "/api/products/999", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "Product not found", body["message"])
}

func TestRegisterValidationAndDuplicates(t *testing.T) {
	app := setupApp(t)

	// Missing password.
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", map[string]string{
		"phone": "9876543210",
		"name":  "No Password",
	}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "password", body["field"])

	// First registration succeeds; the hash never leaks.
	resp = doJSON(t, app, http.MethodPost, "/api/auth/register", map[string]string{
		"phone":    "9876543210",
		"password": "password123",
		"name":     "Asha",
	}, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")

	// Same phone again is rejected.
	resp = doJSON(t, app, http.MethodPost, "/api/auth/register", map[string]string{
		"phone":    "9876543210",
		"password": "different456",
		"name":     "Imposter",
	}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	decode(t, resp, &body)
	assert.Equal(t, "phone", body["field"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app := setupApp(t)
	registerAndLogin(t, app, "9876543210")

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"phone":    "9876543210",
		"password": "wrong-password",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"phone":    "0000000000",
		"password": "password123",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestOrdersRequireAuth(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/orders", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/orders", map[string]interface{}{
		"items":   []map[string]int{{"productId": 1, "quantity": 1}},
		"address": "42 MG Road",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestCreateAndListOrders(t *testing.T) {
	app := setupApp(t)
	_, token := registerAndLogin(t, app, "9876543210")

	resp := doJSON(t, app, http.MethodPost, "/api/orders", map[string]interface{}{
		"items": []map[string]int{
			{"productId": 1, "quantity": 1},
			{"productId": 6, "quantity": 2},
		},
		"address": "42 MG Road, Bengaluru",
	}, token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var order models.Order
	decode(t, resp, &order)
	assert.Equal(t, 1, order.ID)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, 75997, order.Total)
	assert.False(t, order.CreatedAt.IsZero())

	resp = doJSON(t, app, http.MethodGet, "/api/orders", nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var orders []models.Order
	decode(t, resp, &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestOrdersAreScopedToCaller(t *testing.T) {
	app := setupApp(t)
	_, tokenA := registerAndLogin(t, app, "9876543210")
	_, tokenB := registerAndLogin(t, app, "9123456789")

	resp := doJSON(t, app, http.MethodPost, "/api/orders", map[string]interface{}{
		"items":   []map[string]int{{"productId": 2, "quantity": 1}},
		"address": "addr A",
	}, tokenA)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// User B sees no orders, and cannot touch A's order.
	resp = doJSON(t, app, http.MethodGet, "/api/orders", nil, tokenB)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var orders []models.Order
	decode(t, resp, &orders)
	assert.Empty(t, orders)

	resp = doJSON(t, app, http.MethodPatch, "/api/orders/1/status", map[string]string{
		"status": models.StatusShipped,
	}, tokenB)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestCreateOrderRejectsBadItems(t *testing.T) {
	app := setupApp(t)
	_, token := registerAndLogin(t, app, "9876543210")

	// Unknown product.
	resp := doJSON(t, app, http.MethodPost, "/api/orders", map[string]interface{}{
		"items":   []map[string]int{{"productId": 999, "quantity": 1}},
		"address": "addr",
	}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// More than the available stock (Dell XPS 13 has 2).
	resp = doJSON(t, app, http.MethodPost, "/api/orders", map[string]interface{}{
		"items":   []map[string]int{{"productId": 4, "quantity": 5}},
		"address": "addr",
	}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// No items at all.
	resp = doJSON(t, app, http.MethodPost, "/api/orders", map[string]interface{}{
		"items":   []map[string]int{},
		"address": "addr",
	}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestUpdateOrderStatus(t *testing.T) {
	app := setupApp(t)
	_, token := registerAndLogin(t, app, "9876543210")

	resp := doJSON(t, app, http.MethodPost, "/api/orders", map[string]interface{}{
		"items":   []map[string]int{{"productId": 1, "quantity": 1}},
		"address": "addr",
	}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPatch, "/api/orders/1/status", map[string]string{
		"status": models.StatusOutForDelivery,
	}, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var order models.Order
	decode(t, resp, &order)
	assert.Equal(t, models.StatusOutForDelivery, order.Status)

	resp = doJSON(t, app, http.MethodPatch, "/api/orders/1/status", map[string]string{
		"status": "Teleported",
	}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestCartFlow(t *testing.T) {
	app := setupApp(t)
	_, token := registerAndLogin(t, app, "9876543210")

	var view struct {
		Items     []models.CartItem `json:"items"`
		ItemCount int               `json:"itemCount"`
		CartTotal int               `json:"cartTotal"`
	}

	// Empty to start.
	resp := doJSON(t, app, http.MethodGet, "/api/cart", nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &view)
	assert.Empty(t, view.Items)

	// Adding the same product twice yields one line with quantity 2.
	resp = doJSON(t, app, http.MethodPost, "/api/cart/items", map[string]int{"productId": 1}, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodPost, "/api/cart/items", map[string]int{"productId": 1}, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &view)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.Equal(t, 2, view.ItemCount)

	// Quantity below 1 is a no-op.
	resp = doJSON(t, app, http.MethodPatch, "/api/cart/items/1", map[string]int{"quantity": 0}, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &view)
	assert.Equal(t, 2, view.Items[0].Quantity)

	// Second product; totals are price×quantity sums.
	resp = doJSON(t, app, http.MethodPost, "/api/cart/items", map[string]int{"productId": 6}, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &view)
	assert.Equal(t, 45999*2+14999, view.CartTotal)

	// Remove and clear.
	resp = doJSON(t, app, http.MethodDelete, "/api/cart/items/1", nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &view)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 6, view.Items[0].ID)

	resp = doJSON(t, app, http.MethodDelete, "/api/cart", nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/cart", nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &view)
	assert.Empty(t, view.Items)
	assert.Zero(t, view.CartTotal)
}

func TestCartAddUnknownProduct(t *testing.T) {
	app := setupApp(t)
	_, token := registerAndLogin(t, app, "9876543210")

	resp := doJSON(t, app, http.MethodPost, "/api/cart/items", map[string]int{"productId": 999}, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "Product not found", body["message"])
}

func TestCartsAreScopedToCaller(t *testing.T) {
	app := setupApp(t)
	_, tokenA := registerAndLogin(t, app, "9876543210")
	_, tokenB := registerAndLogin(t, app, "9123456789")

	resp := doJSON(t, app, http.MethodPost, "/api/cart/items", map[string]int{"productId": 1}, tokenA)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/cart", nil, tokenB)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var view struct {
		Items []models.CartItem `json:"items"`
	}
	decode(t, resp, &view)
	assert.Empty(t, view.Items)
}

func TestInvalidTokenRejected(t *testing.T) {
	app := setupApp(t)

	for _, header := range []string{"Bearer garbage", "garbage", "Basic abc"} {
		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, fmt.Sprintf("header %q", header))
		resp.Body.Close()
	}
}
