package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"car-dealership-api/config"
	"car-dealership-api/models"
	"car-dealership-api/routes"
	"car-dealership-api/utils"
)

type envelope struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	Data       json.RawMessage   `json:"data"`
	Pagination *utils.Pagination `json:"pagination"`
}

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Car{},
		&models.Customer{},
		&models.Manager{},
		&models.Order{},
	))

	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour}
	r := gin.New()
	routes.Setup(r, db, cfg)
	return r, db
}

func do(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

// register registers a user and returns its bearer token.
func register(t *testing.T, r *gin.Engine, username, email string, role models.Role) string {
	t.Helper()
	w := do(r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username": username,
		"email":    email,
		"password": "secret123",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var data struct {
		Token string `json:"token"`
	}
	env := decode(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func createCategory(t *testing.T, r *gin.Engine, token, name string) uint {
	t.Helper()
	w := do(r, http.MethodPost, "/api/v1/categories", token, gin.H{"name": name})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var category models.Category
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &category))
	return category.ID
}

func createCar(t *testing.T, r *gin.Engine, token string, categoryID uint, price float64) uint {
	t.Helper()
	w := do(r, http.MethodPost, "/api/v1/cars", token, gin.H{
		"brand":       "Toyota",
		"car_model":   "RAV4",
		"year":        2023,
		"price":       price,
		"category_id": categoryID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var car models.Car
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &car))
	return car.ID
}

func TestHealth(t *testing.T) {
	r, _ := newTestServer(t)
	w := do(r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "🚗 Car Dealership API is running", w.Body.String())
}

func TestRegisterConflict(t *testing.T) {
	r, _ := newTestServer(t)
	register(t, r, "alice", "alice@example.com", models.RoleCustomer)

	w := do(r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username": "alice2",
		"email":    "alice@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decode(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "Email or username already exists", env.Message)
}

func TestRegisterValidationErrorBody(t *testing.T) {
	r, _ := newTestServer(t)
	w := do(r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username": "bob",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Errors  []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "error", body.Status)
	require.NotEmpty(t, body.Errors)
	assert.Equal(t, "Email", body.Errors[0].Field)
}

func TestLoginSameMessageForUnknownAndWrongPassword(t *testing.T) {
	r, _ := newTestServer(t)
	register(t, r, "carol", "carol@example.com", models.RoleCustomer)

	wUnknown := do(r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "nobody@example.com", "password": "whatever1",
	})
	wWrong := do(r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "carol@example.com", "password": "wrongpass",
	})
	assert.Equal(t, http.StatusUnauthorized, wUnknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wWrong.Code)
	assert.Equal(t, decode(t, wUnknown).Message, decode(t, wWrong).Message)
}

func TestCustomersMeWithoutToken(t *testing.T) {
	r, _ := newTestServer(t)
	w := do(r, http.MethodGet, "/api/v1/customers/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateCarForbiddenForCustomer(t *testing.T) {
	r, _ := newTestServer(t)
	token := register(t, r, "dave", "dave@example.com", models.RoleCustomer)

	w := do(r, http.MethodPost, "/api/v1/cars", token, gin.H{
		"brand": "Toyota", "car_model": "Yaris", "year": 2020, "price": 15000, "category_id": 1,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestEndToEndOrderFlow(t *testing.T) {
	r, _ := newTestServer(t)

	managerToken := register(t, r, "staff", "staff@example.com", models.RoleManager)
	customerToken := register(t, r, "buyer", "buyer@example.com", models.RoleCustomer)

	// login again to prove the issued credentials round-trip
	w := do(r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "buyer@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPost, "/api/v1/customers", customerToken, gin.H{
		"first_name": "Buyer", "last_name": "One",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	categoryID := createCategory(t, r, managerToken, "SUV")
	carID := createCar(t, r, managerToken, categoryID, 35000)

	w = do(r, http.MethodPost, "/api/v1/orders", customerToken, gin.H{
		"car_id": carID, "payment_method": "finance",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var order models.Order
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &order))
	assert.Equal(t, 35000.0, order.Price)
	assert.Equal(t, models.OrderPending, order.Status)

	w = do(r, http.MethodGet, "/api/v1/cars/"+itoa(carID), customerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var car models.Car
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &car))
	assert.False(t, car.Availability)

	// a second order on the same car is rejected
	w = do(r, http.MethodPost, "/api/v1/orders", customerToken, gin.H{
		"car_id": carID, "payment_method": "cash",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Car is not available", decode(t, w).Message)

	// deleting the order restores availability
	w = do(r, http.MethodDelete, "/api/v1/orders/"+itoa(order.ID), managerToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(r, http.MethodGet, "/api/v1/cars/"+itoa(carID), customerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &car))
	assert.True(t, car.Availability)
}

func TestCategoryDeleteUnsetsCars(t *testing.T) {
	r, _ := newTestServer(t)
	managerToken := register(t, r, "staff", "staff@example.com", models.RoleManager)

	categoryID := createCategory(t, r, managerToken, "Sedan")
	carA := createCar(t, r, managerToken, categoryID, 20000)
	carB := createCar(t, r, managerToken, categoryID, 22000)

	w := do(r, http.MethodDelete, "/api/v1/categories/"+itoa(categoryID), managerToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	for _, id := range []uint{carA, carB} {
		w = do(r, http.MethodGet, "/api/v1/cars/"+itoa(id), managerToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var car models.Car
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &car))
		assert.Nil(t, car.CategoryID)
	}
}

func TestCategoryListPagination(t *testing.T) {
	r, _ := newTestServer(t)
	managerToken := register(t, r, "staff", "staff@example.com", models.RoleManager)
	for i := 0; i < 15; i++ {
		createCategory(t, r, managerToken, "cat-"+itoa(uint(i)))
	}

	w := do(r, http.MethodGet, "/api/v1/categories?limit=10", managerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	require.NotNil(t, env.Pagination)
	assert.EqualValues(t, 15, env.Pagination.Total)
	assert.Equal(t, 2, env.Pagination.Pages)
	assert.Equal(t, 10, env.Pagination.Limit)

	var page []models.Category
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.LessOrEqual(t, len(page), 10)

	w = do(r, http.MethodGet, "/api/v1/categories?limit=10&page=2", managerToken, nil)
	env = decode(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Len(t, page, 5)
}

func TestCarListFilters(t *testing.T) {
	r, _ := newTestServer(t)
	managerToken := register(t, r, "staff", "staff@example.com", models.RoleManager)
	categoryID := createCategory(t, r, managerToken, "SUV")
	createCar(t, r, managerToken, categoryID, 20000)
	createCar(t, r, managerToken, categoryID, 40000)
	createCar(t, r, managerToken, categoryID, 60000)

	w := do(r, http.MethodGet, "/api/v1/cars?min_price=30000&max_price=50000", managerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	var page []models.Car
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page, 1)
	assert.Equal(t, 40000.0, page[0].Price)
}

func TestGetMissingCar(t *testing.T) {
	r, _ := newTestServer(t)
	token := register(t, r, "erin", "erin@example.com", models.RoleCustomer)
	w := do(r, http.MethodGet, "/api/v1/cars/9999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, decode(t, w).Success)
}

func TestManagerCreatePromotesTargetUser(t *testing.T) {
	r, db := newTestServer(t)
	adminToken := register(t, r, "root", "root@example.com", models.RoleAdmin)
	register(t, r, "newhire", "newhire@example.com", models.RoleCustomer)

	var hire models.User
	require.NoError(t, db.Where("username = ?", "newhire").First(&hire).Error)

	w := do(r, http.MethodPost, "/api/v1/managers", adminToken, gin.H{
		"user_id": hire.ID, "first_name": "New", "last_name": "Hire", "phone": "0123456789",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	require.NoError(t, db.First(&hire, hire.ID).Error)
	assert.Equal(t, models.RoleManager, hire.Role)
}

func TestCustomerDeleteInvalidatesToken(t *testing.T) {
	r, _ := newTestServer(t)
	token := register(t, r, "gone", "gone@example.com", models.RoleCustomer)

	w := do(r, http.MethodPost, "/api/v1/customers", token, gin.H{
		"first_name": "Soon", "last_name": "Gone",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var customer models.Customer
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &customer))

	// profile delete cascades to the user, so the old token stops working
	w = do(r, http.MethodDelete, "/api/v1/customers/"+itoa(customer.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/v1/customers/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPIDoc(t *testing.T) {
	r, _ := newTestServer(t)
	w := do(r, http.MethodGet, "/api-doc", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/v1/cars")
}

func itoa(v uint) string {
	return strconv.Itoa(int(v))
}
