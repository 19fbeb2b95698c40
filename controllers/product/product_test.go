package productControllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/aniket-sharma10/e-commerce-store/middleware"
	"github.com/aniket-sharma10/e-commerce-store/models"
	"github.com/aniket-sharma10/e-commerce-store/routes"
)

func setupTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{}, &models.Category{},
		&models.Cart{}, &models.CartItem{}, &models.Order{}, &models.OrderItem{},
	))

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	routes.SetupRoutes(r, db, nil, nil)
	return r, db
}

func authCookie(t *testing.T, userID string, isAdmin bool) *http.Cookie {
	claims := jwt.MapClaims{
		"userId":  userID,
		"isAdmin": isAdmin,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return &http.Cookie{Name: "access_token", Value: token}
}

func doRequest(r http.Handler, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		buf = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedProduct(t *testing.T, db *gorm.DB, name, brand string, categories ...string) models.Product {
	product := models.Product{
		Name:        name,
		Description: name + " description",
		Price:       20,
		Quantity:    10,
		Categories:  models.StringList(categories),
		Brand:       brand,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

type searchResponse struct {
	Products      []models.Product `json:"products"`
	TotalProducts int64            `json:"totalProducts"`
}

func TestCreateProduct(t *testing.T) {
	r, db := setupTest(t)

	body := gin.H{
		"name": "Runner", "description": "d", "price": 99.5, "quantity": 4,
		"categories": []string{"Shoes"}, "brand": "Acme",
	}

	w := doRequest(r, http.MethodPost, "/api/product/add", body, authCookie(t, "u1", false))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(r, http.MethodPost, "/api/product/add", body, authCookie(t, "admin", true))
	require.Equal(t, http.StatusOK, w.Code)

	var product models.Product
	require.NoError(t, db.First(&product).Error)
	assert.Equal(t, "Runner", product.Name)
	assert.NotEmpty(t, product.Images, "a default image is assigned when none is given")
}

func TestCreateProduct_RequiresCategory(t *testing.T) {
	r, _ := setupTest(t)

	w := doRequest(r, http.MethodPost, "/api/product/add", gin.H{
		"name": "Runner", "description": "d", "price": 99.5, "quantity": 4, "brand": "Acme",
	}, authCookie(t, "admin", true))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "at least one category")
}

func TestSearchProducts_FreeText(t *testing.T) {
	r, db := setupTest(t)
	seedProduct(t, db, "Trail Runner", "Acme", "Shoes")
	seedProduct(t, db, "Formal Shirt", "Crisp", "Shirts")

	w := doRequest(r, http.MethodGet, "/api/product/search?q=runner", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp searchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "Trail Runner", resp.Products[0].Name)
	assert.EqualValues(t, 1, resp.TotalProducts)
}

func TestSearchProducts_CategoriesAreConjunctive(t *testing.T) {
	r, db := setupTest(t)
	seedProduct(t, db, "Mens Runner", "Acme", "Shoes", "Men")
	seedProduct(t, db, "Womens Runner", "Acme", "Shoes", "Women")
	seedProduct(t, db, "Mens Cap", "Acme", "Hats", "Men")

	w := doRequest(r, http.MethodGet, "/api/product/search?categories=Shoes,Men", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp searchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Products, 1, "product must carry all listed categories")
	assert.Equal(t, "Mens Runner", resp.Products[0].Name)
}

func TestSearchProducts_CategoryWildcardsAreLiteral(t *testing.T) {
	r, db := setupTest(t)
	seedProduct(t, db, "Mens Cap", "Acme", "Mens")
	seedProduct(t, db, "Odd Cap", "Acme", "Men_")

	w := doRequest(r, http.MethodGet, "/api/product/search?categories=Men_", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp searchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Products, 1, "underscore must not act as a single-char wildcard")
	assert.Equal(t, "Odd Cap", resp.Products[0].Name)
}

func TestSearchProducts_PaginationAndTotal(t *testing.T) {
	r, db := setupTest(t)
	for i := 0; i < 10; i++ {
		seedProduct(t, db, fmt.Sprintf("Product %02d", i), "Acme", "Misc")
	}

	// default page size is 8, total is independent of pagination
	w := doRequest(r, http.MethodGet, "/api/product/search", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp searchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Products, 8)
	assert.EqualValues(t, 10, resp.TotalProducts)

	w = doRequest(r, http.MethodGet, "/api/product/search?start=8&limit=8", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Products, 2)

	// limit=0 means no limit
	w = doRequest(r, http.MethodGet, "/api/product/search?limit=0", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Products, 10)
}

func TestGetSingleProduct(t *testing.T) {
	r, db := setupTest(t)
	product := seedProduct(t, db, "Runner", "Acme", "Shoes")

	w := doRequest(r, http.MethodGet, "/api/product/"+product.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, "/api/product/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Product not found")
}

func TestUpdateProduct_Partial(t *testing.T) {
	r, db := setupTest(t)
	product := seedProduct(t, db, "Runner", "Acme", "Shoes")

	w := doRequest(r, http.MethodPut, "/api/product/update/"+product.ID,
		gin.H{"price": 42.0}, authCookie(t, "admin", true))
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Product
	require.NoError(t, db.First(&got, "id = ?", product.ID).Error)
	assert.Equal(t, 42.0, got.Price)
	assert.Equal(t, "Runner", got.Name, "absent fields keep their value")
}

func TestUpdateProduct_EmptyPayload(t *testing.T) {
	r, db := setupTest(t)
	product := seedProduct(t, db, "Runner", "Acme", "Shoes")

	w := doRequest(r, http.MethodPut, "/api/product/update/"+product.ID,
		gin.H{}, authCookie(t, "admin", true))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "atleast one field")
}

func TestDeleteProduct(t *testing.T) {
	r, db := setupTest(t)
	product := seedProduct(t, db, "Runner", "Acme", "Shoes")

	w := doRequest(r, http.MethodDelete, "/api/product/delete/"+product.ID, nil, authCookie(t, "u1", false))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(r, http.MethodDelete, "/api/product/delete/"+product.ID, nil, authCookie(t, "admin", true))
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodDelete, "/api/product/delete/"+product.ID, nil, authCookie(t, "admin", true))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
