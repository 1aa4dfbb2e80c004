package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog/internal/domains/book/model"
)

// mockService lets each test stub only the method it exercises.
type mockService struct {
	createFn       func(ctx context.Context, req *model.CreateBookRequest) (model.Book, error)
	getByIDFn      func(ctx context.Context, id int64) (model.Book, error)
	priceRangeFn   func(ctx context.Context, min, max float64) ([]model.Book, error)
	countGroupedFn func(ctx context.Context, groupBy string) (model.CountResponse, error)
}

func (m *mockService) Create(ctx context.Context, req *model.CreateBookRequest) (model.Book, error) {
	return m.createFn(ctx, req)
}
func (m *mockService) GetAll(context.Context) ([]model.Book, error) { return nil, nil }
func (m *mockService) GetByID(ctx context.Context, id int64) (model.Book, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockService) Update(context.Context, int64, *model.CreateBookRequest) (model.Book, error) {
	return model.Book{}, nil
}
func (m *mockService) Delete(context.Context, int64) error                  { return nil }
func (m *mockService) Search(context.Context, string) ([]model.Book, error) { return nil, nil }
func (m *mockService) PriceRange(ctx context.Context, min, max float64) ([]model.Book, error) {
	return m.priceRangeFn(ctx, min, max)
}
func (m *mockService) Recent(context.Context, int) ([]model.Book, error) { return nil, nil }
func (m *mockService) SortedByPrice(context.Context, string) ([]model.Book, error) {
	return nil, nil
}
func (m *mockService) CountGrouped(ctx context.Context, groupBy string) (model.CountResponse, error) {
	return m.countGroupedFn(ctx, groupBy)
}

func newTestRouter(svc *mockService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookHandler(svc)
	r := gin.New()
	r.POST("/books", h.Create)
	r.GET("/books/:id", h.GetByID)
	r.GET("/books/price-range", h.PriceRange)
	r.GET("/books/count", h.Count)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return w, parsed
}

func TestGetByIDRejectsMalformedID(t *testing.T) {
	r := newTestRouter(&mockService{})

	w, body := doRequest(t, r, http.MethodGet, "/books/abc", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "INVALID_ID", errObj["code"])
}

func TestGetByIDMapsNotFound(t *testing.T) {
	svc := &mockService{
		getByIDFn: func(_ context.Context, id int64) (model.Book, error) {
			return model.Book{}, model.ErrBookNotFound
		},
	}
	r := newTestRouter(svc)

	w, body := doRequest(t, r, http.MethodGet, "/books/7", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "BOOK_NOT_FOUND", errObj["code"])
}

func TestCreateRejectsInvalidPayload(t *testing.T) {
	r := newTestRouter(&mockService{})

	// Negative price fails validation before the service is touched.
	payload := `{"title":"Emma","author_id":1,"category_id":1,"price":-5,"publication_date":"1815-12-23","pages":474}`
	w, body := doRequest(t, r, http.MethodPost, "/books", payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "VALIDATION_ERROR", errObj["code"])
}

func TestCreateReturnsCreatedBook(t *testing.T) {
	svc := &mockService{
		createFn: func(_ context.Context, req *model.CreateBookRequest) (model.Book, error) {
			b := req.ToEntity()
			b.ID = 1
			return b, nil
		},
	}
	r := newTestRouter(svc)

	payload := `{"title":"Emma","author_id":1,"category_id":1,"price":9.99,"publication_date":"1815-12-23","pages":474}`
	w, body := doRequest(t, r, http.MethodPost, "/books", payload)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Emma", data["title"])
	assert.InDelta(t, 9.99, data["price"].(float64), 1e-9)
}

func TestCreateMapsDanglingReference(t *testing.T) {
	svc := &mockService{
		createFn: func(context.Context, *model.CreateBookRequest) (model.Book, error) {
			return model.Book{}, model.ErrAuthorReference
		},
	}
	r := newTestRouter(svc)

	payload := `{"title":"Emma","author_id":99,"category_id":1,"price":9.99,"publication_date":"1815-12-23","pages":474}`
	w, body := doRequest(t, r, http.MethodPost, "/books", payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "INVALID_REFERENCE", errObj["code"])
}

func TestPriceRangeParsesQueryParams(t *testing.T) {
	var gotMin, gotMax float64
	svc := &mockService{
		priceRangeFn: func(_ context.Context, min, max float64) ([]model.Book, error) {
			gotMin, gotMax = min, max
			return []model.Book{{ID: 1, Title: "Emma", Price: decimal.NewFromFloat(9.99)}}, nil
		},
	}
	r := newTestRouter(svc)

	w, body := doRequest(t, r, http.MethodGet, "/books/price-range?min_price=5&max_price=15", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5.0, gotMin)
	assert.Equal(t, 15.0, gotMax)
	data := body["data"].([]interface{})
	assert.Len(t, data, 1)

	w, _ = doRequest(t, r, http.MethodGet, "/books/price-range?min_price=oops&max_price=15", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPriceRangeRequiresBothBounds(t *testing.T) {
	r := newTestRouter(&mockService{})

	w, body := doRequest(t, r, http.MethodGet, "/books/price-range?min_price=5", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "INVALID_PRICE", errObj["code"])

	w, _ = doRequest(t, r, http.MethodGet, "/books/price-range", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCountPassesGroupByThrough(t *testing.T) {
	svc := &mockService{
		countGroupedFn: func(_ context.Context, groupBy string) (model.CountResponse, error) {
			return model.CountResponse{GroupBy: "author", Total: 3}, nil
		},
	}
	r := newTestRouter(svc)

	w, body := doRequest(t, r, http.MethodGet, "/books/count?group_by=author", "")

	assert.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "author", data["group_by"])
	assert.Equal(t, float64(3), data["total"])
}
