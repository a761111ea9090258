package webui

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stocktrack/config"
	"stocktrack/internal/app"
	"stocktrack/internal/domain"
	"stocktrack/internal/webserver"
)

type testServer struct {
	ws *webserver.WebServer
	db *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Migrator().AutoMigrate(domain.Tables...))

	cfg := new(config.AppConfig)
	*cfg = *config.DefaultAppConfig

	application := app.NewApplication(cfg)
	application.OverrideDB(db)

	ws := webserver.New(application)
	Register(ws)
	return &testServer{ws: ws, db: db}
}

func (ts *testServer) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	ts.ws.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) postForm(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	ts.ws.ServeHTTP(rec, req)
	return rec
}

func TestStaticPages(t *testing.T) {
	ts := newTestServer(t)
	for _, path := range []string{"/", "/login", "/register", "/inventory", "/suppliers", "/orders", "/sales_orders", "/reports", "/performance", "/settings"} {
		rec := ts.get(t, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestAddItemRoundTrip(t *testing.T) {
	ts := newTestServer(t)

	cat := domain.Category{CategoryName: "General"}
	require.NoError(t, ts.db.Create(&cat).Error)
	sup := domain.Supplier{SupplierName: "Acme"}
	require.NoError(t, ts.db.Create(&sup).Error)

	rec := ts.postForm(t, "/inventory/add", url.Values{
		"item_name":     {"Widget"},
		"description":   {"a widget"},
		"category_id":   {"1"},
		"supplier_id":   {"1"},
		"unit_price":    {"12.50"},
		"reorder_level": {"4"},
	})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/inventory", rec.Header().Get("Location"))

	var item domain.Item
	require.NoError(t, ts.db.First(&item).Error)
	assert.Equal(t, "Widget", item.ItemName)
	assert.InDelta(t, 12.50, item.UnitPrice, 1e-9)
	assert.Equal(t, int64(4), item.ReorderLevel)

	// the mutation is logged
	var logCount int64
	ts.db.Model(&domain.OperationLog{}).Where("opt_action = ?", "item_add").Count(&logCount)
	assert.Equal(t, int64(1), logCount)
}

func TestAddItemRejectsNegativeReorderLevel(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.postForm(t, "/inventory/add", url.Values{
		"item_name":     {"Widget"},
		"category_id":   {"1"},
		"supplier_id":   {"1"},
		"unit_price":    {"1.0"},
		"reorder_level": {"-1"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var count int64
	ts.db.Model(&domain.Item{}).Count(&count)
	assert.Zero(t, count)
}

func TestAddItemMalformedNumberCommitsNothing(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.postForm(t, "/inventory/add", url.Values{
		"item_name":     {"Widget"},
		"category_id":   {"1"},
		"supplier_id":   {"1"},
		"unit_price":    {"twelve"},
		"reorder_level": {"4"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var count int64
	ts.db.Model(&domain.Item{}).Count(&count)
	assert.Zero(t, count)
}

func TestAddOrderCreatesPendingOrderWithOneLine(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.postForm(t, "/orders/add", url.Values{
		"supplier_id":      {"3"},
		"item_id":          {"7"},
		"quantity_ordered": {"5"},
		"unit_cost":        {"2.75"},
	})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/orders", rec.Header().Get("Location"))

	var po domain.PurchaseOrder
	require.NoError(t, ts.db.First(&po).Error)
	assert.Equal(t, int64(3), po.SupplierID)
	assert.Equal(t, domain.OrderStatusPending, po.Status)
	assert.Equal(t, time.Now().Format("2006-01-02"), po.OrderDate)

	var details []domain.PurchaseOrderDetail
	require.NoError(t, ts.db.Where("po_id = ?", po.ID).Find(&details).Error)
	require.Len(t, details, 1)
	assert.Equal(t, int64(7), details[0].ItemID)
	assert.Equal(t, int64(5), details[0].QuantityOrdered)
	assert.InDelta(t, 2.75, details[0].UnitCost, 1e-9)
}

func TestDeleteOrderRemovesDetails(t *testing.T) {
	ts := newTestServer(t)

	po := domain.PurchaseOrder{SupplierID: 1, OrderDate: "2026-04-01", Status: domain.OrderStatusPending}
	require.NoError(t, ts.db.Create(&po).Error)
	require.NoError(t, ts.db.Create(&domain.PurchaseOrderDetail{PoID: po.ID, ItemID: 1, QuantityOrdered: 2, UnitCost: 1}).Error)

	rec := ts.postForm(t, "/orders/delete/1", url.Values{})
	assert.Equal(t, http.StatusFound, rec.Code)

	var count int64
	ts.db.Model(&domain.PurchaseOrder{}).Count(&count)
	assert.Zero(t, count)
	ts.db.Model(&domain.PurchaseOrderDetail{}).Count(&count)
	assert.Zero(t, count)
}

func TestEditSalesOrderMalformedLineAborts(t *testing.T) {
	ts := newTestServer(t)

	so := domain.SalesOrder{CustomerID: 1, OrderDate: "2026-04-01", Status: domain.OrderStatusPending, ShippingAddress: "1 Main St"}
	require.NoError(t, ts.db.Create(&so).Error)
	detail := domain.SalesOrderDetail{SoID: so.ID, ItemID: 1, QuantitySold: 2, UnitPrice: 3}
	require.NoError(t, ts.db.Create(&detail).Error)

	rec := ts.postForm(t, "/sales_orders/edit/1", url.Values{
		"customer_id": {"2"},
		"order_date":  {"2026-04-02"},
		"status":      {domain.OrderStatusShipped},
		"quantity_1":  {"not-a-number"},
		"unit_price_1": {"5.0"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// nothing changed: the bad line aborts before any statement runs
	var got domain.SalesOrder
	require.NoError(t, ts.db.First(&got, so.ID).Error)
	assert.Equal(t, int64(1), got.CustomerID)
	assert.Equal(t, domain.OrderStatusPending, got.Status)
	var gotDetail domain.SalesOrderDetail
	require.NoError(t, ts.db.First(&gotDetail, detail.ID).Error)
	assert.Equal(t, int64(2), gotDetail.QuantitySold)
}

func TestSupplierEditNotFoundRedirects(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.postForm(t, "/suppliers/edit/99", url.Values{
		"supplier_name": {"Ghost"},
	})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/suppliers", rec.Header().Get("Location"))

	var count int64
	ts.db.Model(&domain.Supplier{}).Count(&count)
	assert.Zero(t, count)
}

func TestSupplierAddRequiresName(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.postForm(t, "/suppliers/add", url.Values{
		"contact_person": {"Jamie"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var count int64
	ts.db.Model(&domain.Supplier{}).Count(&count)
	assert.Zero(t, count)
}

func TestAddUserHashesPassword(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.postForm(t, "/users/add", url.Values{
		"username": {"alex"},
		"password": {"s3cret"},
		"role":     {"staff"},
		"email":    {"alex@example.com"},
	})
	assert.Equal(t, http.StatusFound, rec.Code)

	var user domain.User
	require.NoError(t, ts.db.Where("username = ?", "alex").First(&user).Error)
	assert.NotEqual(t, "s3cret", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret")))
}

func TestEditUserKeepsPassword(t *testing.T) {
	ts := newTestServer(t)

	hashed, err := bcrypt.GenerateFromPassword([]byte("orig"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := domain.User{Username: "alex", Password: string(hashed), Role: "staff"}
	require.NoError(t, ts.db.Create(&user).Error)

	rec := ts.postForm(t, "/users/edit/1", url.Values{
		"username": {"alexa"},
		"role":     {"admin"},
		"email":    {"alexa@example.com"},
	})
	assert.Equal(t, http.StatusFound, rec.Code)

	var got domain.User
	require.NoError(t, ts.db.First(&got, user.ID).Error)
	assert.Equal(t, "alexa", got.Username)
	assert.Equal(t, "admin", got.Role)
	assert.Equal(t, string(hashed), got.Password)
}

func TestUserEditNotFoundRedirects(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.get(t, "/users/edit/42")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/settings", rec.Header().Get("Location"))
}

func TestInventoryStockFilter(t *testing.T) {
	ts := newTestServer(t)

	cat := domain.Category{CategoryName: "General"}
	require.NoError(t, ts.db.Create(&cat).Error)
	sup := domain.Supplier{SupplierName: "Acme"}
	require.NoError(t, ts.db.Create(&sup).Error)

	stocked := domain.Item{ItemName: "Stocked", CategoryID: cat.ID, SupplierID: sup.ID, UnitPrice: 1, ReorderLevel: 1}
	require.NoError(t, ts.db.Create(&stocked).Error)
	require.NoError(t, ts.db.Create(&domain.Stock{ItemID: stocked.ID, Quantity: 5}).Error)
	empty := domain.Item{ItemName: "Empty", CategoryID: cat.ID, SupplierID: sup.ID, UnitPrice: 1, ReorderLevel: 1}
	require.NoError(t, ts.db.Create(&empty).Error)

	rec := ts.get(t, "/inventory?stock=out-of-stock")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Empty")
	assert.NotContains(t, body, "Stocked")
}
