package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dapurnina/catering-app/controllers"
	"github.com/dapurnina/catering-app/models"
	"github.com/dapurnina/catering-app/pricing"
)

func setupTestDBForOrders(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(&models.Order{}, &models.Slot{}, &models.Notification{})
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedSlot(t *testing.T, db *gorm.DB, date time.Time, total, available int) models.Slot {
	slot := models.Slot{
		SlotDate:       time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.Local),
		TotalCount:     total,
		AvailableCount: available,
		IsActive:       true,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	if err := db.Create(&slot).Error; err != nil {
		t.Fatalf("failed to seed slot: %v", err)
	}
	return slot
}

func setupOrderRouter(db *gorm.DB) *gin.Engine {
	router := gin.Default()
	orderCtrl := controllers.NewOrderController(db)
	router.POST("/orders", orderCtrl.CreateOrder)
	router.GET("/orders/track/:token", orderCtrl.TrackOrder)
	return router
}

// orderTypeForToday -> tipe order yang valid hari ini (weekend same-day,
// weekday pre-order), supaya test deterministik di hari apa pun.
func orderTypeForToday() string {
	return pricing.AvailableOrderTypes(time.Now())[0]
}

func postJSON(t *testing.T, router *gin.Engine, url string, payload interface{}) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	assert.NoError(t, err)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(body))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateAndTrackOrder(t *testing.T) {
	db := setupTestDBForOrders(t)
	seedSlot(t, db, time.Now(), 10, 10)
	router := setupOrderRouter(db)

	payload := map[string]interface{}{
		"customer_name":   "Budi Santoso",
		"customer_email":  "budi@example.com",
		"food_type":       "family-pack",
		"pack_count":      2,
		"order_type":      orderTypeForToday(),
		"delivery_method": "pickup",
	}
	w := postJSON(t, router, "/orders", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	var createResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &createResp))
	assert.Equal(t, "Order created", createResp["message"])

	data := createResp["data"].(map[string]interface{})
	token, ok := data["tracking_token"].(string)
	assert.True(t, ok)
	assert.NotEmpty(t, token)

	// Breakdown sesuai pricing engine
	expected := pricing.ComputePrice(pricing.OrderRequest{
		FoodType:  "family-pack",
		PackCount: 2,
		OrderType: orderTypeForToday(),
	}, pricing.DefaultConfig())
	breakdown := data["breakdown"].(map[string]interface{})
	assert.Equal(t, expected.Subtotal, breakdown["subtotal"])
	assert.Equal(t, expected.Total, breakdown["total"])

	// Slot terpakai satu
	var slot models.Slot
	assert.NoError(t, db.First(&slot).Error)
	assert.Equal(t, 9, slot.AvailableCount)

	// Track via token
	req, _ := http.NewRequest("GET", "/orders/track/"+token, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var trackResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &trackResp))
	order := trackResp["data"].(map[string]interface{})["order"].(map[string]interface{})
	assert.Equal(t, "Budi Santoso", order["customer_name"])
	assert.Equal(t, models.OrderStatusPending, order["status"])
	assert.Equal(t, models.PaymentAwaitingConfirmation, order["payment_status"])
}

func TestTrackUnknownToken(t *testing.T) {
	db := setupTestDBForOrders(t)
	router := setupOrderRouter(db)

	req, _ := http.NewRequest("GET", "/orders/track/tidak-ada", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateOrderValidation(t *testing.T) {
	db := setupTestDBForOrders(t)
	seedSlot(t, db, time.Now(), 10, 10)
	router := setupOrderRouter(db)

	base := map[string]interface{}{
		"customer_name":   "Budi",
		"food_type":       "regular-pack",
		"pack_count":      2,
		"order_type":      orderTypeForToday(),
		"delivery_method": "pickup",
	}

	// Pack count di luar [1,20]
	for _, packs := range []int{0, 21} {
		payload := cloneMap(base)
		payload["pack_count"] = packs
		w := postJSON(t, router, "/orders", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	// Nama kosong
	payload := cloneMap(base)
	payload["customer_name"] = ""
	w := postJSON(t, router, "/orders", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Delivery tanpa alamat
	payload = cloneMap(base)
	payload["delivery_method"] = "delivery"
	w = postJSON(t, router, "/orders", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Menu tak dikenal
	payload = cloneMap(base)
	payload["food_type"] = "mystery-box"
	w = postJSON(t, router, "/orders", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Tidak ada order yang tersimpan dari request gagal
	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateOrderWrongOrderTypeForDate(t *testing.T) {
	db := setupTestDBForOrders(t)
	router := setupOrderRouter(db)

	// Selasa -> same-day tidak boleh
	tuesday := time.Date(2025, 1, 7, 0, 0, 0, 0, time.Local)
	seedSlot(t, db, tuesday, 10, 10)

	payload := map[string]interface{}{
		"customer_name":   "Budi",
		"food_type":       "regular-pack",
		"pack_count":      1,
		"order_type":      models.OrderTypeSameDay,
		"delivery_method": "pickup",
		"target_date":     "2025-01-07",
	}
	w := postJSON(t, router, "/orders", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Sabtu -> same-day boleh
	saturday := time.Date(2025, 1, 4, 0, 0, 0, 0, time.Local)
	seedSlot(t, db, saturday, 10, 10)
	payload["target_date"] = "2025-01-04"
	w = postJSON(t, router, "/orders", payload)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateOrderSlotExhausted(t *testing.T) {
	db := setupTestDBForOrders(t)
	seedSlot(t, db, time.Now(), 5, 0)
	router := setupOrderRouter(db)

	payload := map[string]interface{}{
		"customer_name":   "Budi",
		"food_type":       "regular-pack",
		"pack_count":      1,
		"order_type":      orderTypeForToday(),
		"delivery_method": "pickup",
	}
	w := postJSON(t, router, "/orders", payload)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateOrderNoSlotForDate(t *testing.T) {
	db := setupTestDBForOrders(t)
	router := setupOrderRouter(db)

	payload := map[string]interface{}{
		"customer_name":   "Budi",
		"food_type":       "regular-pack",
		"pack_count":      1,
		"order_type":      orderTypeForToday(),
		"delivery_method": "pickup",
	}
	w := postJSON(t, router, "/orders", payload)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func cloneMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
