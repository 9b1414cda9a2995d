package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dapurnina/catering-app/controllers"
	"github.com/dapurnina/catering-app/models"
)

func setupPreferenceRouter(t *testing.T) *gin.Engine {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Preference{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	router := gin.Default()
	prefCtrl := controllers.NewPreferenceController(db)
	router.GET("/preferences/:client_id/:key", prefCtrl.GetPreference)
	router.PUT("/preferences/:client_id/:key", prefCtrl.SetPreference)
	router.DELETE("/preferences/:client_id/:key", prefCtrl.RemovePreference)
	return router
}

func putJSON(t *testing.T, router *gin.Engine, url string, payload interface{}) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	assert.NoError(t, err)
	req, err := http.NewRequest("PUT", url, bytes.NewBuffer(body))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPreferenceLifecycle(t *testing.T) {
	router := setupPreferenceRouter(t)
	clientID := uuid.NewString()
	url := "/preferences/" + clientID + "/" + controllers.PrefRememberedEmail

	// Belum ada
	req, _ := http.NewRequest("GET", url, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Set
	w = putJSON(t, router, url, gin.H{"value": "budi@example.com"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Get
	req, _ = http.NewRequest("GET", url, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "budi@example.com", data["value"])

	// Overwrite (upsert)
	w = putJSON(t, router, url, gin.H{"value": "siti@example.com"})
	assert.Equal(t, http.StatusOK, w.Code)

	req, _ = http.NewRequest("GET", url, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data = resp["data"].(map[string]interface{})
	assert.Equal(t, "siti@example.com", data["value"])

	// Remove
	req, _ = http.NewRequest("DELETE", url, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req, _ = http.NewRequest("GET", url, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
