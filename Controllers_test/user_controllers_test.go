package Controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dapurnina/catering-app/controllers"
	"github.com/dapurnina/catering-app/middlewares"
	"github.com/dapurnina/catering-app/models"
)

func setupUserRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	router := gin.Default()
	userCtrl := controllers.NewUserController(db)
	router.POST("/register", userCtrl.Register)
	router.POST("/login", userCtrl.Login)

	auth := router.Group("/admin")
	auth.Use(middlewares.AuthMiddleware())
	auth.GET("/profile", userCtrl.GetProfile)
	auth.POST("/logout", userCtrl.Logout)
	return router, db
}

func TestRegisterLoginProfile(t *testing.T) {
	router, _ := setupUserRouter(t)

	w := postJSON(t, router, "/register", gin.H{
		"name":     "Nina",
		"email":    "nina@dapurnina.id",
		"password": "rahasia-dapur",
		"role":     "admin",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Role di luar admin/staff ditolak
	w = postJSON(t, router, "/register", gin.H{
		"name":     "Mallory",
		"email":    "mallory@example.com",
		"password": "password123",
		"role":     "superuser",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Login benar
	w = postJSON(t, router, "/login", gin.H{
		"email":    "nina@dapurnina.id",
		"password": "rahasia-dapur",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var loginResp struct {
		Data struct {
			Token    string `json:"token"`
			UserRole string `json:"user_role"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginResp))
	assert.NotEmpty(t, loginResp.Data.Token)
	assert.Equal(t, "admin", loginResp.Data.UserRole)

	// Password salah
	w = postJSON(t, router, "/login", gin.H{
		"email":    "nina@dapurnina.id",
		"password": "salah",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Profil dengan token
	w = authRequest(t, router, "GET", "/admin/profile", loginResp.Data.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var profileResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &profileResp))
	data := profileResp["data"].(map[string]interface{})
	assert.Equal(t, "nina@dapurnina.id", data["email"])

	// Logout -> token masuk blacklist, request berikutnya ditolak
	w = authRequest(t, router, "POST", "/admin/logout", loginResp.Data.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = authRequest(t, router, "GET", "/admin/profile", loginResp.Data.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
