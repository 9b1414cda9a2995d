package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dapurnina/catering-app/models"
	"github.com/dapurnina/catering-app/utils"
)

// Key preferensi yang dikenal. Key lain tetap diterima, ini hanya
// konvensi untuk frontend.
const (
	PrefRememberedEmail = "remembered_email"
	PrefRecentOrders    = "recent_orders"
)

// PreferenceController menyimpan preferensi client (remembered email,
// recent lookups). Best-effort: bukan sumber kebenaran, tidak pernah
// dipakai untuk keputusan bisnis.
type PreferenceController struct {
	DB *gorm.DB
}

func NewPreferenceController(db *gorm.DB) *PreferenceController {
	return &PreferenceController{DB: db}
}

// GetPreference -> nilai satu key untuk satu client id.
func (pc *PreferenceController) GetPreference(c *gin.Context) {
	var pref models.Preference
	err := pc.DB.
		Where("client_id = ? AND pref_key = ?", c.Param("client_id"), c.Param("key")).
		First(&pref).Error
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("preference tidak ditemukan"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Preference", gin.H{
		"key":   pref.PrefKey,
		"value": pref.Value,
	})
}

// SetPreference -> upsert nilai.
func (pc *PreferenceController) SetPreference(c *gin.Context) {
	type reqBody struct {
		Value string `json:"value" binding:"required"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	clientID := c.Param("client_id")
	key := c.Param("key")

	var pref models.Preference
	err := pc.DB.Where("client_id = ? AND pref_key = ?", clientID, key).First(&pref).Error
	if err != nil {
		pref = models.Preference{
			ClientID:  clientID,
			PrefKey:   key,
			Value:     body.Value,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		err = pc.DB.Create(&pref).Error
	} else {
		pref.Value = body.Value
		pref.UpdatedAt = time.Now()
		err = pc.DB.Save(&pref).Error
	}
	if err != nil {
		// Best-effort: kegagalan dicatat tapi tidak dianggap fatal
		utils.ErrorLogger.Printf("Failed to store preference %s/%s: %v", clientID, key, err)
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Preference saved", gin.H{
		"key":   pref.PrefKey,
		"value": pref.Value,
	})
}

// RemovePreference
func (pc *PreferenceController) RemovePreference(c *gin.Context) {
	err := pc.DB.
		Where("client_id = ? AND pref_key = ?", c.Param("client_id"), c.Param("key")).
		Delete(&models.Preference{}).Error
	if err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Preference removed", nil)
}
