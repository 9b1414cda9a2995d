package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dapurnina/catering-app/pricing"
	"github.com/dapurnina/catering-app/utils"
)

type CatalogController struct {
	Pricing pricing.Config
}

func NewCatalogController() *CatalogController {
	return &CatalogController{Pricing: pricing.DefaultConfig()}
}

// GetCatalog -> daftar item tetap plus besaran fee untuk form publik.
func (cc *CatalogController) GetCatalog(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Catalog", gin.H{
		"items":        cc.Pricing.Catalog,
		"rush_fee":     cc.Pricing.RushFee,
		"delivery_fee": cc.Pricing.DeliveryFee,
	})
}

// GetOrderTypes -> tipe order yang tersedia untuk sebuah tanggal
// (query param date=YYYY-MM-DD, default hari ini).
func (cc *CatalogController) GetOrderTypes(c *gin.Context) {
	date := time.Now()
	if d := c.Query("date"); d != "" {
		parsed, err := time.ParseInLocation("2006-01-02", d, time.Local)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("format tanggal tidak valid, pakai YYYY-MM-DD"))
			return
		}
		date = parsed
	}

	utils.RespondJSON(c, http.StatusOK, "Available order types", gin.H{
		"date":        date.Format("2006-01-02"),
		"order_types": pricing.AvailableOrderTypes(date),
	})
}

// Quote -> hitung harga tanpa menyimpan apa pun, untuk preview di form.
func (cc *CatalogController) Quote(c *gin.Context) {
	type ReqBody struct {
		FoodType       string `json:"food_type" binding:"required"`
		PackCount      int    `json:"pack_count" binding:"required,min=1,max=20"`
		OrderType      string `json:"order_type" binding:"required,oneof=same-day pre-order"`
		DeliveryMethod string `json:"delivery_method" binding:"required,oneof=pickup delivery"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	breakdown := pricing.ComputePrice(pricing.OrderRequest{
		FoodType:     body.FoodType,
		PackCount:    body.PackCount,
		OrderType:    body.OrderType,
		WithDelivery: body.DeliveryMethod == "delivery",
	}, cc.Pricing)

	utils.RespondJSON(c, http.StatusOK, "Price quote", breakdown)
}
