package pricing

import (
	"time"

	"github.com/dapurnina/catering-app/models"
)

// Config membawa katalog dan besaran fee. Diinject, bukan global,
// supaya bisa diganti di test.
type Config struct {
	Catalog     []models.FoodItem
	RushFee     float64
	DeliveryFee float64
}

// DefaultConfig returns the production catalog and fees.
func DefaultConfig() Config {
	return Config{
		Catalog:     models.DefaultCatalog(),
		RushFee:     5.00,
		DeliveryFee: 8.00,
	}
}

// OrderRequest adalah input transient untuk perhitungan harga.
// PackCount diasumsikan sudah di-clamp ke [1,20] oleh caller (validasi
// ada di lapisan HTTP, bukan di sini).
type OrderRequest struct {
	FoodType     string
	PackCount    int
	OrderType    string
	WithDelivery bool
}

// Breakdown adalah hasil perhitungan harga satu order.
type Breakdown struct {
	Subtotal    float64 `json:"subtotal"`
	RushFee     float64 `json:"rush_fee"`
	DeliveryFee float64 `json:"delivery_fee"`
	Total       float64 `json:"total"`
}

// ComputePrice menghitung rincian harga. Murni dan deterministik:
// tidak ada I/O, tidak ada waktu, tidak ada random.
// Item yang tidak dikenal dihitung dengan harga unit 0.
func ComputePrice(req OrderRequest, cfg Config) Breakdown {
	var unitPrice float64
	if item, ok := models.FindFoodItem(cfg.Catalog, req.FoodType); ok {
		unitPrice = item.Price
	}

	b := Breakdown{
		Subtotal: unitPrice * float64(req.PackCount),
	}
	if req.OrderType == models.OrderTypeSameDay {
		b.RushFee = cfg.RushFee
	}
	if req.WithDelivery {
		b.DeliveryFee = cfg.DeliveryFee
	}
	b.Total = b.Subtotal + b.RushFee + b.DeliveryFee
	return b
}

// AvailableOrderTypes mengembalikan tipe order yang ditawarkan untuk
// sebuah tanggal: weekend hanya same-day, weekday hanya pre-order.
func AvailableOrderTypes(date time.Time) []string {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return []string{models.OrderTypeSameDay}
	default:
		return []string{models.OrderTypePreOrder}
	}
}
