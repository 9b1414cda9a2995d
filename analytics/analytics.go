package analytics

import (
	"sort"

	"github.com/dapurnina/catering-app/models"
)

// FoodItemStat adalah agregat per item untuk ranking top item.
type FoodItemStat struct {
	Name      string  `json:"name"`
	PackCount int     `json:"pack_count"`
	Revenue   float64 `json:"revenue"`
}

// DayStat adalah satu entri seri Senin-Minggu.
type DayStat struct {
	Day        string  `json:"day"`
	Revenue    float64 `json:"revenue"`
	OrderCount int     `json:"order_count"`
}

// Summary adalah hasil agregasi satu set order. Selalu dihitung ulang
// dari nol setiap fetch, tidak pernah di-update inkremental.
type Summary struct {
	TotalOrders   int            `json:"total_orders"`
	PickupCount   int            `json:"pickup_count"`
	DeliveryCount int            `json:"delivery_count"`
	TotalRevenue  float64        `json:"total_revenue"`
	AvgOrderValue float64        `json:"avg_order_value"`
	TopFoodItems  []FoodItemStat `json:"top_food_items"`
	RevenueByDay  []DayStat      `json:"revenue_by_day"`
}

// Urutan tetap seri mingguan. Hari yang tidak muncul di input tetap
// hadir dengan nilai nol.
var weekTemplate = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

const topFoodItemLimit = 5

// Aggregate menghitung statistik dashboard dari daftar order.
// Input tidak dimutasi. Nama item di-resolve lewat catalog; id yang
// tidak dikenal memakai id mentahnya sebagai label.
func Aggregate(orders []models.Order, catalog []models.FoodItem) Summary {
	summary := Summary{
		TotalOrders:  len(orders),
		TopFoodItems: []FoodItemStat{},
	}

	// Grouping per item, urutan insertion dipertahankan untuk tie-break
	// yang stabil saat pack count sama.
	itemIndex := make(map[string]int)
	var itemStats []FoodItemStat

	dayIndex := make(map[string]int, len(weekTemplate))
	dayStats := make([]DayStat, len(weekTemplate))
	for i, day := range weekTemplate {
		dayIndex[day] = i
		dayStats[i] = DayStat{Day: day}
	}

	for _, order := range orders {
		switch order.DeliveryMethod {
		case models.DeliveryMethodDelivery:
			summary.DeliveryCount++
		default:
			summary.PickupCount++
		}

		summary.TotalRevenue += order.TotalAmount

		name := order.FoodType
		if item, ok := models.FindFoodItem(catalog, order.FoodType); ok {
			name = item.Label
		}
		idx, ok := itemIndex[name]
		if !ok {
			idx = len(itemStats)
			itemIndex[name] = idx
			itemStats = append(itemStats, FoodItemStat{Name: name})
		}
		itemStats[idx].PackCount += order.PackCount
		itemStats[idx].Revenue += order.TotalAmount

		day := order.CreatedAt.Format("Mon")
		if di, ok := dayIndex[day]; ok {
			dayStats[di].Revenue += order.TotalAmount
			dayStats[di].OrderCount++
		}
	}

	if len(orders) > 0 {
		summary.AvgOrderValue = summary.TotalRevenue / float64(len(orders))
	}

	sort.SliceStable(itemStats, func(i, j int) bool {
		return itemStats[i].PackCount > itemStats[j].PackCount
	})
	if len(itemStats) > topFoodItemLimit {
		itemStats = itemStats[:topFoodItemLimit]
	}
	if itemStats != nil {
		summary.TopFoodItems = itemStats
	}

	summary.RevenueByDay = dayStats
	return summary
}
