package services

const (
	OrderTypePickup   = "pickup"
	OrderTypeDelivery = "delivery"
	OrderTypeDineIn   = "dine-in"
)

// ----- Line item inputs shared by preview and persist paths -----

type AddOnIn struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

type OrderItemIn struct {
	ProductID uint      `json:"productId" binding:"required"`
	VariantID *uint     `json:"variantId"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	Price     int64     `json:"price"`
	AddOns    []AddOnIn `json:"addOns"`
}

type OrderTotals struct {
	ItemTotals []int64 `json:"itemTotals"`
	Subtotal   int64   `json:"subtotal"`
	Total      int64   `json:"total"`
}

// ComputeOrderTotals is the single source of truth for order money math.
// Every add-on scales by its own quantity and again by the parent item's
// quantity. An add-on with quantity <= 0 counts as removed. The delivery fee
// applies only to delivery orders.
func ComputeOrderTotals(items []OrderItemIn, orderType string, deliveryFee int64) OrderTotals {
	out := OrderTotals{ItemTotals: make([]int64, 0, len(items))}

	for _, it := range items {
		itemTotal := it.Price * int64(it.Quantity)
		for _, a := range it.AddOns {
			if a.Quantity <= 0 {
				continue
			}
			itemTotal += a.Price * int64(a.Quantity) * int64(it.Quantity)
		}
		out.ItemTotals = append(out.ItemTotals, itemTotal)
		out.Subtotal += itemTotal
	}

	out.Total = out.Subtotal
	if orderType == OrderTypeDelivery {
		out.Total += deliveryFee
	}
	return out
}
