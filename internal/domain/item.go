package domain

type Item struct {
	ID          int    `json:"id"`
	Name        string `json:"nom"`
	Type        string `json:"tipus"`
	Description string `json:"descripcio"`
}

// OwnedItem is one row of a user's inventory. There is at most one row
// per (UserID, ItemID) pair.
type OwnedItem struct {
	UserID   int `json:"usuari_id"`
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantitat"`
}

type PurchaseLine struct {
	ItemID   int `json:"itemId"`
	Quantity int `json:"quantitat"`
}

type Purchase struct {
	UserID    int            `json:"userId"`
	Items     []PurchaseLine `json:"items"`
	TotalCost Amount         `json:"totalCost"`
}
