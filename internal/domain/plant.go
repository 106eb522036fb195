package domain

type Plant struct {
	ID             int    `json:"id"`
	UserID         int    `json:"usuari_id"`
	Name           string `json:"nom"`
	Type           string `json:"tipus"`
	Level          int    `json:"nivell"`
	Attack         int    `json:"atac"`
	Defense        int    `json:"defensa"`
	Speed          int    `json:"velocitat"`
	SpecialAbility string `json:"habilitat_especial"`
	Energy         int    `json:"energia"`
	Status         string `json:"estat"`
	Rarity         string `json:"raritat"`
	Image          string `json:"imatge"`
}
