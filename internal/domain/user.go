package domain

type User struct {
	ID           int    `json:"id"`
	Name         string `json:"nom"`
	Email        string `json:"correu"`
	Password     string `json:"contrasenya"`
	Age          int    `json:"edat"`
	Nationality  string `json:"nacionalitat"`
	PostalCode   string `json:"codiPostal"`
	ProfileImage string `json:"imatgePerfil"`

	// Balance only changes through purchases; profile updates leave it alone.
	Balance Amount `json:"btc"`
}
