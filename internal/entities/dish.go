package entities

type Dish struct {
	ID          string
	Name        string
	Description string
	// Price целое > 0; хранится как float64, чтобы значения за пределами int64 возвращались без потерь.
	Price       float64
	ImageURL    string
}
