package catalog

// LocalizedText carries the three storefront languages as fixed fields so a
// missing translation is visible at compile time rather than at render time.
type LocalizedText struct {
	Ku string `json:"ku"`
	Ar string `json:"ar"`
	En string `json:"en"`
}

// Get returns the text for the given language code, falling back to English
// for unknown codes.
func (lt LocalizedText) Get(lang string) string {
	switch lang {
	case "ku":
		return lt.Ku
	case "ar":
		return lt.Ar
	default:
		return lt.En
	}
}

// Product represents a sellable item. Prices are IQD minor units, so an
// integer is exact. JSON tags match the persisted snapshot shape.
type Product struct {
	ID          int           `json:"id"`
	Name        LocalizedText `json:"name"`
	Description LocalizedText `json:"description"`
	Price       int           `json:"price"`
	Category    string        `json:"category"`
	Image       string        `json:"image"`
	Stock       int           `json:"stock"`
}
