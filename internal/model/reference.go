package model

import "fmt"

const (
	CategoryTable = "category"
	LocationTable = "location"
)

// RefKind — закрытое перечисление справочников. Имя таблицы берётся только отсюда,
// пользовательский ввод в SQL-идентификаторы не попадает.
type RefKind int

const (
	RefCategory RefKind = iota + 1
	RefLocation
)

// Table возвращает имя таблицы справочника.
func (k RefKind) Table() (string, error) {
	switch k {
	case RefCategory:
		return CategoryTable, nil
	case RefLocation:
		return LocationTable, nil
	default:
		return "", fmt.Errorf("unknown reference kind %d", int(k))
	}
}

func (k RefKind) String() string {
	switch k {
	case RefCategory:
		return "category"
	case RefLocation:
		return "location"
	default:
		return fmt.Sprintf("RefKind(%d)", int(k))
	}
}

// Reference — строка справочника категорий или мест хранения.
type Reference struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;uniqueIndex" json:"name"`
}

// Категории и места по умолчанию для seed без аргументов.
var (
	DefaultCategories = []string{
		"Produits laitiers", "Fruits", "Légumes", "Boissons",
		"Viandes", "Poisson", "Sauce", "Épicerie",
		"Boulangerie", "Surgelés", "Autre",
	}
	DefaultLocations = []string{
		"Cuisine", "Frigo", "Congélateur", "Cellier",
		"Placard Cuisine", "Autre",
	}
)
