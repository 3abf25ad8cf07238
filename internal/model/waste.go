package model

import "time"

// WasteLogEntry — снимок товара на момент списания. ItemID не внешний ключ:
// сам товар к этому моменту удалён.
type WasteLogEntry struct {
	ID         int64     `gorm:"primaryKey"`
	ItemID     int64     `gorm:"not null"`
	Name       string    `gorm:"not null"`
	Category   string    `gorm:"not null"`
	Location   string    `gorm:"not null"`
	Perishable bool      `gorm:"not null"`
	DLC        Date      `gorm:"column:dlc;type:date;not null"`
	Outcome    Outcome   `gorm:"not null;index"`
	LoggedAt   time.Time `gorm:"not null;index"`
}

func (WasteLogEntry) TableName() string { return "waste_log" }

// OutcomeCount — агрегат журнала по исходу.
type OutcomeCount struct {
	Outcome Outcome `json:"outcome"`
	Count   int64   `json:"count"`
}
