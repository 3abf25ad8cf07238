package model

import "time"

// Item — товар на складе. Обновления нет: запись живёт до списания.
type Item struct {
	ID         int64     `gorm:"primaryKey"`
	Name       string    `gorm:"not null"`
	CategoryID int64     `gorm:"not null;index"`
	Perishable bool      `gorm:"not null"`
	DLC        Date      `gorm:"column:dlc;type:date;not null;index"`
	LocationID int64     `gorm:"not null;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Item) TableName() string { return "item" }

// ItemRecord — товар вместе с именами категории и места.
type ItemRecord struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Location   string    `json:"location"`
	Perishable bool      `json:"perishable"`
	DLC        Date      `gorm:"column:dlc" json:"dlc"`
	CreatedAt  time.Time `json:"created_at"`
}
