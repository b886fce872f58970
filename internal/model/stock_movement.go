package model

import "time"

// Movement types recorded in the stock_movements audit table.
const (
	MovementAdd    = "add"
	MovementUpdate = "update"
	MovementDelete = "delete"
)

// StockMovement is an optional audit row describing a stock change. Writes
// are best-effort: no inventory operation depends on them succeeding.
type StockMovement struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProductID uint      `json:"product_id" gorm:"not null;index"`
	Delta     int       `json:"delta" gorm:"not null"`
	Type      string    `json:"type" gorm:"size:16;not null"`
	CreatedAt time.Time `json:"created_at"`
}
