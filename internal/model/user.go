package model

import "time"

type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	Name         string    `gorm:"column:name"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	PointBalance int64     `gorm:"column:point_balance"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

// PointHistory is the append-only points ledger. Every mutation of
// User.PointBalance writes exactly one entry with the signed delta.
type PointHistory struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	UserID      int64     `gorm:"column:user_id;index;<-:create"`
	Points      int64     `gorm:"column:points;<-:create"`
	Description string    `gorm:"column:description;<-:create"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}
