package model

import "time"

type Event struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	OrganizerID int64     `gorm:"column:organizer_id;index"`
	Name        string    `gorm:"column:name"`
	Location    string    `gorm:"column:location"`
	StartsAt    time.Time `gorm:"column:starts_at"`
	EndsAt      time.Time `gorm:"column:ends_at"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`

	Tickets    []Ticket    `gorm:"foreignKey:EventID"`
	Promotions []Promotion `gorm:"foreignKey:EventID"`
}

type Ticket struct {
	ID             int64     `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	EventID        int64     `gorm:"column:event_id;index"`
	Name           string    `gorm:"column:name"`
	Price          int64     `gorm:"column:price"`
	AvailableSeats int       `gorm:"column:available_seats"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

// Promotion is a date-bounded campaign attached to an event. The
// transaction core loads promotions with the event but never writes
// them; discounts on a purchase come from coupons and points only.
type Promotion struct {
	ID       int64     `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	EventID  int64     `gorm:"column:event_id;index"`
	Name     string    `gorm:"column:name"`
	StartsAt time.Time `gorm:"column:starts_at"`
	EndsAt   time.Time `gorm:"column:ends_at"`
}

func (p Promotion) ActiveAt(t time.Time) bool {
	return !t.Before(p.StartsAt) && !t.After(p.EndsAt)
}
