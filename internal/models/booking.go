package models

const StatusConfirmed = "confirmed"

// Booking stores its interval as absolute epoch milliseconds so overlap
// arithmetic is independent of timezone handling elsewhere.
type Booking struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	ServiceID string `gorm:"size:50;not null;index" json:"service_id"`

	StartTS int64 `gorm:"column:start_ts;not null;index:idx_bookings_start_end,priority:1" json:"start_ts"`
	EndTS   int64 `gorm:"column:end_ts;not null;index:idx_bookings_start_end,priority:2" json:"end_ts"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:30;not null" json:"customer_phone"`
	CustomerEmail string `gorm:"size:100" json:"customer_email"`

	Status string `gorm:"size:20;not null;default:'confirmed';index" json:"status"`

	CreatedAt int64 `gorm:"autoCreateTime:milli" json:"created_at"`
}

func (Booking) TableName() string {
	return "bookings"
}
