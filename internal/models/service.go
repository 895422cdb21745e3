package models

// Service is a fixed catalog entry, seeded once at first startup.
type Service struct {
	ID          string `gorm:"primaryKey;size:50" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	DurationMin int    `gorm:"not null" json:"durationMin"`
	Active      bool   `gorm:"default:true" json:"active"`
}

func (Service) TableName() string {
	return "services"
}
