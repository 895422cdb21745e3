package dto

// Response shapes of the public booking API. Instants are rendered
// ISO-8601 in the business timezone.

type ServiceDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DurationMin int    `json:"durationMin"`
}

type ServicesResponse struct {
	Services []ServiceDTO `json:"services"`
}

type SlotDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label"`
}

type AvailabilityResponse struct {
	Date            string    `json:"date"`
	Timezone        string    `json:"timezone"`
	ServiceID       string    `json:"serviceId"`
	SlotIntervalMin int       `json:"slotIntervalMin"`
	DurationMin     int       `json:"durationMin"`
	Slots           []SlotDTO `json:"slots"`
}

type BookingResponse struct {
	ID        string  `json:"id"`
	ServiceID string  `json:"serviceId"`
	Start     string  `json:"start"`
	End       string  `json:"end"`
	Timezone  string  `json:"timezone"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email"`
}

type AdminBookingItem struct {
	ID            string `json:"id"`
	ServiceID     string `json:"service_id"`
	StartTS       int64  `json:"start_ts"`
	EndTS         int64  `json:"end_ts"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`
	Status        string `json:"status"`
	Start         string `json:"start"`
	End           string `json:"end"`
}

type BlockResponse struct {
	ID     string `json:"id"`
	Start  string `json:"start"`
	End    string `json:"end"`
	Reason string `json:"reason"`
}
