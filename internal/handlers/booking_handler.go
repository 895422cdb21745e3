package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/f1rstwash/booking-api/internal/config"
	domain "github.com/f1rstwash/booking-api/internal/domain/booking"
	"github.com/f1rstwash/booking-api/internal/dto"
	"github.com/f1rstwash/booking-api/internal/httperr"
	"github.com/f1rstwash/booking-api/internal/httpresp"
	"github.com/f1rstwash/booking-api/internal/timezone"
	ucbooking "github.com/f1rstwash/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	repo         domain.Repository
	availability *ucbooking.GetAvailability
	create       *ucbooking.CreateBooking
	cfg          *config.Config
}

func NewBookingHandler(
	repo domain.Repository,
	availability *ucbooking.GetAvailability,
	create *ucbooking.CreateBooking,
	cfg *config.Config,
) *BookingHandler {
	return &BookingHandler{
		repo:         repo,
		availability: availability,
		create:       create,
		cfg:          cfg,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ServiceID string `json:"serviceId"`
	Start     string `json:"start"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// ======================================================
// SERVICES
// ======================================================

func (h *BookingHandler) ListServices(c *gin.Context) {
	services, err := h.repo.ListServices(c.Request.Context())
	if err != nil {
		httperr.Unavailable(c, "Service catalog is temporarily unavailable.")
		return
	}

	out := make([]dto.ServiceDTO, 0, len(services))
	for _, s := range services {
		out = append(out, dto.ServiceDTO{
			ID:          s.ID,
			Name:        s.Name,
			DurationMin: s.DurationMin,
		})
	}

	httpresp.OK(c, dto.ServicesResponse{Services: out})
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *BookingHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	serviceID := c.Query("serviceId")

	if !isValidDate(dateStr) {
		httperr.BadRequest(c, "Invalid date. Expected YYYY-MM-DD.")
		return
	}
	if serviceID == "" {
		httperr.BadRequest(c, "Missing serviceId.")
		return
	}

	loc := timezone.Location(h.cfg.Timezone)
	date, err := parseDateIn(dateStr, loc)
	if err != nil {
		httperr.BadRequest(c, "Invalid date. Expected YYYY-MM-DD.")
		return
	}

	result, err := h.availability.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			ServiceID: serviceID,
			Date:      date,
		},
	)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeServiceUnknown) {
			httperr.NotFound(c, "Unknown service.")
			return
		}
		httperr.Unavailable(c, "Availability is temporarily unavailable.")
		return
	}

	slots := make([]dto.SlotDTO, 0, len(result.Slots))
	for _, s := range result.Slots {
		slots = append(slots, dto.SlotDTO{
			Start: s.Start.Format(time.RFC3339),
			End:   s.End.Format(time.RFC3339),
			Label: s.Label,
		})
	}

	httpresp.OK(c, dto.AvailabilityResponse{
		Date:            dateStr,
		Timezone:        h.cfg.Timezone,
		ServiceID:       serviceID,
		SlotIntervalMin: h.cfg.SlotIntervalMin,
		DurationMin:     result.Service.DurationMin,
		Slots:           slots,
	})
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body.")
		return
	}

	b, err := h.create.Execute(
		c.Request.Context(),
		ucbooking.CreateBookingInput{
			ServiceID: req.ServiceID,
			Start:     req.Start,
			Name:      req.Name,
			Phone:     req.Phone,
			Email:     req.Email,
		},
	)
	if err != nil {
		mapCreateErrors(c, err)
		return
	}

	loc := timezone.Location(h.cfg.Timezone)

	var email *string
	if b.CustomerEmail != "" {
		email = &b.CustomerEmail
	}

	httpresp.Created(c, dto.BookingResponse{
		ID:        b.ID,
		ServiceID: b.ServiceID,
		Start:     formatTS(b.StartTS, loc),
		End:       formatTS(b.EndTS, loc),
		Timezone:  h.cfg.Timezone,
		Name:      b.CustomerName,
		Phone:     b.CustomerPhone,
		Email:     email,
	})
}

func mapCreateErrors(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case httperr.CodeMissingService:
		httperr.BadRequest(c, "Missing serviceId.")
	case httperr.CodeMissingStart:
		httperr.BadRequest(c, "Missing start.")
	case httperr.CodeMissingName:
		httperr.BadRequest(c, "Missing name.")
	case httperr.CodeMissingPhone:
		httperr.BadRequest(c, "Missing phone.")
	case httperr.CodeInvalidStart:
		httperr.BadRequest(c, "Invalid start time.")
	case httperr.CodeServiceUnknown:
		httperr.NotFound(c, "Unknown service.")
	case httperr.CodeOutsideHours:
		httperr.BadRequest(c, "Outside business hours.")
	case httperr.CodePastTime:
		httperr.BadRequest(c, "Cannot book a past time.")
	case httperr.CodeSlotTaken:
		httperr.Conflict(c, "That slot is no longer available.")
	case httperr.CodeStorageFailed:
		httperr.Unavailable(c, "Booking storage is temporarily unavailable. Please try again later or contact us.")
	default:
		httperr.Internal(c, "Server error. Try again.")
	}
}
