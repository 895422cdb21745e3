package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/f1rstwash/booking-api/internal/config"
	domain "github.com/f1rstwash/booking-api/internal/domain/booking"
	"github.com/f1rstwash/booking-api/internal/dto"
	"github.com/f1rstwash/booking-api/internal/httperr"
	"github.com/f1rstwash/booking-api/internal/httpresp"
	"github.com/f1rstwash/booking-api/internal/models"
	"github.com/f1rstwash/booking-api/internal/timezone"
	ucbooking "github.com/f1rstwash/booking-api/internal/usecase/booking"
)

const adminTokenTTL = 12 * time.Hour

type AdminHandler struct {
	repo domain.Repository
	list *ucbooking.ListBookings
	cfg  *config.Config
}

func NewAdminHandler(
	repo domain.Repository,
	list *ucbooking.ListBookings,
	cfg *config.Config,
) *AdminHandler {
	return &AdminHandler{
		repo: repo,
		list: list,
		cfg:  cfg,
	}
}

// ======================================================
// LOGIN
// ======================================================

type AdminLoginRequest struct {
	Key string `json:"key" binding:"required"`
}

// Login exchanges the shared secret for a short-lived token so the
// dashboard does not resend the raw key on every request.
func (h *AdminHandler) Login(c *gin.Context) {
	if h.cfg.AdminKey == "" {
		httperr.BadRequest(c, "Admin access is not configured.")
		return
	}

	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body.")
		return
	}

	if req.Key != h.cfg.AdminKey {
		httperr.Unauthorized(c, "Unauthorized")
		return
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"scope": "admin",
		"iat":   now.Unix(),
		"exp":   now.Add(adminTokenTTL).Unix(),
	})

	signed, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		httperr.Internal(c, "Server error. Try again.")
		return
	}

	httpresp.OK(c, gin.H{"token": signed})
}

// ======================================================
// LIST BOOKINGS
// ======================================================

func (h *AdminHandler) ListBookings(c *gin.Context) {
	dateStr := c.Query("date")
	loc := timezone.Location(h.cfg.Timezone)

	var day *time.Time
	if dateStr != "" {
		if !isValidDate(dateStr) {
			httperr.BadRequest(c, "Invalid date. Expected YYYY-MM-DD.")
			return
		}
		d, err := parseDateIn(dateStr, loc)
		if err != nil {
			httperr.BadRequest(c, "Invalid date. Expected YYYY-MM-DD.")
			return
		}
		day = &d
	}

	bookings, err := h.list.Execute(
		c.Request.Context(),
		ucbooking.ListBookingsInput{Day: day},
	)
	if err != nil {
		httperr.Unavailable(c, "Booking storage is temporarily unavailable. Please try again later or contact us.")
		return
	}

	items := make([]dto.AdminBookingItem, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, dto.AdminBookingItem{
			ID:            b.ID,
			ServiceID:     b.ServiceID,
			StartTS:       b.StartTS,
			EndTS:         b.EndTS,
			CustomerName:  b.CustomerName,
			CustomerPhone: b.CustomerPhone,
			CustomerEmail: b.CustomerEmail,
			Status:        b.Status,
			Start:         formatTS(b.StartTS, loc),
			End:           formatTS(b.EndTS, loc),
		})
	}

	httpresp.List(c, items)
}

// ======================================================
// CREATE BLOCK
// ======================================================

type CreateBlockRequest struct {
	Start  string `json:"start" binding:"required"`
	End    string `json:"end" binding:"required"`
	Reason string `json:"reason"`
}

// CreateBlock inserts a manual hold. Blocks count toward capacity the
// same way confirmed bookings do.
func (h *AdminHandler) CreateBlock(c *gin.Context) {
	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body.")
		return
	}

	loc := timezone.Location(h.cfg.Timezone)

	start, err := time.ParseInLocation(time.RFC3339, req.Start, loc)
	if err != nil {
		httperr.BadRequest(c, "Invalid start time.")
		return
	}
	end, err := time.ParseInLocation(time.RFC3339, req.End, loc)
	if err != nil {
		httperr.BadRequest(c, "Invalid end time.")
		return
	}
	if !end.After(start) {
		httperr.BadRequest(c, "End must be after start.")
		return
	}

	blk := &models.Block{
		ID:      uuid.NewString(),
		StartTS: start.UnixMilli(),
		EndTS:   end.UnixMilli(),
		Reason:  req.Reason,
	}

	if err := h.repo.CreateBlock(c.Request.Context(), blk); err != nil {
		httperr.Unavailable(c, "Booking storage is temporarily unavailable. Please try again later or contact us.")
		return
	}

	httpresp.Created(c, dto.BlockResponse{
		ID:     blk.ID,
		Start:  formatTS(blk.StartTS, loc),
		End:    formatTS(blk.EndTS, loc),
		Reason: blk.Reason,
	})
}
