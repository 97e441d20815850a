package handlers

import (
	"net/http"
	"time"

	"sapdoc/services/scheduling"
	"sapdoc/utils"

	"github.com/gin-gonic/gin"
)

// SchedulingHandler exposes the scheduling engine operations over HTTP.
// Each endpoint maps 1:1 onto one engine tool.
type SchedulingHandler struct {
	Service scheduling.Service
}

func NewSchedulingHandler(svc scheduling.Service) *SchedulingHandler {
	return &SchedulingHandler{Service: svc}
}

// GetAvailableSlotsHandler returns free slots for a date range.
// GET /slots?start=YYYY-MM-DD&end=YYYY-MM-DD (start defaults to today).
func (h *SchedulingHandler) GetAvailableSlotsHandler(c *gin.Context) {
	start := c.Query("start")
	if start == "" {
		start = time.Now().Format("2006-01-02")
	}
	slots := h.Service.GetAvailableSlots(c.Request.Context(), start, c.Query("end"))
	c.JSON(http.StatusOK, gin.H{
		"slots": slots,
		"count": len(slots),
	})
}

// FindNearestSlotHandler returns the first free slot at or after the given
// start date. GET /slots/nearest?start=YYYY-MM-DD.
func (h *SchedulingHandler) FindNearestSlotHandler(c *gin.Context) {
	slot := h.Service.FindNearestAvailableSlot(c.Request.Context(), c.Query("start"))
	if slot == nil {
		c.JSON(http.StatusOK, gin.H{
			"slot":    nil,
			"message": "No available appointment slots were found.",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slot": slot})
}

// BookSlotHandler books a slot by its ID. POST /book.
func (h *SchedulingHandler) BookSlotHandler(c *gin.Context) {
	var input struct {
		SlotID      string `json:"slot_id"`
		PatientName string `json:"patient_name"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	outcome := h.Service.BookSlot(c.Request.Context(), input.SlotID, input.PatientName, input.Description)
	c.JSON(bookingStatusCode(outcome.Status), outcome)
}

// BookSlotNaturalHandler books from a free-text date and time pair.
// POST /book/natural.
func (h *SchedulingHandler) BookSlotNaturalHandler(c *gin.Context) {
	var input struct {
		Date        string `json:"date"`
		Time        string `json:"time"`
		PatientName string `json:"patient_name"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	outcome := h.Service.BookSlotNatural(c.Request.Context(), input.Date, input.Time, input.PatientName, input.Description)
	c.JSON(bookingStatusCode(outcome.Status), outcome)
}

// BookSlotSmartHandler books from a single "DATE at TIME" string.
// POST /book/smart.
func (h *SchedulingHandler) BookSlotSmartHandler(c *gin.Context) {
	var input struct {
		DateTime    string `json:"date_time"`
		PatientName string `json:"patient_name"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	outcome := h.Service.BookSlotSmart(c.Request.Context(), input.DateTime, input.PatientName, input.Description)
	c.JSON(bookingStatusCode(outcome.Status), outcome)
}

// CancelSlotHandler cancels the appointment occupying a slot. POST /cancel.
func (h *SchedulingHandler) CancelSlotHandler(c *gin.Context) {
	var input struct {
		SlotID string `json:"slot_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	outcome := h.Service.CancelSlot(c.Request.Context(), input.SlotID)
	c.JSON(cancellationStatusCode(outcome.Status), outcome)
}

// ListAppointmentsHandler lists booked appointments, optionally for one
// date. GET /appointments?date=YYYY-MM-DD.
func (h *SchedulingHandler) ListAppointmentsHandler(c *gin.Context) {
	var (
		appts []scheduling.AppointmentView
		err   error
	)
	if date := c.Query("date"); date != "" {
		appts, err = h.Service.ListAppointments(c.Request.Context(), date)
	} else {
		appts, err = h.Service.ListAllAppointments(c.Request.Context())
	}
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "System error",
			"Unable to load appointments. Please try again or contact the office.")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"appointments": appts,
		"count":        len(appts),
	})
}

// OfficeInfoHandler returns office hours and booking policies. GET /office-info.
func (h *SchedulingHandler) OfficeInfoHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.OfficeInfo())
}

func bookingStatusCode(status scheduling.OutcomeStatus) int {
	switch status {
	case scheduling.OutcomeConfirmed:
		return http.StatusOK
	case scheduling.OutcomeConflict:
		return http.StatusConflict
	case scheduling.OutcomeUnparseable, scheduling.OutcomeInvalid:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func cancellationStatusCode(status scheduling.OutcomeStatus) int {
	switch status {
	case scheduling.OutcomeCancelled:
		return http.StatusOK
	case scheduling.OutcomeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
