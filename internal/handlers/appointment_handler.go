package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book         *ucAppointment.BookAppointment
	updateStatus *ucAppointment.UpdateAppointmentStatus
	cancel       *ucAppointment.CancelAppointment
	get          *ucAppointment.GetAppointment
	listCustomer *ucAppointment.ListCustomerAppointments
	listSalon    *ucAppointment.ListSalonAppointments
	slots        *ucAppointment.ListAvailableSlots
}

func NewAppointmentHandler(
	book *ucAppointment.BookAppointment,
	updateStatus *ucAppointment.UpdateAppointmentStatus,
	cancel *ucAppointment.CancelAppointment,
	get *ucAppointment.GetAppointment,
	listCustomer *ucAppointment.ListCustomerAppointments,
	listSalon *ucAppointment.ListSalonAppointments,
	slots *ucAppointment.ListAvailableSlots,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:         book,
		updateStatus: updateStatus,
		cancel:       cancel,
		get:          get,
		listCustomer: listCustomer,
		listSalon:    listSalon,
		slots:        slots,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// Required fields are checked by the use case so the error carries the
// same field map whatever the transport.
type BookAppointmentRequest struct {
	SalonID      string   `json:"salonId"`
	ServiceID    string   `json:"serviceId"`
	ServiceName  string   `json:"serviceName"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	Notes        string   `json:"notes"`
	CustomerID   string   `json:"customerId"`
	CustomerName string   `json:"customerName"`
	TotalAmount  *float64 `json:"totalAmount"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

// ======================================================
// BOOK
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.BindError(err))
		return
	}

	actor := middleware.ActorFrom(c)

	ap, err := h.book.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		SalonID:      req.SalonID,
		ServiceID:    req.ServiceID,
		ServiceName:  req.ServiceName,
		Date:         req.Date,
		Time:         req.Time,
		Notes:        req.Notes,
		CustomerID:   req.CustomerID,
		CustomerName: req.CustomerName,
		TotalAmount:  req.TotalAmount,
		ActorID:      actor.ID,
		ActorName:    actor.Name,
		ActorEmail:   actor.Email,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, "Appointment booked successfully", gin.H{
		"appointmentId": ap.ID,
		"appointment":   ap,
	})
}

// ======================================================
// LISTS
// ======================================================

func (h *AppointmentHandler) MyAppointments(c *gin.Context) {
	page, err := h.listCustomer.Execute(c.Request.Context(), ucAppointment.ListCustomerInput{
		CustomerID: middleware.ActorFrom(c).ID,
		Status:     c.Query("status"),
		Page:       queryInt(c, "page"),
		Limit:      queryInt(c, "limit"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "", gin.H{
		"appointments": page.Appointments,
		"pagination":   page.Pagination,
	})
}

func (h *AppointmentHandler) SalonAppointments(c *gin.Context) {
	page, err := h.listSalon.Execute(c.Request.Context(), ucAppointment.ListSalonInput{
		SalonID: c.Param("salonId"),
		ActorID: middleware.ActorFrom(c).ID,
		Status:  c.Query("status"),
		Date:    c.Query("date"),
		Page:    queryInt(c, "page"),
		Limit:   queryInt(c, "limit"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "", gin.H{
		"appointments": page.Appointments,
		"pagination":   page.Pagination,
	})
}

// ======================================================
// LIFECYCLE
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.BindError(err))
		return
	}

	ap, err := h.updateStatus.Execute(c.Request.Context(), ucAppointment.UpdateStatusInput{
		AppointmentID: c.Param("id"),
		ActorID:       middleware.ActorFrom(c).ID,
		Status:        req.Status,
		Notes:         req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "Appointment status updated successfully", gin.H{
		"appointment": ap,
	})
}

// Cancel accepts an empty body.
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	var req CancelRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.Respond(c, httperr.BindError(err))
			return
		}
	}

	ap, err := h.cancel.Execute(
		c.Request.Context(),
		c.Param("id"),
		middleware.ActorFrom(c).ID,
		req.Reason,
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "Appointment cancelled successfully", gin.H{
		"appointment": ap,
	})
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	ap, err := h.get.Execute(c.Request.Context(), c.Param("id"), middleware.ActorFrom(c).ID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "", gin.H{"appointment": ap})
}

// ======================================================
// AVAILABLE SLOTS (public)
// ======================================================

func (h *AppointmentHandler) AvailableSlots(c *gin.Context) {
	out, err := h.slots.Execute(c.Request.Context(), c.Param("salonId"), c.Query("date"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if !out.Schedule.IsOpen {
		httpresp.OK(c, closedMessage(out.Schedule.Reason), gin.H{
			"availableSlots": out.Slots,
			"reason":         out.Schedule.Reason,
		})
		return
	}

	httpresp.OK(c, "", gin.H{
		"availableSlots": out.Slots,
		"workingHours": gin.H{
			"open":  out.Schedule.Open,
			"close": out.Schedule.Close,
		},
	})
}

func closedMessage(reason string) string {
	switch reason {
	case domain.ReasonHoliday:
		return "Salon is closed on this date (holiday)"
	case domain.ReasonManuallyUnavailable:
		return "Salon is currently not accepting appointments"
	default:
		return "Salon is closed on this date"
	}
}

// queryInt reads a positive integer query parameter. Anything else is 0 and
// the use case applies its default.
func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
