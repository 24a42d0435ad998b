package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	ucSalon "github.com/BruksfildServices01/salon-scheduler/internal/usecase/salon"
)

// WorkingHoursHandler manages a salon's weekly hours, holidays and the
// manual availability override.
type WorkingHoursHandler struct {
	setHours        *ucSalon.SetWorkingHours
	addHoliday      *ucSalon.AddHoliday
	setAvailability *ucSalon.SetAvailability
	getAvailability *ucSalon.GetAvailability
}

func NewWorkingHoursHandler(
	setHours *ucSalon.SetWorkingHours,
	addHoliday *ucSalon.AddHoliday,
	setAvailability *ucSalon.SetAvailability,
	getAvailability *ucSalon.GetAvailability,
) *WorkingHoursHandler {
	return &WorkingHoursHandler{
		setHours:        setHours,
		addHoliday:      addHoliday,
		setAvailability: setAvailability,
		getAvailability: getAvailability,
	}
}

type WorkingHoursUpdateRequest struct {
	WorkingHours models.WeeklyHours `json:"workingHours" binding:"required,dive,keys,weekday,endkeys"`
}

type HolidayRequest struct {
	Date      string `json:"date" binding:"required,isodate"`
	Reason    string `json:"reason"`
	IsFullDay bool   `json:"isFullDay"`
	StartTime string `json:"startTime" binding:"omitempty,clock"`
	EndTime   string `json:"endTime" binding:"omitempty,clock"`
}

type AvailabilityRequest struct {
	IsAvailable   *bool  `json:"isAvailable" binding:"required"`
	Status        string `json:"status"`
	StatusMessage string `json:"statusMessage"`
}

func (h *WorkingHoursHandler) Update(c *gin.Context) {
	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.BindError(err))
		return
	}

	salon, err := h.setHours.Execute(c.Request.Context(), c.Param("salonId"), middleware.ActorFrom(c).ID, req.WorkingHours)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "Working hours updated successfully", gin.H{
		"workingHours": salon.WorkingHours,
	})
}

func (h *WorkingHoursHandler) AddHoliday(c *gin.Context) {
	var req HolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.BindError(err))
		return
	}

	var in ucSalon.HolidayInput
	if err := copier.Copy(&in, &req); err != nil {
		httperr.Respond(c, httperr.Internal(err, "Failed to read request."))
		return
	}

	holiday, err := h.addHoliday.Execute(c.Request.Context(), c.Param("salonId"), middleware.ActorFrom(c).ID, in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, "Holiday added successfully", gin.H{"holiday": holiday})
}

func (h *WorkingHoursHandler) SetAvailability(c *gin.Context) {
	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.BindError(err))
		return
	}

	salon, err := h.setAvailability.Execute(c.Request.Context(), c.Param("salonId"), middleware.ActorFrom(c).ID, ucSalon.AvailabilityInput{
		IsAvailable:   *req.IsAvailable,
		Status:        req.Status,
		StatusMessage: req.StatusMessage,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "Availability status updated successfully", gin.H{
		"isAvailable":   salon.IsAvailable,
		"status":        salon.Status,
		"statusMessage": salon.StatusMessage,
	})
}

// GetAvailability is public.
func (h *WorkingHoursHandler) GetAvailability(c *gin.Context) {
	out, err := h.getAvailability.Execute(c.Request.Context(), c.Param("salonId"), c.Query("date"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "", gin.H{"availability": out})
}
