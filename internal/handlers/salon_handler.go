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

// ======================================================
// HANDLER
// ======================================================

type SalonHandler struct {
	create        *ucSalon.CreateSalon
	browse        *ucSalon.BrowseSalons
	profile       *ucSalon.GetProfile
	mine          *ucSalon.ListOwnSalons
	deactivate    *ucSalon.DeactivateSalon
	addService    *ucSalon.AddService
	updateService *ucSalon.UpdateService
	removeService *ucSalon.RemoveService
}

func NewSalonHandler(
	create *ucSalon.CreateSalon,
	browse *ucSalon.BrowseSalons,
	profile *ucSalon.GetProfile,
	mine *ucSalon.ListOwnSalons,
	deactivate *ucSalon.DeactivateSalon,
	addService *ucSalon.AddService,
	updateService *ucSalon.UpdateService,
	removeService *ucSalon.RemoveService,
) *SalonHandler {
	return &SalonHandler{
		create:        create,
		browse:        browse,
		profile:       profile,
		mine:          mine,
		deactivate:    deactivate,
		addService:    addService,
		updateService: updateService,
		removeService: removeService,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Duration    int     `json:"duration" binding:"required,min=1"`
	Price       float64 `json:"price" binding:"min=0"`
	Category    string  `json:"category"`
}

type CreateSalonRequest struct {
	Name         string             `json:"name" binding:"required"`
	Description  string             `json:"description"`
	Address      string             `json:"address"`
	Phone        string             `json:"phone"`
	Email        string             `json:"email" binding:"omitempty,email"`
	WorkingHours models.WeeklyHours `json:"workingHours"`
	Services     []ServiceRequest   `json:"services" binding:"dive"`
	City         string             `json:"city"`
	State        string             `json:"state"`
	Pincode      string             `json:"pincode"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1"`
	Description *string  `json:"description"`
	Duration    *int     `json:"duration" binding:"omitempty,min=1"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
	Category    *string  `json:"category"`
	IsActive    *bool    `json:"isActive"`
}

// ======================================================
// SALONS
// ======================================================

func (h *SalonHandler) Create(c *gin.Context) {
	var req CreateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.BindError(err))
		return
	}

	var in ucSalon.CreateSalonInput
	if err := copier.Copy(&in, &req); err != nil {
		httperr.Respond(c, httperr.Internal(err, "Failed to read request."))
		return
	}
	in.OwnerID = middleware.ActorFrom(c).ID

	salon, err := h.create.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, "Salon registered successfully", gin.H{
		"salonId": salon.ID,
		"salon":   salon,
	})
}

// All is the public salon directory.
func (h *SalonHandler) All(c *gin.Context) {
	page, err := h.browse.Execute(c.Request.Context(), ucSalon.BrowseInput{
		City:    c.Query("city"),
		Service: c.Query("service"),
		Page:    queryInt(c, "page"),
		Limit:   queryInt(c, "limit"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "", gin.H{
		"salons":     page.Salons,
		"pagination": page.Pagination,
	})
}

func (h *SalonHandler) Profile(c *gin.Context) {
	salon, err := h.profile.Execute(c.Request.Context(), c.Param("salonId"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "", gin.H{"salon": salon})
}

func (h *SalonHandler) MySalons(c *gin.Context) {
	salons, err := h.mine.Execute(c.Request.Context(), middleware.ActorFrom(c).ID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "", gin.H{"salons": salons})
}

func (h *SalonHandler) Delete(c *gin.Context) {
	if _, err := h.deactivate.Execute(c.Request.Context(), c.Param("salonId"), middleware.ActorFrom(c).ID); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "Salon deleted successfully", nil)
}

// ======================================================
// SERVICES
// ======================================================

func (h *SalonHandler) AddService(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.BindError(err))
		return
	}

	var in ucSalon.ServiceInput
	if err := copier.Copy(&in, &req); err != nil {
		httperr.Respond(c, httperr.Internal(err, "Failed to read request."))
		return
	}

	svc, err := h.addService.Execute(c.Request.Context(), c.Param("salonId"), middleware.ActorFrom(c).ID, in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, "Service added successfully", gin.H{"service": svc})
}

func (h *SalonHandler) UpdateService(c *gin.Context) {
	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.BindError(err))
		return
	}

	var patch ucSalon.ServicePatch
	if err := copier.Copy(&patch, &req); err != nil {
		httperr.Respond(c, httperr.Internal(err, "Failed to read request."))
		return
	}

	svc, err := h.updateService.Execute(
		c.Request.Context(),
		c.Param("salonId"),
		c.Param("serviceId"),
		middleware.ActorFrom(c).ID,
		patch,
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "Service updated successfully", gin.H{"service": svc})
}

func (h *SalonHandler) DeleteService(c *gin.Context) {
	err := h.removeService.Execute(
		c.Request.Context(),
		c.Param("salonId"),
		c.Param("serviceId"),
		middleware.ActorFrom(c).ID,
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "Service deleted successfully", nil)
}
