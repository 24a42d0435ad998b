package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucSalon "github.com/BruksfildServices01/salon-scheduler/internal/usecase/salon"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	list *ucSalon.ListAuditLogs
}

func NewAuditLogsHandler(list *ucSalon.ListAuditLogs) *AuditLogsHandler {
	return &AuditLogsHandler{list: list}
}

// List is owner only. Unparsable from/to are ignored.
func (h *AuditLogsHandler) List(c *gin.Context) {
	q := audit.Query{
		SalonID: c.Param("salonId"),
		Action:  c.Query("action"),
		Entity:  c.Query("entity"),
		From:    queryDate(c, "from"),
		To:      queryDate(c, "to"),
		Page:    queryInt(c, "page"),
		Limit:   queryInt(c, "limit"),
	}

	page, err := h.list.Execute(c.Request.Context(), middleware.ActorFrom(c).ID, q)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func queryDate(c *gin.Context, key string) time.Time {
	v := c.Query(key)
	if v == "" {
		return time.Time{}
	}
	t, err := time.Parse(domain.DateLayout, v)
	if err != nil {
		return time.Time{}
	}
	return t
}
