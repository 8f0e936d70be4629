package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/mwalsh-dev/statduel/internal/services"
	"github.com/mwalsh-dev/statduel/pkg/utils"
)

type AdminHandler struct {
	scheduler *services.Scheduler
}

func NewAdminHandler(scheduler *services.Scheduler) *AdminHandler {
	return &AdminHandler{
		scheduler: scheduler,
	}
}

// TriggerScrape kicks off an ingestion run in the background.
// POST /api/v1/admin/scrape
func (h *AdminHandler) TriggerScrape(c *gin.Context) {
	h.scheduler.TriggerScrape()
	utils.SendSuccess(c, gin.H{"status": "ingestion started"})
}
