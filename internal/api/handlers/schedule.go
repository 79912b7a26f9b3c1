package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/radichu/radichu-serve/internal/api/responses"
	"github.com/radichu/radichu-serve/internal/apperrors"
	"github.com/radichu/radichu-serve/pkg/logger"
)

// scheduleErrorBody is the fixed client-facing message for any upstream
// schedule failure. Detail stays in the server logs.
const scheduleErrorBody = "Error while fetching data from Radiko."

// Schedule returns the schedule proxy handler. When allowOverrides is true
// the caller may select a date and channel via query parameters; the legacy
// route disables overrides and always serves today's schedule for the
// default channel.
func (h *Handlers) Schedule(allowOverrides bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		explicit := ""
		channel := h.cfg.Schedule.DefaultChannel
		if allowOverrides {
			explicit = c.Query("date")
			if ch := c.Query("channel"); ch != "" {
				channel = ch
			}
		}

		date, err := h.resolver.Resolve(explicit, time.Now())
		if err != nil {
			responses.Error(c, err)
			return
		}

		body, err := h.schedule.Fetch(c.Request.Context(), date, channel)
		if err != nil {
			logger.Error("[%s] schedule proxy failed: %s", requestID(c), apperrors.Detail(err))
			logger.Info("[%s] proxying to URL: %s", requestID(c), h.schedule.URL(date, channel))
			responses.Text(c, http.StatusInternalServerError, scheduleErrorBody)
			return
		}

		responses.JSON(c, body)
	}
}
