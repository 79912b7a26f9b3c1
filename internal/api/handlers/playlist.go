package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/radichu/radichu-serve/internal/api/responses"
	"github.com/radichu/radichu-serve/pkg/logger"
)

// Playlist serves playlist manifests for both the timefree and live routes.
// Path parameters pass to the collaborator verbatim; the live route carries
// no ft/to parameters, so both resolve to empty strings there.
//
// Collaborator failures become a 400 whose body is the error's message
// text, so the Fetcher contract requires client-safe messages.
func (h *Handlers) Playlist(c *gin.Context) {
	stationID := c.Param("stationId")
	ft := c.Param("ft")
	to := c.Param("to")

	manifest, err := h.playlist.FetchPlaylist(c.Request.Context(), stationID, ft, to)
	if err != nil {
		logger.Error("[%s] playlist fetch failed for station %s: %v", requestID(c), stationID, err)
		responses.Text(c, http.StatusBadRequest, err.Error())
		return
	}

	responses.Manifest(c, manifest)
}
