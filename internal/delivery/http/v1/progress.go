package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *handlerImpl) HandleGetProgress(c *gin.Context) {
	subjectID := c.Param("subject_id")

	summary, err := h.progress.GetProgress(c, subjectID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to get progress")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, summary)
}
