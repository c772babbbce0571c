package api

import (
	"net/http"

	"rsvp-backend/internal/delivery/http/response"
	"rsvp-backend/internal/domain"
	"rsvp-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const maxRSVPBodyBytes = 1 << 20

type RSVPHandler struct {
	rsvpUC domain.RSVPUsecase
}

// NewRSVPHandler registers the RSVP routes (public, no auth required)
func NewRSVPHandler(public *gin.RouterGroup, rsvpUC domain.RSVPUsecase) {
	handler := &RSVPHandler{
		rsvpUC: rsvpUC,
	}

	public.POST("/rsvp", handler.SubmitRSVP)
}

// SubmitRSVP godoc
// @Summary      Submit RSVP
// @Description  Stores the primary contact and each friend as a row in the Notion guest database.
// @Tags         rsvp
// @Accept       json
// @Produce      json
// @Param        rsvp  body      domain.Submission  true  "RSVP form data"
// @Success      200   {object}  response.Response{data=domain.RSVPResult}
// @Failure      400   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Failure      502   {object}  response.Response
// @Router       /api/rsvp [post]
func (h *RSVPHandler) SubmitRSVP(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRSVPBodyBytes)
	body, err := c.GetRawData()
	if err != nil {
		c.Error(apperror.Validation("No data provided"))
		return
	}

	result, err := h.rsvpUC.Submit(c.Request.Context(), body)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "RSVP submitted successfully", result)
}
