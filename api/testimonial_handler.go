package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type testimonialHandler struct {
	responder       Responder
	logger          zerolog.Logger
	testimonialRepo *database.TestimonialRepo
}

func newTestimonialHandler(testimonialRepo *database.TestimonialRepo) testimonialHandler {
	logger := log.With().Str("handlerName", "testimonialHandler").Logger()

	return testimonialHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		testimonialRepo: testimonialRepo,
	}
}

// getAllTestimonials lists every testimonial
// @Summary Get all testimonials
// @Tags Testimonials
// @Produce json
// @Success 200 {array} models.Testimonial "List of testimonials"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching testimonials"
// @Router /api/testimonials [get]
func (h testimonialHandler) getAllTestimonials() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		testimonials, err := h.testimonialRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, r, wrapDatabaseError("find", "testimonials", err).WithMessage("Error fetching testimonials"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, testimonials)
	}
}
