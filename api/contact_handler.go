package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"sync"
	"time"

	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// maxContactBodyBytes matches the 100kb default of common JSON body parsers.
	maxContactBodyBytes = 100 << 10
	notifyTimeout       = 10 * time.Second

	jsonContentType = "application/json"

	msgAllFieldsRequired = "All fields are required"
	msgInvalidJSON       = "Invalid JSON payload"
	msgSaveFailed        = "Failed to save message"
	msgSent              = "Message sent successfully"
)

// ContactNotifier is told about each persisted contact message
type ContactNotifier interface {
	NotifyContact(ctx context.Context, message models.ContactMessage) error
}

type contactHandler struct {
	responder          Responder
	logger             zerolog.Logger
	contactMessageRepo *database.ContactMessageRepo
	notifier           ContactNotifier
	notifications      *sync.WaitGroup
}

func newContactHandler(contactMessageRepo *database.ContactMessageRepo, notifier ContactNotifier, notifications *sync.WaitGroup) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:          NewResponder(logger),
		logger:             logger,
		contactMessageRepo: contactMessageRepo,
		notifier:           notifier,
		notifications:      notifications,
	}
}

// ContactRequest is the body of a contact form submission
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// missingField returns the first required field that is empty, or "" if none is.
// Values are checked as sent; whitespace counts as content.
func (c ContactRequest) missingField() string {
	switch {
	case c.Name == "":
		return "name"
	case c.Email == "":
		return "email"
	case c.Subject == "":
		return "subject"
	case c.Message == "":
		return "message"
	}
	return ""
}

// submitContact stores a visitor's message
// @Summary Submit contact message
// @Tags Contact
// @Accept json
// @Produce json
// @Param message body ContactRequest true "Contact form fields"
// @Success 201 {object} MessageResponse "Message stored"
// @Failure 400 {object} ErrorResponse "Bad Request - All fields are required"
// @Failure 413 {object} ErrorResponse "Request body too large"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Failed to save message"
// @Router /api/contact [post]
func (h contactHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeContactRequest(w, r)
		switch {
		case errs.IsUnsupportedMediaTypeError(err):
			// non-JSON bodies are not parsed, so they arrive as an empty form
			logger := requestLogger(h.logger, r)
			logger.Debug().Err(err).Msg("Contact body ignored")
		case err != nil:
			h.responder.WriteError(w, r, err)
			return
		}

		if field := req.missingField(); field != "" {
			h.responder.WriteError(w, r, errs.NewMissingRequiredFieldError(field).WithMessage(msgAllFieldsRequired))
			return
		}

		message := models.ContactMessage{
			Name:    req.Name,
			Email:   req.Email,
			Subject: req.Subject,
			Message: req.Message,
		}
		if err := h.contactMessageRepo.Add(r.Context(), &message); err != nil {
			h.responder.WriteError(w, r, wrapDatabaseError("save", "contact message", err).WithMessage(msgSaveFailed))
			return
		}

		logger := requestLogger(h.logger, r)
		logger.Info().Int64("contactMessageId", message.ID).Msg("Contact message saved")

		h.responder.WriteJSON(w, http.StatusCreated, MessageResponse{Message: msgSent})

		h.notify(r, message)
	}
}

// notify delivers in the background once the response is written. Its
// outcome never changes the response; notifications tracks the sends still running.
func (h contactHandler) notify(r *http.Request, message models.ContactMessage) {
	if h.notifier == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), notifyTimeout)
	logger := requestLogger(h.logger, r)

	h.notifications.Add(1)
	go func() {
		defer h.notifications.Done()
		defer cancel()

		if err := h.notifier.NotifyContact(ctx, message); err != nil {
			logger.Warn().Err(err).Int64("contactMessageId", message.ID).Msg("Contact notification failed")
		}
	}()
}

// decodeContactRequest reads a JSON contact form. A body sent with any other
// content type is reported as unsupported and carries no fields.
func decodeContactRequest(w http.ResponseWriter, r *http.Request) (ContactRequest, error) {
	var req ContactRequest

	if contentType := r.Header.Get("Content-Type"); !isJSONContentType(contentType) {
		return req, errs.NewUnsupportedMediaTypeError(contentType, []string{jsonContentType})
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxContactBodyBytes)
	err := json.NewDecoder(r.Body).Decode(&req)

	var maxBytesErr *http.MaxBytesError
	var typeErr *json.UnmarshalTypeError
	switch {
	case err == nil, errors.Is(err, io.EOF):
		// an empty body is an empty form
		return req, nil
	case errors.As(err, &maxBytesErr):
		return req, errs.NewMaxBodySizeExceededError(maxBytesErr.Limit)
	case errors.As(err, &typeErr):
		malformed := errs.Malformed("contact request").WithMessage(msgInvalidJSON)
		malformed.Field = typeErr.Field
		malformed.Cause = err
		return req, malformed
	default:
		return req, errs.NewInvalidJSONError(err)
	}
}

func isJSONContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == jsonContentType
}
