package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"regexp"

	"sdlccalendar/internal/delivery/http/helpers"
	"sdlccalendar/internal/domain"
)

// emailRegex matches a simple email format (local@domain with at least one dot in domain).
var emailRegex = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// NotificationController dispatches event notification emails to stakeholders.
type NotificationController struct {
	Logger  *slog.Logger
	Service domain.EmailService
}

func NewNotificationController(logger *slog.Logger, svc domain.EmailService) *NotificationController {
	return &NotificationController{
		Logger:  logger,
		Service: svc,
	}
}

// SendNotificationRequest is the request body for POST /notifications.
type SendNotificationRequest struct {
	Recipients       []string `json:"recipients"`
	EventTitle       string   `json:"eventTitle"`
	EventDescription string   `json:"eventDescription"`
	EventDate        string   `json:"eventDate"`
}

// Validate implements Validator. Recipients must be present and well-formed;
// the event title is required.
func (s SendNotificationRequest) Validate() []string {
	var errs []string
	if len(s.Recipients) == 0 {
		errs = append(errs, "no recipients specified")
	}
	for _, r := range s.Recipients {
		if !emailRegex.MatchString(r) {
			errs = append(errs, fmt.Sprintf("invalid recipient address: %s", r))
		}
	}
	if s.EventTitle == "" {
		errs = append(errs, "event title is required")
	}
	return errs
}

// SendNotificationResponse is the data payload for POST /notifications (200).
type SendNotificationResponse struct {
	Message string `json:"message"`
}

// SendNotification godoc
// @Summary Send event notification emails
// @Description Sends the event notification email to every recipient. The plain-text body has rich-text markup stripped from the description.
// @Tags notifications
// @Accept json
// @Produce json
// @Param notification body SendNotificationRequest true "Recipients and event details"
// @Success 200 {object} helpers.APIResponse "data contains a confirmation message"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /notifications [post]
func (c *NotificationController) SendNotification(w http.ResponseWriter, r *http.Request) {
	var req SendNotificationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	data := &domain.EventNotificationEmailData{
		Recipients:       req.Recipients,
		EventTitle:       req.EventTitle,
		EventDescription: req.EventDescription,
		EventDate:        req.EventDate,
	}
	if err := c.Service.SendEventNotification(r.Context(), data); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, SendNotificationResponse{
		Message: fmt.Sprintf("Successfully sent notifications to %d recipients", len(req.Recipients)),
	})
}
