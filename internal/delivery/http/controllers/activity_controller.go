package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"sdlccalendar/internal/delivery/http/helpers"
	"sdlccalendar/internal/domain"
)

// ActivityController exposes the time-window query boundary. Results are
// color-stripped activity listings, not calendar-rendering payloads.
type ActivityController struct {
	Logger  *slog.Logger
	Service domain.ActivityService
}

func NewActivityController(logger *slog.Logger, svc domain.ActivityService) *ActivityController {
	return &ActivityController{
		Logger:  logger,
		Service: svc,
	}
}

// ActivityListSuccessResponse is the success envelope for GET /activities (200).
type ActivityListSuccessResponse struct {
	Data  []*domain.Activity `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// ListActivities godoc
// @Summary List activities in a time window
// @Description Returns events overlapping the given day, or the given one-hour slot when hour is set. Results omit the display color. date is required; its absence is rejected before the store is consulted.
// @Tags activities
// @Produce json
// @Param date query string true "Calendar date (YYYY-MM-DD)"
// @Param hour query int false "Hour of day (0-23); selects the [hour:00, hour+1:00) slot"
// @Success 200 {object} controllers.ActivityListSuccessResponse "data contains the matching activities, possibly empty"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or validation_error"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /activities [get]
func (c *ActivityController) ListActivities(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "Date parameter is required")
		return
	}
	var hour *int
	if s := r.URL.Query().Get("hour"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "hour must be an integer")
			return
		}
		hour = &v
	}

	activities, err := c.Service.ListActivities(r.Context(), date, hour)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeValidation, ve.Message)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, activities)
}
