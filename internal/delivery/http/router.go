package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"sdlccalendar/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	eventController *controllers.EventController,
	activityController *controllers.ActivityController,
	notificationController *controllers.NotificationController,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Events (calendar-rendering fetch keeps color)
	mux.HandleFunc("GET /events", eventController.ListEvents)
	mux.HandleFunc("POST /events", eventController.CreateEvent)
	mux.HandleFunc("GET /events/{eventID}", eventController.GetEventByID)
	mux.HandleFunc("PUT /events/{eventID}", eventController.UpdateEvent)
	mux.HandleFunc("DELETE /events/{eventID}", eventController.DeleteEvent)

	// Time-window activity listing (color stripped)
	mux.HandleFunc("GET /activities", activityController.ListActivities)

	// Stakeholder email notifications
	mux.HandleFunc("POST /notifications", notificationController.SendNotification)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
