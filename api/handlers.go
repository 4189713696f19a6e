package api

import (
	"sync"
	"time"

	"github.com/rpupo63/portfolio-site-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, notifier ContactNotifier, notifications *sync.WaitGroup, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		projectHandler:     newProjectHandler(database.ProjectRepo()),
		testimonialHandler: newTestimonialHandler(database.TestimonialRepo()),
		contactHandler:     newContactHandler(database.ContactMessageRepo(), notifier, notifications),
		healthHandler:      newHealthHandler(database, startupTime),
	}
}
