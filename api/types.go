package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler     projectHandler
	testimonialHandler testimonialHandler
	contactHandler     contactHandler
	healthHandler      healthHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error string `json:"error" example:"All fields are required"`
}

// MessageResponse is returned by endpoints that only confirm an action
type MessageResponse struct {
	Message string `json:"message" example:"Message sent successfully"`
}

// HealthResponse reports liveness of the process and the store
type HealthResponse struct {
	Status        string `json:"status" example:"ok"`
	UptimeSeconds int64  `json:"uptimeSeconds"`
}
