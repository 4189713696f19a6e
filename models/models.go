package models

// All returns every persisted model in schema creation order.
func All() []any {
	return []any{
		&Project{},
		&Testimonial{},
		&ContactMessage{},
	}
}
