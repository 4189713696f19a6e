package models

// Testimonial is a quote from a client or colleague.
type Testimonial struct {
	ID        int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string  `json:"name" gorm:"type:text;not null"`
	Role      string  `json:"role" gorm:"type:text;not null"`
	Content   string  `json:"content" gorm:"type:text;not null"`
	AvatarURL *string `json:"avatar_url" gorm:"column:avatar_url;type:text"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}
