package models

import "time"

// ContactMessage is a visitor inquiry submitted through the contact form.
type ContactMessage struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" gorm:"type:text;not null"`
	Subject   string    `json:"subject" gorm:"type:text;not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"type:datetime;not null;autoCreateTime"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
