package domain

import "time"

// ContactMessage is a message submitted through the contact form.
type ContactMessage struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject"`
	MessageBody string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}
