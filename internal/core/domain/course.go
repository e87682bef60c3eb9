package domain

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	ID           uuid.UUID   `json:"id"`
	Title        string      `json:"title"`
	Category     string      `json:"category"`
	Price        float64     `json:"price"`
	Description  string      `json:"description,omitempty"`
	Modules      []string    `json:"modules,omitempty"`
	InstructorID *uuid.UUID  `json:"instructor,omitempty"`
	Instructor   *Instructor `json:"instructor_info,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// Instructor is the projection of the creating user attached to
// courses on listing.
type Instructor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
