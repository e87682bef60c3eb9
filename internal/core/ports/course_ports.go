package ports

import (
	"context"

	"github.com/courseboard/api/internal/core/domain"
	"github.com/google/uuid"
)

type CourseRepository interface {
	Create(ctx context.Context, course *domain.Course) error
	GetAll(ctx context.Context) ([]*domain.Course, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error)
	Update(ctx context.Context, course *domain.Course) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateCourseInput struct {
	Title       string
	Category    string
	Price       float64
	Description string
	Modules     []string
}

// UpdateCourseInput carries the replaceable fields of a course. Category
// and price are intentionally not updatable through this path.
type UpdateCourseInput struct {
	Title       string
	Description string
	Modules     []string
}

type CourseService interface {
	Create(ctx context.Context, instructorID uuid.UUID, input CreateCourseInput) (*domain.Course, error)
	List(ctx context.Context) ([]*domain.Course, error)
	Update(ctx context.Context, id string, input UpdateCourseInput) (*domain.Course, error)
	Delete(ctx context.Context, id string) error
}
