package services

import (
	"context"
	"fmt"

	"github.com/courseboard/api/internal/core/domain"
	"github.com/courseboard/api/internal/core/ports"
	"github.com/google/uuid"
)

type courseService struct {
	repo ports.CourseRepository
}

func NewCourseService(repo ports.CourseRepository) ports.CourseService {
	return &courseService{
		repo: repo,
	}
}

// Create persists a new course. The instructor reference always comes
// from the authenticated caller, never from the request payload.
func (s *courseService) Create(ctx context.Context, instructorID uuid.UUID, input ports.CreateCourseInput) (*domain.Course, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrCourseValidation)
	}
	if input.Category == "" {
		return nil, fmt.Errorf("%w: category is required", domain.ErrCourseValidation)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrCourseValidation)
	}

	course := &domain.Course{
		ID:           uuid.New(),
		Title:        input.Title,
		Category:     input.Category,
		Price:        input.Price,
		Description:  input.Description,
		Modules:      input.Modules,
		InstructorID: &instructorID,
	}

	if err := s.repo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	return course, nil
}

func (s *courseService) List(ctx context.Context) ([]*domain.Course, error) {
	courses, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

// Update replaces title, description and modules of an existing course.
// Category and price are not part of the update payload.
func (s *courseService) Update(ctx context.Context, id string, input ports.UpdateCourseInput) (*domain.Course, error) {
	courseID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidCourseID
	}

	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrCourseValidation)
	}

	course, err := s.repo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	course.Title = input.Title
	course.Description = input.Description
	course.Modules = input.Modules

	if err := s.repo.Update(ctx, course); err != nil {
		return nil, fmt.Errorf("failed to update course: %w", err)
	}

	return course, nil
}

func (s *courseService) Delete(ctx context.Context, id string) error {
	courseID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrInvalidCourseID
	}

	return s.repo.Delete(ctx, courseID)
}
