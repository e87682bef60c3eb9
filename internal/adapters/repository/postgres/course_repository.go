package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/courseboard/api/internal/core/domain"
	"github.com/courseboard/api/internal/core/ports"
	"github.com/google/uuid"
)

type courseRepository struct {
	db *sql.DB
}

func NewCourseRepository(db *sql.DB) ports.CourseRepository {
	return &courseRepository{
		db: db,
	}
}

func (r *courseRepository) Create(ctx context.Context, course *domain.Course) error {
	modules, err := json.Marshal(course.Modules)
	if err != nil {
		return fmt.Errorf("failed to marshal modules: %w", err)
	}

	query := `
		INSERT INTO courses (id, title, category, price, description, modules, instructor_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`
	err = r.db.QueryRowContext(ctx, query,
		course.ID, course.Title, course.Category, course.Price,
		course.Description, modules, course.InstructorID,
	).Scan(&course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert course: %w", err)
	}
	return nil
}

func (r *courseRepository) GetAll(ctx context.Context) ([]*domain.Course, error) {
	query := `
		SELECT c.id, c.title, c.category, c.price, c.description, c.modules,
		       c.instructor_id, c.created_at, c.updated_at,
		       u.name, u.email
		FROM courses c
		LEFT JOIN users u ON c.instructor_id = u.id
		ORDER BY c.created_at
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all courses: %w", err)
	}
	defer rows.Close()

	var courses []*domain.Course
	for rows.Next() {
		var course domain.Course
		var modules []byte
		var instructorName, instructorEmail sql.NullString

		if err := rows.Scan(
			&course.ID, &course.Title, &course.Category, &course.Price,
			&course.Description, &modules,
			&course.InstructorID, &course.CreatedAt, &course.UpdatedAt,
			&instructorName, &instructorEmail,
		); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}

		if err := unmarshalModules(modules, &course); err != nil {
			return nil, err
		}

		if instructorName.Valid {
			course.Instructor = &domain.Instructor{
				Name:  instructorName.String,
				Email: instructorEmail.String,
			}
		}

		courses = append(courses, &course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating courses: %w", err)
	}
	return courses, nil
}

func (r *courseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	query := `
		SELECT id, title, category, price, description, modules, instructor_id, created_at, updated_at
		FROM courses
		WHERE id = $1
	`
	var course domain.Course
	var modules []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&course.ID, &course.Title, &course.Category, &course.Price,
		&course.Description, &modules,
		&course.InstructorID, &course.CreatedAt, &course.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	if err := unmarshalModules(modules, &course); err != nil {
		return nil, err
	}

	return &course, nil
}

func (r *courseRepository) Update(ctx context.Context, course *domain.Course) error {
	modules, err := json.Marshal(course.Modules)
	if err != nil {
		return fmt.Errorf("failed to marshal modules: %w", err)
	}

	query := `
		UPDATE courses
		SET title = $2, description = $3, modules = $4, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`
	err = r.db.QueryRowContext(ctx, query, course.ID, course.Title, course.Description, modules).
		Scan(&course.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrCourseNotFound
		}
		return fmt.Errorf("failed to update course: %w", err)
	}
	return nil
}

func (r *courseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

func unmarshalModules(raw []byte, course *domain.Course) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, &course.Modules); err != nil {
		return fmt.Errorf("failed to unmarshal modules: %w", err)
	}
	return nil
}
