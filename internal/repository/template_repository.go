package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/model"
)

// TemplateRepositoryInterface defines methods used by services.
type TemplateRepositoryInterface interface {
	GetByServiceType(ctx context.Context, serviceType model.ServiceType) (*model.MessageTemplate, error)
	List(ctx context.Context) ([]model.MessageTemplate, error)
	Upsert(ctx context.Context, serviceType model.ServiceType, text string) (*model.MessageTemplate, error)
}

// TemplateRepository is the Postgres implementation.
type TemplateRepository struct {
	DB *sql.DB
}

// GetByServiceType fetches the template for one service type, nil when absent.
func (r *TemplateRepository) GetByServiceType(ctx context.Context, serviceType model.ServiceType) (*model.MessageTemplate, error) {
	query := `
        SELECT id, service_type, text, created_at, updated_at
        FROM message_templates
        WHERE service_type = $1
    `
	var t model.MessageTemplate
	err := r.DB.QueryRowContext(ctx, query, string(serviceType)).
		Scan(&t.ID, &t.ServiceType, &t.Text, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // not found
		}
		return nil, err
	}
	return &t, nil
}

// List fetches all templates ordered by service type.
func (r *TemplateRepository) List(ctx context.Context) ([]model.MessageTemplate, error) {
	query := `
        SELECT id, service_type, text, created_at, updated_at
        FROM message_templates
        ORDER BY service_type
    `
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := []model.MessageTemplate{}
	for rows.Next() {
		var t model.MessageTemplate
		if err := rows.Scan(&t.ID, &t.ServiceType, &t.Text, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

// Upsert inserts or replaces the template text for a service type.
func (r *TemplateRepository) Upsert(ctx context.Context, serviceType model.ServiceType, text string) (*model.MessageTemplate, error) {
	now := time.Now()
	query := `
        INSERT INTO message_templates (service_type, text, created_at, updated_at)
        VALUES ($1, $2, $3, $3)
        ON CONFLICT (service_type)
        DO UPDATE SET text = EXCLUDED.text, updated_at = EXCLUDED.updated_at
        RETURNING id, service_type, text, created_at, updated_at
    `
	var t model.MessageTemplate
	err := r.DB.QueryRowContext(ctx, query, string(serviceType), text, now).
		Scan(&t.ID, &t.ServiceType, &t.Text, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
