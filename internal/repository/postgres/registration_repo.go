package postgres

import (
	"context"
	"database/sql"

	"communityregistration/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{DB: db}
}

func (r *registrationRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Registrant, error) {
	query := `
		SELECT r.id, r.status, r.registered_at, u.first_name, u.last_name, u.email
		FROM registrations r
		JOIN users u ON u.id = r.user_id
		WHERE r.event_id = $1
		ORDER BY r.registered_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regs := make([]*domain.Registrant, 0)
	for rows.Next() {
		reg := &domain.Registrant{}
		if err := rows.Scan(
			&reg.RegistrationID, &reg.Status, &reg.RegisteredAt,
			&reg.FirstName, &reg.LastName, &reg.Email,
		); err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}
