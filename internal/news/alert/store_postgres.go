package alert

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zfatbt/tenufa/internal/platform/apperr"
	"github.com/zfatbt/tenufa/internal/platform/dberr"
)

const alertColumns = "id, text, link, isactive, createdat, updatedat"

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListActive(context context.Context) ([]Alert, error) {
	query := fmt.Sprintf("SELECT %s FROM news.alert WHERE isactive = TRUE ORDER BY createdat DESC", alertColumns)
	return repository.list(context, query)
}

func (repository *PostgresRepository) ListAll(context context.Context) ([]Alert, error) {
	query := fmt.Sprintf("SELECT %s FROM news.alert ORDER BY createdat DESC", alertColumns)
	return repository.list(context, query)
}

func (repository *PostgresRepository) list(context context.Context, query string) ([]Alert, error) {
	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_alerts")
	}
	defer rows.Close()

	alerts := []Alert{}
	for rows.Next() {
		var ticker Alert
		if err := rows.Scan(&ticker.ID, &ticker.Text, &ticker.Link,
			&ticker.IsActive, &ticker.CreatedAt, &ticker.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_alert")
		}
		alerts = append(alerts, ticker)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_alerts_rows")
	}

	return alerts, nil
}

func (repository *PostgresRepository) GetByID(context context.Context, id string) (*Alert, error) {
	query := fmt.Sprintf("SELECT %s FROM news.alert WHERE id = $1", alertColumns)

	ticker := &Alert{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&ticker.ID, &ticker.Text, &ticker.Link,
		&ticker.IsActive, &ticker.CreatedAt, &ticker.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_alert_by_id")
	}

	return ticker, nil
}

func (repository *PostgresRepository) Create(context context.Context, alert *Alert) error {
	const query = `
		INSERT INTO news.alert (id, text, link, isactive, createdat, updatedat)
		VALUES ($1, $2, $3, $4, $5, $6)`

	now := time.Now()
	alert.CreatedAt = now
	alert.UpdatedAt = now

	if _, err := repository.db.Exec(context, query,
		alert.ID, alert.Text, alert.Link, alert.IsActive, alert.CreatedAt, alert.UpdatedAt); err != nil {
		return dberr.Wrap(err, "create_alert")
	}

	return nil
}

func (repository *PostgresRepository) Update(context context.Context, alert *Alert) error {
	const query = `
		UPDATE news.alert
		SET text = $2, link = $3, isactive = $4, updatedat = $5
		WHERE id = $1`

	alert.UpdatedAt = time.Now()
	tag, err := repository.db.Exec(context, query,
		alert.ID, alert.Text, alert.Link, alert.IsActive, alert.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "update_alert")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Alert")
	}

	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	tag, err := repository.db.Exec(context, "DELETE FROM news.alert WHERE id = $1", id)
	if err != nil {
		return dberr.Wrap(err, "delete_alert")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Alert")
	}
	return nil
}
