package newsletter

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zfatbt/tenufa/internal/platform/apperr"
	"github.com/zfatbt/tenufa/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(context context.Context) ([]Subscriber, error) {
	const query = `
		SELECT id, email, createdat
		FROM news.subscriber
		ORDER BY createdat DESC`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_subscribers")
	}
	defer rows.Close()

	subscribers := []Subscriber{}
	for rows.Next() {
		var subscriber Subscriber
		if err := rows.Scan(&subscriber.ID, &subscriber.Email, &subscriber.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_subscriber")
		}
		subscribers = append(subscribers, subscriber)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_subscribers_rows")
	}

	return subscribers, nil
}

func (repository *PostgresRepository) Create(context context.Context, subscriber *Subscriber) error {
	const query = `
		INSERT INTO news.subscriber (id, email, createdat)
		VALUES ($1, $2, $3)`

	subscriber.CreatedAt = time.Now()

	if _, err := repository.db.Exec(context, query,
		subscriber.ID, subscriber.Email, subscriber.CreatedAt); err != nil {
		// Unique email constraint → Conflict
		return dberr.Wrap(err, "create_subscriber")
	}

	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	tag, err := repository.db.Exec(context, "DELETE FROM news.subscriber WHERE id = $1", id)
	if err != nil {
		return dberr.Wrap(err, "delete_subscriber")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Subscriber")
	}
	return nil
}
