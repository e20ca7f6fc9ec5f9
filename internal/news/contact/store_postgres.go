package contact

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

func (repository *PostgresRepository) List(context context.Context) ([]Message, error) {
	const query = `
		SELECT id, name, email, phone, subject, body, isread, createdat
		FROM news.contact_message
		ORDER BY createdat DESC`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_contact_messages")
	}
	defer rows.Close()

	messages := []Message{}
	for rows.Next() {
		var message Message
		if err := rows.Scan(&message.ID, &message.Name, &message.Email, &message.Phone,
			&message.Subject, &message.Body, &message.IsRead, &message.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_contact_message")
		}
		messages = append(messages, message)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_contact_messages_rows")
	}

	return messages, nil
}

func (repository *PostgresRepository) Create(context context.Context, message *Message) error {
	const query = `
		INSERT INTO news.contact_message (id, name, email, phone, subject, body, isread, createdat)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	message.CreatedAt = time.Now()

	if _, err := repository.db.Exec(context, query,
		message.ID, message.Name, message.Email, message.Phone,
		message.Subject, message.Body, message.IsRead, message.CreatedAt); err != nil {
		return dberr.Wrap(err, "create_contact_message")
	}

	return nil
}

func (repository *PostgresRepository) MarkRead(context context.Context, id string) error {
	tag, err := repository.db.Exec(context,
		"UPDATE news.contact_message SET isread = TRUE WHERE id = $1", id)
	if err != nil {
		return dberr.Wrap(err, "mark_contact_message_read")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Message")
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	tag, err := repository.db.Exec(context,
		"DELETE FROM news.contact_message WHERE id = $1", id)
	if err != nil {
		return dberr.Wrap(err, "delete_contact_message")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Message")
	}
	return nil
}
