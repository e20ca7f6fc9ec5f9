package newspaper

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

func (repository *PostgresRepository) List(context context.Context) ([]Issue, error) {
	const query = `
		SELECT id, title, slug, pdfurl, publishedat, createdat
		FROM news.newspaper
		ORDER BY publishedat DESC`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_newspapers")
	}
	defer rows.Close()

	issues := []Issue{}
	for rows.Next() {
		var issue Issue
		if err := rows.Scan(&issue.ID, &issue.Title, &issue.Slug,
			&issue.PDFURL, &issue.PublishedAt, &issue.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_newspaper")
		}
		issues = append(issues, issue)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_newspapers_rows")
	}

	return issues, nil
}

func (repository *PostgresRepository) GetBySlug(context context.Context, slug string) (*Issue, error) {
	const query = `
		SELECT id, title, slug, pdfurl, publishedat, createdat
		FROM news.newspaper
		WHERE slug = $1`

	issue := &Issue{}
	err := repository.db.QueryRow(context, query, slug).Scan(
		&issue.ID, &issue.Title, &issue.Slug,
		&issue.PDFURL, &issue.PublishedAt, &issue.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_newspaper_by_slug")
	}

	return issue, nil
}

func (repository *PostgresRepository) Create(context context.Context, issue *Issue) error {
	const query = `
		INSERT INTO news.newspaper (id, title, slug, pdfurl, publishedat, createdat)
		VALUES ($1, $2, $3, $4, $5, $6)`

	issue.CreatedAt = time.Now()

	if _, err := repository.db.Exec(context, query,
		issue.ID, issue.Title, issue.Slug, issue.PDFURL,
		issue.PublishedAt, issue.CreatedAt); err != nil {
		return dberr.Wrap(err, "create_newspaper")
	}

	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	tag, err := repository.db.Exec(context, "DELETE FROM news.newspaper WHERE id = $1", id)
	if err != nil {
		return dberr.Wrap(err, "delete_newspaper")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Newspaper")
	}
	return nil
}
