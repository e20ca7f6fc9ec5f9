package ad

import (
	"context"
	"encoding/json"
	"fmt"
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

const adColumns = "id, area, title, isactive, slides, createdat, updatedat"

func (repository *PostgresRepository) ListActive(context context.Context, area string) ([]Ad, error) {
	query := fmt.Sprintf("SELECT %s FROM news.ad WHERE isactive = TRUE", adColumns)
	args := []any{}
	if area != "" {
		query += " AND area = $1"
		args = append(args, area)
	}
	query += " ORDER BY createdat DESC"

	return repository.list(context, query, args...)
}

func (repository *PostgresRepository) ListAll(context context.Context) ([]Ad, error) {
	query := fmt.Sprintf("SELECT %s FROM news.ad ORDER BY createdat DESC", adColumns)
	return repository.list(context, query)
}

func (repository *PostgresRepository) list(context context.Context, query string, args ...any) ([]Ad, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_ads")
	}
	defer rows.Close()

	ads := []Ad{}
	for rows.Next() {
		var placement Ad
		var slides []byte
		if err := rows.Scan(&placement.ID, &placement.Area, &placement.Title,
			&placement.IsActive, &slides, &placement.CreatedAt, &placement.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_ad")
		}
		if err := json.Unmarshal(slides, &placement.Slides); err != nil {
			return nil, dberr.Wrap(err, "decode_ad_slides")
		}
		ads = append(ads, placement)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_ads_rows")
	}

	return ads, nil
}

func (repository *PostgresRepository) GetByID(context context.Context, id string) (*Ad, error) {
	query := fmt.Sprintf("SELECT %s FROM news.ad WHERE id = $1", adColumns)

	placement := &Ad{}
	var slides []byte
	err := repository.db.QueryRow(context, query, id).Scan(
		&placement.ID, &placement.Area, &placement.Title,
		&placement.IsActive, &slides, &placement.CreatedAt, &placement.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_ad_by_id")
	}
	if err := json.Unmarshal(slides, &placement.Slides); err != nil {
		return nil, dberr.Wrap(err, "decode_ad_slides")
	}

	return placement, nil
}

func (repository *PostgresRepository) Create(context context.Context, ad *Ad) error {
	const query = `
		INSERT INTO news.ad (id, area, title, isactive, slides, createdat, updatedat)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	slides, err := json.Marshal(ad.Slides)
	if err != nil {
		return fmt.Errorf("encode_ad_slides: %w", err)
	}

	now := time.Now()
	ad.CreatedAt = now
	ad.UpdatedAt = now

	if _, err := repository.db.Exec(context, query,
		ad.ID, ad.Area, ad.Title, ad.IsActive, slides, ad.CreatedAt, ad.UpdatedAt); err != nil {
		return dberr.Wrap(err, "create_ad")
	}

	return nil
}

func (repository *PostgresRepository) Update(context context.Context, ad *Ad) error {
	const query = `
		UPDATE news.ad
		SET area = $2, title = $3, isactive = $4, slides = $5, updatedat = $6
		WHERE id = $1`

	slides, err := json.Marshal(ad.Slides)
	if err != nil {
		return fmt.Errorf("encode_ad_slides: %w", err)
	}

	ad.UpdatedAt = time.Now()
	tag, err := repository.db.Exec(context, query,
		ad.ID, ad.Area, ad.Title, ad.IsActive, slides, ad.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "update_ad")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Ad")
	}

	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	tag, err := repository.db.Exec(context, "DELETE FROM news.ad WHERE id = $1", id)
	if err != nil {
		return dberr.Wrap(err, "delete_ad")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Ad")
	}
	return nil
}
