package post

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zfatbt/tenufa/internal/platform/apperr"
	"github.com/zfatbt/tenufa/internal/platform/dberr"
	"github.com/zfatbt/tenufa/pkg/pagination"
)

const postColumns = `id, title, content, category, excerpt, imageurl, imagecredit,
	authorid, authorname, tags, isfeatured, views, likes, shortcode,
	publishedat, createdat, updatedat`

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(context context.Context, filter Filter, page pagination.Params) ([]Post, int, error) {
	where, args := buildFilter(filter)

	countQuery := "SELECT COUNT(*) FROM news.post" + where
	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_posts")
	}

	listQuery := fmt.Sprintf(`SELECT %s FROM news.post%s ORDER BY publishedat DESC LIMIT $%d OFFSET $%d`,
		postColumns, where, len(args)+1, len(args)+2)
	args = append(args, page.Limit, page.Offset())

	rows, err := repository.db.Query(context, listQuery, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_posts")
	}
	defer rows.Close()

	posts := []Post{}
	for rows.Next() {
		var p Post
		if err := scanPost(rows.Scan, &p); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_post")
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_posts_rows")
	}

	return posts, total, nil
}

func (repository *PostgresRepository) GetByID(context context.Context, id string) (*Post, error) {
	query := fmt.Sprintf("SELECT %s FROM news.post WHERE id = $1", postColumns)

	p := &Post{}
	if err := scanPost(repository.db.QueryRow(context, query, id).Scan, p); err != nil {
		return nil, dberr.Wrap(err, "get_post_by_id")
	}

	return p, nil
}

func (repository *PostgresRepository) GetByShortCode(context context.Context, code string) (*Post, error) {
	query := fmt.Sprintf("SELECT %s FROM news.post WHERE shortcode = $1", postColumns)

	p := &Post{}
	if err := scanPost(repository.db.QueryRow(context, query, code).Scan, p); err != nil {
		return nil, dberr.Wrap(err, "get_post_by_shortcode")
	}

	return p, nil
}

func (repository *PostgresRepository) Create(context context.Context, post *Post) error {
	const query = `
		INSERT INTO news.post (
			id, title, content, category, excerpt, imageurl, imagecredit,
			authorid, authorname, tags, isfeatured, views, likes, shortcode,
			publishedat, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	_, err := repository.db.Exec(context, query,
		post.ID, post.Title, post.Content, post.Category, post.Excerpt,
		post.ImageURL, post.ImageCredit, post.AuthorID, post.AuthorName,
		post.Tags, post.IsFeatured, post.Views, post.Likes, post.ShortCode,
		post.PublishedAt, post.CreatedAt, post.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "create_post")
	}

	return nil
}

func (repository *PostgresRepository) Update(context context.Context, post *Post) error {
	const query = `
		UPDATE news.post
		SET title = $2, content = $3, category = $4, excerpt = $5,
		    imageurl = $6, imagecredit = $7, tags = $8, isfeatured = $9,
		    updatedat = $10
		WHERE id = $1`

	post.UpdatedAt = time.Now()
	tag, err := repository.db.Exec(context, query,
		post.ID, post.Title, post.Content, post.Category, post.Excerpt,
		post.ImageURL, post.ImageCredit, post.Tags, post.IsFeatured,
		post.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "update_post")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Post")
	}

	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	tag, err := repository.db.Exec(context, "DELETE FROM news.post WHERE id = $1", id)
	if err != nil {
		return dberr.Wrap(err, "delete_post")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Post")
	}
	return nil
}

func (repository *PostgresRepository) IncrementLikes(context context.Context, id string) (int, error) {
	const query = "UPDATE news.post SET likes = likes + 1 WHERE id = $1 RETURNING likes"

	var likes int
	if err := repository.db.QueryRow(context, query, id).Scan(&likes); err != nil {
		return 0, dberr.Wrap(err, "like_post")
	}

	return likes, nil
}

func (repository *PostgresRepository) AddViews(context context.Context, id string, delta int) error {
	const query = "UPDATE news.post SET views = views + $2 WHERE id = $1"

	tag, err := repository.db.Exec(context, query, id, delta)
	if err != nil {
		return dberr.Wrap(err, "add_post_views")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Post")
	}

	return nil
}

// buildFilter renders the WHERE clause for the list query.
func buildFilter(filter Filter) (string, []any) {
	clauses := []string{}
	args := []any{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		clauses = append(clauses, "category = $"+strconv.Itoa(len(args)))
	}

	if filter.Featured != nil {
		args = append(args, *filter.Featured)
		clauses = append(clauses, "isfeatured = $"+strconv.Itoa(len(args)))
	}

	if len(filter.Tags) > 0 {
		args = append(args, filter.Tags)
		// Array overlap: any of the requested tags matches.
		clauses = append(clauses, "tags && $"+strconv.Itoa(len(args)))
	}

	if len(clauses) == 0 {
		return "", args
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}

// scanPost reads one post row through the provided scan function.
func scanPost(scan func(...any) error, p *Post) error {
	return scan(
		&p.ID, &p.Title, &p.Content, &p.Category, &p.Excerpt,
		&p.ImageURL, &p.ImageCredit, &p.AuthorID, &p.AuthorName,
		&p.Tags, &p.IsFeatured, &p.Views, &p.Likes, &p.ShortCode,
		&p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
	)
}
