package comment

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zfatbt/tenufa/internal/platform/apperr"
	"github.com/zfatbt/tenufa/internal/platform/dberr"
)

const commentColumns = "id, postid, userid, username, content, likes, likedby, createdat"

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListByPost(context context.Context, postID string) ([]Comment, error) {
	query := fmt.Sprintf("SELECT %s FROM news.comment WHERE postid = $1 ORDER BY createdat ASC", commentColumns)

	rows, err := repository.db.Query(context, query, postID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_comments")
	}
	defer rows.Close()

	comments := []Comment{}
	for rows.Next() {
		var entry Comment
		if err := rows.Scan(&entry.ID, &entry.PostID, &entry.UserID, &entry.UserName,
			&entry.Content, &entry.Likes, &entry.LikedBy, &entry.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_comment")
		}
		comments = append(comments, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_comments_rows")
	}

	return comments, nil
}

func (repository *PostgresRepository) GetByID(context context.Context, id string) (*Comment, error) {
	query := fmt.Sprintf("SELECT %s FROM news.comment WHERE id = $1", commentColumns)

	entry := &Comment{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&entry.ID, &entry.PostID, &entry.UserID, &entry.UserName,
		&entry.Content, &entry.Likes, &entry.LikedBy, &entry.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_comment_by_id")
	}

	return entry, nil
}

func (repository *PostgresRepository) Create(context context.Context, comment *Comment) error {
	const query = `
		INSERT INTO news.comment (id, postid, userid, username, content, likes, likedby, createdat)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	comment.CreatedAt = time.Now()

	if _, err := repository.db.Exec(context, query,
		comment.ID, comment.PostID, comment.UserID, comment.UserName,
		comment.Content, comment.Likes, comment.LikedBy, comment.CreatedAt); err != nil {
		return dberr.Wrap(err, "create_comment")
	}

	return nil
}

// AddLike and RemoveLike fold the membership check into the UPDATE itself,
// so concurrent toggles on the same comment cannot lose each other's writes.

func (repository *PostgresRepository) AddLike(context context.Context, id, userID string) (bool, error) {
	const query = `
		UPDATE news.comment
		SET likes = likes + 1, likedby = array_append(likedby, $2)
		WHERE id = $1 AND NOT ($2 = ANY(likedby))`

	tag, err := repository.db.Exec(context, query, id, userID)
	if err != nil {
		return false, dberr.Wrap(err, "add_comment_like")
	}

	return tag.RowsAffected() > 0, nil
}

func (repository *PostgresRepository) RemoveLike(context context.Context, id, userID string) (bool, error) {
	const query = `
		UPDATE news.comment
		SET likes = likes - 1, likedby = array_remove(likedby, $2)
		WHERE id = $1 AND $2 = ANY(likedby)`

	tag, err := repository.db.Exec(context, query, id, userID)
	if err != nil {
		return false, dberr.Wrap(err, "remove_comment_like")
	}

	return tag.RowsAffected() > 0, nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	tag, err := repository.db.Exec(context, "DELETE FROM news.comment WHERE id = $1", id)
	if err != nil {
		return dberr.Wrap(err, "delete_comment")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Comment")
	}
	return nil
}
