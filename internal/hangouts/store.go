package hangouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when no hangout exists for the given id.
var ErrNotFound = errors.New("hangout not found")

// Store is the persistence interface for hangout posts.
type Store interface {
	// List returns the newest posts, most recent first.
	List(ctx context.Context, limit int) ([]Hangout, error)

	// Get fetches one post by id.
	Get(ctx context.Context, id string) (Hangout, error)

	// Create inserts a new post.
	Create(ctx context.Context, h Hangout) error

	// Like increments the like counter and returns the new value.
	Like(ctx context.Context, id string) (int, error)

	// Delete removes a post.
	Delete(ctx context.Context, id string) error
}

// PGStore implements Store on a pgx connection pool.
type PGStore struct {
	db *pgxpool.Pool
}

// NewPGStore creates a PostgreSQL-backed store.
func NewPGStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

const selectColumns = "id, username, image_url, description, likes, comments, tags, created_at"

func (s *PGStore) List(ctx context.Context, limit int) ([]Hangout, error) {
	rows, err := s.db.Query(ctx,
		"SELECT "+selectColumns+" FROM hangouts ORDER BY created_at DESC LIMIT $1",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list hangouts: %w", err)
	}
	defer rows.Close()

	var out []Hangout
	for rows.Next() {
		var h Hangout
		if err := rows.Scan(&h.ID, &h.Username, &h.ImageURL, &h.Description,
			&h.Likes, &h.Comments, &h.Tags, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan hangout: %w", err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list hangouts: %w", err)
	}
	return out, nil
}

func (s *PGStore) Get(ctx context.Context, id string) (Hangout, error) {
	var h Hangout
	err := s.db.QueryRow(ctx,
		"SELECT "+selectColumns+" FROM hangouts WHERE id = $1",
		id,
	).Scan(&h.ID, &h.Username, &h.ImageURL, &h.Description,
		&h.Likes, &h.Comments, &h.Tags, &h.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Hangout{}, ErrNotFound
	}
	if err != nil {
		return Hangout{}, fmt.Errorf("get hangout: %w", err)
	}
	return h, nil
}

func (s *PGStore) Create(ctx context.Context, h Hangout) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO hangouts (id, username, image_url, description, likes, comments, tags, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		h.ID, h.Username, h.ImageURL, h.Description, h.Likes, h.Comments, h.Tags, h.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create hangout: %w", err)
	}
	return nil
}

func (s *PGStore) Like(ctx context.Context, id string) (int, error) {
	var likes int
	err := s.db.QueryRow(ctx,
		"UPDATE hangouts SET likes = likes + 1 WHERE id = $1 RETURNING likes",
		id,
	).Scan(&likes)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("like hangout: %w", err)
	}
	return likes, nil
}

func (s *PGStore) Delete(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM hangouts WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete hangout: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
