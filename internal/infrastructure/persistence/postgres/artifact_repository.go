package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"salary-predictor/internal/database"
)

var ErrArtifactNotFound = errors.New("model artifact not found")

type StoredArtifact struct {
	Name      string
	Version   string
	Format    string
	Payload   []byte
	CreatedAt time.Time
}

type ArtifactRepository struct {
	db database.DB
}

func NewArtifactRepository(db database.DB) *ArtifactRepository {
	return &ArtifactRepository{db: db}
}

// Latest returns the most recently published artifact with the given name.
func (r *ArtifactRepository) Latest(ctx context.Context, name string) (StoredArtifact, error) {
	if r == nil || r.db == nil {
		return StoredArtifact{}, fmt.Errorf("nil db")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return StoredArtifact{}, fmt.Errorf("artifact name is required")
	}

	var a StoredArtifact
	err := r.db.QueryRow(ctx, `
SELECT name, version, format, payload, created_at
FROM model_artifacts
WHERE name = $1
ORDER BY created_at DESC, id DESC
LIMIT 1`, name).Scan(&a.Name, &a.Version, &a.Format, &a.Payload, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return StoredArtifact{}, fmt.Errorf("%w: %s", ErrArtifactNotFound, name)
		}
		return StoredArtifact{}, err
	}
	return a, nil
}

// Fetch satisfies artifact.Source.
func (r *ArtifactRepository) Fetch(ctx context.Context, name string) ([]byte, error) {
	a, err := r.Latest(ctx, name)
	if err != nil {
		return nil, err
	}
	return a.Payload, nil
}

// Save inserts an artifact, replacing the payload when the same name and
// version were already published.
func (r *ArtifactRepository) Save(ctx context.Context, a StoredArtifact) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("nil db")
	}
	if strings.TrimSpace(a.Name) == "" || strings.TrimSpace(a.Version) == "" {
		return fmt.Errorf("artifact name and version are required")
	}
	if len(a.Payload) == 0 {
		return fmt.Errorf("artifact payload is empty")
	}
	format := strings.ToLower(strings.TrimSpace(a.Format))
	if format == "" {
		format = "yaml"
	}

	_, err := r.db.Exec(ctx, `
INSERT INTO model_artifacts (name, version, format, payload)
VALUES ($1, $2, $3, $4)
ON CONFLICT (name, version)
DO UPDATE SET format = EXCLUDED.format, payload = EXCLUDED.payload, created_at = now()`,
		strings.TrimSpace(a.Name), strings.TrimSpace(a.Version), format, a.Payload)
	return err
}
