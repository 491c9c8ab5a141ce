package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Sample is one recorded classifier capture: the label the classifier
// produced and the raw landmarks it saw, kept for tuning the heuristics.
type Sample struct {
	ID        string
	Label     string
	Data      json.RawMessage
	CreatedAt time.Time
}

// SampleRepository provides CRUD operations for samples.
type SampleRepository struct {
	db *sql.DB
}

// Samples returns the sample repository for this store.
func (s *Store) Samples() *SampleRepository {
	return &SampleRepository{db: s.db}
}

// Create inserts a new sample and returns it with its generated ID.
func (r *SampleRepository) Create(label string, data json.RawMessage) (*Sample, error) {
	sample := &Sample{
		ID:        uuid.NewString(),
		Label:     label,
		Data:      data,
		CreatedAt: time.Now(),
	}

	_, err := r.db.Exec(
		`INSERT INTO samples (id, label, data, created_at) VALUES (?, ?, ?, ?)`,
		sample.ID, sample.Label, string(sample.Data), sample.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return sample, nil
}

// GetByID retrieves a sample by its ID.
func (r *SampleRepository) GetByID(id string) (*Sample, error) {
	sample := &Sample{}
	var data string

	err := r.db.QueryRow(
		`SELECT id, label, data, created_at FROM samples WHERE id = ?`,
		id,
	).Scan(&sample.ID, &sample.Label, &data, &sample.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	sample.Data = json.RawMessage(data)
	return sample, nil
}

// List retrieves samples, newest first. An empty label returns all
// samples; otherwise only those with the given label.
func (r *SampleRepository) List(label string) ([]*Sample, error) {
	query := `SELECT id, label, data, created_at FROM samples ORDER BY created_at DESC`
	args := []any{}
	if label != "" {
		query = `SELECT id, label, data, created_at FROM samples WHERE label = ? ORDER BY created_at DESC`
		args = append(args, label)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var samples []*Sample
	for rows.Next() {
		sample := &Sample{}
		var data string

		if err := rows.Scan(&sample.ID, &sample.Label, &data, &sample.CreatedAt); err != nil {
			return nil, err
		}

		sample.Data = json.RawMessage(data)
		samples = append(samples, sample)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return samples, nil
}

// CountByLabel returns the number of stored samples per label.
func (r *SampleRepository) CountByLabel() (map[string]int, error) {
	rows, err := r.db.Query(`SELECT label, COUNT(*) FROM samples GROUP BY label`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var label string
		var count int
		if err := rows.Scan(&label, &count); err != nil {
			return nil, err
		}
		counts[label] = count
	}

	return counts, rows.Err()
}

// Delete removes a sample by its ID.
func (r *SampleRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM samples WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
