package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Samples table - labeled landmark captures recorded for
		// offline inspection of the classifier heuristics
		`CREATE TABLE IF NOT EXISTS samples (
			id TEXT PRIMARY KEY,
			label TEXT NOT NULL CHECK(label IN ('rock', 'paper', 'scissors', 'none')),
			data TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Settings table - stores application settings as key-value pairs
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_samples_label ON samples(label)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
