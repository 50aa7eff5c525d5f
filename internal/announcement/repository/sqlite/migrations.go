package sqlite

func (r *implRepository) runMigrations() error {
	for _, m := range migrations {
		if _, err := r.db.Exec(m); err != nil {
			return err
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS announcements (
		event_id VARCHAR NOT NULL PRIMARY KEY,
		channel_id VARCHAR NOT NULL,
		message_id VARCHAR NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}
