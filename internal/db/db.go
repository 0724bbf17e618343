package db

import (
	"fmt"

	"pulsecheck/internal/auth"
	"pulsecheck/internal/jobs"
	"pulsecheck/internal/wellness"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	// Tables
	if err := gdb.AutoMigrate(
		&wellness.CheckIn{},
		&wellness.ChatMessage{},
		&wellness.Alert{},
		&jobs.Job{},
		&auth.User{},
	); err != nil {
		return err
	}

	// Alert category filter (GIN for text[])
	if err := gdb.Exec(`create index if not exists idx_alerts_categories on alerts using gin (categories);`).Error; err != nil {
		return err
	}

	// Partial index for the unread-alerts listing
	if err := gdb.Exec(`
create index if not exists idx_alerts_user_unread
on alerts(user_id, created_at desc)
where is_read = false;
`).Error; err != nil {
		return err
	}

	// Helpful indexes
	stmts := []string{
		`create index if not exists idx_checkins_user_created on check_ins(user_id, created_at desc);`,
		`create index if not exists idx_messages_user_role_created on chat_messages(user_id, role, created_at desc);`,
		`create index if not exists idx_alerts_user_created on alerts(user_id, created_at desc);`,
		`create index if not exists idx_jobs_due on jobs(status, run_at);`,
		`create index if not exists idx_jobs_lock on jobs(status, locked_at);`,
		`create index if not exists idx_jobs_user_type on jobs(user_id, type, status);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
