package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// compositeIndexes back the participant listing and directory ordering.
var compositeIndexes = []struct {
	model   string
	name    string
	columns []string
}{
	{"tasks", "idx_tasks_created_by_created_at", []string{"created_by_id", "created_at"}},
	{"tasks", "idx_tasks_assignee_created_at", []string{"assignee_id", "created_at"}},
}

// AddIndexes creates composite indexes that struct tags cannot express.
// Existing indexes are skipped, so it is safe to call on every start.
func AddIndexes(db *gorm.DB) error {
	migrator := db.Migrator()
	for _, idx := range compositeIndexes {
		if migrator.HasIndex(idx.model, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.model, strings.Join(idx.columns, ", "))
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
