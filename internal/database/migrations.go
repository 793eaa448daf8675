package database

import (
	"context"
	"fmt"
	"strings"
)

// RunScript executes a semicolon separated SQL script one statement at a time.
// It does not track applied versions; the LightBnB schema is owned by the
// external migrations.
func (d *Database) RunScript(ctx context.Context, script string) error {
	for i, stmt := range strings.Split(script, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if err := d.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("statement %d: %w", i+1, err)
		}
	}
	return nil
}
