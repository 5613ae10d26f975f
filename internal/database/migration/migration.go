package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id            BIGSERIAL   PRIMARY KEY,
  username      VARCHAR(50) NOT NULL UNIQUE,
  password_hash TEXT        NOT NULL,
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_folders",
		SQL: `CREATE TABLE IF NOT EXISTS folders (
  id         BIGSERIAL    PRIMARY KEY,
  name       VARCHAR(255) NOT NULL,
  owner_id   BIGINT       NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  created_at TIMESTAMPTZ  NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_ocr_results",
		SQL: `CREATE TABLE IF NOT EXISTS ocr_results (
  id             BIGSERIAL    PRIMARY KEY,
  image_filename VARCHAR(255) NOT NULL,
  text           TEXT         NOT NULL DEFAULT '',
  owner_id       BIGINT       NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  folder_id      BIGINT       NULL REFERENCES folders (id),
  storage_path   TEXT         NOT NULL DEFAULT '',
  image_size     BIGINT       NOT NULL DEFAULT 0 CHECK (image_size >= 0),
  content_type   TEXT         NOT NULL DEFAULT '',
  created_at     TIMESTAMPTZ  NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_document_folders",
		SQL: `CREATE TABLE IF NOT EXISTS document_folders (
  document_id BIGINT NOT NULL REFERENCES ocr_results (id) ON DELETE CASCADE,
  folder_id   BIGINT NOT NULL REFERENCES folders (id) ON DELETE CASCADE,
  PRIMARY KEY (document_id, folder_id)
);`,
	},
	{
		Name: "create_index_ocr_results_owner_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_ocr_results_owner_id ON ocr_results (owner_id);`,
	},
	{
		Name: "create_index_ocr_results_folder_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_ocr_results_folder_id ON ocr_results (folder_id);`,
	},
	{
		Name: "create_index_folders_owner_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_folders_owner_id ON folders (owner_id);`,
	},
}

// EnsureMigrated checks if the 'ocr_results' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.ocr_results') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
