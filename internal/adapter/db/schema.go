package db

import "github.com/jmoiron/sqlx"

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
  id BIGINT AUTO_INCREMENT PRIMARY KEY,
  reference_id BIGINT NOT NULL,
  reference_type VARCHAR(32) NOT NULL,
  kind VARCHAR(64) NOT NULL,
  assignee_id BIGINT NOT NULL,
  status VARCHAR(16) NOT NULL,
  priority VARCHAR(16) NOT NULL DEFAULT '',
  description TEXT NOT NULL,
  deadline DATETIME(3) NULL,
  KEY idx_tasks_reference (reference_id, reference_type),
  KEY idx_tasks_assignee (assignee_id)
);

CREATE TABLE IF NOT EXISTS task_activities (
  id BIGINT AUTO_INCREMENT PRIMARY KEY,
  task_id BIGINT NOT NULL,
  occurred_at DATETIME(3) NOT NULL,
  user_name VARCHAR(255) NOT NULL,
  description TEXT NOT NULL,
  KEY idx_task_activities_task (task_id)
);

CREATE TABLE IF NOT EXISTS task_comments (
  id BIGINT AUTO_INCREMENT PRIMARY KEY,
  task_id BIGINT NOT NULL,
  commented_at DATETIME(3) NOT NULL,
  user_name VARCHAR(255) NOT NULL,
  body TEXT NOT NULL,
  KEY idx_task_comments_task (task_id)
);
`

// EnsureSchema creates the task tables when they do not exist yet.
// Requires multiStatements=true in the DSN.
func EnsureSchema(db *sqlx.DB) error {
	_, err := db.Exec(schema)
	return err
}
