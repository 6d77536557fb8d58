package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks_lists (
	pk         INTEGER PRIMARY KEY AUTOINCREMENT,
	id         TEXT,
	name       TEXT,
	created_at DATETIME,
	type       INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS task_items (
	pk         INTEGER PRIMARY KEY AUTOINCREMENT,
	id         TEXT,
	name       TEXT,
	created_at DATETIME,
	type       INTEGER NOT NULL DEFAULT 0,
	list_pk    INTEGER REFERENCES tasks_lists(pk) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_tasks_lists_id ON tasks_lists(id);
CREATE INDEX IF NOT EXISTS idx_task_items_list_pk ON task_items(list_pk);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
