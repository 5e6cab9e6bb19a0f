package sqlite

// Schema DDL for the export database.
const (
	createEntries = `CREATE TABLE entries (
    acronym TEXT PRIMARY KEY,
    item_count INTEGER NOT NULL
);`

	createItems = `CREATE TABLE items (
    item_id TEXT PRIMARY KEY,
    acronym TEXT NOT NULL,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    description TEXT,
    FOREIGN KEY (acronym) REFERENCES entries(acronym) ON DELETE CASCADE
);`
)

// Index DDL for lookups by abbreviation.
const (
	idxItemsAcronym    = `CREATE INDEX idx_items_acronym ON items(acronym);`
	idxItemsPosition   = `CREATE UNIQUE INDEX idx_items_position ON items(acronym, position);`
	idxItemsNameUnique = `CREATE UNIQUE INDEX idx_items_name ON items(acronym, name);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createEntries,
	createItems,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxItemsAcronym,
	idxItemsPosition,
	idxItemsNameUnique,
}
