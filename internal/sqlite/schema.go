package sqlite

// Schema DDL: one row per recipe. List and map fields are opaque
// JSON-encoded text columns, mirroring the file backend's record shape.
// The id column is internal; callers only ever see titles.
const schemaSQL = `CREATE TABLE IF NOT EXISTS recipes (
    id INTEGER PRIMARY KEY,
    title TEXT UNIQUE NOT NULL,
    steps_json TEXT NOT NULL,
    ingredients_json TEXT NOT NULL,
    tags_json TEXT NOT NULL,
    servings TEXT,
    source_url TEXT
);`
