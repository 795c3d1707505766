package mysql

// LAST_INSERT_ID(id) on the duplicate path makes LastInsertId return the
// existing row id, so seeding the same place twice is a no-op.
const insertPlaceSQL = `
INSERT INTO places
  (kind, name, denonym)
VALUES
  (?, ?, ?)
ON DUPLICATE KEY UPDATE
  id         = LAST_INSERT_ID(id),
  denonym    = VALUES(denonym),
  updated_at = CURRENT_TIMESTAMP
`

const insertPlaceI18nSQL = `
INSERT INTO place_i18n
  (place_id, field, lang, ` + "`text`" + `)
VALUES
  (?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  ` + "`text`" + ` = VALUES(` + "`text`" + `)
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const getPlaceSQL = `
SELECT id, kind, name, denonym
FROM places
WHERE kind = ? AND name = ?
`

const listPlacesSQL = `
SELECT id, kind, name, denonym
FROM places
WHERE kind = ?
ORDER BY name
LIMIT ?
`

// Overrides for one language; the caller builds the IN list.
const placeI18nPrefix = "SELECT place_id, field, `text` FROM place_i18n WHERE lang = ? AND place_id IN ("
