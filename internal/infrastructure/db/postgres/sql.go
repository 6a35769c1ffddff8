package postgres

const insertLeadSQL = `
INSERT INTO leads (id, name, email, phone, message, status, lead_source, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

const getLeadSQL = `
SELECT id, name, email, phone, message, status, lead_source, created_at
FROM leads
WHERE id = $1
`

const listLeadsSQL = `
SELECT id, name, email, phone, message, status, lead_source, created_at
FROM leads
WHERE ($1 = '' OR status = $1)
  AND ($2 = '' OR lead_source = $2)
ORDER BY created_at DESC
`

const deleteLeadSQL = `
DELETE FROM leads WHERE id = $1
`

const getSettingsSQL = `
SELECT id, global, global_meta
FROM site_settings
LIMIT 1
`

const insertSettingsSQL = `
INSERT INTO site_settings (id, global, global_meta)
VALUES ($1, $2, $3)
`

const updateSettingsSQL = `
UPDATE site_settings
SET global = $2, global_meta = $3
WHERE id = $1
`
