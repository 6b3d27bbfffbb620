package db

import "github.com/Flarenzy/rdap-registry/internal/ipaddr"

const uniqueNetworkHandle = "unique_network_handle"

const networkColumns = `id, handle, start_address, end_address, ip_version, name, type, country, parent_handle, custom_properties, created_at, updated_at`

const findNetworkIDByHandle = `SELECT id FROM networks WHERE handle = $1`

// Most specific match first: highest start, then lowest end.
var findNetworkByAddress = `SELECT ` + networkColumns + `
FROM networks
WHERE start_address <= $1
  AND end_address >= $1
  AND ip_version = $2
  AND ` + ipaddr.RangePredicate("start_address", "ip_version") + `
ORDER BY start_address DESC, end_address ASC
LIMIT 1`

const insertNetwork = `INSERT INTO networks (handle, start_address, end_address, ip_version, name, type, country, parent_handle, custom_properties)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, created_at, updated_at`

const updateNetwork = `UPDATE networks
SET start_address = $2,
    end_address = $3,
    ip_version = $4,
    name = $5,
    type = $6,
    country = $7,
    parent_handle = $8,
    custom_properties = $9,
    updated_at = now()
WHERE handle = $1
RETURNING id, created_at, updated_at`

const deleteNetworkStatus = `DELETE FROM network_status WHERE network_id = $1`

const insertNetworkStatus = `INSERT INTO network_status (network_id, status) VALUES ($1, $2) ON CONFLICT DO NOTHING`

const listNetworkStatus = `SELECT status FROM network_status WHERE network_id = $1 ORDER BY status`

const deleteResourceEvents = `DELETE FROM resource_events WHERE resource_type = $1 AND resource_id = $2`

const insertResourceEvent = `INSERT INTO resource_events (resource_type, resource_id, action, actor, event_date) VALUES ($1, $2, $3, $4, $5)`

const listResourceEvents = `SELECT action, actor, event_date FROM resource_events WHERE resource_type = $1 AND resource_id = $2 ORDER BY id`

const deleteResourceLinks = `DELETE FROM resource_links WHERE resource_type = $1 AND resource_id = $2`

const insertResourceLink = `INSERT INTO resource_links (resource_type, resource_id, rel, href) VALUES ($1, $2, $3, $4)`

const listResourceLinks = `SELECT rel, href FROM resource_links WHERE resource_type = $1 AND resource_id = $2 ORDER BY id`

const insertNetworkRedirect = `INSERT INTO network_redirects (network_key, ip_version, start_address, end_address, urls) VALUES ($1, $2, $3, $4, $5)`
