package mysql

// Table naming follows the document store's nesting convention flattened to
// {collection}_{subcollection}, with a users_id column standing in for the
// per-user document path.

// Schema is exported for the integration tests.
const Schema = `
CREATE TABLE IF NOT EXISTS users_properties (
  id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
  users_id    VARCHAR(64)  NOT NULL,
  name        VARCHAR(255) NOT NULL,
  type        VARCHAR(32)  NOT NULL,
  address     VARCHAR(255) NOT NULL,
  bedrooms    INT          NOT NULL,
  bathrooms   INT          NOT NULL,
  capacity    INT          NOT NULL,
  status      VARCHAR(16)  NOT NULL,
  imported    TINYINT(1)   NOT NULL DEFAULT 0,
  platform    VARCHAR(64)  NULL,
  created_at  VARCHAR(40)  NOT NULL,
  PRIMARY KEY (id),
  KEY idx_users_properties_user (users_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

CREATE TABLE IF NOT EXISTS users_guides (
  id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
  users_id    VARCHAR(64) NOT NULL,
  property_id VARCHAR(64) NOT NULL,
  lang        VARCHAR(8)  NOT NULL,
  content     JSON        NOT NULL,
  updated_at  TIMESTAMP   NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
  PRIMARY KEY (id),
  UNIQUE KEY uniq_users_guides (users_id, property_id, lang)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
`

const insertPropertySQL = `
INSERT INTO users_properties
  (users_id, name, type, address, bedrooms, bathrooms, capacity, status, imported, platform, created_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const selectPropertiesSQL = `
SELECT id, name, type, address, bedrooms, bathrooms, capacity, status, imported, platform, created_at
FROM users_properties
WHERE users_id = ?
ORDER BY id
`

const upsertGuideSQL = `
INSERT INTO users_guides
  (users_id, property_id, lang, content)
VALUES
  (?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  content    = VALUES(content),
  updated_at = CURRENT_TIMESTAMP
`

const selectGuidesSQL = `
SELECT property_id, lang, content, updated_at
FROM users_guides
WHERE users_id = ?
ORDER BY property_id, lang
`
