package mysql

// Schema for the listings table (applied out of band; kept here so the
// integration test can create it).
const createListingsSQL = `
CREATE TABLE IF NOT EXISTS listings (
  id            VARCHAR(64)  NOT NULL PRIMARY KEY,
  title         VARCHAR(512) NOT NULL,
  description   TEXT,
  type          VARCHAR(32)  NOT NULL,
  status        VARCHAR(32)  NOT NULL,
  price         DECIMAL(14,2) NOT NULL,
  currency      VARCHAR(8),
  bedrooms      INT          NULL,
  bathrooms     INT          NULL,
  area          DECIMAL(12,2) NULL,
  city          VARCHAR(128),
  neighborhood  VARCHAR(128),
  address       VARCHAR(512),
  lat           DOUBLE       NULL,
  lng           DOUBLE       NULL,
  amenities     JSON,
  is_featured   TINYINT(1)   NOT NULL DEFAULT 0,
  is_premium    TINYINT(1)   NOT NULL DEFAULT 0,
  views         INT          NOT NULL DEFAULT 0,
  favorites     INT          NOT NULL DEFAULT 0,
  created_at    TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
  KEY idx_status (status),
  KEY idx_geo (lat, lng)
)
`

const upsertListingSQL = `
INSERT INTO listings
  (id, title, description, type, status, price, currency, bedrooms, bathrooms,
   area, city, neighborhood, address, lat, lng, amenities, is_featured,
   is_premium, views, favorites, created_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  title        = VALUES(title),
  description  = VALUES(description),
  type         = VALUES(type),
  status       = VALUES(status),
  price        = VALUES(price),
  currency     = VALUES(currency),
  bedrooms     = VALUES(bedrooms),
  bathrooms    = VALUES(bathrooms),
  area         = VALUES(area),
  city         = VALUES(city),
  neighborhood = VALUES(neighborhood),
  address      = VALUES(address),
  lat          = VALUES(lat),
  lng          = VALUES(lng),
  amenities    = VALUES(amenities),
  is_featured  = VALUES(is_featured),
  is_premium   = VALUES(is_premium),
  views        = VALUES(views),
  favorites    = VALUES(favorites),
  created_at   = VALUES(created_at)
`

const deleteListingSQL = `DELETE FROM listings WHERE id = ?`

const selectListingsPrefix = `
SELECT id, title, description, type, status, price, currency, bedrooms,
       bathrooms, area, city, neighborhood, address, lat, lng, amenities,
       is_featured, is_premium, views, favorites, created_at
FROM listings
`
