package mysql

const upsertRoomSQL = `
INSERT INTO rooms
  (id, slug, type, name, short_description, full_description, price_per_night, currency,
   images, amenity_ids, capacity, size_value, size_unit, floor_level, view_type, is_available, featured_order)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  slug              = VALUES(slug),
  type              = VALUES(type),
  name              = VALUES(name),
  short_description = VALUES(short_description),
  full_description  = VALUES(full_description),
  price_per_night   = VALUES(price_per_night),
  currency          = VALUES(currency),
  images            = VALUES(images),
  amenity_ids       = VALUES(amenity_ids),
  capacity          = VALUES(capacity),
  size_value        = VALUES(size_value),
  size_unit         = VALUES(size_unit),
  floor_level       = VALUES(floor_level),
  view_type         = VALUES(view_type),
  is_available      = VALUES(is_available),
  featured_order    = VALUES(featured_order),
  updated_at        = CURRENT_TIMESTAMP
`

const upsertAmenitySQL = `
INSERT INTO amenities (id, name, icon, category)
VALUES (?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name     = VALUES(name),
  icon     = VALUES(icon),
  category = VALUES(category)
`

const insertAvailabilityPrefix = "INSERT INTO availability\n  (room_id, day, is_available, price_modifier)\nVALUES "

const insertAvailabilityOnDup = " ON DUPLICATE KEY UPDATE\n" +
	"  is_available   = VALUES(is_available),\n" +
	"  price_modifier = VALUES(price_modifier)\n"

const insertBookingSQL = `
INSERT INTO bookings
  (id, room_id, check_in, check_out, guest_info, payment_method, total_price, status, created_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const roomColumns = `
  id, slug, type, name, short_description, full_description, price_per_night, currency,
  images, amenity_ids, capacity, size_value, size_unit, floor_level, view_type, is_available, featured_order
`

const getRoomSQL = `SELECT` + roomColumns + `FROM rooms WHERE id = ?`

const getRoomBySlugSQL = `SELECT` + roomColumns + `FROM rooms WHERE slug = ?`

// Featured ordering is applied in Go, so the base listing keeps catalog order.
const listRoomsSQL = `SELECT` + roomColumns + `FROM rooms ORDER BY id`

const listAmenitiesSQL = `SELECT id, name, icon, category FROM amenities ORDER BY id`

// Bounds are inclusive on both ends.
const listAvailabilitySQL = `
SELECT room_id, DATE_FORMAT(day, '%Y-%m-%d'), is_available, price_modifier
FROM availability
WHERE day BETWEEN ? AND ?
  AND (? IS NULL OR room_id = ?)
ORDER BY room_id, day
`

const listBookingsSQL = `
SELECT id, room_id, DATE_FORMAT(check_in, '%Y-%m-%d'), DATE_FORMAT(check_out, '%Y-%m-%d'),
       guest_info, payment_method, total_price, status, created_at
FROM bookings
ORDER BY created_at, id
`
