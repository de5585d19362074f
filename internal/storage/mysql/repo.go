package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"coral_cove/internal/catalog"
	"coral_cove/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
func valInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
func valF64(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// ---------- writes used by the seeder ----------

func (r *Repo) UpsertRoom(ctx context.Context, rm domain.Room) error {
	imgs, err := json.Marshal(rm.Images)
	if err != nil {
		return err
	}
	amen, err := json.Marshal(rm.AmenityIDs)
	if err != nil {
		return err
	}
	capy, err := json.Marshal(rm.Capacity)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, upsertRoomSQL,
		rm.ID,
		rm.Slug,
		string(rm.Type),
		rm.Name,
		rm.ShortDescription,
		rm.FullDescription,
		rm.PricePerNight,
		rm.Currency,
		string(imgs),
		string(amen),
		string(capy),
		rm.Size.Value,
		rm.Size.Unit,
		rm.FloorLevel,
		rm.ViewType,
		rm.IsAvailable,
		valInt(rm.FeaturedOrder),
	)
	return err
}

func (r *Repo) UpsertAmenity(ctx context.Context, a domain.Amenity) error {
	_, err := r.db.ExecContext(ctx, upsertAmenitySQL, a.ID, a.Name, a.Icon, a.Category)
	return err
}

// UpsertAvailability writes a batch of entries in one statement.
func (r *Repo) UpsertAvailability(ctx context.Context, es []domain.AvailabilityEntry) error {
	if len(es) == 0 {
		return nil
	}
	values := make([]string, 0, len(es))
	args := make([]any, 0, len(es)*4)
	for _, e := range es {
		values = append(values, "(?,?,?,?)")
		args = append(args, e.RoomID, e.Date, e.IsAvailable, valF64(e.PriceModifier))
	}
	sqlStr := insertAvailabilityPrefix + strings.Join(values, ",") + insertAvailabilityOnDup
	_, err := r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

// ---------- HotelRepository ----------

type scanner interface {
	Scan(dest ...any) error
}

func scanRoom(s scanner) (domain.Room, error) {
	var (
		rm               domain.Room
		typ              string
		imgs, amen, capy []byte
		featured         sql.NullInt64
	)
	if err := s.Scan(
		&rm.ID, &rm.Slug, &typ, &rm.Name, &rm.ShortDescription, &rm.FullDescription,
		&rm.PricePerNight, &rm.Currency,
		&imgs, &amen, &capy,
		&rm.Size.Value, &rm.Size.Unit, &rm.FloorLevel, &rm.ViewType, &rm.IsAvailable,
		&featured,
	); err != nil {
		return domain.Room{}, err
	}
	rm.Type = domain.RoomType(typ)
	if err := json.Unmarshal(imgs, &rm.Images); err != nil {
		return domain.Room{}, fmt.Errorf("room %s images: %w", rm.ID, err)
	}
	if err := json.Unmarshal(amen, &rm.AmenityIDs); err != nil {
		return domain.Room{}, fmt.Errorf("room %s amenities: %w", rm.ID, err)
	}
	if err := json.Unmarshal(capy, &rm.Capacity); err != nil {
		return domain.Room{}, fmt.Errorf("room %s capacity: %w", rm.ID, err)
	}
	if featured.Valid {
		f := int(featured.Int64)
		rm.FeaturedOrder = &f
	}
	return rm, nil
}

func (r *Repo) getRoom(ctx context.Context, query, key string) (domain.Room, error) {
	rm, err := scanRoom(r.db.QueryRowContext(ctx, query, key))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Room{}, domain.ErrRoomNotFound
		}
		return domain.Room{}, err
	}
	return rm, nil
}

func (r *Repo) GetRoom(ctx context.Context, id string) (domain.Room, error) {
	return r.getRoom(ctx, getRoomSQL, id)
}

func (r *Repo) GetRoomBySlug(ctx context.Context, slug string) (domain.Room, error) {
	return r.getRoom(ctx, getRoomBySlugSQL, slug)
}

func (r *Repo) ListRooms(ctx context.Context, q domain.RoomsQuery) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx, listRoomsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return catalog.FilterRooms(out, q), nil
}

func (r *Repo) ListAmenities(ctx context.Context, ids []string) ([]domain.Amenity, error) {
	rows, err := r.db.QueryContext(ctx, listAmenitiesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var all []domain.Amenity
	for rows.Next() {
		var a domain.Amenity
		if err := rows.Scan(&a.ID, &a.Name, &a.Icon, &a.Category); err != nil {
			return nil, err
		}
		all = append(all, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return catalog.SelectAmenities(all, ids), nil
}

func (r *Repo) ListAvailability(ctx context.Context, from, to string, roomID *string) ([]domain.AvailabilityEntry, error) {
	rid := valStr(roomID)
	rows, err := r.db.QueryContext(ctx, listAvailabilitySQL, from, to, rid, rid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.AvailabilityEntry, 0)
	for rows.Next() {
		var e domain.AvailabilityEntry
		var mod sql.NullFloat64
		if err := rows.Scan(&e.RoomID, &e.Date, &e.IsAvailable, &mod); err != nil {
			return nil, err
		}
		if mod.Valid {
			m := mod.Float64
			e.PriceModifier = &m
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *Repo) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, listBookingsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Booking, 0)
	for rows.Next() {
		var (
			b      domain.Booking
			guest  []byte
			method string
			status string
		)
		if err := rows.Scan(&b.ID, &b.RoomID, &b.CheckIn, &b.CheckOut, &guest, &method, &b.TotalPrice, &status, &b.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(guest, &b.GuestInfo); err != nil {
			return nil, fmt.Errorf("booking %s guest info: %w", b.ID, err)
		}
		b.PaymentMethod = domain.PaymentMethod(method)
		b.Status = domain.BookingStatus(status)
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *Repo) CreateBooking(ctx context.Context, b domain.Booking) error {
	guest, err := json.Marshal(b.GuestInfo)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, insertBookingSQL,
		b.ID,
		b.RoomID,
		b.CheckIn,
		b.CheckOut,
		string(guest),
		string(b.PaymentMethod),
		b.TotalPrice,
		string(b.Status),
		b.CreatedAt.UTC(),
	)
	return err
}
