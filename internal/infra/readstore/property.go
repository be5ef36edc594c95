package readstore

import (
	"context"

	"staybook/internal/domain/property"
	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/infra/repository/converter"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/queries"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	propertyByID = `SELECT ` + converter.PropertyColumns + ` FROM properties WHERE id = $1`

	roomByID = `SELECT ` + converter.RoomColumns + ` FROM rooms rm WHERE rm.id = $1`

	roomsByIDs = `SELECT ` + converter.RoomColumns + ` FROM rooms rm WHERE rm.id = ANY($1::uuid[]) ORDER BY rm.id`

	roomsByProperty = `SELECT ` + converter.RoomColumns + ` FROM rooms rm WHERE rm.property_id = $1 ORDER BY rm.created_at, rm.id`

	pricingContext = `SELECT p.id, p.owner_id, p.property_type, p.region, p.stars, COALESCE(s.total_reviews, 0)
FROM properties p LEFT JOIN property_rating_stats s ON s.property_id = p.id
WHERE p.id = $1`

	ratingSummary = `SELECT total_reviews, avg_personal, avg_facilities, avg_cleanliness, avg_comfort,
    avg_value_for_money, avg_location, avg_wifi
FROM property_rating_stats WHERE property_id = $1`

	listProperties = `SELECT p.id, p.name, p.region, p.stars, p.property_type,
    (SELECT count(*) FROM rooms rm WHERE rm.property_id = p.id)::int, p.created_at
FROM properties p
WHERE ($1 = '' OR lower(p.region) = lower($1))
  AND ($2::uuid IS NULL OR p.owner_id = $2)
  AND ($3::timestamptz IS NULL OR (p.created_at, p.id) < ($3, $4))
ORDER BY p.created_at DESC, p.id DESC
LIMIT $5`
)

type PropertyReadStore struct {
	db db.DBTX
}

func NewPropertyReadStore(db db.DBTX) *PropertyReadStore {
	return &PropertyReadStore{db: db}
}

func (r *PropertyReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PropertyView, error) {
	row, err := converter.ScanProperty(r.db.QueryRow(ctx, propertyByID, id))
	if err != nil {
		return nil, notFoundOr("property", err)
	}
	return &queries.PropertyView{
		ID:           row.ID,
		OwnerID:      row.OwnerID,
		Name:         row.Name,
		Address:      row.Address,
		PostalCode:   row.PostalCode,
		Country:      row.Country,
		Region:       row.Region,
		Latitude:     row.Latitude,
		Longitude:    row.Longitude,
		CheckInTime:  row.CheckInTime,
		CheckOutTime: row.CheckOutTime,
		Stars:        row.Stars,
		Type:         row.PropertyType,
		Description:  row.Description,
		ClusterID:    row.ClusterID,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}

func (r *PropertyReadStore) RoomsByProperty(ctx context.Context, propertyID uuid.UUID) ([]*queries.RoomView, error) {
	rows, err := queryRooms(ctx, r.db, roomsByProperty, propertyID)
	if err != nil {
		return nil, err
	}
	views := make([]*queries.RoomView, len(rows))
	for i, row := range rows {
		views[i] = &queries.RoomView{
			ID:          row.ID,
			PropertyID:  row.PropertyID,
			Type:        row.RoomType,
			Capacity:    row.Capacity,
			PriceCents:  row.PriceCents,
			Currency:    row.Currency,
			PriceRating: row.PriceRating,
			Amenities:   row.Amenities,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		}
	}
	return views, nil
}

// RatingSummary returns zero averages for a property nobody reviewed yet.
func (r *PropertyReadStore) RatingSummary(ctx context.Context, propertyID uuid.UUID) (queries.RatingSummary, error) {
	var s queries.RatingSummary
	err := r.db.QueryRow(ctx, ratingSummary, propertyID).Scan(
		&s.TotalReviews, &s.Personal, &s.Facilities, &s.Cleanliness, &s.Comfort,
		&s.ValueForMoney, &s.Location, &s.Wifi,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return queries.RatingSummary{}, nil
		}
		return queries.RatingSummary{}, infra.WrapRepoErr("failed to get rating summary", err)
	}
	return s, nil
}

func (r *PropertyReadStore) List(ctx context.Context, filter queries.PropertyFilter, after queries.Keyset, limit int32) ([]*queries.PropertyListItem, error) {
	rows, err := r.db.Query(ctx, listProperties,
		filter.Region, pgconv.UUIDPtrToPgtype(filter.OwnerID), keysetTime(after), after.ID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list properties", err)
	}
	defer rows.Close()

	var items []*queries.PropertyListItem
	for rows.Next() {
		var it queries.PropertyListItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Region, &it.Stars, &it.Type, &it.RoomCount, &it.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan property", err)
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list properties", err)
	}
	return items, nil
}

// LoadProperty returns the property aggregate.
func (r *PropertyReadStore) LoadProperty(ctx context.Context, id uuid.UUID) (*property.Property, error) {
	row, err := converter.ScanProperty(r.db.QueryRow(ctx, propertyByID, id))
	if err != nil {
		return nil, notFoundOr("property", err)
	}
	p, err := converter.PropertyToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt property row", err, infra.KindDBFailure)
	}
	return p, nil
}

func (r *PropertyReadStore) LoadRoom(ctx context.Context, id uuid.UUID) (*property.Room, error) {
	row, err := converter.ScanRoom(r.db.QueryRow(ctx, roomByID, id))
	if err != nil {
		return nil, notFoundOr("room", err)
	}
	room, err := converter.RoomToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt room row", err, infra.KindDBFailure)
	}
	return room, nil
}

// LoadRooms returns the rooms that exist among ids; missing ids are skipped.
func (r *PropertyReadStore) LoadRooms(ctx context.Context, ids []uuid.UUID) ([]*property.Room, error) {
	rows, err := queryRooms(ctx, r.db, roomsByIDs, ids)
	if err != nil {
		return nil, err
	}
	rooms := make([]*property.Room, 0, len(rows))
	for _, row := range rows {
		room, err := converter.RoomToDomain(row)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt room row", err, infra.KindDBFailure)
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

func (r *PropertyReadStore) PricingContext(ctx context.Context, propertyID uuid.UUID) (*shared.PricingContext, error) {
	var (
		pc    shared.PricingContext
		stars int16
		count int32
	)
	err := r.db.QueryRow(ctx, pricingContext, propertyID).Scan(
		&pc.PropertyID, &pc.OwnerID, &pc.PropertyType, &pc.Region, &stars, &count)
	if err != nil {
		return nil, notFoundOr("property", err)
	}
	pc.Stars = int(stars)
	pc.ReviewCount = int(count)
	return &pc, nil
}

func queryRooms(ctx context.Context, q db.DBTX, sql string, args ...any) ([]converter.RoomRow, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query rooms", err)
	}
	defer rows.Close()

	var out []converter.RoomRow
	for rows.Next() {
		row, err := converter.ScanRoom(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to query rooms", err)
	}
	return out, nil
}

func notFoundOr(entity string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(entity+" not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to get "+entity, err)
}

// keysetTime is NULL on the first page.
func keysetTime(k queries.Keyset) any {
	if k.IsFirst() {
		return nil
	}
	return k.CreatedAt
}
