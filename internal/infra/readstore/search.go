package readstore

import (
	"context"

	"staybook/internal/domain/amenity"
	"staybook/internal/domain/booking"
	"staybook/internal/domain/rating"
	"staybook/internal/domain/recommend"
	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/infra/repository/converter"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	candidateProperties = `SELECT p.id, p.name, p.region, p.stars, p.property_type, p.cluster_id,
    COALESCE(s.avg_personal, 0), COALESCE(s.avg_facilities, 0), COALESCE(s.avg_cleanliness, 0),
    COALESCE(s.avg_comfort, 0), COALESCE(s.avg_value_for_money, 0), COALESCE(s.avg_location, 0),
    COALESCE(s.avg_wifi, 0)
FROM properties p LEFT JOIN property_rating_stats s ON s.property_id = p.id
WHERE ($1 = '' OR lower(p.region) = lower($1))
ORDER BY p.created_at, p.id`

	roomsOfProperties = `SELECT ` + converter.RoomColumns + ` FROM rooms rm
WHERE rm.property_id = ANY($1::uuid[]) ORDER BY rm.property_id, rm.id`

	favoriteProfiles = `SELECT f.property_id, p.cluster_id,
    COALESCE((SELECT array_agg(DISTINCT fa.name) FROM rooms rm
              JOIN room_facilities rf ON rf.room_id = rm.id AND rf.presence
              JOIN facilities fa ON fa.id = rf.facility_id
              WHERE rm.property_id = f.property_id), '{}')
FROM favorites f JOIN properties p ON p.id = f.property_id
WHERE f.user_id = $1`
)

type SearchReadStore struct {
	db db.DBTX
}

func NewSearchReadStore(db db.DBTX) *SearchReadStore {
	return &SearchReadStore{db: db}
}

// Candidates loads properties, rooms and occupancy in three round trips and
// stitches them together by property.
func (r *SearchReadStore) Candidates(ctx context.Context, region string, stay booking.DateRange) ([]queries.SearchCandidate, error) {
	candidates, index, err := r.properties(ctx, region)
	if err != nil || len(candidates) == 0 {
		return candidates, err
	}

	ids := make([]uuid.UUID, len(candidates))
	for i := range candidates {
		ids[i] = candidates[i].PropertyID
	}
	rows, err := queryRooms(ctx, r.db, roomsOfProperties, ids)
	if err != nil {
		return nil, err
	}

	roomOwner := make(map[uuid.UUID]int, len(rows))
	roomIDs := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		room, err := converter.RoomToDomain(row)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt room row", err, infra.KindDBFailure)
		}
		i := index[row.PropertyID]
		c := &candidates[i]
		c.Rooms = append(c.Rooms, room.Bookable())
		c.Amenities = c.Amenities.Union(room.Amenities())
		roomOwner[row.ID] = i
		roomIDs = append(roomIDs, row.ID)
	}

	if stay.IsZero() || len(roomIDs) == 0 {
		return candidates, nil
	}
	occ, err := scanOccupancy(ctx, r.db, roomIDs, stay)
	if err != nil {
		return nil, err
	}
	for _, o := range occ {
		c := &candidates[roomOwner[o.RoomID]]
		c.Occupancy = append(c.Occupancy, o)
	}
	return candidates, nil
}

func (r *SearchReadStore) properties(ctx context.Context, region string) ([]queries.SearchCandidate, map[uuid.UUID]int, error) {
	rows, err := r.db.Query(ctx, candidateProperties, region)
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to query candidates", err)
	}
	defer rows.Close()

	var (
		out   []queries.SearchCandidate
		index = map[uuid.UUID]int{}
	)
	for rows.Next() {
		var (
			c       queries.SearchCandidate
			stars   int16
			cluster *int32
			scores  rating.Scores
		)
		if err := rows.Scan(&c.PropertyID, &c.Name, &c.Region, &stars, &c.Type, &cluster,
			&scores[0], &scores[1], &scores[2], &scores[3], &scores[4], &scores[5], &scores[6]); err != nil {
			return nil, nil, infra.WrapRepoErr("failed to scan candidate", err)
		}
		c.Stars = int(stars)
		c.ClusterID = intPtr(cluster)
		c.Ratings = scores
		index[c.PropertyID] = len(out)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, infra.WrapRepoErr("failed to query candidates", err)
	}
	return out, index, nil
}

func (r *SearchReadStore) Weights(ctx context.Context, userID uuid.UUID) (*rating.Weights, error) {
	return optionalWeights(ctx, r.db, userID)
}

func (r *SearchReadStore) FavoriteProfiles(ctx context.Context, userID uuid.UUID) ([]recommend.Favorite, error) {
	rows, err := r.db.Query(ctx, favoriteProfiles, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query favorites", err)
	}
	defer rows.Close()

	var out []recommend.Favorite
	for rows.Next() {
		var (
			f       recommend.Favorite
			cluster *int32
			names   []string
		)
		if err := rows.Scan(&f.PropertyID, &cluster, &names); err != nil {
			return nil, infra.WrapRepoErr("failed to scan favorite", err)
		}
		f.ClusterID = intPtr(cluster)
		if f.Amenities, err = amenity.ParseSet(names); err != nil {
			return nil, infra.WrapRepoErr("corrupt facility name", err, infra.KindDBFailure)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to query favorites", err)
	}
	return out, nil
}

func intPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	i := int(*v)
	return &i
}
