package readstore

import (
	"context"

	"staybook/internal/domain/booking"
	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/infra/repository/converter"
	"staybook/internal/usecase/commands"

	"github.com/google/uuid"
)

const allRooms = `SELECT ` + converter.RoomColumns + ` FROM rooms rm ORDER BY rm.property_id, rm.id`

// ClusterSource feeds the periodic cluster refresh from the catalog and the
// rating aggregates. Properties without rooms are skipped.
type ClusterSource struct {
	db     db.DBTX
	search *SearchReadStore
}

func NewClusterSource(db db.DBTX) *ClusterSource {
	return &ClusterSource{db: db, search: NewSearchReadStore(db)}
}

func (s *ClusterSource) ClusterInputs(ctx context.Context) ([]commands.ClusterInput, error) {
	candidates, _, err := s.search.properties(ctx, "")
	if err != nil {
		return nil, err
	}
	rows, err := queryRooms(ctx, s.db, allRooms)
	if err != nil {
		return nil, err
	}

	rooms := make(map[uuid.UUID][]booking.Room, len(candidates))
	for _, row := range rows {
		room, err := converter.RoomToDomain(row)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt room row", err, infra.KindDBFailure)
		}
		rooms[row.PropertyID] = append(rooms[row.PropertyID], room.Bookable())
	}

	out := make([]commands.ClusterInput, 0, len(rooms))
	for _, c := range candidates {
		if len(rooms[c.PropertyID]) == 0 {
			continue
		}
		out = append(out, commands.ClusterInput{
			PropertyID: c.PropertyID,
			Rooms:      rooms[c.PropertyID],
			Ratings:    c.Ratings,
		})
	}
	return out, nil
}
