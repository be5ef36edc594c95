package repository

import (
	"context"

	"staybook/internal/domain/property"
	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/infra/repository/converter"

	"github.com/google/uuid"
)

const (
	createProperty = `INSERT INTO properties (` + converter.PropertyColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	updateProperty = `UPDATE properties
SET name = $2, address = $3, postal_code = $4, country = $5, region = $6, latitude = $7, longitude = $8,
    check_in_time = $9, check_out_time = $10, stars = $11, property_type = $12, description = $13, updated_at = $14
WHERE id = $1`

	deleteProperty = `DELETE FROM properties WHERE id = $1`

	assignCluster = `UPDATE properties SET cluster_id = $2, updated_at = now() WHERE id = $1`
)

type PropertyRepository struct{}

func NewPropertyRepository() *PropertyRepository {
	return &PropertyRepository{}
}

func (r *PropertyRepository) Create(ctx context.Context, tx db.DBTX, p *property.Property) error {
	d := p.Details()
	var cluster *int32
	if c := p.ClusterID(); c != nil {
		v := int32(*c)
		cluster = &v
	}
	_, err := tx.Exec(ctx, createProperty,
		p.ID(), p.OwnerID(), d.Name, d.Address, d.PostalCode, d.Country, d.Region, d.Latitude, d.Longitude,
		d.CheckInTime, d.CheckOutTime, int16(d.Stars), d.Type.String(), d.Description, cluster,
		p.CreatedAt(), p.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create property", err)
	}
	return nil
}

func (r *PropertyRepository) Update(ctx context.Context, tx db.DBTX, p *property.Property) error {
	d := p.Details()
	tag, err := tx.Exec(ctx, updateProperty,
		p.ID(), d.Name, d.Address, d.PostalCode, d.Country, d.Region, d.Latitude, d.Longitude,
		d.CheckInTime, d.CheckOutTime, int16(d.Stars), d.Type.String(), d.Description, p.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update property", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("property not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteProperty, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete property", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("property not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PropertyRepository) AssignCluster(ctx context.Context, tx db.DBTX, id uuid.UUID, clusterID int) error {
	if _, err := tx.Exec(ctx, assignCluster, id, int32(clusterID)); err != nil {
		return infra.WrapRepoErr("failed to assign property cluster", err)
	}
	return nil
}
