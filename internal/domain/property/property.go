package property

import (
	"math"
	"regexp"
	"strings"
	"time"

	"staybook/internal/pkg/errs"
	"staybook/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrMissingOwner     = errs.New("property owner is required")
	ErrEmptyName        = errs.New("property name cannot be empty")
	ErrNameTooLong      = errs.New("property name exceeds maximum length")
	ErrEmptyRegion      = errs.New("property region cannot be empty")
	ErrInvalidStars     = errs.New("stars must be between 1 and 5")
	ErrInvalidLocation  = errs.New("latitude or longitude out of range")
	ErrInvalidClockTime = errs.New("check-in and check-out times must be formatted as HH:MM")
	ErrNotOwner         = errs.New("property is not owned by actor")
)

const MaxNameLength = 200

var clockTime = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// Details are the owner-editable fields of a property.
type Details struct {
	Name         string
	Address      string
	PostalCode   string
	Country      string
	Region       string
	Latitude     float64
	Longitude    float64
	CheckInTime  string
	CheckOutTime string
	Stars        int
	Type         Type
	Description  string
}

type DetailsPatch struct {
	Name         *string
	Address      *string
	PostalCode   *string
	Country      *string
	Region       *string
	Latitude     *float64
	Longitude    *float64
	CheckInTime  *string
	CheckOutTime *string
	Stars        *int
	Type         *Type
	Description  *string
}

type Property struct {
	id        uuid.UUID
	ownerID   uuid.UUID
	details   Details
	clusterID *int
	createdAt time.Time
	updatedAt time.Time
}

func NewProperty(ownerID uuid.UUID, d Details, now time.Time) (*Property, error) {
	if ownerID == uuid.Nil {
		return nil, ErrMissingOwner
	}
	d, err := validateDetails(d)
	if err != nil {
		return nil, err
	}
	return &Property{
		id:        uuid.New(),
		ownerID:   ownerID,
		details:   d,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructProperty(id, ownerID uuid.UUID, d Details, clusterID *int, createdAt, updatedAt time.Time) *Property {
	return &Property{
		id:        id,
		ownerID:   ownerID,
		details:   d,
		clusterID: clusterID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Update merges p over the current details and revalidates the result.
func (p *Property) Update(dp DetailsPatch, now time.Time) error {
	cur := p.details
	merged := Details{
		Name:         patch.Coalesce(dp.Name, cur.Name),
		Address:      patch.Coalesce(dp.Address, cur.Address),
		PostalCode:   patch.Coalesce(dp.PostalCode, cur.PostalCode),
		Country:      patch.Coalesce(dp.Country, cur.Country),
		Region:       patch.Coalesce(dp.Region, cur.Region),
		Latitude:     patch.Coalesce(dp.Latitude, cur.Latitude),
		Longitude:    patch.Coalesce(dp.Longitude, cur.Longitude),
		CheckInTime:  patch.Coalesce(dp.CheckInTime, cur.CheckInTime),
		CheckOutTime: patch.Coalesce(dp.CheckOutTime, cur.CheckOutTime),
		Stars:        patch.Coalesce(dp.Stars, cur.Stars),
		Type:         patch.Coalesce(dp.Type, cur.Type),
		Description:  patch.Coalesce(dp.Description, cur.Description),
	}
	merged, err := validateDetails(merged)
	if err != nil {
		return err
	}
	p.details = merged
	p.updatedAt = now
	return nil
}

func (p *Property) AssignCluster(clusterID int, now time.Time) {
	p.clusterID = &clusterID
	p.updatedAt = now
}

func (p *Property) IsOwnedBy(actorID uuid.UUID) bool {
	return p.ownerID == actorID
}

func (p *Property) ID() uuid.UUID        { return p.id }
func (p *Property) OwnerID() uuid.UUID   { return p.ownerID }
func (p *Property) Details() Details     { return p.details }
func (p *Property) Region() string       { return p.details.Region }
func (p *Property) Stars() int           { return p.details.Stars }
func (p *Property) Type() Type           { return p.details.Type }
func (p *Property) ClusterID() *int      { return p.clusterID }
func (p *Property) CreatedAt() time.Time { return p.createdAt }
func (p *Property) UpdatedAt() time.Time { return p.updatedAt }

func validateDetails(d Details) (Details, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.Region = strings.TrimSpace(d.Region)
	d.Address = strings.TrimSpace(d.Address)
	d.Country = strings.TrimSpace(d.Country)
	d.PostalCode = strings.TrimSpace(d.PostalCode)
	if d.Name == "" {
		return Details{}, ErrEmptyName
	}
	if len(d.Name) > MaxNameLength {
		return Details{}, ErrNameTooLong
	}
	if d.Region == "" {
		return Details{}, ErrEmptyRegion
	}
	if d.Stars < 1 || d.Stars > 5 {
		return Details{}, ErrInvalidStars
	}
	if _, err := ParseType(string(d.Type)); err != nil {
		return Details{}, err
	}
	if math.Abs(d.Latitude) > 90 || math.Abs(d.Longitude) > 180 {
		return Details{}, ErrInvalidLocation
	}
	if d.CheckInTime == "" {
		d.CheckInTime = "14:00"
	}
	if d.CheckOutTime == "" {
		d.CheckOutTime = "11:00"
	}
	if !clockTime.MatchString(d.CheckInTime) || !clockTime.MatchString(d.CheckOutTime) {
		return Details{}, ErrInvalidClockTime
	}
	return d, nil
}
