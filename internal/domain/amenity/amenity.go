package amenity

import (
	"errors"
	"strings"
)

var ErrUnknownAmenity = errors.New("unknown amenity")

// Amenity is a room facility flag. The order of the constants is the column
// order the price model was trained with and must never be rearranged.
type Amenity int

const (
	Breakfast Amenity = iota
	CityView
	DailyHousekeeping
	SatelliteChannels
	OutdoorDiningArea
	Bathtub
	IroningFacilities
	Soundproofing
	SunTerrace
	TileMarbleFloor
	Slippers
	TumbleDryer
	PetsAllowed
	Heating
	Desk
	OutdoorFurniture
	SmokeAlarm
	GardenView
	Oven
	Microwave
	SeatingArea
	Sofa
	PrivateEntrance
	Iron
	CoffeeMachine
	Stovetop
	FireExtinguishers
	ElectricKettle
	Garden
	Kitchenware
	WashingMachine
	Balcony
	WoodenParquetFloor
	TeaCoffeeMaker
	DiningArea
	CableChannels
	AirConditioning
	DiningTable
	ClothesRack
	BathtubOrShower
	Refrigerator

	Count = int(Refrigerator) + 1
)

var names = [Count]string{
	"breakfast",
	"city_view",
	"daily_housekeeping",
	"satellite_channels",
	"outdoor_dining_area",
	"bathtub",
	"ironing_facilities",
	"soundproofing",
	"sun_terrace",
	"tile_marble_floor",
	"slippers",
	"tumble_dryer",
	"pets_allowed",
	"heating",
	"desk",
	"outdoor_furniture",
	"smoke_alarm",
	"garden_view",
	"oven",
	"microwave",
	"seating_area",
	"sofa",
	"private_entrance",
	"iron",
	"coffee_machine",
	"stovetop",
	"fire_extinguishers",
	"electric_kettle",
	"garden",
	"kitchenware",
	"washing_machine",
	"balcony",
	"wooden_parquet_floor",
	"tea_coffee_maker",
	"dining_area",
	"cable_channels",
	"air_conditioning",
	"dining_table",
	"clothes_rack",
	"bathtub_or_shower",
	"refrigerator",
}

func (a Amenity) String() string {
	if a < 0 || int(a) >= Count {
		return "unknown"
	}
	return names[a]
}

func All() []Amenity {
	out := make([]Amenity, Count)
	for i := range out {
		out[i] = Amenity(i)
	}
	return out
}

func Parse(name string) (Amenity, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range names {
		if candidate == n {
			return Amenity(i), nil
		}
	}
	return 0, ErrUnknownAmenity
}

// Set holds one presence flag per amenity.
type Set [Count]bool

func NewSet(items ...Amenity) Set {
	var s Set
	for _, a := range items {
		if a >= 0 && int(a) < Count {
			s[a] = true
		}
	}
	return s
}

func ParseSet(values []string) (Set, error) {
	var s Set
	for _, n := range values {
		a, err := Parse(n)
		if err != nil {
			return Set{}, err
		}
		s[a] = true
	}
	return s, nil
}

func (s Set) Has(a Amenity) bool {
	return a >= 0 && int(a) < Count && s[a]
}

func (s Set) Names() []string {
	out := make([]string, 0, Count)
	for i, present := range s {
		if present {
			out = append(out, names[i])
		}
	}
	return out
}

// Union returns the flags present in either set.
func (s Set) Union(o Set) Set {
	var out Set
	for i := range s {
		out[i] = s[i] || o[i]
	}
	return out
}

// Overlap is the dot product of the two presence vectors.
func (s Set) Overlap(o Set) int {
	n := 0
	for i := range s {
		if s[i] && o[i] {
			n++
		}
	}
	return n
}
