package property

import (
	"strings"

	"staybook/internal/pkg/errs"
)

var (
	ErrInvalidPropertyType = errs.New("unknown property type")
	ErrInvalidRoomType     = errs.New("unknown room type")
)

type Type string

const (
	TypeHotel      Type = "hotel"
	TypeApartment  Type = "apartment"
	TypeGuesthouse Type = "guesthouse"
	TypeVilla      Type = "villa"
	TypeHostel     Type = "hostel"
	TypeChalet     Type = "chalet"
	TypeBnB        Type = "bnb"
)

func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case TypeHotel, TypeApartment, TypeGuesthouse, TypeVilla, TypeHostel, TypeChalet, TypeBnB:
		return t, nil
	default:
		return "", ErrInvalidPropertyType
	}
}

func (t Type) String() string { return string(t) }

type RoomType string

const (
	RoomSingle RoomType = "single"
	RoomDouble RoomType = "double"
	RoomTwin   RoomType = "twin"
	RoomTriple RoomType = "triple"
	RoomFamily RoomType = "family"
	RoomSuite  RoomType = "suite"
	RoomStudio RoomType = "studio"
)

func ParseRoomType(s string) (RoomType, error) {
	t := RoomType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case RoomSingle, RoomDouble, RoomTwin, RoomTriple, RoomFamily, RoomSuite, RoomStudio:
		return t, nil
	default:
		return "", ErrInvalidRoomType
	}
}

func (t RoomType) String() string { return string(t) }
