package response

import (
	"time"

	"staybook/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

const dateLayout = "2006-01-02"

// Timestamps leave the API as unix seconds; stay dates as calendar days.
var copyOption = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: int64(0),
			Fn: func(src any) (any, error) {
				return src.(time.Time).Unix(), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: "",
			Fn: func(src any) (any, error) {
				return src.(time.Time).Format(dateLayout), nil
			},
		},
	},
}

// Map copies a read model into the response type T by field name.
func Map[T any](src any) (T, error) {
	var dst T
	if err := copier.CopyWithOption(&dst, src, copyOption); err != nil {
		return dst, errs.Wrapf(err, "map %T to %T", src, dst)
	}
	return dst, nil
}

// Page is a keyset-paginated list.
type Page[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"next_cursor,omitempty"`
}
