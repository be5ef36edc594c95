package commands

import (
	"context"
	"log/slog"

	"staybook/internal/domain/pricing"
	"staybook/internal/domain/property"
	"staybook/internal/pkg/config"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/shared"
)

// RoomClassifier labels a room's price against the price model's prediction.
type RoomClassifier struct {
	model  PriceModel
	cfg    config.PricingConfig
	logger *slog.Logger
}

func NewRoomClassifier(model PriceModel, cfg config.Config, logger *slog.Logger) *RoomClassifier {
	return &RoomClassifier{model: model, cfg: cfg.Pricing, logger: logger}
}

// Classify sets the room's price rating. A model failure is returned as
// unavailable and leaves the room untouched.
func (c *RoomClassifier) Classify(ctx context.Context, room *property.Room, pc *shared.PricingContext) error {
	features := pricing.RoomFeatures{
		Capacity:     room.Capacity(),
		Stars:        pc.Stars,
		ReviewCount:  pc.ReviewCount,
		PropertyType: pc.PropertyType,
		Region:       pc.Region,
		RoomType:     room.Type().String(),
		Amenities:    room.Amenities(),
	}
	vector := c.model.Schema().Vector(features)

	mctx, cancel := context.WithTimeout(ctx, c.cfg.ModelTimeout)
	predicted, err := c.model.Predict(mctx, vector)
	cancel()
	if err != nil {
		c.logger.Error("price model prediction failed",
			slog.String("room_id", room.ID().String()),
			slog.String("error", err.Error()))
		return errs.Unavailable(errs.Wrap(err, "predict room price"))
	}

	label := pricing.Classify(predicted, room.Price().Major(), c.tolerance())
	room.SetPriceRating(label)
	return nil
}

func (c *RoomClassifier) tolerance() pricing.Tolerance {
	if c.cfg.Tolerance > 0 {
		if t, err := pricing.NewTolerance(c.cfg.Tolerance); err == nil {
			return t
		}
	}
	return c.model.Tolerance()
}
