package commands

//go:generate mockgen -source=cluster.go -destination=../../testutil/mock/commands/cluster_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"sync"

	"staybook/internal/domain/recommend"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const clusterPredictConcurrency = 8

type ClusterRefreshResult struct {
	Properties int
	Assigned   int
}

type ClusterCommands interface {
	RefreshClusters(ctx context.Context) (*ClusterRefreshResult, error)
}

type clusterUseCaseImpl struct {
	uow    shared.UnitOfWork
	source ClusterSource
	model  ClusterModel
	logger *slog.Logger
}

func NewClusterUseCase(uow shared.UnitOfWork, source ClusterSource, model ClusterModel, logger *slog.Logger) ClusterCommands {
	return &clusterUseCaseImpl{uow: uow, source: source, model: model, logger: logger}
}

// RefreshClusters predicts a cluster id for every property and stores them in
// one transaction. Any prediction failure aborts the run without writing.
func (uc *clusterUseCaseImpl) RefreshClusters(ctx context.Context) (*ClusterRefreshResult, error) {
	inputs, err := uc.source.ClusterInputs(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "load cluster inputs")
	}

	var (
		mu       sync.Mutex
		assigned = make(map[uuid.UUID]int, len(inputs))
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(clusterPredictConcurrency)
	for _, in := range inputs {
		g.Go(func() error {
			id, err := uc.model.Predict(gctx, recommend.ClusterFeatures(in.Rooms, in.Ratings))
			if err != nil {
				return errs.Unavailable(errs.Wrapf(err, "predict cluster for property %s", in.PropertyID))
			}
			mu.Lock()
			assigned[in.PropertyID] = id
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, in := range inputs {
			if err := tx.Properties().AssignCluster(ctx, tx.DB(), in.PropertyID, assigned[in.PropertyID]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("cluster refresh completed",
		slog.Int("properties", len(inputs)),
		slog.Int("assigned", len(assigned)))
	return &ClusterRefreshResult{Properties: len(inputs), Assigned: len(assigned)}, nil
}
