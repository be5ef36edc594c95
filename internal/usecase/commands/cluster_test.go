//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/rating"
	"staybook/internal/pkg/errs"
	"staybook/internal/testutil/fakeuow"
	commandsmock "staybook/internal/testutil/mock/commands"
	"staybook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func clusterInput(t *testing.T, prices ...int64) commands.ClusterInput {
	t.Helper()
	rooms := make([]booking.Room, 0, len(prices))
	for _, p := range prices {
		rooms = append(rooms, booking.Room{ID: uuid.New(), Capacity: 2, Price: mustMoney(t, p, "eur")})
	}
	return commands.ClusterInput{
		PropertyID: uuid.New(),
		Rooms:      rooms,
		Ratings:    rating.Scores{8, 7, 9, 8, 6, 9, 7},
	}
}

// byMeanPrice buckets on the first feature so assignments are predictable.
func byMeanPrice(_ context.Context, features []float64) (int, error) {
	switch {
	case features[0] < 60:
		return 0, nil
	case features[0] < 150:
		return 1, nil
	default:
		return 2, nil
	}
}

func TestCluster_RefreshClusters(t *testing.T) {
	ctx := context.Background()

	t.Run("success: every property gets a cluster", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := commandsmock.NewMockClusterSource(ctrl)
		model := commandsmock.NewMockClusterModel(ctrl)
		store := fakeuow.New()

		cheap := clusterInput(t, 4000, 5000)
		mid := clusterInput(t, 9000, 12000, 15000)
		lux := clusterInput(t, 30000)
		empty := commands.ClusterInput{PropertyID: uuid.New()}

		source.EXPECT().ClusterInputs(gomock.Any()).Return([]commands.ClusterInput{cheap, mid, lux, empty}, nil)
		model.EXPECT().Predict(gomock.Any(), gomock.Any()).DoAndReturn(byMeanPrice).Times(4)

		uc := commands.NewClusterUseCase(store, source, model, discardLogger())
		result, err := uc.RefreshClusters(ctx)

		require.NoError(t, err)
		assert.Equal(t, &commands.ClusterRefreshResult{Properties: 4, Assigned: 4}, result)
		for id, want := range map[uuid.UUID]int{cheap.PropertyID: 0, mid.PropertyID: 1, lux.PropertyID: 2, empty.PropertyID: 0} {
			got, ok := store.Cluster(id)
			require.True(t, ok)
			assert.Equal(t, want, got)
		}
	})

	t.Run("success: feature vector is mean price then ratings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := commandsmock.NewMockClusterSource(ctrl)
		model := commandsmock.NewMockClusterModel(ctrl)
		in := clusterInput(t, 8000, 12000)

		source.EXPECT().ClusterInputs(gomock.Any()).Return([]commands.ClusterInput{in}, nil)
		model.EXPECT().
			Predict(gomock.Any(), []float64{100, 8, 7, 9, 8, 6, 9, 7}).
			Return(3, nil)

		_, err := commands.NewClusterUseCase(fakeuow.New(), source, model, discardLogger()).RefreshClusters(ctx)
		require.NoError(t, err)
	})

	t.Run("error: prediction failure writes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := commandsmock.NewMockClusterSource(ctrl)
		model := commandsmock.NewMockClusterModel(ctrl)
		store := fakeuow.New()
		a, b := clusterInput(t, 4000), clusterInput(t, 30000)

		source.EXPECT().ClusterInputs(gomock.Any()).Return([]commands.ClusterInput{a, b}, nil)
		model.EXPECT().Predict(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f []float64) (int, error) {
			if f[0] > 100 {
				return 0, errors.New("model server returned 503")
			}
			return 1, nil
		}).MaxTimes(2)

		_, err := commands.NewClusterUseCase(store, source, model, discardLogger()).RefreshClusters(ctx)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrUnavailable))
		assert.Zero(t, store.Calls(fakeuow.OpWithin))
		_, ok := store.Cluster(a.PropertyID)
		assert.False(t, ok)
	})

	t.Run("error: write failure rolls back earlier assignments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := commandsmock.NewMockClusterSource(ctrl)
		model := commandsmock.NewMockClusterModel(ctrl)
		store := fakeuow.New()
		a, b := clusterInput(t, 4000), clusterInput(t, 30000)

		source.EXPECT().ClusterInputs(gomock.Any()).Return([]commands.ClusterInput{a, b}, nil)
		model.EXPECT().Predict(gomock.Any(), gomock.Any()).DoAndReturn(byMeanPrice).Times(2)
		store.FailNext(fakeuow.OpAssignCluster, nil)
		store.FailNext(fakeuow.OpAssignCluster, errors.New("connection reset"))

		_, err := commands.NewClusterUseCase(store, source, model, discardLogger()).RefreshClusters(ctx)

		require.Error(t, err)
		assert.Equal(t, 2, store.Calls(fakeuow.OpAssignCluster))
		_, okA := store.Cluster(a.PropertyID)
		_, okB := store.Cluster(b.PropertyID)
		assert.False(t, okA)
		assert.False(t, okB)
	})

	t.Run("error: source failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := commandsmock.NewMockClusterSource(ctrl)
		model := commandsmock.NewMockClusterModel(ctrl)

		source.EXPECT().ClusterInputs(gomock.Any()).Return(nil, errors.New("db down"))

		result, err := commands.NewClusterUseCase(fakeuow.New(), source, model, discardLogger()).RefreshClusters(ctx)

		require.Error(t, err)
		assert.Nil(t, result)
	})
}
