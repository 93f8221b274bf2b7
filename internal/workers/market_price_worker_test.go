package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-fuel-dashboard/internal/logger"
	"github.com/MKhiriev/go-fuel-dashboard/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMarketPriceWorker_CollectsOnStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockMarketPriceService(ctrl)

	collected := make(chan struct{})
	svc.EXPECT().CollectMarketPrices(gomock.Any()).DoAndReturn(func(ctx context.Context) (int64, error) {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline, "collection must be bounded by a timeout")
		close(collected)
		return 3, nil
	})

	// a yearly schedule never ticks during the test
	w, err := NewMarketPriceWorker(svc, "@yearly", logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w.Run(ctx)

	select {
	case <-collected:
	case <-time.After(2 * time.Second):
		t.Fatal("market prices were not collected on start")
	}
}

func TestMarketPriceWorker_JobRecoversAndSkipsOverlap(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockMarketPriceService(ctrl)

	started := make(chan struct{})
	release := make(chan struct{})
	svc.EXPECT().CollectMarketPrices(gomock.Any()).DoAndReturn(func(context.Context) (int64, error) {
		close(started)
		<-release
		panic("malformed quote")
	}).Times(1)

	w, err := NewMarketPriceWorker(svc, "@yearly", logger.Nop())
	require.NoError(t, err)

	job := w.job(context.Background())

	done := make(chan struct{})
	go func() {
		defer close(done)
		job.Run()
	}()
	<-started

	// второй запуск пропускается, пока первый не завершился
	job.Run()
	close(release)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not return after panic")
	}
}

func TestMarketPriceWorker_Collect(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockMarketPriceService(ctrl)

	w, err := NewMarketPriceWorker(svc, "@daily", logger.Nop())
	require.NoError(t, err)

	t.Run("service error is logged", func(t *testing.T) {
		svc.EXPECT().CollectMarketPrices(gomock.Any()).Return(int64(0), errors.New("feed down"))
		w.collect(context.Background())
	})

	t.Run("cancelled context skips collection", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// no expectation: a call would fail the test
		w.collect(ctx)
	})
}

func TestNewMarketPriceWorker_Schedule(t *testing.T) {
	tests := []struct {
		name     string
		schedule string
		want     string
		wantErr  bool
	}{
		{name: "cron expression", schedule: "*/15 * * * *", want: "*/15 * * * *"},
		{name: "descriptor", schedule: "@every 30m", want: "@every 30m"},
		{name: "empty uses default", schedule: "", want: DefaultMarketPriceSchedule},
		{name: "seconds field is rejected", schedule: "0 0 */6 * * *", wantErr: true},
		{name: "garbage", schedule: "often", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := NewMarketPriceWorker(nil, tt.schedule, logger.Nop())
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, w)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, w.schedule)
		})
	}
}
