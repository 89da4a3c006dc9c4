package helper

import (
	"testing"
	"time"

	"khmer_calendar/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartCacheWarmer(t *testing.T) {
	warmed := make(chan struct{}, 1)
	require.NoError(t, StartCacheWarmer("@every 1h", func() {
		select {
		case warmed <- struct{}{}:
		default:
		}
	}))
	t.Cleanup(StopSchedulers)

	select {
	case <-warmed:
	case <-time.After(time.Second):
		t.Fatal("warm did not run at startup")
	}
}

func TestStartCacheWarmer_InvalidSpec(t *testing.T) {
	err := StartCacheWarmer("every now and then", func() {})
	assert.ErrorContains(t, err, "invalid cache warm spec")
}

func TestStartDayRolloverScheduler(t *testing.T) {
	require.NoError(t, StartDayRolloverScheduler(utils.ICT, func(time.Time) {}))
	assert.NotNil(t, rolloverScheduler)

	StopSchedulers()
	assert.Nil(t, rolloverScheduler)
	assert.Nil(t, warmScheduler)
}
