package tests

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/guards/pkg/guard"
	"github.com/ib-77/guards/pkg/guard/chain"
	"github.com/ib-77/guards/pkg/guard/solo"
)

type tvRequest struct {
	channel uint32
	volume  float32
}

// TestSetTVDirectly drives the channel and volume guard chains the way a
// remote-control handler would, one request at a time.
func TestSetTVDirectly(t *testing.T) {
	cases := []struct {
		channel uint32
		volume  float32
		wantErr string
	}{
		{channel: 5, volume: 0.5},
		{channel: 2, volume: 0.7},
		{channel: 0, volume: 0.5, wantErr: "Invalid channel!"},
		{channel: 13, volume: 0.5, wantErr: "Channel 13 is blocked!"},
		{channel: 7, volume: 0, wantErr: "TV does not support mute!"},
		{channel: 7, volume: 0.05, wantErr: "Volume must be more than 10%!"},
		{channel: 7, volume: 1.1, wantErr: "Volume cannot be more than 100%!"},
	}

	for _, tc := range cases {
		err := setTV(tc.channel, tc.volume)
		if tc.wantErr == "" {
			assert.NoError(t, err, "channel=%d volume=%v", tc.channel, tc.volume)
		} else {
			assert.EqualError(t, err, tc.wantErr, "channel=%d volume=%v", tc.channel, tc.volume)
		}
	}
}

// TestRemoteControlSummary collapses a batch of requests into display strings
// and checks how many were accepted.
func TestRemoteControlSummary(t *testing.T) {
	requests := []tvRequest{
		{channel: 5, volume: 0.5},
		{channel: 13, volume: 0.5},
		{channel: 0, volume: 0.7},
		{channel: 9, volume: 0.9},
	}

	results := describeRequests(requests)

	fmt.Println("Remote control results:")
	for i, res := range results {
		fmt.Printf("%d. %s\n", i+1, res)
	}

	accepted := 0
	rejected := 0
	for _, res := range results {
		if strings.HasPrefix(res, "rejected") {
			rejected++
		} else {
			accepted++
		}
	}

	assert.Equal(t, len(requests), len(results))
	assert.Equal(t, 2, accepted)
	assert.Equal(t, 2, rejected)
}

func TestVolumeGuardDirectly(t *testing.T) {
	ok := solo.Between(float32(0.5), 0.1, 1.0, guard.Inclusive, "volume out of range")
	assert.True(t, ok.IsSuccess())
	assert.Equal(t, float32(0.5), ok.Value())

	muted := solo.NotEqualTo(float32(0), 0, "TV does not support mute!")
	assert.True(t, muted.IsFailure())
	assert.Equal(t, "TV does not support mute!", muted.Message())
}

func setTV(channel uint32, volume float32) error {
	_, err := chain.New(channel).
		Between(1, 15, guard.Inclusive, "Invalid channel!").
		NotEqualTo(13, "Channel 13 is blocked!").
		Finalize()
	if err != nil {
		return err
	}

	_, err = chain.New(volume).
		NotEqualTo(0, "TV does not support mute!").
		GreaterOrEqual(0.1, "Volume must be more than 10%!").
		LessOrEqual(1.0, "Volume cannot be more than 100%!").
		Finalize()
	return err
}

// describeRequests turns each request into a display string, keeping the
// first guard failure as the rejection reason.
func describeRequests(requests []tvRequest) []string {
	out := make([]string, 0, len(requests))
	for _, r := range requests {
		g := chain.New(r.channel).
			Between(1, 15, guard.Inclusive, "Invalid channel!").
			NotEqualTo(13, "Channel 13 is blocked!")

		out = append(out, chain.Finally(g,
			func(ch uint32) string { return fmt.Sprintf("channel %d", ch) },
			func(err error) string { return "rejected: " + err.Error() },
		))
	}
	return out
}
