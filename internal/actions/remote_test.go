package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/platform-cli/internal/domain"
	"github.com/footprint-tools/platform-cli/internal/errtrace"
)

type fakeAPI struct {
	requests []domain.APIRequest
	code     int
}

func (f *fakeAPI) Invoke(_ context.Context, req domain.APIRequest) (int, error) {
	f.requests = append(f.requests, req)
	return f.code, nil
}

func TestRemote_ForwardsRequest(t *testing.T) {
	api := &fakeAPI{code: 4}
	remote := NewRemote(api)
	ti := newInvocation(t, "environment:list", []string{"extra"}, "--project=abc", "--pipe")

	code, err := remote.Run(context.Background(), ti.inv)
	require.NoError(t, err)
	require.Equal(t, 4, code)

	remote.SetRunningViaMulti(true)
	_, err = remote.Run(context.Background(), ti.inv)
	require.NoError(t, err)

	require.Equal(t, []domain.APIRequest{
		{
			Command:     "environment:list",
			Args:        []string{"extra"},
			Flags:       []string{"--project=abc", "--pipe"},
			Interactive: true,
		},
		{
			Command:     "environment:list",
			Args:        []string{"extra"},
			Flags:       []string{"--project=abc", "--pipe"},
			Interactive: true,
			ViaMulti:    true,
		},
	}, api.requests)
}

func TestUnavailableAPI(t *testing.T) {
	api := UnavailableAPI{BaseURL: "https://api.platform.sh"}

	code, err := api.Invoke(context.Background(), domain.APIRequest{Command: "project:list"})

	require.Equal(t, 1, code)
	require.EqualError(t, err, `No API client is configured: cannot run "project:list" against https://api.platform.sh`)
	_, _, ok := errtrace.OriginOf(err)
	require.True(t, ok, "the error carries its origin for debug traces")
}
