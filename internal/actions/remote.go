package actions

import (
	"context"

	"github.com/footprint-tools/platform-cli/internal/dispatchers"
	"github.com/footprint-tools/platform-cli/internal/domain"
	"github.com/footprint-tools/platform-cli/internal/errtrace"
)

// Remote is a catalog command. It hands its parsed input to the API
// client and returns the client's exit code.
type Remote struct {
	api      domain.APIClient
	viaMulti bool
}

func NewRemote(api domain.APIClient) *Remote {
	return &Remote{api: api}
}

func (r *Remote) Run(ctx context.Context, inv *dispatchers.Invocation) (int, error) {
	return r.api.Invoke(ctx, domain.APIRequest{
		Command:     inv.Name,
		Args:        inv.Args,
		Flags:       inv.Flags.Raw(),
		Interactive: inv.Options.Interactive,
		ViaMulti:    r.viaMulti,
	})
}

func (r *Remote) SetRunningViaMulti(v bool) {
	r.viaMulti = v
}

// UnavailableAPI is the API client used when none is configured. Every
// call fails.
type UnavailableAPI struct {
	BaseURL string
}

func (u UnavailableAPI) Invoke(_ context.Context, req domain.APIRequest) (int, error) {
	return 1, errtrace.Errorf("No API client is configured: cannot run %q against %s", req.Command, u.BaseURL)
}

// Verify interfaces
var (
	_ dispatchers.MultiAware = (*Remote)(nil)
	_ domain.APIClient       = UnavailableAPI{}
)
