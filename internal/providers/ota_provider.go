package providers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Abishekkhanal/channelManager2/internal/constants"
	"github.com/Abishekkhanal/channelManager2/internal/models/entities"
	"github.com/Abishekkhanal/channelManager2/internal/models/gorm"
)

// Dispatch deadlines. Both are hard: a call that exceeds them resolves to a
// failed outcome, never a hang.
const (
	SyncTimeout           = 30 * time.Second
	TestConnectionTimeout = 15 * time.Second
)

// OTAProvider is the uniform adapter contract. Implementations translate a
// room snapshot into the partner's wire format and dispatch it with the
// partner's auth scheme. Transport and partner-side errors are folded into
// the outcome; Sync and TestConnection never return Go errors.
type OTAProvider interface {
	// Sync pushes the availability snapshot to the partner
	Sync(ctx context.Context, config *gorm.OTAConfig, rooms []entities.RoomAvailability) SyncOutcome

	// TestConnection probes the partner endpoint with the configured
	// credentials. Read-only: no log entry, no last_sync_at mutation.
	TestConnection(ctx context.Context, config *gorm.OTAConfig) ConnectionOutcome

	// PartnerType returns the partner identifier this adapter serves
	PartnerType() constants.OTAPartner
}

// SyncOutcome is the result of one sync dispatch
type SyncOutcome struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	RawResponse string `json:"raw_response,omitempty"`
}

// ConnectionOutcome is the result of a connection probe
type ConnectionOutcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ProviderError represents a partner-dispatch error
type ProviderError struct {
	Code    string
	Message string
	Details string
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// transportError classifies a failed round trip. Deadline overruns get their
// own code so log messages distinguish timeouts from refused connections.
func transportError(err error) *ProviderError {
	code := constants.ErrCodeNetworkError
	if errors.Is(err, context.DeadlineExceeded) {
		code = constants.ErrCodeTimeout
	}
	return &ProviderError{
		Code:    code,
		Message: constants.GetErrorMessage(code),
		Err:     err,
	}
}

// handleHTTPError converts non-2xx responses to ProviderError
func handleHTTPError(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &ProviderError{
			Code:    constants.ErrCodeInvalidCredentials,
			Message: constants.GetErrorMessage(constants.ErrCodeInvalidCredentials),
			Details: string(body),
		}
	case http.StatusNotFound:
		return &ProviderError{
			Code:    constants.ErrCodeHotelNotFound,
			Message: constants.GetErrorMessage(constants.ErrCodeHotelNotFound),
			Details: string(body),
		}
	case http.StatusTooManyRequests:
		return &ProviderError{
			Code:    constants.ErrCodeRateLimited,
			Message: constants.GetErrorMessage(constants.ErrCodeRateLimited),
			Details: string(body),
		}
	default:
		return &ProviderError{
			Code:    constants.ErrCodePartnerRejected,
			Message: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, string(body)),
			Details: string(body),
		}
	}
}

// readBody drains a bounded amount of the partner response for the outcome's
// raw_response field
func readBody(resp *http.Response) string {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return string(body)
}

// Registry maps the closed set of partner kinds to their adapters. A single
// http.Client is shared by every adapter; per-call deadlines come from
// context, so the client itself carries no timeout.
type Registry struct {
	providers map[constants.OTAPartner]OTAProvider
}

// NewRegistry builds the registry over one process-wide HTTP client
func NewRegistry(client *http.Client) *Registry {
	if client == nil {
		client = &http.Client{}
	}

	r := &Registry{providers: make(map[constants.OTAPartner]OTAProvider)}
	for _, p := range []OTAProvider{
		NewBookingComProvider(client),
		NewAgodaProvider(client),
		NewAirbnbProvider(client),
	} {
		r.providers[p.PartnerType()] = p
	}
	return r
}

// Lookup resolves an adapter from a stored ota_name. Names are normalized so
// the laxness of configuration creation (any string is accepted) only
// surfaces at dispatch time.
func (r *Registry) Lookup(otaName string) (OTAProvider, bool) {
	p, ok := r.providers[constants.NormalizePartner(otaName)]
	return p, ok
}

// Partners lists the registered partner kinds
func (r *Registry) Partners() []constants.OTAPartner {
	kinds := make([]constants.OTAPartner, 0, len(r.providers))
	for k := range r.providers {
		kinds = append(kinds, k)
	}
	return kinds
}
