package port

import (
	"context"

	"meta-ads-gateway/internal/core/domain"
)

// MetaGateway is the outbound port to the Graph API. Implementations
// consume a normalized parameter set, issue exactly one upstream call
// and return either the created entity's id or a *domain.UpstreamError.
// No retries, no interpretation of upstream error codes.
type MetaGateway interface {
	CreateCampaign(ctx context.Context, params domain.Params) (string, error)
	CreateAdSet(ctx context.Context, params domain.Params) (string, error)
	CreateAdCreative(ctx context.Context, params domain.Params) (string, error)
	CreateAd(ctx context.Context, params domain.Params) (string, error)

	// GetCampaignObjective fetches the objective of an existing
	// campaign. Used to confirm the campaign exists before an ad set is
	// attached to it.
	GetCampaignObjective(ctx context.Context, campaignID string) (string, error)

	UploadImage(ctx context.Context, filename, contentType string, data []byte) (string, error)
	ListImages(ctx context.Context) ([]domain.AdImage, error)
	DeleteImage(ctx context.Context, hash string) error
}
