package port

import (
	"context"

	"meta-ads-gateway/internal/core/domain"
)

// AdsUseCase defines the business operations exposed by the gateway.
// This interface is the primary port into the application; the HTTP
// adapter depends on it and mocks implement it in tests.
type AdsUseCase interface {
	// CreateCampaign validates the request and creates a campaign
	// upstream, returning the new campaign id.
	CreateCampaign(ctx context.Context, req domain.CampaignCreateRequest) (string, error)

	// CreateAdSet validates the request against the cross-field ad set
	// rules and creates an ad set upstream, returning the new ad set id.
	CreateAdSet(ctx context.Context, req domain.AdSetCreateRequest) (string, error)

	// CreateAdCreative validates the request and creates an ad creative
	// upstream, returning the new creative id.
	CreateAdCreative(ctx context.Context, req domain.AdCreativeCreateRequest) (string, error)

	// CreateAd validates the request and creates an ad upstream,
	// returning the new ad id.
	CreateAd(ctx context.Context, req domain.AdCreateRequest) (string, error)

	// UploadImage stores an image in the ad account's library and
	// returns its upstream hash.
	UploadImage(ctx context.Context, filename, contentType string, data []byte) (string, error)

	// ListImages returns the images available in the ad account.
	ListImages(ctx context.Context) ([]domain.AdImage, error)

	// DeleteImage removes an image from the ad account by hash.
	DeleteImage(ctx context.Context, hash string) error
}
