package usecase

import (
	"context"
	"log/slog"

	"meta-ads-gateway/internal/core/domain"
	"meta-ads-gateway/internal/core/port"
)

// AdsUseCase implements the gateway's business operations: validate and
// normalize the caller's request, then forward the normalized parameter
// set through the MetaGateway port. It holds no state between requests;
// any number of invocations may run concurrently.
type AdsUseCase struct {
	gw     port.MetaGateway
	logger *slog.Logger
}

// NewAdsUseCase creates a usecase backed by the provided gateway.
func NewAdsUseCase(gw port.MetaGateway, logger *slog.Logger) *AdsUseCase {
	return &AdsUseCase{gw: gw, logger: logger}
}

// CreateCampaign validates the campaign request and creates it upstream.
func (u *AdsUseCase) CreateCampaign(ctx context.Context, req domain.CampaignCreateRequest) (string, error) {
	params, err := req.Normalize()
	if err != nil {
		return "", err
	}
	id, err := u.gw.CreateCampaign(ctx, params)
	if err != nil {
		return "", err
	}
	u.logger.Info("campaign created", slog.String("campaign_id", id))
	return id, nil
}

// CreateAdSet validates the ad set request, confirms the parent
// campaign exists upstream, then creates the ad set.
func (u *AdsUseCase) CreateAdSet(ctx context.Context, req domain.AdSetCreateRequest) (string, error) {
	if req.BidAmount != nil && req.BidStrategy == "" {
		// Without a strategy the amount never reaches the upstream
		// call; tell the operator instead of failing the request.
		u.logger.Warn("bid_amount ignored: no bid_strategy supplied")
	}
	params, err := req.Normalize()
	if err != nil {
		return "", err
	}

	objective, err := u.gw.GetCampaignObjective(ctx, req.CampaignID)
	if err != nil {
		return "", err
	}
	u.logger.Debug("parent campaign resolved",
		slog.String("campaign_id", req.CampaignID),
		slog.String("objective", objective))

	id, err := u.gw.CreateAdSet(ctx, params)
	if err != nil {
		return "", err
	}
	u.logger.Info("ad set created", slog.String("ad_set_id", id))
	return id, nil
}

// CreateAdCreative validates the creative request and creates it upstream.
func (u *AdsUseCase) CreateAdCreative(ctx context.Context, req domain.AdCreativeCreateRequest) (string, error) {
	params, err := req.Normalize()
	if err != nil {
		return "", err
	}
	id, err := u.gw.CreateAdCreative(ctx, params)
	if err != nil {
		return "", err
	}
	u.logger.Info("ad creative created", slog.String("creative_id", id))
	return id, nil
}

// CreateAd validates the ad request and creates it upstream.
func (u *AdsUseCase) CreateAd(ctx context.Context, req domain.AdCreateRequest) (string, error) {
	params, err := req.Normalize()
	if err != nil {
		return "", err
	}
	id, err := u.gw.CreateAd(ctx, params)
	if err != nil {
		return "", err
	}
	u.logger.Info("ad created", slog.String("ad_id", id))
	return id, nil
}

// UploadImage stores an image in the ad account's library.
func (u *AdsUseCase) UploadImage(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	hash, err := u.gw.UploadImage(ctx, filename, contentType, data)
	if err != nil {
		return "", err
	}
	u.logger.Info("image uploaded",
		slog.String("filename", filename),
		slog.String("hash", hash))
	return hash, nil
}

// ListImages returns the images available in the ad account.
func (u *AdsUseCase) ListImages(ctx context.Context) ([]domain.AdImage, error) {
	return u.gw.ListImages(ctx)
}

// DeleteImage removes an image from the ad account by hash.
func (u *AdsUseCase) DeleteImage(ctx context.Context, hash string) error {
	if err := u.gw.DeleteImage(ctx, hash); err != nil {
		return err
	}
	u.logger.Info("image deleted", slog.String("hash", hash))
	return nil
}
