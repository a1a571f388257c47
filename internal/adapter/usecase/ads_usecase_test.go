package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"meta-ads-gateway/internal/core/domain"
)

// gatewayMock implements port.MetaGateway for tests.
type gatewayMock struct {
	mock.Mock
}

func (m *gatewayMock) CreateCampaign(ctx context.Context, params domain.Params) (string, error) {
	args := m.Called(ctx, params)
	return args.String(0), args.Error(1)
}

func (m *gatewayMock) CreateAdSet(ctx context.Context, params domain.Params) (string, error) {
	args := m.Called(ctx, params)
	return args.String(0), args.Error(1)
}

func (m *gatewayMock) CreateAdCreative(ctx context.Context, params domain.Params) (string, error) {
	args := m.Called(ctx, params)
	return args.String(0), args.Error(1)
}

func (m *gatewayMock) CreateAd(ctx context.Context, params domain.Params) (string, error) {
	args := m.Called(ctx, params)
	return args.String(0), args.Error(1)
}

func (m *gatewayMock) GetCampaignObjective(ctx context.Context, campaignID string) (string, error) {
	args := m.Called(ctx, campaignID)
	return args.String(0), args.Error(1)
}

func (m *gatewayMock) UploadImage(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, filename, contentType, data)
	return args.String(0), args.Error(1)
}

func (m *gatewayMock) ListImages(ctx context.Context) ([]domain.AdImage, error) {
	args := m.Called(ctx)
	images, _ := args.Get(0).([]domain.AdImage)
	return images, args.Error(1)
}

func (m *gatewayMock) DeleteImage(ctx context.Context, hash string) error {
	return m.Called(ctx, hash).Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validAdSetRequest() domain.AdSetCreateRequest {
	return domain.AdSetCreateRequest{
		Name:             "Summer Sale",
		OptimizationGoal: "LINK_CLICKS",
		BillingEvent:     "LINK_CLICKS",
		CampaignID:       "123",
		Status:           "ACTIVE",
		Targeting: domain.Targeting{
			GeoLocations: map[string]any{"countries": []string{"US"}},
		},
	}
}

func TestCreateAdSetForwardsNormalizedParams(t *testing.T) {
	gw := &gatewayMock{}
	gw.On("GetCampaignObjective", mock.Anything, "123").
		Return("OUTCOME_TRAFFIC", nil)
	gw.On("CreateAdSet", mock.Anything, mock.MatchedBy(func(p domain.Params) bool {
		return p["name"] == "Summer Sale" && p["campaign_id"] == "123"
	})).Return("adset-1", nil)

	svc := NewAdsUseCase(gw, discardLogger())
	id, err := svc.CreateAdSet(context.Background(), validAdSetRequest())
	require.NoError(t, err)
	assert.Equal(t, "adset-1", id)
	gw.AssertExpectations(t)
}

func TestCreateAdSetValidationFailureSkipsGateway(t *testing.T) {
	gw := &gatewayMock{}

	svc := NewAdsUseCase(gw, discardLogger())
	req := validAdSetRequest()
	req.OptimizationGoal = "APP_INSTALLS" // promoted object missing

	_, err := svc.CreateAdSet(context.Background(), req)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	gw.AssertNotCalled(t, "GetCampaignObjective", mock.Anything, mock.Anything)
	gw.AssertNotCalled(t, "CreateAdSet", mock.Anything, mock.Anything)
}

func TestCreateAdSetUnknownCampaignPassedThrough(t *testing.T) {
	upstream := &domain.UpstreamError{Message: "Unsupported get request.", Code: 100, Subcode: 33}
	gw := &gatewayMock{}
	gw.On("GetCampaignObjective", mock.Anything, "123").Return("", upstream)

	svc := NewAdsUseCase(gw, discardLogger())
	_, err := svc.CreateAdSet(context.Background(), validAdSetRequest())
	var uErr *domain.UpstreamError
	require.ErrorAs(t, err, &uErr)
	assert.Equal(t, 100, uErr.Code)
	gw.AssertNotCalled(t, "CreateAdSet", mock.Anything, mock.Anything)
}

func TestCreateCampaign(t *testing.T) {
	gw := &gatewayMock{}
	gw.On("CreateCampaign", mock.Anything, mock.MatchedBy(func(p domain.Params) bool {
		cats, ok := p["special_ad_categories"].([]string)
		return ok && len(cats) == 1 && cats[0] == "NONE"
	})).Return("camp-9", nil)

	svc := NewAdsUseCase(gw, discardLogger())
	id, err := svc.CreateCampaign(context.Background(), domain.CampaignCreateRequest{
		Name:      "Q4 Push",
		Objective: "OUTCOME_SALES",
		Status:    "PAUSED",
	})
	require.NoError(t, err)
	assert.Equal(t, "camp-9", id)
}

func TestCreateAdUpstreamErrorPassedThrough(t *testing.T) {
	upstream := &domain.UpstreamError{Message: "Invalid parameter", Code: 100}
	gw := &gatewayMock{}
	gw.On("CreateAd", mock.Anything, mock.Anything).Return("", upstream)

	svc := NewAdsUseCase(gw, discardLogger())
	_, err := svc.CreateAd(context.Background(), domain.AdCreateRequest{
		Name:     "Ad",
		AdSetID:  "42",
		Creative: map[string]any{"creative_id": "7"},
	})
	var uErr *domain.UpstreamError
	require.ErrorAs(t, err, &uErr)
	assert.Equal(t, "Invalid parameter", uErr.Message)
}

func TestUploadImage(t *testing.T) {
	gw := &gatewayMock{}
	gw.On("UploadImage", mock.Anything, "banner.png", "image/png", []byte{1, 2}).
		Return("hash-1", nil)

	svc := NewAdsUseCase(gw, discardLogger())
	hash, err := svc.UploadImage(context.Background(), "banner.png", "image/png", []byte{1, 2})
	require.NoError(t, err)
	assert.Equal(t, "hash-1", hash)
}
