package meta

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"meta-ads-gateway/internal/config/configs"
	"meta-ads-gateway/internal/core/domain"
)

// Client implements port.MetaGateway against the Graph API over HTTP.
// Credentials and endpoint settings are injected at construction; the
// client keeps no mutable state and is safe for concurrent use.
type Client struct {
	http        *resty.Client
	accountPath string
}

// NewClient builds a Graph API client from the given configuration.
func NewClient(cfg configs.Meta) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/") + "/" + cfg.Version).
		SetTimeout(cfg.Timeout).
		SetQueryParam("access_token", cfg.AccessToken)
	// The Graph API always answers with JSON; force parsing so SetResult
	// decodes even when the response lacks a JSON Content-Type header.
	c.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.ForceContentType("application/json")
		return nil
	})
	return &Client{http: c, accountPath: cfg.AccountPath()}
}

type idResponse struct {
	ID string `json:"id"`
}

// CreateCampaign creates a campaign under the ad account.
func (c *Client) CreateCampaign(ctx context.Context, params domain.Params) (string, error) {
	return c.create(ctx, "campaigns", params)
}

// CreateAdSet creates an ad set under the ad account.
func (c *Client) CreateAdSet(ctx context.Context, params domain.Params) (string, error) {
	return c.create(ctx, "adsets", params)
}

// CreateAdCreative creates an ad creative under the ad account.
func (c *Client) CreateAdCreative(ctx context.Context, params domain.Params) (string, error) {
	return c.create(ctx, "adcreatives", params)
}

// CreateAd creates an ad under the ad account.
func (c *Client) CreateAd(ctx context.Context, params domain.Params) (string, error) {
	return c.create(ctx, "ads", params)
}

// create posts a normalized parameter set to one of the ad account's
// creation edges and returns the created entity's id.
func (c *Client) create(ctx context.Context, edge string, params domain.Params) (string, error) {
	form, err := encodeForm(params)
	if err != nil {
		return "", err
	}
	var out idResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(form).
		SetResult(&out).
		Post("/" + c.accountPath + "/" + edge)
	if err != nil {
		return "", fmt.Errorf("meta api: %s: %w", edge, err)
	}
	if resp.IsError() {
		return "", decodeError(resp)
	}
	return out.ID, nil
}

// GetCampaignObjective fetches the objective of an existing campaign.
func (c *Client) GetCampaignObjective(ctx context.Context, campaignID string) (string, error) {
	var out struct {
		ID        string `json:"id"`
		Objective string `json:"objective"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("fields", "objective").
		SetResult(&out).
		Get("/" + campaignID)
	if err != nil {
		return "", fmt.Errorf("meta api: get campaign: %w", err)
	}
	if resp.IsError() {
		return "", decodeError(resp)
	}
	return out.Objective, nil
}

// UploadImage uploads an image to the ad account's library and returns
// its hash. The response maps the submitted filename to the stored
// image; when the upstream keys the entry differently the single entry
// present is used.
func (c *Client) UploadImage(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	var out struct {
		Images map[string]struct {
			Hash string `json:"hash"`
		} `json:"images"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("file", filename, bytes.NewReader(data)).
		SetFormData(map[string]string{"filename": filename}).
		SetResult(&out).
		Post("/" + c.accountPath + "/adimages")
	if err != nil {
		return "", fmt.Errorf("meta api: upload image: %w", err)
	}
	if resp.IsError() {
		return "", decodeError(resp)
	}
	if img, ok := out.Images[filename]; ok && img.Hash != "" {
		return img.Hash, nil
	}
	for _, img := range out.Images {
		if img.Hash != "" {
			return img.Hash, nil
		}
	}
	return "", fmt.Errorf("meta api: upload image: no hash in response")
}

// ListImages returns the images stored in the ad account's library.
func (c *Client) ListImages(ctx context.Context) ([]domain.AdImage, error) {
	var out struct {
		Data []domain.AdImage `json:"data"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("fields", "hash,name,url,status").
		SetResult(&out).
		Get("/" + c.accountPath + "/adimages")
	if err != nil {
		return nil, fmt.Errorf("meta api: list images: %w", err)
	}
	if resp.IsError() {
		return nil, decodeError(resp)
	}
	return out.Data, nil
}

// DeleteImage removes an image from the ad account's library by hash.
func (c *Client) DeleteImage(ctx context.Context, hash string) error {
	var out struct {
		Success bool `json:"success"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("hash", hash).
		SetResult(&out).
		Delete("/" + c.accountPath + "/adimages")
	if err != nil {
		return fmt.Errorf("meta api: delete image: %w", err)
	}
	if resp.IsError() {
		return decodeError(resp)
	}
	if !out.Success {
		return fmt.Errorf("meta api: delete image: upstream reported failure")
	}
	return nil
}

// encodeForm flattens a parameter set into Graph API form fields.
// Strings pass through verbatim; structured values are sent as JSON,
// which is the encoding the Graph API expects for nested parameters.
func encodeForm(params domain.Params) (map[string]string, error) {
	form := make(map[string]string, len(params))
	for k, v := range params {
		if s, ok := v.(string); ok {
			form[k] = s
			continue
		}
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode param %s: %w", k, err)
		}
		form[k] = string(b)
	}
	return form, nil
}

// decodeError translates a Graph API error payload into a
// *domain.UpstreamError. Responses without the standard error envelope
// become a plain error carrying the HTTP status.
func decodeError(resp *resty.Response) error {
	var envelope struct {
		Error domain.UpstreamError `json:"error"`
	}
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Error.Message != "" {
		return &envelope.Error
	}
	return fmt.Errorf("meta api: unexpected status %d", resp.StatusCode())
}
