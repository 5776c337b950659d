package adsby

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"brandBOS/business/rotation"
)

type AdsbyConfig struct {
	BaseURL   string
	ApiKey    string
	AccountID string
}

// AdsbyRepository is the boundary to the ad platform. Platform-side
// rejections come back as an unapplied result, not an error; errors are
// transport failures only.
type AdsbyRepository struct {
	adsbyConfig AdsbyConfig
	client      *http.Client
}

var _ rotation.AdsPlatform = (*AdsbyRepository)(nil)

func NewAdsbyRepository(cfg AdsbyConfig) *AdsbyRepository {
	return &AdsbyRepository{
		adsbyConfig: cfg,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

type campaignActionPayload struct {
	AccountID  string  `json:"account_id"`
	CampaignID string  `json:"campaign_id"`
	Action     string  `json:"action"`
	Budget     float64 `json:"budget,omitempty"`
}

type campaignActionResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (r *AdsbyRepository) PauseCampaign(ctx context.Context, campaignID string) (rotation.AdsPlatformResult, error) {
	payload := campaignActionPayload{
		AccountID:  r.adsbyConfig.AccountID,
		CampaignID: campaignID,
		Action:     "pause",
	}

	return r.postAction(ctx, campaignID, payload)
}

func (r *AdsbyRepository) ApplyBudget(ctx context.Context, campaignID string, amount float64) (rotation.AdsPlatformResult, error) {
	payload := campaignActionPayload{
		AccountID:  r.adsbyConfig.AccountID,
		CampaignID: campaignID,
		Action:     "set_budget",
		Budget:     amount,
	}

	return r.postAction(ctx, campaignID, payload)
}

func (r *AdsbyRepository) postAction(ctx context.Context, campaignID string, payload campaignActionPayload) (rotation.AdsPlatformResult, error) {
	result := rotation.AdsPlatformResult{CampaignID: campaignID}

	url := r.adsbyConfig.BaseURL + "/v1/campaigns/actions"

	payloadByte, err := json.Marshal(payload)
	if err != nil {
		return result, fmt.Errorf("failed to marshal json payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payloadByte))
	if err != nil {
		return result, err
	}
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Authorization", "Bearer "+r.adsbyConfig.ApiKey)

	res, err := r.client.Do(req)
	if err != nil {
		return result, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return result, err
	}

	var actionRes campaignActionResponse
	if err := json.Unmarshal(body, &actionRes); err != nil {
		return result, fmt.Errorf("failed to decode platform response: %w", err)
	}

	if res.StatusCode >= 200 && res.StatusCode <= 299 && actionRes.Status == "ok" {
		result.Applied = true
		return result, nil
	}

	result.Detail = actionRes.Message
	if result.Detail == "" {
		result.Detail = fmt.Sprintf("platform returned status %d", res.StatusCode)
	}

	return result, nil
}
