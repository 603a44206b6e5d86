package emotion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client calls the emotion-model HTTP service.
type Client struct {
	BaseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type predictResponse struct {
	PredictedEmotionDelta float64 `json:"predicted_emotion_delta"`
}

func (c *Client) Predict(ctx context.Context, features FeatureVector) (float64, error) {
	body, err := json.Marshal(features)
	if err != nil {
		return 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("emotion model: %w", err)
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("emotion model: %d %s", resp.StatusCode, string(respBody))
	}
	var out predictResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return 0, fmt.Errorf("emotion model: decode response: %w", err)
	}
	return out.PredictedEmotionDelta, nil
}
