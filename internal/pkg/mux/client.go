package mux

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Asset Mux 资产的标准化元数据
type Asset struct {
	ID          string       `json:"id"`
	Status      string       `json:"status"`
	Duration    float64      `json:"duration"`
	AspectRatio string       `json:"aspect_ratio"`
	CreatedAt   string       `json:"created_at"`
	PlaybackIDs []PlaybackID `json:"playback_ids"`
	Tracks      []Track      `json:"tracks"`
}

type PlaybackID struct {
	ID     string `json:"id"`
	Policy string `json:"policy"`
}

type Track struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	Duration float64 `json:"duration"`
}

// APIError 上游Mux接口返回的非2xx响应，状态码原样透传给调用方
type APIError struct {
	StatusCode int
	Status     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mux api error: %s", e.Status)
}

type Client struct {
	baseURL     string
	tokenID     string
	tokenSecret string
	httpClient  *http.Client
}

func NewClient(tokenID, tokenSecret, baseURL string) *Client {
	return &Client{
		baseURL:     baseURL,
		tokenID:     tokenID,
		tokenSecret: tokenSecret,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
	}
}

// GetAsset 根据ID获取资产元数据。
// 播放器URL里通常是playback ID，所以先按playback ID解析出资产ID，
// 失败时再把传入的ID当作资产ID直接查询。
func (c *Client) GetAsset(ctx context.Context, id string) (*Asset, error) {
	assetID := id
	if resolved, err := c.resolvePlaybackID(ctx, id); err == nil {
		assetID = resolved
	}

	resp, err := c.get(ctx, "/video/v1/assets/"+assetID)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var body struct {
		Data Asset `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode asset: %w", err)
	}
	return &body.Data, nil
}

func (c *Client) resolvePlaybackID(ctx context.Context, id string) (string, error) {
	resp, err := c.get(ctx, "/video/v1/playback-ids/"+id)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &APIError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var body struct {
		Data struct {
			Object struct {
				ID string `json:"id"`
			} `json:"object"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode playback id: %w", err)
	}
	return body.Data.Object.ID, nil
}

func (c *Client) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.tokenID, c.tokenSecret)
	req.Header.Set("Content-Type", "application/json")
	return c.httpClient.Do(req)
}

// FormatDuration 把秒数格式化为 分:秒 展示串，如 754.3 -> "12:34"
func FormatDuration(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
