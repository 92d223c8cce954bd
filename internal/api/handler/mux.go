package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/course_go_server/config"
	"github.com/qs3c/course_go_server/internal/pkg/mux"
	"github.com/qs3c/course_go_server/internal/pkg/response"
)

type MuxHandler struct {
	client *mux.Client
	cfg    *config.MuxConfig
}

func NewMuxHandler(cfg *config.MuxConfig) *MuxHandler {
	return &MuxHandler{
		client: mux.NewClient(cfg.TokenID, cfg.TokenSecret, cfg.BaseURL),
		cfg:    cfg,
	}
}

// GetVideoAsset 查询Mux资产元数据（上传页用来回填时长）
// GET /api/v1/mux/video?assetId=
func (h *MuxHandler) GetVideoAsset(c *gin.Context) {
	assetID := c.Query("assetId")
	if assetID == "" {
		response.ParamError(c, "缺少assetId参数")
		return
	}

	if h.cfg.TokenID == "" || h.cfg.TokenSecret == "" {
		response.ServerError(c, "Mux凭证未配置")
		return
	}

	asset, err := h.client.GetAsset(c.Request.Context(), assetID)
	if err != nil {
		var apiErr *mux.APIError
		if errors.As(err, &apiErr) {
			response.UpstreamError(c, apiErr.StatusCode, "Mux接口请求失败: "+apiErr.Status)
			return
		}
		response.ServerError(c, "")
		return
	}

	response.Success(c, gin.H{
		"asset": gin.H{
			"id":                 asset.ID,
			"status":             asset.Status,
			"duration":           asset.Duration,
			"formatted_duration": mux.FormatDuration(asset.Duration),
			"aspect_ratio":       asset.AspectRatio,
			"created_at":         asset.CreatedAt,
			"playback_ids":       asset.PlaybackIDs,
			"tracks":             asset.Tracks,
		},
	})
}
