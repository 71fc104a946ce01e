package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/textproto"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/Musoye/ecoflow-backend/pkg/common"
)

const defaultCrowdTimeout = 20 * time.Second

type CrowdConfig struct {
	BaseURL string
	Timeout time.Duration
}

// CrowdClient posts an image to the external density-estimation service and
// returns its sahi_count.
type CrowdClient struct {
	config     CrowdConfig
	httpClient *http.Client
}

func NewCrowdClient(config CrowdConfig) (*CrowdClient, error) {
	if config.BaseURL == "" {
		return nil, errors.New("crowd service base URL is required")
	}
	if config.Timeout == 0 {
		config.Timeout = defaultCrowdTimeout
	}
	return &CrowdClient{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}, nil
}

type crowdPrediction struct {
	SahiCount int `json:"sahi_count"`
}

func (c *CrowdClient) CountPeople(ctx context.Context, img ImageUpload) (int, error) {
	logger := common.GetLoggerWith(common.LoggerNameVisionClient)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	contentType := img.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, img.Filename))
	hdr.Set("Content-Type", contentType)

	part, err := mw.CreatePart(hdr)
	if err != nil {
		return 0, fmt.Errorf("build multipart request: %w", err)
	}
	if _, err := part.Write(img.Data); err != nil {
		return 0, fmt.Errorf("build multipart request: %w", err)
	}
	if err := mw.Close(); err != nil {
		return 0, fmt.Errorf("build multipart request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/predict", body)
	if err != nil {
		return 0, fmt.Errorf("build crowd request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			logger.Warn("Crowd service timed out", zap.Duration("timeout", c.config.Timeout))
			return 0, ErrCrowdTimeout
		}
		var opErr *net.OpError
		if errors.As(err, &opErr) {
			logger.Warn("Crowd service unreachable", zap.Error(err))
			return 0, ErrCrowdUnavailable
		}
		return 0, fmt.Errorf("unexpected error calling crowd service: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("read crowd response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.Warn("Crowd service returned non-200",
			zap.Int("status_code", resp.StatusCode), zap.String("body", string(raw)))
		return 0, &CrowdStatusError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var prediction crowdPrediction
	if err := json.Unmarshal(raw, &prediction); err != nil {
		return 0, fmt.Errorf("invalid crowd response: %w", err)
	}

	logger.Info("Crowd estimate received",
		zap.String("filename", img.Filename), zap.Int("sahi_count", prediction.SahiCount))

	return prediction.SahiCount, nil
}
