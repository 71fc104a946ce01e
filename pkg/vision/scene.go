package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"
	xdraw "golang.org/x/image/draw"

	"github.com/Musoye/ecoflow-backend/pkg/common"
)

const (
	defaultSceneTimeout = 30 * time.Second
	defaultSceneModel   = "gemini-1.5-flash"

	// images above this dimension get downscaled before upload
	maxImageDimension = 1024

	sceneMaxAttempts     = 2
	sceneRetryBackoff    = 500 * time.Millisecond
	sceneTemperature     = 0.0
	sceneMaxOutputTokens = 10
)

type SceneConfig struct {
	BaseURL string
	Model   string
	APIKey  string
	Timeout time.Duration
}

// SceneClient asks a generative vision model to count people in an image.
// The model replies with free-form text, so the count is recovered by
// digit extraction rather than structured parsing.
type SceneClient struct {
	config     SceneConfig
	httpClient *http.Client
}

func NewSceneClient(config SceneConfig) (*SceneClient, error) {
	if config.BaseURL == "" {
		return nil, errors.New("scene service base URL is required")
	}
	if config.APIKey == "" {
		return nil, errors.New("scene service API key is required")
	}
	if config.Model == "" {
		config.Model = defaultSceneModel
	}
	if config.Timeout == 0 {
		config.Timeout = defaultSceneTimeout
	}
	return &SceneClient{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}, nil
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generatePart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateRequest struct {
	Contents         []generateContent `json:"contents"`
	GenerationConfig generationConfig  `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *SceneClient) CountPeople(ctx context.Context, imageData []byte, capacity uint) (int, error) {
	logger := common.GetLoggerWith(common.LoggerNameVisionClient)

	payload, err := c.prepareImage(imageData)
	if err != nil {
		return 0, err
	}

	prompt := fmt.Sprintf("Count people. Capacity: %d. Return only the number.", capacity)

	var text string
	var lastErr error
	for attempt := 0; attempt < sceneMaxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return 0, ctx.Err()
			case <-time.After(sceneRetryBackoff):
			}
		}
		text, lastErr = c.generate(ctx, prompt, payload)
		if lastErr == nil {
			break
		}
		logger.Warn("Scene model call failed", zap.Int("attempt", attempt+1), zap.Error(lastErr))
	}
	if lastErr != nil {
		return 0, lastErr
	}

	count := ParseCount(text)
	logger.Info("Scene estimate received", zap.String("text", text), zap.Int("count", count))
	return count, nil
}

// ParseCount joins every digit of the reply in order, so "approx 12 people"
// parses as 12. A reply without digits counts as one person; that keeps the
// downstream saved-amount ratio defined instead of failing the pipeline.
func ParseCount(text string) int {
	var digits strings.Builder
	for _, r := range text {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 1
	}
	count, err := strconv.Atoi(digits.String())
	if err != nil {
		return 1
	}
	return count
}

// prepareImage decodes the upload and downscales it when either dimension
// exceeds maxImageDimension, preserving aspect ratio.
func (c *SceneClient) prepareImage(data []byte) (*inlineData, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= maxImageDimension && height <= maxImageDimension {
		return &inlineData{
			MimeType: http.DetectContentType(data),
			Data:     base64.StdEncoding.EncodeToString(data),
		}, nil
	}

	scale := float64(maxImageDimension) / float64(max(width, height))
	dst := image.NewRGBA(image.Rect(0, 0, int(float64(width)*scale), int(float64(height)*scale)))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)

	buf := &bytes.Buffer{}
	if err := jpeg.Encode(buf, dst, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("encode resized image: %w", err)
	}
	return &inlineData{
		MimeType: "image/jpeg",
		Data:     base64.StdEncoding.EncodeToString(buf.Bytes()),
	}, nil
}

func (c *SceneClient) generate(ctx context.Context, prompt string, img *inlineData) (string, error) {
	reqBody := generateRequest{
		Contents: []generateContent{
			{Parts: []generatePart{{Text: prompt}, {InlineData: img}}},
		},
		GenerationConfig: generationConfig{
			Temperature:     sceneTemperature,
			MaxOutputTokens: sceneMaxOutputTokens,
		},
	}
	raw, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("build scene request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.config.BaseURL, c.config.Model, c.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("build scene request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read scene response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("scene service returned status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("invalid scene response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("scene service returned no candidates")
	}
	return strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text), nil
}
