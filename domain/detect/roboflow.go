package detect

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/lemus-D/clashBot/domain/board"
)

const defaultEndpoint = "https://detect.roboflow.com"

// apiKeyEnv is consulted when the configured key is empty.
const apiKeyEnv = "ROBOFLOW_API_KEY"

// RoboflowClient calls the hosted detection model over HTTP. The frame
// is PNG-encoded, base64'd and posted to the model's infer endpoint;
// predictions come back as center+size boxes and are converted to
// corner form.
type RoboflowClient struct {
	httpClient    *http.Client
	endpoint      string
	modelID       string
	apiKey        string
	minConfidence float64
	logger        *slog.Logger
}

// NewRoboflowClient returns a client for the given model. An empty
// apiKey falls back to the ROBOFLOW_API_KEY environment variable.
// logger may be nil.
func NewRoboflowClient(modelID, apiKey string, minConfidence float64, logger *slog.Logger) *RoboflowClient {
	if apiKey == "" {
		apiKey = os.Getenv(apiKeyEnv)
	}
	return &RoboflowClient{
		httpClient:    &http.Client{Timeout: 10 * time.Second},
		endpoint:      defaultEndpoint,
		modelID:       modelID,
		apiKey:        apiKey,
		minConfidence: minConfidence,
		logger:        logger,
	}
}

// SetEndpoint overrides the inference endpoint (tests, self-hosted).
func (c *RoboflowClient) SetEndpoint(endpoint string) {
	c.endpoint = strings.TrimRight(endpoint, "/")
}

type prediction struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Confidence float64 `json:"confidence"`
	Class      string  `json:"class"`
}

type inferResponse struct {
	Predictions []prediction `json:"predictions"`
}

// Detect posts the frame to the model and returns its detections with
// confidence at or above the configured floor.
func (c *RoboflowClient) Detect(ctx context.Context, frame *image.RGBA) ([]board.RawDetection, error) {
	if frame == nil {
		return nil, fmt.Errorf("detect: nil frame")
	}
	if c.apiKey == "" {
		return nil, fmt.Errorf("detect: missing API key (set %s)", apiKeyEnv)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, frame); err != nil {
		return nil, fmt.Errorf("detect: encode frame: %w", err)
	}
	body := base64.StdEncoding.EncodeToString(buf.Bytes())

	u := fmt.Sprintf("%s/%s?api_key=%s", c.endpoint, c.modelID, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("detect: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("detect: infer request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("detect: infer status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var parsed inferResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("detect: decode response: %w", err)
	}

	dets := make([]board.RawDetection, 0, len(parsed.Predictions))
	for _, p := range parsed.Predictions {
		if p.Confidence < c.minConfidence {
			continue
		}
		dets = append(dets, board.RawDetection{
			Class: p.Class,
			X1:    p.X - p.Width/2,
			Y1:    p.Y - p.Height/2,
			X2:    p.X + p.Width/2,
			Y2:    p.Y + p.Height/2,
		})
	}
	if c.logger != nil {
		c.logger.Debug("inference", "predictions", len(parsed.Predictions), "kept", len(dets))
	}
	return dets, nil
}

var _ Source = (*RoboflowClient)(nil)
