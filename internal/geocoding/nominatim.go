package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/prefeitura-rio/app-adulto-mayor/internal/utils"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/utils/httpclient"
)

// NominatimClient calls the OpenStreetMap Nominatim reverse endpoint
type NominatimClient struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewNominatimClient creates a client for baseURL (without trailing /reverse)
func NewNominatimClient(baseURL, userAgent string, timeout time.Duration) *NominatimClient {
	return &NominatimClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		client:    httpclient.New(timeout),
	}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

// Reverse returns the display name for the point, or "" when Nominatim has
// no match.
func (n *NominatimClient) Reverse(ctx context.Context, lat, lng float64) (string, error) {
	ctx, span := utils.TraceExternalService(ctx, "nominatim", "reverse")
	defer span.End()

	query := url.Values{}
	query.Set("format", "json")
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/reverse?"+query.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build reverse request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if n.userAgent != "" {
		req.Header.Set("User-Agent", n.userAgent)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		return "", fmt.Errorf("reverse request failed: %w", err)
	}
	defer resp.Body.Close()

	utils.AddSpanAttribute(span, "http.status_code", resp.StatusCode)
	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("reverse request returned status %d", resp.StatusCode)
		utils.RecordErrorInSpan(span, err, nil)
		return "", err
	}

	var body reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode reverse response: %w", err)
	}
	return body.DisplayName, nil
}
