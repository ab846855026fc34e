package stockapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/config"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/domain"
)

const defaultUserAgent = "crypto-tracker/1.0 (+https://github.com/NastyaGoryachaya/crypto-tracker)"

// сколько байт тела ответа попадает в текст ошибки
const errBodyLimit = 512

type Client struct {
	cfg        config.CoinGeckoConfig
	httpClient *http.Client
}

// NewClient - Создаёт нового клиента для работы с API CoinGecko.
func NewClient(cfg config.CoinGeckoConfig) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// FetchPrices - одним запросом simple/price получает цены по идентификаторам фида.
// В результате только монеты с пригодной ценой; Name и Symbol не заполняются.
func (c *Client) FetchPrices(ctx context.Context, feedIDs []string) (map[string]domain.Quote, error) {
	if len(feedIDs) == 0 {
		return map[string]domain.Quote{}, nil
	}

	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	u = u.JoinPath("simple", "price")

	currency := c.currency()
	q := u.Query()
	q.Set("ids", strings.Join(feedIDs, ","))
	q.Set("vs_currencies", currency)
	if c.cfg.IncludeExtra {
		q.Set("include_market_cap", "true")
		q.Set("include_24hr_vol", "true")
		q.Set("include_24hr_change", "true")
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	ua := c.cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	req.Header.Set("User-Agent", ua)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("request failed: %s: %s", resp.Status, truncate(body, errBodyLimit))
	}

	var data map[string]map[string]json.RawMessage
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	result := make(map[string]domain.Quote, len(data))
	for id, fields := range data {
		price, ok := parseNumber(fields[currency])
		if !ok {
			continue
		}
		quote := domain.Quote{Price: price}
		if c.cfg.IncludeExtra {
			quote.MarketCap = optionalNumber(fields[currency+"_market_cap"])
			quote.Volume24h = optionalNumber(fields[currency+"_24h_vol"])
			quote.Change24h = optionalNumber(fields[currency+"_24h_change"])
		}
		result[id] = quote
	}
	return result, nil
}

func (c *Client) currency() string {
	cur := strings.ToLower(strings.TrimSpace(c.cfg.Currency))
	if cur == "" {
		return "usd"
	}
	return cur
}

// parseNumber - число или строка с числом; null, NaN и бесконечности не принимаются
func parseNumber(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return 0, false
		}
		s = n.String()
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func optionalNumber(raw json.RawMessage) *float64 {
	v, ok := parseNumber(raw)
	if !ok {
		return nil
	}
	return &v
}

func truncate(b []byte, n int) string {
	s := strings.TrimSpace(string(b))
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
