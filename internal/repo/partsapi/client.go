package partsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/go-resty/resty/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tidwall/gjson"

	"github.com/partshub/catalog-service/internal/config"
	"github.com/partshub/catalog-service/internal/models"
	"github.com/partshub/catalog-service/pkg/util"
)

const defaultPageLimit = 100

// Client talks to a parts listing endpoint. FetchAll never fails on
// network trouble alone: it degrades to the bundled static dataset so
// browse sessions always start with some collection.
type Client interface {
	FetchAll(ctx context.Context) ([]models.Part, error)
	FetchByID(ctx context.Context, id string) (*models.Part, error)
	FetchFilterOptions(ctx context.Context) (*models.FilterOptions, error)
}

type client struct {
	http      *resty.Client
	baseURL   string
	pageLimit int
	metrics   *prometheus.HistogramVec
}

func NewClient(cfg *config.Config) Client {
	limit := cfg.Catalog.PageLimit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	metrics, err := util.GetHistogramVec("catalog_fetch_pages", "status")
	if err != nil {
		log.Warnf(context.Background(), "Failed to register fetch metrics: %v", err)
	}
	return &client{
		http:      util.NewRestyClient(),
		baseURL:   strings.TrimRight(cfg.Catalog.BaseURL, "/") + "/api/v1",
		pageLimit: limit,
		metrics:   metrics,
	}
}

func (c *client) observe(status string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.WithLabelValues(status).Observe(time.Since(start).Seconds())
}

func (c *client) FetchAll(ctx context.Context) ([]models.Part, error) {
	var all []models.Part
	page := 1
	for {
		start := time.Now()
		resp, err := c.http.R().
			SetContext(ctx).
			SetQueryParam("page", fmt.Sprint(page)).
			SetQueryParam("limit", fmt.Sprint(c.pageLimit)).
			Get(c.baseURL + "/parts")
		if err != nil {
			c.observe("error", start)
			return c.fallback(ctx, fmt.Errorf("fetch parts page %d: %w", page, err))
		}
		if !resp.IsSuccess() {
			c.observe("error", start)
			return c.fallback(ctx, fmt.Errorf("fetch parts page %d: unexpected status %d", page, resp.StatusCode()))
		}
		c.observe("success", start)

		body := gjson.ParseBytes(resp.Body())
		if !body.Get("success").Bool() {
			break
		}

		var parts []models.Part
		if err := json.Unmarshal([]byte(body.Get("data").Raw), &parts); err != nil {
			return c.fallback(ctx, fmt.Errorf("decode parts page %d: %w", page, err))
		}
		all = append(all, parts...)

		if !body.Get("pagination.hasNextPage").Bool() {
			break
		}
		page++
	}
	return all, nil
}

// fallback swaps in the bundled dataset. Only when even that cannot be
// decoded does the original fetch error escape.
func (c *client) fallback(ctx context.Context, cause error) ([]models.Part, error) {
	log.Warnf(ctx, "Parts listing unavailable, using bundled dataset: %v", cause)
	parts, err := FallbackParts()
	if err != nil {
		return nil, fmt.Errorf("%w (fallback also failed: %v)", cause, err)
	}
	return parts, nil
}

func (c *client) FetchByID(ctx context.Context, id string) (*models.Part, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(c.baseURL + "/parts/" + id)
	if err != nil {
		return nil, fmt.Errorf("fetch part %s: %w", id, err)
	}
	if resp.StatusCode() == 404 {
		return nil, models.ErrNotFound
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("fetch part %s: unexpected status %d", id, resp.StatusCode())
	}

	body := gjson.ParseBytes(resp.Body())
	if !body.Get("success").Bool() {
		return nil, fmt.Errorf("fetch part %s: endpoint reported failure", id)
	}

	var part models.Part
	if err := json.Unmarshal([]byte(body.Get("data").Raw), &part); err != nil {
		return nil, fmt.Errorf("decode part %s: %w", id, err)
	}
	return &part, nil
}

func (c *client) FetchFilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(c.baseURL + "/parts/filters")
	if err != nil {
		return nil, fmt.Errorf("fetch filter options: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("fetch filter options: unexpected status %d", resp.StatusCode())
	}

	body := gjson.ParseBytes(resp.Body())
	var options models.FilterOptions
	if err := json.Unmarshal([]byte(body.Get("data").Raw), &options); err != nil {
		return nil, fmt.Errorf("decode filter options: %w", err)
	}
	return &options, nil
}
