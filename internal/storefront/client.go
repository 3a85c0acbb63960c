package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"content-service/internal/models"
	"content-service/internal/util"

	"go.uber.org/zap"
)

// Client fetches content from the store's query surface. Every fetch
// degrades on failure: listings come back empty and single records come
// back as the error sentinel, so a content-store outage reduces the page
// instead of failing the build.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient creates a storefront content client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		logger:  util.GetLogger(),
	}
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, dest interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}

	return json.NewDecoder(resp.Body).Decode(dest)
}

type productListResponse struct {
	Data []models.Product `json:"data"`
	Meta struct {
		Pagination struct {
			Page      int `json:"page"`
			PageCount int `json:"page_count"`
			Total     int `json:"total"`
		} `json:"pagination"`
	} `json:"meta"`
}

// FetchProducts retrieves the full published catalog for a locale, paging
// through the list endpoint and flattening each record.
func (c *Client) FetchProducts(ctx context.Context, locale string) []ProductView {
	views := []ProductView{}

	for page := 1; ; page++ {
		q := url.Values{}
		q.Set("locale", locale)
		q.Set("page", strconv.Itoa(page))
		q.Set("page_size", "100")

		var resp productListResponse
		if err := c.getJSON(ctx, "/api/v1/products", q, &resp); err != nil {
			c.logger.Warn("Product fetch failed, rendering empty catalog",
				zap.String("locale", locale), zap.Error(err))
			return []ProductView{}
		}

		for i := range resp.Data {
			views = append(views, ProductViewFrom(&resp.Data[i], c.baseURL))
		}

		if page >= resp.Meta.Pagination.PageCount {
			break
		}
	}

	return views
}

// FetchProduct retrieves one product; the error sentinel on any failure
func (c *Client) FetchProduct(ctx context.Context, productSlug, locale string) ProductView {
	q := url.Values{}
	q.Set("locale", locale)

	var resp struct {
		Data *models.Product `json:"data"`
	}
	if err := c.getJSON(ctx, "/api/v1/products/"+url.PathEscape(productSlug), q, &resp); err != nil {
		c.logger.Warn("Product fetch failed",
			zap.String("slug", productSlug), zap.Error(err))
		return ErrorProductView()
	}
	return ProductViewFrom(resp.Data, c.baseURL)
}

type updateListResponse struct {
	Data []models.FactoryUpdate `json:"data"`
	Meta struct {
		Pagination struct {
			Page      int `json:"page"`
			PageCount int `json:"page_count"`
			Total     int `json:"total"`
		} `json:"pagination"`
	} `json:"meta"`
}

// FetchUpdates retrieves one page of factory updates for a locale
func (c *Client) FetchUpdates(ctx context.Context, locale string, page, pageSize int) ([]UpdateView, int) {
	q := url.Values{}
	q.Set("locale", locale)
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))

	var resp updateListResponse
	if err := c.getJSON(ctx, "/api/v1/factory-updates", q, &resp); err != nil {
		c.logger.Warn("Factory-update fetch failed, rendering empty list",
			zap.String("locale", locale), zap.Error(err))
		return []UpdateView{}, 0
	}

	views := make([]UpdateView, 0, len(resp.Data))
	for i := range resp.Data {
		views = append(views, UpdateViewFrom(&resp.Data[i], c.baseURL))
	}
	return views, resp.Meta.Pagination.PageCount
}

// FetchAllUpdates pages through every factory update for a locale
func (c *Client) FetchAllUpdates(ctx context.Context, locale string) []UpdateView {
	all := []UpdateView{}
	for page := 1; ; page++ {
		views, pageCount := c.FetchUpdates(ctx, locale, page, 100)
		all = append(all, views...)
		if page >= pageCount {
			break
		}
	}
	return all
}

// FetchLocales retrieves the configured locales; empty on failure
func (c *Client) FetchLocales(ctx context.Context) []models.Locale {
	var resp struct {
		Data []models.Locale `json:"data"`
	}
	if err := c.getJSON(ctx, "/api/v1/locales", nil, &resp); err != nil {
		c.logger.Warn("Locale fetch failed", zap.Error(err))
		return []models.Locale{}
	}
	return resp.Data
}
