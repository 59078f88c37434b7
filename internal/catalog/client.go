package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultTimeout = 8 * time.Second

// ErrNoRemote is returned when no API base URL is configured. Callers fall
// through to their local sources.
var ErrNoRemote = errors.New("catalog: no remote configured")

// Client issues read calls against the remote catalog API.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// ListQuery narrows a product listing call.
type ListQuery struct {
	Page  int
	Limit int
	Sort  string // upstream field name, e.g. "createdAt"
	Order string // "asc" or "desc"
}

// NewClient constructs a catalog client. An empty baseURL yields a client
// whose calls all return ErrNoRemote.
func NewClient(baseURL string, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		log:     log,
	}
}

// Categories fetches every catalog category.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	raw, err := c.get(ctx, nil, "categories")
	if err != nil {
		return nil, err
	}
	return DecodeCategories(raw), nil
}

// Collections fetches every collection summary.
func (c *Client) Collections(ctx context.Context) ([]Collection, error) {
	raw, err := c.get(ctx, nil, "collections")
	if err != nil {
		return nil, err
	}
	return DecodeCollections(raw), nil
}

// CollectionByID fetches one collection by route token. A response that
// decodes to an entity without identity is reported as not found.
func (c *Client) CollectionByID(ctx context.Context, token string) (Collection, bool, error) {
	raw, err := c.get(ctx, nil, "collections", token)
	if err != nil {
		return Collection{}, false, err
	}
	entity := ExtractObject(raw)
	if entity == nil {
		return Collection{}, false, nil
	}
	var col Collection
	if err := json.Unmarshal(entity, &col); err != nil {
		return Collection{}, false, nil
	}
	return col, col.Valid(), nil
}

// CollectionProducts fetches the products of one collection.
func (c *Client) CollectionProducts(ctx context.Context, token string, q ListQuery) ([]Product, error) {
	raw, err := c.get(ctx, q.values(), "collections", token, "products")
	if err != nil {
		return nil, err
	}
	return DecodeProducts(raw), nil
}

// ProductsByCategory fetches the products of one category.
func (c *Client) ProductsByCategory(ctx context.Context, id int64, q ListQuery) ([]Product, error) {
	raw, err := c.get(ctx, q.values(), "categories", strconv.FormatInt(id, 10), "products")
	if err != nil {
		return nil, err
	}
	return DecodeProducts(raw), nil
}

// Products fetches the full product listing.
func (c *Client) Products(ctx context.Context, q ListQuery) ([]Product, error) {
	raw, err := c.get(ctx, q.values(), "products")
	if err != nil {
		return nil, err
	}
	return DecodeProducts(raw), nil
}

func (q ListQuery) values() url.Values {
	vals := url.Values{}
	if q.Page > 0 {
		vals.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		vals.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Sort != "" {
		vals.Set("sort", q.Sort)
	}
	if q.Order != "" {
		vals.Set("order", q.Order)
	}
	return vals
}

func (c *Client) get(ctx context.Context, query url.Values, parts ...string) (json.RawMessage, error) {
	if c == nil || c.baseURL == "" {
		return nil, ErrNoRemote
	}
	endpoint, err := url.JoinPath(c.baseURL, parts...)
	if err != nil {
		return nil, err
	}
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("catalog request failed", zap.String("url", endpoint), zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		c.log.Warn("catalog request rejected",
			zap.String("url", endpoint),
			zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("catalog: %s status %d: %s", strings.Join(parts, "/"), resp.StatusCode, drainBody(resp.Body))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, err
	}
	c.log.Debug("catalog request",
		zap.String("url", endpoint),
		zap.Duration("took", time.Since(start)),
		zap.Int("bytes", len(body)))
	return body, nil
}

func drainBody(r io.Reader) string {
	if r == nil {
		return ""
	}
	b, _ := io.ReadAll(io.LimitReader(r, 256))
	return strings.TrimSpace(string(b))
}
