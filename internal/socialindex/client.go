// Package socialindex is the HTTP adapter for the hosted social index. It
// implements both the snapshot reader's resolver and the engagement
// locator's page-fetch contract.
package socialindex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"boostoracle/internal/domain"
	engports "boostoracle/internal/engagement/ports"
)

// maxBodyBytes caps index response reads; a page is a few KB at most.
const maxBodyBytes = 1 << 20

// Client calls the index REST API with an API key.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client, mainly for tests.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		if httpc != nil {
			c.httpc = httpc
		}
	}
}

func NewClient(baseURL, apiKey string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("index base URL is required")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("index API key is required")
	}
	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// userResponse and contentResponse mirror the resolver endpoints.
type userResponse struct {
	User struct {
		ID uint64 `json:"id"`
	} `json:"user"`
}

type contentResponse struct {
	Content struct {
		Hash string `json:"hash"`
	} `json:"content"`
}

// eventJSON is one item on any of the three list endpoints. Reaction
// endpoints set reactedAtMs; the others only set createdAtMs.
type eventJSON struct {
	Author struct {
		ID uint64 `json:"id"`
	} `json:"author"`
	Embeds []struct {
		Hash string `json:"hash"`
	} `json:"embeds"`
	CreatedAtMs int64 `json:"createdAtMs"`
	ReactedAtMs int64 `json:"reactedAtMs"`
}

type pageResponse struct {
	Items      []eventJSON `json:"items"`
	NextCursor string      `json:"nextCursor"`
}

// IdentityByAddress resolves a custody address to the index user id.
func (c *Client) IdentityByAddress(ctx context.Context, addr common.Address) (domain.Identity, error) {
	var resp userResponse
	err := c.get(ctx, "/v1/users/by-custody-address", url.Values{"address": {addr.Hex()}}, &resp)
	if err != nil {
		return 0, err
	}
	if resp.User.ID == 0 {
		return 0, fmt.Errorf("no user registered for custody address %s", addr.Hex())
	}
	return domain.Identity(resp.User.ID), nil
}

// ContentByURL resolves a content URL to its canonical hash.
func (c *Client) ContentByURL(ctx context.Context, contentURL string) (domain.ContentRef, error) {
	var resp contentResponse
	err := c.get(ctx, "/v1/content/by-url", url.Values{"url": {contentURL}}, &resp)
	if err != nil {
		return "", err
	}
	if resp.Content.Hash == "" {
		return "", fmt.Errorf("no content indexed for url %q", contentURL)
	}
	return domain.ContentRef(resp.Content.Hash), nil
}

// Amplifications lists repost events for the content.
func (c *Client) Amplifications(ctx context.Context, content domain.ContentRef, cursor string) (engports.Page, error) {
	return c.page(ctx, "/v1/amplifications", url.Values{"content": {string(content)}}, cursor)
}

// PostsByAuthor lists posts authored by the identity.
func (c *Client) PostsByAuthor(ctx context.Context, author domain.Identity, cursor string) (engports.Page, error) {
	return c.page(ctx, "/v1/posts", url.Values{"author": {fmt.Sprintf("%d", author)}}, cursor)
}

// Reactions lists like-reactions for the content.
func (c *Client) Reactions(ctx context.Context, content domain.ContentRef, cursor string) (engports.Page, error) {
	return c.page(ctx, "/v1/reactions", url.Values{"content": {string(content)}, "kind": {"like"}}, cursor)
}

func (c *Client) page(ctx context.Context, path string, query url.Values, cursor string) (engports.Page, error) {
	if cursor != "" {
		query.Set("cursor", cursor)
	}
	var resp pageResponse
	if err := c.get(ctx, path, query, &resp); err != nil {
		return engports.Page{}, err
	}

	page := engports.Page{NextCursor: resp.NextCursor}
	for _, item := range resp.Items {
		ev := engports.Event{
			Author:      domain.Identity(item.Author.ID),
			CreatedAtMs: item.CreatedAtMs,
			ReactedAtMs: item.ReactedAtMs,
		}
		for _, embed := range item.Embeds {
			ev.Embeds = append(ev.Embeds, domain.ContentRef(embed.Hash))
		}
		page.Items = append(page.Items, ev)
	}
	return page, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build index request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("index request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain a little so the connection can be reused.
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		return fmt.Errorf("index request %s: status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode index response %s: %w", path, err)
	}
	return nil
}
