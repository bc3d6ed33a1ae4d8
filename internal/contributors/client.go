package contributors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultAPIURL = "https://api.github.com"
	acceptHeader  = "application/vnd.github.v3+json"
)

type Options struct {
	APIURL      string
	Repo        string // "owner/name"
	Timeout     time.Duration
	Concurrency int
	HTTPClient  *http.Client
}

type Client struct {
	apiURL      string
	repo        string
	concurrency int
	httpClient  *http.Client
	logger      *zap.Logger
	now         func() time.Time
}

func NewClient(opt Options, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opt.APIURL == "" {
		opt.APIURL = DefaultAPIURL
	}
	if opt.Timeout <= 0 {
		opt.Timeout = 10 * time.Second
	}
	if opt.Concurrency <= 0 {
		opt.Concurrency = 4
	}
	hc := opt.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opt.Timeout}
	}
	return &Client{
		apiURL:      strings.TrimRight(opt.APIURL, "/"),
		repo:        strings.Trim(opt.Repo, "/"),
		concurrency: opt.Concurrency,
		httpClient:  hc,
		logger:      logger.Named("contributors"),
		now:         time.Now,
	}
}

// Fetch lists the repository contributors and resolves each display name.
// A failed list call fails the whole result; a failed profile call only
// falls back to the login.
func (c *Client) Fetch(ctx context.Context) Result {
	list, err := c.fetchList(ctx)
	if err != nil {
		c.logger.Warn("failed to fetch contributors", zap.String("repo", c.repo), zap.Error(err))
		return Result{Err: err, FetchedAt: c.now()}
	}

	out := make([]Contributor, len(list))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, ac := range list {
		i, ac := i, ac
		g.Go(func() error {
			name, err := c.fetchName(gctx, ac.Login)
			if err != nil {
				c.logger.Debug("failed to fetch user", zap.String("login", ac.Login), zap.Error(err))
			}
			out[i] = convertContributor(ac, name)
			return nil
		})
	}
	_ = g.Wait()

	c.logger.Debug("fetched contributors", zap.Int("count", len(out)))
	return Result{Contributors: out, FetchedAt: c.now()}
}

func (c *Client) fetchList(ctx context.Context) ([]apiContributor, error) {
	if c.repo == "" {
		return nil, errors.New("contributors: missing repo")
	}
	u := fmt.Sprintf("%s/repos/%s/contributors", c.apiURL, c.repo)
	var list []apiContributor
	if err := c.getJSON(ctx, u, &list); err != nil {
		return nil, fmt.Errorf("list contributors: %w", err)
	}
	return list, nil
}

func (c *Client) fetchName(ctx context.Context, login string) (string, error) {
	if login == "" {
		return "", nil
	}
	u := fmt.Sprintf("%s/users/%s", c.apiURL, url.PathEscape(login))
	var user apiUser
	if err := c.getJSON(ctx, u, &user); err != nil {
		return "", fmt.Errorf("user %s: %w", login, err)
	}
	return user.Name, nil
}

func (c *Client) getJSON(ctx context.Context, u string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", acceptHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
