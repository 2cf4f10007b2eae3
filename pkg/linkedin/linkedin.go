// Package linkedin checks LinkedIn profile URLs and extracts the display
// name from the public profile page.
package linkedin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/synapse-hq/synapse/pkg/cache"
)

const (
	userAgent    = "Mozilla/5.0 (compatible; SynapseBot/1.0; +https://example.com/bot)"
	acceptHeader = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	maxPageBytes = 2 << 20
	cachePrefix  = "linkedin:"
)

const (
	ReasonInvalidURL = "Please enter a valid URL."
	ReasonNotProfile = "That doesn't look like a valid LinkedIn profile URL. Please use a link like https://www.linkedin.com/in/your-handle"
	ReasonNoName     = "We couldn't extract a name from that profile. Please double-check your URL."
)

var (
	ErrMalformedURL  = errors.New(ReasonInvalidURL)
	ErrNotProfileURL = errors.New(ReasonNotProfile)
)

var (
	hostRe    = regexp.MustCompile(`(?i)(^|\.)linkedin\.com$`)
	profileRe = regexp.MustCompile(`(?i)^/in/[A-Za-z0-9\-%_.]+$`)
	slugSepRe = regexp.MustCompile(`[-_]+`)
)

// Result is what the client renders after validation.
type Result struct {
	Valid  bool   `json:"valid"`
	Name   string `json:"name,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// CheckShape verifies that raw is an absolute http(s) URL pointing at a
// linkedin.com /in/<handle> page. No network access.
func CheckShape(raw string) error {
	_, err := parseProfileURL(raw)
	return err
}

func parseProfileURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, ErrMalformedURL
	}
	if !hostRe.MatchString(u.Hostname()) {
		return nil, ErrNotProfileURL
	}
	if !profileRe.MatchString(strings.TrimRight(u.EscapedPath(), "/")) {
		return nil, ErrNotProfileURL
	}
	return u, nil
}

// Validator fetches profile pages over HTTP.
type Validator struct {
	client *http.Client
	cache  cache.Cache
	ttl    time.Duration
	log    *zap.Logger
}

// NewValidator builds a Validator. c may be nil to disable caching.
func NewValidator(client *http.Client, c cache.Cache, ttl time.Duration, log *zap.Logger) *Validator {
	if client == nil {
		client = &http.Client{Timeout: 8 * time.Second}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Validator{client: client, cache: c, ttl: ttl, log: log}
}

// Validate never fails for user mistakes; those are reported in Result.Reason.
// The returned error is only set when ctx is done.
func (v *Validator) Validate(ctx context.Context, raw string) (Result, error) {
	u, err := parseProfileURL(raw)
	if err != nil {
		return Result{Valid: false, Reason: err.Error()}, nil
	}

	key := cachePrefix + strings.ToLower(u.Hostname()) + strings.TrimRight(u.EscapedPath(), "/")
	if v.cache != nil {
		var cached Result
		if err := cache.GetJSON(ctx, v.cache, key, &cached); err == nil {
			return cached, nil
		}
	}

	name, err := v.fetchName(ctx, u)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Result{}, ctxErr
		}
		v.log.Debug("linkedin fetch failed, using slug", zap.String("url", u.String()), zap.Error(err))
	}
	if name == "" {
		name = nameFromSlug(u)
	}
	if name == "" {
		return Result{Valid: false, Reason: ReasonNoName}, nil
	}

	res := Result{Valid: true, Name: name}
	if v.cache != nil {
		if err := cache.SetJSON(ctx, v.cache, key, res, v.ttl); err != nil {
			v.log.Warn("linkedin cache set", zap.Error(err))
		}
	}
	return res, nil
}

func (v *Validator) fetchName(ctx context.Context, u *url.URL) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", acceptHeader)

	resp, err := v.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("linkedin status %d", resp.StatusCode)
	}
	return extractName(io.LimitReader(resp.Body, maxPageBytes))
}

// extractName prefers og:title over <title> and keeps the part before the
// first " - " or " | " style separator. A title that reduces to nothing is skipped.
func extractName(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}
	var ogTitle, title string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "meta":
				if ogTitle == "" && attr(n, "property") == "og:title" {
					ogTitle = strings.TrimSpace(attr(n, "content"))
				}
			case "title":
				if title == "" && n.FirstChild != nil {
					title = strings.TrimSpace(n.FirstChild.Data)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if name := leadingName(ogTitle); name != "" {
		return name, nil
	}
	return leadingName(title), nil
}

// leadingName keeps the text before the first "-" and then before the first "|".
func leadingName(raw string) string {
	raw, _, _ = strings.Cut(raw, "-")
	raw, _, _ = strings.Cut(raw, "|")
	return strings.TrimSpace(raw)
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

func nameFromSlug(u *url.URL) string {
	path := strings.TrimRight(u.EscapedPath(), "/")
	seg := path[strings.LastIndex(path, "/")+1:]
	if decoded, err := url.PathUnescape(seg); err == nil {
		seg = decoded
	}
	return titleCase(slugSepRe.ReplaceAllString(seg, " "))
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		rs := []rune(strings.ToLower(w))
		rs[0] = unicode.ToUpper(rs[0])
		words[i] = string(rs)
	}
	return strings.Join(words, " ")
}
