// Package vlr scrapes match, event, player and team pages from vlr.gg
// into typed structures.
//
// Parsers come in two layers. Parse* functions take an already-fetched
// goquery document and never touch the network; Client methods fetch
// the page (with a Cloudflare-aware transport) and delegate to them.
// Structurally required elements produce errors; per-item and per-field
// failures degrade to skipped items or nil fields with a warning log.
package vlr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"

	"vlrscraper/lib/restyutil"
)

var tracer = otel.Tracer("scrapers/vlr")

// BaseURL is the production site root.
const BaseURL = "https://www.vlr.gg"

// ErrElementNotFound reports that an element the page structure
// guarantees was missing, which usually means a site layout change.
var ErrElementNotFound = errors.New("expected element not found")

func elementNotFound(what string) error {
	return fmt.Errorf("%w: %s", ErrElementNotFound, what)
}

type ClientOptions struct {
	// BaseURL overrides the site root, mainly for tests.
	BaseURL string
	// InstrumentOutput receives request/response dumps when debug
	// logging is enabled. May be nil.
	InstrumentOutput restyutil.InstrumentOutput
}

// Client fetches and parses pages. It is safe for concurrent use.
type Client struct {
	http *resty.Client
}

func NewClient(options ClientOptions) (*Client, error) {
	base := options.BaseURL
	if base == "" {
		base = BaseURL
	}
	baseUrl, err := url.Parse(base)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetBaseURL(base)
	client.SetHeader(
		"user-agent",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36",
	)
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	client.SetTimeout(time.Second * 30)
	restyutil.InstrumentClient(client, otel.Tracer("scrapers/vlr/http"), options.InstrumentOutput)

	return &Client{http: client}, nil
}

func (c *Client) fetchDocument(ctx context.Context, path string) (*goquery.Document, error) {
	res, err := c.http.R().SetContext(ctx).Get(path)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("unexpected status %d fetching %s", res.StatusCode(), path)
	}
	return goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
}

// normalizeAssetURL expands the scheme-relative and root-relative URL
// forms the site uses for images into absolute ones.
func normalizeAssetURL(src string) string {
	switch {
	case src == "":
		return ""
	case strings.HasPrefix(src, "//"):
		return "https:" + src
	case strings.HasPrefix(src, "/"):
		return BaseURL + src
	default:
		return src
	}
}

func absoluteURL(href string) string {
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "/") {
		return BaseURL + href
	}
	return href
}

// splitIDSlug parses hrefs of the form {prefix}{id}/{slug}. Anything
// after the slug segment (an event's stage path, say) is dropped. The
// numeric id is the identity of the linked entity, so a parse failure
// is an error for the caller to decide on.
func splitIDSlug(href, prefix string) (int, string, error) {
	if href == "" {
		return 0, "", elementNotFound("link href")
	}
	rest := strings.Trim(strings.TrimPrefix(href, prefix), "/")
	idText, rest, _ := strings.Cut(rest, "/")
	slug, _, _ := strings.Cut(rest, "/")
	id, err := strconv.Atoi(idText)
	if err != nil {
		return 0, "", fmt.Errorf("parse id from href %q: %w", href, err)
	}
	return id, slug, nil
}

// atoiOr parses text as an int, falling back to def on any failure.
// Leading "+" signs (as printed on diff columns) are accepted.
func atoiOr(text string, def int) int {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(text), "+"))
	if err != nil {
		return def
	}
	return n
}

func intPtr(text string) *int {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(text), "+"))
	if err != nil {
		return nil
	}
	return &n
}

func floatPtr(text string) *float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return nil
	}
	return &f
}

// pctPtr parses a "72%" style cell into a fraction in [0, 1].
func pctPtr(text string) *float64 {
	text = strings.TrimSuffix(strings.TrimSpace(text), "%")
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil
	}
	f /= 100
	return &f
}

// inferPlatform guesses the platform of a social link from its host.
func inferPlatform(link string) string {
	parsed, err := url.Parse(link)
	if err != nil {
		return "website"
	}
	host := strings.TrimPrefix(parsed.Hostname(), "www.")
	switch {
	case host == "twitter.com" || host == "x.com":
		return "twitter"
	case strings.HasSuffix(host, "twitch.tv"):
		return "twitch"
	case strings.HasSuffix(host, "youtube.com") || host == "youtu.be":
		return "youtube"
	case strings.HasSuffix(host, "instagram.com"):
		return "instagram"
	case strings.HasSuffix(host, "tiktok.com"):
		return "tiktok"
	case strings.HasSuffix(host, "discord.gg") || strings.HasSuffix(host, "discord.com"):
		return "discord"
	case host == "":
		return "website"
	default:
		return host
	}
}
