package appstore

import (
	"context"
	"net/http/cookiejar"
	"time"

	"appstore-scraper/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"golang.org/x/time/rate"
)

var tracer = otel.Tracer("scrapers/appstore")

const (
	defaultLookupBase = "https://itunes.apple.com"
	defaultSearchBase = "https://search.itunes.apple.com"
	defaultWebBase    = "https://apps.apple.com"
	defaultAmpBase    = "https://amp-api-edge.apps.apple.com"
)

var defaultHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.9",
}

// Client talks to the storefront's unofficial endpoints. It holds no
// per-call state, so a single Client is safe to share between
// goroutines.
type Client struct {
	http    *resty.Client
	limiter *rate.Limiter

	lookupBase string
	searchBase string
	webBase    string
	ampBase    string
}

type ClientOptions struct {
	// extra headers merged over the built-in browser defaults on
	// every request
	Headers map[string]string

	// upstream request budget; zero means unlimited
	RequestsPerSecond float64

	// endpoint overrides, empty means the production hosts
	LookupBaseURL string
	SearchBaseURL string
	WebBaseURL    string
	AmpBaseURL    string
}

func NewClient(opts ClientOptions) (*Client, error) {
	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.SetTimeout(time.Second * 30)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeaders(defaultHeaders)
	for k, v := range opts.Headers {
		client.SetHeader(k, v)
	}

	telemetry.InstrumentResty(client, "scrapers/appstore/http")

	c := &Client{
		http:       client,
		lookupBase: defaultLookupBase,
		searchBase: defaultSearchBase,
		webBase:    defaultWebBase,
		ampBase:    defaultAmpBase,
	}
	if opts.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
	}
	if opts.LookupBaseURL != "" {
		c.lookupBase = opts.LookupBaseURL
	}
	if opts.SearchBaseURL != "" {
		c.searchBase = opts.SearchBaseURL
	}
	if opts.WebBaseURL != "" {
		c.webBase = opts.WebBaseURL
	}
	if opts.AmpBaseURL != "" {
		c.ampBase = opts.AmpBaseURL
	}
	return c, nil
}

// RequestOptions carries per-call header overrides. Headers given here
// win over the client defaults for that one request.
type RequestOptions struct {
	Headers map[string]string
}

// doRequest performs a single unauthenticated GET and hands back the
// body as text. Non-2xx statuses become a *RequestError; nothing is
// retried.
func (c *Client) doRequest(ctx context.Context, url string, headers map[string]string) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	req := c.http.R().SetContext(ctx)
	if len(headers) > 0 {
		req.SetHeaders(headers)
	}

	res, err := req.Get(url)
	if err != nil {
		return "", err
	}
	if !res.IsSuccess() {
		return "", &RequestError{StatusCode: res.StatusCode(), URL: url}
	}
	return res.String(), nil
}
