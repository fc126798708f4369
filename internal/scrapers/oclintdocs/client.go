// client.go fetches and parses the oclint rule documentation, it knows
// nothing about where the results end up.

package oclintdocs

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
	"update-oclint-rules/internal/assert"
	"update-oclint-rules/internal/oclint"
	"update-oclint-rules/internal/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("update-oclint-rules/scrapers/oclintdocs")

const (
	report_client_fetch_categories = "client.fetch-categories"
	report_client_fetch_rules      = "client.fetch-rules"
)

const (
	categoryIndexPath = "index.html"
	categorySelector  = ".toctree-l1 > a"
	ruleSelector      = ".section > .section"
)

type Options struct {
	BaseUrl string
	Timeout time.Duration
	// CloudflareBypass swaps the transport for one that mimics a browser tls handshake.
	CloudflareBypass bool
	// Output is optional, when set every http exchange is dumped to it.
	Output telemetry.InstrumentOutput
}

type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client

	tel telemetry.API
}

func NewClient(opts Options, tel telemetry.API) (*Client, error) {
	assert.NotNil(tel)
	assert.NotEmptyStr(opts.BaseUrl)

	tel = telemetry.NewScopedAPI("oclint_docs", tel)

	baseUrl, err := url.Parse(strings.TrimSuffix(opts.BaseUrl, "/"))
	if err != nil {
		return nil, err
	}

	httpClient := resty.New()
	httpClient.SetBaseURL(baseUrl.String())
	httpClient.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	httpClient.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	if opts.Timeout > 0 {
		httpClient.SetTimeout(opts.Timeout)
	}
	if opts.CloudflareBypass {
		httpClient.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(httpClient.GetClient().Transport)
	}

	telemetry.InstrumentResty(httpClient, "update-oclint-rules/scrapers/oclintdocs/http", tel, opts.Output)

	return &Client{
		BaseUrl: baseUrl,
		Http:    httpClient,
		tel:     tel,
	}, nil
}

func (c *Client) fetch(ctx context.Context, path string) (*goquery.Document, error) {
	res, err := c.Http.R().
		SetContext(ctx).
		Get("/" + strings.TrimPrefix(path, "/"))
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", path, res.Status())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		return nil, fmt.Errorf("parse html of %s: %w", path, err)
	}
	return doc, nil
}

// FetchCategories returns the names of the rule categories listed on the index.
func (c *Client) FetchCategories(ctx context.Context) ([]string, error) {
	ctx, span := tracer.Start(ctx, "client:FetchCategories")
	defer span.End()

	doc, err := c.fetch(ctx, categoryIndexPath)
	if err != nil {
		c.tel.ReportBroken(report_client_fetch_categories, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch index")
		return nil, err
	}

	var names []string
	doc.Find(categorySelector).Each(func(_ int, s *goquery.Selection) {
		name := strings.TrimSpace(s.Text())
		if name == "" {
			return
		}
		names = append(names, name)
	})
	if len(names) == 0 {
		c.tel.ReportWarning(report_client_fetch_categories, "no categories found on index")
	}
	c.tel.ReportDebug("fetched categories", names)
	span.SetAttributes(attribute.Int("categories", len(names)))

	return names, nil
}

// FetchRules returns every rule documented on the page of a category.
func (c *Client) FetchRules(ctx context.Context, category oclint.Category) ([]oclint.Rule, error) {
	ctx, span := tracer.Start(ctx, "client:FetchRules")
	defer span.End()
	span.SetAttributes(attribute.String("category", category.Name))

	doc, err := c.fetch(ctx, category.Basename())
	if err != nil {
		c.tel.ReportBroken(report_client_fetch_rules, err, category.Name)
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch category page")
		return nil, err
	}

	var rules []oclint.Rule
	var parseErr error
	doc.Find(ruleSelector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		rule, err := oclint.RuleFromSelection(category, s)
		if err != nil {
			parseErr = err
			return false
		}
		c.tel.ReportDebug("parsed rule", category.Name, rule.Key)
		rules = append(rules, rule)
		return true
	})
	if parseErr != nil {
		c.tel.ReportBroken(report_client_fetch_rules, parseErr, category.Name)
		span.RecordError(parseErr)
		span.SetStatus(codes.Error, "failed to parse rule")
		return nil, parseErr
	}

	c.tel.ReportCount(fmt.Sprintf("rules.%s", strings.ToLower(category.Name)), int64(len(rules)))
	span.SetAttributes(attribute.Int("rules", len(rules)))

	return rules, nil
}
