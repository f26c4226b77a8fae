package appstore

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"appstore-scraper/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

type RatingsOptions struct {
	// numeric track id, required
	ID             int64
	Country        string
	RequestOptions RequestOptions
}

var starCountPattern = regexp.MustCompile(`(?i)(\d+)\s*(?:stars?|★)`)
var nonDigits = regexp.MustCompile(`\D`)

// Ratings scrapes the star distribution off the legacy storefront
// reviews page. The page layout varies, so two selector strategies run
// in sequence and later matches win; when neither finds anything the
// all-zero histogram is the answer, not an error.
func (c *Client) Ratings(ctx context.Context, opts RatingsOptions) (RatingHistogram, error) {
	ctx, span := tracer.Start(ctx, "Ratings")
	defer span.End()

	if err := requireAny("id is required", opts.ID != 0); err != nil {
		return nil, err
	}

	store := storeID(defaultCountry(opts.Country))
	link := fmt.Sprintf(
		"%s/WebObjects/MZStore.woa/wa/viewContentsUserReviews?id=%d&pageNumber=0&sortOrdering=4&type=Purple+Software",
		c.lookupBase, opts.ID,
	)

	body, err := c.doRequest(ctx, link, mergeHeaders(map[string]string{
		"X-Apple-Store-Front": fmt.Sprintf("%d,12", store),
	}, opts.RequestOptions.Headers))
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, err
	}

	histogram := newHistogram()

	doc.Find(".rating-count").Each(func(_ int, sel *goquery.Selection) {
		// labels on this page come padded with non-printable runes
		groups := starCountPattern.FindStringSubmatch(htmlutil.CleanText(sel.Text()))
		if groups == nil {
			return
		}
		stars, err := strconv.Atoi(groups[1])
		if err != nil || stars < 1 || stars > 5 {
			return
		}
		total := sel.Closest(".rating").Find(".total").Text()
		histogram[stars] = parseCount(total)
	})

	// fallback layout lists votes five-star-first
	doc.Find(".vote").Each(func(i int, sel *goquery.Selection) {
		stars := 5 - i
		if stars < 1 || stars > 5 {
			return
		}
		histogram[stars] = parseCount(sel.Find(".total").Text())
	})

	return histogram, nil
}

func parseCount(text string) int64 {
	digits := nonDigits.ReplaceAllString(strings.TrimSpace(text), "")
	count, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return count
}
