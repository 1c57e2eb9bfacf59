package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jryio/pcta/internal/availability"
)

// scriptSelector narrows extraction to the inline scripts the site uses to
// embed its calendar data.
const scriptSelector = ".container > script[type='text/javascript']"

// dataPattern matches the JavaScript assignment carrying the calendar JSON.
var dataPattern = regexp.MustCompile(`var data = \((\{.*\})\);`)

// ExtractionError reports a page from which no single calendar blob could
// be pulled. Blocked distinguishes "the data region is missing entirely",
// which usually means the site served a block page or CAPTCHA instead of
// the calendar, from a located blob that failed to decode.
type ExtractionError struct {
	Pattern string
	Blocked bool
	Err     error
}

func (e *ExtractionError) Error() string {
	if e.Blocked {
		return fmt.Sprintf("no availability data in page: %s matched nothing (possible block page or CAPTCHA)", e.Pattern)
	}
	if e.Err != nil {
		return fmt.Sprintf("availability data matched by %s is malformed: %v", e.Pattern, e.Err)
	}
	return fmt.Sprintf("availability data matched by %s is ambiguous: more than one blob found", e.Pattern)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Extract locates the embedded calendar blob in the page and decodes it.
// Exactly one "var data = ({...});" assignment must be present under the
// page container; zero matches is treated as a blocking signal, more than
// one as an ambiguous page.
func Extract(page string) (availability.Calendar, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return availability.Calendar{}, fmt.Errorf("parsing HTML: %w", err)
	}

	var blobs []string
	doc.Find(scriptSelector).Each(func(i int, sel *goquery.Selection) {
		for _, m := range dataPattern.FindAllStringSubmatch(sel.Text(), -1) {
			blobs = append(blobs, m[1])
		}
	})

	switch {
	case len(blobs) == 0:
		return availability.Calendar{}, &ExtractionError{
			Pattern: fmt.Sprintf("%s + %s", scriptSelector, dataPattern.String()),
			Blocked: true,
		}
	case len(blobs) > 1:
		return availability.Calendar{}, &ExtractionError{
			Pattern: dataPattern.String(),
		}
	}

	var cal availability.Calendar
	if err := json.Unmarshal([]byte(blobs[0]), &cal); err != nil {
		return availability.Calendar{}, &ExtractionError{
			Pattern: dataPattern.String(),
			Err:     err,
		}
	}

	return cal, nil
}

// Scrape fetches the page and extracts its calendar in one call.
func (s *Scraper) Scrape(ctx context.Context) (availability.Calendar, error) {
	page, err := s.Fetch(ctx)
	if err != nil {
		return availability.Calendar{}, err
	}
	return Extract(page)
}
