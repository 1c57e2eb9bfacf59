package availability

import "time"

// DateFormat is the wire format of every start_date field on the page.
const DateFormat = "2006-01-02"

// Entry is one record of the embedded calendar blob, kept exactly as
// scraped. Num arrives as a decimal string and is validated by Filter.
type Entry struct {
	StartDate string `json:"start_date"`
	Num       string `json:"num"`
}

// Calendar is the availability data embedded in the permit page. Limit is
// the cap the site declares for display purposes; Filter applies its own
// configured threshold instead of trusting this field.
type Calendar struct {
	Limit    uint64  `json:"limit"`
	Calendar []Entry `json:"calendar"`
}

// DateRange bounds the starting dates of interest. Start is exclusive,
// End is inclusive.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether d falls inside the range.
func (r DateRange) Contains(d time.Time) bool {
	return d.After(r.Start) && !d.After(r.End)
}

// Opening is a starting date with fewer permits taken than the configured
// limit. Remaining is limit minus the scraped count.
type Opening struct {
	Date      time.Time
	Remaining uint64
}

// Result holds the openings found in one scrape, in calendar order.
type Result []Opening

// ParseDate parses a calendar date in the page's YYYY-MM-DD wire format.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}
