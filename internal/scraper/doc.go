// Package scraper fetches the PCTA permit availability page and extracts
// the calendar data the site embeds in an inline script tag.
//
// The page carries its availability calendar as a JavaScript assignment of
// the form "var data = ({...});" inside a script under the page container.
// Extraction failures are reported as *ExtractionError so callers can tell
// "the page no longer contains the data" (often a block or CAPTCHA
// interstitial) apart from malformed calendar entries, which surface later
// as availability parse errors.
package scraper
