// Package availability models the permit calendar embedded in the PCTA
// availability page and selects the starting dates worth alerting on.
//
// The calendar arrives exactly as the site serves it: dates as YYYY-MM-DD
// strings and permit counts as decimal strings. Filter validates both fields
// strictly; a single malformed entry fails the whole pass, since malformed
// data usually means the page format changed upstream.
package availability
