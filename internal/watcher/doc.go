// Package watcher drives the poll loop: it draws a jittered interval once
// at startup, gates every tick on a business-hours window, runs the
// scrape-filter-classify pipeline, and pushes the classified result out
// through a Notifier. Scrape failures additionally trigger a VPN reconnect.
//
// Every tick runs to completion (including remediation and notification)
// before the next interval wait begins, so notifications leave in tick
// order. Scrape, parse and delivery errors never stop the loop; only
// context cancellation does.
package watcher
