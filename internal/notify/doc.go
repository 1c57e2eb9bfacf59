// Package notify turns scrape outcomes into chat notifications and
// delivers them to a Keybase team.
//
// Classification is a pure mapping from an Outcome to a Payload (channel +
// message body), so message formatting is testable without any scheduling
// or I/O. Delivery goes through the Notifier interface; the concrete
// KeybaseNotifier shells out to the keybase chat api and observes the
// process result rather than fire-and-forgetting it.
package notify
