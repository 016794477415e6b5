// Package tui implements the interactive catalog browser.
//
// The browser has two views. The list view shows one page of entries and
// pages forward and backward through the catalog; the detail view shows a
// single record with its stat bars. Network work runs in tea.Cmd goroutines
// and reports back through messages carrying a loader.Ticket, so a response
// for a page or record the user has already navigated away from is dropped
// by the loader instead of overwriting the screen.
package tui
