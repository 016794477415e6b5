// Package catalog is the HTTP+JSON client for the remote creature catalog.
//
// It fetches paginated summary pages and per-item detail records, and
// projects the wire responses into the Summary, Entry and Detail values the
// loaders and views consume. Every failure (transport, non-2xx status,
// malformed JSON) is reported as ErrFetch.
package catalog
