// Package loader implements the list and detail loaders behind the views.
//
// ListLoader fetches one catalog page and fans out one detail request per
// summary, joining the results by input position. DetailLoader fetches a
// single detail record. Both replace their state wholesale on success, keep
// it on failure, and tag every request with a generation so a completion for
// a superseded request is dropped instead of overwriting newer state.
//
// Each loader offers a split API for event-loop callers (Begin, Fetch,
// Complete) and a blocking Load for everything else.
package loader
