// Package pagination provides the paging flags and page metadata shared by
// the dexterm commands.
//
// This package contains:
//   - PaginationParams: --limit/--offset and --page/--page-size parsing and validation
//   - PaginationMeta: page position derived from a catalog cursor and total count
//
// The catalog pages by limit and offset query parameters; page-based flags
// are converted to an offset before the first page URL is built.
package pagination
