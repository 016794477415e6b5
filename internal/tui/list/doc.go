// Package listview provides a scrolling list component for Bubble Tea views.
//
// Only the rows inside the viewport (plus a small buffer) are rendered, so the
// cost of a frame does not grow with the number of items. Navigation keys are
// bubbles/key bindings and can be remapped by the embedding view.
package listview
