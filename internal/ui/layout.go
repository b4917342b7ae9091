package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 100

	// LayoutExtraWideWidth is the threshold for extra-wide layouts.
	LayoutExtraWideWidth = 160
)

// Timing constants.
const (
	// AddToCartDelay simulates the checkout backend round trip when adding
	// an item to the cart.
	AddToCartDelay = 300 * time.Millisecond

	// NoticeTimeout is how long transient notices stay in the header.
	NoticeTimeout = 2 * time.Second
)

// Display limits.
const (
	// RelatedLimit is the maximum number of related products shown in the
	// detail pane.
	RelatedLimit = 4

	// MaxQuantity caps the quantity picker on the detail pane.
	MaxQuantity = 99
)
