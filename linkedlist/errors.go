package linkedlist

import "github.com/pkg/errors"

var (
	// ErrCursorNotPositioned is returned by Active when the list is empty or
	// the cursor was never moved to the head, or was invalidated by a removal.
	ErrCursorNotPositioned = errors.New("linkedlist: cursor not positioned")

	// ErrCorrupt is returned by Validate when a structural invariant is broken.
	ErrCorrupt = errors.New("linkedlist: corrupt list")
)
