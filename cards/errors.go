package cards

import "github.com/pkg/errors"

// Submissions rejected because the user has not answered yet. Both are
// reported to the user and leave the card unchanged.
var (
	ErrInputRequired     = errors.New("input required")
	ErrSelectionRequired = errors.New("selection required")
)
