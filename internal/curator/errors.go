package curator

import "errors"

// ErrEmptyText is returned when a case is submitted without text.
var ErrEmptyText = errors.New("case text is required")
