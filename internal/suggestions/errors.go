package suggestions

import "errors"

var ErrNotFound = errors.New("not found")
