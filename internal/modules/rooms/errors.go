package rooms

import "errors"

var ErrNegativePrice = errors.New("price must be greater than or equal to 0")
