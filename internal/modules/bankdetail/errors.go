package bankdetail

import "errors"

var ErrNotFound = errors.New("bank detail not found")
