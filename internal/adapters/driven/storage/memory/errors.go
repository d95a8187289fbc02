package memory

import "errors"

// ErrForced is returned for keys listed in KVStore.FailKeys.
var ErrForced = errors.New("forced storage failure")
