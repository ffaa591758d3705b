package database

import "errors"

// ErrNotReady is returned while the pool exists but no connection has been
// established yet.
var ErrNotReady = errors.New("database not ready")
