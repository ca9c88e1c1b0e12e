package shared

import "errors"

// ErrTableNotFound is returned by repositories when the backing table
// (sheet, SQL table, redis index) does not exist yet.
var ErrTableNotFound = errors.New("table not found")
