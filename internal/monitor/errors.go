package monitor

import "errors"

var (
	ErrScanFailed = errors.New("monitor scan failed")
)
