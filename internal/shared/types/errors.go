package types

import "errors"

var (
	ErrNoRegionsSpecified = errors.New("no regions specified. Use --regions to provide at least one region")
)
