package posterior

import "errors"

// ErrGeometryMismatch indicates the Forward and Backward matrices passed
// to Compute were not built over the same sparse geometry.
var ErrGeometryMismatch = errors.New("posterior: forward and backward matrices have different geometry")
