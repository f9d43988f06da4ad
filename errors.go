package banklet

import "errors"

// ErrNoMetadata reports a ledger opened without a bank format when no
// persisted metadata exists to infer one from.
var ErrNoMetadata = errors.New("no bank format supplied and no metadata available")

// ErrMalformed reports a persisted ledger file whose structure or values
// cannot be read back. There is no auto-repair.
var ErrMalformed = errors.New("malformed ledger file")
