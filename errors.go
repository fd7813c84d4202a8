package legacyguard

import "errors"

// The failure kinds an action can produce. They are all recoverable: the
// coordinator converts them into a Result with Success=false and leaves the
// session untouched. Nothing here ever aborts the process.
var (
	ErrInvalidParameters    = errors.New("invalid parameters")
	ErrInvalidQuantity      = errors.New("must provide a valid positive integer quantity")
	ErrInvalidTicker        = errors.New("invalid ticker")
	ErrInsufficientCash     = errors.New("insufficient cash")
	ErrInsufficientHoldings = errors.New("insufficient holdings")
	ErrAlreadyMaxLevel      = errors.New("you are already at the highest level")
	ErrUnknownAction        = errors.New("unknown action")
)
