package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	ErrInvalidAddress      = errors.New("invalid address")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidChainId      = errors.New("invalid chain id")
	ErrInvalidDuration     = errors.New("auction duration out of bounds")
	ErrInvalidStartTime    = errors.New("invalid start time")
	ErrInvalidFee          = errors.New("fee percent out of bounds")

	// auction state errors
	ErrAuctionNotFound       = errors.New("auction not found")
	ErrAuctionExists         = errors.New("auction already exists for asset")
	ErrAuctionNotStarted     = errors.New("auction not started")
	ErrAuctionAlreadyStarted = errors.New("auction already started")
	ErrAuctionEnded          = errors.New("auction already ended")
	ErrAuctionCanceled       = errors.New("auction canceled")
	ErrAuctionNotEnded       = errors.New("auction end time not reached")
	ErrAuctionAlreadySettled = errors.New("auction already settled")
	ErrAuctionHasBids        = errors.New("auction has bids")
	ErrEmergencyDelayNotMet  = errors.New("emergency withdraw delay not met")

	// authorization errors
	ErrInvalidNonce     = errors.New("invalid nonce")
	ErrInvalidSignature = errors.New("invalid signature")

	ErrNotSeller   = errors.New("caller is not the seller")
	ErrNotAdmin    = errors.New("require admin privilege")
	ErrNotOwner    = errors.New("caller does not own the asset")
	ErrNotApproved = errors.New("vault not approved for asset")

	// oracle errors
	ErrNoPriceFeed            = errors.New("no price feed")
	ErrOracleInvalidTimestamp = errors.New("oracle: invalid timestamp")
	ErrOracleFutureTimestamp  = errors.New("oracle: future timestamp")
	ErrOracleStaleData        = errors.New("oracle: stale data")
	ErrOracleInvalidPrice     = errors.New("oracle: invalid price")
	ErrOracleOutOfRange       = errors.New("oracle: price out of range")

	// resource / DoS errors
	ErrBatchTooLarge        = errors.New("batch size exceeded")
	ErrBidTooLow            = errors.New("bid not higher than current highest bid")
	ErrBidIncrementTooSmall = errors.New("bid increment too small")
	ErrSelfBid              = errors.New("seller cannot bid")
	ErrInsufficientPayment  = errors.New("insufficient payment attached")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrOperationInProgress  = errors.New("operation already in progress")
	ErrPaused               = errors.New("auction house is paused")
)
