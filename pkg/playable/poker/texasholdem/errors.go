package texasholdem

import "errors"

// ErrSeatNotFound is returned when a seat ID is not in the room
var ErrSeatNotFound = errors.New("player not found")

// ErrAlreadyFolded is returned when a folded seat tries to act
var ErrAlreadyFolded = errors.New("player has already folded")

// ErrInvalidPhase is returned when an action is submitted outside of a betting round
var ErrInvalidPhase = errors.New("not in a betting round")

// ErrCannotCheck is returned when a seat checks while it still owes chips
var ErrCannotCheck = errors.New("cannot check, there is a bet to call")

// ErrInsufficientChips is returned when a seat does not have enough chips for the action
var ErrInsufficientChips = errors.New("not enough chips")

// ErrNonPositiveAmount is returned when a bet or raise is zero or less
var ErrNonPositiveAmount = errors.New("amount must be greater than zero")

// ErrRaiseWithoutBet is returned when a seat raises and nobody has bet
var ErrRaiseWithoutBet = errors.New("cannot raise, there is no bet")

// ErrInvalidAction is returned for anything other than fold, check, call, bet and raise
var ErrInvalidAction = errors.New("invalid action")

// ErrSeatTaken is returned when a player ID is already seated
var ErrSeatTaken = errors.New("player is already seated")

// ErrTableFull is returned when every seat is taken
var ErrTableFull = errors.New("room is full")
