package handler

import (
	"errors"

	"github.com/osse101/DragonKeeper_Go/internal/domain"
)

// User-facing messages. Handlers and tests both reference these.
const (
	ErrMsgGenericServerError = "Something went wrong. Please try again."
	ErrMsgNotFound           = "We couldn't find that."
	ErrMsgInvalidCredentials = "Invalid credentials •︵• please try again!"
	ErrMsgTokenInvalid       = "That confirmation link is invalid."
	ErrMsgTokenExpired       = "That confirmation link has expired. Request a new one below."
	ErrMsgEmailTaken         = "You've already begun your adventure with that email! Please log in."
	ErrMsgUsernameTaken      = "˙◠˙ Username taken! ˙◠˙"
	ErrMsgInvalidForm        = "Please check the form and try again."
	ErrMsgInvalidDragonID    = "Please pick a dragon."
	ErrMsgNotEnoughCoins     = "You don't have enough coins for that."
)

// Success messages
const (
	MsgEmailConfirmed     = "Your email is confirmed. Welcome, keeper!"
	MsgConfirmationResent = "A new confirmation link is on its way."
	MsgLoggedOut          = "See you soon!"
	MsgNoDragonsYet       = "You don't have any dragons yet, hatch your egg!"
)

// errorKind decides how a handler surfaces a service error
type errorKind int

const (
	kindInternal errorKind = iota
	// kindNotice re-renders the page with a message and no state change
	kindNotice
	kindNotFound
	kindCredentials
	kindToken
)

// noticeErrors are recoverable game-rule failures shown inline on the page
var noticeErrors = []error{
	domain.ErrNoEggs,
	domain.ErrNoFood,
	domain.ErrNoToy,
	domain.ErrNoSeed,
	domain.ErrNoMedicine,
	domain.ErrInsufficientFunds,
	domain.ErrInsufficientQuantity,
	domain.ErrNotInInventory,
	domain.ErrNotSick,
	domain.ErrStillStarving,
	domain.ErrDragonSick,
	domain.ErrAlreadyOnMission,
	domain.ErrUnknownAction,
	domain.ErrUnknownRegion,
	domain.ErrPlotBusy,
	domain.ErrNothingToHarvest,
	domain.ErrCropNotRipe,
	domain.ErrUnknownFarmAction,
	domain.ErrInvalidInput,
}

var notFoundErrors = []error{
	domain.ErrUserNotFound,
	domain.ErrSpeciesNotFound,
	domain.ErrDragonNotFound,
	domain.ErrItemNotFound,
}

// classifyError maps a service error to how it is shown and the user-facing message
func classifyError(err error) (errorKind, string) {
	if err == nil {
		return kindInternal, ErrMsgGenericServerError
	}
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return kindNotice, ErrMsgNotEnoughCoins
	case errors.Is(err, domain.ErrInvalidCredentials):
		return kindCredentials, ErrMsgInvalidCredentials
	case errors.Is(err, domain.ErrTokenExpired):
		return kindToken, ErrMsgTokenExpired
	case errors.Is(err, domain.ErrTokenInvalid):
		return kindToken, ErrMsgTokenInvalid
	}
	for _, target := range noticeErrors {
		if errors.Is(err, target) {
			return kindNotice, capitalize(target.Error())
		}
	}
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return kindNotFound, ErrMsgNotFound
		}
	}
	return kindInternal, ErrMsgGenericServerError
}
