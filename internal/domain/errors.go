package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound       = "user not found"
	ErrMsgUsernameTaken      = "username already taken"
	ErrMsgEmailTaken         = "email already registered"
	ErrMsgInvalidCredentials = "invalid credentials"

	// Token errors
	ErrMsgTokenInvalid = "invalid token"
	ErrMsgTokenExpired = "token expired"

	// Catalog errors
	ErrMsgSpeciesNotFound = "species not found"
	ErrMsgEmptyCatalog    = "species catalog is empty"
	ErrMsgInvalidWeight   = "species weight must be positive"
	ErrMsgItemNotFound    = "item not found"

	// Inventory errors
	ErrMsgInsufficientQuantity = "insufficient quantity"
	ErrMsgInvalidQuantity      = "invalid quantity"
	ErrMsgNoEggs               = "you have no eggs to hatch"
	ErrMsgNoFood               = "you have no food"
	ErrMsgNoToy                = "you have no toys"
	ErrMsgNoSeed               = "you have no seeds"
	ErrMsgNoMedicine           = "you have no medicine"
	ErrMsgNotInInventory       = "you do not have that item"

	// Dragon errors
	ErrMsgDragonNotFound  = "dragon not found"
	ErrMsgNotSick         = "dragon is not sick"
	ErrMsgStillStarving   = "dragon is too hungry to recover; feed it first"
	ErrMsgUnknownAction   = "unknown care action"
	ErrMsgDragonSick      = "dragon is sick and cannot go on a mission"
	ErrMsgAlreadyDispatch = "dragon is already on a mission"

	// Mission errors
	ErrMsgUnknownRegion = "unknown region"
	ErrMsgUnknownTier   = "unknown reward tier"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Farm errors
	ErrMsgPlotBusy          = "the plot is already planted"
	ErrMsgNothingToHarvest  = "nothing is planted"
	ErrMsgCropNotRipe       = "the crop is not ripe yet"
	ErrMsgUnknownFarmAction = "unknown farm action"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Database errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// Wrap these with fmt.Errorf("...: %w", domain.ErrXxx) for additional context.
var (
	// User errors
	ErrUserNotFound       = errors.New(ErrMsgUserNotFound)
	ErrUsernameTaken      = errors.New(ErrMsgUsernameTaken)
	ErrEmailTaken         = errors.New(ErrMsgEmailTaken)
	ErrInvalidCredentials = errors.New(ErrMsgInvalidCredentials)

	// Token errors
	ErrTokenInvalid = errors.New(ErrMsgTokenInvalid)
	ErrTokenExpired = errors.New(ErrMsgTokenExpired)

	// Catalog errors
	ErrSpeciesNotFound = errors.New(ErrMsgSpeciesNotFound)
	ErrEmptyCatalog    = errors.New(ErrMsgEmptyCatalog)
	ErrInvalidWeight   = errors.New(ErrMsgInvalidWeight)
	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)

	// Inventory errors
	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)
	ErrInvalidQuantity      = errors.New(ErrMsgInvalidQuantity)
	ErrNoEggs               = errors.New(ErrMsgNoEggs)
	ErrNoFood               = errors.New(ErrMsgNoFood)
	ErrNoToy                = errors.New(ErrMsgNoToy)
	ErrNoSeed               = errors.New(ErrMsgNoSeed)
	ErrNoMedicine           = errors.New(ErrMsgNoMedicine)
	ErrNotInInventory       = errors.New(ErrMsgNotInInventory)

	// Dragon errors
	ErrDragonNotFound   = errors.New(ErrMsgDragonNotFound)
	ErrNotSick          = errors.New(ErrMsgNotSick)
	ErrStillStarving    = errors.New(ErrMsgStillStarving)
	ErrUnknownAction    = errors.New(ErrMsgUnknownAction)
	ErrDragonSick       = errors.New(ErrMsgDragonSick)
	ErrAlreadyOnMission = errors.New(ErrMsgAlreadyDispatch)

	// Mission errors
	ErrUnknownRegion = errors.New(ErrMsgUnknownRegion)
	ErrUnknownTier   = errors.New(ErrMsgUnknownTier)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Farm errors
	ErrPlotBusy          = errors.New(ErrMsgPlotBusy)
	ErrNothingToHarvest  = errors.New(ErrMsgNothingToHarvest)
	ErrCropNotRipe       = errors.New(ErrMsgCropNotRipe)
	ErrUnknownFarmAction = errors.New(ErrMsgUnknownFarmAction)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Database errors
	ErrTxClosed = errors.New(ErrMsgTxClosed)
)
