package user

// Log messages
const (
	LogMsgRegisterCalled        = "Register called"
	LogMsgUserRegistered        = "User registered"
	LogMsgLoginCalled           = "Login called"
	LogMsgLoginRejected         = "Login rejected"
	LogMsgConfirmCalled         = "Confirm called"
	LogMsgEmailConfirmed        = "Email confirmed"
	LogMsgResendCalled          = "ResendConfirmation called"
	LogErrFailedToSendMail      = "Failed to send confirmation mail"
	LogErrFailedToIssueToken    = "Failed to issue confirmation token"
	LogMsgAlreadyConfirmedSkips = "Email already confirmed, not resending"
)

// StarterEggs is the number of eggs granted at registration
const StarterEggs = 1

// Confirmation mail content
const (
	ConfirmSubject  = "Confirm your Dragon Keeper account"
	ConfirmBodyTmpl = "Hi %s,\n\nWelcome, keeper! Confirm your email by opening this link within the hour:\n\n%s/confirm/%s\n"
)
