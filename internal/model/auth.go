package model

// Registration is the input of both registration flows.
type Registration struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// LoginRequest carries the credentials checked before a login passcode is
// sent.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=128"`
}

// OTPAttempt is a passcode submitted for an email address.
type OTPAttempt struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,number,max=16"`
}

// Session is the result of a successful passcode login.
type Session struct {
	User  User
	Token string
}
