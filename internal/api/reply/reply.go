// Package reply holds the confirmation messages shared by the HTTP and gRPC
// transports.
package reply

const (
	AccountCreated       = "Account created successfully"
	AccountCreatedVerify = "Account created successfully, Please verify your email Id"
	LoginOTPSent         = "OTP has been send to your email account successfully"
	OTPMatched           = "otp matched"
	EmailVerified        = "Email Id verified successfully"
	ProfileRetrieved     = "Profile retrieved successfully"
	ProfileUpdated       = "Profile updated successfully"
)
