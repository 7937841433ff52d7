package constants

// NSQ topics published by the auth service
const (
	TopicOTPRequested   = "auth.otp_requested"
	TopicUserRegistered = "auth.user_registered"
)

// NSQ channels
const (
	ChannelNotification = "notification"
)
