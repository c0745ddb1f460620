package policy

// Gatekeeperが参照する既知のポリシーサフィックス。
// これ以外のサフィックスも保存・解決はできるが、動作には影響しない。
const (
	SuffixDeviceLimit        = "deviceLimit"
	SuffixBypassRateLimit    = "bypassRateLimit"
	SuffixDeviceExpireDate   = "deviceExpireDate"
	SuffixDeviceExpireAction = "deviceExpireAction"
	SuffixLoginIPRestriction = "loginIpRestriction"

	SuffixPasswordsPerHour         = "rateLimit/passwordsPerHour"
	SuffixModificationsUntilNotNew = "rateLimit/modificationsUntilNotNewUser"
	SuffixModificationsPerHour     = "rateLimit/modificationsPerHour"
	SuffixUniqueMACWindowHours     = "rateLimit/uniqueMacWindowHours"
	SuffixIPGateSeconds            = "rateLimit/secondsBetweenAttemptsPerIP"
)
