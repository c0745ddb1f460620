package register

import "github.com/automactic/gatekeeper/internal/nac"

// Outcome は登録試行の結果種別を表す。
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeAlreadyRegistered
	OutcomeRateLimited
	OutcomePolicyRestricted
	OutcomeAPIFailure
)

// String は結果種別の表示名を返す。
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeAlreadyRegistered:
		return "already_registered"
	case OutcomeRateLimited:
		return "rate_limited"
	case OutcomePolicyRestricted:
		return "policy_restricted"
	case OutcomeAPIFailure:
		return "api_failure"
	default:
		return "unknown"
	}
}

// Result は登録試行の結果を表す。
type Result struct {
	Outcome Outcome
	Reason  string      // OutcomeRateLimited時の拒否理由
	Device  *nac.Device // Success/AlreadyRegistered時の対象デバイス
	Err     error       // OutcomeAPIFailure時の原因
}
