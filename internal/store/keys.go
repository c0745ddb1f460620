package store

// Valkeyキープレフィックス
const (
	KeyPrefixPolicy  = "perm:"   // ポリシーノード（スコープキー単位のハッシュ）
	KeyPrefixHistory = "hist:"   // 試行履歴（利用者単位のソート済みセット）
	KeyPrefixIPGate  = "ipgate:" // IP単位の最終試行時刻
)
