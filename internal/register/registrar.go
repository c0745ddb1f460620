package register

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/automactic/gatekeeper/internal/config"
	"github.com/automactic/gatekeeper/internal/history"
	"github.com/automactic/gatekeeper/internal/logging"
	"github.com/automactic/gatekeeper/internal/nac"
	"github.com/automactic/gatekeeper/internal/policy"
	"github.com/automactic/gatekeeper/internal/reldate"
)

var defaultExpireDate = reldate.MustParse(config.DefaultExpireDateSpec)

// Registrar はレート制限・ポリシー・NAC API・台帳を束ねる
// 登録オーケストレータ。
type Registrar struct {
	limiter RateChecker
	pol     PolicySource
	api     DeviceAPI
	ledger  Ledger
	maskMAC bool
}

// NewRegistrar は新しいRegistrarを生成する。
func NewRegistrar(limiter RateChecker, pol PolicySource, api DeviceAPI, ledger Ledger, maskMAC bool) *Registrar {
	return &Registrar{limiter: limiter, pol: pol, api: api, ledger: ledger, maskMAC: maskMAC}
}

// OwnerLabel はNAC上でデバイスの所属先を示すラベルを返す。
// カテゴリ頭文字（大文字化）+ ":" + 利用者名。
func OwnerLabel(user policy.User) string {
	prefix := "U"
	if user.Category != "" {
		// バイトではなく先頭1ルーンを取る
		head, _ := utf8.DecodeRuneInString(user.Category)
		prefix = strings.ToUpper(string(head))
	}
	return prefix + ":" + user.Name
}

// Register は1回の登録試行を処理する。
// 判定・API呼び出しの成否に関わらず、試行は台帳へ記録される。
// macはベア形式、labelは利用者が付けたデバイス名（任意）。
func (r *Registrar) Register(ctx context.Context, user policy.User, ip, mac, label string) *Result {
	dec, err := r.limiter.Check(ctx, user, ip, mac)
	if err != nil {
		return r.fail(ctx, user, ip, err)
	}
	if !dec.Allowed {
		slog.Info("registration rate limited",
			"event_id", "REG_RATE_LIMITED",
			"user", user.Name,
			"reason", dec.Reason)
		r.record(ctx, user, ip, "", false)
		return &Result{Outcome: OutcomeRateLimited, Reason: dec.Reason}
	}

	limit := r.pol.Int(ctx, user, policy.SuffixDeviceLimit, config.DefaultDeviceLimit)
	if limit <= 0 {
		slog.Info("registration restricted by policy",
			"event_id", "REG_POLICY_RESTRICTED",
			"user", user.Name)
		r.record(ctx, user, ip, "", false)
		return &Result{Outcome: OutcomePolicyRestricted}
	}

	owner := OwnerLabel(user)

	// 同一MACが既に自分の枠に登録済みなら何も変更しない
	existing, err := r.api.GetDevice(ctx, nac.ByMAC(mac))
	switch {
	case err == nil:
		if len(existing.Items) > 0 && existing.Items[0].VisitorName == owner {
			r.record(ctx, user, ip, "", false)
			return &Result{Outcome: OutcomeAlreadyRegistered, Device: &existing.Items[0]}
		}
	case nac.IsNotFound(err):
		// 未登録MAC。登録処理を続行する。
	default:
		return r.fail(ctx, user, ip, err)
	}

	list, err := r.api.GetDevice(ctx, nac.ByName(owner))
	if err != nil {
		return r.fail(ctx, user, ip, err)
	}

	if int64(len(list.Items)) >= limit {
		return r.replaceOldest(ctx, user, ip, mac, label, list.Items)
	}
	return r.create(ctx, user, ip, mac, label, owner)
}

// replaceOldest は最も古いデバイスを新しいMACで上書きする。
func (r *Registrar) replaceOldest(ctx context.Context, user policy.User, ip, mac, label string, devices []nac.Device) *Result {
	oldest := devices[0]
	for _, d := range devices[1:] {
		if d.StartTime < oldest.StartTime {
			oldest = d
		}
	}
	enabled := true
	fields := &nac.UpdateFields{MAC: mac, Enabled: &enabled}
	if label != "" {
		fields.Notes = label
	}
	dev, err := r.api.UpdateDevice(ctx, nac.ByID(oldest.ID), fields)
	if err != nil {
		return r.fail(ctx, user, ip, err)
	}
	r.record(ctx, user, ip, mac, true)
	slog.Info("device replaced",
		"event_id", "REG_DEVICE_REPLACED",
		"user", user.Name,
		"device_id", oldest.ID,
		"mac", logging.MaskMAC(mac, r.maskMAC))
	return &Result{Outcome: OutcomeSuccess, Device: dev}
}

// create は空き枠へ新しいデバイスを登録する。
func (r *Registrar) create(ctx context.Context, user policy.User, ip, mac, label, owner string) *Result {
	dev, err := r.api.CreateDevice(ctx, &nac.CreateDeviceRequest{
		VisitorName:  owner,
		MAC:          mac,
		Notes:        label,
		ExpireTime:   r.deviceExpiry(ctx, user),
		ExpireAction: int(r.pol.Int(ctx, user, policy.SuffixDeviceExpireAction, config.DefaultExpireAction)),
		RoleID:       config.DefaultDeviceRoleID,
	})
	if err != nil {
		return r.fail(ctx, user, ip, err)
	}
	r.record(ctx, user, ip, mac, true)
	slog.Info("device created",
		"event_id", "REG_DEVICE_CREATED",
		"user", user.Name,
		"device_id", dev.ID,
		"mac", logging.MaskMAC(mac, r.maskMAC))
	return &Result{Outcome: OutcomeSuccess, Device: dev}
}

// deviceExpiry はポリシーの相対日付指定から失効日時を求める。
// 解決済み要素のローカル0時となる。
func (r *Registrar) deviceExpiry(ctx context.Context, user policy.User) time.Time {
	spec := r.pol.Date(ctx, user, policy.SuffixDeviceExpireDate, defaultExpireDate)
	return spec.Resolve(time.Now()).Local(time.Local)
}

// record は試行を台帳へ追記する。記録失敗で登録フローは止めない。
func (r *Registrar) record(ctx context.Context, user policy.User, ip, mac string, updated bool) {
	e := history.NewEntry(user.Name, mac, ip, true, updated)
	if err := r.ledger.Append(ctx, e); err != nil {
		slog.Warn("history append failed",
			"event_id", "HISTORY_APPEND_ERR",
			"user", user.Name,
			"error", err)
	}
}

func (r *Registrar) fail(ctx context.Context, user policy.User, ip string, err error) *Result {
	slog.Error("registration api failure",
		"event_id", "REG_API_ERR",
		"user", user.Name,
		"error", err)
	r.record(ctx, user, ip, "", false)
	return &Result{Outcome: OutcomeAPIFailure, Err: err}
}
