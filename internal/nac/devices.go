package nac

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// 変更系の呼び出しには常に付与するクエリパラメータ。
// 認可変更をNACからネットワーク機器へ即時伝搬させる。
var coaParams = map[string]string{"change_of_authorization": "true"}

// CreateDevice は新しいデバイスを登録する。
func (c *Client) CreateDevice(ctx context.Context, req *CreateDeviceRequest) (*Device, error) {
	if req == nil || req.VisitorName == "" || req.MAC == "" {
		return nil, fmt.Errorf("%w: visitor_name and mac are required", ErrInvalidArgument)
	}
	body := map[string]any{
		"visitor_name": req.VisitorName,
		"mac":          req.MAC,
		"notes":        req.Notes,
		"start_time":   time.Now().Unix(),
		"expire_time":  req.ExpireTime.Unix(),
		"do_expire":    req.ExpireAction,
		"role_id":      req.RoleID,
		"enabled":      true,
	}
	data, err := c.do(ctx, http.MethodPost, "/device", coaParams, body)
	if err != nil {
		return nil, err
	}
	return decodeDevice(data)
}

// GetDevice はセレクタに一致するデバイスを取得する。
// MAC・ID指定では高々1件、VisitorName指定では複数件が返りうる。
// MAC・ID指定で対象が存在しない場合は404のAPIErrorとなる
// （IsNotFoundで判定できる）。
func (c *Client) GetDevice(ctx context.Context, sel Selector) (*DeviceList, error) {
	if err := sel.validate(); err != nil {
		return nil, err
	}
	if sel.VisitorName != "" {
		filter, err := json.Marshal(map[string]string{"visitor_name": sel.VisitorName})
		if err != nil {
			return nil, fmt.Errorf("encode filter: %w", err)
		}
		data, err := c.do(ctx, http.MethodGet, "/device", map[string]string{
			"filter":          string(filter),
			"sort":            "-id",
			"calculate_count": "true",
			"limit":           "1000",
		}, nil)
		if err != nil {
			return nil, err
		}
		return decodeDeviceList(data)
	}

	data, err := c.do(ctx, http.MethodGet, devicePath(sel), nil, nil)
	if err != nil {
		return nil, err
	}
	dev, err := decodeDevice(data)
	if err != nil {
		return nil, err
	}
	return &DeviceList{Count: 1, Items: []Device{*dev}}, nil
}

// UpdateDevice はデバイスの一部フィールドを更新する。
// VisitorName指定の場合はまず一覧で対象を特定し、ちょうど1件に
// 解決されなければErrAmbiguousOwnerを返す。
func (c *Client) UpdateDevice(ctx context.Context, sel Selector, fields *UpdateFields) (*Device, error) {
	if err := sel.validate(); err != nil {
		return nil, err
	}
	body := fields.body()
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: update fields must not be empty", ErrInvalidArgument)
	}
	path, err := c.resolvePath(ctx, sel)
	if err != nil {
		return nil, err
	}
	data, err := c.do(ctx, http.MethodPatch, path, coaParams, body)
	if err != nil {
		return nil, err
	}
	return decodeDevice(data)
}

// RemoveDevice はデバイスを削除する。
func (c *Client) RemoveDevice(ctx context.Context, sel Selector) error {
	if err := sel.validate(); err != nil {
		return err
	}
	path, err := c.resolvePath(ctx, sel)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, http.MethodDelete, path, coaParams, nil)
	return err
}

// resolvePath はセレクタからデバイスのリソースパスを決定する。
func (c *Client) resolvePath(ctx context.Context, sel Selector) (string, error) {
	if sel.VisitorName == "" {
		return devicePath(sel), nil
	}
	list, err := c.GetDevice(ctx, ByName(sel.VisitorName))
	if err != nil {
		return "", err
	}
	if len(list.Items) != 1 {
		return "", fmt.Errorf("%w: %q resolved to %d devices", ErrAmbiguousOwner, sel.VisitorName, len(list.Items))
	}
	return fmt.Sprintf("/device/%d", list.Items[0].ID), nil
}

func devicePath(sel Selector) string {
	if sel.MAC != "" {
		return "/device/mac/" + sel.MAC
	}
	return fmt.Sprintf("/device/%d", sel.ID)
}

func decodeDevice(data []byte) (*Device, error) {
	var dev Device
	if err := json.Unmarshal(data, &dev); err != nil {
		return nil, fmt.Errorf("decode device response: %w", err)
	}
	return &dev, nil
}

// decodeDeviceList は一覧応答を復号する。HAL形式の _embedded.items は
// itemsへ平坦化する。
func decodeDeviceList(data []byte) (*DeviceList, error) {
	var raw struct {
		Count    int      `json:"count"`
		Items    []Device `json:"items"`
		Embedded struct {
			Items []Device `json:"items"`
		} `json:"_embedded"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode device list response: %w", err)
	}
	items := raw.Items
	if len(items) == 0 && len(raw.Embedded.Items) > 0 {
		items = raw.Embedded.Items
	}
	count := raw.Count
	if count == 0 {
		count = len(items)
	}
	return &DeviceList{Count: count, Items: items}, nil
}
