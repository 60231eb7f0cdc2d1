package services

import (
	"strings"

	"jiratophab/config"
	"jiratophab/models"
)

// changeItemHandler は1つのフィールド変更項目からトランザクション種別と値を導出します。
// okがfalseの場合その項目はスキップされます。
type changeItemHandler func(s *ConvertService, issue *models.RawIssue, item models.ChangeItem) (txType string, value interface{}, ok bool)

// changeItemHandlers はフィールド名（小文字）からハンドラへのディスパッチテーブルです。
// 登録のないフィールドはスキップが既定の挙動です。
var changeItemHandlers = map[string]changeItemHandler{
	"assignee":    mapAssignee,
	"summary":     mapSummary,
	"attachment":  mapAttachment,
	"status":      mapStatus,
	"priority":    mapPriority,
	"description": mapDescription,
	"epic child":  mapEpicChild,
	"link":        mapLink,
}

// MapChangeItem は1つのフィールド変更項目をトランザクションに変換します。
// 対応しないフィールドやスキップ条件に該当する場合はnilを返します。
func (s *ConvertService) MapChangeItem(issue *models.RawIssue, actor *string, date string, item models.ChangeItem) *models.Transaction {
	handler, ok := changeItemHandlers[strings.ToLower(item.Field)]
	if !ok {
		return nil
	}
	txType, value, ok := handler(s, issue, item)
	if !ok {
		return nil
	}
	return &models.Transaction{
		Actor: actor,
		Date:  date,
		Type:  txType,
		Value: value,
	}
}

// mapAssignee は担当者の変更を所有者変更として記録します。
// 解決できないユーザーでも値nullのまま記録します。
func mapAssignee(s *ConvertService, _ *models.RawIssue, item models.ChangeItem) (string, interface{}, bool) {
	var value *string
	if email, ok := s.ResolveUser(item.NewValue); ok {
		value = &email
	}
	return models.TxOwner, value, true
}

func mapSummary(_ *ConvertService, _ *models.RawIssue, item models.ChangeItem) (string, interface{}, bool) {
	return models.TxTitle, item.NewString, true
}

// mapAttachment は添付ファイルの追加を記録します。
// 削除（newvalueなし）と参照先のない添付はスキップします。
func mapAttachment(s *ConvertService, issue *models.RawIssue, item models.ChangeItem) (string, interface{}, bool) {
	if item.NewValue == "" {
		return "", nil, false
	}
	att, ok := issue.Attachments[item.NewValue]
	if !ok {
		return "", nil, false
	}
	var author *string
	if email, ok := s.ResolveUser(att.Author); ok {
		author = &email
	}
	return models.TxAttachment, &models.AttachmentValue{
		Author:   author,
		Data:     att.Data,
		Name:     att.Filename,
		Mimetype: att.Mimetype,
	}, true
}

// mapStatus はステータス変更を固定マッピングで変換します。未知の値はスキップします
func mapStatus(_ *ConvertService, _ *models.RawIssue, item models.ChangeItem) (string, interface{}, bool) {
	mapped, ok := config.StatusMapping[item.NewString]
	if !ok {
		return "", nil, false
	}
	return models.TxStatus, mapped, true
}

// mapPriority は優先度変更を固定マッピングで変換します。未知の値は値nullで記録します
func mapPriority(_ *ConvertService, _ *models.RawIssue, item models.ChangeItem) (string, interface{}, bool) {
	var value *int
	if p, ok := config.PriorityMapping[item.NewString]; ok {
		value = &p
	}
	return models.TxPriority, value, true
}

func mapDescription(_ *ConvertService, _ *models.RawIssue, item models.ChangeItem) (string, interface{}, bool) {
	return models.TxDescription, TranslateMarkup(item.NewString), true
}

// mapEpicChild はエピック配下の追加・削除を依存関係として記録します
func mapEpicChild(_ *ConvertService, _ *models.RawIssue, item models.ChangeItem) (string, interface{}, bool) {
	return models.TxDepends, dependsValue(item.NewString, item.OldString), true
}

// mapLink はイシューリンクのうちブロック関係のみを依存関係として記録します。
// 値は表示文字列ではなくリンク先イシューの生のidから組み立てます。
func mapLink(_ *ConvertService, _ *models.RawIssue, item models.ChangeItem) (string, interface{}, bool) {
	if !strings.Contains(item.NewString, "is blocked by") && !strings.Contains(item.OldString, "is blocked by") {
		return "", nil, false
	}
	return models.TxDepends, dependsValue(item.NewValue, item.OldValue), true
}

// dependsValue は依存関係の追加・削除を表す値を組み立てます
func dependsValue(added, removed string) map[string][]string {
	value := map[string][]string{}
	if added != "" {
		value["+"] = []string{added}
	}
	if removed != "" {
		value["-"] = []string{removed}
	}
	return value
}
