package services

import (
	"sort"
	"strings"

	"jiratophab/models"
)

// NormalizeChanges は変更履歴の前処理を行い、新しいリストを返します。
// 元のイシューは変更しません。前処理は2つ:
//  1. resolution項目のstatus項目への畳み込み
//  2. 履歴に記録されていない添付ファイルの合成変更の先頭挿入
func NormalizeChanges(issue *models.RawIssue) []models.Change {
	changes := make([]models.Change, 0, len(issue.Changes))
	for _, change := range issue.Changes {
		changes = append(changes, foldResolution(change))
	}
	return prependImplicitAttachments(issue, changes)
}

// foldResolution は単一の変更履歴内でresolution項目をstatus項目に畳み込みます。
// status項目がなければresolution項目をstatus変更として扱い、
// 両方あればresolutionの新しい値をstatus項目に上書きします。
// それ以外の組み合わせ規則は存在しません。
func foldResolution(change models.Change) models.Change {
	items := make([]models.ChangeItem, len(change.Items))
	copy(items, change.Items)

	resIdx, statusIdx := -1, -1
	for i, item := range items {
		switch strings.ToLower(item.Field) {
		case "resolution":
			if resIdx == -1 {
				resIdx = i
			}
		case "status":
			if statusIdx == -1 {
				statusIdx = i
			}
		}
	}

	switch {
	case resIdx >= 0 && statusIdx == -1:
		items[resIdx].Field = "status"
	case resIdx >= 0 && statusIdx >= 0 && items[resIdx].NewString != "":
		items[statusIdx].NewString = items[resIdx].NewString
	}

	change.Items = items
	return change
}

// prependImplicitAttachments は変更履歴のどの項目からもidで参照されていない
// 添付ファイルについて、イシュー作成時刻・作成者名義の合成変更を先頭に追加します。
// これにより全ての添付ファイルがちょうど1回トランザクション履歴に現れます。
func prependImplicitAttachments(issue *models.RawIssue, changes []models.Change) []models.Change {
	referenced := make(map[string]bool)
	for _, change := range changes {
		for _, item := range change.Items {
			if strings.ToLower(item.Field) == "attachment" && item.NewValue != "" {
				referenced[item.NewValue] = true
			}
		}
	}

	ids := make([]string, 0, len(issue.Attachments))
	for id := range issue.Attachments {
		if !referenced[id] {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return changes
	}
	// 出力を決定的にするためidでソートする
	sort.Strings(ids)

	synthetic := make([]models.Change, 0, len(ids)+len(changes))
	for _, id := range ids {
		att := issue.Attachments[id]
		synthetic = append(synthetic, models.Change{
			Author:  issue.Creator,
			Created: issue.Created,
			Items: []models.ChangeItem{{
				Field:     "attachment",
				NewString: att.Filename,
				NewValue:  id,
			}},
		})
	}
	return append(synthetic, changes...)
}
