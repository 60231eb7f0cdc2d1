package services

import (
	"regexp"
	"strings"
)

var (
	linkPattern       = regexp.MustCompile(`\[([^|\[\]]+)\|([^\[\]]+)\]`)
	inlineCodePattern = regexp.MustCompile(`\{\{(.*?)\}\}`)
)

// TranslateMarkup はJIRAのWikiマークアップをPhabricatorのRemarkupに変換します。
// 空文字列はそのまま返します。変換ステップは順序依存です。
func TranslateMarkup(text string) string {
	if text == "" {
		return text
	}

	// [表示名|リンク] → [[リンク|表示名]]
	text = linkPattern.ReplaceAllString(text, "[[$2|$1]]")

	// {{コード}} → ##コード##
	text = inlineCodePattern.ReplaceAllString(text, "##$1##")

	// {code} → ```（開始・終了とも同じ置換。対応の取れない入力はそのまま非対称に出る）
	text = strings.ReplaceAll(text, "{code}", "```")

	// 引用の2パスは独立に順番に適用する
	text = quoteBlockLines(text)
	text = quoteToggleLines(text)

	return text
}

// quoteBlockLines は「bq. 」で始まる行から空行の手前までを引用行に変換します
func quoteBlockLines(text string) string {
	lines := strings.Split(text, "\n")
	quoting := false
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line)+" ", "bq. ") {
			quoting = true
		}
		if quoting {
			if strings.TrimSpace(line) == "" {
				quoting = false
			} else {
				lines[i] = "> " + line
			}
		}
	}
	return strings.Join(lines, "\n")
}

// quoteToggleLines は{quote}行で引用モードを切り替えます。{quote}行自体は空行になります
func quoteToggleLines(text string) string {
	lines := strings.Split(text, "\n")
	quoting := false
	for i, line := range lines {
		if line == "{quote}" {
			quoting = !quoting
			lines[i] = ""
			continue
		}
		if quoting {
			lines[i] = "> " + line
		}
	}
	return strings.Join(lines, "\n")
}
