package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateMarkupLinks(t *testing.T) {
	// [表示名|リンク] は [[リンク|表示名]] に入れ替わる
	assert.Contains(t, TranslateMarkup("[Click|http://x]"), "[[http://x|Click]]")
	assert.Equal(t, "参照: [[http://example.com/a|ここ]] まで",
		TranslateMarkup("参照: [ここ|http://example.com/a] まで"))
}

func TestTranslateMarkupInlineCode(t *testing.T) {
	assert.Equal(t, "##foo##", TranslateMarkup("{{foo}}"))
	assert.Equal(t, "a ##b## c ##d##", TranslateMarkup("a {{b}} c {{d}}"))
}

func TestTranslateMarkupCodeBlock(t *testing.T) {
	assert.Equal(t, "```a```", TranslateMarkup("{code}a{code}"))
	// 対応の取れない入力はエラーにせずそのまま非対称に出る
	assert.Equal(t, "```a", TranslateMarkup("{code}a"))
}

func TestTranslateMarkupBlockQuote(t *testing.T) {
	// bq. 行から空行の手前までが引用になる。空行以降はそのまま
	got := TranslateMarkup("bq. note\nmore\n\nafter")
	assert.Equal(t, "> bq. note\n> more\n\nafter", got)
}

func TestTranslateMarkupBlockQuoteBareToken(t *testing.T) {
	// トリム後が「bq.」だけの行もトリガーになる
	got := TranslateMarkup("bq.\nnext")
	assert.Equal(t, "> bq.\n> next", got)
}

func TestTranslateMarkupQuoteToggle(t *testing.T) {
	// {quote}行は引用モードを切り替え、行自体は空行になる
	got := TranslateMarkup("{quote}\nquoted\n{quote}\nplain")
	assert.Equal(t, "\n> quoted\n\nplain", got)
}

func TestTranslateMarkupQuotePassesStack(t *testing.T) {
	// bq.パスの出力に{quote}パスが重なると引用記号は加算になる。
	// 閉じ{quote}行はbq.パスで先に引用行になるためトグルとしては見えなくなる
	got := TranslateMarkup("{quote}\nbq. inner\n{quote}")
	assert.Equal(t, "\n> > bq. inner\n> > {quote}", got)
}

func TestTranslateMarkupPlainTextIdempotent(t *testing.T) {
	plain := "変換対象のない 普通の テキスト\n2行目"
	once := TranslateMarkup(plain)
	assert.Equal(t, once, TranslateMarkup(once))
	assert.Equal(t, plain, once)
}

func TestTranslateMarkupEmptyPassthrough(t *testing.T) {
	assert.Equal(t, "", TranslateMarkup(""))
}
