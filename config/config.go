package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config はアプリケーション全体の設定を保持します
type Config struct {
	// JIRAのベースURL（urlフィールドを持たないエンティティのURL生成に使用）
	JiraBaseURL string

	// ファイルパス
	InputJSON  string
	OutputJSON string
}

// DefaultJiraBaseURL はベースURLが指定されなかった場合の既定値です
const DefaultJiraBaseURL = "https://jira.example.com/browse"

// UserRoleActorType はプロジェクトロールのうちユーザーを指すアクター種別です。
// この種別以外のロールアクター（グループ等）はメンバー集計の対象外です。
const UserRoleActorType = "atlassian-user-role-actor"

// TrackerLabel は出力プロジェクトに付与する移行元トラッカーのラベルです
const TrackerLabel = "jira"

// StatusMapping はJIRAステータスからPhabricatorステータスへのマッピングです。
// ここに無いステータスへの変更はトランザクションとして出力されません。
var StatusMapping = map[string]string{
	"Open":             "open",
	"Reopened":         "open",
	"In Progress":      "wip",
	"Fixed":            "resolved",
	"Done":             "resolved",
	"Incomplete":       "rejected",
	"Cannot Reproduce": "rejected",
	"Won't Fix":        "rejected",
	"Duplicate":        "duplicate",
}

// PriorityMapping はJIRA優先度からPhabricator優先度値へのマッピングです。
// ここに無い優先度は値なし（null）のトランザクションになります。
var PriorityMapping = map[string]int{
	"Blocker":  100,
	"Critical": 80,
	"Major":    50,
	"Minor":    25,
	"Trivial":  0,
}

// LoadConfig は環境変数から設定を読み込みます
func LoadConfig() (*Config, error) {
	// .envファイルを読み込む
	_ = godotenv.Load()

	config := &Config{
		JiraBaseURL: strings.TrimRight(getEnvWithDefault("JIRA_BASE_URL", DefaultJiraBaseURL), "/"),
		InputJSON:   getEnvWithDefault("INPUT_JSON", "jira_export.json"),
		OutputJSON:  getEnvWithDefault("OUTPUT_JSON", "phabricator_import.json"),
	}

	return config, nil
}

// デフォルト値付きで環境変数を取得
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
