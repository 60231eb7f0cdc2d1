package models

// Dataset はJIRAエクスポート全体を表します
type Dataset struct {
	Projects []RawProject    `json:"Project"`
	Issues   []RawIssue      `json:"Issue"`
	Users    map[string]User `json:"users"`
}

// User はJIRAのユーザー情報を表します
type User struct {
	Name         string `json:"name"`
	EmailAddress string `json:"emailAddress"`
	DisplayName  string `json:"displayName"`
}

// RoleActor はプロジェクトロールに割り当てられたアクターを表します
type RoleActor struct {
	RoleType  string `json:"roletype"`
	Parameter string `json:"parameter"` // ユーザーキー（roletypeがユーザーの場合）
}

// RawProject はJIRAのプロジェクトを表します
type RawProject struct {
	Key         string                 `json:"key"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Lead        string                 `json:"lead"`
	URL         string                 `json:"url"`
	Roles       map[string][]RoleActor `json:"roles"`
}

// Action はイシューに対するアクション（コメント等）を表します
type Action struct {
	Author  string `json:"author"`
	Created string `json:"created"`
	Type    string `json:"type"`
	Body    string `json:"body"`
}

// ChangeItem はフィールド変更の1項目を表します
type ChangeItem struct {
	Field     string `json:"field"`
	FieldType string `json:"fieldtype"`
	OldValue  string `json:"oldvalue"`
	OldString string `json:"oldstring"`
	NewValue  string `json:"newvalue"`
	NewString string `json:"newstring"`
}

// Change はイシューに対する1回の変更履歴（同一作者・同一時刻の項目の束）を表します
type Change struct {
	Author  string       `json:"author"`
	Created string       `json:"created"`
	Items   []ChangeItem `json:"items"`
}

// Attachment はイシューの添付ファイルを表します
type Attachment struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Mimetype string `json:"mimetype"`
	Author   string `json:"author"`
	Data     string `json:"data"`
}

// RawIssue はJIRAのイシューを表します
type RawIssue struct {
	Project     string                `json:"project"` // プロジェクトキー
	Key         string                `json:"key"`     // イシュー番号
	Summary     string                `json:"summary"`
	Description string                `json:"description"`
	Creator     string                `json:"creator"`
	Reporter    string                `json:"reporter"`
	Assignee    string                `json:"assignee"`
	Created     string                `json:"created"`
	URL         string                `json:"url"`
	Actions     []Action              `json:"actions"`
	Changes     []Change              `json:"changes"`
	Attachments map[string]Attachment `json:"attachments"`
}

// トランザクション種別
const (
	TxComment     = "comment"
	TxOwner       = "owner"
	TxTitle       = "title"
	TxAttachment  = "attachment"
	TxStatus      = "status"
	TxPriority    = "priority"
	TxDescription = "description"
	TxDepends     = "depends"
	TxProjects    = "projects"
)

// Transaction はPhabricatorタスクへの1つの状態変更を表します。
// Valueがnilのときは省略され、型付きnilポインタのときはnullとして出力されます。
type Transaction struct {
	Actor   *string     `json:"actor"`
	Date    string      `json:"date"`
	Type    string      `json:"type"`
	Value   interface{} `json:"value,omitempty"`
	Comment string      `json:"comment,omitempty"`
}

// AttachmentValue はattachmentトランザクションの値を表します
type AttachmentValue struct {
	Author   *string `json:"author"`
	Data     string  `json:"data"`
	Name     string  `json:"name"`
	Mimetype string  `json:"mimetype"`
}

// Project はPhabricatorインポート用のプロジェクトを表します
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Tracker      string   `json:"tracker"`
	URL          string   `json:"url"`
	Creator      *string  `json:"creator"`
	CreationDate string   `json:"creationDate"`
	Members      []string `json:"members"`
}

// Task はPhabricatorインポート用のタスクを表します
type Task struct {
	ID           string        `json:"id"`
	URL          string        `json:"url"`
	Title        string        `json:"title"`
	CreationDate string        `json:"creationDate"`
	Creator      *string       `json:"creator"`
	Description  string        `json:"description"`
	Assignee     *string       `json:"assignee"`
	Transactions []Transaction `json:"transactions"`
}

// Result は変換結果全体を表します
type Result struct {
	Projects []Project `json:"projects"`
	Tasks    []Task    `json:"tasks"`
}
