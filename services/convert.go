package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"jiratophab/config"
	"jiratophab/models"
	"jiratophab/utils"
)

// ConvertService はJIRAエクスポートからPhabricatorインポート形式への変換を処理します
type ConvertService struct {
	config *config.Config
	users  map[string]models.User
}

// NewConvertService は新しい変換サービスを作成します
func NewConvertService(cfg *config.Config) *ConvertService {
	return &ConvertService{
		config: cfg,
	}
}

// Convert はエクスポート全体を変換します。致命的エラー時は部分的な結果を返しません
func (s *ConvertService) Convert(dataset *models.Dataset) (*models.Result, error) {
	startTime := time.Now()
	defer utils.TrackTime(startTime, "変換処理")

	s.users = dataset.Users

	utils.LogInfo("変換を開始します: プロジェクト=%d, イシュー=%d, ユーザー=%d",
		len(dataset.Projects), len(dataset.Issues), len(dataset.Users))

	result := &models.Result{
		Projects: make([]models.Project, 0, len(dataset.Projects)),
		Tasks:    make([]models.Task, 0, len(dataset.Issues)),
	}

	for i := range dataset.Projects {
		project, err := s.BuildProject(&dataset.Projects[i], dataset.Issues)
		if err != nil {
			return nil, fmt.Errorf("プロジェクト %s の変換エラー: %w", dataset.Projects[i].Key, err)
		}
		result.Projects = append(result.Projects, *project)
	}

	for i := range dataset.Issues {
		issue := &dataset.Issues[i]
		task, err := s.BuildTask(issue)
		if err != nil {
			return nil, fmt.Errorf("イシュー %s-%s の変換エラー: %w", issue.Project, issue.Key, err)
		}
		result.Tasks = append(result.Tasks, *task)
	}

	utils.LogInfo("変換が完了しました: プロジェクト=%d, タスク=%d", len(result.Projects), len(result.Tasks))
	return result, nil
}

// BuildProject は1つのプロジェクトを出力形式に組み立てます。
// 作成日時と作成者は所属イシューのうち最古のものの値で上書きされます
func (s *ConvertService) BuildProject(project *models.RawProject, issues []models.RawIssue) (*models.Project, error) {
	creator := s.resolveOptional(project.Lead)
	creationTime := time.Now()

	for i := range issues {
		issue := &issues[i]
		if issue.Project != project.Key {
			continue
		}
		created, err := parseTime(issue.Created)
		if err != nil {
			return nil, fmt.Errorf("イシュー %s-%s: %w", issue.Project, issue.Key, err)
		}
		if created.Before(creationTime) {
			creationTime = created
			creator = s.resolveOptional(issue.Reporter)
		}
	}

	return &models.Project{
		ID:           project.Key,
		Name:         project.Name,
		Description:  TranslateMarkup(project.Description),
		Tracker:      config.TrackerLabel,
		URL:          s.entityURL(project.URL, project.Key),
		Creator:      creator,
		CreationDate: formatTime(creationTime),
		Members:      s.projectMembers(project),
	}, nil
}

// projectMembers はユーザー種別のロールアクターを全カテゴリから重複なく集めます
func (s *ConvertService) projectMembers(project *models.RawProject) []string {
	seen := make(map[string]bool)
	members := make([]string, 0)
	for _, actors := range project.Roles {
		for _, actor := range actors {
			if actor.RoleType != config.UserRoleActorType {
				continue
			}
			email, ok := s.ResolveUser(actor.Parameter)
			if !ok || seen[email] {
				continue
			}
			seen[email] = true
			members = append(members, email)
		}
	}
	sort.Strings(members)
	return members
}

// BuildTask は1つのイシューを出力タスクに組み立てます
func (s *ConvertService) BuildTask(issue *models.RawIssue) (*models.Task, error) {
	created, err := parseTime(issue.Created)
	if err != nil {
		return nil, err
	}

	taskID := issue.Project + "-" + issue.Key

	transactions, err := s.assembleTransactions(issue, created)
	if err != nil {
		return nil, err
	}

	return &models.Task{
		ID:           taskID,
		URL:          s.entityURL(issue.URL, taskID),
		Title:        issue.Summary,
		CreationDate: formatTime(created),
		Creator:      s.resolveOptional(issue.Creator),
		Description:  TranslateMarkup(issue.Description),
		Assignee:     s.resolveOptional(issue.Assignee),
		Transactions: transactions,
	}, nil
}

// assembleTransactions はコメントと変更履歴からトランザクション列を組み立てます。
// 全トランザクションを日時昇順に安定ソートし（同時刻は投入順を保つ）、
// 先頭にプロジェクト割り当ての合成トランザクションを置きます
func (s *ConvertService) assembleTransactions(issue *models.RawIssue, created time.Time) ([]models.Transaction, error) {
	type pooled struct {
		tx models.Transaction
		at time.Time
	}
	pool := make([]pooled, 0, len(issue.Actions)+len(issue.Changes))

	for _, action := range issue.Actions {
		if action.Type != "comment" {
			continue
		}
		at, err := parseTime(action.Created)
		if err != nil {
			return nil, fmt.Errorf("コメント: %w", err)
		}
		pool = append(pool, pooled{
			tx: models.Transaction{
				Actor:   s.resolveOptional(action.Author),
				Date:    formatTime(at),
				Type:    models.TxComment,
				Comment: TranslateMarkup(action.Body),
			},
			at: at,
		})
	}

	for _, change := range NormalizeChanges(issue) {
		at, err := parseTime(change.Created)
		if err != nil {
			return nil, fmt.Errorf("変更履歴: %w", err)
		}
		actor := s.resolveOptional(change.Author)
		date := formatTime(at)
		for _, item := range change.Items {
			if tx := s.MapChangeItem(issue, actor, date, item); tx != nil {
				pool = append(pool, pooled{tx: *tx, at: at})
			}
		}
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].at.Before(pool[j].at)
	})

	transactions := make([]models.Transaction, 0, len(pool)+1)
	transactions = append(transactions, models.Transaction{
		Actor: s.resolveOptional(issue.Reporter),
		Date:  formatTime(created),
		Type:  models.TxProjects,
		Value: map[string][]string{"=": {issue.Project}},
	})
	for _, p := range pool {
		transactions = append(transactions, p.tx)
	}
	return transactions, nil
}

// ResolveUser はユーザーキーをメールアドレスに解決します。
// 削除済み・匿名化済みユーザーは解決できないことがあります（致命的エラーではない）
func (s *ConvertService) ResolveUser(key string) (string, bool) {
	if key == "" {
		return "", false
	}
	user, ok := s.users[key]
	if !ok || user.EmailAddress == "" {
		return "", false
	}
	return user.EmailAddress, true
}

// resolveOptional は解決結果をnull許容のポインタに変換します
func (s *ConvertService) resolveOptional(key string) *string {
	if email, ok := s.ResolveUser(key); ok {
		return &email
	}
	return nil
}

// entityURL は明示URLがあればそれを、なければベースURLとキーから組み立てます
func (s *ConvertService) entityURL(explicit, key string) string {
	if explicit != "" {
		return explicit
	}
	return strings.TrimRight(s.config.JiraBaseURL, "/") + "/" + key
}

// timeFormats はエクスポート中に現れる日時表記の候補です
var timeFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000-0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// parseTime は日時文字列を解釈します。解釈できない場合は致命的エラーです
func parseTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("日時が設定されていません")
	}
	for _, format := range timeFormats {
		if t, err := time.Parse(format, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("日時を解釈できません: %q", value)
}

// formatTime は出力用の日時表記（UTCのISO-8601）を返します
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
