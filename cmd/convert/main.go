package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"jiratophab/config"
	"jiratophab/models"
	"jiratophab/services"
	"jiratophab/utils"
)

func main() {
	// コマンドラインフラグの定義
	inputJSON := flag.String("input", "", "JIRAエクスポートJSONファイルのパス（指定しない場合は環境変数から取得）")
	outputJSON := flag.String("output", "", "Phabricatorインポート用JSONの出力先（指定しない場合は環境変数から取得）")
	baseURL := flag.String("base-url", "", "urlフィールドを持たないエンティティのURL生成に使うベースURL")
	help := flag.Bool("help", false, "ヘルプを表示する")

	// フラグのパース
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	// 開始時間の記録
	startTime := time.Now()

	utils.LogInfo("JIRAエクスポート → Phabricatorインポート 変換ツール")

	// 設定の読み込み
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("設定の読み込みに失敗しました: %v", err)
		os.Exit(1)
	}

	// コマンドラインで指定された場合、設定を上書き
	if *inputJSON != "" {
		cfg.InputJSON = *inputJSON
		utils.LogInfo("入力ファイルを指定: %s", cfg.InputJSON)
	}
	if *outputJSON != "" {
		cfg.OutputJSON = *outputJSON
		utils.LogInfo("出力ファイルを指定: %s", cfg.OutputJSON)
	}
	if *baseURL != "" {
		cfg.JiraBaseURL = *baseURL
	}

	// エクスポートJSONの読み込み
	utils.LogInfo("エクスポートを読み込んでいます: %s", cfg.InputJSON)
	dataset, err := readDataset(cfg.InputJSON)
	if err != nil {
		utils.LogError("エクスポート読み込みエラー: %v", err)
		os.Exit(1)
	}

	// 変換の実行
	converter := services.NewConvertService(cfg)
	result, err := converter.Convert(dataset)
	if err != nil {
		utils.LogError("変換エラー: %v", err)
		os.Exit(1)
	}

	// 結果の書き込み
	utils.LogInfo("変換結果を保存しています: %s", cfg.OutputJSON)
	if err := writeResult(cfg.OutputJSON, result); err != nil {
		utils.LogError("結果書き込みエラー: %v", err)
		os.Exit(1)
	}

	elapsed := time.Since(startTime)
	utils.LogInfo("変換が完了しました: プロジェクト=%d, タスク=%d, 処理時間: %s",
		len(result.Projects), len(result.Tasks), elapsed)
}

// readDataset はエクスポートJSONを読み込みます
func readDataset(path string) (*models.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ファイルオープンエラー: %w", err)
	}
	defer file.Close()

	var dataset models.Dataset
	if err := json.NewDecoder(file).Decode(&dataset); err != nil {
		return nil, fmt.Errorf("JSONデコードエラー: %w", err)
	}
	return &dataset, nil
}

// writeResult は変換結果をJSONとして書き込みます
func writeResult(path string, result *models.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ファイル作成エラー: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("JSONエンコードエラー: %w", err)
	}
	return nil
}

// ヘルプメッセージを表示する関数
func printHelp() {
	fmt.Printf(`
JIRAエクスポート → Phabricatorインポート 変換ツール

使用方法:
  %s [オプション]

オプション:
  -input ファイル      入力するJIRAエクスポートJSON
  -output ファイル     出力するPhabricatorインポートJSON
  -base-url URL        urlフィールドを持たないエンティティに使うベースURL
  -help                このヘルプを表示する

環境変数:
  INPUT_JSON          JIRAエクスポートJSONのパス (デフォルト: jira_export.json)
  OUTPUT_JSON         変換結果JSONのパス (デフォルト: phabricator_import.json)
  JIRA_BASE_URL       URL生成に使うベースURL (デフォルト: %s)

説明:
  このツールはJIRAからエクスポートしたプロジェクト・イシュー・ユーザーの
  データセットをPhabricator(Maniphest)のインポート形式に変換します。

  各タスクには時系列順のトランザクション履歴が再構成されます。
  途中でエラーが発生した場合、部分的な出力は書き込まれません。
`, os.Args[0], config.DefaultJiraBaseURL)
}
