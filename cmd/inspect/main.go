package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"jiratophab/config"
	"jiratophab/models"
	"jiratophab/utils"
)

// 変換前にエクスポートの中身を確認するための簡易ツールです
func main() {
	inputJSON := flag.String("input", "", "JIRAエクスポートJSONファイルのパス（指定しない場合は環境変数から取得）")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("設定の読み込みに失敗しました: %v", err)
		os.Exit(1)
	}
	if *inputJSON != "" {
		cfg.InputJSON = *inputJSON
	}

	file, err := os.Open(cfg.InputJSON)
	if err != nil {
		utils.LogError("ファイルオープンエラー: %v", err)
		os.Exit(1)
	}
	defer file.Close()

	var dataset models.Dataset
	if err := json.NewDecoder(file).Decode(&dataset); err != nil {
		utils.LogError("JSONデコードエラー: %v", err)
		os.Exit(1)
	}

	actions, changes, attachments := 0, 0, 0
	for _, issue := range dataset.Issues {
		actions += len(issue.Actions)
		changes += len(issue.Changes)
		attachments += len(issue.Attachments)
	}

	fmt.Printf("エクスポート: %s\n", cfg.InputJSON)
	fmt.Printf("  プロジェクト: %d\n", len(dataset.Projects))
	fmt.Printf("  イシュー:     %d\n", len(dataset.Issues))
	fmt.Printf("  ユーザー:     %d\n", len(dataset.Users))
	fmt.Printf("  アクション:   %d\n", actions)
	fmt.Printf("  変更履歴:     %d\n", changes)
	fmt.Printf("  添付ファイル: %d\n", attachments)
}
