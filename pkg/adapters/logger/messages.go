package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Loaded %d clips":                   "%d 件のクリップを読み込みました",
		"Wrote tensor %s (%d, %d, %d, %d)":  "テンソル %s を書き込みました (%d, %d, %d, %d)",
		"Done: %d processed, %d skipped":    "完了: %d 件処理, %d 件スキップ",

		// Per-clip progress (debug)
		"Processing clip %s (%d frames)":    "クリップ %s を処理中 (%d フレーム)",

		// Warnings
		"Skipping clip %s: %s":              "クリップ %s をスキップします: %s",
	})
}
