// internal/service/analyzer.go
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"life_as_game/internal/config"
	"life_as_game/internal/game"
	"life_as_game/internal/middleware"
	"life_as_game/internal/model"
	"life_as_game/internal/webutil"
)

// Analyzer は自由記述の1日の記録をステータス変化に変換するインターフェース。
type Analyzer interface {
	Analyze(ctx context.Context, text string) (*model.SessionResult, error)
}

// analyzerPrompt はLLMに渡すシステムプロンプト。
// 応答は必ずJSONのみで返すよう指示する。
const analyzerPrompt = `あなたはRPGゲームのステータス分析システムです。
ユーザーが入力した1日の行動を分析し、ゲームキャラクターのステータス変化に変換してください。

ステータス定義:
- focus (集中力): 仕事、勉強、集中を要する活動 → -3 ~ +3
- health (体力): 運動、身体活動、睡眠 → -3 ~ +3
- mental (メンタル): 休息、趣味、余暇、心の健康 → -3 ~ +3
- growth (成長): 新しい学び、挑戦、自己研鑽 → -3 ~ +3

経験値(XP)の計算:
- 基本: 50 XP
- 活動の多様性、強度、意味に応じて 0~200 XP の範囲で調整

キャラクターのコメント:
- RPGのキャラクターがプレイヤーに話しかけるように書く
- 今日のプレイを一行で要約する
- 励まし、承認、またはやさしい助言を含める
- 日本語で書く
- 50文字以内

必ず以下のJSON形式のみで応答してください:
{
  "stats": {
    "focus": number,
    "health": number,
    "mental": number,
    "growth": number
  },
  "xp": number,
  "comment": "string"
}

今日の活動:
%s`

// --- GeminiAnalyzer ---

type GeminiAnalyzer struct {
	cfg    *config.AnalyzerConfig
	client *http.Client
}

func NewGeminiAnalyzer(cfg *config.AnalyzerConfig) *GeminiAnalyzer {
	return &GeminiAnalyzer{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

// Gemini generateContent API のリクエスト/レスポンス構造。
type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature      float64 `json:"temperature"`
	ResponseMimeType string  `json:"responseMimeType"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (a *GeminiAnalyzer) Analyze(ctx context.Context, text string) (*model.SessionResult, error) {
	logger := middleware.GetLogger(ctx)

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: fmt.Sprintf(analyzerPrompt, text)}}},
		},
		GenerationConfig: geminiGenerationConfig{
			Temperature:      0.7,
			ResponseMimeType: "application/json",
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("GeminiAnalyzer.Analyze: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", a.cfg.Endpoint, a.cfg.Model, a.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("GeminiAnalyzer.Analyze: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		logger.Error("Failed to call Gemini API", "error", err)
		return nil, fmt.Errorf("GeminiAnalyzer.Analyze: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.Error("Gemini API returned non-OK status",
			"status", resp.StatusCode,
			"body", string(body),
		)
		return nil, fmt.Errorf("GeminiAnalyzer.Analyze: unexpected status %d: %w", resp.StatusCode, model.ErrAnalysisFormat)
	}

	var genResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		logger.Error("Failed to decode Gemini response envelope", "error", err)
		return nil, fmt.Errorf("GeminiAnalyzer.Analyze: decode envelope: %w", model.ErrAnalysisFormat)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		logger.Error("Gemini response has no candidates")
		return nil, fmt.Errorf("GeminiAnalyzer.Analyze: empty response: %w", model.ErrAnalysisFormat)
	}

	return parseAnalyzerOutput(logger, genResp.Candidates[0].Content.Parts[0].Text)
}

// parseAnalyzerOutput はLLMが返したJSONテキストを検証付きでパースする。
// 欠落フィールドや範囲外の値は model.ErrAnalysisFormat として扱い、補正はしない。
func parseAnalyzerOutput(logger *slog.Logger, text string) (*model.SessionResult, error) {
	var out model.AnalyzerResponse
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		logger.Error("Analyzer output is not valid JSON", "error", err)
		return nil, fmt.Errorf("parseAnalyzerOutput: %w", model.ErrAnalysisFormat)
	}

	if err := webutil.Validator.Struct(&out); err != nil {
		logger.Error("Analyzer output failed validation", "error", err)
		return nil, fmt.Errorf("parseAnalyzerOutput: %w", model.ErrAnalysisFormat)
	}

	return out.ToSessionResult(), nil
}

// --- LogAnalyzer ---
// 開発環境向け。外部APIを呼ばず決め打ちの結果を返す。
type LogAnalyzer struct{}

func (a *LogAnalyzer) Analyze(ctx context.Context, text string) (*model.SessionResult, error) {
	logger := middleware.GetLogger(ctx)
	logger.Info("--- Analyzing text (LogAnalyzer) ---", "text_length", len(text))

	return &model.SessionResult{
		Delta:   game.Stats{Focus: 1, Growth: 1},
		XP:      50,
		Comment: "今日も一歩前進。その調子!",
	}, nil
}

// --- NewAnalyzer ファクトリ関数 ---
func NewAnalyzer(cfg *config.Config) Analyzer {
	logger := slog.Default()
	switch cfg.Analyzer.Type {
	case "gemini":
		logger.Info("Initializing Gemini analyzer...", "model", cfg.Analyzer.Model)
		if cfg.Analyzer.APIKey == "" {
			logger.Error("Analyzer type is 'gemini' but api_key is missing in config.")
			panic("missing API key for Gemini analyzer")
		}
		return NewGeminiAnalyzer(&cfg.Analyzer)
	case "log":
		logger.Info("Initializing Log analyzer...")
		return &LogAnalyzer{}
	default:
		logger.Warn("Unknown analyzer type, defaulting to LogAnalyzer", "type", cfg.Analyzer.Type)
		return &LogAnalyzer{}
	}
}
