// Package review wraps a chat-completion model to produce structured code
// quality reviews and behavior-preserving refactors.
package review

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyReview is returned when the model response cannot be parsed
	// into a review. The caller shows an error; nothing further can be done.
	ErrEmptyReview = errors.New("analysis produced no usable review")
	// ErrEmptyRefactor is returned when the refactor response contains no code.
	ErrEmptyRefactor = errors.New("refactor produced no code")
	// ErrEmptyCode rejects requests with nothing to review.
	ErrEmptyCode = errors.New("no code provided")
)

// ChatModel is a single-turn chat-completion backend. One blocking call per
// request; no retries, no partial results.
type ChatModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Request carries the review configuration alongside the code snippet.
type Request struct {
	Code         string `json:"code"`
	LanguageHint string `json:"languageHint"`
	Level        string `json:"level"`
	Persona      string `json:"persona"`
	Language     string `json:"language"`
}

// RefactorRequest asks for an improved version of the code, same behavior.
type RefactorRequest struct {
	Code             string `json:"code"`
	DetectedLanguage string `json:"detectedLanguage"`
	Level            string `json:"level"`
	Persona          string `json:"persona"`
}

// Dimension is one scored axis of the review.
type Dimension struct {
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

// Dimensions holds the eight fixed axes, each scored 0-10.
type Dimensions struct {
	Readability Dimension `json:"readability"`
	Naming      Dimension `json:"naming"`
	Structure   Dimension `json:"structure"`
	Comments    Dimension `json:"comments"`
	Robustness  Dimension `json:"robustness"`
	Testability Dimension `json:"testability"`
	Performance Dimension `json:"performance"`
	Security    Dimension `json:"security"`
}

// Summary is the prose portion of a review.
type Summary struct {
	ShortOverview     string   `json:"short_overview"`
	KeyStrengths      []string `json:"key_strengths"`
	KeyIssues         []string `json:"key_issues"`
	TopRecommendation string   `json:"top_recommendation"`
}

// LearningTip pairs a weakness with a concrete before/after example.
type LearningTip struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	BadExample    string `json:"bad_example"`
	BetterExample string `json:"better_example"`
}

// Review is the structured analysis result matching the model's JSON schema.
type Review struct {
	Language     string        `json:"language"`
	OverallScore int           `json:"overall_score"`
	Summary      Summary       `json:"summary"`
	Dimensions   Dimensions    `json:"dimensions"`
	LearningTips []LearningTip `json:"learning_tips"`
}

// Reviewer runs the two independent model calls: analysis, then optionally
// refactor. A refactor is never attempted when analysis failed.
type Reviewer struct {
	analysis ChatModel
	refactor ChatModel
}

func NewReviewer(analysis, refactor ChatModel) *Reviewer {
	return &Reviewer{analysis: analysis, refactor: refactor}
}

// Analyze sends the code for review and parses the JSON response. Parse
// failures are reported as ErrEmptyReview; the model is not retried.
func (r *Reviewer) Analyze(ctx context.Context, req Request) (Review, error) {
	if strings.TrimSpace(req.Code) == "" {
		return Review{}, ErrEmptyCode
	}
	applyRequestDefaults(&req)

	raw, err := r.analysis.Generate(ctx, buildAnalysisPrompt(req))
	if err != nil {
		return Review{}, fmt.Errorf("analysis: %w", err)
	}

	review, ok := parseReview(raw)
	if !ok {
		return Review{}, ErrEmptyReview
	}
	return review, nil
}

// Refactor asks for an improved code body and returns it verbatim, minus any
// markdown fencing the model added despite instructions.
func (r *Reviewer) Refactor(ctx context.Context, req RefactorRequest) (string, error) {
	if strings.TrimSpace(req.Code) == "" {
		return "", ErrEmptyCode
	}
	if req.Level == "" {
		req.Level = defaultLevel
	}
	if req.Persona == "" {
		req.Persona = defaultPersona
	}

	raw, err := r.refactor.Generate(ctx, buildRefactorPrompt(req))
	if err != nil {
		return "", fmt.Errorf("refactor: %w", err)
	}
	code := strings.TrimSpace(stripFences(raw))
	if code == "" {
		return "", ErrEmptyRefactor
	}
	return code, nil
}

func applyRequestDefaults(req *Request) {
	if req.LanguageHint == "" {
		req.LanguageHint = "Auto"
	}
	if req.Level == "" {
		req.Level = defaultLevel
	}
	if req.Persona == "" {
		req.Persona = defaultPersona
	}
	if req.Language == "" {
		req.Language = "English"
	}
}

const (
	defaultLevel   = "Beginner-friendly"
	defaultPersona = "Balanced senior engineer"
)

// parseReview strips fencing, unmarshals, and falls back to extracting the
// outermost JSON object when the model wrapped it in prose.
func parseReview(raw string) (Review, bool) {
	text := strings.TrimSpace(stripFences(raw))

	var review Review
	if err := json.Unmarshal([]byte(text), &review); err != nil {
		start := strings.Index(text, "{")
		end := strings.LastIndex(text, "}")
		if start < 0 || end <= start {
			return Review{}, false
		}
		if err := json.Unmarshal([]byte(text[start:end+1]), &review); err != nil {
			return Review{}, false
		}
	}
	if review.Summary.ShortOverview == "" && review.OverallScore == 0 {
		return Review{}, false
	}
	clampReview(&review)
	return review, true
}

func clampReview(review *Review) {
	review.OverallScore = clamp(review.OverallScore, 0, 100)
	for _, d := range []*Dimension{
		&review.Dimensions.Readability,
		&review.Dimensions.Naming,
		&review.Dimensions.Structure,
		&review.Dimensions.Comments,
		&review.Dimensions.Robustness,
		&review.Dimensions.Testability,
		&review.Dimensions.Performance,
		&review.Dimensions.Security,
	} {
		d.Score = clamp(d.Score, 0, 10)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// stripFences removes a leading/trailing markdown code fence if present. The
// opening fence line is dropped whole so language tags like ```python go too.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		if nl := strings.IndexByte(text, '\n'); nl >= 0 {
			text = text[nl+1:]
		} else {
			text = strings.TrimPrefix(text, "```")
		}
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return text
}

// QualityLevel maps an overall score to the traffic-light label shown to the
// user.
type QualityLevel struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// QualityLevelFor buckets a 0-100 score.
func QualityLevelFor(score int) QualityLevel {
	switch {
	case score < 40:
		return QualityLevel{
			Label:       "Poor",
			Description: "Code quality is poor. Serious refactoring is strongly recommended before using this code in production or teaching.",
			Color:       "#c0392b",
		}
	case score < 60:
		return QualityLevel{
			Label:       "Below average",
			Description: "Code is usable but has significant weaknesses. It should be improved to meet common best practices.",
			Color:       "#e67e22",
		}
	case score < 80:
		return QualityLevel{
			Label:       "Acceptable",
			Description: "Code quality is acceptable. It follows some best practices, but there is still clear potential for improvement.",
			Color:       "#f1c40f",
		}
	case score < 90:
		return QualityLevel{
			Label:       "Good",
			Description: "Code quality is good. It follows most relevant best practices with only minor improvement opportunities.",
			Color:       "#27ae60",
		}
	default:
		return QualityLevel{
			Label:       "Excellent",
			Description: "Code quality is excellent. It is clear, well-structured, robust and close to what an experienced engineer would write.",
			Color:       "#2ecc71",
		}
	}
}
