package review

import (
	"fmt"
	"strings"
)

// buildAnalysisPrompt enforces a single intermediate scoring baseline and a
// fixed +20/0/-20 overall adjustment per review level, so different levels
// produce visibly different headline scores without reshuffling dimensions.
func buildAnalysisPrompt(req Request) string {
	var b strings.Builder

	b.WriteString("You are an experienced software engineer and code-quality reviewer.\n")
	b.WriteString("Your job is to evaluate a code snippet and produce a helpful, encouraging review.\n\n")

	fmt.Fprintf(&b, "Persona: %s\n", req.Persona)
	fmt.Fprintf(&b, "Review level: %s\n", req.Level)
	fmt.Fprintf(&b, "All text language: %s\n", req.Language)
	fmt.Fprintf(&b, "Code language hint: %q (may be \"Auto\"; infer from the snippet if needed)\n\n", req.LanguageHint)

	b.WriteString(`IMPORTANT OUTPUT RULES
1) Respond with ONLY valid JSON. No markdown. No extra text.
2) JSON must match the schema exactly (keys and types).
3) All scores must be integers.

GOAL AND TONE
- Be constructive and friendly.
- Be lenient with small mistakes and minor style issues.
- Give credit where credit is due.
- Reserve low scores for real problems that materially harm correctness, clarity, maintainability, or safety.

DIMENSIONS TO SCORE (0-10, integers only)
- readability
- naming
- structure
- comments
- robustness
- testability
- performance
- security

ANCHORS (use consistently)
- 0-2  very poor: broken, unsafe, or extremely difficult to understand/maintain
- 3-4  poor: major issues that significantly hinder use or safety
- 5-6  adequate: workable but with clear, meaningful weaknesses
- 7-8  good: solid quality with only minor issues
- 9-10 excellent: clean, idiomatic, robust, and well-structured

LENIENCY CALIBRATION
- Typical reasonable code should often land around 6-8 per dimension.
- Scores below 5 should be uncommon and must be justified by concrete issues.
- Do not penalize for missing "enterprise" practices unless their absence creates real risk.

REVIEW LEVEL HANDLING (THIS MUST CREATE REAL DIFFERENCES)
Step 1: Always evaluate the code using ONE baseline standard called "intermediate".
        This means your dimension scores and dimension comments are always written as if the reviewer is intermediate.
        Do NOT change dimension scores based on level.

Step 2: Compute a BASE overall_score from the dimension scores:
        - base_overall = round(average_dimension_score * 10)
        - Clamp base_overall to 0..100
        - Keep in mind, code from an average university student receives around 70 points

Step 3: Apply a fixed adjustment to overall_score based on review_level:
        - If review_level is beginner-friendly: overall_score = base_overall + 20
        - If review_level is intermediate: overall_score = base_overall
        - If review_level is senior or very strict: overall_score = base_overall - 20
        - Clamp overall_score to 0..100

Mapping rules:
- Map any unknown label to the closest of: beginner-friendly, intermediate, senior or very strict.

WHAT TO RETURN
- summary.short_overview: 2-4 sentences
- summary.key_strengths: 3-5 strings
- summary.key_issues: 3-5 strings
- summary.top_recommendation: one sentence

learning_tips:
- Provide 2-3 items.
- Each must include title, description, bad_example, better_example.
- Tailor the wording complexity to the review level:
  beginner-friendly uses simpler language, senior or very strict uses more professional wording.
  Do not change scores for this, only the phrasing and emphasis.

JSON SCHEMA (keys and types must match exactly)
{
  "language": "string (your best guess, e.g. 'python', 'java')",
  "overall_score": 0,
  "summary": {
    "short_overview": "string",
    "key_strengths": ["string", "..."],
    "key_issues": ["string", "..."],
    "top_recommendation": "string"
  },
  "dimensions": {
    "readability": { "score": 0, "comment": "string" },
    "naming": { "score": 0, "comment": "string" },
    "structure": { "score": 0, "comment": "string" },
    "comments": { "score": 0, "comment": "string" },
    "robustness": { "score": 0, "comment": "string" },
    "testability": { "score": 0, "comment": "string" },
    "performance": { "score": 0, "comment": "string" },
    "security": { "score": 0, "comment": "string" }
  },
  "learning_tips": [
    {
      "title": "string",
      "description": "string",
      "bad_example": "string with code",
      "better_example": "string with code"
    }
  ]
}

Final validation checklist before you respond
- Valid JSON only
- Dimension scores are integers and reflect the intermediate baseline
- overall_score equals base_overall plus the fixed level adjustment (+20/0/-20), clamped to 0..100

`)

	b.WriteString("Review the following code snippet. Provide your response strictly as JSON:\n\n")
	b.WriteString(req.Code)
	b.WriteString("\n")

	return b.String()
}

// buildRefactorPrompt asks for a behavior-preserving rewrite, code only.
func buildRefactorPrompt(req RefactorRequest) string {
	var b strings.Builder

	b.WriteString("You are a senior software engineer.\n")
	b.WriteString("Your task is to rewrite the user's code to improve code quality while preserving behavior.\n\n")

	fmt.Fprintf(&b, "Perspective / persona: %s\n", req.Persona)
	fmt.Fprintf(&b, "Strictness level: %s\n\n", req.Level)

	fmt.Fprintf(&b, `Requirements:
- Keep the same programming language (detected: %q, adjust only if obviously wrong).
- Improve readability, naming, structure, comments, robustness, and testability as appropriate.
- Do NOT change external behavior or public interfaces unless strictly necessary.
- Prefer small, clear functions and meaningful names.
- Add minimal but helpful comments / docstrings, not excessive noise.
- Do not invent new functionality.

OUTPUT FORMAT:
- Return ONLY the improved code.
- Do NOT include explanations, markdown, or commentary outside the code itself.

`, req.DetectedLanguage)

	b.WriteString("Please refactor the following code:\n\n")
	b.WriteString(req.Code)
	b.WriteString("\n")

	return b.String()
}
