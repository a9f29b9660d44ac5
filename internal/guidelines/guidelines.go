// Package guidelines holds the static code-quality reference content: the
// guideline set, the outcomes they map to, and the impact matrix behind the
// visual summary.
package guidelines

import "fmt"

// Example is one bad/good snippet pair illustrating a guideline.
type Example struct {
	Title    string   `json:"title"`
	Bullets  []string `json:"bullets"`
	BadCode  string   `json:"badCode"`
	GoodCode string   `json:"goodCode"`
}

// Page is the full guidelines payload served to clients. Names, weights and
// the impact matrix share one index order.
type Page struct {
	Title       string   `json:"title"`
	Guidelines  []string `json:"guidelines"`
	FocusScale  int      `json:"focusScale"`
	FocusWeight []int    `json:"focusWeights"`
	Outcomes    []string `json:"outcomes"`
	ImpactScale int      `json:"impactScale"`
	// ImpactMap[i][j] scores guideline i against outcome j, 0..impactScale.
	ImpactMap [][]int   `json:"impactMap"`
	Examples  []Example `json:"examples"`
}

const (
	pageTitle   = "Code Quality Guidelines"
	focusScale  = 100
	impactScale = 5
)

var names = []string{
	"Readable naming",
	"Effective comments",
	"No hardcoding",
	"Small functions",
	"Consistent style",
	"Input validation",
}

var focusWeights = []int{88, 78, 74, 85, 80, 87}

var outcomes = []string{
	"Readability",
	"Maintainability",
	"Flexibility",
	"Reliability",
}

var impactMap = [][]int{
	{5, 4, 2, 2},
	{4, 4, 2, 2},
	{2, 4, 5, 2},
	{4, 5, 3, 3},
	{5, 4, 2, 2},
	{2, 3, 2, 5},
}

var examples = []Example{
	{
		Title: "Readable structure",
		Bullets: []string{
			"Use names that communicate intent",
			"Avoid ambiguous shortcuts",
			"Prefer simple flow over clever tricks",
		},
		BadCode: "def f(x):\n    return x * 3.14",
		GoodCode: "PI = 3.14159\n\n" +
			"def calculate_circle_area(radius: float) -> float:\n" +
			"    return PI * radius ** 2",
	},
	{
		Title: "Meaningful comments",
		Bullets: []string{
			"Add notes for reasoning or constraints",
			"Skip commentary that restates the code",
			"Use docstrings for non-trivial functions",
		},
		BadCode: "total = price + tax  # add tax",
		GoodCode: "def calculate_total(price: float, tax_rate: float) -> float:\n" +
			"    \"\"\"Return the final price including tax.\"\"\"\n" +
			"    return price * (1 + tax_rate)",
	},
	{
		Title: "Avoid hidden rules (no hardcoding)",
		Bullets: []string{
			"Fixed numbers often represent a rule or assumption",
			"Expose rules as parameters or defaults",
			"This makes the code easier to adapt later",
		},
		BadCode: "def discount(price):\n    return price * 0.9",
		GoodCode: "def discount(price: float, rate: float = 0.1) -> float:\n" +
			"    return price * (1 - rate)",
	},
	{
		Title: "Small, focused functions",
		Bullets: []string{
			"One function should do one job",
			"Keep logic separate from output / I/O",
			"Smaller pieces are easier to test",
		},
		BadCode: "def process(items):\n" +
			"    for item in items:\n" +
			"        print(item * 2)",
		GoodCode: "def double_items(items: List[int]) -> List[int]:\n" +
			"    return [item * 2 for item in items]",
	},
	{
		Title: "Defensive programming",
		Bullets: []string{
			"Validate important inputs",
			"Handle edge cases explicitly",
			"Fail clearly instead of silently",
		},
		BadCode: "def divide(a, b):\n    return a / b",
		GoodCode: "def divide(a: float, b: float) -> float:\n" +
			"    if b == 0:\n" +
			"        raise ValueError('b must not be zero')\n" +
			"    return a / b",
	},
}

// DefaultPage returns the built-in reference content. The shape is validated
// on every call so a future edit to the tables cannot ship a ragged matrix.
func DefaultPage() (Page, error) {
	page := Page{
		Title:       pageTitle,
		Guidelines:  names,
		FocusScale:  focusScale,
		FocusWeight: focusWeights,
		Outcomes:    outcomes,
		ImpactScale: impactScale,
		ImpactMap:   impactMap,
		Examples:    examples,
	}
	if err := page.Validate(); err != nil {
		return Page{}, err
	}
	return page, nil
}

// Validate checks label presence and matrix dimensions.
func (p Page) Validate() error {
	if err := requireNonEmptyLabels(p.Guidelines, "guidelines"); err != nil {
		return err
	}
	if err := requireNonEmptyLabels(p.Outcomes, "outcomes"); err != nil {
		return err
	}
	if len(p.FocusWeight) != len(p.Guidelines) {
		return fmt.Errorf("guidelines: %d focus weights for %d guidelines", len(p.FocusWeight), len(p.Guidelines))
	}
	for i, w := range p.FocusWeight {
		if w < 0 || w > p.FocusScale {
			return fmt.Errorf("guidelines: focus weight %d out of range at index %d", w, i)
		}
	}
	if len(p.ImpactMap) != len(p.Guidelines) {
		return fmt.Errorf("guidelines: impact map has %d rows for %d guidelines", len(p.ImpactMap), len(p.Guidelines))
	}
	for i, row := range p.ImpactMap {
		if len(row) != len(p.Outcomes) {
			return fmt.Errorf("guidelines: impact row %d has %d cells for %d outcomes", i, len(row), len(p.Outcomes))
		}
		for j, v := range row {
			if v < 0 || v > p.ImpactScale {
				return fmt.Errorf("guidelines: impact value %d out of range at [%d][%d]", v, i, j)
			}
		}
	}
	return nil
}

func requireNonEmptyLabels(labels []string, what string) error {
	if len(labels) == 0 {
		return fmt.Errorf("guidelines: %s must not be empty", what)
	}
	for i, label := range labels {
		if label == "" {
			return fmt.Errorf("guidelines: empty %s label at index %d", what, i)
		}
	}
	return nil
}
