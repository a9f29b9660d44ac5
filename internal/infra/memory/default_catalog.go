package memory

import "codescore-service/internal/domain"

// DefaultCatalog returns the built-in PEP 8 question bank (20 questions) and
// the cosmetic monster shop. Used when no Postgres catalog is configured.
func DefaultCatalog() domain.Catalog {
	return domain.Catalog{
		Questions: defaultQuestions(),
		Monsters:  defaultMonsters(),
	}
}

func defaultQuestions() []domain.Question {
	return []domain.Question{
		{
			ID:          "line_length",
			Prompt:      "What is the recommended maximum line length in PEP 8?",
			Options:     []string{"79 characters", "99 characters", "120 characters", "60 characters"},
			AnswerIdx:   0,
			Explanation: "PEP 8 recommends limiting all lines to a maximum of 79 characters.",
			Topic:       "Formatting",
		},
		{
			ID:     "imports_order",
			Prompt: "Which import order is PEP 8 compliant?",
			Code: `# Option A
import numpy as np
import os
from my_app import utils`,
			Options: []string{
				"Standard library -> third-party -> local application imports",
				"Third-party -> standard library -> local application imports",
				"Local -> third-party -> standard library imports",
				"Any order is fine",
			},
			AnswerIdx:   0,
			Explanation: "PEP 8 recommends: standard library imports first, then third-party, then local imports.",
			Topic:       "Imports",
		},
		{
			ID:     "naming_functions",
			Prompt: "Which function name follows PEP 8 naming conventions?",
			Options: []string{
				"calculateTotal()",
				"calculate_total()",
				"CalculateTotal()",
				"calculate-Total()",
			},
			AnswerIdx:   1,
			Explanation: "Functions should be lowercase with words separated by underscores: 'calculate_total'.",
			Topic:       "Naming",
		},
		{
			ID:     "whitespace",
			Prompt: "Which snippet is more PEP 8 compliant regarding whitespace around operators?",
			Code: `# Version 1
x=1+2*3

# Version 2
x = 1 + 2 * 3`,
			Options:     []string{"Version 1", "Version 2", "Both are equally recommended", "Neither"},
			AnswerIdx:   1,
			Explanation: "PEP 8 recommends spaces around operators to improve readability.",
			Topic:       "Formatting",
		},
		{
			ID:     "docstring",
			Prompt: "Where should a function docstring be placed?",
			Code: `def add(a, b):
    # Adds two numbers
    return a + b`,
			Options: []string{
				"As a comment above the function",
				"As the first statement inside the function (triple quotes)",
				"In a separate README file only",
				"Docstrings are only for classes, not functions",
			},
			AnswerIdx:   1,
			Explanation: "A docstring is placed as the first statement inside the function using triple quotes.",
			Topic:       "Docstrings",
		},
		{
			ID:          "comparisons",
			Prompt:      "PEP 8 recommends comparing to None using:",
			Options:     []string{"== None", "!= None", "is None", "equals(None)"},
			AnswerIdx:   2,
			Explanation: "Use 'is None' and 'is not None' for comparisons with None.",
			Topic:       "Best practices",
		},
		{
			ID:     "trailing_whitespace",
			Prompt: "What does PEP 8 say about trailing whitespace?",
			Options: []string{
				"It is recommended for alignment",
				"It is allowed only in comments",
				"It should be avoided",
				"It should be used after commas",
			},
			AnswerIdx:   2,
			Explanation: "Trailing whitespace should be avoided because it is unnecessary and creates noise in diffs.",
			Topic:       "Formatting",
		},
		{
			ID:          "indentation",
			Prompt:      "What is the preferred indentation style in PEP 8?",
			Options:     []string{"2 spaces", "4 spaces", "Tabs only", "Mix of tabs and spaces"},
			AnswerIdx:   1,
			Explanation: "PEP 8 recommends using 4 spaces per indentation level.",
			Topic:       "Formatting",
		},
		{
			ID:     "tabs_vs_spaces",
			Prompt: "What does PEP 8 recommend for indentation characters?",
			Options: []string{
				"Tabs only",
				"Spaces only",
				"Either tabs or spaces, mixing is fine",
				"Mixing tabs and spaces is recommended",
			},
			AnswerIdx:   1,
			Explanation: "PEP 8 recommends using spaces rather than tabs for indentation.",
			Topic:       "Formatting",
		},
		{
			ID:          "class_naming",
			Prompt:      "Which class name follows PEP 8 conventions?",
			Options:     []string{"myclass", "MyClass", "my_class", "MYCLASS"},
			AnswerIdx:   1,
			Explanation: "Classes normally use CapWords (PascalCase) convention: 'MyClass'.",
			Topic:       "Naming",
		},
		{
			ID:          "constant_naming",
			Prompt:      "How should constants be named according to PEP 8?",
			Options:     []string{"maxValue", "MAX_VALUE", "MaxValue", "max_value"},
			AnswerIdx:   1,
			Explanation: "Constants are typically written in all caps with underscores: 'MAX_VALUE'.",
			Topic:       "Naming",
		},
		{
			ID:          "blank_lines",
			Prompt:      "How many blank lines should typically separate top-level function definitions?",
			Options:     []string{"0", "1", "2", "4"},
			AnswerIdx:   2,
			Explanation: "Two blank lines are recommended between top-level function and class definitions.",
			Topic:       "Layout",
		},
		{
			ID:     "spaces_after_comma",
			Prompt: "Which list formatting is more PEP 8 compliant?",
			Code: `# Version 1
nums = [1,2,3,4]

# Version 2
nums = [1, 2, 3, 4]`,
			Options:     []string{"Version 1", "Version 2", "Both are fine", "Neither"},
			AnswerIdx:   1,
			Explanation: "A space after each comma in lists and tuples improves readability.",
			Topic:       "Formatting",
		},
		{
			ID:     "boolean_singleton",
			Prompt: "How should you check if a value is True according to PEP 8?",
			Options: []string{
				"if x == True:",
				"if x is True:",
				"if x:",
				"if bool(x) == True:",
			},
			AnswerIdx:   2,
			Explanation: "Use 'if x:' rather than explicit comparisons to True.",
			Topic:       "Best practices",
		},
		{
			ID:     "imports_at_top",
			Prompt: "Where should imports generally be placed according to PEP 8?",
			Options: []string{
				"Spread throughout the file where needed",
				"Inside functions only",
				"At the top of the file, after any module comments and docstrings",
				"At the bottom of the file",
			},
			AnswerIdx:   2,
			Explanation: "Imports should be placed at the top of the file, after module comments and docstrings.",
			Topic:       "Imports",
		},
		{
			ID:     "inline_comments",
			Prompt: "Which inline comment is more PEP 8 compliant?",
			Code: `# Version 1
x = x + 1 #increment x

# Version 2
x = x + 1  # increment x`,
			Options:     []string{"Version 1", "Version 2", "Both are fine", "Neither"},
			AnswerIdx:   1,
			Explanation: "Inline comments should be separated from code by at least two spaces and start with a single space.",
			Topic:       "Comments",
		},
		{
			ID:     "docstring_quotes",
			Prompt: "What is the recommended quoting style for docstrings?",
			Options: []string{
				"Single quotes: '''docstring'''",
				`Double quotes: """docstring"""`,
				"Either, but triple double quotes are recommended",
				"Single line comments instead of docstrings",
			},
			AnswerIdx:   2,
			Explanation: "Triple double quotes are recommended for docstrings.",
			Topic:       "Docstrings",
		},
		{
			ID:          "module_naming",
			Prompt:      "Which module name best follows PEP 8?",
			Options:     []string{"MyModule.py", "mymodule.py", "myModule.py", "MYMODULE.py"},
			AnswerIdx:   1,
			Explanation: "Modules should have short, lowercase names, optionally with underscores if necessary.",
			Topic:       "Naming",
		},
		{
			ID:     "complicated_expressions",
			Prompt: "What does PEP 8 suggest for very complicated expressions?",
			Options: []string{
				"Write them on one line, no matter the length",
				"Add more comments, but keep them as one expression",
				"Break them into smaller, named variables or helper functions",
				"Avoid using them at all",
			},
			AnswerIdx:   2,
			Explanation: "Complicated expressions should be split into smaller parts or helper functions to improve readability.",
			Topic:       "Readability",
		},
		{
			ID:     "shebang_encoding",
			Prompt: "Where should encoding declarations (if needed) appear in a Python file?",
			Options: []string{
				"Anywhere in the file",
				"At the bottom of the file",
				"On the first or second line",
				"Inside the main() function",
			},
			AnswerIdx:   2,
			Explanation: "Encoding declarations must be placed on the first or second line of the file.",
			Topic:       "Encoding",
		},
	}
}

func defaultMonsters() []domain.Monster {
	return []domain.Monster{
		{
			ID:          "pep_snek",
			Name:        "PEP Snek",
			Emoji:       "🐍",
			Price:       20,
			Description: "Monster associated with short, readable lines of code.",
			Image:       "1.jpg",
		},
		{
			ID:          "lint_lizard",
			Name:        "Lint Lizard",
			Emoji:       "🦎",
			Price:       35,
			Description: "Monster associated with finding style issues in code.",
			Image:       "2.jpg",
		},
		{
			ID:          "docstring_dragon",
			Name:        "Docstring Dragon",
			Emoji:       "🐲",
			Price:       50,
			Description: "Monster associated with well-documented functions and modules.",
			Image:       "3.jpg",
		},
		{
			ID:          "whitespace_wraith",
			Name:        "Whitespace Wraith",
			Emoji:       "👻",
			Price:       60,
			Description: "Monster associated with clean spacing and layout in code.",
			Image:       "4.jpg",
		},
	}
}
