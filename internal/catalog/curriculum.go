package catalog

// Curriculum returns the embedded course content: units of levels teaching
// programming-English concepts. It is the fallback source when no curated
// levels exist in the database.
func Curriculum() []Level {
	return []Level{
		{
			ID:      101,
			Title:   "Variables & Values",
			Teaches: []string{"Variable", "Data Type"},
			Questions: []Question{
				{
					ID:         "l101-theory",
					Kind:       KindTheory,
					Difficulty: DifficultyEasy,
					Prompt:     "What is a variable?",
					TheoryBody: "A variable is a named box that stores a value. You create one with the let keyword and can change its contents later.",
					Concepts:   []string{"Variable"},
				},
				{
					ID:         "l101-q1",
					Kind:       KindMultipleChoice,
					Difficulty: DifficultyEasy,
					Prompt:     "Which keyword declares a variable that can change?",
					Options: []Option{
						{ID: "a", Text: "let", Correct: true},
						{ID: "b", Text: "const"},
						{ID: "c", Text: "static"},
						{ID: "d", Text: "define"},
					},
					Concepts:      []string{"Variable"},
					FeedbackRight: "Right, let declares a mutable variable.",
					FeedbackWrong: "const values cannot be reassigned; let is the mutable one.",
				},
				{
					ID:            "l101-q2",
					Kind:          KindFillInBlank,
					Difficulty:    DifficultyEasy,
					Prompt:        "Complete: ___ score = 10;",
					CorrectAnswer: "let",
					Concepts:      []string{"Variable"},
					FeedbackWrong: "Use let to declare a new variable.",
				},
				{
					ID:         "l101-q3",
					Kind:       KindDragAndDrop,
					Difficulty: DifficultyMedium,
					Prompt:     "Assemble a variable declaration",
					Segments:   []string{"let", "name", "=", "\"Ada\";"},
					Distractors: []string{
						"const", "==",
					},
					Concepts: []string{"Variable"},
				},
				{
					ID:         "l101-q4",
					Kind:       KindPairMatch,
					Difficulty: DifficultyEasy,
					Prompt:     "Match each value to its type",
					Pairs: []PairItem{
						{ID: "p1", Text: "42", PairID: "p2"},
						{ID: "p2", Text: "number", PairID: "p1"},
						{ID: "p3", Text: "\"hi\"", PairID: "p4"},
						{ID: "p4", Text: "string", PairID: "p3"},
						{ID: "p5", Text: "true", PairID: "p6"},
						{ID: "p6", Text: "boolean", PairID: "p5"},
					},
					Concepts: []string{"Data Type"},
				},
				{
					ID:         "l101-q5",
					Kind:       KindSpeaking,
					Difficulty: DifficultyEasy,
					Prompt:     "Say aloud: \"A variable stores a value.\"",
					Concepts:   []string{"Variable"},
				},
			},
		},
		{
			ID:      102,
			Title:   "Strings",
			Teaches: []string{"String"},
			Questions: []Question{
				{
					ID:         "l102-theory",
					Kind:       KindTheory,
					Difficulty: DifficultyEasy,
					Prompt:     "What is a string?",
					TheoryBody: "A string is text wrapped in quotes. Strings can be joined together with the + operator; this is called concatenation.",
					Concepts:   []string{"String"},
				},
				{
					ID:         "l102-q1",
					Kind:       KindTranslation,
					Difficulty: DifficultyEasy,
					Prompt:     "Which English word means joining two strings together?",
					Options: []Option{
						{ID: "a", Text: "concatenation", Correct: true},
						{ID: "b", Text: "compilation"},
						{ID: "c", Text: "delegation"},
					},
					Concepts: []string{"String"},
				},
				{
					ID:            "l102-q2",
					Kind:          KindFillInBlank,
					Difficulty:    DifficultyMedium,
					Prompt:        "\"code\" + \"lingo\" evaluates to \"___\"",
					CorrectAnswer: "codelingo",
					Concepts:      []string{"String"},
				},
				{
					ID:          "l102-q3",
					Kind:        KindDragAndDrop,
					Difficulty:  DifficultyMedium,
					Prompt:      "Build a greeting string",
					Segments:    []string{"let", "msg", "=", "\"Hello, \"", "+", "name;"},
					Distractors: []string{"-", "concat"},
					Concepts:    []string{"String"},
				},
				{
					ID:         "l102-q4",
					Kind:       KindListening,
					Difficulty: DifficultyEasy,
					Prompt:     "Listen and pick the word you hear: /strɪŋ/",
					Options: []Option{
						{ID: "a", Text: "string", Correct: true},
						{ID: "b", Text: "strong"},
						{ID: "c", Text: "sting"},
					},
					Concepts: []string{"String"},
				},
				{
					ID:         "l102-q5",
					Kind:       KindSpeaking,
					Difficulty: DifficultyEasy,
					Prompt:     "Say aloud: \"Concatenation joins strings.\"",
					Concepts:   []string{"String"},
				},
			},
		},
		{
			ID:      103,
			Title:   "Conditions",
			Teaches: []string{"Condition"},
			Questions: []Question{
				{
					ID:         "l103-theory",
					Kind:       KindTheory,
					Difficulty: DifficultyEasy,
					Prompt:     "What is an if statement?",
					TheoryBody: "An if statement runs code only when a condition is true. Add an else branch for the false case.",
					Concepts:   []string{"Condition"},
				},
				{
					ID:         "l103-q1",
					Kind:       KindMultipleChoice,
					Difficulty: DifficultyEasy,
					Prompt:     "Which operator tests equality?",
					Options: []Option{
						{ID: "a", Text: "==", Correct: true},
						{ID: "b", Text: "="},
						{ID: "c", Text: "=>"},
					},
					Concepts:      []string{"Condition"},
					FeedbackWrong: "A single = assigns; == compares.",
				},
				{
					ID:          "l103-q2",
					Kind:        KindDragAndDrop,
					Difficulty:  DifficultyMedium,
					Prompt:      "Assemble the condition",
					Segments:    []string{"if", "(score", ">", "90)", "{ rank = \"gold\"; }"},
					Distractors: []string{"<", "then"},
					Concepts:    []string{"Condition"},
				},
				{
					ID:            "l103-q3",
					Kind:          KindFillInBlank,
					Difficulty:    DifficultyMedium,
					Prompt:        "The branch that runs when the condition is false starts with the keyword ___",
					CorrectAnswer: "else",
					Concepts:      []string{"Condition"},
				},
				{
					ID:         "l103-q4",
					Kind:       KindCodeBuilder,
					Difficulty: DifficultyHard,
					Prompt:     "Pick the line that guards against division by zero",
					Options: []Option{
						{ID: "a", Text: "if (n != 0) { result = total / n; }", Correct: true},
						{ID: "b", Text: "result = total / n;"},
						{ID: "c", Text: "if (n == 0) { result = total / n; }"},
					},
					Concepts: []string{"Condition"},
				},
			},
		},
		{
			ID:      201,
			Title:   "Loops",
			Teaches: []string{"Loop"},
			Questions: []Question{
				{
					ID:         "l201-theory",
					Kind:       KindTheory,
					Difficulty: DifficultyMedium,
					Prompt:     "What is a loop?",
					TheoryBody: "A loop repeats a block of code. A for loop has three parts: initializer, condition and step.",
					Concepts:   []string{"Loop"},
				},
				{
					ID:          "l201-q1",
					Kind:        KindDragAndDrop,
					Difficulty:  DifficultyMedium,
					Prompt:      "Assemble a loop that counts to ten",
					Segments:    []string{"for", "(let i=0;", "i<10;", "i++)"},
					Distractors: []string{"i--", "while"},
					Concepts:    []string{"Loop"},
				},
				{
					ID:         "l201-q2",
					Kind:       KindMultipleChoice,
					Difficulty: DifficultyMedium,
					Prompt:     "How many times does for (let i=0; i<3; i++) run its body?",
					Options: []Option{
						{ID: "a", Text: "3", Correct: true},
						{ID: "b", Text: "2"},
						{ID: "c", Text: "4"},
					},
					Concepts: []string{"Loop"},
				},
				{
					ID:            "l201-q3",
					Kind:          KindFillInBlank,
					Difficulty:    DifficultyMedium,
					Prompt:        "The keyword that exits a loop early is ___",
					CorrectAnswer: "break",
					Concepts:      []string{"Loop"},
				},
				{
					ID:         "l201-q4",
					Kind:       KindPairMatch,
					Difficulty: DifficultyHard,
					Prompt:     "Match the loop part to its role",
					Pairs: []PairItem{
						{ID: "p1", Text: "let i=0", PairID: "p2"},
						{ID: "p2", Text: "initializer", PairID: "p1"},
						{ID: "p3", Text: "i<10", PairID: "p4"},
						{ID: "p4", Text: "condition", PairID: "p3"},
						{ID: "p5", Text: "i++", PairID: "p6"},
						{ID: "p6", Text: "step", PairID: "p5"},
					},
					Concepts: []string{"Loop"},
				},
				{
					ID:         "l201-q5",
					Kind:       KindTranslation,
					Difficulty: DifficultyEasy,
					Prompt:     "Which English word describes one pass through a loop?",
					Options: []Option{
						{ID: "a", Text: "iteration", Correct: true},
						{ID: "b", Text: "instance"},
						{ID: "c", Text: "invocation"},
					},
					Concepts: []string{"Loop"},
				},
			},
		},
		{
			ID:      202,
			Title:   "Functions",
			Teaches: []string{"Function"},
			Questions: []Question{
				{
					ID:         "l202-theory",
					Kind:       KindTheory,
					Difficulty: DifficultyMedium,
					Prompt:     "What is a function?",
					TheoryBody: "A function is a reusable block of code with a name. It can take parameters and return a value.",
					Concepts:   []string{"Function"},
				},
				{
					ID:          "l202-q1",
					Kind:        KindDragAndDrop,
					Difficulty:  DifficultyMedium,
					Prompt:      "Assemble a function that doubles a number",
					Segments:    []string{"function", "double(n)", "{", "return n * 2;", "}"},
					Distractors: []string{"print n;", "def"},
					Concepts:    []string{"Function"},
				},
				{
					ID:         "l202-q2",
					Kind:       KindMultipleChoice,
					Difficulty: DifficultyEasy,
					Prompt:     "Which keyword sends a value back to the caller?",
					Options: []Option{
						{ID: "a", Text: "return", Correct: true},
						{ID: "b", Text: "yield"},
						{ID: "c", Text: "send"},
					},
					Concepts: []string{"Function"},
				},
				{
					ID:            "l202-q3",
					Kind:          KindFillInBlank,
					Difficulty:    DifficultyMedium,
					Prompt:        "The values listed between the parentheses of a function definition are called ___",
					CorrectAnswer: "parameters",
					Concepts:      []string{"Function"},
				},
				{
					ID:         "l202-q4",
					Kind:       KindSpeaking,
					Difficulty: DifficultyEasy,
					Prompt:     "Say aloud: \"A function returns a value.\"",
					Concepts:   []string{"Function"},
				},
				{
					ID:         "l202-q5",
					Kind:       KindListening,
					Difficulty: DifficultyMedium,
					Prompt:     "Listen and pick the word you hear: /pəˈræmɪtər/",
					Options: []Option{
						{ID: "a", Text: "parameter", Correct: true},
						{ID: "b", Text: "perimeter"},
						{ID: "c", Text: "barometer"},
					},
					Concepts: []string{"Function"},
				},
			},
		},
		{
			ID:      301,
			Title:   "Putting It Together",
			Teaches: []string{"Variable", "Loop", "Function", "Condition"},
			Questions: []Question{
				{
					ID:         "l301-q1",
					Kind:       KindCodeBuilder,
					Difficulty: DifficultyHard,
					Prompt:     "Pick the function that sums numbers from 1 to n",
					Options: []Option{
						{ID: "a", Text: "function sum(n) { let t = 0; for (let i = 1; i <= n; i++) { t += i; } return t; }", Correct: true},
						{ID: "b", Text: "function sum(n) { return n + 1; }"},
						{ID: "c", Text: "function sum(n) { let t = 0; while (true) { t += n; } }"},
					},
					Concepts: []string{"Function", "Loop"},
				},
				{
					ID:          "l301-q2",
					Kind:        KindDragAndDrop,
					Difficulty:  DifficultyHard,
					Prompt:      "Assemble the guard clause",
					Segments:    []string{"if", "(items.length", "==", "0)", "return;"},
					Distractors: []string{"continue;", "!="},
					Concepts:    []string{"Condition"},
				},
				{
					ID:            "l301-q3",
					Kind:          KindFillInBlank,
					Difficulty:    DifficultyHard,
					Prompt:        "A function calling itself is called ___",
					CorrectAnswer: "recursion",
					Concepts:      []string{"Function"},
				},
				{
					ID:         "l301-q4",
					Kind:       KindMultipleChoice,
					Difficulty: DifficultyHard,
					Prompt:     "What does let x = 5; x = x + 1; leave in x?",
					Options: []Option{
						{ID: "a", Text: "6", Correct: true},
						{ID: "b", Text: "5"},
						{ID: "c", Text: "51"},
					},
					Concepts: []string{"Variable"},
				},
				{
					ID:         "l301-q5",
					Kind:       KindTranslation,
					Difficulty: DifficultyMedium,
					Prompt:     "Which English word means running code step by step to find a bug?",
					Options: []Option{
						{ID: "a", Text: "debugging", Correct: true},
						{ID: "b", Text: "deploying"},
						{ID: "c", Text: "refactoring"},
					},
					Concepts: []string{"Function"},
				},
			},
		},
	}
}
