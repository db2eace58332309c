package aicoach

import (
	"strings"
	"unicode/utf8"
)

// ParseCompletion splits a completion into the five numbered sections.
// A line starting with "1)".."5)" opens a section, and the following non-blank
// lines are appended to it, space separated. Text before the first numbered
// line is dropped, missing sections stay empty.
func ParseCompletion(completion string, m CalculatedMetrics) *AnalysisResponse {
	sections := make(map[byte]string, len(sectionHeaders))

	var currentKey byte
	var current []string
	flush := func() {
		if currentKey != 0 {
			sections[currentKey] = strings.TrimSpace(strings.Join(current, " "))
		}
	}

	for _, line := range strings.Split(completion, "\n") {
		if key, ok := sectionKey(line); ok {
			flush()
			currentKey = key
			current = append(current[:0], headerRemainder(line))
			continue
		}
		if currentKey != 0 && strings.TrimSpace(line) != "" {
			current = append(current, strings.TrimSpace(line))
		}
	}
	flush()

	return &AnalysisResponse{
		TrainingAdvice:        sections['1'],
		NutritionAdvice:       sections['2'],
		BulkCutRecommendation: sections['3'],
		MacroSuggestion:       sections['4'],
		PlateauWarning:        sections['5'],
		RawAiRecommendation:   completion,
		CalculatedMetrics:     m,
	}
}

func sectionKey(line string) (byte, bool) {
	if len(line) < 2 || line[1] != ')' {
		return 0, false
	}
	if line[0] < '1' || line[0] > '5' {
		return 0, false
	}
	return line[0], true
}

// headerRemainder drops the "N)" marker and the character after it,
// which is the space following the marker in well formed replies.
func headerRemainder(line string) string {
	rest := line[2:]
	if rest == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(rest)
	return strings.TrimSpace(rest[size:])
}
