package selector

import (
	"errors"
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Lint tokenizes an already-rendered selector and returns advisory warnings.
// It is a sanity check over strings this package builds, not a stylesheet
// parser: the lexer only has to agree that the output is clean selector
// syntax. An empty slice means no findings.
func Lint(s string) []string {
	var warnings []string

	if strings.TrimSpace(s) == "" {
		return append(warnings, "empty selector")
	}

	l := css.NewLexer(parse.NewInputString(s))

	var depth int
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			if err := l.Err(); err != nil && !errors.Is(err, io.EOF) {
				warnings = append(warnings, fmt.Sprintf("lexer error: %v", err))
			}
			if depth > 0 {
				warnings = append(warnings, "unterminated attribute block")
			}
			return warnings
		case css.LeftBracketToken:
			depth++
		case css.RightBracketToken:
			depth--
			if depth < 0 {
				warnings = append(warnings, "unbalanced ']' in selector")
				depth = 0
			}
		case css.BadStringToken:
			warnings = append(warnings, "unterminated string in selector")
		case css.SemicolonToken, css.LeftBraceToken, css.RightBraceToken, css.AtKeywordToken:
			warnings = append(warnings, fmt.Sprintf("unexpected %q in selector", string(data)))
		}
	}
}
