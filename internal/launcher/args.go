package launcher

import (
	"errors"
	"strings"
)

// ErrUnterminated is returned by SplitArgs for an unbalanced quote or a
// trailing backslash.
var ErrUnterminated = errors.New("unterminated quote or escape in argument string")

// SplitArgs splits an argument string into words the way a POSIX shell
// would for plain words, without expansions:
//  1. Arguments are delimited by spaces, tabs or newlines.
//  2. Text inside single quotes is taken literally.
//  3. Text inside double quotes is taken literally, except that a
//     backslash escapes a following '"' or '\'.
//  4. Outside quotes, a backslash escapes the next character.
//  5. Quotes may be embedded in a word ("a"b'c' is the single word abc),
//     and an empty quoted string yields an empty argument.
func SplitArgs(s string) ([]string, error) {
	var args []string
	var b strings.Builder
	var inQuote rune
	inWord := false
	escaped := false

	for _, ch := range s {
		if escaped {
			if inQuote == '"' && ch != '"' && ch != '\\' {
				b.WriteRune('\\')
			}
			b.WriteRune(ch)
			escaped = false
			continue
		}

		switch inQuote {
		case '\'':
			if ch == '\'' {
				inQuote = 0
			} else {
				b.WriteRune(ch)
			}
			continue
		case '"':
			switch ch {
			case '"':
				inQuote = 0
			case '\\':
				escaped = true
			default:
				b.WriteRune(ch)
			}
			continue
		}

		switch ch {
		case ' ', '\t', '\n':
			if inWord {
				args = append(args, b.String())
				b.Reset()
				inWord = false
			}
		case '\'', '"':
			inQuote = ch
			inWord = true
		case '\\':
			escaped = true
			inWord = true
		default:
			b.WriteRune(ch)
			inWord = true
		}
	}

	if inQuote != 0 || escaped {
		return nil, ErrUnterminated
	}
	if inWord {
		args = append(args, b.String())
	}
	return args, nil
}
