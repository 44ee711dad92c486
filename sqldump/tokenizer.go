package sqldump

import "strings"

// field is one raw value tokenized out of a tuple.
type field struct {
	value  string
	quoted bool
}

// tupleScanner tokenizes one tuple body into fields.
type tupleScanner struct {
	input string
	pos   int
	ch    byte
}

// newTupleScanner creates a scanner over a tuple body (parentheses already
// stripped).
func newTupleScanner(input string) *tupleScanner {
	s := &tupleScanner{input: input}
	s.readChar()
	return s
}

// readChar reads the next byte. Scanning byte-wise is safe here because
// every delimiter is ASCII; multi-byte text passes through untouched.
func (s *tupleScanner) readChar() {
	if s.pos >= len(s.input) {
		s.ch = 0
	} else {
		s.ch = s.input[s.pos]
	}
	s.pos++
}

// readString reads a single-quoted SQL string literal
func (s *tupleScanner) readString() string {
	var result strings.Builder
	s.readChar() // skip opening quote

	for s.ch != '\'' && s.ch != 0 {
		if s.ch == '\\' {
			s.readChar()
			switch s.ch {
			case 'n':
				result.WriteByte('\n')
			case 't':
				result.WriteByte('\t')
			case '\\':
				result.WriteByte('\\')
			case '\'':
				result.WriteByte('\'')
			default:
				result.WriteByte(s.ch)
			}
		} else {
			result.WriteByte(s.ch)
		}
		s.readChar()
	}

	if s.ch == '\'' {
		s.readChar() // skip closing quote
	}

	return result.String()
}

// scan splits the tuple into raw fields, honoring quoted literals so that
// commas inside quotes never delimit. A closing quote emits its field
// immediately, so '' yields a quoted empty field. Unquoted fields are
// trimmed and skipped entirely when blank, which makes rows with stray
// delimiters fail the column-count check downstream.
func (s *tupleScanner) scan() []field {
	var fields []field
	var current strings.Builder

	for s.ch != 0 {
		switch s.ch {
		case '\'':
			current.Reset()
			fields = append(fields, field{value: s.readString(), quoted: true})
		case ',':
			if v := strings.TrimSpace(current.String()); v != "" {
				fields = append(fields, field{value: v})
			}
			current.Reset()
			s.readChar()
		default:
			current.WriteByte(s.ch)
			s.readChar()
		}
	}

	if v := strings.TrimSpace(current.String()); v != "" {
		fields = append(fields, field{value: v})
	}

	return fields
}
