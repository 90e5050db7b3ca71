package trace

// StyleTag names a rendering intent the formatter may map to terminal styling.
type StyleTag string

// Supported style tags.
const (
	StyleHeading StyleTag = "heading"
	StyleSuccess StyleTag = "success"
	StyleFailure StyleTag = "failure"
	StyleWarning StyleTag = "warning"
	StyleDetail  StyleTag = "detail"
)

// StyleFormatter is a pure function from a style tag and text to display text.
type StyleFormatter func(styleTag StyleTag, text string) string

const (
	ansiResetSequenceConstant  = "\x1b[0m"
	ansiBoldSequenceConstant   = "\x1b[1m"
	ansiGreenSequenceConstant  = "\x1b[32m"
	ansiRedSequenceConstant    = "\x1b[31m"
	ansiYellowSequenceConstant = "\x1b[33m"
	ansiDimSequenceConstant    = "\x1b[2m"
)

var ansiStyleSequences = map[StyleTag]string{
	StyleHeading: ansiBoldSequenceConstant,
	StyleSuccess: ansiGreenSequenceConstant,
	StyleFailure: ansiRedSequenceConstant,
	StyleWarning: ansiYellowSequenceConstant,
	StyleDetail:  ansiDimSequenceConstant,
}

// PlainStyleFormatter returns the text unchanged.
func PlainStyleFormatter(styleTag StyleTag, text string) string {
	return text
}

// ANSIStyleFormatter wraps the text in the escape sequence registered for the
// tag, falling back to plain text for unknown tags.
func ANSIStyleFormatter(styleTag StyleTag, text string) string {
	sequence, known := ansiStyleSequences[styleTag]
	if !known {
		return text
	}
	return sequence + text + ansiResetSequenceConstant
}
