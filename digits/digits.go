package digits

import "strings"

// Placeholder is the format rune replaced by one digit.
const Placeholder = '#'

// Format extracts the digits of input and lays them into format, one digit
// per Placeholder. Runes of format other than Placeholder are copied as is.
func Format(input, format string, opts ...Option) string {
	// 1. Apply options
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	// 2. Extract digits; none at all is a failure
	extracted := Extract(input)
	if extracted == "" {
		return failed(o.FailedOutput, input, extracted)
	}
	digits := trimZeros(extracted, o.Trim)

	// 3. Too few digits fails only when incomplete formats are refused
	slots := strings.Count(format, string(Placeholder))
	incomplete := len(digits) < slots
	if incomplete && !o.IncompleteFormat {
		return failed(o.FailedOutput, input, extracted)
	}

	// 4. Fill placeholders
	var b strings.Builder
	b.Grow(len(format) + len(digits))
	i := 0
	for _, r := range format {
		if i >= len(digits) && (r == Placeholder || (incomplete && o.LastDigitEnds)) {
			break
		}
		if r == Placeholder {
			b.WriteByte(digits[i])
			i++
			continue
		}
		b.WriteRune(r)
	}

	// 5. Surplus digits
	if o.Expand && i < len(digits) {
		b.WriteString(digits[i:])
	}

	return b.String()
}

// Extract returns the ASCII digits of s in order.
func Extract(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}

	return b.String()
}

func failed(mode FailedOutput, input, extracted string) string {
	switch mode {
	case Original:
		return input
	case Digits:
		return extracted
	}

	return ""
}

func trimZeros(d string, mode Trim) string {
	switch mode {
	case TrimLeading:
		d = strings.TrimLeft(d, "0")
	case TrimTrailing:
		d = strings.TrimRight(d, "0")
	case TrimBoth:
		d = strings.Trim(d, "0")
	}
	if d == "" {
		return "0"
	}

	return d
}
