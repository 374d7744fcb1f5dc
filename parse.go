package q

// digitValue returns the numeric value of the digit character c, or -1 if
// c is not an ASCII letter or digit.
func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	default:
		return -1
	}
}

// maxIntMagnitude is the largest integer part a Q can hold.
const maxIntMagnitude = int64(MaxValue) >> FracBits

// Parse converts text to a Q in the given base (2..36), consuming at most
// dp fractional digits (or as many as round-trip precision requires, if
// dp is negative — see Format); fractional digits beyond that limit are
// reported as ErrBadDigit. On success it returns the parsed value
// and a nil error; on overflow it returns a saturated value alongside a
// non-nil *ParseError so the caller can choose to use the best-effort
// result.
func (c Config) Parse(text string, base, dp int) (Q, error) {
	s := text
	neg := false
	i := 0
	if i < len(s) && s[i] == '-' {
		neg = true
		i++
	}

	start := i
	var intAcc int64
	overflow := false
	for i < len(s) {
		d := digitValue(s[i])
		if d < 0 || d >= base {
			break
		}
		intAcc = intAcc*int64(base) + int64(d)
		if intAcc > maxIntMagnitude {
			overflow = true
		}
		i++
	}
	intDigits := i - start

	if intDigits == 0 && !(i < len(s) && s[i] == '.') {
		return 0, &ParseError{Kind: ErrNoDigits, Text: text}
	}

	limit := dp
	if limit < 0 {
		limit = maxDigitsForBase(base)
	}

	var fracNum, fracDenom int64
	fracDenom = 1
	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && fracDigits < limit {
			d := digitValue(s[i])
			if d < 0 || d >= base {
				break
			}
			fracNum = fracNum*int64(base) + int64(d)
			fracDenom *= int64(base)
			i++
			fracDigits++
		}
	}

	if intDigits == 0 && fracDigits == 0 {
		return 0, &ParseError{Kind: ErrNoDigits, Text: text}
	}

	if i < len(s) {
		if s[i] == '.' {
			return 0, &ParseError{Kind: ErrBadSeparator, Text: text}
		}
		return 0, &ParseError{Kind: ErrBadDigit, Text: text}
	}

	var fracQ int64
	if fracDigits > 0 {
		fracQ = ((fracNum << FracBits) + fracDenom/2) / fracDenom
	}

	mag := intAcc<<FracBits + fracQ
	if overflow || mag > int64(MaxValue) {
		if neg {
			return MinValue, &ParseError{Kind: ErrOverflow, Text: text}
		}
		return MaxValue, &ParseError{Kind: ErrOverflow, Text: text}
	}

	result := Q(mag)
	if neg {
		result = -result
	}
	return result, nil
}

// Parse is shorthand for Default.Parse, using Default.Radix and
// Default.Places.
func Parse(text string) (Q, error) { return Default.Parse(text, Default.Radix, Default.Places) }

// ParseBase parses text in an explicit base, consuming as many fractional
// digits as round-trip precision requires.
func ParseBase(text string, base int) (Q, error) { return Default.Parse(text, base, MaxPlaces) }
