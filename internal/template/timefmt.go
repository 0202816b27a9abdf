package template

import (
	"strconv"
	"strings"
	"time"
)

const maxFractionDigits = 7

// FormatTime renders t using a custom date/time pattern made of repeated letters:
//
//	yyyy yy y   year          MMMM MMM MM M  month
//	dddd ddd dd d  day        HH H  hour (0-23)    hh h  hour (1-12)
//	mm m  minute              ss s  second
//	f..fffffff  fraction      F..FFFFFFF  fraction without trailing zeros
//	tt t  AM/PM designator    zzz zz z  UTC offset
//
// Text in single or double quotes and characters escaped with a backslash are copied
// verbatim, as is every other character.
func FormatTime(t time.Time, pattern string) string {
	var builder strings.Builder

	builder.Grow(len(pattern) + 8)

	runes := []rune(pattern)

	for i := 0; i < len(runes); {
		current := runes[i]

		switch current {
		case '\'', '"':
			end := i + 1
			for end < len(runes) && runes[end] != current {
				end++
			}

			builder.WriteString(string(runes[i+1 : end]))

			i = end + 1

			continue
		case '\\':
			if i+1 < len(runes) {
				builder.WriteRune(runes[i+1])
			}

			i += 2

			continue
		case '%':
			i++

			continue
		}

		count := 1
		for i+count < len(runes) && runes[i+count] == current {
			count++
		}

		if !writeSpecifier(&builder, t, current, count) {
			builder.WriteString(string(runes[i : i+count]))
		}

		i += count
	}

	return builder.String()
}

//nolint:cyclop // one case per specifier letter.
func writeSpecifier(builder *strings.Builder, t time.Time, letter rune, count int) bool {
	switch letter {
	case 'y':
		year := t.Year()

		switch {
		case count == 1:
			builder.WriteString(strconv.Itoa(year % 100))
		case count == 2:
			builder.WriteString(pad(year%100, 2))
		default:
			builder.WriteString(pad(year, count))
		}
	case 'M':
		switch {
		case count >= 4:
			builder.WriteString(t.Month().String())
		case count == 3:
			builder.WriteString(t.Month().String()[:3])
		default:
			builder.WriteString(pad(int(t.Month()), count))
		}
	case 'd':
		switch {
		case count >= 4:
			builder.WriteString(t.Weekday().String())
		case count == 3:
			builder.WriteString(t.Weekday().String()[:3])
		default:
			builder.WriteString(pad(t.Day(), count))
		}
	case 'h':
		hour := t.Hour() % 12
		if hour == 0 {
			hour = 12
		}

		builder.WriteString(pad(hour, min(count, 2)))
	case 'H':
		builder.WriteString(pad(t.Hour(), min(count, 2)))
	case 'm':
		builder.WriteString(pad(t.Minute(), min(count, 2)))
	case 's':
		builder.WriteString(pad(t.Second(), min(count, 2)))
	case 'f', 'F':
		builder.WriteString(fraction(t, min(count, maxFractionDigits), letter == 'F'))
	case 't':
		designator := "AM"
		if t.Hour() >= 12 {
			designator = "PM"
		}

		if count == 1 {
			designator = designator[:1]
		}

		builder.WriteString(designator)
	case 'z':
		builder.WriteString(offset(t, count))
	default:
		return false
	}

	return true
}

func pad(value, width int) string {
	digits := strconv.Itoa(value)
	if len(digits) >= width {
		return digits
	}

	return strings.Repeat("0", width-len(digits)) + digits
}

func fraction(t time.Time, digits int, trim bool) string {
	divisor := 1
	for range 9 - digits {
		divisor *= 10
	}

	text := pad(t.Nanosecond()/divisor, digits)
	if trim {
		text = strings.TrimRight(text, "0")
	}

	return text
}

func offset(t time.Time, count int) string {
	_, seconds := t.Zone()

	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60

	switch count {
	case 1:
		return sign + strconv.Itoa(hours)
	case 2:
		return sign + pad(hours, 2)
	default:
		return sign + pad(hours, 2) + ":" + pad(minutes, 2)
	}
}
