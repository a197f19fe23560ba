package tax

import (
	"strings"
)

// ValidateRUT reports whether a RUT-style tax identifier carries a correct
// modulo-11 check digit. Dots, dashes and spaces are stripped before
// checking; the check digit may be 0-9 or K (case insensitive).
func ValidateRUT(id string) bool {
	cleaned := strings.NewReplacer(".", "", "-", "", " ", "").Replace(id)
	if len(cleaned) < 2 {
		return false
	}

	body := cleaned[:len(cleaned)-1]
	check := cleaned[len(cleaned)-1]

	var sum int

	weight := 2
	for i := len(body) - 1; i >= 0; i-- {
		c := body[i]
		if c < '0' || c > '9' {
			return false
		}

		sum += int(c-'0') * weight

		weight++
		if weight > 7 {
			weight = 2
		}
	}

	var want byte

	switch m := 11 - sum%11; m {
	case 11:
		want = '0'
	case 10:
		want = 'K'
	default:
		want = byte('0' + m)
	}

	if check >= 'a' && check <= 'z' {
		check -= 'a' - 'A'
	}

	return check == want
}
