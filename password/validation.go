package password

import (
	"strings"
	"unicode"
)

// MinLength is the shortest admin password cmd/hash_password accepts.
const MinLength = 10

// ValidationError lists every rule a password broke.
type ValidationError struct {
	Problems []string
}

func (e ValidationError) Error() string {
	return "weak password: " + strings.Join(e.Problems, "; ")
}

type rule struct {
	ok      func(string) bool
	problem string
}

var rules = []rule{
	{func(p string) bool { return len([]rune(p)) >= MinLength }, "shorter than 10 characters"},
	{func(p string) bool { return strings.IndexFunc(p, unicode.IsLetter) >= 0 }, "no letter"},
	{func(p string) bool { return strings.IndexFunc(p, unicode.IsDigit) >= 0 }, "no digit"},
	{func(p string) bool { return strings.TrimSpace(p) == p }, "leading or trailing whitespace"},
}

// ValidatePasswordStrength checks an admin password against the rules above.
func ValidatePasswordStrength(password string) error {
	var problems []string
	for _, r := range rules {
		if !r.ok(password) {
			problems = append(problems, r.problem)
		}
	}
	if len(problems) > 0 {
		return ValidationError{Problems: problems}
	}
	return nil
}
