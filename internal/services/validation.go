package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/yukikurage/task-manager/internal/constants"
	"gorm.io/gorm"
)

var (
	validate        = validator.New()
	usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)
)

const deadlineDateLayout = "2006-01-02"

// cleanName trims a name and enforces presence and the length limit.
func cleanName(field, value string, maxLen int) (string, error) {
	name := strings.TrimSpace(value)
	if name == "" {
		return "", invalid(field, "this field is required")
	}
	if utf8.RuneCountInString(name) > maxLen {
		return "", invalid(field, fmt.Sprintf("ensure this value has at most %d characters", maxLen))
	}
	return name, nil
}

func cleanOptional(field, value string, maxLen int) (string, error) {
	value = strings.TrimSpace(value)
	if utf8.RuneCountInString(value) > maxLen {
		return "", invalid(field, fmt.Sprintf("ensure this value has at most %d characters", maxLen))
	}
	return value, nil
}

func cleanEmail(value string) (string, error) {
	email, err := cleanOptional("email", value, constants.MaxEmailLength)
	if err != nil || email == "" {
		return email, err
	}
	if err := validate.Var(email, "email"); err != nil {
		return "", invalid("email", "enter a valid email address")
	}
	return email, nil
}

func cleanUsername(value string) (string, error) {
	username, err := cleanName("username", value, constants.MaxUsernameLength)
	if err != nil {
		return "", err
	}
	if !usernamePattern.MatchString(username) {
		return "", invalid("username", "letters, digits and @/./+/-/_ only")
	}
	return username, nil
}

var commonPasswords = map[string]struct{}{
	"password": {}, "password1": {}, "password123": {}, "12345678": {}, "123456789": {},
	"1234567890": {}, "qwertyuiop": {}, "qwerty123": {}, "iloveyou": {}, "sunshine": {},
	"princess": {}, "football": {}, "baseball": {}, "superman": {}, "trustno1": {},
	"letmein1": {}, "welcome1": {}, "abc12345": {}, "admin123": {}, "passw0rd": {},
}

// checkPassword applies the password policy for new workers.
func checkPassword(username, password1, password2 string) error {
	if password1 == "" {
		return invalid("password1", "this field is required")
	}
	if password1 != password2 {
		return invalid("password2", "the two password fields didn't match")
	}
	if utf8.RuneCountInString(password1) < constants.MinPasswordLength {
		return invalid("password2", fmt.Sprintf("this password is too short, it must contain at least %d characters", constants.MinPasswordLength))
	}
	if strings.Trim(password1, "0123456789") == "" {
		return invalid("password2", "this password is entirely numeric")
	}

	lowerPassword := strings.ToLower(password1)
	lowerUsername := strings.ToLower(username)
	if lowerUsername != "" && (strings.Contains(lowerPassword, lowerUsername) || strings.Contains(lowerUsername, lowerPassword)) {
		return invalid("password2", "the password is too similar to the username")
	}
	if _, ok := commonPasswords[lowerPassword]; ok {
		return invalid("password2", "this password is too common")
	}
	return nil
}

// ParseDeadline reads a deadline given as YYYY-MM-DD (midnight in loc) or
// RFC 3339. An empty value means no deadline.
func ParseDeadline(raw string, loc *time.Location) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.ParseInLocation(deadlineDateLayout, raw, loc); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, invalid("deadline", "enter a valid date")
	}
	return &t, nil
}

// checkDeadline rejects deadlines whose calendar date in loc is before today's.
func checkDeadline(deadline *time.Time, now time.Time, loc *time.Location) error {
	if deadline == nil {
		return nil
	}
	if calendarDay(*deadline, loc).Before(calendarDay(now, loc)) {
		return invalid("deadline", "deadline can not be in the past")
	}
	return nil
}

func calendarDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// uniqueIDs drops zero and repeated ids, keeping first-seen order.
func uniqueIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// checkExists turns a lookup result into a field error when the row is missing.
func checkExists(field string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return invalid(field, "select a valid choice")
	}
	return fmt.Errorf("failed to check %s: %w", field, err)
}

func checkAllExist(field string, ids []uint64, count func([]uint64) (int64, error)) error {
	if len(ids) == 0 {
		return nil
	}
	found, err := count(ids)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", field, err)
	}
	if found != int64(len(ids)) {
		return invalid(field, "select a valid choice, one or more ids do not exist")
	}
	return nil
}

func cleanSearch(search string) string {
	return strings.TrimSpace(search)
}
