package validate

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// ObjectID parses a path/body identifier into its native form.
func ObjectID(s string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(s))
	return id, err == nil
}

// Required trims and rejects empty values; the only body validation
// beyond shape checks is presence.
func Required(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 254 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}
