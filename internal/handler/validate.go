package handler

import (
	"fmt"
	"net/http"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/daniswhoiam/movie-api/internal/auth"
)

var passwordTooLongMsg = fmt.Sprintf("Password must be at most %d bytes", auth.MaxPasswordBytes)

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationErrors []fieldError

func (v *validationErrors) add(field, msg string) {
	*v = append(*v, fieldError{Field: field, Message: msg})
}

func (v validationErrors) write(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": v})
}

func checkUsername(errs *validationErrors, username string) {
	if username == "" {
		errs.add("Username", "Username is required")
		return
	}
	for _, r := range username {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			errs.add("Username", "Username contains non alphanumeric characters - not allowed.")
			return
		}
	}
}

func checkPassword(errs *validationErrors, password string) {
	switch {
	case password == "":
		errs.add("Password", "Password is required")
	case len(password) > auth.MaxPasswordBytes:
		errs.add("Password", passwordTooLongMsg)
	}
}

func checkEmail(errs *validationErrors, email string) {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		errs.add("Email", "Email does not appear to be valid")
	}
}

var birthLayouts = []string{"2006-01-02", time.RFC3339}

// parseBirth accepts a calendar date or an RFC 3339 timestamp.
func parseBirth(errs *validationErrors, raw string) *time.Time {
	for _, layout := range birthLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t
		}
	}
	errs.add("Birth", "Birth must be a date (YYYY-MM-DD)")
	return nil
}
