// Package form validates user input before anything is sent to the backend.
//
// Each Validate method stops at the first problem and returns it as a
// *ValidationError whose Message is ready to show to the user.
package form

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/edulog/etugon/internal/model"
)

// MaxImages is the most photos a report may carry.
const MaxImages = 4

// MinPasswordLength is the shortest password signup accepts.
const MinPasswordLength = 6

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("validation failed")

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError describes the first invalid field of a form.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is makes errors.Is(err, ErrValidation) true.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Report is the new-report form.
type Report struct {
	Title       string
	Description string
	Category    string
	Location    string
	Images      []string
	IsAnonymous bool
}

// Validate checks fields in the order the form shows them.
func (f Report) Validate() error {
	if blank(f.Title) {
		return invalid("title", "Please enter a title for your report")
	}
	if blank(f.Description) {
		return invalid("description", "Please enter a description")
	}
	if blank(f.Category) {
		return invalid("category", "Please select a category")
	}
	if _, err := model.ParseCategory(f.Category); err != nil {
		return invalid("category", fmt.Sprintf("Unknown category %q", f.Category))
	}
	if len(f.Images) == 0 {
		return invalid("images", "Please add at least one image")
	}
	if len(f.Images) > MaxImages {
		return invalid("images", fmt.Sprintf("You can only add up to %d images", MaxImages))
	}
	if blank(f.Location) {
		return invalid("location", "Please enter a location")
	}
	return nil
}

// Request converts a valid form into the backend payload. photoURLs replaces
// the form's image references once they have been uploaded.
func (f Report) Request(userID int, photoURLs []string) (model.CreateReportRequest, error) {
	if err := f.Validate(); err != nil {
		return model.CreateReportRequest{}, err
	}
	category, _ := model.ParseCategory(f.Category)
	if photoURLs == nil {
		photoURLs = f.Images
	}
	return model.CreateReportRequest{
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		Category:    category,
		PhotoURLs:   photoURLs,
		Location:    strings.TrimSpace(f.Location),
		IsAnonymous: f.IsAnonymous,
		Status:      model.StatusPending,
		UserID:      userID,
	}, nil
}

// Login is the login form.
type Login struct {
	Email    string
	Password string
}

// Validate requires both fields.
func (f Login) Validate() error {
	if blank(f.Email) || f.Password == "" {
		return invalid("email", "Please enter both email and password")
	}
	return nil
}

// Request converts the form into the backend payload.
func (f Login) Request() model.LoginRequest {
	return model.LoginRequest{Email: strings.TrimSpace(f.Email), Password: f.Password}
}

// Signup is the registration form.
type Signup struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	HouseNumber     string
	Municipality    string
	Barangay        string
}

// Validate requires every field, a matching confirmation and a long enough password.
func (f Signup) Validate() error {
	for _, v := range []string{f.Username, f.Email, f.Password, f.ConfirmPassword, f.HouseNumber, f.Municipality, f.Barangay} {
		if blank(v) {
			return invalid("form", "Please complete all fields")
		}
	}
	if !emailPattern.MatchString(strings.TrimSpace(f.Email)) {
		return invalid("email", "Please enter a valid email address")
	}
	if f.Password != f.ConfirmPassword {
		return invalid("confirm_password", "Passwords do not match")
	}
	if len(f.Password) < MinPasswordLength {
		return invalid("password", fmt.Sprintf("Password must be at least %d characters long", MinPasswordLength))
	}
	if !KnownBarangay(f.Municipality, f.Barangay) {
		return invalid("barangay", fmt.Sprintf("%q is not a barangay of %s", f.Barangay, f.Municipality))
	}
	return nil
}

// Request converts the form into the backend payload.
func (f Signup) Request() model.SignupRequest {
	return model.SignupRequest{
		Username:     strings.TrimSpace(f.Username),
		Email:        strings.TrimSpace(f.Email),
		Password:     f.Password,
		HouseNumber:  strings.TrimSpace(f.HouseNumber),
		Municipality: strings.TrimSpace(f.Municipality),
		Barangay:     strings.TrimSpace(f.Barangay),
	}
}
