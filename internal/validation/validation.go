// Package validation implements request input validation rules.
package validation

import (
	"regexp"
	"strings"
)

// Size budgets for uploaded images, applied to the decoded byte size computed
// from the base64 payload before any upload happens.
const (
	ImageSizeLimit      = 7_000_000  // 7MB per image
	ImageBatchSizeLimit = 20_000_000 // 20MB per batch
)

const (
	MinNameLength     = 2
	MinUsernameLength = 3
	MaxUsernameLength = 20
	MinPasswordLength = 6
	MaxBiographyLen   = 150
)

var (
	usernameDisallowed = regexp.MustCompile(`[^a-z0-9_]`)
	emailFormat        = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9-]+(?:\.[a-zA-Z0-9-]+)*$`)
)

// RegisterInput holds the fields of a registration request.
type RegisterInput struct {
	Name     string
	Username string
	Email    string
	Password string
}

// ValidateRegister checks every registration field and returns the full list
// of failures so the client can show them all at once.
func ValidateRegister(in RegisterInput) []string {
	var errs []string

	if len(in.Name) < MinNameLength {
		errs = append(errs, "Full Name must be at least 2 characters long")
	}

	if len(in.Username) < MinUsernameLength || len(in.Username) > MaxUsernameLength {
		errs = append(errs, "Username must be between 3 and 20 characters long")
	}
	if usernameDisallowed.MatchString(in.Username) {
		errs = append(errs, "Username can't contain capital letters, spaces, or special characters")
	}

	if len(in.Password) < MinPasswordLength || strings.ContainsAny(in.Password, " \t\n") {
		errs = append(errs, "Password must be at least 6 characters long and not have spaces")
	}

	if !emailFormat.MatchString(in.Email) {
		errs = append(errs, "Invalid email format")
	}

	return errs
}

// ValidateProfileEdits checks the editable profile fields.
func ValidateProfileEdits(name, biography string) string {
	if len(name) < MinNameLength {
		return "Name can not be less than 2 characters long"
	}
	if len(biography) > MaxBiographyLen {
		return "Biography can not be longer than 150 characters"
	}
	return ""
}

// DecodedImageSize returns the byte size of a base64-encoded image before it
// was encoded, without decoding it.
func DecodedImageSize(b64 string) int {
	if b64 == "" {
		return 0
	}
	padding := 0
	for _, r := range b64[max(0, len(b64)-2):] {
		if r == '=' {
			padding++
		}
	}
	return len(b64)*3/4 - padding
}

// ValidatePostImages enforces the per-image and per-batch size budgets.
// Returns an error message, or "" when the batch is acceptable.
func ValidatePostImages(images []string) string {
	if len(images) == 0 {
		return "At least 1 image needs to be provided"
	}

	totalSize := 0
	for _, image := range images {
		size := DecodedImageSize(image)
		totalSize += size

		if size > ImageSizeLimit {
			return "Each image must be smaller than 7MB"
		}
		if totalSize > ImageBatchSizeLimit {
			return "Total size for all images must be less than 20MB"
		}
	}
	return ""
}

// ValidateProfileImage enforces the profile picture size budget.
func ValidateProfileImage(image string) string {
	if image == "" {
		return "No image was provided"
	}
	if DecodedImageSize(image) > ImageSizeLimit {
		return "Profile picture must be smaller than 7MB"
	}
	return ""
}
