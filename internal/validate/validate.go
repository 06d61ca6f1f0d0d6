package validate

import "regexp"

var (
	mobileRe = regexp.MustCompile(`^\d{10,15}$`)
	emailRe  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	digitsRe = regexp.MustCompile(`\D`)
)

// Mobile numbers are 10-15 digits after sanitization
func IsValidMobileNumber(number string) bool {
	return mobileRe.MatchString(number)
}

// Strips everything that is not a digit
func SanitizeMobileNumber(number string) string {
	return digitsRe.ReplaceAllString(number, "")
}

func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}
