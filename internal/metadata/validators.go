package metadata

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/asaskevich/govalidator"
)

var (
	md5Re           = regexp.MustCompile(`^[a-fA-F0-9]{32}$`)
	symbolicIdentRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_.-]*$`)
)

// ValidateEmail checks that val is a well-formed email address.
func ValidateEmail(val string) error {
	if !govalidator.IsEmail(val) {
		return fmt.Errorf("invalid email address: %s", val)
	}
	return nil
}

// ValidateURL checks that val is a well-formed URL.
func ValidateURL(val string) error {
	if !govalidator.IsURL(val) {
		return fmt.Errorf("invalid URL: %s", val)
	}
	return nil
}

// ValidateHTTPURL checks that val is a well-formed HTTP or HTTPS URL.
func ValidateHTTPURL(val string) error {
	if err := ValidateURL(val); err != nil {
		return err
	}
	if !strings.HasPrefix(val, "http:") && !strings.HasPrefix(val, "https:") {
		return fmt.Errorf("must be an HTTP URL: %s", val)
	}
	return nil
}

// ValidateMD5 checks that val is a 128-bit hexadecimal MD5 string.
func ValidateMD5(val string) error {
	if !md5Re.MatchString(val) {
		return fmt.Errorf("MD5 must be a 128-bit hexadecimal number: %s", val)
	}
	return nil
}

// ValidateSymbolicIdent checks the identifier form used for entry,
// challenge and experiment ids.
func ValidateSymbolicIdent(val string) error {
	if !symbolicIdentRe.MatchString(val) {
		return fmt.Errorf("invalid identifier: %s", val)
	}
	return nil
}
