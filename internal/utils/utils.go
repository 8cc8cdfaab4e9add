package utils

import "regexp"

var fileNameRe = regexp.MustCompile(`[^а-яА-Яa-zA-Z0-9]+`)

// SanitizeFileName replaces every run of characters that is unsafe in a
// file name with a single underscore.
func SanitizeFileName(name string) string {
	return fileNameRe.ReplaceAllString(name, "_")
}
