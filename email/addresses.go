package email

import (
	"regexp"
	"strings"
)

// Address lists may mix comma and semicolon separators, and a separator is
// only honored right after an address (or the closing bracket of a
// "Name <addr>" form). A sentinel is inserted at those positions and the
// list is split on it, so commas inside a bracketed display form survive.
var (
	separatorPattern = regexp.MustCompile(`(@.*?>?)\s*[,;]`)
	sentinelPattern  = regexp.MustCompile(`\s*<\|>\s*`)
)

const sentinel = "<|>"

// SplitAddressList splits a string holding one or more email addresses
// separated by commas or semicolons into the individual address tokens,
// each still possibly in "Name <addr>" form. An empty input is an error.
func SplitAddressList(raw string) ([]string, error) {
	if _, err := Require("emailAddressList", raw); err != nil {
		return nil, err
	}
	marked := separatorPattern.ReplaceAllString(raw, "${1}"+sentinel)
	marked = strings.TrimSuffix(marked, sentinel)
	tokens := sentinelPattern.Split(marked, -1)
	// A trailing separator plus whitespace leaves an empty trailing token
	// that would become a recipient with an empty address.
	for len(tokens) > 0 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens, nil
}
