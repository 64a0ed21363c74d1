package services

import "strings"

// MaxAddresses is the advisory ceiling on stops per run. Exceeding it is
// not an error: the pipeline proceeds and records a warning rather than
// truncating user input.
const MaxAddresses = 25

// NormalizeAddresses splits raw multi-line text into an ordered list of
// trimmed, non-empty address strings. Order is preserved and duplicates
// are kept: identical addresses are legal input and collapse only if the
// geocoder maps them to the same coordinate.
func NormalizeAddresses(raw string) ([]string, error) {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}

	if len(out) == 0 {
		return nil, ErrEmptyInput
	}

	return out, nil
}
