package insight

import (
	"errors"
	"strings"
)

// ErrMalformedResponse means the model output contained none of the
// expected section headers. Callers fall back to deterministic output.
var ErrMalformedResponse = errors.New("no recognized section header in response")

var sectionHeaders = []string{"OVERVIEW:", "KEY_FINDINGS:", "IMPLICATIONS:"}

// parseSections reads a model response line by line. A line starting
// with a section header opens that section, with the remainder of the
// line as its first content; any other non-blank line is appended to
// the active section. Lines before the first header are ignored.
func parseSections(response string) (Insights, error) {
	sections := map[string]*strings.Builder{
		"OVERVIEW:":     {},
		"KEY_FINDINGS:": {},
		"IMPLICATIONS:": {},
	}

	active := ""
	headerSeen := false
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if header, rest, ok := matchHeader(line); ok {
			active = header
			headerSeen = true
			if rest != "" {
				appendLine(sections[active], rest)
			}
			continue
		}

		if active != "" {
			appendLine(sections[active], line)
		}
	}

	if !headerSeen {
		return Insights{}, ErrMalformedResponse
	}

	return Insights{
		Overview:     sections["OVERVIEW:"].String(),
		KeyFindings:  sections["KEY_FINDINGS:"].String(),
		Implications: sections["IMPLICATIONS:"].String(),
	}, nil
}

func matchHeader(line string) (header, rest string, ok bool) {
	for _, h := range sectionHeaders {
		if strings.HasPrefix(line, h) {
			return h, strings.TrimSpace(strings.TrimPrefix(line, h)), true
		}
	}
	return "", "", false
}

func appendLine(b *strings.Builder, line string) {
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(line)
}
