package def

import (
	"strings"
)

// sectionLines returns the body of a DEF section, the lines strictly
// between the "<KEYWORD> <count> ;" marker and its "END <KEYWORD>"
// marker. The declared count is required for the marker to be
// recognized but is otherwise advisory; DEF writers routinely get it
// wrong and the records themselves are authoritative.
func sectionLines(lines []string, keyword string) ([]string, bool) {
	var body []string
	inSection := false
	for _, line := range lines {
		fields := strings.Fields(line)
		if !inSection {
			if isSectionStart(fields, keyword) {
				inSection = true
			}
			continue
		}
		if len(fields) == 2 && fields[0] == "END" && fields[1] == keyword {
			return body, true
		}
		body = append(body, line)
	}
	if inSection {
		// Unterminated section: keep what we saw.
		return body, true
	}
	return nil, false
}

// isSectionStart matches "KEYWORD <n> ;" with the terminator either
// attached to the count or standing alone. Matching the whole first
// field keeps SPECIALNETS from being mistaken for NETS.
func isSectionStart(fields []string, keyword string) bool {
	if len(fields) < 2 || fields[0] != keyword {
		return false
	}
	count := fields[1]
	switch {
	case len(fields) >= 3 && fields[2] == ";":
	case strings.HasSuffix(count, ";"):
		count = strings.TrimSuffix(count, ";")
	default:
		return false
	}
	return isDigits(count)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// assembleRecords rebuilds logical records from the physical lines of a
// section body. A record opens at a "- "-prefixed line and closes at a
// trailing semicolon; records may span any number of lines. A new "- "
// line implicitly closes an unterminated record, and so does the end of
// the section — in both cases the terminator is supplied so the record
// still parses.
func assembleRecords(lines []string) []string {
	var records []string
	current := ""

	flush := func() {
		if current == "" {
			return
		}
		if !strings.HasSuffix(strings.TrimRight(current, " \t"), ";") {
			current += " ;"
		}
		records = append(records, current)
		current = ""
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "- ") {
			flush()
			current = line
		} else if current != "" {
			current += " " + line
		}
		if current != "" && strings.HasSuffix(current, ";") {
			records = append(records, current)
			current = ""
		}
	}
	flush()
	return records
}
