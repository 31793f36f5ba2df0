package diag

import (
	"regexp"
	"strings"
)

// Markers delimiting the useful range of the sweep output. Everything
// before the start marker and after the last end marker is shell noise
// (login banners, env dumps) and is discarded.
const (
	startMarker = "=== Check Start ==="
	endMarker   = "======================="
	splitMarker = "=== Detailed Report ==="
)

// ansiRegex matches ANSI escape sequences in the sweep output.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape sequences and stray escape bytes,
// and trims surrounding whitespace.
func stripANSI(line string) string {
	clean := ansiRegex.ReplaceAllString(line, "")
	clean = strings.ReplaceAll(clean, "\x1b", "")
	return strings.TrimSpace(clean)
}

// Parse converts raw diagnostic sweep output into a structured Report.
//
// The expected shape is:
//
//	=== Check Start ===
//	[PASS] check name, short description
//	[FAIL] other check, short description
//	=== Detailed Report ===
//	other check, first log line
//	other check, second log line
//	=======================
//
// Lines outside the markers are ignored. "Plugin error:" lines in the
// summary section become FAIL items so a broken check plugin shows up
// in the report instead of silently vanishing.
func Parse(text string) *Report {
	valid := extractValidRange(text)

	parts := strings.SplitN(valid, splitMarker, 2)
	summaryPart := parts[0]

	detailedRaw := ""
	if len(parts) > 1 {
		detailedRaw = splitMarker + parts[1]
	}
	detailedClean := stripANSI(detailedRaw)

	detailsMap := parseDetailLines(detailedClean)
	summary := parseSummaryLines(summaryPart, detailsMap)

	return &Report{
		Summary:  summary,
		Detailed: detailedClean,
		Raw:      valid,
	}
}

// extractValidRange trims the text to the marker-delimited region.
// If either marker is missing the full text is used as-is.
func extractValidRange(text string) string {
	start := strings.Index(text, startMarker)
	end := strings.LastIndex(text, endMarker)
	if start == -1 || end == -1 || end < start {
		return text
	}
	return text[start : end+len(endMarker)]
}

// parseDetailLines builds a name -> log mapping from the detailed
// section. Each line is "name, log text"; repeated names append with a
// newline so multi-line logs stay attached to their check.
func parseDetailLines(detailed string) map[string]string {
	details := make(map[string]string)
	for _, line := range strings.Split(detailed, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, splitMarker) {
			continue
		}

		name, log, found := strings.Cut(line, ",")
		if !found {
			continue
		}
		name = strings.TrimSpace(name)
		log = strings.TrimSpace(log)

		if existing, ok := details[name]; ok {
			details[name] = existing + "\n" + log
		} else {
			details[name] = log
		}
	}
	return details
}

// parseSummaryLines extracts CheckItems from the summary section.
func parseSummaryLines(summaryPart string, detailsMap map[string]string) []CheckItem {
	var items []CheckItem

	for _, line := range strings.Split(summaryPart, "\n") {
		clean := stripANSI(line)

		switch {
		case strings.Contains(clean, "[PASS]") || strings.Contains(clean, "[FAIL]"):
			items = append(items, parseCheckLine(clean, detailsMap))

		case strings.HasPrefix(clean, "Plugin error:"):
			items = append(items, parsePluginError(clean))
		}
	}

	return items
}

// parseCheckLine parses a "[PASS] name, description" line.
func parseCheckLine(clean string, detailsMap map[string]string) CheckItem {
	status := StatusFail
	tag := "[FAIL]"
	if strings.Contains(clean, "[PASS]") {
		status = StatusPass
		tag = "[PASS]"
	}

	content := strings.Replace(clean, tag, "", 1)

	name, desc, found := strings.Cut(content, ",")
	if found {
		name = strings.TrimSpace(name)
		desc = strings.TrimSpace(desc)
	} else {
		name = strings.TrimSpace(content)
		desc = ""
	}

	return CheckItem{
		Status:      status,
		Name:        name,
		Description: desc,
		Details:     detailsMap[name],
	}
}

// parsePluginError converts a "Plugin error: ..." line into a FAIL item.
// The check name is recovered from the "class type <Name>" fragment the
// plugin loader emits; without it a generic name is used.
func parsePluginError(clean string) CheckItem {
	const classMarker = "class type "

	name := "Plugin Load Error"
	if idx := strings.Index(clean, classMarker); idx != -1 {
		fields := strings.Fields(clean[idx+len(classMarker):])
		if len(fields) > 0 {
			name = fields[0]
		} else {
			name = "Plugin Error"
		}
	}

	return CheckItem{
		Status:      StatusFail,
		Name:        name,
		Description: clean,
		Details:     "Raw Error: " + clean,
	}
}
