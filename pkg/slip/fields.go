package slip

import (
	"regexp"
	"strings"
)

// segments splits document text on any of the vendor's anchor phrases,
// case-insensitively. Everything before the first anchor is letterhead and
// is discarded; each remaining piece is one candidate order.
func segments(text string, anchors ...string) []string {
	quoted := make([]string, len(anchors))
	for i, a := range anchors {
		quoted[i] = regexp.QuoteMeta(a)
	}
	re := regexp.MustCompile("(?i)" + strings.Join(quoted, "|"))
	parts := re.Split(text, -1)
	if len(parts) <= 1 {
		return nil
	}
	return parts[1:]
}

// fieldValue tries each pattern in order and returns the first capture
// group of the first one that matches. Pattern lists are ordered by
// language/layout, so adding a vendor locale means appending a pattern,
// not touching callers.
func fieldValue(text string, patterns []*regexp.Regexp) string {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// dedupeWords collapses consecutive repeated words, keeping first
// occurrences in order. Slip address blocks often repeat the recipient name
// right after the phone number.
func dedupeWords(s string) string {
	words := strings.Fields(s)
	out := words[:0]
	prev := ""
	for _, w := range words {
		if w == prev {
			continue
		}
		out = append(out, w)
		prev = w
	}
	return strings.Join(out, " ")
}

// itemLineRe matches a provisional table row: quantity, a possible SKU
// token, then free-text description.
var itemLineRe = regexp.MustCompile(`^(\d+)\s*(\S*)\s*(.*)$`)

// tableSpec describes where a vendor's line-item table starts and stops.
type tableSpec struct {
	headers      []string // scan starts after a line containing one of these
	stops        []string // a line starting with one of these ends the scan
	skuLabels    []string // a labeled SKU line overrides the provisional SKU
	itemNoLabels []string // an item-number label closes the override window
}

type tableRow struct {
	quantity string
	sku      string
	desc     string
}

// scanTable extracts provisional line items from one segment. After a row
// is taken, a following "SKU:"-labeled line replaces the row's SKU unless
// an item-number label was seen first.
func scanTable(segment string, spec tableSpec) []tableRow {
	lines := strings.Split(segment, "\n")

	start := -1
	for i, line := range lines {
		if containsAny(line, spec.headers) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}

	var rows []tableRow
	skuLocked := false
	for _, raw := range lines[start:] {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if hasAnyPrefix(line, spec.stops) {
			break
		}
		if label, ok := labelValue(line, spec.skuLabels); ok {
			if len(rows) > 0 && !skuLocked && label != "" {
				rows[len(rows)-1].sku = label
			}
			continue
		}
		if _, ok := labelValue(line, spec.itemNoLabels); ok {
			skuLocked = true
			continue
		}
		if m := itemLineRe.FindStringSubmatch(line); m != nil {
			rows = append(rows, tableRow{quantity: m[1], sku: m[2], desc: strings.TrimSpace(m[3])})
			skuLocked = false
		}
	}
	return rows
}

func containsAny(line string, needles []string) bool {
	lower := strings.ToLower(line)
	for _, n := range needles {
		if strings.Contains(lower, strings.ToLower(n)) {
			return true
		}
	}
	return false
}

func hasAnyPrefix(line string, prefixes []string) bool {
	lower := strings.ToLower(line)
	for _, p := range prefixes {
		if strings.HasPrefix(lower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

// labelValue returns the text after a "Label:" prefix when line starts
// with one of the labels.
func labelValue(line string, labels []string) (string, bool) {
	lower := strings.ToLower(line)
	for _, label := range labels {
		l := strings.ToLower(label)
		if strings.HasPrefix(lower, l) {
			return strings.TrimSpace(strings.TrimPrefix(line[len(label):], ":")), true
		}
	}
	return "", false
}
