package insight

import (
	"regexp"
	"strings"

	"github.com/johnquangdev/mom-ai/internal/domain/entities"
)

var (
	actionLabelPrefixRe = regexp.MustCompile(`(?i)^(action|todo)[:\s-]*`)
	ownerBeforeVerbRe   = regexp.MustCompile(`\b([A-Z][a-z]+)\s+(will|to)\b`)
	ownerLabelRe        = regexp.MustCompile(`(?i)\bowner[:\s-]+([A-Za-z ]{2,40})`)
	explicitDateRe      = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}([/-]\d{2,4})?\b`)
)

// dueDateKeywords are matched in order; the first hit wins.
var dueDateKeywords = []string{
	"today", "tomorrow", "tonight", "eod", "this week", "next week", "friday", "monday", "tuesday", "wednesday",
	"thursday", "saturday", "sunday",
}

// ParseOwner resolves the action owner: a "Name will/to" pattern first, then
// an explicit "owner: <name>" label, then the fallback (usually the speaker).
func ParseOwner(text, fallbackOwner string) string {
	if m := ownerBeforeVerbRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := ownerLabelRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return fallbackOwner
}

// ParseDueDate returns the first matching relative-date keyword, else the
// first explicit numeric date token, else "".
func ParseDueDate(text string) string {
	lower := strings.ToLower(text)
	for _, key := range dueDateKeywords {
		if strings.Contains(lower, key) {
			return key
		}
	}
	return explicitDateRe.FindString(text)
}

// ParseActionItem builds an open action item from free text, stripping an
// "action:"/"todo:" label from the item text.
func ParseActionItem(text, fallbackOwner string) entities.ActionItem {
	if fallbackOwner == "" {
		fallbackOwner = entities.DefaultSpeaker
	}
	cleaned := Normalize(text)
	return entities.ActionItem{
		Owner:  ParseOwner(cleaned, fallbackOwner),
		Item:   actionLabelPrefixRe.ReplaceAllString(cleaned, ""),
		Due:    ParseDueDate(cleaned),
		Status: entities.ActionItemStatusOpen,
	}
}
