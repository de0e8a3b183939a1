package descriptions

import (
	"fmt"
	"strings"
)

// Request carries the structured listing details sent to the copywriter.
type Request struct {
	Title    string  `json:"title"`
	Type     string  `json:"type"`
	City     string  `json:"city"`
	Bedrooms int     `json:"bedrooms"`
	Area     float64 `json:"area"`
	Bullets  string  `json:"bullets"`
}

// BuildPrompt renders the copywriting instruction for r.
func BuildPrompt(r Request) string {
	var b strings.Builder
	b.WriteString("As a professional real estate copywriter, write a compelling property description for a direct sale by owner.\n")
	b.WriteString("THE DESCRIPTION MUST BE IN HEBREW.\n\n")
	b.WriteString("Property Details:\n")
	fmt.Fprintf(&b, "- Title: %s\n", r.Title)
	fmt.Fprintf(&b, "- Type: %s\n", r.Type)
	fmt.Fprintf(&b, "- Location: %s\n", r.City)
	fmt.Fprintf(&b, "- Bedrooms: %d\n", r.Bedrooms)
	fmt.Fprintf(&b, "- Size: %s sqm\n", formatArea(r.Area))
	fmt.Fprintf(&b, "- Key Features: %s\n\n", r.Bullets)
	b.WriteString("The description should be professional, welcoming, and highlight the benefit of buying directly from the owner (no agent commission - ללא עמלת תיווך).\n")
	b.WriteString("The style should be modern and attractive for Hebrew-speaking buyers.\n")
	b.WriteString("Keep it around 150-200 words in Hebrew.\n")
	return b.String()
}

func formatArea(a float64) string {
	if a == float64(int64(a)) {
		return fmt.Sprintf("%d", int64(a))
	}
	return fmt.Sprintf("%g", a)
}
