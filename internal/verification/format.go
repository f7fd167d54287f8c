package verification

import (
	"fmt"
	"strings"
)

// FormatResult renders the verification block appended below the raw analysis
// text. Registry fields are only listed for a verified medicine, and a
// sentinel "N/A" application number is omitted. The markdown markers are
// stripped later by the shared cosmetic formatting pass.
func FormatResult(verdict Verdict) string {
	var b strings.Builder

	b.WriteString("\n\n**Verification Status:**\n")
	b.WriteString(verdict.Message)
	b.WriteString("\n")

	if verdict.Outcome == Verified && verdict.Registry != nil {
		info := verdict.Registry
		b.WriteString("\n**Official FDA Information:**\n")
		fmt.Fprintf(&b, "• Brand Name: %s\n", info.BrandName)
		fmt.Fprintf(&b, "• Generic Name: %s\n", info.GenericName)
		fmt.Fprintf(&b, "• Manufacturer: %s\n", info.Manufacturer)
		fmt.Fprintf(&b, "• Product Type: %s\n", info.ProductType)
		if info.ApplicationNumber != "" && info.ApplicationNumber != "N/A" {
			fmt.Fprintf(&b, "• FDA Application: %s\n", info.ApplicationNumber)
		}
	}

	return b.String()
}
