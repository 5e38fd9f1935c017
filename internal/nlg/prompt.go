package nlg

import (
	"fmt"
	"strings"
)

// BuildPrompt renders the shared generation prompt. Every provider sends the
// same text so narratives stay comparable across backends.
func BuildPrompt(p Prompt) string {
	var b strings.Builder
	b.WriteString("You are a career counselor writing a short assessment rationale.\n\n")
	fmt.Fprintf(&b, "Career: %s\n", p.CareerName)
	if p.CareerDescription != "" {
		fmt.Fprintf(&b, "About the career: %s\n", p.CareerDescription)
	}
	fmt.Fprintf(&b, "Computed fit score: %d out of 100.\n", p.FitScore)
	if p.UserContext != "" {
		fmt.Fprintf(&b, "What we know about the user: %s\n", p.UserContext)
	}
	b.WriteString(`
Respond STRICTLY with a JSON object using this schema:
{
  "explanation": "<2-3 sentences on why this career fits>",
  "strengths": ["<strength>", ...],
  "growthAreas": ["<area to develop>", ...],
  "roadmap": "<one short paragraph describing first steps>"
}
No prose outside the JSON object.`)
	return b.String()
}
