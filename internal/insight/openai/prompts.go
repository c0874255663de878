package openai

import (
	"fmt"
	"strings"

	"glowcheck-backend/internal/insight"
)

// Message is a single chat message.
type Message struct {
	Role    string
	Content string
}

const systemPrompt = `You are a cosmetic chemist explaining a product assessment to a consumer.
You are given a finished, deterministic score; never invent or change numbers.
Write 2-4 short sentences of plain prose. No markdown, no lists.`

// BuildPrompt renders the score summary into chat messages.
func BuildPrompt(input insight.Input) []Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Product: %s (%s)\n", input.ProductName, input.ProductCategory)
	fmt.Fprintf(&b, "Overall score: %d/100, recommendation: %s, risk level: %s\n", input.Overall, input.Recommendation, input.RiskLevel)
	if input.SkinType != "" {
		fmt.Fprintf(&b, "User skin type: %s\n", input.SkinType)
	}
	if len(input.StrongPoints) > 0 {
		fmt.Fprintf(&b, "Strong categories: %s\n", strings.Join(input.StrongPoints, ", "))
	}
	if len(input.WeakPoints) > 0 {
		fmt.Fprintf(&b, "Weak categories: %s\n", strings.Join(input.WeakPoints, ", "))
	}
	if len(input.Warnings) > 0 {
		fmt.Fprintf(&b, "Warnings: %s\n", strings.Join(input.Warnings, " "))
	}
	b.WriteString("Explain this assessment to the user.")

	return []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: b.String()},
	}
}
