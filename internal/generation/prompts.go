package generation

import (
	"fmt"
	"strings"
)

// maxPromptChars caps how much extracted text is inlined into a prompt.
const maxPromptChars = 24000

// buildSummaryPrompt instructs the model to produce the study summary.
func buildSummaryPrompt(text string) string {
	var sb strings.Builder

	sb.WriteString("You are an expert academic tutor. Write a structured study summary of the material below.\n\n")
	sb.WriteString("Requirements:\n")
	sb.WriteString("- Organize the summary with clear section headings covering the main topics.\n")
	sb.WriteString("- Highlight key definitions, arguments, and relationships a student should retain.\n")
	sb.WriteString("- Work only from the material itself; never comment on missing, truncated, or template-looking data.\n")
	sb.WriteString("- End with a complete sentence; do not cut off mid-thought.\n\n")
	sb.WriteString("Material:\n\"\"\"\n")
	sb.WriteString(clipText(text))
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// buildGraphPrompt instructs the model to return the concept graph as bare
// JSON.
func buildGraphPrompt(text string) string {
	var sb strings.Builder

	sb.WriteString("Extract the key concepts of the material below and how they relate to each other.\n\n")
	sb.WriteString("Return ONLY a JSON object matching this exact structure:\n")
	sb.WriteString("{\"nodes\": [{\"id\": \"string\", \"label\": \"string\"}], \"edges\": [{\"from\": \"string\", \"to\": \"string\", \"label\": \"string\"}]}\n\n")
	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Node ids must be unique; edge from/to must reference node ids.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no code blocks, no explanation.\n\n")
	sb.WriteString("Material:\n\"\"\"\n")
	sb.WriteString(clipText(text))
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

func clipText(text string) string {
	if len(text) <= maxPromptChars {
		return text
	}
	return fmt.Sprintf("%s\n…(truncated)", text[:maxPromptChars])
}
