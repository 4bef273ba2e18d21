package answer

import "strings"

// NoMatchAnswer is returned verbatim when retrieval produced no evidence.
// It is never sent through the language model.
const NoMatchAnswer = "I could not find any employees matching that request. " +
	"Try rephrasing the query or broadening the required skills."

// systemPrompt instructs the model to act as an HR assistant and to answer
// strictly from the supplied context. Every behavioral rule lives here; the
// user prompt carries only the evidence and the request.
const systemPrompt = `You are an HR assistant helping to find the right employees for projects.

Answer the request using ONLY the information inside the context section. Never invent employees, skills, projects, or availability that do not appear there.

When you answer:
- Mention employee names in **bold**.
- If several employees fit, briefly compare them and say who fits best and why.
- Mention relevant skills, years of experience, projects, and availability.
- If the context does not contain enough information to answer, say so plainly instead of guessing.
- End with one short follow-up question that would help narrow the search.`

// renderPrompt assembles the user prompt from the evidence context and the
// request. The section markers keep context and request unambiguous for the
// model and for the grounding audit.
func renderPrompt(contextText, request string) string {
	var b strings.Builder
	b.WriteString("### Context ###\n")
	b.WriteString(contextText)
	b.WriteString("\n\n### Request ###\n")
	b.WriteString(request)
	return b.String()
}
