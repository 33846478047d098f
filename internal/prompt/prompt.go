// Package prompt assembles the instruction text sent to the language model.
package prompt

import (
	"strings"
	"text/template"
)

// DefaultTopic is used when the caller supplies no topic.
const DefaultTopic = "current HR and workplace management trends"

// Instruction markers every prompt carries.
const (
	HTMLOnlyMarker = "Format your response in clean HTML"
	NoFencesMarker = "Do not include any markdown code block markers"
)

const blogTemplate = `Generate a comprehensive blog post about: {{.Topic}}

You are a team of specialized agents working together:

1. Research Agent:
- Research current trends
- Identify key points
- Structure findings

2. Content Planning Agent:
- Create detailed outline
- Structure sections
- Plan flow

3. Content Generation Agent:
- Write comprehensive content
- Use engaging style
- Maintain professionalism

4. SEO Agent:
- Use relevant keywords naturally
- Optimize headings
- Enhance readability

5. Review Agent:
- Ensure perfect grammar
- Maintain consistent tone
- Polish final content

` + HTMLOnlyMarker + ` using:
- <h2> for main sections
- <h3> for subsections
- <p> for paragraphs
- <ul> and <li> for lists
- <strong> for emphasis

Important: ` + NoFencesMarker + " (like ```html or ```) in your response." + `
Keep HTML formatting clean with no extra line breaks between tags.`

var blogPrompt = template.Must(template.New("blog").Parse(blogTemplate))

// Build returns the blog-post prompt for topic. An empty topic selects
// DefaultTopic; any other value is embedded verbatim.
func Build(topic string) string {
	if topic == "" {
		topic = DefaultTopic
	}
	var b strings.Builder
	// Execute only fails on writer errors and strings.Builder never returns one.
	_ = blogPrompt.Execute(&b, struct{ Topic string }{Topic: topic})
	return b.String()
}
