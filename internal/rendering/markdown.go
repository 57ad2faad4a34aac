// Package rendering formats assembled CVs and intermediate sections. It is
// pure formatting; no validation or decisions happen here.
package rendering

import (
	"fmt"
	"strings"

	"github.com/kadykov/cv-adapt/internal/cv"
)

// MinimalSections renders the already generated sections to the compact
// textual form the summary prompt is built from.
func MinimalSections(title cv.Title, competences *cv.CoreCompetenceSet,
	experiences []cv.Experience, education []cv.Education, skills *cv.SkillSet) string {

	var sb strings.Builder

	sb.WriteString("## Title\n")
	sb.WriteString(title.Text())
	sb.WriteString("\n\n## Core Competences\n")
	for _, text := range competences.Texts() {
		fmt.Fprintf(&sb, "- %s\n", text)
	}

	sb.WriteString("\n## Experience\n")
	for _, exp := range experiences {
		fmt.Fprintf(&sb, "- %s at %s (%s)\n", exp.Position, exp.Company, dateRange(exp.StartDate, exp.EndDate))
	}

	sb.WriteString("\n## Education\n")
	for _, edu := range education {
		fmt.Fprintf(&sb, "- %s, %s (%s)\n", edu.Degree, edu.Institution, dateRange(edu.StartDate, edu.EndDate))
	}

	sb.WriteString("\n## Skills\n")
	for _, group := range skills.Groups() {
		fmt.Fprintf(&sb, "- %s: %s\n", group.Name(), strings.Join(skillNames(group), ", "))
	}

	return sb.String()
}

// RenderMarkdown renders a full CV as a Markdown document.
func RenderMarkdown(doc *cv.CV) string {
	var sb strings.Builder

	info := doc.PersonalInfo()
	fmt.Fprintf(&sb, "# %s\n\n", info.FullName)
	var contact []string
	for _, part := range []string{info.Email, info.Phone, info.Location} {
		if part != "" {
			contact = append(contact, part)
		}
	}
	fmt.Fprintf(&sb, "%s\n\n", strings.Join(contact, " · "))

	fmt.Fprintf(&sb, "**%s**\n\n", doc.Title().Text())
	fmt.Fprintf(&sb, "%s\n\n", doc.Summary().Text())

	sb.WriteString("## Core Competences\n\n")
	for _, text := range doc.Competences().Texts() {
		fmt.Fprintf(&sb, "- %s\n", text)
	}

	sb.WriteString("\n## Experience\n\n")
	for _, exp := range doc.Experiences() {
		fmt.Fprintf(&sb, "### %s — %s\n\n", exp.Position, exp.Company)
		meta := dateRange(exp.StartDate, exp.EndDate)
		if exp.Location != "" {
			meta = exp.Location + " · " + meta
		}
		fmt.Fprintf(&sb, "*%s*\n\n%s\n\n", meta, exp.Description)
		if len(exp.Technologies) > 0 {
			fmt.Fprintf(&sb, "Technologies: %s\n\n", strings.Join(exp.Technologies, ", "))
		}
	}

	sb.WriteString("## Education\n\n")
	for _, edu := range doc.Education() {
		fmt.Fprintf(&sb, "### %s — %s\n\n", edu.Degree, edu.Institution)
		meta := dateRange(edu.StartDate, edu.EndDate)
		if edu.Location != "" {
			meta = edu.Location + " · " + meta
		}
		fmt.Fprintf(&sb, "*%s*\n\n%s\n\n", meta, edu.Description)
	}

	sb.WriteString("## Skills\n\n")
	for _, group := range doc.Skills().Groups() {
		fmt.Fprintf(&sb, "- **%s**: %s\n", group.Name(), strings.Join(skillNames(group), ", "))
	}

	return sb.String()
}

func dateRange(start, end string) string {
	if end == "" {
		return start + " – present"
	}
	return start + " – " + end
}

func skillNames(group cv.SkillGroup) []string {
	skills := group.Skills()
	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = s.Text()
	}
	return names
}
