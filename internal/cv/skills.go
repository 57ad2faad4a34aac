package cv

import (
	"fmt"
	"strings"

	"github.com/kadykov/cv-adapt/internal/validation"
)

// Budgets for skills.
const (
	SkillMaxChars     = 40
	SkillGroupMaxName = 40
)

// Skill is a single skill entry.
type Skill struct {
	text string
}

// NewSkill validates and builds one skill.
func NewSkill(text string) (Skill, error) {
	if err := validation.Apply("skill", text,
		validation.NotBlank(),
		validation.SingleLine(),
		validation.MaxLength(SkillMaxChars),
	); err != nil {
		return Skill{}, err
	}
	return Skill{text: trim(text)}, nil
}

// Text returns the skill text.
func (s Skill) Text() string { return s.text }

// SkillGroup is a named, non-empty group of unique skills.
type SkillGroup struct {
	name   string
	skills []Skill
}

// NewSkillGroup validates the group name, that the group is non-empty, and
// that skills are unique within the group.
func NewSkillGroup(name string, skills []Skill) (SkillGroup, error) {
	if err := validation.Apply("skill group name", name,
		validation.NotBlank(),
		validation.SingleLine(),
		validation.MaxLength(SkillGroupMaxName),
	); err != nil {
		return SkillGroup{}, err
	}
	if len(skills) == 0 {
		return SkillGroup{}, &validation.FieldError{
			Field:  fmt.Sprintf("skills[%s]", trim(name)),
			Reason: "must contain at least one skill",
		}
	}
	if err := validation.UniqueWithin(fmt.Sprintf("skills[%s]", trim(name)), skillTexts(skills)); err != nil {
		return SkillGroup{}, err
	}

	group := SkillGroup{name: trim(name), skills: make([]Skill, len(skills))}
	copy(group.skills, skills)
	return group, nil
}

// Name returns the group name.
func (g SkillGroup) Name() string { return g.name }

// Skills returns the skills in insertion order.
func (g SkillGroup) Skills() []Skill {
	out := make([]Skill, len(g.skills))
	copy(out, g.skills)
	return out
}

// SkillSet is the full skills section. Skills must be unique across all
// groups, not just within one.
type SkillSet struct {
	groups []SkillGroup
}

// NewSkillSet validates cross-group uniqueness.
func NewSkillSet(groups []SkillGroup) (*SkillSet, error) {
	if len(groups) == 0 {
		return nil, &validation.FieldError{Field: "skills", Reason: "must contain at least one group"}
	}

	seen := make(map[string]string) // normalized skill -> group name
	for _, group := range groups {
		for _, skill := range group.skills {
			key := validation.NormalizeKey(skill.text)
			if prev, dup := seen[key]; dup {
				return nil, &validation.FieldError{
					Field:  fmt.Sprintf("skills[%s]", group.name),
					Reason: fmt.Sprintf("%q already appears in group %q", skill.text, prev),
				}
			}
			seen[key] = group.name
		}
	}

	set := &SkillSet{groups: make([]SkillGroup, len(groups))}
	copy(set.groups, groups)
	return set, nil
}

// Groups returns the groups in insertion order.
func (s *SkillSet) Groups() []SkillGroup {
	out := make([]SkillGroup, len(s.groups))
	copy(out, s.groups)
	return out
}

func skillTexts(skills []Skill) []string {
	out := make([]string, len(skills))
	for i, s := range skills {
		out[i] = s.text
	}
	return out
}

func trim(s string) string { return strings.TrimSpace(s) }
