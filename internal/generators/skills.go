package generators

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kadykov/cv-adapt/internal/cv"
	"github.com/kadykov/cv-adapt/internal/llm"
)

// SectionSkills names the skills section for prompts and schemas.
const SectionSkills = "skills"

type rawSkillGroup struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

type rawSkillGroups struct {
	Groups []rawSkillGroup `json:"groups"`
}

// Skills generates the grouped skills section.
func (g *Generator) Skills(ctx context.Context, gc Context) (*cv.SkillSet, error) {
	raw, err := g.invoke(ctx, SectionSkills, gc)
	if err != nil {
		return nil, err
	}

	var parsed rawSkillGroups
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, &llm.BackendError{Message: "failed to decode skills response", Cause: err}
	}
	if len(parsed.Groups) == 0 {
		return nil, emptyListError("skills")
	}

	groups := make([]cv.SkillGroup, 0, len(parsed.Groups))
	for i, group := range parsed.Groups {
		prefix := fmt.Sprintf("skills[%d]", i)
		if err := g.checkLanguage(ctx, prefix+".name", group.Name); err != nil {
			return nil, err
		}

		skills := make([]cv.Skill, 0, len(group.Skills))
		for j, text := range group.Skills {
			if err := g.checkLanguage(ctx, fmt.Sprintf("%s.skills[%d]", prefix, j), text); err != nil {
				return nil, err
			}
			skill, err := cv.NewSkill(text)
			if err != nil {
				return nil, err
			}
			skills = append(skills, skill)
		}

		built, err := cv.NewSkillGroup(group.Name, skills)
		if err != nil {
			return nil, err
		}
		groups = append(groups, built)
	}

	return cv.NewSkillSet(groups)
}
