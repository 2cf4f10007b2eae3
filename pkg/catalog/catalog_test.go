package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synapse-hq/synapse/pkg/project"
	"github.com/synapse-hq/synapse/pkg/skill"
	"github.com/synapse-hq/synapse/pkg/trajectory"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	require.Len(t, c.Skills, 6)
	assert.Equal(t, "Storytelling", c.Skills[0].Name)
	assert.Equal(t, skill.CategorySoft, c.Skills[0].Category)
	assert.Equal(t, skill.SourceLinkedin, c.Skills[1].Source)

	require.Len(t, c.Trajectories, 4)
	assert.Equal(t, "Narrative Designer", c.Trajectories[0].Title)
	assert.Equal(t, trajectory.TrendStable, c.Trajectories[2].GrowthTrend)
	assert.Equal(t, &trajectory.SalaryRange{Min: 65000, Max: 120000}, c.Trajectories[0].SalaryRange)
	assert.Len(t, c.Trajectories[0].RequiredSkills, 3)

	require.Len(t, c.Project.Resources, 3)
	assert.Equal(t, project.ResourceCourse, c.Project.Resources[2].Type)

	fb := c.Project.Feedback
	assert.Equal(t, 87, fb.OverallScore)
	assert.Equal(t, project.Rubric{Clarity: 85, Creativity: 92, Accuracy: 84}, fb.Rubric)
	assert.Len(t, fb.Comments, 2)
	assert.Len(t, fb.NextSteps, 3)
	assert.Equal(t, "Senior Game Producer with 10+ years at major studios", fb.MentorPersona)
}

func TestParseRejectsInvalidRecords(t *testing.T) {
	cases := map[string]string{
		"skill strength": `
skills:
  - {name: Go, strength: 140, category: hard, source: resume}
`,
		"trajectory trend": `
trajectories:
  - {title: SRE, growthTrend: sideways, matchPercentage: 50}
`,
		"resource type": `
project:
  resources:
    - {title: Talk, url: "https://x", type: podcast}
`,
		"feedback score": `
project:
  feedback: {overallScore: 101}
`,
		"not yaml": "skills: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}
