// Package catalog loads the fixed skill, trajectory and project records
// that the generate operations insert.
package catalog

import (
	_ "embed"
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/synapse-hq/synapse/pkg/project"
	"github.com/synapse-hq/synapse/pkg/skill"
	"github.com/synapse-hq/synapse/pkg/trajectory"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type yamlSkill struct {
	Name        string `yaml:"name"`
	Strength    int    `yaml:"strength"`
	Category    string `yaml:"category"`
	Source      string `yaml:"source"`
	Description string `yaml:"description,omitempty"`
}

type yamlSalary struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

type yamlTrajectory struct {
	Title           string      `yaml:"title"`
	Description     string      `yaml:"description"`
	GrowthTrend     string      `yaml:"growthTrend"`
	MatchPercentage int         `yaml:"matchPercentage"`
	RequiredSkills  []string    `yaml:"requiredSkills"`
	WhyMatch        string      `yaml:"whyMatch"`
	Industry        string      `yaml:"industry"`
	SalaryRange     *yamlSalary `yaml:"salaryRange,omitempty"`
}

type yamlResource struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
	Type  string `yaml:"type"`
}

type yamlComment struct {
	Section string `yaml:"section"`
	Comment string `yaml:"comment"`
	Type    string `yaml:"type"`
}

type yamlFeedback struct {
	OverallScore int `yaml:"overallScore"`
	Rubric       struct {
		Clarity    int `yaml:"clarity"`
		Creativity int `yaml:"creativity"`
		Accuracy   int `yaml:"accuracy"`
	} `yaml:"rubric"`
	Comments        []yamlComment `yaml:"comments"`
	GeneralFeedback string        `yaml:"generalFeedback"`
	NextSteps       []string      `yaml:"nextSteps"`
	MentorPersona   string        `yaml:"mentorPersona"`
}

type yamlCatalog struct {
	Skills       []yamlSkill      `yaml:"skills"`
	Trajectories []yamlTrajectory `yaml:"trajectories"`
	Project      struct {
		Resources []yamlResource `yaml:"resources"`
		Feedback  yamlFeedback   `yaml:"feedback"`
	} `yaml:"project"`
}

// Catalog is the decoded, validated set of fixed records.
type Catalog struct {
	Skills       []skill.Skill
	Trajectories []trajectory.Trajectory
	Project      project.Template
}

// Default returns the catalog compiled into the binary.
func Default() (Catalog, error) { return Parse(defaultCatalog) }

// Parse decodes a catalog document and validates every record.
func Parse(data []byte) (Catalog, error) {
	var raw yamlCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}

	var c Catalog
	for _, s := range raw.Skills {
		sk := skill.Skill{
			Name:        s.Name,
			Strength:    s.Strength,
			Category:    skill.Category(s.Category),
			Source:      skill.Source(s.Source),
			Description: s.Description,
		}
		if err := sk.Validate(); err != nil {
			return Catalog{}, err
		}
		c.Skills = append(c.Skills, sk)
	}

	for _, t := range raw.Trajectories {
		tr := trajectory.Trajectory{
			Title:           t.Title,
			Description:     t.Description,
			GrowthTrend:     trajectory.GrowthTrend(t.GrowthTrend),
			MatchPercentage: t.MatchPercentage,
			RequiredSkills:  t.RequiredSkills,
			WhyMatch:        t.WhyMatch,
			Industry:        t.Industry,
		}
		if tr.RequiredSkills == nil {
			tr.RequiredSkills = []string{}
		}
		if t.SalaryRange != nil {
			tr.SalaryRange = &trajectory.SalaryRange{Min: t.SalaryRange.Min, Max: t.SalaryRange.Max}
		}
		if err := tr.Validate(); err != nil {
			return Catalog{}, err
		}
		c.Trajectories = append(c.Trajectories, tr)
	}

	for _, r := range raw.Project.Resources {
		typ := project.ResourceType(r.Type)
		switch typ {
		case project.ResourceVideo, project.ResourceArticle, project.ResourceCourse:
		default:
			return Catalog{}, fmt.Errorf("catalog: resource %q has unknown type %q", r.Title, r.Type)
		}
		c.Project.Resources = append(c.Project.Resources, project.Resource{Title: r.Title, URL: r.URL, Type: typ})
	}

	fb := raw.Project.Feedback
	c.Project.Feedback = project.Feedback{
		OverallScore: fb.OverallScore,
		Rubric: project.Rubric{
			Clarity:    fb.Rubric.Clarity,
			Creativity: fb.Rubric.Creativity,
			Accuracy:   fb.Rubric.Accuracy,
		},
		GeneralFeedback: fb.GeneralFeedback,
		NextSteps:       fb.NextSteps,
		MentorPersona:   fb.MentorPersona,
	}
	for _, cm := range fb.Comments {
		typ := project.CommentType(cm.Type)
		switch typ {
		case project.CommentPositive, project.CommentImprovement, project.CommentSuggestion:
		default:
			return Catalog{}, fmt.Errorf("catalog: comment %q has unknown type %q", cm.Section, cm.Type)
		}
		c.Project.Feedback.Comments = append(c.Project.Feedback.Comments, project.Comment{
			Section: cm.Section,
			Comment: cm.Comment,
			Type:    typ,
		})
	}
	for _, score := range []int{fb.OverallScore, fb.Rubric.Clarity, fb.Rubric.Creativity, fb.Rubric.Accuracy} {
		if score < 0 || score > 100 {
			return Catalog{}, fmt.Errorf("catalog: feedback score %d out of 0..100", score)
		}
	}
	return c, nil
}
