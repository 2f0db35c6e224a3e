package classify

import "github.com/jonathan/resume-compat/internal/types"

// categoryProfile bundles a category's keyword phrases with the skills
// typically expected for it. A phrase matches when every one of its words
// appears in the text's token set.
type categoryProfile struct {
	Category      types.RoleCategory
	Keywords      []string
	RelatedSkills []string
}

// categoryProfiles in declaration order. Ties in match counts are broken by
// this order.
var categoryProfiles = []categoryProfile{
	{
		Category: types.CategoryTechnical,
		Keywords: []string{
			"software engineer", "software developer", "backend", "frontend",
			"full stack", "devops", "data engineer", "data scientist",
			"machine learning", "web developer", "mobile developer",
			"cloud engineer", "programmer", "sre", "site reliability",
			"systems engineer", "platform engineer", "security engineer",
			"qa engineer", "embedded", "architect",
		},
		RelatedSkills: []string{
			"programming", "debugging", "version control", "testing",
			"system design", "code review", "agile",
		},
	},
	{
		Category: types.CategoryManagement,
		Keywords: []string{
			"manager", "director", "head of", "team lead", "project manager",
			"product manager", "program manager", "scrum master",
			"chief", "vp", "vice president", "supervisor", "coordinator",
			"operations manager", "delivery manager",
		},
		RelatedSkills: []string{
			"leadership", "stakeholder management", "budgeting", "planning",
			"hiring", "mentoring", "roadmapping",
		},
	},
	{
		Category: types.CategoryCreative,
		Keywords: []string{
			"designer", "ux designer", "ui designer", "graphic designer",
			"copywriter", "content writer", "art director", "illustrator",
			"video editor", "motion designer", "brand designer",
			"creative director", "photographer",
		},
		RelatedSkills: []string{
			"figma", "adobe creative suite", "typography", "storytelling",
			"wireframing", "prototyping", "branding",
		},
	},
}

// levelKeywords map title words to role levels, checked from most senior to
// most junior so "senior engineering director" resolves to EXECUTIVE.
var levelKeywords = []struct {
	Level types.RoleLevel
	Words []string
}{
	{types.LevelExecutive, []string{"chief", "cto", "ceo", "cio", "vp", "vice president", "director", "head of", "executive"}},
	{types.LevelLead, []string{"lead", "principal", "staff", "manager"}},
	{types.LevelSenior, []string{"senior", "sr.", "sr"}},
	{types.LevelJunior, []string{"junior", "jr.", "jr", "intern", "entry level", "graduate", "trainee"}},
}
