package techmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindGroupForSkill_Primary(t *testing.T) {
	reg := DefaultRegistry()

	group, loc, found := reg.FindGroupForSkill("React")
	require.True(t, found)
	assert.Equal(t, "react", group.Primary)
	assert.Equal(t, "frontend", loc.Domain)
	assert.Equal(t, "frameworks", loc.Subcategory)
}

func TestFindGroupForSkill_Related(t *testing.T) {
	reg := DefaultRegistry()

	group, _, found := reg.FindGroupForSkill("Express")
	require.True(t, found)
	assert.Equal(t, "node.js", group.Primary)
}

func TestFindGroupForSkill_NormalizesAliases(t *testing.T) {
	reg := DefaultRegistry()

	// "k8s" normalizes to "kubernetes" before lookup
	group, loc, found := reg.FindGroupForSkill("k8s")
	require.True(t, found)
	assert.Equal(t, "kubernetes", group.Primary)
	assert.Equal(t, "devops", loc.Domain)
}

func TestFindGroupForSkill_Unknown(t *testing.T) {
	reg := DefaultRegistry()

	_, _, found := reg.FindGroupForSkill("underwater basket weaving")
	assert.False(t, found)
	assert.Equal(t, DefaultCompensation, reg.CompensationFor("underwater basket weaving"))
}

func TestFindGroupForSkill_Deterministic(t *testing.T) {
	reg := DefaultRegistry()

	// kotlin appears in two domains; repeated lookups must agree
	_, first, found := reg.FindGroupForSkill("kotlin")
	require.True(t, found)
	for i := 0; i < 20; i++ {
		_, loc, ok := reg.FindGroupForSkill("kotlin")
		require.True(t, ok)
		assert.Equal(t, first, loc)
	}
}

func TestAreSkillsRelated_SameSubcategory(t *testing.T) {
	reg := DefaultRegistry()

	// react and vue: different groups, same frontend/frameworks subcategory
	assert.True(t, reg.AreSkillsRelated("react", "vue"))
	// postgres and mongo share backend/databases
	assert.True(t, reg.AreSkillsRelated("postgresql", "mongodb"))
}

func TestAreSkillsRelated_DifferentSubcategory(t *testing.T) {
	reg := DefaultRegistry()

	assert.False(t, reg.AreSkillsRelated("react", "docker"))
	assert.False(t, reg.AreSkillsRelated("react", "no-such-skill"))
}

func TestGroupSatisfies(t *testing.T) {
	reg := DefaultRegistry()

	group, ok := reg.GroupSatisfies("node.js", "express")
	require.True(t, ok)
	assert.Equal(t, 0.85, group.Compensation)

	// same subcategory but different groups does not satisfy
	_, ok = reg.GroupSatisfies("react", "vue")
	assert.False(t, ok)
}

func TestRelatedSkills_ExcludesSelf(t *testing.T) {
	reg := DefaultRegistry()

	related := reg.RelatedSkills("express")
	assert.Contains(t, related, "node.js")
	assert.NotContains(t, related, "express")
}
