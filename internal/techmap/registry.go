// Package techmap groups related technologies so that skill matching can
// award partial credit when a candidate has a related-but-not-exact skill.
// The Registry is constructed once and read-only afterwards; scoring code
// receives it explicitly so it can be swapped out in tests.
package techmap

import (
	"sort"

	"github.com/jonathan/resume-compat/internal/skillnorm"
)

// DefaultCompensation is the credit factor used when a skill resolves to no
// known group.
const DefaultCompensation = 0.5

// Group relates a primary technology to its ecosystem. Compensation is the
// credit factor (0-1) granted when a related skill substitutes for the
// primary. Context lists keywords that strengthen a match when they appear
// near the skill mention.
type Group struct {
	Primary      string
	Related      []string
	Compensation float64
	Context      []string
}

// Location identifies where in the map a skill was found.
type Location struct {
	Domain      string
	Subcategory string
}

// Registry is an immutable domain -> subcategory -> groups map. Key order
// is fixed at construction so lookups are deterministic even when a skill
// appears in more than one domain.
type Registry struct {
	domains     map[string]map[string][]Group
	domainOrder []string
	subOrder    map[string][]string
}

// NewRegistry builds a registry from a nested group map. The input is
// copied shallowly; callers must not mutate groups after construction.
func NewRegistry(domains map[string]map[string][]Group) *Registry {
	r := &Registry{
		domains:  domains,
		subOrder: make(map[string][]string, len(domains)),
	}
	for domain, subcategories := range domains {
		r.domainOrder = append(r.domainOrder, domain)
		for subcategory := range subcategories {
			r.subOrder[domain] = append(r.subOrder[domain], subcategory)
		}
		sort.Strings(r.subOrder[domain])
	}
	sort.Strings(r.domainOrder)
	return r
}

// FindGroupForSkill scans for the first group whose primary equals, or
// related list contains, the normalized skill. Returns the group, its
// location, and whether one was found.
func (r *Registry) FindGroupForSkill(skill string) (Group, Location, bool) {
	normalized := skillnorm.Normalize(skill)
	if normalized == "" {
		return Group{}, Location{}, false
	}

	for _, domain := range r.domainOrder {
		for _, subcategory := range r.subOrder[domain] {
			for _, group := range r.domains[domain][subcategory] {
				if skillnorm.Normalize(group.Primary) == normalized {
					return group, Location{Domain: domain, Subcategory: subcategory}, true
				}
				for _, related := range group.Related {
					if skillnorm.Normalize(related) == normalized {
						return group, Location{Domain: domain, Subcategory: subcategory}, true
					}
				}
			}
		}
	}

	return Group{}, Location{}, false
}

// CompensationFor returns the compensation factor for a skill, or
// DefaultCompensation when the skill resolves to no group.
func (r *Registry) CompensationFor(skill string) float64 {
	group, _, found := r.FindGroupForSkill(skill)
	if !found {
		return DefaultCompensation
	}
	return group.Compensation
}

// AreSkillsRelated reports whether both skills resolve to the same
// domain+subcategory. This is deliberately coarse: two skills in the same
// subcategory are related even when they sit in different groups.
func (r *Registry) AreSkillsRelated(a, b string) bool {
	_, locA, okA := r.FindGroupForSkill(a)
	if !okA {
		return false
	}
	_, locB, okB := r.FindGroupForSkill(b)
	if !okB {
		return false
	}
	return locA == locB
}

// GroupSatisfies reports whether candidate can stand in for required: they
// resolve to the same group, either as primary or related members.
func (r *Registry) GroupSatisfies(required, candidate string) (Group, bool) {
	reqGroup, reqLoc, ok := r.FindGroupForSkill(required)
	if !ok {
		return Group{}, false
	}
	candGroup, candLoc, ok := r.FindGroupForSkill(candidate)
	if !ok {
		return Group{}, false
	}
	if reqLoc != candLoc || skillnorm.Normalize(reqGroup.Primary) != skillnorm.Normalize(candGroup.Primary) {
		return Group{}, false
	}
	return reqGroup, true
}

// RelatedSkills returns the other members of the skill's group, for
// "consider learning" suggestions. The skill itself is excluded.
func (r *Registry) RelatedSkills(skill string) []string {
	group, _, found := r.FindGroupForSkill(skill)
	if !found {
		return nil
	}

	normalized := skillnorm.Normalize(skill)
	related := make([]string, 0, len(group.Related)+1)
	if skillnorm.Normalize(group.Primary) != normalized {
		related = append(related, group.Primary)
	}
	for _, s := range group.Related {
		if skillnorm.Normalize(s) != normalized {
			related = append(related, s)
		}
	}
	return related
}
