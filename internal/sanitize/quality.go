package sanitize

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-compat/internal/density"
	"github.com/jonathan/resume-compat/internal/types"
)

// Quality heuristics.
const (
	minBulletLength  = 40  // characters for a bullet to count as substantial
	goodSkillCount   = 5   // skills needed for full skill-list credit
	experienceWeight = 0.6 // share of quality driven by experience bullets
	skillsWeight     = 0.4 // share driven by the skill list
)

// actionVerbs signal result-oriented writing when they open a bullet.
var actionVerbs = map[string]bool{
	"built": true, "designed": true, "led": true, "launched": true,
	"implemented": true, "developed": true, "migrated": true, "reduced": true,
	"increased": true, "improved": true, "automated": true, "optimized": true,
	"delivered": true, "created": true, "architected": true, "shipped": true,
	"scaled": true, "managed": true, "owned": true, "drove": true,
	"refactored": true, "deployed": true, "established": true, "mentored": true,
}

// scoreQuality heuristically rewards quantified, action-led, substantial
// experience bullets and a skill list with at least goodSkillCount entries
// including a recognizable technology. Result is 0-1.
func scoreQuality(data types.Resume) float64 {
	return experienceWeight*experienceQuality(data.Experience) +
		skillsWeight*skillListQuality(data.Skills)
}

// experienceQuality averages bullet quality across all entries. Entries
// without bullets contribute 0.
func experienceQuality(entries []types.WorkExperience) float64 {
	if len(entries) == 0 {
		return 0
	}

	total := 0.0
	for _, entry := range entries {
		bullets := entry.Achievements
		if entry.Description != "" {
			bullets = append([]string{entry.Description}, bullets...)
		}
		if len(bullets) == 0 {
			continue
		}

		entryScore := 0.0
		for _, bullet := range bullets {
			entryScore += bulletQuality(bullet)
		}
		total += entryScore / float64(len(bullets))
	}

	return total / float64(len(entries))
}

// bulletQuality scores one bullet on three equally weighted signals:
// quantifiable results, an opening action verb, and sufficient length.
func bulletQuality(bullet string) float64 {
	score := 0.0

	if containsQuantifiable(bullet) {
		score++
	}
	if words := strings.Fields(strings.ToLower(bullet)); len(words) > 0 && actionVerbs[strings.Trim(words[0], ".,:;")] {
		score++
	}
	if len(bullet) >= minBulletLength {
		score++
	}

	return score / 3.0
}

// containsQuantifiable reports whether the text carries a number or a
// percent sign, a proxy for measurable results.
func containsQuantifiable(text string) bool {
	for _, r := range text {
		if unicode.IsDigit(r) || r == '%' || r == '$' {
			return true
		}
	}
	return false
}

// skillListQuality rewards having at least goodSkillCount skills with at
// least one concrete, well-known technology among them.
func skillListQuality(skills []string) float64 {
	if len(skills) == 0 {
		return 0
	}

	countScore := float64(len(skills)) / float64(goodSkillCount)
	if countScore > 1 {
		countScore = 1
	}

	knownScore := 0.0
	if result := density.Analyze(strings.Join(skills, " ")); len(result.Matches) > 0 {
		knownScore = 1.0
	}

	return 0.5*countScore + 0.5*knownScore
}
