package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadInputs_Valid(t *testing.T) {
	dir := t.TempDir()
	resumePath := writeFile(t, dir, "resume.json", `{
		"first_name": "Maya",
		"last_name": "Chen",
		"skills": "React, Express",
		"experience": [
			{"title": "Frontend Developer", "company": "Webly", "start_date": "2022-01"}
		]
	}`)
	jobPath := writeFile(t, dir, "job.json", `{
		"title": "Senior Frontend Developer",
		"company": "Acme Corp",
		"description": "React and Node.js work"
	}`)

	raw, job, err := loadInputs(resumePath, jobPath)
	require.NoError(t, err)

	assert.Equal(t, "Maya", raw.FirstName)
	assert.Equal(t, "React, Express", raw.Skills)
	assert.Len(t, raw.Experience, 1)
	assert.Equal(t, "Acme Corp", job.Company)
}

func TestLoadInputs_MissingFile(t *testing.T) {
	dir := t.TempDir()
	jobPath := writeFile(t, dir, "job.json", `{"title": "x", "company": "y"}`)

	_, _, err := loadInputs(filepath.Join(dir, "missing.json"), jobPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read resume file")
}

func TestLoadInputs_SchemaViolation(t *testing.T) {
	dir := t.TempDir()
	// Skills as an array violates the raw resume schema.
	resumePath := writeFile(t, dir, "resume.json", `{"skills": ["React"]}`)
	jobPath := writeFile(t, dir, "job.json", `{"title": "x", "company": "y"}`)

	_, _, err := loadInputs(resumePath, jobPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadInputs_JobMissingRequiredFields(t *testing.T) {
	dir := t.TempDir()
	resumePath := writeFile(t, dir, "resume.json", `{"first_name": "Maya", "last_name": "Chen"}`)
	jobPath := writeFile(t, dir, "job.json", `{"description": "no title or company"}`)

	_, _, err := loadInputs(resumePath, jobPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}
