package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestParseResumeCommand_MissingInputFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "parse-resume")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestParseResumeCommand_TextResume(t *testing.T) {
	binaryPath := getBinaryPath(t)

	dir := t.TempDir()
	resumePath := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(resumePath,
		[]byte("Skills: Python, Docker\nEducation: BS Computer Science\n5 years of experience\ndev@example.com"), 0644))

	outPath := filepath.Join(dir, "record.json")
	cmd := exec.Command(binaryPath, "parse-resume", "--in", resumePath, "--out", outPath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command should succeed: %s", string(output))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var record types.ResumeRecord
	require.NoError(t, json.Unmarshal(data, &record))
	assert.Contains(t, record.Skills, "Python")
	assert.Equal(t, "5 years", record.Experience)
	assert.Equal(t, "dev@example.com", record.ContactInfo.Email)
}

func TestParseResumeCommand_UnsupportedFormat(t *testing.T) {
	binaryPath := getBinaryPath(t)

	dir := t.TempDir()
	resumePath := filepath.Join(dir, "resume.odt")
	require.NoError(t, os.WriteFile(resumePath, []byte("irrelevant"), 0644))

	cmd := exec.Command(binaryPath, "parse-resume", "--in", resumePath)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "unsupported")
}
