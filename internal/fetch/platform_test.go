package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://job-boards.greenhouse.io/doordashusa/jobs/7063751", PlatformGreenhouse},
		{"https://boards.greenhouse.io/company/jobs/123", PlatformGreenhouse},
		{"https://jobs.lever.co/company/job-id", PlatformLever},
		{"https://company.wd5.myworkdayjobs.com/en-US/External", PlatformWorkday},
		{"https://jobs.ashbyhq.com/acme/1234", PlatformAshby},
		{"https://example.com/careers/123", PlatformUnknown},
		{"https://notgreenhouse.io.evil.com/jobs", PlatformUnknown},
		{"::not a url", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPlatform(tt.url))
		})
	}
}

func TestSelectors_Greenhouse(t *testing.T) {
	content, noise := Selectors(PlatformGreenhouse)
	assert.Equal(t, ".job__description.body", content[0])
	assert.Contains(t, noise, ".voluntary-self-id")
	assert.Contains(t, noise, "form")
}

func TestSelectors_UnknownUsesGenericSelectors(t *testing.T) {
	content, noise := Selectors(PlatformUnknown)
	assert.Equal(t, JobPostingSelectors(), content)
	assert.Equal(t, commonNoise, noise)
}

func TestSelectors_DoesNotAliasCommonNoise(t *testing.T) {
	before := len(commonNoise)
	Selectors(PlatformLever)
	Selectors(PlatformWorkday)
	assert.Len(t, commonNoise, before)
}
