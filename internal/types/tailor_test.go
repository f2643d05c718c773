//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTailorRequest_RoleTitle(t *testing.T) {
	tests := []struct {
		name string
		role string
		want *string
	}{
		{name: "empty role", role: "", want: nil},
		{name: "whitespace role", role: "   \t", want: nil},
		{name: "role kept as entered", role: "Senior PM", want: strPtr("Senior PM")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := NewTailorRequest("resume", "jd", tt.role)
			assert.Equal(t, tt.want, req.RoleTitle)
		})
	}
}

func TestTailorRequest_MarshalNullRole(t *testing.T) {
	req := NewTailorRequest("my resume", "the job", "")

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"resume_text":"my resume","job_description":"the job","role_title":null}`, string(data))
}

func TestTailorRequest_MarshalIsStable(t *testing.T) {
	a, err := json.Marshal(NewTailorRequest("r", "j", "Engineer"))
	require.NoError(t, err)
	b, err := json.Marshal(NewTailorRequest("r", "j", "Engineer"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestTailorRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		resume  string
		jd      string
		wantErr bool
	}{
		{name: "valid", resume: "resume", jd: "jd"},
		{name: "empty resume", resume: "", jd: "jd", wantErr: true},
		{name: "blank resume", resume: "  \n ", jd: "jd", wantErr: true},
		{name: "blank jd", resume: "resume", jd: "\t", wantErr: true},
		{name: "both empty", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := NewTailorRequest(tt.resume, tt.jd, "")
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTailorResult_DecodeMissingFields(t *testing.T) {
	var res TailorResult
	err := json.Unmarshal([]byte(`{"tailored_resume":"X"}`), &res)
	require.NoError(t, err)

	assert.Equal(t, "X", res.TailoredResume)
	assert.Empty(t, res.MatchedKeywords)
	assert.Empty(t, res.ATSTips)
}

func TestTailorResult_PreservesOrderAndDuplicates(t *testing.T) {
	var res TailorResult
	err := json.Unmarshal([]byte(`{"matched_keywords":["go","sql","go"]}`), &res)
	require.NoError(t, err)

	assert.Equal(t, []string{"go", "sql", "go"}, res.MatchedKeywords)
}

func TestTailorResult_Normalized(t *testing.T) {
	res := &TailorResult{TailoredResume: "X", MatchedKeywords: []string{"a"}}
	norm := res.Normalized()

	data, err := json.Marshal(norm)
	require.NoError(t, err)
	assert.JSONEq(t, `{"tailored_resume":"X","matched_keywords":["a"],"missing_but_referenced_keywords":[],"ats_tips":[]}`, string(data))

	var nilResult *TailorResult
	assert.NotNil(t, nilResult.Normalized().ATSTips)
}

func strPtr(s string) *string {
	return &s
}
