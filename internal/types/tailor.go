// Package types provides the wire types exchanged with the tailoring backend.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// notblank rejects strings that are empty after trimming whitespace
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// TailorRequest is the JSON body sent to POST /api/tailor.
// ResumeText and JobDescription are sent as entered; only their trimmed
// emptiness is checked.
type TailorRequest struct {
	ResumeText     string  `json:"resume_text" validate:"notblank"`
	JobDescription string  `json:"job_description" validate:"notblank"`
	RoleTitle      *string `json:"role_title"` // null when left blank
}

// NewTailorRequest builds a request from raw form values. A blank or
// whitespace-only role title becomes nil.
func NewTailorRequest(resume, jobDescription, roleTitle string) TailorRequest {
	req := TailorRequest{
		ResumeText:     resume,
		JobDescription: jobDescription,
	}
	if strings.TrimSpace(roleTitle) != "" {
		role := roleTitle
		req.RoleTitle = &role
	}
	return req
}

// Validate reports whether both required text inputs are present.
func (r *TailorRequest) Validate() error {
	return validate.Struct(r)
}

// TailorResult is the backend's response. Every field is optional; an absent
// or null field decodes to its zero value and is treated as empty.
type TailorResult struct {
	TailoredResume               string   `json:"tailored_resume"`
	MatchedKeywords              []string `json:"matched_keywords"`
	MissingButReferencedKeywords []string `json:"missing_but_referenced_keywords"`
	ATSTips                      []string `json:"ats_tips"`
}

// Normalized returns a copy with nil slices replaced by empty ones so the
// result re-encodes with [] instead of null.
func (r *TailorResult) Normalized() TailorResult {
	if r == nil {
		return TailorResult{
			MatchedKeywords:              []string{},
			MissingButReferencedKeywords: []string{},
			ATSTips:                      []string{},
		}
	}
	out := *r
	out.MatchedKeywords = orEmpty(r.MatchedKeywords)
	out.MissingButReferencedKeywords = orEmpty(r.MissingButReferencedKeywords)
	out.ATSTips = orEmpty(r.ATSTips)
	return out
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
