package tailor

import "github.com/jonathan/resume-tailor/internal/types"

// NewRequest builds a request from raw form values. It returns a
// *ValidationError when the resume or job description is blank.
func NewRequest(resume, jobDescription, roleTitle string) (types.TailorRequest, error) {
	req := types.NewTailorRequest(resume, jobDescription, roleTitle)
	if err := req.Validate(); err != nil {
		return req, &ValidationError{Cause: err}
	}
	return req, nil
}

// Fail converts err into the Failed state shown to the user.
func Fail(err error) Failed {
	return Failed{Message: Message(err), Kind: KindOf(err)}
}

// Outcome maps the return values of Client.Tailor to the terminal state of a
// submission.
func Outcome(result *types.TailorResult, err error) State {
	if err != nil {
		return Fail(err)
	}
	return Success{Result: result}
}
