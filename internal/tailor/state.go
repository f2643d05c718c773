package tailor

import "github.com/jonathan/resume-tailor/internal/types"

// Status names the variant of a State.
type Status string

const (
	// StatusIdle means no request has been made yet.
	StatusIdle Status = "idle"
	// StatusLoading means a request is in flight.
	StatusLoading Status = "loading"
	// StatusSuccess means the last request returned a result.
	StatusSuccess Status = "success"
	// StatusFailed means the last request failed.
	StatusFailed Status = "failed"
)

// State is the interaction state exposed to the presentation layer. It is
// exactly one of Idle, Loading, Success or Failed.
type State interface {
	Status() Status
	isState()
}

// Idle is the initial state.
type Idle struct{}

// Loading is published when a request starts.
type Loading struct {
	RequestID string
}

// Success carries the backend result as returned.
type Success struct {
	Result *types.TailorResult
}

// Failed carries the user-visible error message and its classification.
type Failed struct {
	Message string
	Kind    FailureKind
}

func (Idle) Status() Status    { return StatusIdle }
func (Loading) Status() Status { return StatusLoading }
func (Success) Status() Status { return StatusSuccess }
func (Failed) Status() Status  { return StatusFailed }

func (Idle) isState()    {}
func (Loading) isState() {}
func (Success) isState() {}
func (Failed) isState()  {}

// View is the JSON rendering of a State.
type View struct {
	Status    Status              `json:"status"`
	RequestID string              `json:"request_id,omitempty"`
	Result    *types.TailorResult `json:"result,omitempty"`
	Error     string              `json:"error,omitempty"`
	ErrorKind FailureKind         `json:"error_kind,omitempty"`
}

// ViewOf renders s for JSON output. A nil state renders as idle.
func ViewOf(s State) View {
	switch st := s.(type) {
	case Loading:
		return View{Status: StatusLoading, RequestID: st.RequestID}
	case Success:
		res := st.Result.Normalized()
		return View{Status: StatusSuccess, Result: &res}
	case Failed:
		return View{Status: StatusFailed, Error: st.Message, ErrorKind: st.Kind}
	default:
		return View{Status: StatusIdle}
	}
}
