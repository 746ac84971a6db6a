package domain

import "strings"

type SessionID string

type SessionState string

const (
	SessionStateStart      SessionState = "start"
	SessionStateGenerated  SessionState = "generated"
	SessionStatePresented  SessionState = "presented"
	SessionStateAccepted   SessionState = "accepted"
	SessionStateRejected   SessionState = "rejected"
	SessionStateRegenerate SessionState = "regenerate"
	SessionStateDone       SessionState = "done"
)

type Outcome string

const (
	OutcomeAccepted  Outcome = "accepted"
	OutcomeExhausted Outcome = "exhausted"
)

type Verdict string

const (
	VerdictAccept Verdict = "accept"
	VerdictReject Verdict = "reject"
)

type Response struct {
	Verdict Verdict
	Comment string
}

func Accept() Response {
	return Response{Verdict: VerdictAccept}
}

func Reject(comment string) Response {
	return Response{Verdict: VerdictReject, Comment: comment}
}

// ParseVerdict accepts the answers a person types at a yes/no prompt.
func ParseVerdict(raw string) (Verdict, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "y", "yes", "accept", "ok":
		return VerdictAccept, true
	case "n", "no", "reject":
		return VerdictReject, true
	default:
		return "", false
	}
}

// LoopSession lives for one meeting and is discarded once it reaches DONE.
type LoopSession struct {
	ID        SessionID
	MeetingID MeetingID
	Draft     TaskDraft
	Iteration int
	State     SessionState
	Terminal  bool
	Feedback  []FeedbackEntry
	Outcome   Outcome
	Rejected  int
	Malformed int
}
