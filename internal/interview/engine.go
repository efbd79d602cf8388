// Package interview implements the conversational check-in flow: a fixed
// sequence of fields walked one answer per step, with the collected state
// round-tripping through the caller on every request.
package interview

import "strings"

// FieldSpec pairs a state key with the prompt the kiosk speaks/shows for it.
type FieldSpec struct {
	Name   string
	Prompt string
}

// Fields is the canonical check-in sequence. Order matters: the first entry
// without a value in the conversation state is the one being asked.
var Fields = []FieldSpec{
	{Name: "full_name", Prompt: "What is your full name?"},
	{Name: "email", Prompt: "What is your email address? (You may skip)"},
	{Name: "phone", Prompt: "And your phone number? (optional)"},
	{Name: "id_number", Prompt: "Do you have an ID or passport number to provide? (optional)"},
	{Name: "host_email", Prompt: "Who are you visiting today? Please provide their email."},
	{Name: "purpose", Prompt: "What is the purpose of your visit?"},
}

// CompletionPrompt is returned once every field holds a value.
const CompletionPrompt = "Thank you, your check-in data is almost complete. Please scan your ID, if required."

type Result struct {
	NextPrompt string
	NextField  string
	State      map[string]string
	IsComplete bool
	Errors     []string
}

// Step advances the interview by one turn. The input fills the first field
// missing from state, validation errors accumulate without blocking the
// assignment, and the next unanswered field's prompt is returned. An empty
// (trimmed) input fills nothing, so calling Step repeatedly with the same
// state and no input returns the same result every time.
//
// The caller's map is never mutated; the updated state is a copy.
func Step(state map[string]string, input string) Result {
	next := make(map[string]string, len(state)+1)
	for k, v := range state {
		next[k] = v
	}

	res := Result{State: next}

	pending, ok := pendingField(next)
	if !ok {
		res.IsComplete = true
		res.NextPrompt = CompletionPrompt
		return res
	}

	raw := strings.TrimSpace(input)
	if raw == "" {
		res.NextField = pending.Name
		res.NextPrompt = pending.Prompt
		return res
	}

	// Invalid values are stored anyway; the caller decides whether to
	// re-prompt based on the error list.
	next[pending.Name] = raw
	switch pending.Name {
	case "email":
		if !strings.Contains(raw, "@") {
			res.Errors = append(res.Errors, "Invalid email format.")
		}
	case "host_email":
		if !strings.Contains(raw, "@") {
			res.Errors = append(res.Errors, "Please provide a valid email for the host.")
		}
	}

	if pending, ok = pendingField(next); ok {
		res.NextField = pending.Name
		res.NextPrompt = pending.Prompt
		return res
	}

	res.IsComplete = true
	res.NextPrompt = CompletionPrompt
	return res
}

// pendingField returns the first field of the sequence with no value in
// state. An empty string counts as unanswered, so optional fields cannot be
// skipped by answering with nothing.
func pendingField(state map[string]string) (FieldSpec, bool) {
	for _, f := range Fields {
		if state[f.Name] == "" {
			return f, true
		}
	}
	return FieldSpec{}, false
}
