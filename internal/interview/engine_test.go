package interview

import (
	"reflect"
	"testing"
)

func TestStepAssignsFirstField(t *testing.T) {
	res := Step(map[string]string{}, "Alice Smith")

	if res.State["full_name"] != "Alice Smith" {
		t.Fatalf("expected full_name assigned, got state %v", res.State)
	}
	if res.NextField != "email" {
		t.Errorf("expected next field 'email', got %q", res.NextField)
	}
	if res.NextPrompt != Fields[1].Prompt {
		t.Errorf("expected email prompt, got %q", res.NextPrompt)
	}
	if res.IsComplete {
		t.Error("interview should not be complete after one answer")
	}
	if len(res.Errors) != 0 {
		t.Errorf("unexpected errors: %v", res.Errors)
	}
}

func TestStepFullSequence(t *testing.T) {
	answers := []string{
		"Alice Smith",
		"alice@example.com",
		"5551234567",
		"P1234567",
		"bob@corp.com",
		"Quarterly review",
	}

	state := map[string]string{}
	var res Result
	for i, a := range answers {
		res = Step(state, a)
		if len(res.Errors) != 0 {
			t.Fatalf("step %d: unexpected errors %v", i, res.Errors)
		}
		if i < len(answers)-1 && res.IsComplete {
			t.Fatalf("step %d: complete too early", i)
		}
		state = res.State
	}

	if !res.IsComplete {
		t.Fatal("expected completion after final answer")
	}
	if res.NextPrompt != CompletionPrompt {
		t.Errorf("expected completion prompt, got %q", res.NextPrompt)
	}
	if res.NextField != "" {
		t.Errorf("expected no next field, got %q", res.NextField)
	}
	for _, f := range Fields {
		if state[f.Name] == "" {
			t.Errorf("field %s missing from final state", f.Name)
		}
	}
}

func TestStepInvalidEmailStillStored(t *testing.T) {
	state := map[string]string{"full_name": "Alice Smith"}
	res := Step(state, "not-an-email")

	if res.State["email"] != "not-an-email" {
		t.Errorf("invalid email should still be stored, got %q", res.State["email"])
	}
	if len(res.Errors) != 1 || res.Errors[0] != "Invalid email format." {
		t.Errorf("expected email validation error, got %v", res.Errors)
	}
	if res.NextField != "phone" {
		t.Errorf("expected to advance to phone, got %q", res.NextField)
	}
}

func TestStepInvalidHostEmail(t *testing.T) {
	state := map[string]string{
		"full_name": "Alice Smith",
		"email":     "alice@example.com",
		"phone":     "5551234567",
		"id_number": "P1234567",
	}
	res := Step(state, "bob-at-corp")

	if res.State["host_email"] != "bob-at-corp" {
		t.Errorf("host_email not stored: %v", res.State)
	}
	if len(res.Errors) != 1 || res.Errors[0] != "Please provide a valid email for the host." {
		t.Errorf("expected host email error, got %v", res.Errors)
	}
}

func TestStepEmptyInputIdempotent(t *testing.T) {
	state := map[string]string{"full_name": "Alice Smith"}

	first := Step(state, "")
	second := Step(state, "   ")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("empty-input steps differ:\n%+v\n%+v", first, second)
	}
	if first.NextField != "email" {
		t.Errorf("expected pending field 'email', got %q", first.NextField)
	}
	if len(first.Errors) != 0 {
		t.Errorf("empty input must not produce errors, got %v", first.Errors)
	}
}

func TestStepDoesNotMutateCallerState(t *testing.T) {
	state := map[string]string{"full_name": "Alice Smith"}
	Step(state, "alice@example.com")

	if len(state) != 1 {
		t.Errorf("caller state was mutated: %v", state)
	}
}

func TestStepAlreadyCompleteState(t *testing.T) {
	state := map[string]string{}
	for _, f := range Fields {
		state[f.Name] = "x@y"
	}

	res := Step(state, "")
	if !res.IsComplete {
		t.Error("fully answered state should report complete")
	}
	if res.NextPrompt != CompletionPrompt {
		t.Errorf("expected completion prompt, got %q", res.NextPrompt)
	}
}

func TestStepEmptyAnswerDoesNotSkipOptionalField(t *testing.T) {
	state := map[string]string{
		"full_name": "Alice Smith",
		"email":     "alice@example.com",
	}

	// Phone is optional in the business sense, but an empty answer leaves
	// the slot unanswered and the engine keeps asking.
	res := Step(state, "")
	if res.NextField != "phone" {
		t.Errorf("expected phone still pending, got %q", res.NextField)
	}
	if _, ok := res.State["phone"]; ok {
		t.Error("empty answer must not create a phone entry")
	}
}
