package commands

import (
	"reflect"
	"testing"

	"todomatic/internal/task"
	"todomatic/internal/testutil"
)

func TestParseTaskRef_Number(t *testing.T) {
	ref, rest, err := ParseTaskRef([]string{"5", "new", "name"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.Num != 5 || ref.ID != "" {
		t.Errorf("unexpected ref %#v", ref)
	}
	if !reflect.DeepEqual(rest, []string{"new", "name"}) {
		t.Errorf("unexpected rest %v", rest)
	}
}

func TestParseTaskRef_ID(t *testing.T) {
	ref, rest, err := ParseTaskRef([]string{"todo-1a2b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.ID != "todo-1a2b" || ref.Num != 0 {
		t.Errorf("unexpected ref %#v", ref)
	}
	if len(rest) != 0 {
		t.Errorf("unexpected rest %v", rest)
	}
}

func TestParseTaskRef_NoArgs_Error(t *testing.T) {
	for _, args := range [][]string{nil, {""}} {
		_, _, err := ParseTaskRef(args)
		if err != ErrTaskRefRequired {
			t.Errorf("ParseTaskRef(%q): expected ErrTaskRefRequired, got %v", args, err)
		}
	}
}

func TestParseTaskRef_Zero_Error(t *testing.T) {
	_, _, err := ParseTaskRef([]string{"0"})
	if err == nil {
		t.Fatal("expected error for zero")
	}
	expectedMsg := "task number out of range: 0"
	if err.Error() != expectedMsg {
		t.Errorf("expected %q, got %q", expectedMsg, err.Error())
	}
}

func TestParseTaskRef_Overflow_Error(t *testing.T) {
	_, _, err := ParseTaskRef([]string{"99999999999999999999999"})
	if err == nil {
		t.Fatal("expected error for overflowing number")
	}
}

func TestTaskRefString(t *testing.T) {
	if s := (TaskRef{Num: 3}).String(); s != "3" {
		t.Errorf("expected 3, got %q", s)
	}
	if s := (TaskRef{ID: "t1"}).String(); s != "t1" {
		t.Errorf("expected t1, got %q", s)
	}
}

func TestResolveTaskRef(t *testing.T) {
	sess, _ := testutil.NewSession(testutil.ScenarioTasks()...)
	sess.SetFilter(task.Completed)

	got, err := ResolveTaskRef(sess, TaskRef{Num: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "t2" {
		t.Errorf("expected number to index the visible list, got %s", got.ID)
	}

	// Ids resolve regardless of the filter.
	got, err = ResolveTaskRef(sess, TaskRef{ID: "t1"})
	if err != nil || got.ID != "t1" {
		t.Errorf("expected t1, got %+v (%v)", got, err)
	}
}

func TestResolveTaskRef_Errors(t *testing.T) {
	sess, _ := testutil.NewSession(testutil.ScenarioTasks()...)

	tests := []struct {
		ref  TaskRef
		want string
	}{
		{TaskRef{Num: 3}, "task number out of range: 3"},
		{TaskRef{ID: "t9"}, "task not found: t9"},
	}
	for _, tt := range tests {
		_, err := ResolveTaskRef(sess, tt.ref)
		if err == nil || err.Error() != tt.want {
			t.Errorf("ResolveTaskRef(%v): expected %q, got %v", tt.ref, tt.want, err)
		}
	}
}
