package session_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"todomatic/internal/session"
	"todomatic/internal/task"
	"todomatic/internal/testutil"
)

func ids(tasks []task.Task) []string {
	result := make([]string, 0, len(tasks))
	for _, t := range tasks {
		result = append(result, t.ID)
	}
	return result
}

func abc() []task.Task {
	return []task.Task{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B"},
		{ID: "c", Name: "C"},
	}
}

func TestNew_Defaults(t *testing.T) {
	s := session.New()

	if s.Filter() != task.All {
		t.Errorf("expected All filter, got %v", s.Filter())
	}
	if s.Count() != 0 {
		t.Errorf("expected empty session, got %d tasks", s.Count())
	}
	if s.Heading() != "0 tasks remaining" {
		t.Errorf("unexpected heading %q", s.Heading())
	}
}

func TestWithTasks_CopiesInput(t *testing.T) {
	in := abc()
	s := session.New(session.WithTasks(in))
	in[0].Name = "changed"

	if s.Tasks()[0].Name != "A" {
		t.Error("session shares storage with WithTasks input")
	}
}

func TestTasks_ReturnsCopy(t *testing.T) {
	s, _ := testutil.NewSession(abc()...)
	got := s.Tasks()
	got[0].Name = "changed"

	if s.Tasks()[0].Name != "A" {
		t.Error("Tasks exposes internal storage")
	}
}

func TestFocus_SingleDeleteFires(t *testing.T) {
	s, rec := testutil.NewSession(abc()...)

	s.DeleteTask("b")

	if rec.Count() != 1 {
		t.Fatalf("expected focus to fire once, fired %d times", rec.Count())
	}
	if rec.Headings[0] != "2 tasks remaining" {
		t.Errorf("unexpected heading %q", rec.Headings[0])
	}
	if !reflect.DeepEqual(ids(s.Tasks()), []string{"a", "c"}) {
		t.Errorf("unexpected tasks %v", ids(s.Tasks()))
	}
}

func TestFocus_AddDoesNotFire(t *testing.T) {
	s, rec := testutil.NewSession(abc()[:2]...)

	s.AddTask("C")

	if rec.Count() != 0 {
		t.Errorf("expected no focus transfer, got %d", rec.Count())
	}
	if s.Count() != 3 {
		t.Errorf("expected 3 tasks, got %d", s.Count())
	}
}

func TestFocus_TwoDeletesFireTwice(t *testing.T) {
	s, rec := testutil.NewSession(abc()...)

	s.DeleteTask("a")
	s.DeleteTask("c")

	want := []string{"2 tasks remaining", "1 task remaining"}
	if !reflect.DeepEqual(rec.Headings, want) {
		t.Errorf("expected %v, got %v", want, rec.Headings)
	}
}

func TestFocus_OtherOperationsDoNotFire(t *testing.T) {
	s, rec := testutil.NewSession(abc()...)

	s.ToggleTaskCompleted("a")
	s.EditTask("b", "Bee")
	s.SetFilter(task.Completed)
	s.AddTask("D")
	s.AddTask("   ")

	if rec.Count() != 0 {
		t.Errorf("expected no focus transfer, got %v", rec.Headings)
	}
}

func TestFocus_UnknownDeleteDoesNotFire(t *testing.T) {
	s, rec := testutil.NewSession(abc()...)

	s.DeleteTask("missing")

	if rec.Count() != 0 {
		t.Errorf("expected no focus transfer, got %v", rec.Headings)
	}
	if s.Count() != 3 {
		t.Errorf("expected 3 tasks, got %d", s.Count())
	}
}

func TestFocus_MultiRemovalDoesNotFire(t *testing.T) {
	s, rec := testutil.NewSession(abc()...)

	s.Replace(abc()[:1])

	if rec.Count() != 0 {
		t.Errorf("expected exact delta of one to be required, got %v", rec.Headings)
	}

	// The stored count follows the replacement, so a following single delete fires.
	s.DeleteTask("a")
	if rec.Count() != 1 {
		t.Errorf("expected focus after single delete, got %d", rec.Count())
	}
}

func TestFocus_NilHandler(t *testing.T) {
	s := session.New(session.WithTasks(abc()))
	s.OnFocusHeading(nil)
	s.DeleteTask("a")

	if s.Count() != 2 {
		t.Errorf("expected 2 tasks, got %d", s.Count())
	}
}

func TestSetFilter_DoesNotMutateTasks(t *testing.T) {
	s, _ := testutil.NewSession(testutil.ScenarioTasks()...)

	s.SetFilter(task.Completed)

	if !reflect.DeepEqual(s.Tasks(), testutil.ScenarioTasks()) {
		t.Errorf("tasks changed: %+v", s.Tasks())
	}
	if !reflect.DeepEqual(ids(s.Visible()), []string{"t2"}) {
		t.Errorf("unexpected visible tasks %v", ids(s.Visible()))
	}
}

func TestAddTask_UsesIDFunc(t *testing.T) {
	s, _ := testutil.NewSession()

	s.AddTask("Eat")
	s.AddTask("Sleep")

	want := []task.Task{
		{ID: "new1", Name: "Eat"},
		{ID: "new2", Name: "Sleep"},
	}
	if !reflect.DeepEqual(s.Tasks(), want) {
		t.Errorf("expected %+v, got %+v", want, s.Tasks())
	}
}

func TestLookup(t *testing.T) {
	s, _ := testutil.NewSession(abc()...)

	if tk, ok := s.Lookup("b"); !ok || tk.Name != "B" {
		t.Errorf("expected task b, got %+v (found=%v)", tk, ok)
	}
	if _, ok := s.Lookup("z"); ok {
		t.Error("expected unknown id not to be found")
	}
}

func TestFilterNames(t *testing.T) {
	s := session.New()
	if !reflect.DeepEqual(s.FilterNames(), []string{"All", "Active", "Completed"}) {
		t.Errorf("unexpected filter names %v", s.FilterNames())
	}
}

func TestLogger_RecordsTransitions(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	s := session.New(session.WithTasks(abc()), session.WithLogger(logger))

	s.DeleteTask("a")

	out := buf.String()
	for _, want := range []string{"tasks updated", "op=delete", "focus heading"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected log to contain %q, got:\n%s", want, out)
		}
	}
}

func TestEndToEndScenario(t *testing.T) {
	s, rec := testutil.NewSession(testutil.ScenarioTasks()...)

	if !reflect.DeepEqual(ids(s.Visible()), []string{"t1", "t2"}) {
		t.Fatalf("expected visible [t1 t2], got %v", ids(s.Visible()))
	}
	if s.Heading() != "2 tasks remaining" {
		t.Fatalf("unexpected heading %q", s.Heading())
	}

	s.SetFilter(task.Active)
	if !reflect.DeepEqual(ids(s.Visible()), []string{"t1"}) {
		t.Fatalf("expected visible [t1], got %v", ids(s.Visible()))
	}

	s.ToggleTaskCompleted("t1")
	if tk, _ := s.Lookup("t1"); !tk.Completed {
		t.Fatal("expected t1 completed")
	}
	if s.Filter() != task.Active {
		t.Fatalf("expected filter Active, got %v", s.Filter())
	}
	if len(s.Visible()) != 0 {
		t.Fatalf("expected no visible tasks, got %v", ids(s.Visible()))
	}

	s.EditTask("t2", "Walk the dog")
	want := task.Task{ID: "t2", Name: "Walk the dog", Completed: true}
	if tk, _ := s.Lookup("t2"); tk != want {
		t.Fatalf("expected %+v, got %+v", want, tk)
	}

	s.DeleteTask("t1")
	if !reflect.DeepEqual(s.Tasks(), []task.Task{want}) {
		t.Fatalf("expected [t2], got %+v", s.Tasks())
	}
	if s.Heading() != "1 task remaining" {
		t.Errorf("unexpected heading %q", s.Heading())
	}
	if !reflect.DeepEqual(rec.Headings, []string{"1 task remaining"}) {
		t.Errorf("expected one focus transfer, got %v", rec.Headings)
	}
}
