package element

import (
	"testing"
	"time"

	"github.com/azlan-mn/element/pkg/driver/mock"
)

func newTestPage(s *mock.Session) *Element {
	return NewPage(s, "page", WithPollInterval(time.Microsecond))
}

func TestResolve_RootChildResetsFrame(t *testing.T) {
	s := mock.NewSession()
	node := mock.NewNode("hello")
	s.Set(string(ByCSSSelector), "#greeting", node)

	page := newTestPage(s)
	greeting := page.Child("greeting", CSS("#greeting"))

	if !greeting.Resolve() {
		t.Fatal("expected resolve to succeed")
	}
	if len(s.Switches) == 0 || s.Switches[0] != "default" {
		t.Errorf("got switches %v, want a default-frame reset before the lookup", s.Switches)
	}
	if greeting.Handle() != node {
		t.Error("cached handle is not the first match")
	}
	if len(greeting.Matches()) != 1 {
		t.Errorf("got %d matches, want 1", len(greeting.Matches()))
	}
}

func TestResolve_NestedChildScopesToParentHandle(t *testing.T) {
	s := mock.NewSession()
	section := mock.NewNode("")
	button := mock.NewNode("Save")
	section.SetChildren(string(ByTagName), "button", button)
	s.Set(string(ByCSSSelector), "#section", section)
	// A decoy at the document root proves the child searches the parent's
	// subtree, not the whole document.
	s.Set(string(ByTagName), "button", mock.NewNode("decoy"))

	page := newTestPage(s)
	sec := page.Child("section", CSS("#section"))
	save := sec.Child("save", TagName("button"))

	if !save.Resolve() {
		t.Fatal("expected resolve to succeed")
	}
	if save.Handle() != button {
		t.Error("expected the match from the parent's subtree")
	}
}

func TestResolve_UnresolvableParentFailsChildWithoutPanic(t *testing.T) {
	s := mock.NewSession()

	page := newTestPage(s)
	sec := page.Child("section", CSS("#missing"))
	save := sec.Child("save", TagName("button"))

	if save.Resolve() {
		t.Error("expected resolve to fail when the parent cannot be resolved")
	}
	if save.Handle() != nil {
		t.Error("expected nil handle after a failed resolve")
	}
}

func TestResolve_FrameWinsOverParentScoping(t *testing.T) {
	s := mock.NewSession()

	section := mock.NewNode("")
	s.Set(string(ByCSSSelector), "#section", section)

	frameNode := mock.NewNode("")
	target := mock.NewNode("inside frame")
	frameNode.SetChildren(string(ByCSSSelector), "#target", target)
	s.Set(string(ByTagName), "iframe", frameNode)

	page := newTestPage(s)
	sec := page.Child("section", CSS("#section"))
	frame := page.Child("frame", TagName("iframe"))
	// Non-root parent AND a frame: the frame must decide the scope.
	elem := sec.Child("target", CSS("#target"), WithFrame(frame))

	if !elem.Resolve() {
		t.Fatal("expected resolve to succeed")
	}
	if elem.Handle() != target {
		t.Error("expected the match from the frame's document, not the parent subtree")
	}
	if len(s.Switches) == 0 || s.Switches[len(s.Switches)-1] != "frame" {
		t.Errorf("got switches %v, want a frame switch before the lookup", s.Switches)
	}
}

func TestResolve_FrameWinsOverUnresolvableParent(t *testing.T) {
	s := mock.NewSession()

	frameNode := mock.NewNode("")
	target := mock.NewNode("inside frame")
	frameNode.SetChildren(string(ByCSSSelector), "#target", target)
	s.Set(string(ByTagName), "iframe", frameNode)

	page := newTestPage(s)
	// The parent never resolves; the frame alone must decide the scope.
	sec := page.Child("section", CSS("#missing"))
	frame := page.Child("frame", TagName("iframe"))
	elem := sec.Child("target", CSS("#target"), WithFrame(frame))

	if !elem.Resolve() {
		t.Fatal("expected resolve to succeed: the frame decides the scope even when the parent cannot be resolved")
	}
	if elem.Handle() != target {
		t.Error("expected the match from the frame's document")
	}
}

func TestResolve_FailureClearsCaches(t *testing.T) {
	s := mock.NewSession()
	node := mock.NewNode("x")
	s.Set(string(ByID), "x", node)

	page := newTestPage(s)
	elem := page.Child("x", ID("x"))

	if !elem.Resolve() {
		t.Fatal("expected initial resolve to succeed")
	}

	s.Set(string(ByID), "x")
	if elem.Resolve() {
		t.Fatal("expected resolve to fail after the node is removed")
	}
	if len(elem.matches) != 0 || elem.handle != nil {
		t.Error("expected caches cleared after a failed resolve")
	}
}

func TestHandle_StalenessProbeTriggersReresolve(t *testing.T) {
	s := mock.NewSession()
	old := mock.NewNode("v1")
	s.Set(string(ByID), "status", old)

	page := newTestPage(s)
	status := page.Child("status", ID("status"))

	if status.Handle() != old {
		t.Fatal("expected the initial handle")
	}

	// The UI re-renders: the old node detaches and a fresh one takes its
	// place under the same locator.
	old.Detach()
	fresh := mock.NewNode("v2")
	s.Set(string(ByID), "status", fresh)

	if status.Handle() != fresh {
		t.Error("expected a stale probe to force a fresh resolve")
	}
}

func TestDescription_JoinsAncestorNames(t *testing.T) {
	s := mock.NewSession()
	page := newTestPage(s)
	button := page.Child("section", CSS("#s")).Child("button", TagName("button"))

	if got, want := button.Description(), "page.section.button"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestVisit_NavigatesSession(t *testing.T) {
	s := mock.NewSession()
	page := newTestPage(s)

	if err := page.Visit("https://example.com/"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Visited) != 1 || s.Visited[0] != "https://example.com/" {
		t.Errorf("got visits %v, want the navigated URL", s.Visited)
	}
}
