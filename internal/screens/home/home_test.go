package home

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mcqgen/internal/llm"
	"github.com/abhisek/mcqgen/internal/mcq"
	"github.com/abhisek/mcqgen/internal/router"
	"github.com/abhisek/mcqgen/internal/screens/quiz"
	"github.com/abhisek/mcqgen/internal/store"
)

type nopGenerator struct{}

func (nopGenerator) Generate(context.Context, mcq.Request) (*mcq.Batch, error) {
	return nil, mcq.ErrUnparseable
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func pushedScreen(t *testing.T, cmd tea.Cmd) *quiz.QuizScreen {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	qs, ok := push.Screen.(*quiz.QuizScreen)
	if !ok {
		t.Fatalf("pushed %T, want *quiz.QuizScreen", push.Screen)
	}
	return qs
}

func TestNewQuizPushesSetupScreen(t *testing.T) {
	h := New(nopGenerator{}, nil, nil)

	_, cmd := h.Update(specialKey(tea.KeyEnter))
	qs := pushedScreen(t, cmd)
	if qs.Title() != "New Quiz" {
		t.Errorf("Title = %q, want New Quiz", qs.Title())
	}
}

func TestSampleQuestionPushesSample(t *testing.T) {
	h := New(nopGenerator{}, nil, nil)

	h.Update(specialKey(tea.KeyDown))
	_, cmd := h.Update(specialKey(tea.KeyEnter))
	qs := pushedScreen(t, cmd)
	if qs.Title() != "Sample Question" {
		t.Errorf("Title = %q, want Sample Question", qs.Title())
	}
}

func TestHistoryDisabledWithoutRepo(t *testing.T) {
	h := New(nopGenerator{}, nil, nil)

	h.Update(specialKey(tea.KeyDown))
	h.Update(specialKey(tea.KeyDown))
	if got := h.menu.Items[h.menu.Selected].Label; got != "EXIT" {
		t.Errorf("selected %q, want EXIT (history skipped)", got)
	}
}

func TestHistoryEnabledWithRepo(t *testing.T) {
	var repo store.EventRepo = struct{ store.EventRepo }{}
	h := New(nopGenerator{}, nil, repo)

	h.Update(specialKey(tea.KeyDown))
	h.Update(specialKey(tea.KeyDown))
	if got := h.menu.Items[h.menu.Selected].Label; got != "HISTORY" {
		t.Errorf("selected %q, want HISTORY", got)
	}
}

func TestViewShowsConfigBanner(t *testing.T) {
	h := New(nil, llm.ErrNotConfigured, nil)

	view := h.View(120, 40)
	if !strings.Contains(view, "API key not found") {
		t.Error("view should show the configuration error")
	}
	if !strings.Contains(view, "NEW QUIZ") {
		t.Error("view should show the menu")
	}

	// The quiz screen still opens so the user can see why generation is off.
	_, cmd := h.Update(specialKey(tea.KeyEnter))
	pushedScreen(t, cmd)
}

func TestCompactViewUsesPlainMenu(t *testing.T) {
	h := New(nopGenerator{}, nil, nil)

	view := h.View(70, 20)
	if !strings.Contains(view, "M · C · Q") {
		t.Error("compact view should use the short title")
	}
	if !strings.Contains(view, "SAMPLE QUESTION") {
		t.Error("compact view should list menu items")
	}
}
