package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rusenback/sysmon/internal/model"
	"github.com/rusenback/sysmon/internal/source/sourcetest"
	"github.com/rusenback/sysmon/internal/system"
)

const testInterval = 1500 * time.Millisecond

type harness struct {
	t     *testing.T
	src   *sourcetest.Fake
	clock *fakeClock
	m     Model
}

// polls counts how often pid 1 has been read, one per refresh
func (h *harness) polls() int {
	return h.src.Queried[1]
}

func newHarness(t *testing.T, infos map[int32]model.ProcessInfo, height int) *harness {
	t.Helper()
	src := newFakeSource(infos)
	clock := &fakeClock{t: time.Unix(1700000000, 0)}

	m := NewModel(system.NewSnapshot(src), testInterval)
	m.now = clock.now

	h := &harness{t: t, src: src, clock: clock, m: m}
	h.send(tea.WindowSizeMsg{Width: 120, Height: height})
	return h
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	h.t.Helper()
	next, cmd := h.m.Update(msg)
	m, ok := next.(Model)
	if !ok {
		h.t.Fatalf("Update returned %T", next)
	}
	h.m = m
	return cmd
}

func (h *harness) press(k string) tea.Cmd {
	h.t.Helper()
	switch k {
	case "up":
		return h.send(tea.KeyMsg{Type: tea.KeyUp})
	case "down":
		return h.send(tea.KeyMsg{Type: tea.KeyDown})
	case "pgup":
		return h.send(tea.KeyMsg{Type: tea.KeyPgUp})
	case "pgdown":
		return h.send(tea.KeyMsg{Type: tea.KeyPgDown})
	case "home":
		return h.send(tea.KeyMsg{Type: tea.KeyHome})
	case "end":
		return h.send(tea.KeyMsg{Type: tea.KeyEnd})
	case "ctrl+c":
		return h.send(tea.KeyMsg{Type: tea.KeyCtrlC})
	}
	return h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
}

// start runs the initial tick the way the program loop would
func (h *harness) start() {
	h.t.Helper()
	msg := h.m.Init()()
	if cmd := h.send(msg); cmd == nil {
		h.t.Fatalf("first poll should schedule the next tick")
	}
}

func manyProcs(n int) map[int32]model.ProcessInfo {
	infos := make(map[int32]model.ProcessInfo, n)
	for i := 1; i <= n; i++ {
		infos[int32(i)] = proc("cmd", 0, 1000, 100)
	}
	return infos
}

func TestInitPollsImmediately(t *testing.T) {
	h := newHarness(t, manyProcs(3), 40)
	if h.polls() != 0 {
		t.Fatalf("polled before the first tick")
	}
	h.start()
	if h.polls() != 1 {
		t.Fatalf("polls = %d, want 1", h.polls())
	}
}

func TestTickBeforeDeadlineDoesNotPoll(t *testing.T) {
	h := newHarness(t, manyProcs(3), 40)
	h.start()

	h.clock.advance(time.Second)
	cmd := h.send(tickMsg{id: h.m.tickID})
	if h.polls() != 1 {
		t.Fatalf("early tick polled")
	}
	if cmd == nil {
		t.Fatalf("early tick should reschedule")
	}

	h.clock.advance(500 * time.Millisecond)
	h.send(tickMsg{id: h.m.tickID})
	if h.polls() != 2 {
		t.Fatalf("expired tick did not poll, polls = %d", h.polls())
	}
}

func TestStaleTickIsIgnored(t *testing.T) {
	h := newHarness(t, manyProcs(3), 40)
	h.start()
	stale := h.m.tickID

	h.press("r")
	if h.polls() != 2 {
		t.Fatalf("refresh did not poll")
	}

	h.clock.advance(time.Hour)
	if cmd := h.send(tickMsg{id: stale}); cmd != nil {
		t.Fatalf("stale tick scheduled more work")
	}
	if h.polls() != 2 {
		t.Fatalf("stale tick polled")
	}
}

func TestPauseStopsPolling(t *testing.T) {
	h := newHarness(t, manyProcs(3), 40)
	h.start()

	if cmd := h.press("s"); cmd != nil {
		t.Fatalf("pausing should not schedule a tick")
	}
	if !h.m.paused {
		t.Fatalf("not paused")
	}

	h.clock.advance(time.Hour)
	h.send(tickMsg{id: h.m.tickID})
	if h.polls() != 1 {
		t.Fatalf("polled while paused")
	}

	// manual refresh still works but schedules nothing
	if cmd := h.press("r"); cmd != nil {
		t.Fatalf("refresh while paused scheduled a tick")
	}
	if h.polls() != 2 {
		t.Fatalf("refresh while paused did not poll")
	}

	if cmd := h.press("s"); cmd == nil {
		t.Fatalf("resume should schedule the next tick")
	}
	if h.m.paused || h.polls() != 3 {
		t.Fatalf("resume: paused=%v polls=%d", h.m.paused, h.polls())
	}
}

func TestSortKeys(t *testing.T) {
	h := newHarness(t, manyProcs(3), 40)
	h.start()

	h.press("i")
	if !h.m.view.invert {
		t.Fatalf("invert not toggled")
	}

	h.press("m")
	if h.m.view.sortKey != sortByMemory || h.m.view.invert {
		t.Fatalf("memory sort: key=%v invert=%v", h.m.view.sortKey, h.m.view.invert)
	}
	if h.polls() != 2 {
		t.Fatalf("sort key should force a refresh")
	}

	h.press("s")
	h.press("t")
	if h.m.view.sortKey != sortByUptime {
		t.Fatalf("uptime sort not applied while paused")
	}
	if h.polls() != 2 {
		t.Fatalf("sort key refreshed while paused")
	}

	h.press("p")
	if h.m.view.sortKey != sortByCPU {
		t.Fatalf("cpu sort not applied")
	}
}

func TestKernelThreadToggle(t *testing.T) {
	infos := manyProcs(3)
	infos[4] = proc("", 0, 0, 100)
	h := newHarness(t, infos, 40)
	h.start()

	if h.m.frame.visible != 3 {
		t.Fatalf("visible = %d, want 3", h.m.frame.visible)
	}
	h.press("k")
	if h.m.frame.visible != 4 {
		t.Fatalf("visible = %d, want 4", h.m.frame.visible)
	}
	if h.polls() != 1 {
		t.Fatalf("filter toggle polled")
	}
}

func TestPageDownWhenContentFits(t *testing.T) {
	// 2 cores leave 10 rows at height 23
	h := newHarness(t, manyProcs(3), 23)
	h.start()
	if h.m.frame.page != 10 {
		t.Fatalf("page = %d, want 10", h.m.frame.page)
	}

	h.press("pgdown")
	if h.m.view.offset != 0 {
		t.Fatalf("offset = %d, want 0", h.m.view.offset)
	}
}

func TestScrollClampsWhenListShrinks(t *testing.T) {
	// page of 3 rows
	h := newHarness(t, manyProcs(10), 16)
	h.start()

	h.press("end")
	if h.m.view.offset != 7 {
		t.Fatalf("end: offset = %d, want 7", h.m.view.offset)
	}
	if h.m.view.scroll != scrollNone {
		t.Fatalf("scroll action not consumed")
	}

	h.src.SetProcesses(manyProcs(4))
	h.press("r")
	if h.m.view.offset != 1 {
		t.Fatalf("after shrink: offset = %d, want 1", h.m.view.offset)
	}
	if len(h.m.frame.rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(h.m.frame.rows))
	}

	h.press("home")
	h.press("up")
	if h.m.view.offset != 0 {
		t.Fatalf("offset went negative: %d", h.m.view.offset)
	}
	h.press("down")
	h.press("pgdown")
	if h.m.view.offset != 1 {
		t.Fatalf("offset = %d, want 1", h.m.view.offset)
	}
}

func TestResizeReclampsOffset(t *testing.T) {
	h := newHarness(t, manyProcs(10), 16)
	h.start()
	h.press("end")

	h.send(tea.WindowSizeMsg{Width: 120, Height: 40})
	if h.m.view.offset != 0 {
		t.Fatalf("offset = %d after growing the terminal", h.m.view.offset)
	}
}

func TestPollErrorIsReported(t *testing.T) {
	h := newHarness(t, manyProcs(3), 40)
	h.start()

	h.src.Cores = h.src.Cores[:1]
	h.press("r")
	if !strings.HasPrefix(h.m.message, "Poll error: ") {
		t.Fatalf("message = %q", h.m.message)
	}
	if !strings.Contains(h.m.statusLine(), h.m.message) {
		t.Fatalf("status line does not show the error")
	}

	h.src.Cores = []model.CoreTicks{{Total: 3000, Idle: 1000}, {Total: 1500, Idle: 500}, {Total: 1500, Idle: 500}}
	h.press("r")
	if h.m.message != "" {
		t.Fatalf("message not cleared: %q", h.m.message)
	}
}

func TestQuit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		h := newHarness(t, manyProcs(3), 40)
		h.start()

		cmd := h.press(k)
		if cmd == nil {
			t.Fatalf("%s: no command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s: expected tea.QuitMsg", k)
		}
		if h.m.View() != "" {
			t.Fatalf("%s: view not cleared on quit", k)
		}
	}
}

func TestUnknownKeyDoesNothing(t *testing.T) {
	h := newHarness(t, manyProcs(3), 40)
	h.start()
	before := h.m.tickID

	if cmd := h.press("x"); cmd != nil {
		t.Fatalf("unknown key returned a command")
	}
	if h.m.tickID != before || h.polls() != 1 {
		t.Fatalf("unknown key changed refresh state")
	}
}

func TestStatusLine(t *testing.T) {
	h := newHarness(t, manyProcs(3), 40)
	h.start()

	got := h.m.statusLine()
	for _, want := range []string{"RUNNING", "sort: CPU ↓", "kernel threads: hidden", "every 1.5s", "1-3/3"} {
		if !strings.Contains(got, want) {
			t.Errorf("status %q missing %q", got, want)
		}
	}

	h.press("s")
	h.press("t")
	got = h.m.statusLine()
	for _, want := range []string{"PAUSED", "sort: UPTIME ↑"} {
		if !strings.Contains(got, want) {
			t.Errorf("status %q missing %q", got, want)
		}
	}
}

func TestInitTickCarriesCurrentID(t *testing.T) {
	h := newHarness(t, manyProcs(1), 40)
	h.m.tickID = 7

	if msg := h.m.Init()(); msg != (tickMsg{id: 7}) {
		t.Fatalf("init message = %#v", msg)
	}
}
