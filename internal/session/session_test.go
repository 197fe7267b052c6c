package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/traitsort/internal/bank"
	"github.com/abhisek/traitsort/internal/round"
	"github.com/abhisek/traitsort/internal/traits"
)

func testSession() *Session {
	return New(bank.Default(), WithID("test-session-id"))
}

// decisiveBank builds a bank whose first group starts with four decisive
// options and whose other options are all interpersonal.
func decisiveBank(t *testing.T) *bank.Bank {
	t.Helper()
	var groups []map[string]any
	for g := 1; g <= bank.GroupCount; g++ {
		var opts []map[string]any
		for o := 0; o < bank.OptionsPerGroup; o++ {
			trait := traits.Interpersonal
			if g == 1 && o < 4 {
				trait = traits.Decisive
			}
			opts = append(opts, map[string]any{
				"label": fmt.Sprintf("%c%d", 'A'+o, g),
				"trait": string(trait),
			})
		}
		groups = append(groups, map[string]any{"options": opts})
	}
	raw, err := json.Marshal(map[string]any{"groups": groups})
	if err != nil {
		t.Fatalf("marshal bank: %v", err)
	}
	b, err := bank.Parse(raw)
	if err != nil {
		t.Fatalf("parse bank: %v", err)
	}
	return b
}

// pick checks the first n visible options of group in the active round.
func pick(t *testing.T, s *Session, group bank.GroupID, n int) []bank.Option {
	t.Helper()
	visible := s.Visible(group)
	if len(visible) < n {
		t.Fatalf("group %d has %d visible options, want at least %d", group, len(visible), n)
	}
	for _, opt := range visible[:n] {
		res, err := s.Interact(group, opt.Label)
		if err != nil {
			t.Fatalf("Interact(%d, %q): %v", group, opt.Label, err)
		}
		if !res.Accepted || !res.Checked {
			t.Fatalf("Interact(%d, %q) = %+v, want accepted and checked", group, opt.Label, res)
		}
	}
	return visible[:n]
}

// completeRound satisfies the active round's quota in every group.
func completeRound(t *testing.T, s *Session) {
	t.Helper()
	for _, id := range s.Bank().GroupIDs() {
		pick(t, s, id, s.Required()-s.Count(id))
	}
}

func TestNew_InitialState(t *testing.T) {
	s := testSession()
	if s.ID() != "test-session-id" {
		t.Errorf("ID = %q, want test-session-id", s.ID())
	}
	if s.Round() != round.First {
		t.Errorf("Round = %v, want round 1", s.Round())
	}
	if s.Completed() {
		t.Error("new session should not be completed")
	}
	for _, id := range s.Bank().GroupIDs() {
		if got := len(s.Visible(id)); got != bank.OptionsPerGroup {
			t.Errorf("group %d: %d visible options, want %d", id, got, bank.OptionsPerGroup)
		}
	}
	if len(s.Eliminated()) != 0 {
		t.Error("nothing should be eliminated at the start")
	}
}

func TestNew_GeneratesID(t *testing.T) {
	a := New(bank.Default())
	b := New(bank.Default())
	if a.ID() == "" || a.ID() == b.ID() {
		t.Errorf("expected distinct non-empty IDs, got %q and %q", a.ID(), b.ID())
	}
}

func TestInteract_CapEnforced(t *testing.T) {
	s := testSession()
	pick(t, s, 1, 4)

	fifth := s.Visible(1)[4]
	res, err := s.Interact(1, fifth.Label)

	var capErr *SelectionCapError
	if !errors.As(err, &capErr) {
		t.Fatalf("expected *SelectionCapError, got %v", err)
	}
	if capErr.Cap != 4 || capErr.Group != 1 || capErr.Round != round.First {
		t.Errorf("cap error = %+v", capErr)
	}
	if capErr.Error() != "each group allows at most 4 selections" {
		t.Errorf("message = %q", capErr.Error())
	}
	if res.Accepted {
		t.Error("rejected toggle must not be accepted")
	}
	if got := s.Count(1); got != 4 {
		t.Errorf("Count = %d, want 4", got)
	}
	if s.Checked(fifth) {
		t.Error("fifth option must stay unchecked")
	}
	if got := len(s.History(1).Round1); got != 4 {
		t.Errorf("history has %d entries, want 4", got)
	}
}

func TestInteract_UncheckAtCap(t *testing.T) {
	s := testSession()
	picked := pick(t, s, 2, 4)

	res, err := s.Interact(2, picked[0].Label)
	if err != nil {
		t.Fatalf("unchecking at the cap should be allowed: %v", err)
	}
	if !res.Accepted || res.Checked {
		t.Errorf("result = %+v, want accepted and unchecked", res)
	}
	if got := s.Count(2); got != 3 {
		t.Errorf("Count = %d, want 3", got)
	}
}

func TestInteract_CapIsPerGroup(t *testing.T) {
	s := testSession()
	pick(t, s, 1, 4)
	if _, err := s.Interact(2, s.Visible(2)[0].Label); err != nil {
		t.Errorf("a full group 1 must not block group 2: %v", err)
	}
}

func TestInteract_UnknownOption(t *testing.T) {
	s := testSession()
	if _, err := s.Interact(1, "no such option"); !errors.Is(err, ErrUnknownOption) {
		t.Errorf("err = %v, want ErrUnknownOption", err)
	}
	if _, err := s.Interact(9, "獨當一面"); !errors.Is(err, ErrUnknownOption) {
		t.Errorf("err = %v, want ErrUnknownOption", err)
	}
}

func TestHistorySymmetry(t *testing.T) {
	s := testSession()
	opt := s.Visible(3)[2]

	if _, err := s.Interact(3, opt.Label); err != nil {
		t.Fatal(err)
	}
	if got := s.History(3).Round1; len(got) != 1 || got[0].Key() != opt.Key() {
		t.Fatalf("history after check = %v", got)
	}
	if _, err := s.Interact(3, opt.Label); err != nil {
		t.Fatal(err)
	}
	for _, h := range s.History(3).Round1 {
		if h.Key() == opt.Key() {
			t.Error("unchecked option must be removed from history")
		}
	}
}

func TestAdvance_Gate(t *testing.T) {
	s := testSession()
	for _, id := range s.Bank().GroupIDs() {
		n := 4
		if id == 3 {
			n = 3
		}
		pick(t, s, id, n)
	}

	_, err := s.Advance()
	var inc *IncompleteSelectionError
	if !errors.As(err, &inc) {
		t.Fatalf("expected *IncompleteSelectionError, got %v", err)
	}
	if len(inc.Mismatches) != 1 {
		t.Fatalf("mismatches = %+v, want one", inc.Mismatches)
	}
	want := Mismatch{Group: 3, Selected: 3, Required: 4}
	if inc.Mismatches[0] != want {
		t.Errorf("mismatch = %+v, want %+v", inc.Mismatches[0], want)
	}
	if s.Round() != round.First {
		t.Errorf("Round = %v after failed advance, want round 1", s.Round())
	}

	pick(t, s, 3, 1)
	tr, err := s.Advance()
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if tr.From != round.First || tr.To != round.Second || tr.Completed {
		t.Errorf("transition = %+v", tr)
	}
	if tr.Hidden != bank.GroupCount*4 {
		t.Errorf("Hidden = %d, want %d", tr.Hidden, bank.GroupCount*4)
	}
	if s.Round() != round.Second {
		t.Errorf("Round = %v, want round 2", s.Round())
	}
}

func TestAdvance_OverSelected(t *testing.T) {
	s := testSession()
	completeRound(t, s)

	// The cap keeps Interact from over-selecting, so go behind it.
	s.store.Toggle(round.First, s.Visible(5)[7])

	_, err := s.Advance()
	var inc *IncompleteSelectionError
	if !errors.As(err, &inc) {
		t.Fatalf("expected *IncompleteSelectionError, got %v", err)
	}
	want := Mismatch{Group: 5, Selected: 5, Required: 4}
	if len(inc.Mismatches) != 1 || inc.Mismatches[0] != want {
		t.Errorf("mismatches = %+v, want [%+v]", inc.Mismatches, want)
	}
}

func TestAdvance_EmptyListsEveryGroup(t *testing.T) {
	s := testSession()
	_, err := s.Advance()
	var inc *IncompleteSelectionError
	if !errors.As(err, &inc) {
		t.Fatalf("expected *IncompleteSelectionError, got %v", err)
	}
	if len(inc.Mismatches) != bank.GroupCount {
		t.Fatalf("got %d mismatches, want %d", len(inc.Mismatches), bank.GroupCount)
	}
	for i, m := range inc.Mismatches {
		if m.Group != bank.GroupID(i+1) || m.Selected != 0 || m.Required != 4 {
			t.Errorf("mismatch %d = %+v", i, m)
		}
	}
	msg := inc.Message()
	if msg == "" {
		t.Error("expected a user-facing message")
	}
}

func TestAdvance_EliminatesUnchecked(t *testing.T) {
	s := testSession()
	picked := pick(t, s, 1, 4)
	for _, id := range s.Bank().GroupIDs()[1:] {
		pick(t, s, id, 4)
	}
	eliminated := s.Visible(1)[4]

	if _, err := s.Advance(); err != nil {
		t.Fatal(err)
	}

	visible := s.Visible(1)
	if len(visible) != 4 {
		t.Fatalf("round 2 visible = %d options, want 4", len(visible))
	}
	for i := range picked {
		if visible[i].Key() != picked[i].Key() {
			t.Errorf("visible[%d] = %v, want %v", i, visible[i].Key(), picked[i].Key())
		}
	}
	if s.Count(1) != 0 {
		t.Error("round 2 must start with nothing checked")
	}
	if !s.CheckedIn(round.First, picked[0]) {
		t.Error("round 1 selections must persist")
	}
	if _, err := s.Interact(1, eliminated.Label); !errors.Is(err, ErrOptionHidden) {
		t.Errorf("err = %v, want ErrOptionHidden", err)
	}
	if got := len(s.Eliminated()); got != bank.GroupCount*4 {
		t.Errorf("Eliminated = %d, want %d", got, bank.GroupCount*4)
	}
}

func TestFullFlow(t *testing.T) {
	s := testSession()
	wantRounds := []round.Round{round.Second, round.Third}

	for i, r := range round.All() {
		if s.Round() != r {
			t.Fatalf("Round = %v, want %v", s.Round(), r)
		}
		for _, id := range s.Bank().GroupIDs() {
			if _, err := s.Advance(); err == nil {
				t.Fatalf("%v: advance accepted before group %d was complete", r, id)
			}
			pick(t, s, id, r.RequiredSelections())
		}

		tr, err := s.Advance()
		if err != nil {
			t.Fatalf("%v: advance: %v", r, err)
		}
		if r.Last() {
			if !tr.Completed || tr.To != 0 {
				t.Errorf("final transition = %+v, want completed", tr)
			}
			continue
		}
		if tr.To != wantRounds[i] {
			t.Errorf("transition to %v, want %v", tr.To, wantRounds[i])
		}
		for _, id := range s.Bank().GroupIDs() {
			if got, want := len(s.Visible(id)), r.RequiredSelections(); got != want {
				t.Errorf("%v: group %d has %d visible, want %d", s.Round(), id, got, want)
			}
		}
	}

	if !s.Completed() || s.Round() != round.Third {
		t.Errorf("Completed = %v, Round = %v; want true, round 3", s.Completed(), s.Round())
	}
	if _, err := s.Advance(); !errors.Is(err, ErrCompleted) {
		t.Errorf("advance after completion: %v, want ErrCompleted", err)
	}
	if _, err := s.Interact(1, s.Visible(1)[0].Label); !errors.Is(err, ErrCompleted) {
		t.Errorf("interact after completion: %v, want ErrCompleted", err)
	}

	for _, id := range s.Bank().GroupIDs() {
		h := s.History(id)
		if len(h.Round1) != 4 || len(h.Round2) != 2 || len(h.Round3) != 1 {
			t.Errorf("group %d history sizes = %d/%d/%d, want 4/2/1",
				id, len(h.Round1), len(h.Round2), len(h.Round3))
		}
		if h.Round3[0].Key() != h.Round2[0].Key() || h.Round2[0].Key() != h.Round1[0].Key() {
			t.Errorf("group %d: round 3 pick must come from round 2 survivors", id)
		}
	}
}

func TestDisplayScores_Decisive(t *testing.T) {
	s := New(decisiveBank(t))
	pick(t, s, 1, 4)

	d := s.DisplayScores()
	if d.Primary[traits.Decisive] != 4 {
		t.Errorf("decisive = %d, want 4", d.Primary[traits.Decisive])
	}
	for _, a := range []traits.Axis{traits.Extroversion, traits.Rational, traits.Emotional, traits.Action} {
		if d.Final[a] != 4 {
			t.Errorf("%s = %d, want 4", a, d.Final[a])
		}
	}
	if d.Percentages[traits.Extroversion] != 100 || d.Percentages[traits.Introversion] != 0 {
		t.Errorf("extroversion/introversion = %d/%d, want 100/0",
			d.Percentages[traits.Extroversion], d.Percentages[traits.Introversion])
	}
	if d.Percentages[traits.Thinking] != 0 || d.Percentages[traits.Action] != 100 {
		t.Errorf("thinking/action = %d/%d, want 0/100",
			d.Percentages[traits.Thinking], d.Percentages[traits.Action])
	}
}

func TestDisplayScores_WeightsAccumulateAcrossRounds(t *testing.T) {
	s := New(decisiveBank(t))
	completeRound(t, s) // group 1 picks the four decisive options
	if _, err := s.Advance(); err != nil {
		t.Fatal(err)
	}
	completeRound(t, s)
	if _, err := s.Advance(); err != nil {
		t.Fatal(err)
	}
	completeRound(t, s)
	if _, err := s.Advance(); err != nil {
		t.Fatal(err)
	}

	d := s.DisplayScores()
	// Round 1: 4 decisive x1; round 2: 2 x2; round 3: 1 x4.
	if got := d.Primary[traits.Decisive]; got != 4+4+4 {
		t.Errorf("decisive = %d, want 12", got)
	}
	// Groups 2-5 are all interpersonal: 4 groups x (4x1 + 2x2 + 1x4).
	if got := d.Primary[traits.Interpersonal]; got != 4*12 {
		t.Errorf("interpersonal = %d, want 48", got)
	}

	again := s.DisplayScores()
	for k, v := range d.Final {
		if again.Final[k] != v {
			t.Errorf("recomputing changed %s: %d -> %d", k, v, again.Final[k])
		}
	}
}

func TestReset(t *testing.T) {
	s := testSession()
	completeRound(t, s)
	if _, err := s.Advance(); err != nil {
		t.Fatal(err)
	}
	pick(t, s, 1, 1)

	s.Reset()

	if s.Round() != round.First || s.Completed() {
		t.Errorf("after reset Round = %v, Completed = %v", s.Round(), s.Completed())
	}
	for _, id := range s.Bank().GroupIDs() {
		if len(s.Visible(id)) != bank.OptionsPerGroup {
			t.Errorf("group %d: eliminated options must return after reset", id)
		}
		h := s.History(id)
		if len(h.Round1)+len(h.Round2)+len(h.Round3) != 0 {
			t.Errorf("group %d: history not cleared", id)
		}
	}
	for _, v := range s.DisplayScores().Primary {
		if v != 0 {
			t.Fatal("scores not cleared")
		}
	}
	if s.ID() != "test-session-id" {
		t.Error("reset must keep the session ID")
	}
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := New(bank.Default(), WithID("log-test"), WithLogger(zap.New(core)))

	pick(t, s, 1, 4)
	_, _ = s.Interact(1, s.Visible(1)[5].Label)
	_, _ = s.Advance()

	if n := logs.FilterMessage("option toggled").Len(); n != 4 {
		t.Errorf("option toggled logged %d times, want 4", n)
	}
	if n := logs.FilterMessage("selection rejected").Len(); n != 1 {
		t.Errorf("selection rejected logged %d times, want 1", n)
	}
	rejected := logs.FilterMessage("advance rejected").All()
	if len(rejected) != 1 {
		t.Fatalf("advance rejected logged %d times, want 1", len(rejected))
	}
	if got := rejected[0].ContextMap()["session"]; got != "log-test" {
		t.Errorf("session field = %v, want log-test", got)
	}
}
