package celebrate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"
)

type memoryStore struct {
	marked  bool
	at      time.Time
	readErr error
	writes  int
}

func (m *memoryStore) Marked() (bool, error) { return m.marked, m.readErr }

func (m *memoryStore) Mark(at time.Time) error {
	m.marked = true
	m.at = at
	m.writes++
	return nil
}

type manualScheduler struct {
	delays []time.Duration
	funcs  []func()
}

func (s *manualScheduler) After(d time.Duration, f func()) {
	s.delays = append(s.delays, d)
	s.funcs = append(s.funcs, f)
}

func (s *manualScheduler) fire() {
	for _, f := range s.funcs {
		f()
	}
}

var fixedNow = time.Date(2025, 12, 13, 10, 0, 0, 0, time.UTC)

func TestGate_FirstVisitSchedulesAndMarks(t *testing.T) {
	store := &memoryStore{}
	sched := &manualScheduler{}
	var played []Burst
	g := &Gate{
		Store: store,
		Now:   func() time.Time { return fixedNow },
		After: sched.After,
		Effect: func(_ context.Context, plan []Burst) error {
			played = plan
			return nil
		},
	}

	if !g.Run(context.Background()) {
		t.Fatalf("Run returned false on first visit")
	}
	if len(sched.delays) != 1 || sched.delays[0] != DefaultDelay {
		t.Fatalf("delays = %v, want [%v]", sched.delays, DefaultDelay)
	}
	if !store.marked || !store.at.Equal(fixedNow) {
		t.Fatalf("marker = %v at %v, want set at %v", store.marked, store.at, fixedNow)
	}
	if played != nil {
		t.Fatalf("effect ran before the delay elapsed")
	}
	sched.fire()
	if len(played) != 7 {
		t.Fatalf("effect received %d bursts, want 7", len(played))
	}
}

func TestGate_ReturningVisitIsNoop(t *testing.T) {
	store := &memoryStore{marked: true}
	sched := &manualScheduler{}
	g := &Gate{Store: store, After: sched.After}
	if g.Run(context.Background()) {
		t.Fatalf("Run returned true for returning visitor")
	}
	if len(sched.funcs) != 0 || store.writes != 0 {
		t.Fatalf("returning visit scheduled %d funcs and wrote %d markers", len(sched.funcs), store.writes)
	}
}

func TestGate_NilOrFailingEffectStillMarks(t *testing.T) {
	tests := []struct {
		name   string
		effect Effect
	}{
		{name: "nil"},
		{name: "error", effect: func(context.Context, []Burst) error { return errors.New("no canvas") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memoryStore{}
			sched := &manualScheduler{}
			g := &Gate{Store: store, After: sched.After, Effect: tt.effect, Now: func() time.Time { return fixedNow }}
			if !g.Run(context.Background()) {
				t.Fatalf("Run returned false")
			}
			sched.fire()
			if store.writes != 1 {
				t.Fatalf("writes = %d, want 1", store.writes)
			}
		})
	}
}

func TestGate_StoreErrorsSuppress(t *testing.T) {
	g := &Gate{Store: &memoryStore{readErr: errors.New("blocked")}, After: (&manualScheduler{}).After}
	if g.Run(context.Background()) {
		t.Fatalf("Run should not celebrate when the marker cannot be read")
	}
	if (&Gate{}).Run(context.Background()) {
		t.Fatalf("Run without a store should not celebrate")
	}
}

func TestGate_CustomDelay(t *testing.T) {
	sched := &manualScheduler{}
	g := &Gate{Store: &memoryStore{}, After: sched.After, Delay: time.Second}
	g.Run(context.Background())
	if sched.delays[0] != time.Second {
		t.Fatalf("delay = %v, want 1s", sched.delays[0])
	}
}

func TestBursts_Plan(t *testing.T) {
	plan := Bursts()
	wantCounts := []int{50, 40, 70, 20, 20, 50, 50}
	if len(plan) != len(wantCounts) {
		t.Fatalf("len(plan) = %d, want %d", len(plan), len(wantCounts))
	}
	for i, want := range wantCounts {
		if plan[i].ParticleCount != want {
			t.Fatalf("plan[%d].ParticleCount = %d, want %d", i, plan[i].ParticleCount, want)
		}
		if len(plan[i].Colors) != len(Palette) {
			t.Fatalf("plan[%d] has %d colors", i, len(plan[i].Colors))
		}
	}
	if plan[0].Spread != 26 || plan[0].StartVelocity != 55 || plan[0].Decay != 0.94 || plan[0].Ticks != 100 {
		t.Fatalf("plan[0] = %#v", plan[0])
	}
	if plan[2].Decay != 0.91 || plan[2].Scalar != 0.8 {
		t.Fatalf("plan[2] = %#v", plan[2])
	}
	if plan[5].Angle != 60 || plan[5].Origin.X != 0 || plan[5].DelayMS != 250 {
		t.Fatalf("left cannon = %#v", plan[5])
	}
	if plan[6].Angle != 120 || plan[6].Origin.X != 1 {
		t.Fatalf("right cannon = %#v", plan[6])
	}
}

func TestPlanJSON_Decodes(t *testing.T) {
	var decoded []map[string]any
	if err := json.Unmarshal([]byte(PlanJSON()), &decoded); err != nil {
		t.Fatalf("PlanJSON is not valid JSON: %v", err)
	}
	if len(decoded) != 7 {
		t.Fatalf("decoded %d bursts, want 7", len(decoded))
	}
	origin, ok := decoded[5]["origin"].(map[string]any)
	if !ok || origin["x"] != float64(0) {
		t.Fatalf("left cannon origin = %#v", decoded[5]["origin"])
	}
}

func TestCookieStore_FirstAndSecondVisit(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	store := CookieStore{Request: req, Writer: rec}

	marked, err := store.Marked()
	if err != nil || marked {
		t.Fatalf("Marked() = %v, %v; want false, nil", marked, err)
	}
	if err := store.Mark(fixedNow); err != nil {
		t.Fatalf("Mark: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("set %d cookies, want 1", len(cookies))
	}
	c := cookies[0]
	if c.Name != MarkerName || c.Value != strconv.FormatInt(fixedNow.UnixMilli(), 10) {
		t.Fatalf("cookie = %s=%s", c.Name, c.Value)
	}
	if c.MaxAge != cookieMaxAge {
		t.Fatalf("MaxAge = %d, want %d", c.MaxAge, cookieMaxAge)
	}

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	next.AddCookie(c)
	marked, err = CookieStore{Request: next, Writer: httptest.NewRecorder()}.Marked()
	if err != nil || !marked {
		t.Fatalf("second visit Marked() = %v, %v; want true, nil", marked, err)
	}
}
