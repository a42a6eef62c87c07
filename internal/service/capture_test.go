package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	soleus "soleus_remote"
)

type fakeCaptureRepo struct {
	appended []soleus.CapturedButton
	listResp []soleus.CapturedButton
	listErr  error
	appendEr error
}

func (f *fakeCaptureRepo) Append(ctx context.Context, b soleus.CapturedButton) error {
	f.appended = append(f.appended, b)
	return f.appendEr
}
func (f *fakeCaptureRepo) List(ctx context.Context) ([]soleus.CapturedButton, error) {
	return f.listResp, f.listErr
}

func observeN(t *testing.T, s *CaptureService, code string, n int, start time.Time, gap time.Duration) *soleus.CapturedButton {
	t.Helper()
	var last *soleus.CapturedButton
	for i := 0; i < n; i++ {
		b, err := s.Observe(context.Background(), code, start.Add(time.Duration(i)*gap))
		if err != nil {
			t.Fatalf("Observe() error = %v", err)
		}
		if b != nil {
			last = b
		}
	}
	return last
}

func TestCaptureService_ThresholdPromotesButton(t *testing.T) {
	repo := &fakeCaptureRepo{}
	s := NewCaptureService(repo, CaptureConfig{MatchThreshold: 3})

	t0 := time.Now()
	b := observeN(t, s, "0000 006D 004A", 3, t0, time.Second)
	if b == nil {
		t.Fatal("expected a captured button after 3 matches")
	}
	if b.ButtonName != "button_1" {
		t.Errorf("name = %q, want button_1", b.ButtonName)
	}
	if b.Matches != 3 {
		t.Errorf("matches = %d, want 3", b.Matches)
	}
	if b.ID == "" {
		t.Error("expected non-empty ID")
	}
	if len(repo.appended) != 1 {
		t.Fatalf("expected one persisted capture, got %d", len(repo.appended))
	}

	// Further repeats of a captured code are skipped.
	if again := observeN(t, s, "0000 006D 004A", 5, t0.Add(time.Minute), time.Second); again != nil {
		t.Errorf("already-captured code promoted again: %+v", again)
	}
	if len(repo.appended) != 1 {
		t.Errorf("capture persisted twice")
	}
}

func TestCaptureService_DebounceDropsFastRepeats(t *testing.T) {
	s := NewCaptureService(&fakeCaptureRepo{}, CaptureConfig{MatchThreshold: 3, Debounce: time.Second})

	t0 := time.Now()
	// All within the debounce window: only the first observation counts.
	if b := observeN(t, s, "0013 0018", 10, t0, 10*time.Millisecond); b != nil {
		t.Fatalf("debounced repeats promoted a button: %+v", b)
	}
	if st := s.Status(); st.BufferLen != 1 {
		t.Errorf("buffer len = %d, want 1", st.BufferLen)
	}
}

func TestCaptureService_WhitespaceNormalized(t *testing.T) {
	repo := &fakeCaptureRepo{}
	s := NewCaptureService(repo, CaptureConfig{MatchThreshold: 2})

	t0 := time.Now()
	if _, err := s.Observe(context.Background(), "0013  0018\t0043", t0); err != nil {
		t.Fatal(err)
	}
	b, err := s.Observe(context.Background(), " 0013 0018 0043 ", t0.Add(time.Second))
	if err != nil {
		t.Fatal(err)
	}
	if b == nil {
		t.Fatal("differently-spaced identical codes did not cluster")
	}
	if b.ProntoData != "0013 0018 0043" {
		t.Errorf("stored code not normalized: %q", b.ProntoData)
	}
}

func TestCaptureService_BufferIsBounded(t *testing.T) {
	s := NewCaptureService(&fakeCaptureRepo{}, CaptureConfig{BufferSize: 5, MatchThreshold: 100})

	t0 := time.Now()
	for i := 0; i < 20; i++ {
		code := fmt.Sprintf("code %04d", i)
		if _, err := s.Observe(context.Background(), code, t0.Add(time.Duration(i)*time.Second)); err != nil {
			t.Fatal(err)
		}
	}
	if st := s.Status(); st.BufferLen != 5 {
		t.Errorf("buffer len = %d, want 5", st.BufferLen)
	}
}

func TestCaptureService_BootstrapSeedsSeenSet(t *testing.T) {
	repo := &fakeCaptureRepo{
		listResp: []soleus.CapturedButton{
			{ID: "a", ButtonName: "button_1", ProntoData: "0013 0018"},
		},
	}
	s := NewCaptureService(repo, CaptureConfig{MatchThreshold: 2})
	if err := s.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap() error = %v", err)
	}

	if b := observeN(t, s, "0013 0018", 5, time.Now(), time.Second); b != nil {
		t.Errorf("previously captured code promoted again: %+v", b)
	}
	if st := s.Status(); st.Captured != 1 {
		t.Errorf("captured = %d, want 1", st.Captured)
	}
}

func TestCaptureService_BootstrapListError(t *testing.T) {
	s := NewCaptureService(&fakeCaptureRepo{listErr: errors.New("db down")}, CaptureConfig{})
	if err := s.Bootstrap(context.Background()); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestCaptureService_AppendErrorPropagates(t *testing.T) {
	repo := &fakeCaptureRepo{appendEr: errors.New("disk full")}
	s := NewCaptureService(repo, CaptureConfig{MatchThreshold: 1})
	if _, err := s.Observe(context.Background(), "0013", time.Now()); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestCaptureService_FailedAppendAllowsRepromotion(t *testing.T) {
	repo := &fakeCaptureRepo{appendEr: errors.New("disk full")}
	s := NewCaptureService(repo, CaptureConfig{MatchThreshold: 2})

	t0 := time.Now()
	if _, err := s.Observe(context.Background(), "0013 0018", t0); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Observe(context.Background(), "0013 0018", t0.Add(time.Second)); err == nil {
		t.Fatal("expected error from failed append")
	}
	if st := s.Status(); st.Captured != 0 {
		t.Errorf("captured = %d after failed append, want 0", st.Captured)
	}

	// Once the store recovers, the same code must still become a button.
	repo.appendEr = nil
	b, err := s.Observe(context.Background(), "0013 0018", t0.Add(2*time.Second))
	if err != nil {
		t.Fatalf("Observe() after recovery error = %v", err)
	}
	if b == nil {
		t.Fatal("code not re-promoted after the store recovered")
	}
	if b.ButtonName != "button_1" {
		t.Errorf("name = %q, want button_1", b.ButtonName)
	}
	if len(repo.appended) != 2 {
		// the fake records the failed attempt too; only the retry succeeded
		t.Errorf("append calls = %d, want 2", len(repo.appended))
	}
}

func TestCaptureService_StatusTopClusters(t *testing.T) {
	s := NewCaptureService(&fakeCaptureRepo{}, CaptureConfig{MatchThreshold: 100})

	t0 := time.Now()
	i := 0
	feed := func(code string, n int) {
		for j := 0; j < n; j++ {
			_, _ = s.Observe(context.Background(), code, t0.Add(time.Duration(i)*time.Second))
			i++
		}
	}
	feed("aaaa", 3)
	feed("bbbb", 5)
	feed("cccc", 1)

	st := s.Status()
	if len(st.TopClusters) != 3 {
		t.Fatalf("clusters = %d, want 3", len(st.TopClusters))
	}
	if st.TopClusters[0].Count != 5 || st.TopClusters[0].Preview != "bbbb" {
		t.Errorf("top cluster = %+v, want bbbb x5", st.TopClusters[0])
	}
	if st.BufferLen != 9 {
		t.Errorf("buffer len = %d, want 9", st.BufferLen)
	}
}
