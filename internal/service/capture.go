package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	soleus "soleus_remote"
	"soleus_remote/internal/repository"

	"github.com/google/uuid"
)

// Clustering defaults, matching the capture behavior the protocol was
// originally reverse-engineered with.
const (
	defaultBufferSize     = 40
	defaultMatchThreshold = 10
	defaultDebounce       = 200 * time.Millisecond

	previewLen = 24
)

// CaptureConfig tunes the clustering of observed codes.
type CaptureConfig struct {
	BufferSize     int           // how many recent codes to keep
	MatchThreshold int           // repeats needed before a code becomes a button
	Debounce       time.Duration // window in which an identical repeat is dropped
}

func (c CaptureConfig) withDefaults() CaptureConfig {
	if c.BufferSize <= 0 {
		c.BufferSize = defaultBufferSize
	}
	if c.MatchThreshold <= 0 {
		c.MatchThreshold = defaultMatchThreshold
	}
	if c.Debounce <= 0 {
		c.Debounce = defaultDebounce
	}
	return c
}

// ClusterStatus describes one distinct code currently in the buffer.
type ClusterStatus struct {
	Count   int    `json:"count"`
	Preview string `json:"preview"`
}

// CaptureStatus is a snapshot of the capture session for status streams.
type CaptureStatus struct {
	BufferLen      int             `json:"buffer_len"`
	BufferCap      int             `json:"buffer_cap"`
	MatchThreshold int             `json:"match_threshold"`
	Captured       int             `json:"captured"`
	TopClusters    []ClusterStatus `json:"top_clusters,omitempty"`
}

// CaptureService keeps a sliding window of recently observed Pronto codes
// and promotes a code to a captured button once it repeats often enough.
// Safe for concurrent use: the log-stream listener and HTTP readers share it.
type CaptureService struct {
	repo repository.CaptureRepo
	cfg  CaptureConfig

	mu       sync.Mutex
	recent   []string
	lastCode string
	lastAt   time.Time
	seen     map[string]struct{}
	captured int
}

func NewCaptureService(repo repository.CaptureRepo, cfg CaptureConfig) *CaptureService {
	return &CaptureService{
		repo: repo,
		cfg:  cfg.withDefaults(),
		seen: make(map[string]struct{}),
	}
}

// Bootstrap seeds the already-captured set from the store so restarted
// sessions don't re-capture known buttons.
func (s *CaptureService) Bootstrap(ctx context.Context) error {
	existing, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("load existing captures: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range existing {
		s.seen[b.ProntoData] = struct{}{}
	}
	s.captured = len(existing)
	return nil
}

// Observe feeds one received code into the session. It returns a non-nil
// button exactly when this observation pushed a code over the match
// threshold; debounced repeats and already-captured codes return (nil, nil).
func (s *CaptureService) Observe(ctx context.Context, pronto string, at time.Time) (*soleus.CapturedButton, error) {
	code := strings.Join(strings.Fields(pronto), " ")
	if code == "" {
		return nil, nil
	}

	s.mu.Lock()
	if code == s.lastCode && at.Sub(s.lastAt) < s.cfg.Debounce {
		s.mu.Unlock()
		return nil, nil
	}
	s.lastCode = code
	s.lastAt = at

	if _, dup := s.seen[code]; dup {
		s.mu.Unlock()
		return nil, nil
	}

	s.recent = append(s.recent, code)
	if len(s.recent) > s.cfg.BufferSize {
		s.recent = s.recent[len(s.recent)-s.cfg.BufferSize:]
	}

	count := 0
	for _, c := range s.recent {
		if c == code {
			count++
		}
	}
	if count < s.cfg.MatchThreshold {
		s.mu.Unlock()
		return nil, nil
	}

	s.seen[code] = struct{}{}
	s.captured++
	button := soleus.CapturedButton{
		ID:         uuid.NewString(),
		CapturedAt: at.UTC(),
		ButtonName: fmt.Sprintf("button_%d", s.captured),
		ProntoData: code,
		Matches:    count,
	}
	s.mu.Unlock()

	if err := s.repo.Append(ctx, button); err != nil {
		// Undo the promotion so the code can be re-promoted once the
		// store recovers; otherwise the button is lost for the session.
		s.mu.Lock()
		delete(s.seen, code)
		s.captured--
		s.mu.Unlock()
		return nil, fmt.Errorf("save capture: %w", err)
	}
	return &button, nil
}

// List returns all captured buttons from the store.
func (s *CaptureService) List(ctx context.Context) ([]soleus.CapturedButton, error) {
	return s.repo.List(ctx)
}

// Status reports the session state with the five biggest clusters.
func (s *CaptureService) Status() CaptureStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[string]int)
	for _, c := range s.recent {
		counts[c]++
	}
	clusters := make([]ClusterStatus, 0, len(counts))
	for code, n := range counts {
		p := code
		if len(p) > previewLen {
			p = p[:previewLen] + "..."
		}
		clusters = append(clusters, ClusterStatus{Count: n, Preview: p})
	}
	sort.Slice(clusters, func(i, j int) bool {
		if clusters[i].Count != clusters[j].Count {
			return clusters[i].Count > clusters[j].Count
		}
		return clusters[i].Preview < clusters[j].Preview
	})
	if len(clusters) > 5 {
		clusters = clusters[:5]
	}

	return CaptureStatus{
		BufferLen:      len(s.recent),
		BufferCap:      s.cfg.BufferSize,
		MatchThreshold: s.cfg.MatchThreshold,
		Captured:       s.captured,
		TopClusters:    clusters,
	}
}
