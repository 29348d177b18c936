package session

import (
	"fmt"
	"sync"
	"time"

	apperrors "github.com/daymade/medscribe/internal/app/errors"
)

// ArtifactType identifies one of the three generated text artifacts.
type ArtifactType string

const (
	ArtifactTranscript   ArtifactType = "transcript"
	ArtifactConversation ArtifactType = "conversation"
	ArtifactReport       ArtifactType = "report"
)

// ArtifactTypes lists all types in presentation order.
func ArtifactTypes() []ArtifactType {
	return []ArtifactType{ArtifactTranscript, ArtifactConversation, ArtifactReport}
}

// ParseArtifactType validates a path or query value.
func ParseArtifactType(s string) (ArtifactType, error) {
	switch ArtifactType(s) {
	case ArtifactTranscript, ArtifactConversation, ArtifactReport:
		return ArtifactType(s), nil
	default:
		return "", apperrors.InvalidField("artifact type", s)
	}
}

// Extension returns the download file extension for the type.
func (t ArtifactType) Extension() string {
	if t == ArtifactTranscript {
		return ".txt"
	}
	return ".md"
}

// DownloadFilename builds the attachment name at download time, so two
// downloads of the same artifact get distinct timestamps.
func (t ArtifactType) DownloadFilename(now time.Time) string {
	return fmt.Sprintf("%s_%s%s", t, now.Format("20060102_150405"), t.Extension())
}

// Artifact is one generated text output held for the session.
type Artifact struct {
	Type           ArtifactType `json:"type"`
	Content        string       `json:"content"`
	GeneratedAt    time.Time    `json:"generated_at"`
	SourceFilename string       `json:"source_filename"`
}

// RunInfo records metadata about the most recent processing run.
type RunInfo struct {
	RunID          string        `json:"run_id"`
	SourceFilename string        `json:"source_filename"`
	Provider       string        `json:"provider"`
	AudioDuration  time.Duration `json:"audio_duration"`
	StartedAt      time.Time     `json:"started_at"`
	CompletedAt    time.Time     `json:"completed_at"`
}

// Store holds the artifacts of one interactive session. A run overwrites the
// store wholesale: Invalidate first, then Put per completed step.
type Store struct {
	mu             sync.RWMutex
	artifacts      map[ArtifactType]Artifact
	run            *RunInfo
	audioObjectKey string
	lastAccess     time.Time
}

func NewStore() *Store {
	return &Store{
		artifacts:  make(map[ArtifactType]Artifact),
		lastAccess: time.Now(),
	}
}

// Put stores one artifact, replacing any previous value of the same type.
func (s *Store) Put(a Artifact) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.artifacts[a.Type] = a
}

// Get returns the artifact of the given type, if present.
func (s *Store) Get(t ArtifactType) (Artifact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.artifacts[t]
	return a, ok
}

// List returns present artifacts in presentation order.
func (s *Store) List() []Artifact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Artifact, 0, len(s.artifacts))
	for _, t := range ArtifactTypes() {
		if a, ok := s.artifacts[t]; ok {
			out = append(out, a)
		}
	}
	return out
}

// Invalidate clears all artifact slots and run metadata. Called at the start
// of every processing run so a failed run never leaves stale artifacts.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.artifacts = make(map[ArtifactType]Artifact)
	s.run = nil
}

// SetRun records metadata for the current run.
func (s *Store) SetRun(run RunInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.run = &run
}

// Run returns metadata of the most recent run, if any.
func (s *Store) Run() (RunInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.run == nil {
		return RunInfo{}, false
	}
	return *s.run, true
}

// SetAudioObjectKey remembers where the archive copy of the last upload went.
func (s *Store) SetAudioObjectKey(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audioObjectKey = key
}

// AudioObjectKey returns the archive key of the last upload, if any.
func (s *Store) AudioObjectKey() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.audioObjectKey
}

func (s *Store) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastAccess = now
}

func (s *Store) idleSince(now time.Time) time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return now.Sub(s.lastAccess)
}

// DefaultMaxIdle is how long a session may sit untouched before it is
// considered terminated.
const DefaultMaxIdle = 30 * time.Minute

// Manager tracks the stores of all live sessions. Idle sessions are pruned
// lazily on access, there is no background sweeper.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Store
	maxIdle  time.Duration
	now      func() time.Time
}

func NewManager(maxIdle time.Duration) *Manager {
	if maxIdle <= 0 {
		maxIdle = DefaultMaxIdle
	}
	return &Manager{
		sessions: make(map[string]*Store),
		maxIdle:  maxIdle,
		now:      time.Now,
	}
}

// GetOrCreate returns the store for a session, creating it on first touch.
func (m *Manager) GetOrCreate(id string) *Store {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.pruneLocked(now)

	store, ok := m.sessions[id]
	if !ok {
		store = NewStore()
		m.sessions[id] = store
	}
	store.touch(now)
	return store
}

// Reset drops a session's store entirely.
func (m *Manager) Reset(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) pruneLocked(now time.Time) {
	for id, store := range m.sessions {
		if store.idleSince(now) > m.maxIdle {
			delete(m.sessions, id)
		}
	}
}
