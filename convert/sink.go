// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// Sink receives finished artifacts.
type Sink interface {
	Deliver(ctx context.Context, a *Artifact) error
}

// FileSink writes artifacts into Dir. Each file is written to a
// temporary name first and renamed into place, so readers never see a
// partial file.
type FileSink struct {
	Dir string
}

// Path is where Deliver puts a.
func (s FileSink) Path(a *Artifact) string {
	return filepath.Join(s.Dir, filepath.Base(a.Name))
}

func (s FileSink) Deliver(ctx context.Context, a *Artifact) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	dst := s.Path(a)
	tmp := filepath.Join(s.Dir, "."+filepath.Base(a.Name)+"."+uuid.NewString()+".tmp")

	if err := os.WriteFile(tmp, a.Data, 0o644); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("writing %s: %w", dst, err)
	}

	if err := os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("writing %s: %w", dst, err)
	}

	return nil
}

// MemorySink keeps delivered artifacts in memory. It is safe for
// concurrent use.
type MemorySink struct {
	mtx       sync.Mutex
	artifacts []*Artifact
}

func (s *MemorySink) Deliver(_ context.Context, a *Artifact) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.artifacts = append(s.artifacts, a)
	return nil
}

// Last returns the most recent artifact, or nil.
func (s *MemorySink) Last() *Artifact {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if len(s.artifacts) == 0 {
		return nil
	}
	return s.artifacts[len(s.artifacts)-1]
}

// Artifacts returns every delivered artifact in order.
func (s *MemorySink) Artifacts() []*Artifact {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return append([]*Artifact(nil), s.artifacts...)
}
