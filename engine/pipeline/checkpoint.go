package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/ovenlight/turnbake/engine/core"
)

const checkpointFile = "checkpoint.toml"

/**
 * @brief Checkpoint records which meshes an export run has finished so a
 * crashed or interrupted run can resume without redoing work. It is
 * flushed atomically (temp file + rename) after every completed mesh.
 */
type Checkpoint struct {
	RunID     string    `toml:"run_id"`
	UpdatedAt time.Time `toml:"updated_at"`
	Completed []string  `toml:"completed"`

	mutex sync.Mutex
	path  string
	done  map[string]struct{}
}

/**
 * @brief Loads the checkpoint from the output directory, or starts a fresh
 * one when none exists. A corrupt checkpoint is set aside (renamed with a
 * .bad suffix) rather than aborting the run; the work it tracked is redone.
 */
func LoadCheckpoint(outputDir string) (*Checkpoint, error) {
	cp := &Checkpoint{
		RunID: core.NewRunID(),
		path:  filepath.Join(outputDir, checkpointFile),
		done:  make(map[string]struct{}),
	}

	data, err := os.ReadFile(cp.path)
	if os.IsNotExist(err) {
		return cp, nil
	}
	if err != nil {
		return nil, err
	}

	if err := toml.Unmarshal(data, cp); err != nil {
		core.LogWarn("%s: %s, starting over", core.ErrCheckpointCorrupt, err)
		if renameErr := os.Rename(cp.path, cp.path+".bad"); renameErr != nil {
			return nil, renameErr
		}
		cp.Completed = nil
		return cp, nil
	}

	for _, key := range cp.Completed {
		cp.done[key] = struct{}{}
	}
	core.LogInfo("resuming run %s: %d meshes already done", cp.RunID, len(cp.done))
	return cp, nil
}

// IsDone reports whether the mesh identified by key already completed.
func (c *Checkpoint) IsDone(key string) bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	_, ok := c.done[key]
	return ok
}

// MarkDone records a completed mesh and flushes to disk.
func (c *Checkpoint) MarkDone(key string) error {
	c.mutex.Lock()
	if _, ok := c.done[key]; !ok {
		c.done[key] = struct{}{}
		c.Completed = append(c.Completed, key)
	}
	c.mutex.Unlock()
	return c.Flush()
}

// Flush writes the checkpoint atomically.
func (c *Checkpoint) Flush() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.UpdatedAt = time.Now().UTC()
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode checkpoint: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), checkpointFile+".*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), c.path)
}

// Done returns how many meshes the checkpoint has recorded.
func (c *Checkpoint) Done() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return len(c.done)
}
