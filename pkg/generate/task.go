package generate

import (
	"time"
)

// TaskStatus represents the status of a checksum task
type TaskStatus string

const (
	// TaskPending indicates the task is waiting for a worker
	TaskPending TaskStatus = "pending"
	// TaskProcessing indicates a worker is hashing the file
	TaskProcessing TaskStatus = "processing"
	// TaskDone indicates the digest was computed
	TaskDone TaskStatus = "done"
	// TaskFailed indicates the checksum could not be computed
	TaskFailed TaskStatus = "failed"
)

// Task represents one file to checksum. Each task is independent and
// touches only its own file handle; a failed task degrades its own
// manifest entry, never the run.
type Task struct {
	// Key is the manifest key (slash-separated relative path)
	Key string

	// Path is the absolute path on disk
	Path string

	// Size is the file size from the enumeration pass
	Size int64

	// Status tracks the current state of this task
	Status TaskStatus

	// Digest is the computed hex digest; empty on failure
	Digest string

	// Err holds the checksum failure, if any
	Err error

	// Duration tracks how long the worker spent hashing
	Duration time.Duration

	// WorkerID identifies which worker processed this task
	WorkerID int
}

// NewTask creates a pending task
func NewTask(key, path string, size int64) *Task {
	return &Task{
		Key:    key,
		Path:   path,
		Size:   size,
		Status: TaskPending,
	}
}

// MarkProcessing marks the task as picked up by a worker
func (t *Task) MarkProcessing(workerID int) {
	t.Status = TaskProcessing
	t.WorkerID = workerID
}

// MarkDone records the computed digest
func (t *Task) MarkDone(digest string, duration time.Duration) {
	t.Status = TaskDone
	t.Digest = digest
	t.Duration = duration
}

// MarkFailed records the checksum failure
func (t *Task) MarkFailed(err error, duration time.Duration) {
	t.Status = TaskFailed
	t.Err = err
	t.Duration = duration
}
