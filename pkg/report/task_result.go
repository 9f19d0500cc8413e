package report

import (
	"encoding/json"
	"time"
)

// Task statuses written by the scanning modules. Only StatusInteresting yields reports.
const (
	StatusInteresting = "INTERESTING"
	StatusOK          = "OK"
	StatusError       = "ERROR"
)

// Headers carries the routing information of a task result.
type Headers struct {
	Receiver string `json:"receiver"`
}

// TaskResult is a finished scanning task as stored by the task queue. The shape of
// Result and Payload is owned by the module that produced it.
type TaskResult struct {
	Headers           Headers        `json:"headers"`
	Status            string         `json:"status"`
	Result            any            `json:"result"`
	Payload           map[string]any `json:"payload"`
	PayloadPersistent map[string]any `json:"payload_persistent,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
}

// UnmarshalJSON decodes a task result, accepting any of TimeLayouts for created_at.
// An unreadable created_at leaves CreatedAt zero instead of rejecting the record.
func (t *TaskResult) UnmarshalJSON(data []byte) error {
	type plain TaskResult
	var aux struct {
		plain
		CreatedAt json.RawMessage `json:"created_at"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*t = TaskResult(aux.plain)
	t.CreatedAt = time.Time{}

	var raw string
	if len(aux.CreatedAt) == 0 || json.Unmarshal(aux.CreatedAt, &raw) != nil || raw == "" {
		return nil
	}
	if ts, err := ParseTime(raw); err == nil {
		t.CreatedAt = ts
	}
	return nil
}

// Receiver returns the name of the module that produced the result.
func (t TaskResult) Receiver() string {
	return t.Headers.Receiver
}

// IsInteresting reports whether the task found something worth reporting.
func (t TaskResult) IsInteresting() bool {
	return t.Status == StatusInteresting
}

// PayloadString returns a string payload parameter, or "" when missing or not a string.
func (t TaskResult) PayloadString(key string) string {
	v, _ := t.Payload[key].(string)
	return v
}
