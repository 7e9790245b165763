package taskgroup

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunTask(t *testing.T) {
	errTask := errors.New("task failed")

	tests := []struct {
		name    string
		task    Task
		wantErr error
		wantMsg string
	}{
		{name: "success", task: func() error { return nil }},
		{name: "task func", task: TaskFunc(func() {})},
		{name: "failure", task: func() error { return errTask }, wantErr: errTask},
		{name: "nil task", task: nil, wantErr: ErrNilTask},
		{
			name:    "panic",
			task:    func() error { panic("boom") },
			wantErr: ErrTaskPanicked,
			wantMsg: "taskgroup: task execution panicked: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runTask(tt.task)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				require.EqualError(t, err, tt.wantMsg)
			}
		})
	}
}
