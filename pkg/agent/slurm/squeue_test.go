package slurm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRunTime(t *testing.T) {
	cases := []struct {
		value string
		want  int
	}{
		{"00:00", 0},
		{"01:30", 90},
		{"59:59", 3599},
		{"1:00:00", 3600},
		{"02:15:04", 8104},
		{"1-00:00:00", 86400},
		{"3-12:30:00", 304200},
	}
	for _, tc := range cases {
		t.Run(tc.value, func(t *testing.T) {
			got, err := ParseRunTime(tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("rejects malformed values", func(t *testing.T) {
		for _, v := range []string{"", "90", "1:2:3:4", "xx:yy", "a-00:00:00"} {
			_, err := ParseRunTime(v)
			assert.Error(t, err, "value %q", v)
		}
	})
}

func TestParseQueue(t *testing.T) {
	t.Run("parses tab-separated rows", func(t *testing.T) {
		output := "123\talice\tRUNNING\t01:30\n456\tbob\tPENDING\t00:00\n789\tcarol\tRUNNING\t1-00:00:00\n"

		jobs, err := ParseQueue(output)
		require.NoError(t, err)
		require.Len(t, jobs, 3)

		assert.Equal(t, Job{JobID: 123, Username: "alice", State: StateRunning, RunTimeSeconds: 90}, jobs[0])
		assert.Equal(t, Job{JobID: 456, Username: "bob", State: "PENDING", RunTimeSeconds: 0}, jobs[1])
		assert.Equal(t, Job{JobID: 789, Username: "carol", State: StateRunning, RunTimeSeconds: 86400}, jobs[2])
	})

	t.Run("empty output yields no jobs", func(t *testing.T) {
		jobs, err := ParseQueue("")
		require.NoError(t, err)
		assert.Empty(t, jobs)
	})

	t.Run("skips blank lines", func(t *testing.T) {
		jobs, err := ParseQueue("\n123\talice\tRUNNING\t00:10\n\n")
		require.NoError(t, err)
		assert.Len(t, jobs, 1)
	})

	t.Run("rejects malformed lines", func(t *testing.T) {
		_, err := ParseQueue("123\talice\tRUNNING\n")
		require.Error(t, err)

		_, err = ParseQueue("abc\talice\tRUNNING\t00:10\n")
		require.Error(t, err)
	})
}
