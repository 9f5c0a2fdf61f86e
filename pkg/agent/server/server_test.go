package server

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpc-toolchain/license-manager/pkg/models"
)

var testPaths = ToolPaths{
	Lmutil:     "/usr/bin/lmutil",
	Lsdyna:     "/usr/bin/lstc_qrun",
	Rlmutil:    "/usr/bin/rlmutil",
	Lmxendutil: "/usr/bin/lmxendutil",
	Olixtool:   "/usr/bin/olixtool",
}

func testServers() []models.LicenseServer {
	return []models.LicenseServer{
		{Host: "lic01", Port: 27000},
		{Host: "lic02", Port: 27000},
	}
}

func TestNew(t *testing.T) {
	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := New("sesame", testServers(), testPaths)
		require.Error(t, err)
	})

	t.Run("rejects empty server list", func(t *testing.T) {
		_, err := New(TypeFlexLM, nil, testPaths)
		require.Error(t, err)
	})

	t.Run("accepts every ledger type", func(t *testing.T) {
		for _, typ := range []string{TypeFlexLM, TypeRLM, TypeLSDyna, TypeLMX, TypeOLicense} {
			_, err := New(typ, testServers(), testPaths)
			require.NoError(t, err, typ)
		}
	})
}

func TestAdapter_Commands(t *testing.T) {
	cases := []struct {
		typ  string
		want []string
	}{
		{TypeFlexLM, []string{"/usr/bin/lmutil", "lmstat", "-c", "27000@lic01", "-f", "abaqus"}},
		{TypeLSDyna, []string{"/usr/bin/lstc_qrun", "-s", "27000@lic01", "-R"}},
		{TypeRLM, []string{"/usr/bin/rlmutil", "rlmstat", "-c", "27000@lic01", "-a", "-p"}},
		{TypeLMX, []string{"/usr/bin/lmxendutil", "-licstat", "-host", "lic01", "-port", "27000"}},
		{TypeOLicense, []string{"/usr/bin/olixtool", "-sv", "lic01:31212", "-gw"}},
	}
	for _, tc := range cases {
		t.Run(tc.typ, func(t *testing.T) {
			servers := testServers()
			if tc.typ == TypeOLicense {
				servers = []models.LicenseServer{{Host: "lic01", Port: 31212}}
			}
			adapter, err := New(tc.typ, servers, testPaths)
			require.NoError(t, err)

			commands := adapter.Commands("abaqus")
			require.Equal(t, len(servers), len(commands))
			assert.Equal(t, tc.want, commands[0])
		})
	}
}

func TestAdapter_RawOutput(t *testing.T) {
	ctx := context.Background()

	t.Run("first non-empty stdout wins", func(t *testing.T) {
		adapter, err := New(TypeFlexLM, testServers(), testPaths)
		require.NoError(t, err)

		calls := 0
		adapter.SetRunner(func(ctx context.Context, argv []string) ([]byte, error) {
			calls++
			if calls == 1 {
				return []byte("   \n"), nil
			}
			return []byte("usage"), nil
		})

		output, err := adapter.RawOutput(ctx, "abaqus")
		require.NoError(t, err)
		assert.Equal(t, []byte("usage"), output)
		assert.Equal(t, 2, calls)
	})

	t.Run("failed invocations fall through to the next server", func(t *testing.T) {
		adapter, err := New(TypeFlexLM, testServers(), testPaths)
		require.NoError(t, err)

		calls := 0
		adapter.SetRunner(func(ctx context.Context, argv []string) ([]byte, error) {
			calls++
			if calls == 1 {
				return nil, errors.New("connection refused")
			}
			return []byte("usage"), nil
		})

		output, err := adapter.RawOutput(ctx, "abaqus")
		require.NoError(t, err)
		assert.Equal(t, []byte("usage"), output)
	})

	t.Run("every server down", func(t *testing.T) {
		adapter, err := New(TypeFlexLM, testServers(), testPaths)
		require.NoError(t, err)

		adapter.SetRunner(func(ctx context.Context, argv []string) ([]byte, error) {
			return nil, errors.New("connection refused")
		})

		_, err = adapter.RawOutput(ctx, "abaqus")
		assert.ErrorIs(t, err, ErrNoServerAvailable)
	})
}

func TestAdapter_ReportItem(t *testing.T) {
	ctx := context.Background()

	t.Run("flexlm counts for the requested feature", func(t *testing.T) {
		adapter, err := New(TypeFlexLM, testServers(), testPaths)
		require.NoError(t, err)

		adapter.SetRunner(func(ctx context.Context, argv []string) ([]byte, error) {
			return []byte("Users of abaqus:  (Total of 50 licenses issued;  Total of 7 licenses in use)"), nil
		})

		item, err := adapter.ReportItem(ctx, "abaqus.standard")
		require.NoError(t, err)
		assert.Equal(t, models.ReportItem{ProductFeature: "abaqus.standard", Used: 7, Total: 50}, item)
	})

	t.Run("rlm counts come from the feature map", func(t *testing.T) {
		adapter, err := New(TypeRLM, testServers(), testPaths)
		require.NoError(t, err)

		adapter.SetRunner(func(ctx context.Context, argv []string) ([]byte, error) {
			return []byte("converge_super v3.0\n    count: 1000, # reservations: 0, inuse: 93, exp: 31-jan-2026\n"), nil
		})

		item, err := adapter.ReportItem(ctx, "converge.converge_super")
		require.NoError(t, err)
		assert.Equal(t, 93, item.Used)
		assert.Equal(t, 1000, item.Total)
	})

	t.Run("feature missing from the output", func(t *testing.T) {
		adapter, err := New(TypeRLM, testServers(), testPaths)
		require.NoError(t, err)

		adapter.SetRunner(func(ctx context.Context, argv []string) ([]byte, error) {
			return []byte("converge_gui v3.0\n    count: 45, # reservations: 0, inuse: 0, exp: 31-jan-2026\n"), nil
		})

		_, err = adapter.ReportItem(ctx, "converge.converge_super")
		assert.ErrorIs(t, err, ErrBadServerOutput)
	})

	t.Run("malformed product_feature", func(t *testing.T) {
		adapter, err := New(TypeFlexLM, testServers(), testPaths)
		require.NoError(t, err)

		_, err = adapter.ReportItem(ctx, "abaqus")
		require.Error(t, err)
	})
}
