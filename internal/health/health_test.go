package health

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProber struct{ result ProbeResult }

func (f *fakeProber) Probe(_ context.Context) ProbeResult { return f.result }

func TestCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		probers map[string]Prober
		wantOK  map[string]bool
		allOK   bool
	}{
		{
			name: "all healthy",
			probers: map[string]Prober{
				"postgres": &fakeProber{result: ProbeResult{Name: "postgres", OK: true}},
				"redis":    &fakeProber{result: ProbeResult{Name: "redis", OK: true}},
			},
			wantOK: map[string]bool{"postgres": true, "redis": true},
			allOK:  true,
		},
		{
			name: "one unhealthy",
			probers: map[string]Prober{
				"postgres": &fakeProber{result: ProbeResult{Name: "postgres", OK: true}},
				"redis":    &fakeProber{result: ProbeResult{Name: "redis", OK: false, Error: "timeout"}},
			},
			wantOK: map[string]bool{"postgres": true, "redis": false},
			allOK:  false,
		},
		{
			name:    "no probers",
			probers: map[string]Prober{},
			wantOK:  map[string]bool{},
			allOK:   true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			results := Check(context.Background(), tc.probers)
			assert.Len(t, results, len(tc.wantOK))
			for name, wantOK := range tc.wantOK {
				probe, ok := results[name]
				require.True(t, ok, "expected result for %q", name)
				assert.Equal(t, wantOK, probe.OK)
			}
			assert.Equal(t, tc.allOK, AllOK(results))
		})
	}
}
