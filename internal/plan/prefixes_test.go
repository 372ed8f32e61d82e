package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rmsexport/internal/jobconfig"
)

func TestBuildPrefixes(t *testing.T) {
	tests := []struct {
		name string
		out  jobconfig.OutputSection
		want Prefixes
	}{
		{
			name: "both phases, no prefix",
			out:  jobconfig.OutputSection{Prefix: "", UseGas: true, UseOil: true},
			want: Prefixes{"Gas_", "Oil_"},
		},
		{
			name: "both phases, user prefix",
			out:  jobconfig.OutputSection{Prefix: "X", UseGas: true, UseOil: true},
			want: Prefixes{"X_Gas_", "X_Oil_"},
		},
		{
			name: "oil only",
			out:  jobconfig.OutputSection{Prefix: "hc", UseOil: true},
			want: Prefixes{"hc_Oil_"},
		},
		{
			name: "gas only",
			out:  jobconfig.OutputSection{UseGas: true},
			want: Prefixes{"Gas_"},
		},
		{
			name: "no phases",
			out:  jobconfig.OutputSection{Prefix: "X"},
			want: Prefixes{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildPrefixes(tt.out))
		})
	}
}
