package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mason/internal/core/domain"
)

func TestParseBuildType(t *testing.T) {
	tests := []struct {
		input    string
		want     domain.BuildType
		wantErr  bool
		sanitize bool
	}{
		{input: "", want: domain.BuildTypeDebug, sanitize: true},
		{input: "Debug", want: domain.BuildTypeDebug, sanitize: true},
		{input: "Release", want: domain.BuildTypeRelease, sanitize: false},
		{input: "MinSizeRel", want: domain.BuildTypeMinSizeRel, sanitize: false},
		{input: "RelWithDebInfo", want: domain.BuildTypeRelWithDebInfo, sanitize: true},
		{input: "Coverage", want: domain.BuildTypeCoverage, sanitize: true},
		{input: "release", wantErr: true},
		{input: "Bogus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("input_"+tt.input, func(t *testing.T) {
			got, err := domain.ParseBuildType(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidBuildType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.sanitize, got.SanitizersActive())
		})
	}
}

func TestToolchainIdentity(t *testing.T) {
	tc := domain.Toolchain{Family: domain.FamilyClang, Version: "17.0.1"}
	assert.Equal(t, "clang-17.0.1", tc.Identity())

	assert.True(t, domain.FamilyGNU.Supported())
	assert.True(t, domain.FamilyClang.Supported())
	assert.False(t, domain.FamilyUnsupported.Supported())
}
