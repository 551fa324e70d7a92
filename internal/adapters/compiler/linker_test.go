package compiler_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/mason/internal/adapters/compiler"
	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

var clangTC = domain.Toolchain{
	Family:       domain.FamilyClang,
	Version:      "17.0.1",
	CompilerPath: "/usr/bin/clang",
}

func TestLinkerSelector_PrefersLLD(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	runner.EXPECT().Run(gomock.Any(), domain.Command{
		Path: "/usr/bin/clang",
		Args: []string{"-fuse-ld=lld", "-Wl,--version"},
	}).Return(domain.CommandResult{Stdout: "LLD 17.0.1 (compatible with GNU linkers)"}, nil)

	s := compiler.NewLinkerSelector(runner, logger)
	flag, ok := s.Select(context.Background(), clangTC)
	assert.True(t, ok)
	assert.Equal(t, "-fuse-ld=lld", flag)
}

func TestLinkerSelector_FallsBackToGold(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	runner.EXPECT().Run(gomock.Any(), domain.Command{
		Path: "/usr/bin/clang",
		Args: []string{"-fuse-ld=lld", "-Wl,--version"},
	}).Return(domain.CommandResult{ExitCode: 1, Stderr: "unable to find ld.lld"}, nil)
	runner.EXPECT().Run(gomock.Any(), domain.Command{
		Path: "/usr/bin/clang",
		Args: []string{"-fuse-ld=gold", "-Wl,--version"},
	}).Return(domain.CommandResult{Stdout: "GNU gold (GNU Binutils 2.42) 1.16"}, nil)

	s := compiler.NewLinkerSelector(runner, logger)
	flag, ok := s.Select(context.Background(), clangTC)
	assert.True(t, ok)
	assert.Equal(t, "-fuse-ld=gold", flag)
}

func TestLinkerSelector_NoAlternativeWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).
		Return(domain.CommandResult{ExitCode: 1}, nil).Times(2)
	logger.EXPECT().Warn(gomock.Any())

	s := compiler.NewLinkerSelector(runner, logger)
	flag, ok := s.Select(context.Background(), clangTC)
	assert.False(t, ok)
	assert.Empty(t, flag)
}

func TestLinkerSelector_UnsupportedFamilySkips(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	s := compiler.NewLinkerSelector(runner, logger)
	_, ok := s.Select(context.Background(), domain.Toolchain{Family: domain.FamilyUnsupported})
	assert.False(t, ok)
}

func TestLinkerSelector_MarkerMismatchRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	// Zero exit but wrong banner: the default linker answered, not lld.
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).
		Return(domain.CommandResult{Stdout: "GNU ld (GNU Binutils) 2.42"}, nil).Times(2)
	logger.EXPECT().Warn(gomock.Any())

	s := compiler.NewLinkerSelector(runner, logger)
	_, ok := s.Select(context.Background(), clangTC)
	assert.False(t, ok)
}
