package app_test

import (
	"bytes"
	"context"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/piff/internal/app"
	"go.trai.ch/piff/internal/core/domain"
	"go.trai.ch/piff/internal/core/ports"
	"go.trai.ch/piff/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader     *mocks.MockConfigLoader
	resolver   *mocks.MockPathResolver
	factory    *mocks.MockTranspilerFactory
	transpiler *mocks.MockTranspiler
	reporter   *mocks.MockErrorReporter
	watcher    *mocks.MockWatcher
	logger     *mocks.MockLogger
	app        *app.App
	dir        string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		loader:     mocks.NewMockConfigLoader(ctrl),
		resolver:   mocks.NewMockPathResolver(ctrl),
		factory:    mocks.NewMockTranspilerFactory(ctrl),
		transpiler: mocks.NewMockTranspiler(ctrl),
		reporter:   mocks.NewMockErrorReporter(ctrl),
		watcher:    mocks.NewMockWatcher(ctrl),
		logger:     mocks.NewMockLogger(ctrl),
		dir:        t.TempDir(),
	}
	f.app = app.New(f.loader, f.resolver, f.factory, f.reporter, f.watcher, f.logger).
		WithWorkDir(f.dir)
	return f
}

// expectSetup registers the settings and transpiler lookups every run performs.
func (f *fixture) expectSetup() {
	settings := domain.DefaultSettings()
	f.loader.EXPECT().Load(f.dir).Return(settings, nil)
	f.factory.EXPECT().NewTranspiler(settings).Return(f.transpiler, nil)
}

func (f *fixture) write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(f.dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
	return path
}

func TestApp_Run_Compile(t *testing.T) {
	f := newFixture(t)
	f.expectSetup()

	src := f.write(t, "foo.piff", "echo 'hi'")
	out := filepath.Join(f.dir, "foo.php")

	f.resolver.EXPECT().Resolve([]string{f.dir}).Return([]string{src}, nil)
	f.transpiler.EXPECT().Transpile(gomock.Any(), "echo 'hi'").Return("echo 'hi';", nil)
	gomock.InOrder(
		f.logger.EXPECT().Info("compiling "+src),
		f.logger.EXPECT().Info("updated "+out),
	)

	err := f.app.Run(context.Background(), domain.Options{Mode: domain.ModeCompile, Patterns: []string{f.dir}})
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "echo 'hi';", string(got))
}

func TestApp_Run_CompileContinuesAfterSyntaxError(t *testing.T) {
	f := newFixture(t)
	f.expectSetup()

	bad := f.write(t, "bad.piff", "broken")
	good := f.write(t, "good.piff", "fine")
	syntaxErr := domain.NewSyntaxError("unexpected token", 1, 1)

	f.resolver.EXPECT().Resolve(gomock.Any()).Return([]string{bad, good}, nil)
	f.transpiler.EXPECT().Transpile(gomock.Any(), "broken").Return("", syntaxErr)
	f.transpiler.EXPECT().Transpile(gomock.Any(), "fine").Return("ok", nil)
	f.logger.EXPECT().Error(gomock.Any())
	f.reporter.EXPECT().Report(bad, syntaxErr).Return(nil)
	f.logger.EXPECT().Info(gomock.Any()).Times(3)

	err := f.app.Run(context.Background(), domain.Options{Mode: domain.ModeCompile, Patterns: []string{f.dir}})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(f.dir, "good.php"))
	assert.NoFileExists(t, filepath.Join(f.dir, "bad.php"))
}

func TestApp_Run_ForceRecompilesFreshOutput(t *testing.T) {
	f := newFixture(t)
	f.expectSetup()

	src := f.write(t, "foo.piff", "new")
	f.write(t, "foo.php", "old")

	f.resolver.EXPECT().Resolve(gomock.Any()).Return([]string{src}, nil)
	f.transpiler.EXPECT().Transpile(gomock.Any(), "new").Return("compiled", nil)
	f.logger.EXPECT().Info(gomock.Any()).Times(2)

	err := f.app.Run(context.Background(), domain.Options{Mode: domain.ModeCompile, Force: true, Patterns: []string{src}})
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(f.dir, "foo.php"))
	require.NoError(t, err)
	assert.Equal(t, "compiled", string(got))
}

func TestApp_Run_Format(t *testing.T) {
	f := newFixture(t)
	f.expectSetup()

	path := f.write(t, "a.piff", "x  =  1")

	f.resolver.EXPECT().Resolve([]string{path}).Return([]string{path}, nil)
	f.transpiler.EXPECT().Format(gomock.Any(), "x  =  1").Return("x = 1\n", nil)
	gomock.InOrder(
		f.logger.EXPECT().Info("formatting "+path),
		f.logger.EXPECT().Info("formatted "+path),
	)

	err := f.app.Run(context.Background(), domain.Options{Mode: domain.ModeFormat, Patterns: []string{path}})
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x = 1\n", string(got))
}

func TestApp_Run_Stdin(t *testing.T) {
	f := newFixture(t)
	f.expectSetup()

	var stdout bytes.Buffer
	f.app.WithIO(strings.NewReader("echo 'hi'"), &stdout)
	f.transpiler.EXPECT().Transpile(gomock.Any(), "echo 'hi'").Return("echo 'hi';\n", nil)

	require.NoError(t, f.app.Run(context.Background(), domain.Options{Mode: domain.ModeStdin}))
	assert.Equal(t, "<?php\necho 'hi';\n?>\n", stdout.String())
}

func TestApp_Run_StdinSyntaxErrorIsFatal(t *testing.T) {
	f := newFixture(t)
	f.expectSetup()

	var stdout bytes.Buffer
	f.app.WithIO(strings.NewReader("bad"), &stdout)
	f.transpiler.EXPECT().Transpile(gomock.Any(), "bad").Return("", domain.NewSyntaxError("oops", 1, 2))

	err := f.app.Run(context.Background(), domain.Options{Mode: domain.ModeStdin})

	var syntaxErr *domain.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Empty(t, stdout.String())
}

func TestApp_Run_Watch(t *testing.T) {
	f := newFixture(t)
	f.expectSetup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pattern := filepath.Join(f.dir, "**", "*.piff")
	f.resolver.EXPECT().Resolve([]string{f.dir}).Return(nil, nil)
	f.resolver.EXPECT().Patterns([]string{f.dir}).Return([]string{pattern}, nil)

	gomock.InOrder(
		f.watcher.EXPECT().Start(gomock.Any(), []string{f.dir}, domain.DefaultIgnoredDirs()).Return(nil),
		f.watcher.EXPECT().Events().Return(iter.Seq[ports.WatchEvent](func(func(ports.WatchEvent) bool) {})),
		f.watcher.EXPECT().Stop().Return(nil),
	)
	f.logger.EXPECT().Info("watching " + pattern)

	err := f.app.Run(ctx, domain.Options{Mode: domain.ModeWatch, Patterns: []string{f.dir}})
	require.NoError(t, err)
}

func TestApp_Run_ConfigError(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(f.dir).Return(domain.Settings{}, domain.ErrInvalidDebounce)

	err := f.app.Run(context.Background(), domain.Options{Patterns: []string{"a.piff"}})
	require.ErrorContains(t, err, "failed to load configuration")
	require.ErrorContains(t, err, domain.ErrInvalidDebounce.Error())
}

func TestApp_Run_TranspilerError(t *testing.T) {
	f := newFixture(t)
	settings := domain.DefaultSettings()
	f.loader.EXPECT().Load(f.dir).Return(settings, nil)
	f.factory.EXPECT().NewTranspiler(settings).Return(nil, domain.ErrEmptyCommand)

	err := f.app.Run(context.Background(), domain.Options{Patterns: []string{"a.piff"}})
	require.ErrorContains(t, err, domain.ErrEmptyCommand.Error())
}

func TestApp_Run_ResolutionErrorAbortsRun(t *testing.T) {
	f := newFixture(t)
	f.expectSetup()

	missing := filepath.Join(f.dir, "missing.piff")
	f.resolver.EXPECT().Resolve([]string{missing}).
		Return(nil, zerr.With(domain.ErrPatternNotFound, "path", missing))

	err := f.app.Run(context.Background(), domain.Options{Patterns: []string{missing}})
	require.ErrorContains(t, err, domain.ErrPatternNotFound.Error())
}
