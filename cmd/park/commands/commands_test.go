package commands_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/park/cmd/park/commands"
	"go.trai.ch/park/internal/adapters/memcache"
	"go.trai.ch/park/internal/app"
	"go.trai.ch/park/internal/build"
	"go.trai.ch/park/internal/core/domain"
	"go.trai.ch/park/internal/core/ports/mocks"
	"go.trai.ch/park/internal/engine/launch"
	"go.trai.ch/park/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

func newCLI(t *testing.T) (*commands.CLI, *mocks.MockCatalog, *mocks.MockResolverGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)

	catalog := mocks.NewMockCatalog(ctrl)
	gateway := mocks.NewMockResolverGateway(ctrl)
	runner := mocks.NewMockRunner(ctrl)

	sink := mocks.NewMockEventSink(ctrl)
	sink.EXPECT().ResolutionChanged(gomock.Any()).AnyTimes()
	sink.EXPECT().LaunchChanged(gomock.Any()).AnyTimes()

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	sched := scheduler.New(gateway, memcache.New(0), sink, logger, scheduler.Options{Parallelism: 2})
	launcher := launch.NewManager(runner, sink, logger, []string{"PATH"})

	components := &app.Components{
		App:      app.New(catalog, sched, launcher, logger),
		Logger:   logger,
		Settings: domain.DefaultSettings(),
	}
	return commands.New(components), catalog, gateway
}

func cliProfile() *domain.Profile {
	return &domain.Profile{
		Name:     domain.NewInternedString("film"),
		Requests: []string{"core_pipeline-2"},
		Applications: map[string]domain.Application{
			"maya": {
				Name:    domain.NewInternedString("maya"),
				Label:   "Autodesk Maya",
				Command: []string{"maya"},
			},
		},
	}
}

func TestProfilesCommand(t *testing.T) {
	cli, catalog, _ := newCLI(t)
	catalog.EXPECT().Profiles().Return([]domain.Profile{*cliProfile()}, nil)

	var out bytes.Buffer
	cli.SetOut(&out)
	cli.SetArgs([]string{"profiles"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "film")
	assert.Contains(t, out.String(), "1 applications")
}

func TestAppsCommand(t *testing.T) {
	cli, catalog, _ := newCLI(t)
	catalog.EXPECT().Profile("film").Return(cliProfile(), nil)

	var out bytes.Buffer
	cli.SetOut(&out)
	cli.SetArgs([]string{"apps", "film"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "maya")
	assert.Contains(t, out.String(), "Autodesk Maya")
}

func TestAppsCommand_UnknownProfile(t *testing.T) {
	cli, catalog, _ := newCLI(t)
	catalog.EXPECT().Profile("nope").Return(nil, domain.ErrProfileNotFound)

	cli.SetOut(&bytes.Buffer{})
	cli.SetArgs([]string{"apps", "nope"})

	err := cli.Execute(context.Background())
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestResolveCommand(t *testing.T) {
	cli, catalog, gateway := newCLI(t)
	catalog.EXPECT().Profile("film").Return(cliProfile(), nil)

	gateway.EXPECT().Resolve(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key domain.RequestKey) (*domain.ResolvedEnvironment, error) {
			return &domain.ResolvedEnvironment{
				Key: key,
				Packages: []domain.ResolvedPackage{{
					Name:        domain.NewInternedString("maya"),
					Version:     domain.NewInternedString("2023.3"),
					InstallPath: "/packages/maya/2023.3",
				}},
				EnvVars:    map[string]string{"MAYA_VERSION": "2023.3"},
				ResolvedAt: time.Now(),
			}, nil
		})

	var out bytes.Buffer
	cli.SetOut(&out)
	cli.SetArgs([]string{"resolve", "film", "maya", "--env"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "maya")
	assert.Contains(t, out.String(), "2023.3")
	assert.Contains(t, out.String(), "MAYA_VERSION=2023.3")
}

func TestResolveCommand_Conflict(t *testing.T) {
	cli, catalog, gateway := newCLI(t)
	catalog.EXPECT().Profile("film").Return(cliProfile(), nil)
	gateway.EXPECT().Resolve(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrConflict)

	cli.SetOut(&bytes.Buffer{})
	cli.SetArgs([]string{"resolve", "film", "maya"})

	err := cli.Execute(context.Background())
	require.Error(t, err)

	var failure *domain.Failure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, domain.KindConflict, failure.Kind)
}

func TestVersionCommand(t *testing.T) {
	cli, _, _ := newCLI(t)

	var out bytes.Buffer
	cli.SetOut(&out)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), build.Version)
}

func TestUnknownCommand(t *testing.T) {
	cli, _, _ := newCLI(t)
	cli.SetOut(&bytes.Buffer{})
	cli.SetArgs([]string{"frobnicate"})

	assert.Error(t, cli.Execute(context.Background()))
}
