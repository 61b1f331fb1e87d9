package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/wui/internal/application/port"
	"github.com/bnema/wui/internal/application/port/mocks"
	"github.com/bnema/wui/internal/application/usecase"
)

func TestCheckRuntimeDependencies_AllPresent(t *testing.T) {
	probe := mocks.NewMockRuntimeVersionProbe(t)
	probe.EXPECT().PkgConfigModVersion(mock.Anything, "gtk4", "").Return("4.14.2\n", nil)
	probe.EXPECT().PkgConfigModVersion(mock.Anything, "webkitgtk-6.0", "").Return("2.44.1", nil)

	out, err := usecase.NewCheckRuntimeDependenciesUseCase(probe).Execute(context.Background(), usecase.CheckRuntimeDependenciesInput{})

	require.NoError(t, err)
	assert.True(t, out.OK)
	require.Len(t, out.Checks, 2)
	assert.Equal(t, "4.14.2", out.Checks[0].Version)
	assert.True(t, out.Checks[1].MeetsRequirement)
}

func TestCheckRuntimeDependencies_TooOldAndMissing(t *testing.T) {
	probe := mocks.NewMockRuntimeVersionProbe(t)
	probe.EXPECT().PkgConfigModVersion(mock.Anything, "gtk4", "/opt/gtk").Return("4.8.0", nil)
	probe.EXPECT().PkgConfigModVersion(mock.Anything, "webkitgtk-6.0", "/opt/gtk").Return("", &port.PkgConfigError{
		Kind:    port.PkgConfigErrorKindPackageMissing,
		Package: "webkitgtk-6.0",
		Err:     port.ErrPkgConfigPackageMissing,
	})

	out, err := usecase.NewCheckRuntimeDependenciesUseCase(probe).Execute(context.Background(), usecase.CheckRuntimeDependenciesInput{Prefix: "/opt/gtk"})

	require.NoError(t, err)
	assert.False(t, out.OK)
	assert.Equal(t, "/opt/gtk", out.Prefix)

	gtk, webkit := out.Checks[0], out.Checks[1]
	assert.True(t, gtk.Installed)
	assert.False(t, gtk.MeetsRequirement)
	assert.False(t, webkit.Installed)
	assert.Contains(t, webkit.Error, "package_missing")
}

func TestCheckRuntimeDependencies_CustomMinimum(t *testing.T) {
	probe := mocks.NewMockRuntimeVersionProbe(t)
	probe.EXPECT().PkgConfigModVersion(mock.Anything, mock.Anything, "").Return("2.40", nil).Times(2)

	out, err := usecase.NewCheckRuntimeDependenciesUseCase(probe).Execute(context.Background(), usecase.CheckRuntimeDependenciesInput{
		MinGTK4Version:      "1.0",
		MinWebKitGTKVersion: "2.40",
	})

	require.NoError(t, err)
	assert.True(t, out.OK)
}
