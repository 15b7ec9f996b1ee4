package kolam

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Generate_DiamondScenario(t *testing.T) {
	svc := NewService(NewRenderer(WithImageSize(256)))

	res, err := svc.Generate(context.Background(), Request{
		GridSize:       15,
		Family:         FamilyDiamond,
		ComplexityBias: 0.35,
		Theme:          ThemeLight,
		OneStroke:      false,
		Decorate:       true,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(res.Image, "data:image/png;base64,"))
	assert.Greater(t, len(res.Image), len("data:image/png;base64,"))
	assert.GreaterOrEqual(t, res.PathCount, 2)
	assert.LessOrEqual(t, res.PathCount, 6)
	assert.False(t, res.IsOneStroke)
	assert.Equal(t, FamilyDiamond, res.Family)
	assert.Equal(t, SampleCount(15)+1, res.Points)
	assert.GreaterOrEqual(t, res.ElapsedSeconds, 0.0)
}

func TestService_Generate_OneStroke(t *testing.T) {
	svc := NewService(NewRenderer(
		WithImageSize(64),
		WithPathCounter(NewSeededPathCounter(1, 3)),
	))

	res, err := svc.Generate(context.Background(), Request{
		GridSize:  5,
		Family:    FamilyFish,
		Theme:     ThemeDark,
		OneStroke: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.PathCount)
	assert.True(t, res.IsOneStroke)
}

func TestService_Generate_UnknownFamilyReportsDiamond(t *testing.T) {
	svc := NewService(NewRenderer(WithImageSize(64)))

	res, err := svc.Generate(context.Background(), Request{GridSize: 5, Family: "spiral", ComplexityBias: 0.5})
	require.NoError(t, err)
	assert.Equal(t, FamilyDiamond, res.Family)
}

func TestService_Generate_ElapsedUsesClock(t *testing.T) {
	svc := NewService(NewRenderer(WithImageSize(32)))
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	svc.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls-1) * 1500 * time.Millisecond)
	}

	res, err := svc.Generate(context.Background(), Request{GridSize: 5, Family: FamilyOrganic})
	require.NoError(t, err)
	assert.InDelta(t, 1.5, res.ElapsedSeconds, 1e-9)
}

func TestService_Generate_Failures(t *testing.T) {
	surfaces := newCountingSurfaces()
	svc := NewService(NewRenderer(WithImageSize(64), WithSurfaces(surfaces)))

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Generate(canceled, Request{GridSize: 5, Family: FamilyDiamond})
	require.Error(t, err)
	assert.True(t, IsKind(err, KindCanceled))

	_, err = svc.Generate(context.Background(), Request{GridSize: 5, Family: FamilyDiamond, Color: "not-a-color"})
	require.Error(t, err)
	assert.True(t, IsKind(err, KindRender))
	assert.ErrorIs(t, err, ErrInvalidColor)

	assert.Zero(t, surfaces.outstanding())
}
