package party

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/playerbox/overlay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRole(t *testing.T) {
	assert.Equal(t, overlay.Tank, ResolveRole(RoleCodeTank))
	assert.Equal(t, overlay.MeleeDPS, ResolveRole(RoleCodeMelee))
	assert.Equal(t, overlay.RangedDPS, ResolveRole(RoleCodeRanged))
	assert.Equal(t, overlay.Healer, ResolveRole(RoleCodeHealer))
	assert.Equal(t, overlay.Healer, ResolveRole(0))
	assert.Equal(t, overlay.Healer, ResolveRole(-3))
	assert.Equal(t, overlay.Healer, ResolveRole(99))
}

func TestLoadScenario_Embedded(t *testing.T) {
	for _, name := range []string{"light_party", "full_party.yaml", "scenarios/light_party.yaml"} {
		t.Run(name, func(t *testing.T) {
			s, err := LoadScenario(name)
			require.NoError(t, err)

			snap := s.Snapshot()
			require.NotNil(t, snap.Viewer)
			assert.NotEmpty(t, snap.Members)
		})
	}
}

func TestLoadScenario_Unknown(t *testing.T) {
	_, err := LoadScenario("no_such_party")
	assert.ErrorIs(t, err, ErrUnknownScenario)
}

func TestLoadScenario_FromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte(`
name: custom
viewer: 9
members:
  - {id: 9, name: Me, role: 3, position: [1, 2, 3]}
  - {id: 10, name: Friend, role: 1, position: [4, 5, 6]}
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "custom", s.Name())

	snap := s.Snapshot()
	require.NotNil(t, snap.Viewer)
	assert.Equal(t, uint64(9), snap.Viewer.ID)
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, snap.Viewer.Position)
	require.Len(t, snap.Members, 2)
	assert.Equal(t, RoleCodeTank, snap.Members[1].RoleCode)
}

func TestParseScenario_Invalid(t *testing.T) {
	_, err := ParseScenario([]byte("members: ["))
	assert.Error(t, err)

	_, err = ParseScenario([]byte("name: empty\n"))
	assert.ErrorIs(t, err, ErrNoMembers)

	_, err = ParseScenario([]byte(`
members:
  - {id: 1, position: [0, 0, 0]}
  - {id: 1, position: [1, 0, 0]}
`))
	assert.ErrorIs(t, err, ErrDuplicateMember)
}

func TestScenario_NoViewer(t *testing.T) {
	s, err := NewScenario(ScenarioSpec{
		Viewer:  42,
		Members: []MemberSpec{{ID: 1, Role: RoleCodeTank}},
	})
	require.NoError(t, err)
	assert.Nil(t, s.Snapshot().Viewer)
}

func TestScenario_Advance(t *testing.T) {
	s, err := NewScenario(ScenarioSpec{
		Viewer: 1,
		Members: []MemberSpec{
			{ID: 1, Position: [3]float64{0, 0, 0}},
			{ID: 2, Position: [3]float64{10, 1, 10}, Orbit: &OrbitSpec{Radius: 2, Speed: math.Pi}},
		},
	})
	require.NoError(t, err)

	start := s.Snapshot().Members[1].Position
	assert.InDelta(t, 12, start.X(), 1e-9)
	assert.InDelta(t, 10, start.Z(), 1e-9)

	s.Advance(0.5)
	moved := s.Snapshot().Members[1].Position
	assert.InDelta(t, 10, moved.X(), 1e-9)
	assert.InDelta(t, 1, moved.Y(), 1e-9)
	assert.InDelta(t, 12, moved.Z(), 1e-9)

	assert.Equal(t, mgl64.Vec3{}, s.Snapshot().Members[0].Position, "static members stay put")
}

func TestSnapshot_CloneIsIndependent(t *testing.T) {
	s, err := LoadScenario("light_party")
	require.NoError(t, err)

	a := s.Snapshot()
	a.Members[0].Position = mgl64.Vec3{99, 99, 99}
	a.Viewer.ID = 1234

	b := s.Snapshot()
	assert.NotEqual(t, mgl64.Vec3{99, 99, 99}, b.Members[0].Position)
	assert.NotEqual(t, uint64(1234), b.Viewer.ID)
}

func TestOpen_Scenario(t *testing.T) {
	src, scenario, closeFn, err := Open(context.Background(), "full_party", "", nil)
	require.NoError(t, err)
	defer closeFn()

	require.NotNil(t, scenario)
	assert.Equal(t, "full_party", scenario.Name())
	assert.Len(t, src.Snapshot().Members, 8)
}

func TestOpen_UnknownScenario(t *testing.T) {
	_, _, _, err := Open(context.Background(), "nope", "", nil)
	assert.ErrorIs(t, err, ErrUnknownScenario)
}
