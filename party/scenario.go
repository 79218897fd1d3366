package party

import (
	"errors"
	"fmt"
	"io/fs"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/playerbox/overlay"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownScenario = errors.New("party: unknown scenario")
	ErrNoMembers       = errors.New("party: scenario has no members")
	ErrDuplicateMember = errors.New("party: duplicate member id")
)

// ScenarioSpec is the on-disk description of a simulated party.
type ScenarioSpec struct {
	Name    string       `yaml:"name"`
	Viewer  uint64       `yaml:"viewer"`
	Members []MemberSpec `yaml:"members"`
}

type MemberSpec struct {
	ID       uint64     `yaml:"id"`
	Name     string     `yaml:"name"`
	Role     int        `yaml:"role"`
	Position [3]float64 `yaml:"position"`
	Orbit    *OrbitSpec `yaml:"orbit,omitempty"`
}

// OrbitSpec moves a member in a circle around its position on the ground
// plane. Speed is in radians per second.
type OrbitSpec struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
	Phase  float64 `yaml:"phase"`
}

// Scenario is a Source that plays back a ScenarioSpec.
type Scenario struct {
	spec    ScenarioSpec
	elapsed float64
	members []overlay.Entity
}

func LoadScenario(name string) (*Scenario, error) {
	data, err := LoadScenarioData(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownScenario, name)
		}
		return nil, fmt.Errorf("party: load %s: %w", name, err)
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var spec ScenarioSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("party: unmarshal scenario: %w", err)
	}
	return NewScenario(spec)
}

func NewScenario(spec ScenarioSpec) (*Scenario, error) {
	if len(spec.Members) == 0 {
		return nil, ErrNoMembers
	}
	seen := make(map[uint64]struct{}, len(spec.Members))
	for _, m := range spec.Members {
		if _, ok := seen[m.ID]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateMember, m.ID)
		}
		seen[m.ID] = struct{}{}
	}
	s := &Scenario{
		spec:    spec,
		members: make([]overlay.Entity, len(spec.Members)),
	}
	s.place()
	return s, nil
}

func (s *Scenario) Name() string {
	return s.spec.Name
}

// Advance moves orbiting members forward by dt seconds.
func (s *Scenario) Advance(dt float64) {
	if s == nil || dt <= 0 {
		return
	}
	s.elapsed += dt
	s.place()
}

func (s *Scenario) place() {
	for i, m := range s.spec.Members {
		pos := mgl64.Vec3(m.Position)
		if o := m.Orbit; o != nil && o.Radius != 0 {
			theta := o.Phase + o.Speed*s.elapsed
			pos = pos.Add(mgl64.Vec3{o.Radius * math.Cos(theta), 0, o.Radius * math.Sin(theta)})
		}
		s.members[i] = overlay.Entity{
			ID:       m.ID,
			Name:     m.Name,
			Position: pos,
			RoleCode: m.Role,
		}
	}
}

// Snapshot returns the current party. The viewer is nil when the scenario's
// viewer id does not match any member.
func (s *Scenario) Snapshot() Snapshot {
	snap := Snapshot{Members: s.members}
	for _, m := range s.members {
		if m.ID == s.spec.Viewer {
			snap.Viewer = &overlay.Viewer{ID: m.ID, Position: m.Position}
			break
		}
	}
	return snap.Clone()
}
