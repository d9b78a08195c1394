package system

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/younwookim/bootleg/internal/domain/entity"
)

// ErrNoSpawnPlatform is returned when no platform can hold an enemy
var ErrNoSpawnPlatform = errors.New("no platform can hold an enemy")

// Spawner places enemies on top of randomly chosen platforms
type Spawner struct {
	stage  *entity.Stage
	rng    *rand.Rand
	width  int
	height int
	nextID entity.EntityID
}

// NewSpawner creates a spawner for enemies of the given size.
// Every platform must be at least as wide as an enemy.
func NewSpawner(stage *entity.Stage, rng *rand.Rand, width, height int) (*Spawner, error) {
	if len(stage.Platforms) == 0 {
		return nil, ErrNoSpawnPlatform
	}
	if narrowest := stage.NarrowestPlatform(); narrowest < width {
		return nil, fmt.Errorf("%w: narrowest platform is %d px, enemy is %d px", ErrNoSpawnPlatform, narrowest, width)
	}

	return &Spawner{
		stage:  stage,
		rng:    rng,
		width:  width,
		height: height,
		nextID: 1, // 0 is "nil"
	}, nil
}

// Spawn creates an enemy resting on a uniformly chosen platform, at an x
// uniformly chosen so the enemy fits within the platform's width.
func (s *Spawner) Spawn() *entity.Enemy {
	platform := s.stage.Platforms[s.rng.Intn(len(s.stage.Platforms))]
	x := platform.X + s.rng.Intn(platform.W-s.width+1)
	r := entity.OnTopOf(platform, x, s.width, s.height)

	return entity.NewEnemy(s.takeID(), r.X, r.Y, r.W, r.H)
}

// Place creates an enemy at a fixed position. It shares the id sequence
// with Spawn.
func (s *Spawner) Place(x, y int) *entity.Enemy {
	return entity.NewEnemy(s.takeID(), x, y, s.width, s.height)
}

func (s *Spawner) takeID() entity.EntityID {
	id := s.nextID
	s.nextID++
	return id
}
