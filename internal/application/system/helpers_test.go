package system

import (
	"math/rand"
	"testing"

	"github.com/younwookim/bootleg/internal/domain/entity"
	"github.com/younwookim/bootleg/internal/infrastructure/config"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func createTestPhysicsConfig() config.PhysicsConfig {
	return config.PhysicsConfig{
		Gravity:       1,
		JumpStrength:  20,
		MoveSpeed:     5,
		ClampToScreen: true,
		KillPlaneY:    800,
	}
}

func createTestCombatConfig() config.CombatConfig {
	return config.CombatConfig{
		AttackCooldownMs: 500,
		HitboxWidth:      30,
		Knockback:        20,
		ContactDamage:    1,
	}
}

// createTestStage returns the reference five-platform layout on an 800x600 screen
func createTestStage() *entity.Stage {
	return entity.NewStage("test", 800, 600, []entity.Rect{
		entity.NewRect(50, 550, 700, 50),
		entity.NewRect(200, 400, 150, 20),
		entity.NewRect(400, 300, 200, 20),
		entity.NewRect(650, 450, 100, 20),
		entity.NewRect(50, 200, 100, 20),
	})
}

func createTestPlayer() *entity.Player {
	return entity.NewPlayer(100, 500, 50, 50, 3)
}

func createTestCombat(stage *entity.Stage) *CombatSystem {
	spawner, err := NewSpawner(stage, testRNG(), 50, 50)
	if err != nil {
		panic(err)
	}
	return NewCombatSystem(createTestCombatConfig(), spawner)
}

// assertRestsOnPlatform checks that an enemy sits exactly on top of one
// of the stage's platforms and fits within its width
func assertRestsOnPlatform(t *testing.T, stage *entity.Stage, enemy *entity.Enemy) {
	t.Helper()
	for _, p := range stage.Platforms {
		if enemy.Bottom() == p.Y && enemy.X >= p.X && enemy.Right() <= p.Right() {
			return
		}
	}
	t.Errorf("enemy %d at %s does not rest on any platform", enemy.ID, enemy.Rect)
}
