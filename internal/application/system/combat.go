package system

import (
	"github.com/younwookim/bootleg/internal/domain/entity"
	"github.com/younwookim/bootleg/internal/infrastructure/config"
)

// CombatSystem handles the melee attack, enemy replacement and enemy
// contact damage
type CombatSystem struct {
	config  config.CombatConfig
	spawner *Spawner
	enemies []*entity.Enemy

	lastAttack  int64 // ms
	hasAttacked bool

	// Event callbacks
	OnEnemyKilled func(killed, replacement *entity.Enemy)
	OnPlayerHit   func(enemy *entity.Enemy, damage int)
}

// NewCombatSystem creates a new combat system with no enemies
func NewCombatSystem(cfg config.CombatConfig, spawner *Spawner) *CombatSystem {
	return &CombatSystem{
		config:  cfg,
		spawner: spawner,
		enemies: make([]*entity.Enemy, 0, 8),
	}
}

// SpawnEnemy spawns one enemy on a random platform
func (s *CombatSystem) SpawnEnemy() *entity.Enemy {
	enemy := s.spawner.Spawn()
	s.enemies = append(s.enemies, enemy)
	return enemy
}

// AddEnemy places an enemy at a fixed position and returns it
func (s *CombatSystem) AddEnemy(x, y int) *entity.Enemy {
	enemy := s.spawner.Place(x, y)
	s.enemies = append(s.enemies, enemy)
	return enemy
}

// GetEnemies returns the live enemies
func (s *CombatSystem) GetEnemies() []*entity.Enemy {
	return s.enemies
}

// CanAttack returns true if the cooldown has elapsed at time now (ms).
// The first attack of a session is always available.
func (s *CombatSystem) CanAttack(now int64) bool {
	return !s.hasAttacked || now-s.lastAttack > s.config.AttackCooldownMs
}

// LastAttack returns the time of the last attack and whether one happened
func (s *CombatSystem) LastAttack() (int64, bool) {
	return s.lastAttack, s.hasAttacked
}

// AttackHitbox returns the strike area adjacent to the player's facing side
func (s *CombatSystem) AttackHitbox(player *entity.Player) entity.Rect {
	w := s.config.HitboxWidth
	if player.FacingRight() {
		return entity.NewRect(player.Right(), player.Y, w, player.H)
	}
	return entity.NewRect(player.X-w, player.Y, w, player.H)
}

// Attack resolves an attack request at time now (ms). It returns the
// hitbox and true when a swing happened this tick; otherwise no hitbox.
//
// Hit testing runs over the enemies alive when the swing starts. Hit
// enemies are removed afterwards and each is replaced by exactly one new
// enemy, so replacements can never be struck by the same swing.
func (s *CombatSystem) Attack(player *entity.Player, requested bool, now int64) (entity.Rect, bool) {
	if !requested || !s.CanAttack(now) {
		return entity.Rect{}, false
	}

	hitbox := s.AttackHitbox(player)
	s.lastAttack = now
	s.hasAttacked = true

	var hits []entity.EntityID
	for _, enemy := range s.enemies {
		if hitbox.Intersects(enemy.Rect) {
			hits = append(hits, enemy.ID)
		}
	}

	for _, id := range hits {
		killed := s.remove(id)
		if killed == nil {
			continue
		}
		replacement := s.SpawnEnemy()
		if s.OnEnemyKilled != nil {
			s.OnEnemyKilled(killed, replacement)
		}
	}

	return hitbox, true
}

// remove deletes the enemy with the given id and returns it
func (s *CombatSystem) remove(id entity.EntityID) *entity.Enemy {
	for i, enemy := range s.enemies {
		if enemy.ID == id {
			s.enemies = append(s.enemies[:i], s.enemies[i+1:]...)
			return enemy
		}
	}
	return nil
}

// ResolveContact damages the player once for every enemy it overlaps and
// knocks it away from each one. There is no invulnerability window:
// continued overlap costs health every tick. Returns the damage applied.
func (s *CombatSystem) ResolveContact(player *entity.Player) int {
	total := 0
	for _, enemy := range s.enemies {
		if !player.Intersects(enemy.Rect) {
			continue
		}

		damage := player.TakeDamage(s.config.ContactDamage)
		total += damage

		if player.X < enemy.X {
			player.X -= s.config.Knockback
		} else {
			player.X += s.config.Knockback
		}

		if s.OnPlayerHit != nil {
			s.OnPlayerHit(enemy, damage)
		}
	}
	return total
}
