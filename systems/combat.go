package systems

import (
	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerContacts resolves the player's new contacts with enemies and
// exits.
func UpdatePlayerContacts(ecs *ecs.ECS) {
	var removals []*donburi.Entry

	tags.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		contacts := components.Contacts.Get(playerEntry)
		for _, c := range contacts.Began {
			other := liveEntry(ecs, c.Entity)
			if other == nil {
				continue
			}

			switch {
			case c.Object.HasTags(tags.ResolvExit):
				RaiseSignal(ecs, components.SignalNextLevel)
			case c.Object.HasTags(tags.ResolvEnemy):
				consumed, dead := handleEnemyContact(ecs, playerEntry, other)
				if consumed {
					removals = append(removals, other)
				}
				if dead {
					removals = append(removals, playerEntry)
					return
				}
			}
		}
	})

	removeAll(ecs, removals)
}

// handleEnemyContact swallows the enemy if the player is inhaling it,
// otherwise the player takes a hit. A hit at zero health kills the player
// and restarts the level.
func handleEnemyContact(e *ecs.ECS, playerEntry, enemyEntry *donburi.Entry) (consumed, dead bool) {
	player := components.Player.Get(playerEntry)
	enemy := components.Enemy.Get(enemyEntry)

	if player.IsInhaling && enemy.IsInhalable {
		player.IsInhaling = false
		player.IsFull = true
		setInhaleEffectVisible(e, player, false)
		PlaySFX(e, cfg.SoundSwallow)
		return true, false
	}

	health := components.Health.Get(playerEntry)
	if health.Current <= 0 {
		RaiseSignal(e, components.SignalRestart)
		return false, true
	}

	health.Current--
	StartFlicker(playerEntry)
	PlaySFX(e, cfg.SoundHurt)
	return false, false
}

// UpdateEnemyContacts tracks whether each enemy is inside the inhale zone
// and removes enemies hit by a star together with the star.
func UpdateEnemyContacts(ecs *ecs.ECS) {
	var removals []*donburi.Entry

	tags.Enemy.Each(ecs.World, func(enemyEntry *donburi.Entry) {
		enemy := components.Enemy.Get(enemyEntry)
		contacts := components.Contacts.Get(enemyEntry)

		for _, c := range contacts.Began {
			switch {
			case c.Object.HasTags(tags.ResolvInhaleZone):
				enemy.IsInhalable = true
			case c.Object.HasTags(tags.ResolvProjectile):
				if star := liveEntry(ecs, c.Entity); star != nil {
					removals = append(removals, enemyEntry, star)
					PlaySFX(ecs, cfg.SoundPop)
				}
			}
		}

		for _, c := range contacts.Ended {
			if c.Object.HasTags(tags.ResolvInhaleZone) {
				enemy.IsInhalable = false
			}
		}
	})

	removeAll(ecs, removals)
}
