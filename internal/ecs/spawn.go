package ecs

import (
	"github.com/younwookim/platformer/internal/domain/collision"
	"github.com/younwookim/platformer/internal/domain/vec"
)

// SpawnPlayer creates the player at the configured spawn point
func SpawnPlayer(w *World, cfg PhysicsConfig) EntityID {
	id := w.NewEntity()

	w.Position.Set(id, NewPosition(cfg.Spawn))
	w.Velocity.Set(id, Velocity{})
	w.RectBody.Set(id, RectBody{Width: cfg.PlayerWidth, Height: cfg.PlayerHeight})
	w.CollisionInfo.Set(id, CollisionInfo{})
	w.Movable.Set(id, Movable{Speed: cfg.PlayerSpeed, JumpPower: cfg.JumpPower})
	w.Animation.Set(id, Animation{SpriteX: spriteIdleX, SpriteY: spriteIdleY})
	w.Player.Set(id, Player{})

	w.PlayerID = id
	return id
}

// SpawnEnemy creates a walker heading left
func SpawnEnemy(w *World, at vec.Vec2, cfg PhysicsConfig) EntityID {
	id := w.NewEntity()

	w.Position.Set(id, NewPosition(at))
	w.Velocity.Set(id, Velocity{Vec2: vec.New(-cfg.EnemySpeed, 0)})
	w.RectBody.Set(id, RectBody{Width: cfg.EnemyWidth, Height: cfg.EnemyHeight, FlipX: true})
	w.CollisionInfo.Set(id, CollisionInfo{})
	w.Movable.Set(id, Movable{Speed: cfg.EnemySpeed})
	w.EnemyAnimation.Set(id, EnemyAnimation{SpriteX: enemyWalkFrames[0], SpriteY: enemySpriteY})
	w.Enemy.Set(id, EnemyState{})

	return id
}

// SpawnCoin creates a coin whose bounding square starts at at
func SpawnCoin(w *World, at vec.Vec2, radius float64) EntityID {
	id := w.NewEntity()

	w.Position.Set(id, NewPosition(at))
	w.CircleBody.Set(id, CircleBody{Radius: radius})
	w.Coin.Set(id, CoinState{})
	w.Collectible.Set(id, Collectible{})

	return id
}

// SpawnTileLayer creates a tile layer entity. Solid layers collide with a
// surface height of surfaceHeight pixels; others are drawn only.
func SpawnTileLayer(w *World, layerID int, solid bool, surfaceHeight int) EntityID {
	id := w.NewEntity()

	w.TileLayer.Set(id, TileLayer{ID: layerID, PixelSize: collision.TileSize})
	if solid {
		w.TileCollidable.Set(id, TileCollidable{SurfaceHeight: surfaceHeight})
	}
	return id
}

// SpawnGoalLayer creates the goal marker layer. Contact is tested with
// pixelSize as surface height.
func SpawnGoalLayer(w *World, layerID, pixelSize int) EntityID {
	id := w.NewEntity()

	w.TileLayer.Set(id, TileLayer{ID: layerID, PixelSize: pixelSize})
	w.Goal.Set(id, GoalMarker{})
	return id
}

// SpawnStage creates the stage state singleton and its initial enemies
func SpawnStage(w *World, stageID int, enemies []vec.Vec2, cfg PhysicsConfig) EntityID {
	id := w.NewEntity()

	init := make([]vec.Vec2, len(enemies))
	copy(init, enemies)

	w.StageState.Set(id, StageState{
		ID:                 stageID,
		TimeRemaining:      cfg.TimeLimit,
		Lives:              cfg.Lives,
		InitEnemyPositions: init,
	})
	w.StageID = id

	RespawnEnemies(w, cfg)
	return id
}

// RespawnEnemies destroys every enemy and re-creates them from the stage's
// recorded initial positions
func RespawnEnemies(w *World, cfg PhysicsConfig) {
	stage := w.MustStage()

	for _, id := range w.Enemy.IDs() {
		w.DestroyEntity(id)
	}
	for _, p := range stage.InitEnemyPositions {
		SpawnEnemy(w, p, cfg)
	}
}

// RespawnPlayer puts the player back at the spawn point at rest
func RespawnPlayer(w *World, cfg PhysicsConfig) {
	id := w.MustPlayer()

	mustGet(w.Position, id, "Position").Teleport(cfg.Spawn)
	mustGet(w.Velocity, id, "Velocity").Vec2 = vec.Vec2{}
	mustGet(w.CollisionInfo, id, "CollisionInfo").Contacts = collision.Contacts{}
	mustGet(w.Player, id, "Player").Iframes = 0
}

// ResetStage restores the stage to its initial state: timer, flags, lives,
// coins, player, enemies and every coin's collected flag
func ResetStage(w *World, cfg PhysicsConfig) {
	stage := w.MustStage()

	stage.TimeRemaining = cfg.TimeLimit
	stage.GameOver = false
	stage.IsGoal = false
	stage.Lives = cfg.Lives
	stage.Coins = 0

	RespawnPlayer(w, cfg)
	RespawnEnemies(w, cfg)

	for _, id := range w.Coin.IDs() {
		mustGet(w.Coin, id, "CoinState").IsCollected = false
	}
}
