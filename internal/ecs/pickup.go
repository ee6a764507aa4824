package ecs

import (
	"github.com/younwookim/platformer/internal/domain/collision"
)

// UpdateCoinCollection collects every uncollected coin the player touches.
// A collected coin is skipped until a restart clears its flag.
func UpdateCoinCollection(w *World, cfg PhysicsConfig) {
	id := w.MustPlayer()
	stage := w.MustStage()
	rect := mustGet(w.RectBody, id, "RectBody").Rect(*mustGet(w.Position, id, "Position"))

	for _, cid := range Join(w.Coin, w.Collectible, w.Position, w.CircleBody) {
		coin := mustGet(w.Coin, cid, "CoinState")
		if coin.IsCollected {
			continue
		}

		circle := mustGet(w.CircleBody, cid, "CircleBody")
		center := circle.Center(*mustGet(w.Position, cid, "Position"))
		if !collision.CircleRect(rect, center, circle.Radius, cfg.CoinMargin) {
			continue
		}

		coin.IsCollected = true
		stage.Coins++
		w.emit(EventCoinCollected, cid)
	}
}
