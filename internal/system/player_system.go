// internal/system/player_system.go
package system

import (
	"go-kokaton-musou/internal/config"
	"go-kokaton-musou/internal/entity"
	"go-kokaton-musou/internal/input"
	"go-kokaton-musou/internal/utils"
)

// PlayerSystem отвечает за заряд, автоматическую стрельбу и движение игроков.
type PlayerSystem struct {
	ecs     *entity.ECS
	spawner *Spawner
}

func NewPlayerSystem(ecs *entity.ECS, spawner *Spawner) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, spawner: spawner}
}

// HandleInput применяет нажатия и отпускания клавиши заряда, затем
// наращивает заряд или стреляет по таймеру.
func (s *PlayerSystem) HandleInput(frame input.Frame, tick int) {
	ids := s.ecs.PlayerIDs()

	for _, id := range ids {
		player := s.ecs.Players[id]
		in := frame.Player(player.Index)
		if in.Has(input.ActionChargeStart) {
			player.StartCharging()
		}
		// Отпускание без начатого заряда игнорируется.
		if in.Has(input.ActionChargeRelease) && player.Charging {
			if player.StopCharging() {
				s.spawner.SpawnBeam(id, true)
			}
		}
	}

	for _, id := range ids {
		player := s.ecs.Players[id]
		if player.Charging {
			player.ChargeTicks++
			continue
		}
		if tick%config.AutoFireInterval == 0 {
			s.spawner.SpawnBeam(id, false)
		}
	}
}

// Move двигает игроков по удерживаемым направлениям. Смещение по оси,
// которое вывело бы игрока за экран, отменяется.
func (s *PlayerSystem) Move(frame input.Frame) {
	for _, id := range s.ecs.PlayerIDs() {
		player := s.ecs.Players[id]
		body, ok := s.ecs.Bodies[id]
		if !ok {
			continue
		}
		dx, dy := frame.Player(player.Index).Direction()
		mx, my := player.Speed*float64(dx), player.Speed*float64(dy)

		r := body.Rect.Move(mx, my)
		switch inX, inY := utils.CheckBound(r); {
		case !inX && inY:
			r = r.Move(-mx, 0)
		case inX && !inY:
			r = r.Move(0, -my)
		case !inX && !inY:
			r = r.Move(-mx, -my)
		}
		body.Rect = r

		if dx != 0 || dy != 0 {
			player.FacingX, player.FacingY = dx, dy
		}
	}
}
