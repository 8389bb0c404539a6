// internal/input/input.go
package input

// Action — смысловое действие игрока, независимое от физической клавиши.
type Action int

const (
	ActionNone          Action = iota
	ActionUp                   // удерживается
	ActionDown                 // удерживается
	ActionLeft                 // удерживается
	ActionRight                // удерживается
	ActionChargeStart          // клавиша заряда нажата в этом кадре
	ActionChargeRelease        // клавиша заряда отпущена в этом кадре
)

func (a Action) String() string {
	switch a {
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionChargeStart:
		return "ChargeStart"
	case ActionChargeRelease:
		return "ChargeRelease"
	default:
		return "None"
	}
}

// InputFrame — ввод одного игрока за один кадр.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame создает пустой кадр ввода.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{Actions: make(map[Action]bool, len(actions))}
	for _, a := range actions {
		f.Actions[a] = true
	}
	return f
}

// Set отмечает действие в этом кадре.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has сообщает, есть ли действие в этом кадре.
func (f InputFrame) Has(a Action) bool {
	return f.Actions != nil && f.Actions[a]
}

// Direction — сумма единичных смещений удерживаемых направлений.
// Противоположные направления гасят друг друга, диагонали складываются.
func (f InputFrame) Direction() (dx, dy int) {
	if f.Has(ActionUp) {
		dy--
	}
	if f.Has(ActionDown) {
		dy++
	}
	if f.Has(ActionLeft) {
		dx--
	}
	if f.Has(ActionRight) {
		dx++
	}
	return dx, dy
}

// Frame — ввод всех игроков за один кадр симуляции.
type Frame struct {
	Players []InputFrame
}

// Player возвращает ввод игрока index; отсутствующий игрок ничего не нажимает.
func (f Frame) Player(index int) InputFrame {
	if index < 0 || index >= len(f.Players) {
		return InputFrame{}
	}
	return f.Players[index]
}
