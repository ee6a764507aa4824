package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/platformer/internal/ecs"
)

// ActionSource yields one action snapshot per frame
type ActionSource interface {
	Actions() ecs.Actions
}

// Device is the subset of ebiten's input state the input system reads
type Device interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
	// Stick returns the left stick of the first standard gamepad, or ok=false
	Stick() (x, y float64, ok bool)
	PadJustPressed(b ebiten.StandardGamepadButton) bool
}

// ebitenDevice reads live keyboard and gamepad state
type ebitenDevice struct {
	pads []ebiten.GamepadID
}

func (d *ebitenDevice) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (d *ebitenDevice) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

func (d *ebitenDevice) pad() (ebiten.GamepadID, bool) {
	d.pads = ebiten.AppendGamepadIDs(d.pads[:0])
	for _, id := range d.pads {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			return id, true
		}
	}
	return 0, false
}

func (d *ebitenDevice) Stick() (float64, float64, bool) {
	id, ok := d.pad()
	if !ok {
		return 0, 0, false
	}
	x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
	return x, y, true
}

func (d *ebitenDevice) PadJustPressed(b ebiten.StandardGamepadButton) bool {
	id, ok := d.pad()
	if !ok {
		return false
	}
	return inpututil.IsStandardGamepadButtonJustPressed(id, b)
}

// InputSystem maps keyboard and gamepad state to actions
type InputSystem struct {
	device   Device
	deadZone float64
}

// NewInputSystem creates an input system reading the live ebiten state
func NewInputSystem(deadZone float64) *InputSystem {
	return NewInputSystemWithDevice(&ebitenDevice{}, deadZone)
}

// NewInputSystemWithDevice creates an input system over d
func NewInputSystemWithDevice(d Device, deadZone float64) *InputSystem {
	return &InputSystem{device: d, deadZone: deadZone}
}

// SetDeadZone changes the stick dead zone (0..1 of full travel)
func (s *InputSystem) SetDeadZone(dz float64) {
	s.deadZone = dz
}

func (s *InputSystem) anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if s.device.Pressed(k) {
			return true
		}
	}
	return false
}

func (s *InputSystem) anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if s.device.JustPressed(k) {
			return true
		}
	}
	return false
}

// Actions samples the devices once. Call it once per frame.
func (s *InputSystem) Actions() ecs.Actions {
	d := s.device
	a := ecs.Actions{
		Jump:    s.anyJustPressed(ebiten.KeySpace, ebiten.KeyW, ebiten.KeyUp),
		Left:    s.anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right:   s.anyPressed(ebiten.KeyD, ebiten.KeyArrowRight),
		Crouch:  s.anyPressed(ebiten.KeyS, ebiten.KeyArrowDown),
		Menu:    d.JustPressed(ebiten.KeyEscape),
		Restart: d.JustPressed(ebiten.KeyR),
		Exit:    d.JustPressed(ebiten.KeyQ),
	}

	if x, y, ok := d.Stick(); ok {
		if math.Abs(x) > s.deadZone {
			a.Left = a.Left || x < 0
			a.Right = a.Right || x > 0
		}
		if y > s.deadZone {
			a.Crouch = true
		}
		a.Jump = a.Jump || d.PadJustPressed(ebiten.StandardGamepadButtonRightBottom)
		a.Menu = a.Menu || d.PadJustPressed(ebiten.StandardGamepadButtonCenterRight)
		a.Restart = a.Restart || d.PadJustPressed(ebiten.StandardGamepadButtonCenterLeft)
	}
	return a
}
