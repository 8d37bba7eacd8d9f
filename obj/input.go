package obj

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/jank/character"
)

// stickDeadZone is the left stick deflection below which the pad is ignored.
const stickDeadZone = 0.3

// Input polls the keyboard and the first gamepad once per tick.
type Input struct {
	character.Input

	// DebugPressed toggles ray and shape drawing.
	DebugPressed bool
	// DumpPressed copies the character state to the clipboard.
	DumpPressed bool
	// PausePressed opens or closes the pause menu.
	PausePressed bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard and gamepad.
func (i *Input) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		os.Exit(0)
	}

	var moveX, moveY float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		moveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		moveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		moveY += 1
	}

	var gpJump, gpWeapon, gpTeleport, gpPause bool
	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]

		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -stickDeadZone {
			moveX = -1
		} else if leftX > stickDeadZone {
			moveX = 1
		}
		// pad y grows downward
		leftY := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical)
		if leftY < -stickDeadZone {
			moveY = 1
		} else if leftY > stickDeadZone {
			moveY = -1
		}

		gpJump = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		gpWeapon = inpututil.IsStandardGamepadButtonJustReleased(gid, ebiten.StandardGamepadButtonRightLeft)
		gpTeleport = inpututil.IsStandardGamepadButtonJustReleased(gid, ebiten.StandardGamepadButtonRightTop)
		gpPause = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight)
	}

	i.MoveX = moveX
	i.MoveY = moveY
	i.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace) || gpJump
	// weapon and teleport fire on release
	i.WeaponPressed = inpututil.IsKeyJustReleased(ebiten.KeyZ) || gpWeapon
	i.TeleportPressed = inpututil.IsKeyJustReleased(ebiten.KeyF) || gpTeleport

	i.DebugPressed = inpututil.IsKeyJustPressed(ebiten.KeyF1)
	i.DumpPressed = inpututil.IsKeyJustPressed(ebiten.KeyF3)
	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || gpPause
}
