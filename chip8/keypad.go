package chip8

import "fmt"

// Keypad latches the state of the 16 hex keys.
type Keypad struct {
	keys [KeyCount]bool
}

func checkKey(key uint8) error {
	if key >= KeyCount {
		return fmt.Errorf("%w: %#x", ErrNoSuchKey, key)
	}
	return nil
}

func (k *Keypad) SetState(key uint8, pressed bool) error {
	if err := checkKey(key); err != nil {
		return err
	}
	k.keys[key] = pressed
	return nil
}

func (k *Keypad) IsPressed(key uint8) (bool, error) {
	if err := checkKey(key); err != nil {
		return false, err
	}
	return k.keys[key], nil
}

// AnyPressed returns the lowest key currently down.
func (k *Keypad) AnyPressed() (uint8, bool) {
	for i, down := range k.keys {
		if down {
			return uint8(i), true
		}
	}
	return 0, false
}

// ReleaseAll marks every key as up.
func (k *Keypad) ReleaseAll() {
	k.keys = [KeyCount]bool{}
}
