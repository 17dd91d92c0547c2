package common

import (
	"time"
	"unicode"
)

// The hex keypad laid over the left of a QWERTY keyboard:
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  ->  Q W E R
//	7 8 9 E      A S D F
//	A 0 B F      Z X C V
var qwertyKeys = map[rune]uint8{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// KeyForRune maps a typed character to its keypad key.
func KeyForRune(r rune) (uint8, bool) {
	k, ok := qwertyKeys[unicode.ToLower(r)]
	return k, ok
}

// KeyRunes returns the characters bound to keypad keys.
func KeyRunes() []rune {
	rs := make([]rune, 0, len(qwertyKeys))
	for r := range qwertyKeys {
		rs = append(rs, r)
	}
	return rs
}

// KeyHold is how long a key stays down after a terminal reports it, since
// terminals only send presses.
const KeyHold = 150 * time.Millisecond

// KeyLatch turns key presses without releases into timed holds.
type KeyLatch struct {
	until [16]time.Time
}

// Press holds key down until now + KeyHold. Repeated presses extend the hold.
func (l *KeyLatch) Press(key uint8, now time.Time) {
	l.until[key&0xf] = now.Add(KeyHold)
}

// Expire returns the keys whose hold ran out by now, and forgets them.
func (l *KeyLatch) Expire(now time.Time) []uint8 {
	var out []uint8
	for k, t := range l.until {
		if !t.IsZero() && !now.Before(t) {
			out = append(out, uint8(k))
			l.until[k] = time.Time{}
		}
	}
	return out
}
