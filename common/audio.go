package common

import "encoding/binary"

// SquareWave returns samples of a square wave at freq Hz as signed 16-bit
// little-endian mono PCM.
func SquareWave(sampleRate, freq, samples int, volume int16) []byte {
	out := make([]byte, 2*samples)
	period := sampleRate / freq
	if period < 2 {
		period = 2
	}
	for i := 0; i < samples; i++ {
		v := volume
		if i%period >= period/2 {
			v = -volume
		}
		binary.LittleEndian.PutUint16(out[2*i:], uint16(v))
	}
	return out
}
