package main

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/bshepherdson/tc-chip8/common"
)

const (
	sampleRate = 44100
	toneHz     = 440
	toneVolume = 6000
)

// Beeper plays a square wave while the sound timer is running.
type Beeper struct {
	dev     sdl.AudioDeviceID
	chunk   []byte
	playing bool
}

func (b *Beeper) Name() string { return "sdl-beeper" }

func (b *Beeper) Tick(e common.Emulator) {
	playing := e.Machine().IsSoundPlaying()
	switch {
	case playing:
		// Keep about two chunks queued so the tone never gaps.
		if sdl.GetQueuedAudioSize(b.dev) < uint32(2*len(b.chunk)) {
			sdl.QueueAudio(b.dev, b.chunk)
		}
		if !b.playing {
			sdl.PauseAudioDevice(b.dev, false)
		}
	case b.playing:
		sdl.PauseAudioDevice(b.dev, true)
		sdl.ClearQueuedAudio(b.dev)
	}
	b.playing = playing
}

func (b *Beeper) Cleanup() {
	sdl.CloseAudioDevice(b.dev)
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
}

func NewBeeper() (common.Device, error) {
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, fmt.Errorf("failed to start SDL audio: %w", err)
	}

	spec := &sdl.AudioSpec{
		Freq:     sampleRate,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  1024,
	}
	dev, err := sdl.OpenAudioDevice("", false, spec, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio device: %w", err)
	}

	// One timer tick's worth of tone.
	chunk := common.SquareWave(sampleRate, toneHz, sampleRate/60, toneVolume)
	return &Beeper{dev: dev, chunk: chunk}, nil
}
