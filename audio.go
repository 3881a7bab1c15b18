package main

import (
	"bytes"
	"encoding/binary"
	"log"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

const (
	toneSampleRate = 44100
	toneFrequency  = 880.0
)

// Global audio context singleton
var (
	globalAudioCtx     *oto.Context
	globalAudioCtxOnce sync.Once
	audioCtxReady      bool
)

// AudioPlayer manages reminder tone playback with cancellation support
type AudioPlayer struct {
	stopChan chan struct{}
	player   *oto.Player
}

// initAudioContext initializes the global audio context once
func initAudioContext() {
	globalAudioCtxOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   toneSampleRate,
			ChannelCount: 1,
			Format:       oto.FormatSignedInt16LE,
		}

		ctx, readyChan, err := oto.NewContext(op)
		if err != nil {
			log.Printf("Failed to initialize audio context: %v", err)
			return
		}

		// Wait for the hardware audio devices to be ready
		<-readyChan

		globalAudioCtx = ctx
		audioCtxReady = true
		log.Println("Audio context initialized successfully")
	})
}

// reminderTonePCM renders the reminder chime: three short beeps with gaps,
// as 16-bit little-endian mono samples.
func reminderTonePCM() []byte {
	beep := time.Duration(180) * time.Millisecond
	gap := time.Duration(120) * time.Millisecond

	beepSamples := int(float64(toneSampleRate) * beep.Seconds())
	gapSamples := int(float64(toneSampleRate) * gap.Seconds())

	var buf bytes.Buffer
	writeSilence := func(n int) {
		for i := 0; i < n; i++ {
			binary.Write(&buf, binary.LittleEndian, int16(0))
		}
	}
	writeBeep := func() {
		for i := 0; i < beepSamples; i++ {
			// Short attack/release ramp to avoid clicks
			envelope := 1.0
			ramp := toneSampleRate / 100
			if i < ramp {
				envelope = float64(i) / float64(ramp)
			} else if beepSamples-i < ramp {
				envelope = float64(beepSamples-i) / float64(ramp)
			}

			sample := math.Sin(2 * math.Pi * toneFrequency * float64(i) / toneSampleRate)
			binary.Write(&buf, binary.LittleEndian, int16(sample*envelope*0.4*math.MaxInt16))
		}
	}

	for i := 0; i < 3; i++ {
		if i > 0 {
			writeSilence(gapSamples)
		}
		writeBeep()
	}

	return buf.Bytes()
}

// playReminderTone plays the reminder chime and returns an AudioPlayer
func playReminderTone() *AudioPlayer {
	initAudioContext()

	if !audioCtxReady || globalAudioCtx == nil {
		log.Printf("Audio context not ready")
		return nil
	}

	ap := &AudioPlayer{
		stopChan: make(chan struct{}),
	}

	// Play the sound in a goroutine so it doesn't block
	go func() {
		ap.player = globalAudioCtx.NewPlayer(bytes.NewReader(reminderTonePCM()))

		// Play starts playing the sound and returns without waiting
		ap.player.Play()

		// Wait for the sound to finish playing or stop signal
		for ap.player.IsPlaying() {
			select {
			case <-ap.stopChan:
				// Stop requested, cleanup and exit
				ap.player.Close()
				return
			case <-time.After(time.Millisecond):
				// Continue checking
			}
		}

		if err := ap.player.Close(); err != nil {
			log.Printf("Failed to close audio player: %v", err)
		}
	}()

	return ap
}

// Stop stops the audio playback
func (ap *AudioPlayer) Stop() {
	if ap != nil {
		close(ap.stopChan)
	}
}
