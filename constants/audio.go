package constants

import "time"

// Audio Constants
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length; larger adds latency, smaller risks underruns
	AudioBufferDuration = 100 * time.Millisecond

	// HitSoundFrequency is the pitch of the combat hit tone in Hz
	HitSoundFrequency = 220.0

	// HitSoundDuration is the length of one hit tone; kept below CombatPulseDelay
	HitSoundDuration = 60 * time.Millisecond

	// HitSoundVolume is the linear gain applied to the hit tone
	HitSoundVolume = 0.3
)
