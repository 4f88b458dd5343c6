package constants

import "testing"

// TestHitSoundFitsPulse keeps the hit tone from overlapping the next blow
func TestHitSoundFitsPulse(t *testing.T) {
	if HitSoundDuration >= CombatPulseDelay {
		t.Errorf("Expected hit sound %v shorter than pulse %v", HitSoundDuration, CombatPulseDelay)
	}
}

func TestTreeChanceRange(t *testing.T) {
	for i, c := range TreeChance {
		if c < 0 || c*(1+TreeNoiseGain) > 1.5 {
			t.Errorf("TreeChance[%d]: unexpected value %f", i, c)
		}
	}
}

func TestSaveLabelsFitInput(t *testing.T) {
	if TextInputMax <= 0 {
		t.Errorf("Expected positive text limit, got %d", TextInputMax)
	}
	if SaveExtension != ".json" {
		t.Errorf("Expected .json extension, got %q", SaveExtension)
	}
	if StatusBarHeight < 1 {
		t.Errorf("Expected status bar height >= 1, got %d", StatusBarHeight)
	}
}
