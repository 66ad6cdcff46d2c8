package game

import (
	"testing"

	"github.com/gopxl/beep"
)

// TestSynthesizedSounds 测试内置音效的 PCM 格式
func TestSynthesizedSounds(t *testing.T) {
	rate := beep.SampleRate(SampleRate)

	tests := []struct {
		name   string
		stream beep.Streamer
		minLen float64 // 秒
		maxLen float64
	}{
		{"success chime", NewChime(rate), 0.5, 1.0},
		{"bloom", NewBloom(rate), 0.1, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pcm := RenderPCM(tt.stream)

			if len(pcm)%4 != 0 {
				t.Fatalf("PCM length %d is not a multiple of a stereo 16-bit frame", len(pcm))
			}
			seconds := float64(len(pcm)/4) / SampleRate
			if seconds < tt.minLen || seconds > tt.maxLen {
				t.Errorf("duration %.3fs outside [%.2f, %.2f]", seconds, tt.minLen, tt.maxLen)
			}

			silent := true
			for _, b := range pcm {
				if b != 0 {
					silent = false
					break
				}
			}
			if silent {
				t.Error("sound should not be silent")
			}
		})
	}
}

// TestToInt16Clamp 超出范围的采样被截断
func TestToInt16Clamp(t *testing.T) {
	if toInt16(2) != 32767 || toInt16(-2) != -32767 || toInt16(0) != 0 {
		t.Errorf("clamp mismatch: %d %d %d", toInt16(2), toInt16(-2), toInt16(0))
	}
}

// TestAudioManagerSilentMode 没有音频上下文时静默降级
func TestAudioManagerSilentMode(t *testing.T) {
	am := NewAudioManager(nil, nil)

	if !am.HasSound(SoundSuccess) || !am.HasSound(SoundBloom) {
		t.Fatal("built-in sounds should be synthesized")
	}
	if am.PlaySound(SoundSuccess) {
		t.Error("silent mode should not report playback")
	}

	am.PlaySuccessSound()
	if am.PlayCount(SoundSuccess) != 2 {
		t.Errorf("PlayCount: got %d, want 2", am.PlayCount(SoundSuccess))
	}
	if am.GetSoundVolume() != 0.8 {
		t.Errorf("default volume: got %v, want 0.8", am.GetSoundVolume())
	}
}

// TestAudioManagerRespectsSettings 音效开关和音量来自设置
func TestAudioManagerRespectsSettings(t *testing.T) {
	sm := NewSettingsManager(nil)
	am := NewAudioManager(nil, sm)

	am.SetSoundVolume(1.5)
	if sm.GetSettings().SoundVolume != 1.0 || am.GetSoundVolume() != 1.0 {
		t.Errorf("volume should be clamped through settings, got %v", am.GetSoundVolume())
	}

	sm.SetSoundEnabled(false)
	if am.PlaySound(SoundBloom) {
		t.Error("disabled sound should not play")
	}
}
