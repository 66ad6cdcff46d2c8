package game

import (
	"log"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 持有合成好的内置音效（见 chime.go）
//   - 按 SettingsManager 的开关和音量播放
//   - 作为房间的成功音效（room.SoundPlayer）
//
// audio.Context 为 nil 时进入静音模式：所有播放请求返回 false。
type AudioManager struct {
	context         *audio.Context           // ebiten 音频上下文，可为 nil（静音模式）
	settingsManager *SettingsManager         // 设置管理器（用于读取音量设置，可为 nil）
	sounds          map[string][]byte        // 音效 PCM 数据（ID -> PCM）
	soundPlayers    map[string]*audio.Player // 音效播放器缓存（ID -> 播放器）
	playCount       map[string]int           // 播放请求计数（含静音模式）
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文（采样率必须为 SampleRate，可为 nil）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
//
// 返回：
//   - *AudioManager: 音频管理器实例
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	am := &AudioManager{
		context:         ctx,
		settingsManager: sm,
		sounds:          synthesize(beep.SampleRate(SampleRate)),
		soundPlayers:    make(map[string]*audio.Player),
		playCount:       make(map[string]int),
	}
	if ctx == nil {
		log.Printf("[AudioManager] No audio context, running silent")
	}
	return am
}

// PlaySound 播放音效
// 音效使用 SoundVolume 设置控制音量，单次播放后停止
//
// 参数：
//   - soundID: 音效 ID（SoundSuccess、SoundBloom）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	am.playCount[soundID]++

	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())

	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()

	return true
}

// PlaySuccessSound 播放谜题完成音效
func (am *AudioManager) PlaySuccessSound() {
	am.PlaySound(SoundSuccess)
}

// PlayBloom 播放花朵破土音效
func (am *AudioManager) PlayBloom() {
	am.PlaySound(SoundBloom)
}

// SetSoundVolume 设置音效音量
// 此方法会影响后续播放的所有音效
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
	for _, player := range am.soundPlayers {
		player.SetVolume(clampVolume(volume))
	}
}

// GetSoundVolume 获取当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	return am.getSoundVolume()
}

// PlayCount 某个音效被请求播放的次数
func (am *AudioManager) PlayCount(soundID string) int {
	return am.playCount[soundID]
}

// HasSound 是否存在该音效
func (am *AudioManager) HasSound(soundID string) bool {
	_, ok := am.sounds[soundID]
	return ok
}

// getSoundPlayer 获取或创建音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}
	if am.context == nil {
		return nil
	}

	pcm, ok := am.sounds[soundID]
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		return nil
	}

	player := am.context.NewPlayerFromBytes(pcm)
	am.soundPlayers[soundID] = player
	return player
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.8 // 默认值
}
