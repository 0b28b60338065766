package game

import (
	"bytes"
	"log"

	"github.com/gonewx/starforce/internal/synth"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// 音频资源 ID
const (
	SoundShoot         = "shoot"
	SoundExplosion     = "explosion"
	SoundBossExplosion = "boss_explosion"
	MusicBGM           = "bgm"
)

// AudioManager 音频管理器
// 职责：
//   - 播放合成的音效和背景音乐
//   - 根据 SettingsManager 应用开关和音量
//
// audioContext 为 nil 时（无音频设备、终端前端、测试）所有操作都是空操作。
type AudioManager struct {
	audioContext    *audio.Context
	settingsManager *SettingsManager // 可为 nil
	sounds          map[string][]byte
	music           map[string][]byte

	// 正在播放的音效，持有引用避免被回收
	activeSounds   []*audio.Player
	currentMusic   *audio.Player
	currentMusicID string
}

// NewAudioManager 创建音频管理器
//
// 参数：
//   - ctx: Ebitengine 音频上下文，可为 nil（静音模式）
//   - sm: SettingsManager 实例，可为 nil
//   - clips: 预渲染的 PCM 片段，可为 nil
func NewAudioManager(ctx *audio.Context, sm *SettingsManager, clips *synth.Clips) *AudioManager {
	am := &AudioManager{
		audioContext:    ctx,
		settingsManager: sm,
		sounds:          make(map[string][]byte),
		music:           make(map[string][]byte),
	}

	if clips != nil {
		am.sounds[SoundShoot] = clips.Shoot
		am.sounds[SoundExplosion] = clips.Explosion
		am.sounds[SoundBossExplosion] = clips.BossExplosion
		am.music[MusicBGM] = clips.BGM
	}

	return am
}

// Enabled 是否有可用的音频输出
func (am *AudioManager) Enabled() bool {
	return am.audioContext != nil
}

// PlaySound 播放一次音效，同一音效可以叠加播放
//
// 返回：
//   - bool: 是否实际开始播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.audioContext == nil {
		return false
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	pcm, ok := am.sounds[soundID]
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		return false
	}

	am.pruneSounds()

	player := am.audioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(am.soundVolume())
	player.Play()
	am.activeSounds = append(am.activeSounds, player)

	return true
}

// pruneSounds 丢弃已播放完毕的音效播放器
func (am *AudioManager) pruneSounds() {
	kept := am.activeSounds[:0]
	for _, p := range am.activeSounds {
		if p.IsPlaying() {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(am.activeSounds); i++ {
		am.activeSounds[i] = nil
	}
	am.activeSounds = kept
}

// PlayMusic 循环播放背景音乐
// 同一时间只有一首；已在播放同一首时不重新开始
func (am *AudioManager) PlayMusic(musicID string) bool {
	if am.audioContext == nil {
		return false
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().MusicEnabled {
		return false
	}

	if am.currentMusicID == musicID && am.currentMusic != nil && am.currentMusic.IsPlaying() {
		return true
	}

	am.StopMusic()

	pcm, ok := am.music[musicID]
	if !ok {
		log.Printf("[AudioManager] Warning: Music not found: %s", musicID)
		return false
	}

	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	player, err := am.audioContext.NewPlayer(loop)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to create music player %s: %v", musicID, err)
		return false
	}

	volume := am.musicVolume()
	player.SetVolume(volume)
	player.Play()

	am.currentMusic = player
	am.currentMusicID = musicID

	log.Printf("[AudioManager] Playing music: %s (volume: %.2f)", musicID, volume)
	return true
}

// StopMusic 停止当前背景音乐
func (am *AudioManager) StopMusic() {
	if am.currentMusic == nil {
		return
	}
	am.currentMusic.Pause()
	am.currentMusic = nil
	am.currentMusicID = ""
}

// ApplySettings 把设置变化应用到正在播放的音乐
// 音乐被关闭时停止播放
func (am *AudioManager) ApplySettings() {
	if am.currentMusic == nil {
		return
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().MusicEnabled {
		am.StopMusic()
		return
	}
	am.currentMusic.SetVolume(am.musicVolume())
}

// CurrentMusic 返回正在播放的音乐 ID，没有时为空串
func (am *AudioManager) CurrentMusic() string {
	return am.currentMusicID
}

func (am *AudioManager) musicVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().MusicVolume
	}
	return 1.0
}

func (am *AudioManager) soundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 1.0
}
