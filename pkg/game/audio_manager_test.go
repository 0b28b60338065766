package game

import (
	"testing"

	"github.com/gonewx/starforce/internal/synth"
)

// 没有音频上下文时所有调用都应是空操作
func TestAudioManagerWithoutContext(t *testing.T) {
	clips := synth.RenderAll(synth.SampleRate, 1)
	am := NewAudioManager(nil, NewSettingsManager(nil), clips)

	if am.Enabled() {
		t.Error("Enabled() should be false without an audio context")
	}
	if am.PlaySound(SoundShoot) {
		t.Error("PlaySound should be a no-op without an audio context")
	}
	if am.PlayMusic(MusicBGM) {
		t.Error("PlayMusic should be a no-op without an audio context")
	}
	am.StopMusic()
	am.ApplySettings()
	if am.CurrentMusic() != "" {
		t.Errorf("CurrentMusic() = %q, want empty", am.CurrentMusic())
	}
}

func TestAudioManagerRegistersClips(t *testing.T) {
	clips := synth.RenderAll(synth.SampleRate, 1)
	am := NewAudioManager(nil, nil, clips)

	for _, id := range []string{SoundShoot, SoundExplosion, SoundBossExplosion} {
		if len(am.sounds[id]) == 0 {
			t.Errorf("sound %s should be registered", id)
		}
	}
	if len(am.music[MusicBGM]) == 0 {
		t.Error("bgm should be registered")
	}
}

func TestAudioManagerDefaultVolumes(t *testing.T) {
	am := NewAudioManager(nil, nil, nil)
	if am.musicVolume() != 1.0 || am.soundVolume() != 1.0 {
		t.Errorf("volumes without settings: music=%v sound=%v, want 1.0", am.musicVolume(), am.soundVolume())
	}

	sm := NewSettingsManager(nil)
	sm.SetMusicVolume(0.25)
	am = NewAudioManager(nil, sm, nil)
	if am.musicVolume() != 0.25 {
		t.Errorf("musicVolume() = %v, want 0.25", am.musicVolume())
	}
}
