package systems

// SoundPlayer 音频协作者
// game.AudioManager 实现此接口；没有音频设备时调用均为空操作
type SoundPlayer interface {
	PlaySound(id string) bool
	PlayMusic(id string) bool
	StopMusic()
}

// HighScoreStore 最高分持久化协作者
// game.SaveManager 实现此接口
type HighScoreStore interface {
	LoadHighScore() int
	SaveHighScore(score, stage int) (bool, error)
}

// nopSounds 静音实现
type nopSounds struct{}

func (nopSounds) PlaySound(string) bool { return false }
func (nopSounds) PlayMusic(string) bool { return false }
func (nopSounds) StopMusic()            {}
