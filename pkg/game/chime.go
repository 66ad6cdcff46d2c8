package game

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate 音频采样率
const SampleRate = 44100

// 合成音效 ID
const (
	SoundSuccess = "success" // 谜题完成
	SoundBloom   = "bloom"   // 花朵破土
)

// sine 正弦振荡器
type sine struct {
	freq     float64
	phase    float64
	position int
	duration int
	rate     beep.SampleRate
}

func newSine(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sine{freq: freq, duration: rate.N(duration), rate: rate}
}

func (s *sine) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}
		v := math.Sin(2 * math.Pi * s.phase)
		samples[i][0], samples[i][1] = v, v

		s.phase += s.freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sine) Err() error { return nil }

// decay 指数衰减包络（短起音）
type decay struct {
	streamer beep.Streamer
	position int
	attack   int
	tau      float64 // 衰减时间常数（采样数）
}

func newDecay(s beep.Streamer, attack, tau time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, attack: rate.N(attack), tau: float64(rate.N(tau))}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := math.Exp(-float64(d.position) / d.tau)
		if d.position < d.attack && d.attack > 0 {
			vol *= float64(d.position) / float64(d.attack)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// note 一个带泛音的衰减音
func note(freq float64, length time.Duration, rate beep.SampleRate) beep.Streamer {
	fund := newDecay(newSine(freq, length, rate), 5*time.Millisecond, length/4, rate)
	over := newDecay(newSine(freq*2, length, rate), 5*time.Millisecond, length/8, rate)
	// Mix 本身不保证结束，用 Take 截断到音符长度
	return beep.Take(rate.N(length), beep.Mix(
		&effects.Volume{Streamer: fund, Base: 2, Volume: math.Log2(0.7)},
		&effects.Volume{Streamer: over, Base: 2, Volume: math.Log2(0.3)},
	))
}

// NewChime 上行琶音：C6 E6 G6 C7
func NewChime(rate beep.SampleRate) beep.Streamer {
	freqs := []float64{1046.5, 1318.5, 1568.0, 2093.0}
	step := 90 * time.Millisecond
	tail := 400 * time.Millisecond

	notes := make([]beep.Streamer, 0, len(freqs))
	for i, f := range freqs {
		length := step
		if i == len(freqs)-1 {
			length = tail
		}
		notes = append(notes, note(f, length, rate))
	}
	return beep.Seq(notes...)
}

// NewBloom 短促的低音“啵”
func NewBloom(rate beep.SampleRate) beep.Streamer {
	return &effects.Volume{
		Streamer: note(392.0, 120*time.Millisecond, rate),
		Base:     2,
		Volume:   math.Log2(0.5),
	}
}

// maxRenderSamples 单个音效的最大长度（5 秒）
const maxRenderSamples = SampleRate * 5

// RenderPCM 把流渲染为 16 位小端立体声 PCM（ebiten audio 格式）
func RenderPCM(s beep.Streamer) []byte {
	buf := make([][2]float64, 512)
	var out []byte
	frame := make([]byte, 4)

	for rendered := 0; rendered < maxRenderSamples; {
		n, ok := s.Stream(buf)
		rendered += n
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(frame[0:], uint16(toInt16(buf[i][0])))
			binary.LittleEndian.PutUint16(frame[2:], uint16(toInt16(buf[i][1])))
			out = append(out, frame...)
		}
		if !ok || n == 0 {
			break
		}
	}
	return out
}

func toInt16(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(v * math.MaxInt16)
}

// synthesize 生成全部内置音效
func synthesize(rate beep.SampleRate) map[string][]byte {
	return map[string][]byte{
		SoundSuccess: RenderPCM(NewChime(rate)),
		SoundBloom:   RenderPCM(NewBloom(rate)),
	}
}
