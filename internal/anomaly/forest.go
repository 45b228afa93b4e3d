// Package anomaly реализует изоляционный лес для поиска выбросов в окне траектории.
//
// Каждое дерево рекурсивно делит подвыборку по случайному признаку и случайному порогу,
// пока точки не изолированы или не достигнут предел глубины. Чем короче средний путь до
// листа, тем аномальнее точка. Порог решения выбирается так, чтобы на обучающем окне
// аномальной считалась доля точек, равная contamination.
package anomaly

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
)

// MinSamples - минимальный размер окна, на котором имеет смысл строить лес
const MinSamples = 5

const eulerGamma = 0.5772156649015329

// ErrInsufficientData возвращается для окон короче MinSamples
var ErrInsufficientData = errors.New("anomaly: insufficient data")

// Config - параметры ансамбля
type Config struct {
	Trees         int
	MaxSamples    int
	Contamination float64
	Seed          uint64
}

// DefaultConfig возвращает параметры по умолчанию: 100 деревьев, до 256 точек, contamination 0.1, seed 42
func DefaultConfig() Config {
	return Config{
		Trees:         100,
		MaxSamples:    256,
		Contamination: 0.1,
		Seed:          42,
	}
}

// Validate проверяет параметры ансамбля
func (c Config) Validate() error {
	if c.Trees < 1 {
		return fmt.Errorf("anomaly: trees must be positive, got %d", c.Trees)
	}
	if c.MaxSamples < 2 {
		return fmt.Errorf("anomaly: max samples must be at least 2, got %d", c.MaxSamples)
	}
	if c.Contamination <= 0 || c.Contamination > 0.5 {
		return fmt.Errorf("anomaly: contamination must be in (0, 0.5], got %v", c.Contamination)
	}
	return nil
}

type node struct {
	feature     int
	split       float64
	left, right *node
	size        int
}

// Forest - обученный ансамбль вместе с порогом решения. После Fit не изменяется.
type Forest struct {
	trees      []*node
	sampleSize int
	threshold  float64
}

// Fit строит лес по выборке. Результат детерминирован для одинаковых выборки и cfg.Seed.
func Fit(samples [][]float64, cfg Config) (*Forest, error) {
	if len(samples) < MinSamples {
		return nil, ErrInsufficientData
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	psi := min(cfg.MaxSamples, len(samples))
	depthLimit := int(math.Ceil(math.Log2(float64(psi))))

	f := &Forest{
		trees:      make([]*node, 0, cfg.Trees),
		sampleSize: psi,
	}
	for range cfg.Trees {
		perm := rng.Perm(len(samples))[:psi]
		subset := make([][]float64, psi)
		for i, j := range perm {
			subset[i] = samples[j]
		}
		f.trees = append(f.trees, grow(subset, 0, depthLimit, rng))
	}

	f.threshold = percentile(f.Scores(samples), 100*(1-cfg.Contamination))
	return f, nil
}

func grow(samples [][]float64, depth, limit int, rng *rand.Rand) *node {
	if depth >= limit || len(samples) <= 1 {
		return &node{size: len(samples)}
	}

	dims := len(samples[0])
	lows := make([]float64, dims)
	highs := make([]float64, dims)
	candidates := make([]int, 0, dims)
	for d := 0; d < dims; d++ {
		lo, hi := samples[0][d], samples[0][d]
		for _, s := range samples[1:] {
			lo = min(lo, s[d])
			hi = max(hi, s[d])
		}
		if lo < hi {
			lows[d], highs[d] = lo, hi
			candidates = append(candidates, d)
		}
	}
	// все точки совпадают, делить нечего
	if len(candidates) == 0 {
		return &node{size: len(samples)}
	}

	feature := candidates[rng.IntN(len(candidates))]
	split := lows[feature] + rng.Float64()*(highs[feature]-lows[feature])

	var left, right [][]float64
	for _, s := range samples {
		if s[feature] <= split {
			left = append(left, s)
		} else {
			right = append(right, s)
		}
	}

	return &node{
		feature: feature,
		split:   split,
		left:    grow(left, depth+1, limit, rng),
		right:   grow(right, depth+1, limit, rng),
	}
}

func (n *node) pathLength(x []float64) float64 {
	depth := 0
	for n.left != nil {
		if x[n.feature] <= n.split {
			n = n.left
		} else {
			n = n.right
		}
		depth++
	}
	return float64(depth) + averagePathLength(n.size)
}

// averagePathLength - средняя длина неуспешного поиска в BST из n элементов
func averagePathLength(n int) float64 {
	switch {
	case n <= 1:
		return 0
	case n == 2:
		return 1
	}
	return 2*(math.Log(float64(n-1))+eulerGamma) - 2*float64(n-1)/float64(n)
}

// Score возвращает оценку аномальности точки в (0, 1]; больше - аномальнее
func (f *Forest) Score(x []float64) float64 {
	var total float64
	for _, tree := range f.trees {
		total += tree.pathLength(x)
	}
	avg := total / float64(len(f.trees))
	return math.Pow(2, -avg/averagePathLength(f.sampleSize))
}

// Scores возвращает оценки для всех точек выборки
func (f *Forest) Scores(samples [][]float64) []float64 {
	scores := make([]float64, len(samples))
	for i, s := range samples {
		scores[i] = f.Score(s)
	}
	return scores
}

// Threshold возвращает порог решения, вычисленный при обучении
func (f *Forest) Threshold() float64 {
	return f.threshold
}

// Predict помечает точки, чья оценка строго выше порога
func (f *Forest) Predict(samples [][]float64) Result {
	res := Result{Flags: make([]bool, len(samples))}
	if len(samples) == 0 {
		return res
	}
	flagged := 0
	for i, s := range samples {
		if f.Score(s) > f.threshold {
			res.Flags[i] = true
			flagged++
		}
	}
	res.Ratio = float64(flagged) / float64(len(samples))
	return res
}

// percentile - перцентиль с линейной интерполяцией между соседними рангами
func percentile(values []float64, p float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	return sorted[lo] + (sorted[hi]-sorted[lo])*(rank-float64(lo))
}
