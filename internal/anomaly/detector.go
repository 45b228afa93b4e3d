package anomaly

import (
	"math"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/shenikar/tourist_safety/internal/models"
)

// Result - результат проверки окна
type Result struct {
	Flags []bool
	Ratio float64
}

// Anomalies возвращает число помеченных точек
func (r Result) Anomalies() int {
	n := 0
	for _, flagged := range r.Flags {
		if flagged {
			n++
		}
	}
	return n
}

// Features строит векторы (широта, долгота, час суток UTC) в порядке точек окна
func Features(points []*models.LocationPoint) [][]float64 {
	features := make([][]float64, len(points))
	for i, p := range points {
		features[i] = []float64{p.Latitude, p.Longitude, float64(p.Timestamp.UTC().Hour())}
	}
	return features
}

// Detector обучает лес по окну туриста и кэширует его на время ttl.
// Модель из кэша применяется только к окну того же размера, все точки которого
// лежат в границах признаков обучающей выборки. Иначе лес строится заново.
// При ttl <= 0 лес строится заново на каждый вызов.
type Detector struct {
	cfg    Config
	ttl    time.Duration
	models *cache.Cache
}

// fitted - лес вместе с размером и границами выборки, на которой он обучен
type fitted struct {
	forest *Forest
	size   int
	lo, hi []float64
}

func newFitted(forest *Forest, samples [][]float64) *fitted {
	f := &fitted{
		forest: forest,
		size:   len(samples),
		lo:     append([]float64(nil), samples[0]...),
		hi:     append([]float64(nil), samples[0]...),
	}
	for _, s := range samples[1:] {
		for j, v := range s {
			f.lo[j] = math.Min(f.lo[j], v)
			f.hi[j] = math.Max(f.hi[j], v)
		}
	}
	return f
}

// covers сообщает, можно ли оценить окно без переобучения
func (f *fitted) covers(samples [][]float64) bool {
	if len(samples) != f.size {
		return false
	}
	for _, s := range samples {
		if len(s) != len(f.lo) {
			return false
		}
		for j, v := range s {
			if v < f.lo[j] || v > f.hi[j] {
				return false
			}
		}
	}
	return true
}

// NewDetector создает Detector
func NewDetector(cfg Config, ttl time.Duration) (*Detector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cleanup := time.Duration(0)
	if ttl > 0 {
		cleanup = 2 * ttl
	}
	return &Detector{
		cfg:    cfg,
		ttl:    ttl,
		models: cache.New(ttl, cleanup),
	}, nil
}

// Detect помечает аномальные точки окна. key - идентификатор туриста для кэша моделей.
func (d *Detector) Detect(key string, samples [][]float64) (Result, error) {
	if len(samples) < MinSamples {
		return Result{}, ErrInsufficientData
	}

	if d.ttl > 0 {
		if cached, ok := d.models.Get(key); ok {
			if model := cached.(*fitted); model.covers(samples) {
				return model.forest.Predict(samples), nil
			}
		}
	}

	forest, err := Fit(samples, d.cfg)
	if err != nil {
		return Result{}, err
	}
	if d.ttl > 0 {
		d.models.Set(key, newFitted(forest, samples), d.ttl)
	}
	return forest.Predict(samples), nil
}

// CachedModels возвращает число моделей в кэше
func (d *Detector) CachedModels() int {
	return d.models.ItemCount()
}
