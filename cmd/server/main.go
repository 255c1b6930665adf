package main

import (
	"encoding/json"
	"errors"
	"flag"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pappan12/DiceForge/internal/config"
	"github.com/pappan12/DiceForge/internal/engine"
	"github.com/pappan12/DiceForge/internal/sampler"
	"github.com/pappan12/DiceForge/internal/sim"
)

type rollResp struct {
	Values []int64 `json:"values"`
	Err    string  `json:"err,omitempty"`
}

type realResp struct {
	Value float64 `json:"value"`
	Err   string  `json:"err,omitempty"`
}

type choiceResp struct {
	Item string `json:"item"`
	Err  string `json:"err,omitempty"`
}

type shuffleResp struct {
	Items []string `json:"items"`
	Err   string   `json:"err,omitempty"`
}

type simResp struct {
	Stats sim.Stats `json:"stats"`
	Err   string    `json:"err,omitempty"`
}

type seedResp struct {
	Seed uint64 `json:"seed"`
	Err  string `json:"err,omitempty"`
}

var errBounds = errors.New("bounds must be non-negative and fit the engine width")

// drawer is the engine-width-independent surface the handlers use.
// Generators over uint32 and uint64 are distinct generic instantiations, so
// the concrete width is erased here once, at startup.
type drawer interface {
	IntInRange(min, max int64) (int64, error)
	OpenRange(min, max float64) (float64, error)
	Pick(items []string) (string, error)
	PickWeighted(items []string, weights []float64) (string, error)
	Shuffle(items []string)
	Reseed(seed uint64)
}

type widthDrawer[T sampler.Unsigned] struct {
	g *sampler.Generator[T]
}

func (d widthDrawer[T]) IntInRange(min, max int64) (int64, error) {
	if min < 0 || max < 0 || uint64(max) > uint64(^T(0)) {
		return 0, errBounds
	}
	return d.g.NextInRange(T(min), T(max))
}

func (d widthDrawer[T]) OpenRange(min, max float64) (float64, error) {
	return d.g.NextInOpenRange(min, max)
}

func (d widthDrawer[T]) Pick(items []string) (string, error) {
	return sampler.Choice(d.g, items)
}

func (d widthDrawer[T]) PickWeighted(items []string, weights []float64) (string, error) {
	return sampler.WeightedChoice(d.g, items, weights)
}

func (d widthDrawer[T]) Shuffle(items []string) {
	sampler.Shuffle(d.g, items)
}

func (d widthDrawer[T]) Reseed(seed uint64) {
	d.g.ResetSeed(T(seed))
}

var (
	lock   sync.Mutex
	gen    drawer
	params config.Params
)

// buildDrawer constructs the configured engine, seeding it from the config
// or from crypto entropy when no seed is pinned.
func buildDrawer(p config.Params) (drawer, uint64, error) {
	seed := p.Seed
	if !p.SeedSet {
		s, err := engine.NewSeed()
		if err != nil {
			return nil, 0, err
		}
		seed = s
	}
	switch p.Engine {
	case config.EngineXorShift32:
		return widthDrawer[uint32]{g: sampler.New[uint32](engine.NewXorShift32(uint32(seed)))}, seed, nil
	case config.EngineSplitMix64:
		return widthDrawer[uint64]{g: sampler.New[uint64](engine.NewSplitMix64(seed))}, seed, nil
	default:
		return widthDrawer[uint64]{g: sampler.New[uint64](engine.NewLCG64(seed))}, seed, nil
	}
}

func parseFloat(r *http.Request, key string) (float64, bool, string) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return 0, false, ""
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, "invalid " + key
	}
	return v, true, ""
}

func parseInt(r *http.Request, key string) (int64, bool, string) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return 0, false, ""
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false, "invalid " + key
	}
	return v, true, ""
}

func parseUint(r *http.Request, key string) (uint64, bool, string) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return 0, false, ""
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false, "invalid " + key
	}
	return v, true, ""
}

func parseItems(r *http.Request) []string {
	s := r.URL.Query().Get("items")
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func parseWeights(r *http.Request) ([]float64, bool, string) {
	s := r.URL.Query().Get("weights")
	if s == "" {
		return nil, false, ""
	}
	parts := strings.Split(s, ",")
	ws := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, false, "invalid weights"
		}
		ws[i] = v
	}
	return ws, true, ""
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(v)
}

// uniform integers in [min, max]; n draws (default 1)
func handleRoll(w http.ResponseWriter, r *http.Request) {
	min, okMin, msg := parseInt(r, "min")
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	max, okMax, msg := parseInt(r, "max")
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	if !okMin || !okMax {
		http.Error(w, "missing param min/max", http.StatusBadRequest)
		return
	}
	n, okN, msg := parseInt(r, "n")
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	if !okN {
		n = 1
	}
	if n < 1 || n > 1000 {
		http.Error(w, "n must be in 1..1000", http.StatusBadRequest)
		return
	}

	lock.Lock()
	defer lock.Unlock()
	values := make([]int64, n)
	for i := range values {
		v, err := gen.IntInRange(min, max)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, rollResp{Err: err.Error()})
			return
		}
		values[i] = v
	}
	writeJSON(w, http.StatusOK, rollResp{Values: values})
}

// uniform float in the open interval (min, max)
func handleReal(w http.ResponseWriter, r *http.Request) {
	min, okMin, msg := parseFloat(r, "min")
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	max, okMax, msg := parseFloat(r, "max")
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	if !okMin || !okMax {
		http.Error(w, "missing param min/max", http.StatusBadRequest)
		return
	}

	lock.Lock()
	defer lock.Unlock()
	v, err := gen.OpenRange(min, max)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, realResp{Err: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, realResp{Value: v})
}

// uniform or weighted pick from a comma-separated list
func handleChoice(w http.ResponseWriter, r *http.Request) {
	items := parseItems(r)
	weights, hasWeights, msg := parseWeights(r)
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	lock.Lock()
	defer lock.Unlock()
	var (
		item string
		err  error
	)
	if hasWeights {
		item, err = gen.PickWeighted(items, weights)
	} else {
		item, err = gen.Pick(items)
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, choiceResp{Err: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, choiceResp{Item: item})
}

// unbiased permutation of a comma-separated list
func handleShuffle(w http.ResponseWriter, r *http.Request) {
	items := parseItems(r)
	if len(items) == 0 {
		http.Error(w, "missing param items", http.StatusBadRequest)
		return
	}

	lock.Lock()
	defer lock.Unlock()
	gen.Shuffle(items)
	writeJSON(w, http.StatusOK, shuffleResp{Items: items})
}

// Monte Carlo summary of repeated ranged draws
func handleSimulate(w http.ResponseWriter, r *http.Request) {
	trials, okTrials, msg := parseInt(r, "trials")
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	min, okMin, msg := parseInt(r, "min")
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	max, okMax, msg := parseInt(r, "max")
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	if !okTrials || !okMin || !okMax {
		http.Error(w, "missing param trials/min/max", http.StatusBadRequest)
		return
	}
	lock.Lock()
	defer lock.Unlock()
	if trials < 1 || trials > int64(params.MaxTrials) {
		http.Error(w, "trials out of range", http.StatusBadRequest)
		return
	}
	stats, err := sim.RunTrials(int(trials), func() (float64, error) {
		v, err := gen.IntInRange(min, max)
		return float64(v), err
	})
	if err != nil {
		writeJSON(w, http.StatusBadRequest, simResp{Err: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, simResp{Stats: stats})
}

// deterministic reseed of the shared generator
func handleReseed(w http.ResponseWriter, r *http.Request) {
	seed, ok, msg := parseUint(r, "seed")
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	if !ok {
		http.Error(w, "missing param seed", http.StatusBadRequest)
		return
	}

	lock.Lock()
	defer lock.Unlock()
	gen.Reseed(seed)
	writeJSON(w, http.StatusOK, seedResp{Seed: seed})
}

func reload(path string) {
	p, err := config.Load(path)
	if err != nil {
		log.Println("config reload failed:", err)
		return
	}
	d, seed, err := buildDrawer(p)
	if err != nil {
		log.Println("config reload failed:", err)
		return
	}
	lock.Lock()
	params = p
	gen = d
	lock.Unlock()
	log.Printf("config reloaded: engine=%s seed=%d", p.Engine, seed)
}

func main() {
	cfgPath := flag.String("config", "config.yaml", "path to YAML config")
	flag.Parse()

	p, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	d, seed, err := buildDrawer(p)
	if err != nil {
		log.Fatal(err)
	}
	params = p
	gen = d

	watcher := config.NewWatcher(*cfgPath, 5*time.Second, reload)
	watcher.Start()
	defer watcher.Stop()

	http.HandleFunc("/roll", handleRoll)
	http.HandleFunc("/real", handleReal)
	http.HandleFunc("/choice", handleChoice)
	http.HandleFunc("/shuffle", handleShuffle)
	http.HandleFunc("/simulate", handleSimulate)
	http.HandleFunc("/reseed", handleReseed)

	log.Printf("listening on %s (engine=%s seed=%d) ...", params.Listen, params.Engine, seed)
	log.Fatal(http.ListenAndServe(params.Listen, nil))
}
