package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"runtime/pprof"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/viniciusth/suffixautomaton"
)

type searcher interface {
	Contains(pattern string) bool
	NumStates() int
}

type indexSearcher struct {
	*suffixautomaton.Index
}

func (s indexSearcher) NumStates() int {
	return s.Automaton().NumStates()
}

type byteSearcher struct {
	*suffixautomaton.Automaton[byte]
}

func (s byteSearcher) Contains(pattern string) bool {
	return s.Automaton.Contains([]byte(pattern))
}

type variant struct {
	name  string
	build func(words []string) (searcher, error)
}

func buildIndex(config func(*suffixautomaton.IndexBuilder) *suffixautomaton.IndexBuilder) func([]string) (searcher, error) {
	return func(words []string) (searcher, error) {
		idx, err := config(suffixautomaton.NewBuilder(words)).Build()
		if err != nil {
			return nil, err
		}
		return indexSearcher{idx}, nil
	}
}

var variants = map[string]variant{
	"index":  {name: "index", build: buildIndex(func(b *suffixautomaton.IndexBuilder) *suffixautomaton.IndexBuilder { return b })},
	"strict": {name: "strict", build: buildIndex(func(b *suffixautomaton.IndexBuilder) *suffixautomaton.IndexBuilder { return b.CaseSensitive().SkipNormalization() })},
	"bytes": {name: "bytes", build: func(words []string) (searcher, error) {
		a := suffixautomaton.New[byte]()
		for _, w := range words {
			a.AddString([]byte(w))
		}
		return byteSearcher{a}, nil
	}},
}

func variantNames() string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

type densityType string

const (
	densityLow  densityType = "low"
	densityHigh densityType = "high"
)

type memMonitor struct {
	maxAlloc uint64
	stop     chan struct{}
	done     chan struct{}
}

func newMemMonitor() *memMonitor {
	mm := &memMonitor{stop: make(chan struct{}), done: make(chan struct{})}
	go func() {
		defer close(mm.done)
		for {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			if m.Alloc > mm.maxAlloc {
				mm.maxAlloc = m.Alloc
			}
			select {
			case <-mm.stop:
				return
			default:
				time.Sleep(10 * time.Millisecond)
			}
		}
	}()
	return mm
}

func (mm *memMonitor) Stop() uint64 {
	close(mm.stop)
	<-mm.done
	return mm.maxAlloc
}

func getCurrentAlloc() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

func measureBuild(words []string, v variant) (time.Duration, uint64, uint64, searcher, error) {
	runtime.GC()
	mm := newMemMonitor()
	start := time.Now()
	s, err := v.build(words)
	dur := time.Since(start)
	peak := mm.Stop()
	if err != nil {
		return 0, 0, 0, nil, err
	}
	runtime.GC()
	alloc := getCurrentAlloc()
	return dur, peak, alloc, s, nil
}

func measureQuery(s searcher, patterns []string) (time.Duration, uint64, uint64, int) {
	runtime.GC()
	mm := newMemMonitor()
	start := time.Now()
	hits := 0
	for _, p := range patterns {
		if s.Contains(p) {
			hits++
		}
	}
	dur := time.Since(start)
	peak := mm.Stop()
	runtime.GC()
	alloc := getCurrentAlloc()
	return dur, peak, alloc, hits
}

type benchConfig struct {
	variant string
	words   int
	length  int
	pattern int
	queries int
	runs    int
	density string
}

func randomWord(r *rand.Rand, n int) []byte {
	word := make([]byte, n)
	for j := range word {
		word[j] = byte(r.Intn(26) + 'a')
	}
	return word
}

func runBenchmark(v variant, c benchConfig) error {
	M, W, P, Q := c.words, c.length, c.pattern, c.queries
	density := densityType(c.density)
	for run := 0; run < c.runs; run++ {
		r := rand.New(rand.NewSource(int64(run)))
		var commonStr string
		words := make([]string, M)
		if density == densityHigh {
			commonStr = string(randomWord(r, P))
			for i := range words {
				word := randomWord(r, W)
				insertPos := r.Intn(W - P + 1)
				copy(word[insertPos:], commonStr)
				words[i] = string(word)
			}
		} else {
			for i := range words {
				words[i] = string(randomWord(r, W))
			}
		}
		bt, bp, ba, s, err := measureBuild(words, v)
		if err != nil {
			return fmt.Errorf("build %s: %w", v.name, err)
		}
		logger.Debug().Str("variant", v.name).Int("run", run).Int("states", s.NumStates()).Dur("build", bt).Msg("built")

		patterns := make([]string, Q)
		for i := range patterns {
			if density == densityHigh {
				patterns[i] = commonStr
			} else {
				wordIdx := r.Intn(M)
				start := r.Intn(W - P + 1)
				patterns[i] = words[wordIdx][start : start+P]
			}
		}
		qt, qp, qa, hits := measureQuery(s, patterns)
		if hits != Q {
			logger.Warn().Int("hits", hits).Int("queries", Q).Msg("some sampled patterns were not found")
		}
		fmt.Printf("%s,%d,%d,%d,%d,%s,%d,%.0f,%d,%d,%.0f,%d,%d\n",
			v.name, M, W, P, Q, density, s.NumStates(),
			float64(bt.Nanoseconds()), bp, ba,
			float64(qt.Nanoseconds()), qp, qa)
	}
	return nil
}

func benchCommand() *cobra.Command {
	var (
		c          benchConfig
		cpuprofile string
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark automaton construction and substring queries on random words",
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.words <= 0 || c.length <= 0 || c.pattern <= 0 || c.queries <= 0 || c.runs <= 0 || c.pattern > c.length {
				return fmt.Errorf("invalid sizes: need positive --words, --len, --pattern, --queries, --runs and --pattern <= --len")
			}
			if c.density != string(densityLow) && c.density != string(densityHigh) {
				return fmt.Errorf("invalid density %q: want low or high", c.density)
			}
			v, ok := variants[c.variant]
			if !ok {
				return fmt.Errorf("invalid variant %q: available variants are %s", c.variant, variantNames())
			}

			if cpuprofile != "" {
				f, err := os.Create(cpuprofile)
				if err != nil {
					return fmt.Errorf("could not create CPU profile: %w", err)
				}
				defer f.Close()
				if err := pprof.StartCPUProfile(f); err != nil {
					return fmt.Errorf("could not start CPU profile: %w", err)
				}
				defer pprof.StopCPUProfile()
			}

			logger.Info().Str("variant", v.name).Int("words", c.words).Int("runs", c.runs).Msg("benchmark starts")
			return runBenchmark(v, c)
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&c.variant, "variant", "index", "variant to benchmark: "+variantNames())
	flags.IntVarP(&c.words, "words", "m", 1000, "number of words")
	flags.IntVarP(&c.length, "len", "w", 16, "word length")
	flags.IntVarP(&c.pattern, "pattern", "p", 4, "pattern length")
	flags.IntVarP(&c.queries, "queries", "q", 10000, "number of queries")
	flags.IntVar(&c.runs, "runs", 3, "number of runs for averaging")
	flags.StringVarP(&c.density, "density", "d", "low", "density: low or high")
	flags.StringVar(&cpuprofile, "cpuprofile", "", "write CPU profile to file")
	return cmd
}
