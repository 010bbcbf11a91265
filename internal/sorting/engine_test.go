package sorting_test

import (
	"errors"
	"math/rand"
	"sort"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/render"
	"github.com/san-kum/sortviz/internal/sorting"
)

// recorder is display, pacer and observer at once so tests can check the
// order in which the engine talks to its collaborators.
type recorder struct {
	frames []render.Frame
	steps  []sorting.Step
	events []string
	pauses int
}

func (r *recorder) Redraw(f render.Frame) {
	r.frames = append(r.frames, f)
	r.events = append(r.events, "redraw")
}

func (r *recorder) Pause() {
	r.pauses++
	r.events = append(r.events, "pause")
}

func (r *recorder) OnStep(s sorting.Step, _ []int) {
	r.steps = append(r.steps, s)
	r.events = append(r.events, "step")
}

func newEngine(st *array.State, r *recorder) *sorting.Engine {
	return sorting.New(st,
		sorting.WithDisplay(r),
		sorting.WithPacer(r),
		sorting.WithObserver(r),
	)
}

func sortedCopy(v []int) []int {
	c := append([]int(nil), v...)
	sort.Ints(c)
	return c
}

var _ = Describe("Engine", func() {
	for _, alg := range sorting.Algorithms {
		alg := alg

		Describe(string(alg)+" sort", func() {
			DescribeTable("sorts any baseline into a permutation of itself",
				func(seed int64, n int) {
					st := array.New(n, 750, rand.New(rand.NewSource(seed)))
					base := st.Baseline()
					r := &recorder{}

					stats, err := newEngine(st, r).Run(alg)
					Expect(err).NotTo(HaveOccurred())

					final := st.Values()
					Expect(array.IsSorted(final)).To(BeTrue())
					Expect(final).To(Equal(sortedCopy(base)))
					Expect(st.Complete()).To(BeTrue())
					Expect(stats.Algorithm).To(Equal(alg))
					Expect(stats.Length).To(Equal(n))
				},
				Entry("seed 1, 130 bars", int64(1), 130),
				Entry("seed 2, 130 bars", int64(2), 130),
				Entry("seed 99, 17 bars", int64(99), 17),
				Entry("seed 5, 2 bars", int64(5), 2),
			)

			It("terminates immediately on an empty array", func() {
				st := array.FromValues(nil, 750)
				r := &recorder{}

				stats, err := newEngine(st, r).Run(alg)
				Expect(err).NotTo(HaveOccurred())
				Expect(st.Complete()).To(BeTrue())
				Expect(stats.Steps).To(BeZero())
				Expect(r.pauses).To(BeZero())
				Expect(r.frames).To(HaveLen(1))
				Expect(r.frames[0].Complete).To(BeTrue())
			})

			It("terminates immediately on a single element", func() {
				st := array.FromValues([]int{42}, 750)
				r := &recorder{}

				_, err := newEngine(st, r).Run(alg)
				Expect(err).NotTo(HaveOccurred())
				Expect(st.Complete()).To(BeTrue())
				Expect(r.frames).To(HaveLen(1))
				Expect(st.Values()).To(Equal([]int{42}))
			})

			It("still completes an all-equal array", func() {
				st := array.FromValues([]int{4, 4, 4, 4}, 750)
				r := &recorder{}

				stats, err := newEngine(st, r).Run(alg)
				Expect(err).NotTo(HaveOccurred())
				Expect(stats.Swaps).To(BeZero())
				Expect(stats.Shifts).To(BeZero())
				Expect(st.Complete()).To(BeTrue())
				Expect(r.frames[len(r.frames)-1].Complete).To(BeTrue())
			})

			It("pairs every step with one redraw and one pause, then a final redraw", func() {
				st := array.FromValues([]int{3, 1, 2, 5, 4}, 750)
				r := &recorder{}

				stats, err := newEngine(st, r).Run(alg)
				Expect(err).NotTo(HaveOccurred())
				Expect(r.pauses).To(Equal(stats.Steps))
				Expect(r.frames).To(HaveLen(stats.Steps + 1))

				for i := 0; i < stats.Steps; i++ {
					Expect(r.events[3*i : 3*i+3]).To(Equal([]string{"step", "redraw", "pause"}))
					Expect(r.frames[i].Complete).To(BeFalse())
				}
				Expect(r.events[len(r.events)-1]).To(Equal("redraw"))
				Expect(r.frames[len(r.frames)-1].Complete).To(BeTrue())
			})

			It("clears a stale completion flag while running", func() {
				st := array.FromValues([]int{2, 1}, 750)
				st.MarkComplete()
				var seen []bool
				eng := sorting.New(st,
					sorting.WithPacer(sorting.NopPacer{}),
					sorting.WithDisplay(sorting.DisplayFunc(func(render.Frame) {
						seen = append(seen, st.Complete())
					})),
				)

				_, err := eng.Run(alg)
				Expect(err).NotTo(HaveOccurred())
				Expect(seen).NotTo(BeEmpty())
				Expect(seen[0]).To(BeFalse())
				Expect(seen[len(seen)-1]).To(BeTrue())
			})
		})
	}

	Describe("selection sort", func() {
		It("sorts [5,3,8,1]", func() {
			st := array.FromValues([]int{5, 3, 8, 1}, 750)
			r := &recorder{}

			_, err := newEngine(st, r).Selection()
			Expect(err).NotTo(HaveOccurred())
			Expect(st.Values()).To(Equal([]int{1, 3, 5, 8}))
			Expect(st.Complete()).To(BeTrue())
		})

		It("yields once per pass, never per comparison", func() {
			st := array.FromValues([]int{5, 3, 8, 1}, 750)
			r := &recorder{}

			stats, err := newEngine(st, r).Selection()
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.Steps).To(Equal(3))
			Expect(stats.Comparisons).To(Equal(6))
			Expect(r.steps).To(Equal([]sorting.Step{
				{Seq: 1, Algorithm: sorting.Selection, Kind: sorting.StepSwap, I: 0, J: 3},
				{Seq: 2, Algorithm: sorting.Selection, Kind: sorting.StepSwap, I: 1, J: 1},
				{Seq: 3, Algorithm: sorting.Selection, Kind: sorting.StepSwap, I: 2, J: 3},
			}))
			Expect(stats.Swaps).To(Equal(2))
		})
	})

	Describe("bubble sort", func() {
		It("performs zero swaps on [2,2,2]", func() {
			st := array.FromValues([]int{2, 2, 2}, 750)
			r := &recorder{}

			stats, err := newEngine(st, r).Bubble()
			Expect(err).NotTo(HaveOccurred())
			Expect(st.Values()).To(Equal([]int{2, 2, 2}))
			Expect(st.Complete()).To(BeTrue())
			Expect(stats.Swaps).To(BeZero())
			Expect(r.steps).To(BeEmpty())
		})

		It("performs zero swaps on an already sorted baseline", func() {
			st := array.New(130, 750, rand.New(rand.NewSource(3)))
			Expect(st.Fill(array.PatternSorted)).To(Succeed())
			st.Load()
			r := &recorder{}

			stats, err := newEngine(st, r).Bubble()
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.Swaps).To(BeZero())
			Expect(stats.Steps).To(BeZero())
			Expect(st.Complete()).To(BeTrue())
			Expect(r.frames).To(HaveLen(1))
		})

		It("swaps adjacent pairs only", func() {
			st := array.FromValues([]int{3, 2, 1}, 750)
			r := &recorder{}

			stats, err := newEngine(st, r).Bubble()
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.Swaps).To(Equal(3))
			for _, s := range r.steps {
				Expect(s.J).To(Equal(s.I + 1))
			}
		})
	})

	Describe("insertion sort", func() {
		It("yields exactly one shift for [9,1]", func() {
			st := array.FromValues([]int{9, 1}, 750)
			r := &recorder{}

			stats, err := newEngine(st, r).Insertion()
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.Shifts).To(Equal(1))
			Expect(r.steps).To(Equal([]sorting.Step{
				{Seq: 1, Algorithm: sorting.Insertion, Kind: sorting.StepShift, I: 0, J: 1},
			}))
			Expect(st.Values()).To(Equal([]int{1, 9}))
		})

		It("shows the shifted value before the key lands", func() {
			st := array.FromValues([]int{9, 1}, 750)
			r := &recorder{}

			_, err := newEngine(st, r).Insertion()
			Expect(err).NotTo(HaveOccurred())
			Expect(r.frames).To(HaveLen(2))
			Expect(r.frames[0].Heights()).To(Equal([]int{9, 9}))
			Expect(r.frames[1].Heights()).To(Equal([]int{1, 9}))
		})

		It("yields once per inversion", func() {
			st := array.FromValues([]int{4, 3, 2, 1}, 750)
			r := &recorder{}

			stats, err := newEngine(st, r).Insertion()
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.Shifts).To(Equal(6))
			Expect(stats.Steps).To(Equal(6))
		})
	})

	Describe("load and sort lifecycle", func() {
		It("resets the flag on load and sets it after the sort", func() {
			st := array.New(20, 750, rand.New(rand.NewSource(8)))
			r := &recorder{}
			eng := newEngine(st, r)

			for _, alg := range sorting.Algorithms {
				st.Load()
				Expect(st.Complete()).To(BeFalse())
				Expect(st.Values()).To(Equal(st.Baseline()))

				_, err := eng.Run(alg)
				Expect(err).NotTo(HaveOccurred())
				Expect(st.Complete()).To(BeTrue())
			}
		})
	})

	Describe("Run", func() {
		It("rejects unknown algorithms", func() {
			st := array.FromValues([]int{1}, 750)
			_, err := sorting.New(st, sorting.WithPacer(sorting.NopPacer{})).Run("quick")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("StepError", func() {
		It("unwraps to the array error", func() {
			inner := &array.IndexError{Op: "get", Index: 5, Len: 2}
			err := &sorting.StepError{Algorithm: sorting.Bubble, Step: 3, Wrapped: inner}
			Expect(errors.Is(err, array.ErrIndexOutOfRange)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("bubble sort, step 3"))
		})
	})

	Describe("SleepPacer", func() {
		It("waits at least the delay", func() {
			start := time.Now()
			sorting.SleepPacer{Delay: 15 * time.Millisecond}.Pause()
			Expect(time.Since(start)).To(BeNumerically(">=", 15*time.Millisecond))
		})

		It("returns early when interrupted", func() {
			ch := make(chan struct{})
			close(ch)
			start := time.Now()
			sorting.SleepPacer{Delay: time.Hour, Interrupt: ch}.Pause()
			Expect(time.Since(start)).To(BeNumerically("<", time.Second))
		})

		It("does nothing without a delay", func() {
			start := time.Now()
			sorting.SleepPacer{}.Pause()
			Expect(time.Since(start)).To(BeNumerically("<", 10*time.Millisecond))
		})
	})

	Describe("MultiDisplay", func() {
		It("forwards every frame to each display", func() {
			a, b := &recorder{}, &recorder{}
			st := array.FromValues([]int{2, 1}, array.MaxHeight)
			eng := sorting.New(st,
				sorting.WithDisplay(sorting.MultiDisplay{a, b}),
				sorting.WithPacer(sorting.NopPacer{}),
			)
			_, err := eng.Bubble()
			Expect(err).NotTo(HaveOccurred())
			Expect(a.frames).To(HaveLen(2))
			Expect(b.frames).To(Equal(a.frames))
		})
	})

	Describe("ParseAlgorithm", func() {
		It("accepts the three routines", func() {
			for _, a := range sorting.Algorithms {
				got, err := sorting.ParseAlgorithm(string(a))
				Expect(err).NotTo(HaveOccurred())
				Expect(got).To(Equal(a))
			}
		})

		It("rejects anything else", func() {
			_, err := sorting.ParseAlgorithm("merge")
			Expect(err).To(HaveOccurred())
		})
	})
})
