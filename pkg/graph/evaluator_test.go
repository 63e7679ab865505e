package graph_test

import (
	"math"

	. "github.com/mandelsoft/exprgraph/pkg/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	me "github.com/mandelsoft/exprgraph/pkg/graph"
	"github.com/mandelsoft/exprgraph/pkg/utils"
)

type counter struct {
	hits   map[*me.Node]int
	misses map[*me.Node]int
}

var _ me.Observer = (*counter)(nil)

func newCounter() *counter {
	return &counter{
		hits:   map[*me.Node]int{},
		misses: map[*me.Node]int{},
	}
}

func (c *counter) Hit(n *me.Node, inputs []float64, result float64) {
	c.hits[n]++
}

func (c *counter) Miss(n *me.Node, inputs []float64, result float64) {
	c.misses[n]++
}

func (c *counter) Misses() int {
	sum := 0
	for _, v := range c.misses {
		sum += v
	}
	return sum
}

var _ = Describe("evaluation", func() {
	Context("scenario graph", func() {
		var x1, x2, x3, x4 *me.Node
		var graph *me.Node

		BeforeEach(func() {
			x1 = me.NewInput(1, "x1")
			x2 = me.NewInput(2, "x2")
			x3 = me.NewInput(3, "x3")
			x4 = me.NewInput(3, "x4")
			graph = me.Add(x1, me.Mul(x2, me.Sin(me.Add(x2, me.Pow(x3, x4)))))
		})

		It("renders", func() {
			Expect(graph.String()).To(Equal("(x1+(x2*sin((x2+pow(x3, x4)))))"))
		})

		It("computes initial values", func() {
			Expect(utils.RoundTo(graph.Compute(), 5)).To(Equal(-0.32727))
		})

		It("reflects a changed variable", func() {
			Expect(utils.RoundTo(graph.Compute(), 5)).To(Equal(-0.32727))
			MustBeSuccessful(x1.Set(2))
			Expect(utils.RoundTo(graph.Compute(), 5)).To(Equal(0.67273))
		})

		It("reflects multiple changed variables", func() {
			MustBeSuccessful(x1.Set(2))
			MustBeSuccessful(x2.Set(3))
			MustBeSuccessful(x3.Set(4))
			Expect(utils.RoundTo(graph.Compute(), 5)).To(Equal(-0.56656))
		})

		It("is deterministic", func() {
			first := graph.Compute()
			for i := 0; i < 10; i++ {
				Expect(math.Float64bits(graph.Compute())).To(Equal(math.Float64bits(first)))
			}
		})

		It("reuses unchanged sub expressions", func() {
			cnt := newCounter()
			ev := me.NewEvaluator(nil, cnt)

			ev.Compute(graph)
			Expect(cnt.Misses()).To(Equal(5))

			MustBeSuccessful(x1.Set(2))
			ev.Compute(graph)
			Expect(cnt.Misses()).To(Equal(6))
			Expect(cnt.misses[graph]).To(Equal(2))

			mul := graph.Inputs()[1]
			Expect(cnt.misses[mul]).To(Equal(1))
			Expect(cnt.hits[mul]).To(Equal(1))
			Expect(mul.Stats()).To(Equal(me.Stats{Hits: 1, Misses: 1, Entries: 1}))
		})

		It("resolves a shared variable once per evaluation", func() {
			add := me.Add(x1, x1)
			cnt := newCounter()
			Expect(me.NewEvaluator(nil, cnt).Compute(add)).To(Equal(2.0))
			Expect(cnt.misses[add]).To(Equal(1))
		})
	})

	Context("caching", func() {
		var a, b *me.Node
		var op *me.Node
		var cnt *counter
		var ev *me.Evaluator

		BeforeEach(func() {
			a = me.NewInput(1, "a")
			b = me.NewInput(2, "b")
			op = me.Mul(a, b)
			cnt = newCounter()
			ev = me.NewEvaluator(nil, cnt)
		})

		It("invokes the operator once per input tuple", func() {
			for i := 0; i < 5; i++ {
				Expect(ev.Compute(op)).To(Equal(2.0))
			}
			Expect(cnt.misses[op]).To(Equal(1))
			Expect(cnt.hits[op]).To(Equal(4))
		})

		It("reuses the result for a revisited value", func() {
			Expect(ev.Compute(op)).To(Equal(2.0))
			MustBeSuccessful(a.Set(5))
			Expect(ev.Compute(op)).To(Equal(10.0))
			MustBeSuccessful(a.Set(1))
			Expect(ev.Compute(op)).To(Equal(2.0))

			Expect(cnt.misses[op]).To(Equal(2))
			Expect(cnt.hits[op]).To(Equal(1))
			Expect(op.Stats().Entries).To(Equal(2))
		})

		It("keys on input values, not on input identity", func() {
			Expect(ev.Compute(op)).To(Equal(2.0))
			MustBeSuccessful(a.Set(2))
			MustBeSuccessful(b.Set(1))
			Expect(ev.Compute(op)).To(Equal(2.0))
			Expect(cnt.misses[op]).To(Equal(2))
		})

		It("distinguishes signed zeros", func() {
			one := me.NewInput(1)
			div := me.Div(one, b)
			MustBeSuccessful(b.Set(0))
			Expect(ev.Compute(div)).To(Equal(math.Inf(1)))
			MustBeSuccessful(b.Set(math.Copysign(0, -1)))
			Expect(ev.Compute(div)).To(Equal(math.Inf(-1)))
			Expect(div.Stats().Entries).To(Equal(2))
		})

		It("caches NaN inputs", func() {
			MustBeSuccessful(a.Set(math.NaN()))
			Expect(math.IsNaN(ev.Compute(op))).To(BeTrue())
			Expect(math.IsNaN(ev.Compute(op))).To(BeTrue())
			Expect(cnt.misses[op]).To(Equal(1))
			Expect(cnt.hits[op]).To(Equal(1))
		})

		It("keeps statistics independent of the evaluator", func() {
			op.Compute()
			ev.Compute(op)
			Expect(op.Stats()).To(Equal(me.Stats{Hits: 1, Misses: 1, Entries: 1}))
		})
	})

	Context("numeric edge cases", func() {
		It("divides by zero", func() {
			Expect(me.Div(me.NewInput(3), me.NewInput(0)).Compute()).To(Equal(math.Inf(1)))
		})

		It("divides zero by zero", func() {
			Expect(math.IsNaN(me.Div(me.NewInput(0), me.NewInput(0)).Compute())).To(BeTrue())
		})

		It("raises a negative base to a fractional exponent", func() {
			Expect(math.IsNaN(me.Pow(me.NewInput(-1), me.NewInput(0.5)).Compute())).To(BeTrue())
		})

		It("raises zero to zero", func() {
			Expect(me.Pow(me.NewInput(0), me.NewInput(0)).Compute()).To(Equal(1.0))
		})

		It("propagates NaN", func() {
			nan := me.Div(me.NewInput(0), me.NewInput(0))
			Expect(math.IsNaN(me.Sin(me.Add(nan, me.NewInput(1))).Compute())).To(BeTrue())
		})

		It("evaluates the division scenario", func() {
			y1 := me.NewInput(3, "y1")
			y2 := me.NewInput(2, "y2")
			y3 := me.NewInput(1, "y3")
			graph := me.Div(me.Sub(y1, y2), y3)

			Expect(graph.Compute()).To(Equal(1.0))
			MustBeSuccessful(y3.Set(0))
			Expect(graph.Compute()).To(Equal(math.Inf(1)))
			MustBeSuccessful(y2.Set(3))
			Expect(math.IsNaN(graph.Compute())).To(BeTrue())
		})
	})

	Context("structure", func() {
		It("evaluates a variable without caching", func() {
			x := me.NewInput(4)
			Expect(x.Compute()).To(Equal(4.0))
			MustBeSuccessful(x.Set(5))
			Expect(x.Compute()).To(Equal(5.0))
			Expect(x.Stats()).To(Equal(me.Stats{}))
		})

		It("evaluates deep chains", func() {
			one := me.NewInput(1)
			n := one
			for i := 0; i < 100000; i++ {
				n = me.Add(n, one)
			}
			Expect(n.Compute()).To(Equal(100001.0))
		})

		It("evaluates wide shared graphs", func() {
			x := me.NewInput(1, "x")
			n := x
			for i := 0; i < 64; i++ {
				n = me.Add(n, n)
			}
			cnt := newCounter()
			Expect(me.NewEvaluator(nil, cnt).Compute(n)).To(Equal(math.Pow(2, 64)))
			Expect(cnt.Misses()).To(Equal(64))
		})
	})
})
