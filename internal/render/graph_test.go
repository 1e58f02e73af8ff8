package render_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/xvgterm/internal/render"
	"github.com/san-kum/xvgterm/internal/xvg"
)

func parse(in string) *xvg.Dataset {
	ds, err := xvg.ParseString(in, xvg.ParseOptions{})
	Expect(err).NotTo(HaveOccurred())
	return ds
}

func lines(out string) []string {
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}

var _ = Describe("Graph", func() {
	Context("with title and x label", func() {
		It("lays out the full plot", func() {
			ds := parse(`@ title "Demo"
@ xaxis label "Time (ns)"
0 0
4 2
`)
			out, err := render.Graph(ds, render.ASCII, 7, 6)
			Expect(err).NotTo(HaveOccurred())
			Expect(lines(out)).To(Equal([]string{
				" Demo  ",
				"      .",
				"       ",
				"  .    ",
				"Time…",
			}))
		})

		It("keeps a short x label centered", func() {
			ds := parse("@ xaxis label \"t\"\n0 0\n1 1\n")
			out, err := render.Graph(ds, render.ASCII, 7, 6)
			Expect(err).NotTo(HaveOccurred())
			Expect(lines(out)).To(HaveLen(4))
			Expect(lines(out)[3]).To(Equal("  t  "))
		})
	})

	Context("with empty quoted attributes", func() {
		It("keeps a blank line for each one that was set", func() {
			ds := parse("@ title \"\"\n@ subtitle \"\"\n@ xaxis label \"\"\n0 0\n1 1\n")
			out, err := render.Graph(ds, render.ASCII, 7, 6)
			Expect(err).NotTo(HaveOccurred())
			Expect(lines(out)).To(Equal([]string{
				"       ",
				"       ",
				"      .",
				"       ",
				"  .    ",
				"     ",
			}))
		})
	})

	Context("with a y label", func() {
		It("writes one label character per row", func() {
			ds := parse("@ yaxis label \"RMSD\"\n0 0\n1 1\n")
			out, err := render.Graph(ds, render.Block, 6, 6)
			Expect(err).NotTo(HaveOccurred())

			rows := lines(out)
			Expect(rows).To(HaveLen(3))
			Expect(rows[0]).To(HavePrefix("R "))
			Expect(rows[1]).To(HavePrefix("M "))
			Expect(rows[2]).To(HavePrefix("… "))
		})

		It("centers a short label in the gutter", func() {
			ds := parse("@ yaxis label \"E\"\n0 0\n1 1\n")
			out, err := render.Graph(ds, render.Block, 6, 6)
			Expect(err).NotTo(HaveOccurred())

			rows := lines(out)
			Expect(rows[0]).To(HavePrefix("  "))
			Expect(rows[1]).To(HavePrefix("E "))
			Expect(rows[2]).To(HavePrefix("  "))
		})
	})

	Context("without attributes", func() {
		It("emits only the grid rows", func() {
			ds := parse("0 0\n1 1\n2 4\n3 9\n")
			out, err := render.Graph(ds, render.Block, 20, 10)
			Expect(err).NotTo(HaveOccurred())

			rows := lines(out)
			Expect(rows).To(HaveLen(7))
			for _, row := range rows {
				Expect([]rune(row)).To(HaveLen(20))
				Expect(strings.Trim(row, " ░▒▓█")).To(BeEmpty())
			}
		})

		It("collapses identical points into one cell", func() {
			ds := parse("1 1\n1 1\n1 1\n")
			out, err := render.Graph(ds, render.ASCII, 7, 6)
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.Count(out, ".")).To(Equal(1))
			Expect(strings.TrimSpace(out)).To(Equal("."))
		})
	})

	Context("shading", func() {
		It("uses denser glyphs for busier cells", func() {
			ds := parse("0 0\n0 0\n0 0\n0 0\n9 9\n")
			out, err := render.Graph(ds, render.ASCII, 12, 8)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("@"))
			Expect(out).To(ContainSubstring("."))
		})
	})

	Context("with unusable input", func() {
		It("rejects a drawing area without room for the gutters", func() {
			ds := parse("0 0\n1 1\n")
			_, err := render.Graph(ds, render.ASCII, 2, 10)
			Expect(err).To(MatchError(render.ErrTooSmall))
			_, err = render.Graph(ds, render.ASCII, 10, 3)
			Expect(err).To(MatchError(render.ErrTooSmall))
		})

		It("rejects an empty dataset", func() {
			_, err := render.Graph(parse("# nothing\n"), render.ASCII, 20, 10)
			Expect(err).To(MatchError(render.ErrNoData))
		})

		It("rejects a single column", func() {
			_, err := render.Graph(parse("1\n2\n"), render.ASCII, 20, 10)
			Expect(err).To(MatchError(render.ErrTooFewColumns))
		})
	})
})

var _ = Describe("Trace", func() {
	It("plots a column with its label as caption", func() {
		ds := parse("@ title \"RMSD\"\n@ yaxis label \"nm\"\n0 0.1\n1 0.3\n2 0.2\n3 0.4\n")
		out, err := render.Trace(ds, 1, 30, 5)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(HavePrefix(render.Center("RMSD", 30)))
		Expect(out).To(ContainSubstring("nm"))
	})

	It("rejects a missing column", func() {
		_, err := render.Trace(parse("0 1\n"), 2, 30, 5)
		Expect(err).To(HaveOccurred())
	})

	It("rejects a column without finite values", func() {
		_, err := render.Trace(parse("0 inf\n1 -inf\n"), 1, 30, 5)
		Expect(err).To(MatchError(render.ErrNoData))
	})
})
