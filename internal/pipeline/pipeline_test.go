package pipeline_test

import (
	"bytes"
	"fmt"
	"image/gif"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fireanim/internal/colormap"
	"github.com/san-kum/fireanim/internal/config"
	"github.com/san-kum/fireanim/internal/pipeline"
	"github.com/san-kum/fireanim/internal/render"
	"github.com/san-kum/fireanim/internal/trace"
	"github.com/san-kum/fireanim/internal/viz"
)

// writeTrace writes rows x width cells in the simulator's format, one
// trailing comma per row. cell decides each value.
func writeTrace(path string, rows, width int, cell func(r, c int) string) {
	var b strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < width; c++ {
			b.WriteString(cell(r, c))
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	Expect(os.WriteFile(path, []byte(b.String()), 0644)).To(Succeed())
}

var _ = Describe("Run", func() {
	var (
		dir string
		cfg *config.Config
		out *bytes.Buffer
		rep *viz.Reporter
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		cfg = config.DefaultConfig()
		cfg.Input = filepath.Join(dir, "output.csv")
		cfg.Output = filepath.Join(dir, "forest_fire.gif")
		cfg.SizeInches = 3
		cfg.DPI = 20
		cfg.FontSize = 6
		out = &bytes.Buffer{}
		rep = viz.NewReporter(out)
	})

	Context("with two full frames", func() {
		BeforeEach(func() {
			// frame 0 is all trees with one fire, frame 1 is charred
			writeTrace(cfg.Input, 600, 300, func(r, c int) string {
				switch {
				case r >= 300:
					return "3"
				case r == 150 && c == 150:
					return "2"
				case c < 150:
					return "0"
				}
				return "1"
			})
		})

		It("renders both frames in order to a non-empty gif", func() {
			report, err := pipeline.Run(cfg, rep)
			Expect(err).NotTo(HaveOccurred())
			Expect(report.Frames).To(Equal(2))
			Expect(report.Rows).To(Equal(600))
			Expect(report.Dropped).To(BeZero())
			Expect(report.Bytes).To(BeNumerically(">", 0))

			f, err := os.Open(cfg.Output)
			Expect(err).NotTo(HaveOccurred())
			defer f.Close()
			g, err := gif.DecodeAll(f)
			Expect(err).NotTo(HaveOccurred())
			Expect(g.Image).To(HaveLen(2))
			Expect(g.Config.Width).To(Equal(60))

			// sample the right half, which is trees in frame 0 and charred in frame 1
			b := g.Image[0].Bounds()
			x, y := b.Dx()*3/4, b.Dy()/2
			// the gif palette holds 240 colormap samples after 16 greys
			mapping := colormap.NewSampledMapping(colormap.Default, colormap.Norm{Min: 0, Max: 2}, 240)
			Expect(g.Image[0].At(x, y)).To(Equal(mapping.Color(1)))
			Expect(g.Image[1].At(x, y)).To(Equal(mapping.Color(3)))
			Expect(g.Image[0].At(x, y)).NotTo(Equal(g.Image[1].At(x, y)))
		})

		It("reports progress", func() {
			_, err := pipeline.Run(cfg, rep)
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(ContainSubstring("rendering 2 frames"))
			Expect(out.String()).To(ContainSubstring("2/2"))
		})
	})

	Context("with trailing rows", func() {
		BeforeEach(func() {
			cfg.HeightPerState = 10
			cfg.WidthPerState = 10
			writeTrace(cfg.Input, 25, 10, func(r, c int) string { return fmt.Sprint(r % 4) })
		})

		It("drops the partial frame", func() {
			report, err := pipeline.Run(cfg, rep)
			Expect(err).NotTo(HaveOccurred())
			Expect(report.Frames).To(Equal(2))
			Expect(report.Dropped).To(Equal(5))
			Expect(out.String()).To(ContainSubstring("5 trailing rows"))
		})
	})

	Context("with less than one frame", func() {
		BeforeEach(func() {
			writeTrace(cfg.Input, 299, 300, func(r, c int) string { return "1" })
		})

		It("fails with a render error and writes nothing", func() {
			_, err := pipeline.Run(cfg, rep)
			Expect(err).To(MatchError(render.ErrRender))
			Expect(err).To(MatchError(render.ErrNoFrames))
			Expect(cfg.Output).NotTo(BeAnExistingFile())

			entries, err := os.ReadDir(dir)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(1))
		})
	})

	DescribeTable("malformed input halts before rendering",
		func(bad string) {
			writeTrace(cfg.Input, 600, 300, func(r, c int) string {
				if r == 450 && c == 7 {
					return bad
				}
				return "1"
			})

			_, err := pipeline.Run(cfg, rep)
			Expect(err).To(MatchError(trace.ErrDataFormat))

			var dfe *trace.DataFormatError
			Expect(err).To(BeAssignableToTypeOf(dfe))
			dfe = err.(*trace.DataFormatError)
			Expect(dfe.Line).To(Equal(451))
			Expect(dfe.Column).To(Equal(8))

			Expect(cfg.Output).NotTo(BeAnExistingFile())
			Expect(out.String()).NotTo(ContainSubstring("rendering"))
		},
		Entry("value above 255", "256"),
		Entry("non-numeric token", "fire"),
	)

	It("fails on a missing input file", func() {
		_, err := pipeline.Run(cfg, rep)
		Expect(err).To(MatchError(trace.ErrNotFound))
		Expect(cfg.Output).NotTo(BeAnExistingFile())
	})

	It("rejects an invalid config before reading input", func() {
		cfg.HeightPerState = 0
		_, err := pipeline.Run(cfg, rep)
		Expect(err).To(MatchError(config.ErrInvalidConfig))
		Expect(out.String()).To(BeEmpty())
	})
})

var _ = Describe("Animate", func() {
	It("steps every complete frame", func() {
		cells := make([]uint8, 7*2)
		m, err := trace.NewStateMatrix(cells, 2)
		Expect(err).NotTo(HaveOccurred())

		opts := render.DefaultOptions()
		opts.DPI = 10
		anim, err := pipeline.Animate(m, 3, opts, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(anim.Len()).To(Equal(2))
	})

	It("returns an empty animator for short input", func() {
		m, err := trace.NewStateMatrix(make([]uint8, 4), 2)
		Expect(err).NotTo(HaveOccurred())

		anim, err := pipeline.Animate(m, 3, render.DefaultOptions(), nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(anim.Len()).To(BeZero())
		Expect(anim.Current()).To(BeNil())
	})
})
