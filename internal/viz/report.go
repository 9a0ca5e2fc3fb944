package viz

import (
	"fmt"
	"io"
)

// Reporter writes styled progress and diagnostics. A nil *Reporter discards
// everything.
type Reporter struct {
	w io.Writer
}

func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

func (r *Reporter) Header(title string) {
	r.println(HeaderStyle.Render(title))
}

func (r *Reporter) Info(format string, args ...any) {
	r.println(StatusInfo.Render("•") + " " + fmt.Sprintf(format, args...))
}

func (r *Reporter) Warn(format string, args ...any) {
	r.println(StatusWarn.Render("!") + " " + fmt.Sprintf(format, args...))
}

func (r *Reporter) Success(format string, args ...any) {
	r.println(StatusOK.Render("✓") + " " + fmt.Sprintf(format, args...))
}

func (r *Reporter) Error(err error) {
	r.println(StatusError.Render("✗ error:") + " " + err.Error())
}

// Metric prints an aligned label/value pair.
func (r *Reporter) Metric(label string, value any) {
	r.println("  " + MetricLabel.Render(label) + MetricValue.Render(fmt.Sprint(value)))
}

// Progress prints a bar for done of total frames.
func (r *Reporter) Progress(done, total int) {
	if total <= 0 {
		return
	}
	pct := float64(done) / float64(total)
	r.println(fmt.Sprintf("  %s %s", ProgressBar(pct, 30), Subtle.Render(fmt.Sprintf("%d/%d", done, total))))
}

// Raw prints s without styling.
func (r *Reporter) Raw(s string) {
	r.println(s)
}

func (r *Reporter) println(s string) {
	if r == nil || r.w == nil {
		return
	}
	fmt.Fprintln(r.w, s)
}
