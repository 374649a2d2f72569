// Package report prints the human-facing output of picst: the startup banner
// and a short summary after every resized image.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"go.klb.dev/picst/internal/logging"
	"go.klb.dev/picst/internal/watch"
)

const banner = `
██████╗ ██╗ ██████╗███████╗████████╗
██╔══██╗██║██╔════╝██╔════╝╚══██╔══╝
██████╔╝██║██║     ███████╗   ██║
██╔═══╝ ██║██║     ╚════██║   ██║
██║     ██║╚██████╗███████║   ██║
╚═╝     ╚═╝ ╚═════╝╚══════╝   ╚═╝
`

var (
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	labelStyle  = lipgloss.NewStyle().Bold(true).Faint(true)
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Printer writes summaries to out and failures to errOut.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	emoji  bool
}

var _ watch.Reporter = (*Printer)(nil)

// New returns a Printer. Emoji are only used when out is a terminal.
func New(out, errOut io.Writer) *Printer {
	return &Printer{out: out, errOut: errOut, emoji: logging.IsTTY(out)}
}

func (p *Printer) glyph(s string) string {
	if p.emoji {
		return s
	}
	return ""
}

// Banner prints the logo and a one-line description of the active request.
func (p *Printer) Banner(version, request string) {
	fmt.Fprintln(p.out, bannerStyle.Render(banner))
	fmt.Fprintf(p.out, "%s %s\n", labelStyle.Render("version"), valueStyle.Render(version))
	fmt.Fprintf(p.out, "%s %s\n\n", labelStyle.Render("resize"), valueStyle.Render(request))
	fmt.Fprintf(p.out, "%sWaiting for an image on the clipboard...\n\n", p.glyph("📋 "))
}

// Published implements watch.Reporter.
func (p *Printer) Published(r watch.Result) {
	px := func(v uint32) string { return valueStyle.Render(fmt.Sprintf("%dpx", v)) }

	fmt.Fprintf(p.out, "%s%s%s.\n", p.glyph("⚡"), labelStyle.Render("Processing done in "), valueStyle.Render(roundDuration(r.Elapsed).String()))
	fmt.Fprintf(p.out, "%sHeight: %s -> %s.\n", p.glyph("↕️ "), px(r.Source.Height), px(r.Output.Height))
	fmt.Fprintf(p.out, "%sWidth: %s -> %s.\n", p.glyph("↔️ "), px(r.Source.Width), px(r.Output.Width))
	fmt.Fprintf(p.out, "%sBytes: %s.\n", p.glyph("📊 "), valueStyle.Render(humanize.IBytes(uint64(r.Bytes))))
	fmt.Fprintf(p.out, "%sResized image successfully moved to the clipboard.\n\n", p.glyph("📋 "))
}

// PublishFailed implements watch.Reporter.
func (p *Printer) PublishFailed(err error) {
	fmt.Fprintf(p.errOut, "%s%s\n", failStyle.Render("Moving the image to the clipboard failed!"), p.glyph(" 💥"))
	fmt.Fprintf(p.errOut, "%s %s\n\n", labelStyle.Render("reason"), err)
}

func roundDuration(d time.Duration) time.Duration {
	switch {
	case d >= time.Second:
		return d.Round(10 * time.Millisecond)
	case d >= time.Millisecond:
		return d.Round(time.Millisecond)
	default:
		return d.Round(time.Microsecond)
	}
}
