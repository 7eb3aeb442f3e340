package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/leetao/qqbot/internal/redact"
)

// Handler is a slog.Handler writing one human-readable line per record:
//
//	3:04PM WARN  overwriting existing config path=qqbot.cfg
//
// Colors are used when the writer supports them. Values of secret-looking
// keys such as password are masked, and values containing spaces or '=' are
// quoted.
type Handler struct {
	opts   slog.HandlerOptions
	out    io.Writer
	mu     *sync.Mutex
	attrs  []slog.Attr
	groups []string

	// nil when color is off
	palette *palette
}

type palette struct {
	time  *color.Color
	key   *color.Color
	trace *color.Color
	debug *color.Color
	info  *color.Color
	warn  *color.Color
	error *color.Color
}

func newPalette() *palette {
	p := &palette{
		time:  color.New(color.FgHiBlack),
		key:   color.New(color.FgCyan),
		trace: color.New(color.FgHiBlack),
		debug: color.New(color.FgMagenta),
		info:  color.New(color.FgGreen),
		warn:  color.New(color.FgYellow),
		error: color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.time, p.key, p.trace, p.debug, p.info, p.warn, p.error} {
		c.EnableColor()
	}
	return p
}

// NewHandler creates a text handler writing to out.
func NewHandler(out io.Writer, opts *slog.HandlerOptions) *Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}

	h := &Handler{
		opts: *opts,
		out:  out,
		mu:   &sync.Mutex{},
	}
	if SupportsColor(out) {
		h.palette = newPalette()
	}
	return h
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

// Handle formats r into a buffer and writes it with a single call.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer

	if !r.Time.IsZero() {
		buf.WriteString(h.paint(h.timeColor(), r.Time.Format(time.Kitchen)))
		buf.WriteByte(' ')
	}

	level, c := h.level(r.Level)
	fmt.Fprintf(&buf, "%-5s ", h.paint(c, level))
	buf.WriteString(r.Message)

	// h.attrs already carry the groups open when they were added.
	for _, a := range h.attrs {
		h.appendAttr(&buf, nil, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(&buf, h.groups, a)
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf.Bytes())
	return err
}

func (h *Handler) level(l slog.Level) (string, *color.Color) {
	var p palette
	if h.palette != nil {
		p = *h.palette
	}
	switch {
	case l >= slog.LevelError:
		return l.String(), p.error
	case l >= slog.LevelWarn:
		return l.String(), p.warn
	case l >= slog.LevelInfo:
		return l.String(), p.info
	case l > LevelTrace:
		return l.String(), p.debug
	default:
		return "TRACE", p.trace
	}
}

func (h *Handler) timeColor() *color.Color {
	if h.palette == nil {
		return nil
	}
	return h.palette.time
}

func (h *Handler) paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

func (h *Handler) appendAttr(buf *bytes.Buffer, groups []string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		inner := groups
		if a.Key != "" {
			inner = append(groups[:len(groups):len(groups)], a.Key)
		}
		for _, ga := range a.Value.Group() {
			h.appendAttr(buf, inner, ga)
		}
		return
	}

	name := strings.Join(append(groups[:len(groups):len(groups)], a.Key), ".")
	var key *color.Color
	if h.palette != nil {
		key = h.palette.key
	}

	value := a.Value.String()
	if redact.ShouldMask(a.Key) {
		value = redact.MaskValue(value)
	}
	if value == "" || strings.ContainsAny(value, " =\"\t\n") {
		value = strconv.Quote(value)
	}

	fmt.Fprintf(buf, " %s=%s", h.paint(key, name), value)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	newH := *h
	newH.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	newH.attrs = append(newH.attrs, h.attrs...)
	for _, a := range attrs {
		if len(h.groups) > 0 {
			a = slog.Group(strings.Join(h.groups, "."), a)
		}
		newH.attrs = append(newH.attrs, a)
	}
	return &newH
}

// WithGroup returns a handler rendering later attributes with a dotted
// name prefix.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newH := *h
	newH.groups = make([]string, len(h.groups)+1)
	copy(newH.groups, h.groups)
	newH.groups[len(h.groups)] = name
	return &newH
}
