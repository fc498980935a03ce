package logger

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Level tag colours.
var levelColors = map[slog.Level]lipgloss.Color{
	slog.LevelDebug: lipgloss.Color("#6C7086"), // Muted gray
	slog.LevelInfo:  lipgloss.Color("#06B6D4"), // Cyan
	slog.LevelWarn:  lipgloss.Color("#F9E2AF"), // Yellow
	slog.LevelError: lipgloss.Color("#F38BA8"), // Red
}

// ConsoleHandler is a slog.Handler that writes one human-readable line per
// record. It omits timestamps; the output is meant for an interactive user.
type ConsoleHandler struct {
	mu     *sync.Mutex
	w      io.Writer
	level  slog.Leveler
	tags   map[slog.Level]string
	attrs  []slog.Attr
	groups []string
}

// Ensure ConsoleHandler implements the interface.
var _ slog.Handler = (*ConsoleHandler)(nil)

// NewConsoleHandler creates a handler writing to w.
func NewConsoleHandler(w io.Writer, opts Options) *ConsoleHandler {
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}
	return &ConsoleHandler{
		mu:    &sync.Mutex{},
		w:     w,
		level: level,
		tags:  levelTags(w, opts.Color),
	}
}

// levelTags pre-renders the tag for each level.
func levelTags(w io.Writer, color bool) map[slog.Level]string {
	tags := make(map[slog.Level]string, len(levelColors))
	var renderer *lipgloss.Renderer
	if color {
		renderer = lipgloss.NewRenderer(w)
		// Colour was asked for explicitly, so don't let a pipe downgrade it.
		if renderer.ColorProfile() == termenv.Ascii {
			renderer.SetColorProfile(termenv.ANSI)
		}
	}
	for level, c := range levelColors {
		tag := "[" + level.String() + "]"
		if renderer != nil {
			tag = renderer.NewStyle().Foreground(c).Bold(true).Render(tag)
		}
		tags[level] = tag
	}
	return tags
}

// Enabled reports whether the handler handles records at the given level.
func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record as a single line.
//
//nolint:gocritic // slog.Record is passed by value per slog.Handler interface contract
func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer

	buf.WriteString(h.tag(r.Level))
	buf.WriteByte(' ')
	buf.WriteString(r.Message)

	prefix := strings.Join(h.groups, ".")
	for _, a := range h.attrs {
		appendAttr(&buf, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&buf, prefix, a)
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf.Bytes())
	return err
}

// WithAttrs returns a handler that adds attrs to every record.
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := *h
	prefix := strings.Join(h.groups, ".")
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), qualify(prefix, attrs)...)
	return &clone
}

// WithGroup returns a handler that qualifies subsequent attribute keys with name.
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string{}, h.groups...), name)
	return &clone
}

// tag returns the rendered tag for level, falling back to the nearest
// standard level below it for custom levels.
func (h *ConsoleHandler) tag(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return h.tags[slog.LevelError]
	case level >= slog.LevelWarn:
		return h.tags[slog.LevelWarn]
	case level >= slog.LevelInfo:
		return h.tags[slog.LevelInfo]
	default:
		return h.tags[slog.LevelDebug]
	}
}

func qualify(prefix string, attrs []slog.Attr) []slog.Attr {
	if prefix == "" {
		return attrs
	}
	result := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		result[i] = slog.Attr{Key: prefix + "." + a.Key, Value: a.Value}
	}
	return result
}

func appendAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	switch {
	case key == "":
		key = prefix
	case prefix != "":
		key = prefix + "." + key
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(buf, key, ga)
		}
		return
	}

	buf.WriteByte(' ')
	buf.WriteString(key)
	buf.WriteByte('=')
	val := a.Value.String()
	if val == "" || strings.ContainsAny(val, " \t\n\"=") {
		val = strconv.Quote(val)
	}
	buf.WriteString(val)
}
