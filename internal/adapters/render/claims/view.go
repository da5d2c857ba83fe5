package claims

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/deathchest/internal/application"
	"github.com/bnema/deathchest/internal/domain"
	"github.com/bnema/deathchest/internal/ports"
	"github.com/charmbracelet/lipgloss"
)

const barWidth = 24

type RenderOptions struct {
	Now      time.Time
	Capacity int
	// Codec, when set, turns stored records into readable item names.
	Codec ports.ItemCodec
}

func (o RenderOptions) capacity() int {
	if o.Capacity <= 0 {
		return domain.DefaultCapacity
	}
	return o.Capacity
}

func RenderList(summaries []application.ClaimSummary, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderList(summaries, opts, s)
	})
}

func RenderDetail(inv domain.SavedInventory, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderDetail(inv, opts, s)
	})
}

func renderList(summaries []application.ClaimSummary, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Unclaimed Death Inventories"),
		s.header.Render(fmt.Sprintf("claims: %d", len(summaries))),
	}

	if len(summaries) == 0 {
		lines = append(lines, s.empty.Render("No saved inventories waiting to be claimed."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, summary := range summaries {
		lines = append(lines, s.section.Render(renderSummary(summary, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderSummary(summary application.ClaimSummary, opts RenderOptions, s styles) string {
	capacity := opts.capacity()
	usage := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.slotKey.Render("slots:"),
		" ",
		renderSlotBar(summary.Slots, capacity, barWidth, s),
		" ",
		s.detail.Render(fmt.Sprintf("%d/%d", summary.Slots, capacity)),
	)

	parts := []string{s.owner.Render(summary.Owner.String()), usage}
	if summary.Slots > capacity {
		parts = append(parts, s.warning.Render("[over capacity]"))
	}
	parts = append(parts, s.age.Render(formatCaptured(summary.CapturedAt, opts.Now)))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderDetail(inv domain.SavedInventory, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Saved Inventory"),
		s.owner.Render(inv.Owner.String()),
		s.header.Render(fmt.Sprintf("items: %d  %s", inv.Len(), formatCaptured(inv.CapturedAt, opts.Now))),
	}

	if inv.IsEmpty() {
		lines = append(lines, s.empty.Render("Nothing left to claim."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	capacity := opts.capacity()
	rows := make([]string, 0, inv.Len())
	for _, slot := range inv.SortedSlots() {
		label := s.slotKey.Render(fmt.Sprintf("slot %2d:", slot))
		row := label + " " + s.detail.Render(describeItem(inv.Slots[slot], opts.Codec))
		if int(slot) >= capacity {
			row += " " + s.warning.Render("[hidden]")
		}
		rows = append(rows, row)
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func describeItem(record domain.ItemRecord, codec ports.ItemCodec) string {
	if codec != nil {
		item, err := codec.Deserialize(record)
		if err == nil {
			if stringer, ok := item.(fmt.Stringer); ok {
				return stringer.String()
			}
			return fmt.Sprintf("%v", item)
		}
		return "unreadable item (" + err.Error() + ")"
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, record); err != nil {
		return string(record)
	}
	return compact.String()
}

func renderSlotBar(used, capacity, width int, s styles) string {
	if width <= 0 || capacity <= 0 {
		return ""
	}

	fraction := float64(used) / float64(capacity)
	filled := int(math.Round(float64(width) * fraction))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func formatCaptured(capturedAt, now time.Time) string {
	if capturedAt.IsZero() {
		return "captured at unknown time"
	}
	if now.IsZero() || capturedAt.After(now) {
		return "captured " + capturedAt.Format(time.RFC3339)
	}

	elapsed := now.Sub(capturedAt)
	switch {
	case elapsed < time.Minute:
		return "captured just now"
	case elapsed < time.Hour:
		return "captured " + plural(int(elapsed.Minutes()), "minute") + " ago"
	case elapsed < 24*time.Hour:
		return "captured " + plural(int(elapsed.Hours()), "hour") + " ago"
	default:
		return "captured " + plural(int(elapsed.Hours()/24), "day") + " ago"
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
